package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	vybiumpoly "github.com/vybium/vybium-poly/pkg/vybium-poly"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	config := vybiumpoly.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "vybium-poly",
		Short: "Evaluate polynomial requests read as JSON lines from stdin",
		Long: `vybium-poly reads one JSON request per line from stdin and writes one
JSON response per line to stdout, e.g.

  {"op":"div","operands":["-1 + X**2","-1 + X"]}
  {"quotient":"1 + X","remainder":"0"}

Supported ops: add, sub, mul, div, rem, gcd, compose, neg, derivative,
integrate, pow (with "n"), eval (with "at"), interpolate (with "points"),
format and fingerprint.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ring, err := vybiumpoly.NewRing(config)
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(config.Level())
			log := logger.WithField("component", "vybium-poly")

			return run(ring.WithLogger(log), cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&config.MaxDegree, "max-degree", config.MaxDegree, "highest degree a result may have")
	flags.StringVar(&config.Variable, "variable", config.Variable, "symbol of the indeterminate")
	flags.StringVar(&config.ImaginaryUnit, "unit", config.ImaginaryUnit, "suffix of imaginary literals")
	flags.StringVar(&config.LogLevel, "log-level", config.LogLevel, "logrus level written to stderr")

	return cmd
}

// run answers every request line from in on out. Malformed requests produce an
// error response; only I/O failures stop the loop.
func run(ring *vybiumpoly.Ring, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(out)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var req Request
		var resp *Response
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			resp = errorResponse(&vybiumpoly.Error{
				Code:    vybiumpoly.ErrInvalidInput,
				Message: "malformed request",
				Cause:   err,
			})
		} else {
			resp = evaluate(ring, &req)
		}

		entry := log.WithFields(logrus.Fields{"line": line, "op": req.Op})
		if resp.Error != "" {
			entry.WithField("code", resp.Code).Warn(resp.Error)
		} else {
			entry.Debug("request answered")
		}

		if err := encoder.Encode(resp); err != nil {
			return fmt.Errorf("failed to write response %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request %d: %w", line+1, err)
	}
	return nil
}
