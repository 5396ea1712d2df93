package main

import (
	"encoding/hex"
	"fmt"

	vybiumpoly "github.com/vybium/vybium-poly/pkg/vybium-poly"
)

// Request is one line of input. Polynomials and complex values use the
// ring's textual notation, e.g. "-1 + X**2" and "(1+2j)".
type Request struct {
	Op       string      `json:"op"`
	Operands []string    `json:"operands,omitempty"`
	N        uint        `json:"n,omitempty"`
	At       string      `json:"at,omitempty"`
	Points   [][2]string `json:"points,omitempty"`
}

// Response is one line of output. Exactly one of the result fields or Error
// is set.
type Response struct {
	Result      string `json:"result,omitempty"`
	Quotient    string `json:"quotient,omitempty"`
	Remainder   string `json:"remainder,omitempty"`
	Value       string `json:"value,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
	Error       string `json:"error,omitempty"`
	Code        string `json:"code,omitempty"`
}

type binaryOp func(a, b *vybiumpoly.Polynomial) (*vybiumpoly.Polynomial, error)

type unaryOp func(a *vybiumpoly.Polynomial) (*vybiumpoly.Polynomial, error)

func evaluate(ring *vybiumpoly.Ring, req *Request) *Response {
	resp, err := dispatch(ring, req)
	if err != nil {
		return errorResponse(err)
	}
	return resp
}

func errorResponse(err error) *Response {
	return &Response{
		Error: err.Error(),
		Code:  vybiumpoly.CodeOf(err).String(),
	}
}

func dispatch(ring *vybiumpoly.Ring, req *Request) (*Response, error) {
	binary := map[string]binaryOp{
		"add":     ring.Add,
		"sub":     ring.Sub,
		"mul":     ring.Mul,
		"rem":     ring.Rem,
		"gcd":     ring.GCD,
		"compose": ring.Compose,
	}
	unary := map[string]unaryOp{
		"neg":        ring.Neg,
		"derivative": ring.Derivative,
		"integrate":  ring.Integrate,
	}

	if op, ok := binary[req.Op]; ok {
		operands, err := parseOperands(ring, req, 2)
		if err != nil {
			return nil, err
		}
		result, err := op(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		return &Response{Result: ring.Format(result)}, nil
	}

	if op, ok := unary[req.Op]; ok {
		operands, err := parseOperands(ring, req, 1)
		if err != nil {
			return nil, err
		}
		result, err := op(operands[0])
		if err != nil {
			return nil, err
		}
		return &Response{Result: ring.Format(result)}, nil
	}

	switch req.Op {
	case "format":
		operands, err := parseOperands(ring, req, 1)
		if err != nil {
			return nil, err
		}
		return &Response{Result: ring.Format(operands[0])}, nil

	case "div":
		operands, err := parseOperands(ring, req, 2)
		if err != nil {
			return nil, err
		}
		q, rem, err := ring.Div(operands[0], operands[1])
		if err != nil {
			return nil, err
		}
		return &Response{Quotient: ring.Format(q), Remainder: ring.Format(rem)}, nil

	case "pow":
		operands, err := parseOperands(ring, req, 1)
		if err != nil {
			return nil, err
		}
		result, err := ring.Pow(operands[0], req.N)
		if err != nil {
			return nil, err
		}
		return &Response{Result: ring.Format(result)}, nil

	case "eval":
		operands, err := parseOperands(ring, req, 1)
		if err != nil {
			return nil, err
		}
		x, err := vybiumpoly.ParseComplex(req.At, ring.ImaginaryUnit())
		if err != nil {
			return nil, err
		}
		return &Response{Value: operands[0].Eval(x).Format(ring.ImaginaryUnit())}, nil

	case "interpolate":
		points := make([]vybiumpoly.Point, len(req.Points))
		for i, pt := range req.Points {
			x, err := vybiumpoly.ParseComplex(pt[0], ring.ImaginaryUnit())
			if err != nil {
				return nil, err
			}
			y, err := vybiumpoly.ParseComplex(pt[1], ring.ImaginaryUnit())
			if err != nil {
				return nil, err
			}
			points[i] = vybiumpoly.NewPoint(x, y)
		}
		result, err := ring.Interpolate(points)
		if err != nil {
			return nil, err
		}
		return &Response{Result: ring.Format(result)}, nil

	case "fingerprint":
		operands, err := parseOperands(ring, req, 1)
		if err != nil {
			return nil, err
		}
		digest := operands[0].Fingerprint()
		return &Response{Fingerprint: hex.EncodeToString(digest[:])}, nil
	}

	return nil, &vybiumpoly.Error{
		Code:    vybiumpoly.ErrInvalidInput,
		Message: fmt.Sprintf("unknown op %q", req.Op),
	}
}

func parseOperands(ring *vybiumpoly.Ring, req *Request, n int) ([]*vybiumpoly.Polynomial, error) {
	if len(req.Operands) != n {
		return nil, &vybiumpoly.Error{
			Code:    vybiumpoly.ErrInvalidInput,
			Message: fmt.Sprintf("%s takes %d operands, got %d", req.Op, n, len(req.Operands)),
		}
	}
	operands := make([]*vybiumpoly.Polynomial, n)
	for i, s := range req.Operands {
		p, err := ring.Parse(s)
		if err != nil {
			return nil, err
		}
		operands[i] = p
	}
	return operands, nil
}
