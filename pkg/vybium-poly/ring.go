package vybiumpoly

import (
	"github.com/vybium/vybium-poly/internal/vybium-poly/core"
	"github.com/vybium/vybium-poly/internal/vybium-poly/utils"
)

// DefaultConfig returns the default ring configuration
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// NewRing creates a ring from config, or from DefaultConfig if config is nil
func NewRing(config *Config) (*Ring, error) {
	return core.NewRing(config)
}

// DefaultRing returns the shared ring built from DefaultConfig
func DefaultRing() *Ring {
	return core.DefaultRing()
}

// Zero returns the zero polynomial
func Zero() *Polynomial {
	return core.Zero()
}
