// File: ring/options.go
// Package ring defines functional options for Buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"log/slog"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/internal/vmem"
)

// Mode selects the allocation strategy of the built-in region provider.
type Mode = vmem.Mode

const (
	// MirrorOrPlain mirrors pages when possible, else keeps a software mirror.
	MirrorOrPlain = vmem.ModeMirrorOrPlain
	// MirrorOnly fails construction when pages cannot be mirrored.
	MirrorOnly = vmem.ModeMirrorOnly
	// PlainOnly always uses the software mirror.
	PlainOnly = vmem.ModePlainOnly
)

// config holds construction-time settings.
type config struct {
	provider api.RegionProvider
	mode     Mode
	atomic   bool
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		mode:   MirrorOrPlain,
		atomic: true,
		logger: slog.Default(),
	}
}

// Option customizes Buffer initialization.
type Option func(*config)

// WithProvider supplies the region provider. It overrides WithMode.
func WithProvider(p api.RegionProvider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithMode selects the allocation mode of the built-in provider.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// RequireMirror makes New fail when a mirrored mapping is unavailable.
func RequireMirror() Option {
	return WithMode(MirrorOnly)
}

// WithAtomic sets the initial fill-count discipline. Default true.
func WithAtomic(on bool) Option {
	return func(c *config) {
		c.atomic = on
	}
}

// WithLogger sets the logger for initialization and teardown events.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
