package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/browserkit/pkg/config"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation systems.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*cfg)

func WithLevel(l slog.Level) Option {
	return func(c *cfg) { c.level = l }
}

// WithFormat sets output format. Panics for invalid formats to enforce
// fail-fast initialization; use NewFromEnv for validated external input.
func WithFormat(f Format) Option {
	return func(c *cfg) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets a custom output destination, ignoring nil writers.
func WithOutput(w io.Writer) Option {
	return func(c *cfg) {
		if w != nil {
			c.output = w
		}
	}
}

// WithService adds a static "service" attribute to every log record.
func WithService(name string) Option {
	return func(c *cfg) {
		if name != "" {
			c.attrs = append(c.attrs, slog.String("service", name))
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *cfg) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that inject dynamic
// attributes from context on every log call. Nil extractors are ignored.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *cfg) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

type cfg struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// defaultCfg provides production-safe defaults: JSON at INFO level.
func defaultCfg() *cfg {
	return &cfg{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger. The returned logger injects
// context attributes registered via WithContextExtractors on every call.
func New(opts ...Option) *slog.Logger {
	c := defaultCfg()
	for _, opt := range opts {
		opt(c)
	}

	handlerOpts := &slog.HandlerOptions{Level: c.level}

	var handler slog.Handler
	if c.format == FormatText {
		handler = slog.NewTextHandler(c.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(c.output, handlerOpts)
	}

	if len(c.attrs) > 0 {
		handler = handler.WithAttrs(c.attrs)
	}

	return slog.New(NewContextHandler(handler, c.extractors...))
}

// envCfg is the environment surface read by NewFromEnv.
type envCfg struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format Format     `env:"LOG_FORMAT" envDefault:"json"`
}

// NewFromEnv builds a logger from LOG_LEVEL and LOG_FORMAT environment
// variables, tagging every record with the given service name. Explicit
// options override the environment.
func NewFromEnv(service string, opts ...Option) (*slog.Logger, error) {
	var ec envCfg
	if err := config.Load(&ec); err != nil {
		return nil, err
	}
	switch ec.Format {
	case FormatJSON, FormatText:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", ec.Format, FormatJSON, FormatText)
	}

	base := []Option{WithLevel(ec.Level), WithFormat(ec.Format), WithService(service)}
	return New(append(base, opts...)...), nil
}

// SetAsDefault installs the logger as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
