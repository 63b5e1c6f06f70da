package resolver

import (
	"fmt"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/options"
)

// Option configures a resolution via [ParametersWithOptions] or
// [BodyWithOptions]
type Option func(*resolveConfig) error

// resolveConfig holds all configuration for a resolution
type resolveConfig struct {
	// input sources (exactly one required)
	filePath *string
	bytes    []byte
	parsed   *descriptor.ParseResult

	// operation selection (both required)
	path   *string
	method *string

	// parsing configuration
	userAgent string
	logger    descriptor.Logger
}

// ParametersResult contains the classified parameter set for one operation
// together with its source context.
type ParametersResult struct {
	// SourcePath is the original source location (file path or URL), or
	// the synthetic name assigned to byte input
	SourcePath string
	// SourceFormat is the detected format of the source document
	SourceFormat descriptor.SourceFormat
	// Path is the path template the parameters were resolved for
	Path string
	// Method is the method the parameters were resolved for, as given
	Method string
	// Document is the parsed descriptor document
	Document *descriptor.Document
	// Set is the classified parameter set
	Set *ParameterSet
}

// BodyResult contains the resolved request body for one operation together
// with its source context.
type BodyResult struct {
	// SourcePath is the original source location (file path or URL), or
	// the synthetic name assigned to byte input
	SourcePath string
	// SourceFormat is the detected format of the source document
	SourceFormat descriptor.SourceFormat
	// Path is the path template the body was resolved for
	Path string
	// Method is the method the body was resolved for, as given
	Method string
	// Document is the parsed descriptor document
	Document *descriptor.Document
	// Body is the resolved request-body information
	Body *BodyInfo
}

// ParametersWithOptions resolves an operation's classified parameter set
// using functional options.
//
// Example usage:
//
//	result, err := resolver.ParametersWithOptions(
//	    resolver.WithFilePath("api.yaml"),
//	    resolver.WithPath("/users/{id}"),
//	    resolver.WithMethod("get"),
//	)
func ParametersWithOptions(opts ...Option) (*ParametersResult, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}

	parsed, err := resolveInput(cfg)
	if err != nil {
		return nil, err
	}

	r := &Resolver{Logger: cfg.logger}
	set, err := r.Parameters(parsed.Document, *cfg.path, *cfg.method)
	if err != nil {
		return nil, err
	}

	return &ParametersResult{
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Path:         *cfg.path,
		Method:       *cfg.method,
		Document:     parsed.Document,
		Set:          set,
	}, nil
}

// BodyWithOptions resolves an operation's request body using functional
// options.
//
// Example usage:
//
//	result, err := resolver.BodyWithOptions(
//	    resolver.WithFilePath("api.yaml"),
//	    resolver.WithPath("/users"),
//	    resolver.WithMethod("post"),
//	)
func BodyWithOptions(opts ...Option) (*BodyResult, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("resolver: invalid options: %w", err)
	}

	parsed, err := resolveInput(cfg)
	if err != nil {
		return nil, err
	}

	r := &Resolver{Logger: cfg.logger}
	body, err := r.Body(parsed.Document, *cfg.path, *cfg.method)
	if err != nil {
		return nil, err
	}

	return &BodyResult{
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Path:         *cfg.path,
		Method:       *cfg.method,
		Document:     parsed.Document,
		Body:         body,
	}, nil
}

// resolveInput obtains a parse result from the configured input source,
// parsing it fresh unless an already-parsed result was supplied
func resolveInput(cfg *resolveConfig) (*descriptor.ParseResult, error) {
	if cfg.parsed != nil {
		return cfg.parsed, nil
	}

	p := descriptor.New()
	p.Logger = cfg.logger
	if cfg.userAgent != "" {
		p.UserAgent = cfg.userAgent
	}

	var (
		result *descriptor.ParseResult
		err    error
	)
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return result, nil
}

// applyOptions applies all options and validates the final configuration
func applyOptions(opts []Option) (*resolveConfig, error) {
	cfg := &resolveConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	err := options.ValidateSingleInputSource(
		"resolver: must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"resolver: must specify exactly one input source",
		cfg.filePath != nil,
		cfg.bytes != nil,
		cfg.parsed != nil,
	)
	if err != nil {
		return nil, err
	}

	if cfg.path == nil {
		return nil, fmt.Errorf("resolver: must specify an operation path (use WithPath)")
	}
	if cfg.method == nil {
		return nil, fmt.Errorf("resolver: must specify an operation method (use WithMethod)")
	}

	return cfg, nil
}

// WithFilePath sets a file path or http(s) URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *resolveConfig) error {
		if path == "" {
			return fmt.Errorf("resolver: file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithBytes sets raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *resolveConfig) error {
		if data == nil {
			return fmt.Errorf("resolver: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed sets an already-parsed result as the input source, avoiding a
// second parse when the caller already holds one
func WithParsed(result descriptor.ParseResult) Option {
	return func(cfg *resolveConfig) error {
		if result.Document == nil {
			return fmt.Errorf("resolver: parsed result has no document")
		}
		cfg.parsed = &result
		return nil
	}
}

// WithPath selects the path template to resolve against
func WithPath(path string) Option {
	return func(cfg *resolveConfig) error {
		if path == "" {
			return fmt.Errorf("resolver: path cannot be empty")
		}
		cfg.path = &path
		return nil
	}
}

// WithMethod selects the method to resolve against. The lookup is
// case-insensitive.
func WithMethod(method string) Option {
	return func(cfg *resolveConfig) error {
		if method == "" {
			return fmt.Errorf("resolver: method cannot be empty")
		}
		cfg.method = &method
		return nil
	}
}

// WithUserAgent sets the User-Agent header used when the input source is a
// URL
func WithUserAgent(userAgent string) Option {
	return func(cfg *resolveConfig) error {
		if userAgent == "" {
			return fmt.Errorf("resolver: user agent cannot be empty")
		}
		cfg.userAgent = userAgent
		return nil
	}
}

// WithLogger sets the logger used during parsing and resolution. Passing nil
// disables logging.
func WithLogger(logger descriptor.Logger) Option {
	return func(cfg *resolveConfig) error {
		if logger == nil {
			logger = descriptor.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
