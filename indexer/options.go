package indexer

import (
	"fmt"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/internal/options"
)

// Option is a function that configures an index operation
type Option func(*indexConfig) error

// indexConfig holds configuration for an index operation
type indexConfig struct {
	// Input sources (exactly one must be set)
	filePath *string
	bytes    []byte
	parsed   *descriptor.ParseResult

	// Configuration options
	userAgent string
	logger    descriptor.Logger
}

// IndexResult contains an endpoint inventory together with the parsed source
// it was derived from.
type IndexResult struct {
	// SourcePath is the path, URL, or name of the source document
	SourcePath string
	// SourceFormat is the detected format of the source document
	SourceFormat descriptor.SourceFormat
	// Stats contains statistical information about the source document
	Stats descriptor.DocumentStats
	// Document is the parsed descriptor the inventory was built from
	Document *descriptor.Document
	// Inventory is the per-path, per-method endpoint inventory
	Inventory *Inventory
}

// IndexWithOptions builds an endpoint inventory using functional options,
// parsing the source document first when needed.
//
// Example:
//
//	result, err := indexer.IndexWithOptions(
//	    indexer.WithFilePath("api.yaml"),
//	)
func IndexWithOptions(opts ...Option) (*IndexResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("indexer: invalid options: %w", err)
	}

	parsed, err := resolveInput(cfg)
	if err != nil {
		return nil, err
	}

	ix := &Indexer{Logger: cfg.logger}
	inv := ix.Index(parsed.Document)

	return &IndexResult{
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Stats:        parsed.Stats,
		Document:     parsed.Document,
		Inventory:    inv,
	}, nil
}

// resolveInput returns the pre-parsed result or parses the configured source.
func resolveInput(cfg *indexConfig) (*descriptor.ParseResult, error) {
	if cfg.parsed != nil {
		return cfg.parsed, nil
	}

	p := descriptor.New()
	p.Logger = cfg.logger
	if cfg.userAgent != "" {
		p.UserAgent = cfg.userAgent
	}

	if cfg.filePath != nil {
		result, err := p.Parse(*cfg.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse source: %w", err)
		}
		return result, nil
	}
	result, err := p.ParseBytes(cfg.bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*indexConfig, error) {
	cfg := &indexConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"indexer: must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"indexer: must specify exactly one input source",
		cfg.filePath != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *indexConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *indexConfig) error {
		if data == nil {
			return fmt.Errorf("indexer: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source.
// Use this to avoid re-parsing when the same document feeds several tools.
func WithParsed(result descriptor.ParseResult) Option {
	return func(cfg *indexConfig) error {
		if result.Document == nil {
			return fmt.Errorf("indexer: parsed result has no document")
		}
		cfg.parsed = &result
		return nil
	}
}

// WithUserAgent sets the User-Agent string used when fetching URLs
func WithUserAgent(ua string) Option {
	return func(cfg *indexConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets a structured logger for debug output during indexing
func WithLogger(l descriptor.Logger) Option {
	return func(cfg *indexConfig) error {
		cfg.logger = l
		return nil
	}
}
