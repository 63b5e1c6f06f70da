package descriptor

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"go.yaml.in/yaml/v4"

	"github.com/apispect/apispect"
	"github.com/apispect/apispect/specerrors"
)

// Default resource limits applied when the corresponding Parser field is zero.
const (
	// DefaultMaxFileSize is the maximum accepted source size: 10 MiB.
	DefaultMaxFileSize int64 = 10 * 1024 * 1024
	// DefaultMaxNestingDepth is the maximum schema nesting depth.
	DefaultMaxNestingDepth = 100
)

// Parser handles descriptor document parsing
type Parser struct {
	// ValidateStructure determines whether to perform basic structure validation
	ValidateStructure bool
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "apispect/<version>" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger

	// Resource limits (0 means use default)

	// MaxFileSize is the maximum source size in bytes.
	// Default: 10MB
	MaxFileSize int64
	// MaxNestingDepth is the maximum schema nesting depth before subtrees
	// are dropped with a warning.
	// Default: 100
	MaxNestingDepth int
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
		UserAgent:         apispect.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// maxFileSize returns the configured size limit, falling back to the default.
func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of the source descriptor file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed descriptor document and metadata.
//
// Callers should treat ParseResult as read-only after parsing. The Document
// it carries is shared, not copied, by the packages that consume it.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name
	// of the method and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Document is the decoded descriptor document
	Document *Document
	// Errors contains structure validation findings.
	// Findings never fail parsing; callers decide how strict to be.
	Errors []error
	// Warnings contains non-fatal issues encountered while decoding,
	// such as duplicate keys or truncated schema subtrees
	Warnings []string
	// LoadTime is the time taken to load the source data (file, URL, etc.)
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats
}

// HasErrors reports whether structure validation recorded any findings.
func (pr *ParseResult) HasErrors() bool {
	return pr != nil && len(pr.Errors) > 0
}

// Parse parses a descriptor document from a file path or URL
// For URLs (http:// or https://), the content is fetched and parsed
// For local files, the file is read and parsed
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat
	var loadTime time.Duration

	// Check if specPath is a URL
	if isURL(specPath) {
		var contentType string
		loadStart := time.Now()
		data, contentType, err = p.fetchURL(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, err
		}

		// Try to detect format from URL path and Content-Type header
		format = detectFormatFromURL(specPath, contentType)
	} else {
		loadStart := time.Now()
		data, err = os.ReadFile(specPath)
		loadTime = time.Since(loadStart)
		if err != nil {
			return nil, fmt.Errorf("descriptor: failed to read file: %w", err)
		}

		// Detect format from file extension
		format = detectFormatFromPath(specPath)
	}

	if err := p.checkFileSize(int64(len(data))); err != nil {
		return nil, err
	}

	res, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	res.SourceSize = int64(len(data))

	// Prefer the path/URL-derived format; fall back to content detection
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}

	return res, nil
}

// ParseReader parses a descriptor document from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("descriptor: failed to read data: %w", err)
	}
	res, err := p.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	// Update timing info
	res.LoadTime = loadTime
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseReader.json"
	} else {
		res.SourcePath = "ParseReader.yaml"
	}
	return res, nil
}

// ParseBytes parses a descriptor document from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if err := p.checkFileSize(int64(len(data))); err != nil {
		return nil, err
	}
	res, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	// Set size (no load time since data is already in memory)
	res.SourceSize = int64(len(data))
	// Update SourcePath to match detected format
	if res.SourceFormat == SourceFormatJSON {
		res.SourcePath = "ParseBytes.json"
	} else {
		res.SourcePath = "ParseBytes.yaml"
	}
	return res, nil
}

// checkFileSize enforces the configured source size limit.
func (p *Parser) checkFileSize(size int64) error {
	limit := p.maxFileSize()
	if size > limit {
		return &specerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       size,
			Message:      fmt.Sprintf("source is %s, limit is %s", FormatBytes(size), FormatBytes(limit)),
		}
	}
	return nil
}

// parse decodes data into the descriptor model and runs structure validation.
// sourcePath is used only for error reporting; callers set ParseResult.SourcePath.
func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	result := &ParseResult{
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}
	result.SourceFormat = detectFormatFromContent(data)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "empty document"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "failed to parse document", Cause: err}
	}

	dec := newDecoder(p.MaxNestingDepth)
	doc, err := dec.document(&root)
	if err != nil {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: err.Error()}
	}
	result.Document = doc
	result.Warnings = append(result.Warnings, dec.warnings...)

	// Validate structure if enabled
	if p.ValidateStructure {
		result.Errors = append(result.Errors, p.validateDocument(doc)...)
	}

	// Calculate document statistics
	result.Stats = GetDocumentStats(doc)

	p.log().Debug("parsed descriptor document",
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"schemas", result.Stats.SchemaCount,
		"warnings", len(result.Warnings))

	return result, nil
}

// validateDocument performs basic structure validation on a decoded document.
// Findings are collected on the ParseResult; they never fail parsing.
func (p *Parser) validateDocument(doc *Document) []error {
	errs := make([]error, 0)
	errs = append(errs, p.validateInfo(doc.Info)...)
	if doc.Paths == nil {
		errs = append(errs, errors.New("structure: missing root field 'paths'"))
	} else {
		errs = append(errs, p.validatePaths(doc.Paths)...)
	}
	return errs
}

func (p *Parser) validateInfo(info *Info) []error {
	errs := make([]error, 0)
	if info == nil {
		errs = append(errs, errors.New("structure: missing root field 'info'"))
		return errs
	}
	if info.Title == "" {
		errs = append(errs, errors.New("structure: missing required field 'info.title'"))
	}
	if info.Version == "" {
		errs = append(errs, errors.New("structure: missing required field 'info.version'"))
	}
	return errs
}

func (p *Parser) validatePaths(paths *sequencedmap.Map[string, *PathItem]) []error {
	errs := make([]error, 0)
	operationIDs := make(map[string]string)

	for pathPattern, item := range paths.All() {
		if item == nil {
			continue
		}

		// Validate path pattern
		if pathPattern != "" && pathPattern[0] != '/' {
			errs = append(errs, fmt.Errorf("structure: invalid path pattern 'paths.%s': path must begin with '/'", pathPattern))
		}

		// Validate shared parameters
		for i, param := range item.Parameters {
			errs = append(errs, p.validateParameter(param, "paths."+pathPattern, i)...)
		}

		// Check all operations on this path
		for method, op := range item.Operations.All() {
			if op == nil {
				continue
			}
			opPath := fmt.Sprintf("paths.%s.%s", pathPattern, method)
			errs = append(errs, p.validateOperation(op, opPath, operationIDs)...)
		}
	}

	return errs
}

func (p *Parser) validateOperation(op *Operation, opPath string, operationIDs map[string]string) []error {
	errs := make([]error, 0)

	// Validate operationId uniqueness
	if op.OperationID != "" {
		if existingPath, exists := operationIDs[op.OperationID]; exists {
			errs = append(errs, fmt.Errorf("structure: duplicate operationId %q at '%s': previously defined at '%s'",
				op.OperationID, opPath, existingPath))
		} else {
			operationIDs[op.OperationID] = opPath
		}
	}

	// Validate parameters
	for i, param := range op.Parameters {
		errs = append(errs, p.validateParameter(param, opPath, i)...)
	}

	return errs
}

func (p *Parser) validateParameter(param *Parameter, opPath string, index int) []error {
	errs := make([]error, 0)
	if param == nil {
		return errs
	}
	paramPath := fmt.Sprintf("%s.parameters[%d]", opPath, index)

	if param.Name == "" {
		errs = append(errs, fmt.Errorf("structure: missing required field '%s.name': parameter must have a name", paramPath))
	}
	if param.In == "" {
		errs = append(errs, fmt.Errorf("structure: missing required field '%s.in': parameter must specify a location (path, query, header, cookie)", paramPath))
	} else if param.In == ParamInPath && !param.Required {
		errs = append(errs, fmt.Errorf("structure: invalid value for '%s.required': path parameters must set required to true", paramPath))
	}

	return errs
}
