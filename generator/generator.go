package generator

import (
	"fmt"
	"time"

	"github.com/apispect/apispect/descriptor"
	"github.com/apispect/apispect/indexer"
	"github.com/apispect/apispect/internal/issues"
	"github.com/apispect/apispect/internal/options"
	"github.com/apispect/apispect/internal/severity"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates degradations such as method-name collisions
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates structure findings carried over from parsing
	SeverityError = severity.SeverityError
	// SeverityCritical indicates input that cannot be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// Names of the generated artifacts.
const (
	// TypesFileName holds the interface declarations
	TypesFileName = "types.ts"
	// ClientFileName holds the client class
	ClientFileName = "client.ts"
)

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "types.ts", "client.ts")
	Name string
	// Content is the generated source text
	Content []byte
}

// GenerateResult contains the results of synthesizing artifacts from a
// descriptor document
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourcePath is the original source location
	SourcePath string
	// SourceFormat is the format of the source document
	SourceFormat descriptor.SourceFormat
	// ClientName is the emitted client class name
	ClientName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of structure findings carried from
	// parsing
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source data
	LoadTime time.Duration
	// GenerateTime is the time taken to synthesize the artifacts
	GenerateTime time.Duration
	// Stats contains statistical information about the source document
	Stats descriptor.DocumentStats
	// InterfaceCount is the number of interface declarations emitted
	InterfaceCount int
	// MethodCount is the number of client methods emitted
	MethodCount int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator synthesizes interface declarations and a client from descriptor
// documents
type Generator struct {
	// ClientName is the class name for the generated client.
	// If empty, defaults to "ApiClient".
	ClientName string

	// GenerateTypes enables interface synthesis.
	// Default: true
	GenerateTypes bool

	// GenerateClient enables client synthesis.
	// Default: true
	GenerateClient bool

	// DetectCollisions reports colliding client method names as warnings.
	// The naming scheme is not injective, so distinct paths can derive the
	// same name.
	// Default: false
	DetectCollisions bool

	// StrictMode causes generation to fail on any warning or finding
	StrictMode bool

	// IncludeInfo determines whether informational issues are kept
	IncludeInfo bool

	// UserAgent is the User-Agent string used when fetching URLs
	UserAgent string

	// Logger is the structured logger for debug output.
	// If nil, logging is disabled.
	Logger descriptor.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		ClientName:     "ApiClient",
		GenerateTypes:  true,
		GenerateClient: true,
		IncludeInfo:    true,
	}
}

// Generate synthesizes artifacts from a descriptor file path or URL
func (g *Generator) Generate(sourcePath string) (*GenerateResult, error) {
	p := descriptor.New()
	p.Logger = g.Logger
	if g.UserAgent != "" {
		p.UserAgent = g.UserAgent
	}

	parsed, err := p.Parse(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse source: %w", err)
	}
	return g.GenerateParsed(*parsed)
}

// GenerateBytes synthesizes artifacts from raw descriptor bytes
func (g *Generator) GenerateBytes(data []byte) (*GenerateResult, error) {
	p := descriptor.New()
	p.Logger = g.Logger

	parsed, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to parse source: %w", err)
	}
	return g.GenerateParsed(*parsed)
}

// GenerateParsed synthesizes artifacts from an already-parsed descriptor.
//
// Structure findings from parsing are carried into the issue list as errors
// but do not stop generation; only StrictMode turns them fatal.
func (g *Generator) GenerateParsed(parsed descriptor.ParseResult) (*GenerateResult, error) {
	start := time.Now()

	if parsed.Document == nil {
		return nil, fmt.Errorf("generator: parse result has no document")
	}

	clientName := g.ClientName
	if clientName == "" {
		clientName = "ApiClient"
	}

	result := &GenerateResult{
		Files:        make([]GeneratedFile, 0, 2),
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		ClientName:   clientName,
		Issues:       make([]GenerateIssue, 0),
		LoadTime:     parsed.LoadTime,
		Stats:        parsed.Stats,
	}

	for _, finding := range parsed.Errors {
		result.Issues = append(result.Issues, GenerateIssue{
			Severity: SeverityError,
			Message:  finding.Error(),
		})
	}

	if g.GenerateTypes {
		decls, notices := synthesizeInterfaces(parsed.Document)
		result.Issues = append(result.Issues, notices...)
		result.InterfaceCount = len(decls)
		result.Files = append(result.Files, GeneratedFile{
			Name:    TypesFileName,
			Content: renderTypesFile(decls),
		})
	}

	if g.GenerateClient {
		idx := &indexer.Indexer{Logger: g.Logger}
		methods := ClientMethods(idx.Index(parsed.Document))
		if g.DetectCollisions {
			result.Issues = append(result.Issues, detectCollisions(methods)...)
		}
		result.MethodCount = len(methods)
		result.Files = append(result.Files, GeneratedFile{
			Name:    ClientFileName,
			Content: renderClientFile(clientName, sourceLabel(parsed.Document.Info), methods),
		})
	}

	result.GenerateTime = time.Since(start)
	g.updateCounts(result)
	result.Success = result.CriticalCount == 0

	if g.StrictMode && (result.CriticalCount > 0 || result.ErrorCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("generator: generation failed in strict mode: %d critical issue(s), %d error(s), %d warning(s)",
			result.CriticalCount, result.ErrorCount, result.WarningCount)
	}

	if !g.IncludeInfo {
		filtered := make([]GenerateIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	g.log().Debug("generated artifacts",
		"files", len(result.Files),
		"interfaces", result.InterfaceCount,
		"methods", result.MethodCount,
		"warnings", result.WarningCount)
	return result, nil
}

// updateCounts updates the issue counts in the result
func (g *Generator) updateCounts(result *GenerateResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// log returns the configured logger or a no-op fallback
func (g *Generator) log() descriptor.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return descriptor.NopLogger{}
}

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// input sources (exactly one required)
	filePath *string
	bytes    []byte
	parsed   *descriptor.ParseResult

	// generation configuration
	clientName       string
	generateTypes    bool
	generateClient   bool
	detectCollisions bool
	strictMode       bool
	includeInfo      bool
	userAgent        string
	logger           descriptor.Logger
}

// GenerateWithOptions synthesizes artifacts using functional options.
//
// Example usage:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("api.yaml"),
//	    generator.WithClientName("UsersClient"),
//	    generator.WithDetectCollisions(true),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		ClientName:       cfg.clientName,
		GenerateTypes:    cfg.generateTypes,
		GenerateClient:   cfg.generateClient,
		DetectCollisions: cfg.detectCollisions,
		StrictMode:       cfg.strictMode,
		IncludeInfo:      cfg.includeInfo,
		UserAgent:        cfg.userAgent,
		Logger:           cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.bytes != nil:
		return g.GenerateBytes(cfg.bytes)
	default:
		return g.GenerateParsed(*cfg.parsed)
	}
}

// applyOptions applies all options and validates the final configuration
func applyOptions(opts []Option) (*generateConfig, error) {
	cfg := &generateConfig{
		clientName:     "ApiClient",
		generateTypes:  true,
		generateClient: true,
		includeInfo:    true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithBytes, or WithParsed)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil,
		cfg.bytes != nil,
		cfg.parsed != nil,
	)
	if err != nil {
		return nil, err
	}

	if !cfg.generateTypes && !cfg.generateClient {
		return nil, fmt.Errorf("generator: nothing to generate (types and client both disabled)")
	}

	return cfg, nil
}

// WithFilePath sets a file path or http(s) URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		if path == "" {
			return fmt.Errorf("generator: file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithBytes sets raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *generateConfig) error {
		if data == nil {
			return fmt.Errorf("generator: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed sets an already-parsed result as the input source
func WithParsed(result descriptor.ParseResult) Option {
	return func(cfg *generateConfig) error {
		if result.Document == nil {
			return fmt.Errorf("generator: parsed result has no document")
		}
		cfg.parsed = &result
		return nil
	}
}

// WithClientName sets the class name for the generated client.
// Default: "ApiClient"
func WithClientName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: client name cannot be empty")
		}
		cfg.clientName = name
		return nil
	}
}

// WithTypes enables or disables interface synthesis.
// Default: true
func WithTypes(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateTypes = enabled
		return nil
	}
}

// WithClient enables or disables client synthesis.
// Default: true
func WithClient(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.generateClient = enabled
		return nil
	}
}

// WithDetectCollisions enables or disables collision detection over derived
// client method names.
// Default: false
func WithDetectCollisions(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.detectCollisions = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict mode (fail on any issues).
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages.
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithUserAgent sets the User-Agent header used when the input source is a
// URL
func WithUserAgent(userAgent string) Option {
	return func(cfg *generateConfig) error {
		if userAgent == "" {
			return fmt.Errorf("generator: user agent cannot be empty")
		}
		cfg.userAgent = userAgent
		return nil
	}
}

// WithLogger sets the logger used during parsing and generation. Passing nil
// disables logging.
func WithLogger(logger descriptor.Logger) Option {
	return func(cfg *generateConfig) error {
		if logger == nil {
			logger = descriptor.NopLogger{}
		}
		cfg.logger = logger
		return nil
	}
}
