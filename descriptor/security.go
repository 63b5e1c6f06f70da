package descriptor

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if applicable).
type SecurityRequirement map[string][]string

// SecurityScheme defines a security scheme that operations can require
type SecurityScheme struct {
	// Type is the authentication type keyword, e.g. "apiKey", "http",
	// "oauth2", "openIdConnect"
	Type        string
	Description string

	// Type: apiKey
	Name string
	In   string

	// Type: http
	Scheme       string
	BearerFormat string

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}
