package descriptor

// Parameter location constants (used in Parameter.In field)
const (
	// ParamInQuery indicates the parameter is passed in the query string
	ParamInQuery = "query"
	// ParamInHeader indicates the parameter is passed in a request header
	ParamInHeader = "header"
	// ParamInPath indicates the parameter is part of the URL path
	ParamInPath = "path"
	// ParamInCookie indicates the parameter is passed as a cookie
	ParamInCookie = "cookie"
)

// Reserved path item keys that are never treated as method tokens
const (
	// pathItemKeyParameters is the shared parameter list key
	pathItemKeyParameters = "parameters"
	// pathItemKeyDescription is the shared description key
	pathItemKeyDescription = "description"
)

// MediaTypeJSON is the media type whose schema the request-body resolver extracts
const MediaTypeJSON = "application/json"
