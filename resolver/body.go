package resolver

import (
	"github.com/apispect/apispect/descriptor"
)

// BodyInfo describes the request body an operation declares, if any.
type BodyInfo struct {
	// Defined reports whether the operation declares a request body with a
	// content map. False means the operation takes no body, which is a
	// normal outcome rather than an error.
	Defined bool
	// Required is the declared required flag. Absent flags default to
	// false.
	Required bool
	// MediaTypes lists every declared media type in declaration order
	MediaTypes []string
	// Schema is the schema of the application/json media type. It stays
	// nil when that media type is not declared, even if others are.
	Schema *descriptor.Schema
}

// Body resolves the request body for (path, method) using default settings.
// It is the package-level convenience form of [Resolver.Body].
func Body(doc *descriptor.Document, path, method string) (*BodyInfo, error) {
	return New().Body(doc, path, method)
}

// Body extracts the request-body declaration for (path, method).
//
// Lookups fail the same way as [Resolver.Parameters]. An operation without a
// requestBody, or whose requestBody carries no content map, yields
// BodyInfo{Defined: false} with no error. Otherwise the result reports the
// declared required flag, the media types in declaration order, and the
// application/json schema when that media type is among them.
func (r *Resolver) Body(doc *descriptor.Document, path, method string) (*BodyInfo, error) {
	_, op, err := lookup(doc, path, method)
	if err != nil {
		return nil, err
	}

	body := op.RequestBody
	if body == nil || body.Content == nil {
		r.log().Debug("no request body declared", "path", path, "method", method)
		return &BodyInfo{}, nil
	}

	info := &BodyInfo{
		Defined:    true,
		Required:   body.Required,
		MediaTypes: make([]string, 0, body.Content.Len()),
	}
	for mediaType := range body.Content.Keys() {
		info.MediaTypes = append(info.MediaTypes, mediaType)
	}
	if mt, ok := body.Content.Get(descriptor.MediaTypeJSON); ok && mt != nil {
		info.Schema = mt.Schema
	}

	r.log().Debug("resolved request body",
		"path", path,
		"method", method,
		"required", info.Required,
		"mediaTypes", len(info.MediaTypes))
	return info, nil
}
