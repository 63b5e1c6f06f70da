// This file implements the pure string transformations behind client method
// naming: template-brace stripping, path-segment capitalization, and
// collision detection over the derived name set.

package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/apispect/apispect/internal/issues"
)

// segmentCaser capitalizes the leading rune of a path segment.
// cases.NoLower keeps the rest of the segment untouched.
var segmentCaser = cases.Title(language.English, cases.NoLower)

// capitalizeSegment strips template braces from a path segment and
// upper-cases its first character. Returns "" when nothing remains, so
// callers can treat empty and brace-only segments uniformly.
func capitalizeSegment(segment string) string {
	segment = strings.Map(func(r rune) rune {
		if r == '{' || r == '}' {
			return -1
		}
		return r
	}, segment)
	if segment == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(segment)
	return segmentCaser.String(string(first)) + segment[size:]
}

// pathIdentifier converts a path template into a capitalized-segment
// identifier: split on '/', drop empty segments, capitalize each remaining
// segment, concatenate. "/users/{id}" yields "UsersId".
func pathIdentifier(path string) string {
	var b strings.Builder
	for _, segment := range strings.Split(path, "/") {
		b.WriteString(capitalizeSegment(segment))
	}
	return b.String()
}

// clientMethodName derives the method name for a (path, method) pair: the
// lower-cased method token followed by the path identifier. The scheme is
// not injective ("/users/{id}" and "/users/id" both yield getUsersId);
// detectCollisions surfaces the overlaps.
func clientMethodName(method, path string) string {
	return strings.ToLower(method) + pathIdentifier(path)
}

// detectCollisions reports every method whose derived name was already taken
// by an earlier (path, method) pair, in emission order.
func detectCollisions(methods []ClientMethod) []GenerateIssue {
	var found []GenerateIssue
	first := make(map[string]ClientMethod, len(methods))
	for _, m := range methods {
		prev, taken := first[m.Name]
		if !taken {
			first[m.Name] = m
			continue
		}
		found = append(found, GenerateIssue{
			Path:     issues.FormatPath("paths", m.Path, strings.ToLower(m.Method)),
			Severity: SeverityWarning,
			Message: fmt.Sprintf("client method name %q collides with %s %s; the later method shadows the earlier one",
				m.Name, prev.Method, prev.Path),
			OperationContext: &issues.OperationContext{Method: m.Method, Path: m.Path},
		})
	}
	return found
}
