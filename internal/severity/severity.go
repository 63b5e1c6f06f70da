// Package severity provides the severity scale for issues reported by the
// tool packages (generation notices, collision warnings, structure findings).
//
// Each public package that reports issues re-exports the four levels:
//   - SeverityInfo: informational notices about choices made
//   - SeverityWarning: degradations or recommendations that do not stop processing
//   - SeverityError: findings that make a document invalid
//   - SeverityCritical: input that cannot be processed without loss
package severity

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityError indicates a finding that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a degradation or recommendation that does
	// not prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates an informational notice about a processing
	// choice. Non-actionable, useful for debugging.
	SeverityInfo

	// SeverityCritical indicates input that cannot be processed without
	// losing information.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
