package auditor

import (
	"strings"

	"github.com/apispect/apispect/descriptor"
)

// Auditor analyzes the security declarations of descriptor documents
type Auditor struct {
	// Logger receives debug output during auditing. No logging when nil.
	Logger descriptor.Logger
}

// New creates a new Auditor instance with default settings
func New() *Auditor {
	return &Auditor{}
}

// Audit analyzes doc's security declarations using default settings.
// It is the package-level convenience form of [Auditor.Audit].
func Audit(doc *descriptor.Document) *Report {
	return New().Audit(doc)
}

// Audit summarizes doc's declared authentication schemes and partitions
// every operation into the secured or unsecured list.
//
// An operation is secured iff its own security list is non-empty; the
// document root's security requirements never influence the partition. A
// nil or path-less document yields an empty report; there is no failure
// path.
func (a *Auditor) Audit(doc *descriptor.Document) *Report {
	report := &Report{
		SchemeTypes: make([]string, 0),
		Schemes:     make(map[string]SchemeDetail),
		Secured:     make([]SecuredOperation, 0),
		Unsecured:   make([]OperationRef, 0),
	}
	if doc == nil {
		return report
	}

	if doc.Components != nil {
		// The type set is built locally per audit; nothing accumulates
		// across calls.
		seen := make(map[string]bool)
		for name, scheme := range doc.Components.SecuritySchemes.All() {
			if scheme == nil {
				continue
			}
			report.Schemes[name] = SchemeDetail{
				Type:        scheme.Type,
				Description: scheme.Description,
			}
			if scheme.Type != "" && !seen[scheme.Type] {
				seen[scheme.Type] = true
				report.SchemeTypes = append(report.SchemeTypes, scheme.Type)
			}
		}
	}

	for path, item := range doc.Paths.All() {
		for token, op := range item.Operations.All() {
			method := strings.ToUpper(token)
			if op.IsSecured() {
				report.Secured = append(report.Secured, SecuredOperation{
					Path:         path,
					Method:       method,
					Requirements: op.Security,
				})
			} else {
				report.Unsecured = append(report.Unsecured, OperationRef{
					Path:   path,
					Method: method,
				})
			}
		}
	}

	a.log().Debug("audited descriptor document",
		"schemes", len(report.Schemes),
		"secured", report.SecuredCount(),
		"unsecured", report.UnsecuredCount())
	return report
}

func (a *Auditor) log() descriptor.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return descriptor.NopLogger{}
}
