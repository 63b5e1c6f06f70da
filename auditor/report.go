package auditor

import "github.com/apispect/apispect/descriptor"

// SchemeDetail summarizes one declared security scheme.
type SchemeDetail struct {
	// Type is the authentication type keyword, e.g. "http" or "apiKey"
	Type string
	// Description is the scheme's declared description, if any
	Description string
}

// SecuredOperation is an operation that declares its own security
// requirements.
type SecuredOperation struct {
	// Path is the path template the operation lives on
	Path string
	// Method is the upper-cased method token
	Method string
	// Requirements is the operation's security requirement list as declared
	Requirements []descriptor.SecurityRequirement
}

// OperationRef identifies an operation that declares no security requirements
// of its own.
type OperationRef struct {
	// Path is the path template the operation lives on
	Path string
	// Method is the upper-cased method token
	Method string
}

// Report contains the results of auditing a descriptor document's security
// declarations.
type Report struct {
	// SchemeTypes lists the distinct declared authentication type keywords
	// in first-seen declaration order
	SchemeTypes []string
	// Schemes maps declared scheme names to their details
	Schemes map[string]SchemeDetail
	// Secured lists every operation with a non-empty security list of its
	// own, in document declaration order
	Secured []SecuredOperation
	// Unsecured lists every operation whose own security list is empty or
	// absent, in document declaration order
	Unsecured []OperationRef
}

// SecuredCount returns the number of secured operations. Safe to call on a
// nil Report.
func (r *Report) SecuredCount() int {
	if r == nil {
		return 0
	}
	return len(r.Secured)
}

// UnsecuredCount returns the number of unsecured operations. Safe to call on
// a nil Report.
func (r *Report) UnsecuredCount() int {
	if r == nil {
		return 0
	}
	return len(r.Unsecured)
}

// OperationCount returns the total number of audited operations. Safe to
// call on a nil Report.
func (r *Report) OperationCount() int {
	return r.SecuredCount() + r.UnsecuredCount()
}

// HasUnsecured returns true if any operation lacks its own security
// requirements. Safe to call on a nil Report.
func (r *Report) HasUnsecured() bool {
	return r.UnsecuredCount() > 0
}

// Coverage returns the secured fraction of all audited operations, in
// [0, 1]. A document with no operations has coverage 0. Safe to call on a
// nil Report.
func (r *Report) Coverage() float64 {
	total := r.OperationCount()
	if total == 0 {
		return 0
	}
	return float64(r.SecuredCount()) / float64(total)
}
