// Package auditor reports the security exposure of a descriptor document.
//
// Audit partitions every (path, method) operation into secured and unsecured
// sets based solely on the operation's own security requirement list, and
// summarizes the authentication schemes declared in the components section.
// Document-level security requirements are carried by the model but never
// consulted here: only what an operation declares for itself counts.
//
// # Quick Start
//
//	result, err := auditor.AuditWithOptions(
//	    auditor.WithFilePath("api.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	report := result.Report
//	fmt.Printf("secured %d/%d operations (%.0f%%)\n",
//	    report.SecuredCount(), report.OperationCount(), 100*report.Coverage())
//	for _, op := range report.Unsecured {
//	    fmt.Printf("  unsecured: %s %s\n", op.Method, op.Path)
//	}
//
// Audit on an already-parsed document skips the parse step:
//
//	report := auditor.Audit(parsed.Document)
//
// # Report Contents
//
// SchemeTypes lists the distinct authentication type keywords declared under
// components.securitySchemes ("http", "apiKey", ...) in first-seen
// declaration order. Schemes maps each declared scheme name to its detail.
// Secured and Unsecured list every operation exactly once, in document
// declaration order, with methods upper-cased; secured entries carry the raw
// requirement list as declared.
package auditor
