package descriptor

// DocumentStats contains statistical information about a descriptor document
type DocumentStats struct {
	PathCount             int // Number of paths defined
	OperationCount        int // Total number of operations across all paths
	SchemaCount           int // Number of reusable schemas
	SecuritySchemeCount   int // Number of declared security schemes
	SecuredOperationCount int // Operations carrying a non-empty security list
}

// GetDocumentStats returns statistics for a parsed descriptor document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = doc.Paths.Len()
	stats.OperationCount, stats.SecuredOperationCount = countOperations(doc)
	if doc.Components != nil {
		stats.SchemaCount = doc.Components.Schemas.Len()
		stats.SecuritySchemeCount = doc.Components.SecuritySchemes.Len()
	}

	return stats
}

// countOperations counts the total and secured operations across all paths
func countOperations(doc *Document) (total, secured int) {
	if doc.Paths == nil {
		return 0, 0
	}
	for _, item := range doc.Paths.All() {
		if item == nil {
			continue
		}
		for _, op := range item.Operations.All() {
			if op == nil {
				continue
			}
			total++
			if op.IsSecured() {
				secured++
			}
		}
	}
	return total, secured
}
