package descriptor

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// resolveAlias follows an alias node to its anchor target.
// Non-alias nodes are returned unchanged.
func resolveAlias(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

// isMapping reports whether node is a mapping after alias resolution.
func isMapping(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node != nil && node.Kind == yaml.MappingNode
}

// isSequence reports whether node is a sequence after alias resolution.
func isSequence(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node != nil && node.Kind == yaml.SequenceNode
}

// isScalar reports whether node is a scalar after alias resolution.
func isScalar(node *yaml.Node) bool {
	node = resolveAlias(node)
	return node != nil && node.Kind == yaml.ScalarNode
}

// nodeKindString returns a human-readable name for a node's kind,
// for use in error and warning messages.
func nodeKindString(node *yaml.Node) string {
	if node == nil {
		return "nothing"
	}
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// nodeString returns the scalar value of node, or "" when node is not a scalar.
func nodeString(node *yaml.Node) string {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.ScalarNode {
		return ""
	}
	return node.Value
}

// nodeBool returns the boolean value of node, or false when node does not
// decode as a boolean.
func nodeBool(node *yaml.Node) bool {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.ScalarNode {
		return false
	}
	var b bool
	if err := node.Decode(&b); err != nil {
		return false
	}
	return b
}

// nodeStringSlice returns the scalar elements of a sequence node as strings.
// Non-scalar elements are skipped.
func nodeStringSlice(node *yaml.Node) []string {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.SequenceNode {
		return nil
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolveAlias(item)
		if item != nil && item.Kind == yaml.ScalarNode {
			out = append(out, item.Value)
		}
	}
	return out
}

// nodeAny decodes node into a generic Go value (map[string]any, []any, or a
// scalar). Returns nil when the node cannot be decoded.
func nodeAny(node *yaml.Node) any {
	node = resolveAlias(node)
	if node == nil {
		return nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil
	}
	return v
}

// isExtensionKey reports whether key is a specification extension (x-*).
func isExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}
