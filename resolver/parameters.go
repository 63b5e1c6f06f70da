package resolver

import (
	"github.com/apispect/apispect/descriptor"
)

// ParameterSet is the classified view of an operation's merged parameter
// list. The merged list holds the path item's shared parameters first and the
// operation's own after them; the four location buckets partition it, each
// preserving the relative order of its members.
type ParameterSet struct {
	// Path holds parameters with in: path
	Path []*descriptor.Parameter
	// Query holds parameters with in: query
	Query []*descriptor.Parameter
	// Header holds parameters with in: header
	Header []*descriptor.Parameter
	// Cookie holds parameters with in: cookie
	Cookie []*descriptor.Parameter
	// Unclassified retains parameters whose location matches none of the
	// four transport locations. They belong to no bucket but are not
	// dropped.
	Unclassified []*descriptor.Parameter

	merged []*descriptor.Parameter
}

// All returns the merged parameter list in source order: shared entries
// first, then the operation's own. Entries sharing a name are all kept.
func (ps *ParameterSet) All() []*descriptor.Parameter {
	if ps == nil {
		return nil
	}
	return ps.merged
}

// Len returns the size of the merged parameter list
func (ps *ParameterSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.merged)
}

// Parameters resolves the classified parameter set for (path, method) using
// default settings. It is the package-level convenience form of
// [Resolver.Parameters].
func Parameters(doc *descriptor.Document, path, method string) (*ParameterSet, error) {
	return New().Parameters(doc, path, method)
}

// Parameters merges the path item's shared parameters with the operation's
// own and partitions the merged list by transport location.
//
// The method lookup is case-insensitive. An absent path or an absent method
// fails with a [specerrors.NotFoundError]; every other input, including an
// operation with no parameters at all, succeeds with a (possibly empty) set.
func (r *Resolver) Parameters(doc *descriptor.Document, path, method string) (*ParameterSet, error) {
	item, op, err := lookup(doc, path, method)
	if err != nil {
		return nil, err
	}

	set := classify(mergeParameters(item.Parameters, op.Parameters))

	r.log().Debug("resolved parameters",
		"path", path,
		"method", method,
		"total", set.Len(),
		"unclassified", len(set.Unclassified))
	return set, nil
}

// mergeParameters concatenates the shared and operation-level parameter
// lists, shared entries first. Duplicate names are kept as declared.
func mergeParameters(shared, own []*descriptor.Parameter) []*descriptor.Parameter {
	merged := make([]*descriptor.Parameter, 0, len(shared)+len(own))
	merged = append(merged, shared...)
	merged = append(merged, own...)
	return merged
}

// classify partitions the merged list into the four location buckets,
// preserving relative order within each. Unrecognized locations land in
// Unclassified.
func classify(merged []*descriptor.Parameter) *ParameterSet {
	set := &ParameterSet{merged: merged}
	for _, param := range merged {
		switch param.In {
		case descriptor.ParamInPath:
			set.Path = append(set.Path, param)
		case descriptor.ParamInQuery:
			set.Query = append(set.Query, param)
		case descriptor.ParamInHeader:
			set.Header = append(set.Header, param)
		case descriptor.ParamInCookie:
			set.Cookie = append(set.Cookie, param)
		default:
			set.Unclassified = append(set.Unclassified, param)
		}
	}
	return set
}
