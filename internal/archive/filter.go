// Package archive implements the traversal and zip-writing core of cdc:
// the exclusion filter, the iterative tree walker, the archive writer, and
// the tree size calculator.
package archive

// ExclusionSet holds the listing paths excluded from a walk.
//
// Candidates are compared by exact string equality against the listing path
// produced while enumerating a directory, not against a root-relative or
// otherwise normalized form. An exclusion supplied relative to the root
// therefore only matches when the walk was started with that same root
// representation.
type ExclusionSet struct {
	excludedPaths []string
}

// NewExclusionSet builds a set from the given listing path values. The
// values are copied and kept verbatim, including empty entries.
func NewExclusionSet(excludedPaths []string) ExclusionSet {
	return ExclusionSet{excludedPaths: append([]string{}, excludedPaths...)}
}

// Matches reports whether the candidate listing path exactly equals one of
// the excluded paths. No wildcard, prefix, case, or separator normalization
// is applied.
func (set ExclusionSet) Matches(listingPath string) bool {
	for _, excludedPath := range set.excludedPaths {
		if excludedPath == listingPath {
			return true
		}
	}
	return false
}

// Paths returns the excluded listing paths in their original order.
func (set ExclusionSet) Paths() []string {
	return append([]string{}, set.excludedPaths...)
}
