// Package types defines the cross-package data structures used by the cdc CLI.
package types

// NodeKind identifies the kind of filesystem object discovered during a walk.
type NodeKind int

const (
	// NodeKindDirectory marks a directory node.
	NodeKindDirectory NodeKind = iota
	// NodeKindRegularFile marks a regular file node.
	NodeKindRegularFile
)

// TraversalNode is one filesystem object discovered during a walk, handed to
// the walk handler the moment it is classified and discarded afterwards.
type TraversalNode struct {
	// ListingPath is the path exactly as the directory listing produced it,
	// i.e. the parent path joined with the entry name. Exclusion matching
	// happens against this form.
	ListingPath string
	// RelativePath is ListingPath with the walk root stripped, in
	// forward-slash form. Empty for the root itself, which is never emitted.
	RelativePath string
	// Kind tells whether the node is a directory or a regular file.
	Kind NodeKind
	// Contents holds the full file payload for regular files, nil for
	// directories.
	Contents []byte
}
