package archive

import (
	"fmt"
	"os"
	"path/filepath"

	"cdc/internal/types"
)

// WalkOptions configures a single traversal of a directory tree.
type WalkOptions struct {
	// Root is the directory whose subtree is traversed.
	Root string
	// Excluded filters listing paths out of the walk. An excluded path is
	// never pushed onto the pending stack, so nothing beneath it is visited
	// either.
	Excluded ExclusionSet
}

// WalkHandler consumes traversal nodes as they are emitted. Returning an
// error aborts the walk immediately.
type WalkHandler func(node types.TraversalNode) error

// Walk visits every filesystem object under options.Root exactly once using
// an explicit stack instead of recursion, so arbitrarily deep trees cannot
// exhaust the call stack.
//
// Paths are popped in LIFO order: the visitation order is the reverse of
// each directory's listing order, interleaved across levels, and is not
// guaranteed stable across filesystems. Children are only discovered after
// their parent directory has been popped. Directories other than the root
// are emitted as directory nodes after their children have been queued; the
// root itself is never emitted. Regular files are read fully into memory
// and emitted with their contents; callers archiving very large files
// accept that buffering.
//
// Every emitted node is exactly one handler call, made before the next path
// is popped. Any stat, listing, read, or handler error aborts the walk with
// no cleanup of work already handed to the handler.
func Walk(options WalkOptions, handler WalkHandler) error {
	if handler == nil {
		return fmt.Errorf("walk handler is nil")
	}

	pendingPaths := []string{options.Root}
	for len(pendingPaths) > 0 {
		currentPath := pendingPaths[len(pendingPaths)-1]
		pendingPaths = pendingPaths[:len(pendingPaths)-1]

		currentInfo, statError := os.Stat(currentPath)
		if statError != nil {
			return statError
		}

		if !currentInfo.IsDir() {
			fileContents, readError := os.ReadFile(currentPath)
			if readError != nil {
				return readError
			}
			fileNode := types.TraversalNode{
				ListingPath:  currentPath,
				RelativePath: relativeToRoot(currentPath, options.Root),
				Kind:         types.NodeKindRegularFile,
				Contents:     fileContents,
			}
			if handlerError := handler(fileNode); handlerError != nil {
				return handlerError
			}
			continue
		}

		directoryEntries, listError := os.ReadDir(currentPath)
		if listError != nil {
			return listError
		}
		for _, directoryEntry := range directoryEntries {
			childListingPath := filepath.Join(currentPath, directoryEntry.Name())
			if options.Excluded.Matches(childListingPath) {
				continue
			}
			pendingPaths = append(pendingPaths, childListingPath)
		}

		relativePath := relativeToRoot(currentPath, options.Root)
		if relativePath == "" {
			continue
		}
		directoryNode := types.TraversalNode{
			ListingPath:  currentPath,
			RelativePath: relativePath,
			Kind:         types.NodeKindDirectory,
		}
		if handlerError := handler(directoryNode); handlerError != nil {
			return handlerError
		}
	}
	return nil
}

// relativeToRoot strips the root prefix from a listing path and converts the
// result to forward-slash form. The root itself maps to the empty string.
// A listing path that does not reside under the root is returned unchanged.
func relativeToRoot(listingPath string, root string) string {
	relativePath, relativeError := filepath.Rel(root, listingPath)
	if relativeError != nil {
		return filepath.ToSlash(listingPath)
	}
	if relativePath == "." {
		return ""
	}
	return filepath.ToSlash(relativePath)
}
