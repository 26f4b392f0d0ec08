package archive

import (
	"os"
	"path/filepath"
)

// CalculateTreeSize walks every filesystem object under root with its own
// explicit stack and returns the sum of regular file sizes in bytes.
//
// Exclusions are deliberately not consulted: the total covers the full
// subtree, so it overstates the size of what an exclusion-aware archive run
// will actually write. Any stat or listing error aborts the calculation
// with no partial sum.
func CalculateTreeSize(root string) (int64, error) {
	var totalSize int64
	pendingPaths := []string{root}
	for len(pendingPaths) > 0 {
		currentPath := pendingPaths[len(pendingPaths)-1]
		pendingPaths = pendingPaths[:len(pendingPaths)-1]

		currentInfo, statError := os.Stat(currentPath)
		if statError != nil {
			return 0, statError
		}
		if currentInfo.IsDir() {
			directoryEntries, listError := os.ReadDir(currentPath)
			if listError != nil {
				return 0, listError
			}
			for _, directoryEntry := range directoryEntries {
				pendingPaths = append(pendingPaths, filepath.Join(currentPath, directoryEntry.Name()))
			}
			continue
		}
		totalSize += currentInfo.Size()
	}
	return totalSize, nil
}
