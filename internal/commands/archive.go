// Package commands implements the operations invoked by the cdc CLI.
package commands

import (
	"fmt"

	"go.uber.org/zap"

	"cdc/internal/archive"
	"cdc/internal/config"
	"cdc/internal/types"
	"cdc/internal/utils"
)

// RunArchive reports the byte size of the configured target subtree and then
// archives it into the configured zip file.
//
// The two traversals are sequential and independent: the size pass covers
// the full subtree regardless of exclusions, while the archive pass honors
// them, so the reported size generally overstates what gets written. A size
// pass failure skips archiving entirely; an archive pass failure leaves the
// partially written destination file on disk.
func RunArchive(runConfiguration config.Configuration, logger *zap.Logger) error {
	logger.Info(fmt.Sprintf(
		"parsed: target=%s output=%s excluded=%d redundancy=%q",
		runConfiguration.Target,
		runConfiguration.OutputPath(),
		len(runConfiguration.Excluded),
		runConfiguration.Redundancy,
	))

	totalSize, sizeError := archive.CalculateTreeSize(runConfiguration.Target)
	if sizeError != nil {
		return fmt.Errorf("calculate size of %s: %w", runConfiguration.Target, sizeError)
	}
	sizeValue, unitLabel := utils.HumanReadableSize(uint64(totalSize))
	logger.Info(fmt.Sprintf("%d%s", int64(sizeValue), unitLabel))

	return archiveTarget(runConfiguration, logger)
}

// archiveTarget drives the tree walker into the archive writer. Every
// emitted node becomes exactly one archive entry before the walk advances.
func archiveTarget(runConfiguration config.Configuration, logger *zap.Logger) error {
	archiveWriter, writerError := archive.NewWriter(runConfiguration.OutputPath())
	if writerError != nil {
		return writerError
	}

	archivedFileCount := 0
	walkOptions := archive.WalkOptions{
		Root:     runConfiguration.Target,
		Excluded: archive.NewExclusionSet(runConfiguration.Excluded),
	}
	walkError := archive.Walk(walkOptions, func(node types.TraversalNode) error {
		if node.Kind == types.NodeKindDirectory {
			if directoryError := archiveWriter.AddDirectory(node.RelativePath); directoryError != nil {
				return directoryError
			}
			logger.Info(fmt.Sprintf("directory %s/ added to the archive", node.RelativePath))
			return nil
		}
		if fileError := archiveWriter.AddFile(node.RelativePath, node.Contents); fileError != nil {
			return fileError
		}
		archivedFileCount++
		logger.Info(fmt.Sprintf("file %s archived", node.RelativePath))
		return nil
	})
	if walkError != nil {
		return fmt.Errorf("archive %s: %w", runConfiguration.Target, walkError)
	}

	if finishError := archiveWriter.Finish(); finishError != nil {
		return finishError
	}
	logger.Info("archive created successfully")
	logger.Info(fmt.Sprintf("total files archived: %d", archivedFileCount))
	return nil
}
