// Package config builds the immutable run configuration of the cdc tool and
// loads optional application defaults from configuration files.
package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultOutputFileName is the archive name used when none is supplied.
	DefaultOutputFileName = "tmp.zip"

	exclusionListSeparator  = ","
	homeEnvironmentVariable = "HOME"
	homeDirectoryPrefix     = "~"
)

// Configuration carries the inputs of one archiving run. It is constructed
// once from the command line merged over application defaults and never
// mutated afterwards.
type Configuration struct {
	// Target is the root directory to archive.
	Target string
	// OutputFileName is the destination archive name; empty means
	// DefaultOutputFileName.
	OutputFileName string
	// Excluded lists the listing paths skipped during the archive walk.
	Excluded []string
	// Redundancy is parsed and stored for a future feature; nothing reads
	// it yet.
	Redundancy string
}

// OutputPath returns the destination archive path, falling back to
// DefaultOutputFileName when no name was configured.
func (configuration Configuration) OutputPath() string {
	if configuration.OutputFileName == "" {
		return DefaultOutputFileName
	}
	return configuration.OutputFileName
}

// SplitExclusionList splits a raw comma-separated exclusion value into
// individual listing paths. Entries are kept verbatim, without trimming or
// normalization; an empty input yields a single empty entry.
func SplitExclusionList(rawExclusionList string) []string {
	return strings.Split(rawExclusionList, exclusionListSeparator)
}

// ExpandHomeDirectory resolves a leading "~" in the target path against the
// HOME environment variable. When HOME is unset the failure is logged and
// the path is returned unchanged, so the run continues with the original
// value rather than aborting.
func ExpandHomeDirectory(targetPath string, logger *zap.Logger) string {
	if !strings.HasPrefix(targetPath, homeDirectoryPrefix) {
		return targetPath
	}
	homeDirectory, homeIsSet := os.LookupEnv(homeEnvironmentVariable)
	if !homeIsSet {
		logger.Error(fmt.Sprintf("cannot expand %q: %s is not set", targetPath, homeEnvironmentVariable))
		return targetPath
	}
	return homeDirectory + strings.ReplaceAll(targetPath, homeDirectoryPrefix, "")
}
