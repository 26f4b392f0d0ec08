package archive

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"
)

// directoryEntrySuffix terminates every directory entry name in the archive.
const directoryEntrySuffix = "/"

// Writer serializes traversal nodes into a zip archive on disk.
//
// Entries are written to the destination file incrementally as they are
// added, with the format-default compression settings. Finish must be
// called exactly once after the last entry: it flushes the central
// directory, without which the archive is unreadable. A write error leaves
// the partially written destination file on disk.
type Writer struct {
	destinationFile *os.File
	zipWriter       *zip.Writer
	finished        bool
}

// NewWriter creates the destination file and prepares a zip writer over it.
func NewWriter(destinationPath string) (*Writer, error) {
	destinationFile, createError := os.Create(destinationPath)
	if createError != nil {
		return nil, fmt.Errorf("create archive %s: %w", destinationPath, createError)
	}
	return &Writer{
		destinationFile: destinationFile,
		zipWriter:       zip.NewWriter(destinationFile),
	}, nil
}

// AddDirectory appends one directory marker entry with no payload. A
// trailing separator is added when the name does not already carry one.
func (writer *Writer) AddDirectory(name string) error {
	if writer.finished {
		return errArchiveFinalized(name)
	}
	directoryName := name
	if !strings.HasSuffix(directoryName, directoryEntrySuffix) {
		directoryName += directoryEntrySuffix
	}
	if _, createError := writer.zipWriter.Create(directoryName); createError != nil {
		return fmt.Errorf("create directory entry %s: %w", directoryName, createError)
	}
	return nil
}

// AddFile appends one file entry carrying the full payload.
func (writer *Writer) AddFile(name string, contents []byte) error {
	if writer.finished {
		return errArchiveFinalized(name)
	}
	entryWriter, createError := writer.zipWriter.Create(name)
	if createError != nil {
		return fmt.Errorf("create file entry %s: %w", name, createError)
	}
	if _, writeError := entryWriter.Write(contents); writeError != nil {
		return fmt.Errorf("write file entry %s: %w", name, writeError)
	}
	return nil
}

// Finish writes the archive's trailing central directory and closes the
// destination file. It must be called exactly once; further calls and
// further entries are errors.
func (writer *Writer) Finish() error {
	if writer.finished {
		return fmt.Errorf("archive already finalized")
	}
	writer.finished = true
	if closeError := writer.zipWriter.Close(); closeError != nil {
		return fmt.Errorf("finalize archive: %w", closeError)
	}
	if closeError := writer.destinationFile.Close(); closeError != nil {
		return fmt.Errorf("close archive file: %w", closeError)
	}
	return nil
}

func errArchiveFinalized(entryName string) error {
	return fmt.Errorf("add entry %s: archive already finalized", entryName)
}
