package archive_test

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"

	"cdc/internal/archive"
)

const archiveFileName = "out.zip"

// readArchiveEntries opens a finished archive and returns its entry names
// mapped to their decompressed contents.
func readArchiveEntries(testingHandle *testing.T, archivePath string) map[string]string {
	testingHandle.Helper()
	zipReader, openError := zip.OpenReader(archivePath)
	if openError != nil {
		testingHandle.Fatalf("opening archive: %v", openError)
	}
	defer zipReader.Close()

	entries := make(map[string]string)
	for _, archivedFile := range zipReader.File {
		entryReader, entryOpenError := archivedFile.Open()
		if entryOpenError != nil {
			testingHandle.Fatalf("opening entry %s: %v", archivedFile.Name, entryOpenError)
		}
		entryContents, readError := io.ReadAll(entryReader)
		entryReader.Close()
		if readError != nil {
			testingHandle.Fatalf("reading entry %s: %v", archivedFile.Name, readError)
		}
		entries[archivedFile.Name] = string(entryContents)
	}
	return entries
}

// TestWriterRoundTrip verifies that added entries come back out of the
// finished archive with their names and contents intact.
func TestWriterRoundTrip(testingHandle *testing.T) {
	archivePath := filepath.Join(testingHandle.TempDir(), archiveFileName)
	archiveWriter, writerError := archive.NewWriter(archivePath)
	if writerError != nil {
		testingHandle.Fatalf("NewWriter error: %v", writerError)
	}

	if directoryError := archiveWriter.AddDirectory("sub"); directoryError != nil {
		testingHandle.Fatalf("AddDirectory error: %v", directoryError)
	}
	if directoryError := archiveWriter.AddDirectory("pre/"); directoryError != nil {
		testingHandle.Fatalf("AddDirectory with separator error: %v", directoryError)
	}
	if fileError := archiveWriter.AddFile("a.txt", []byte("hi")); fileError != nil {
		testingHandle.Fatalf("AddFile error: %v", fileError)
	}
	if finishError := archiveWriter.Finish(); finishError != nil {
		testingHandle.Fatalf("Finish error: %v", finishError)
	}

	entries := readArchiveEntries(testingHandle, archivePath)
	expectedEntries := map[string]string{
		"sub/":  "",
		"pre/":  "",
		"a.txt": "hi",
	}
	if len(entries) != len(expectedEntries) {
		testingHandle.Fatalf("expected %d entries, got %v", len(expectedEntries), entries)
	}
	for entryName, entryContents := range expectedEntries {
		actualContents, entryPresent := entries[entryName]
		if !entryPresent {
			testingHandle.Fatalf("entry %q missing from archive: %v", entryName, entries)
		}
		if actualContents != entryContents {
			testingHandle.Fatalf("entry %q contents = %q, expected %q", entryName, actualContents, entryContents)
		}
	}
}

// TestWriterDirectoryEntriesHaveNoPayload verifies that directory markers
// are recognized as directories by zip readers.
func TestWriterDirectoryEntriesHaveNoPayload(testingHandle *testing.T) {
	archivePath := filepath.Join(testingHandle.TempDir(), archiveFileName)
	archiveWriter, writerError := archive.NewWriter(archivePath)
	if writerError != nil {
		testingHandle.Fatalf("NewWriter error: %v", writerError)
	}
	if directoryError := archiveWriter.AddDirectory("nested/dir"); directoryError != nil {
		testingHandle.Fatalf("AddDirectory error: %v", directoryError)
	}
	if finishError := archiveWriter.Finish(); finishError != nil {
		testingHandle.Fatalf("Finish error: %v", finishError)
	}

	zipReader, openError := zip.OpenReader(archivePath)
	if openError != nil {
		testingHandle.Fatalf("opening archive: %v", openError)
	}
	defer zipReader.Close()
	if len(zipReader.File) != 1 {
		testingHandle.Fatalf("expected one entry, got %d", len(zipReader.File))
	}
	directoryEntry := zipReader.File[0]
	if directoryEntry.Name != "nested/dir/" {
		testingHandle.Fatalf("directory entry name = %q", directoryEntry.Name)
	}
	if !directoryEntry.FileInfo().IsDir() {
		testingHandle.Fatalf("directory entry not recognized as a directory")
	}
	if directoryEntry.UncompressedSize64 != 0 {
		testingHandle.Fatalf("directory entry carries a payload of %d bytes", directoryEntry.UncompressedSize64)
	}
}

// TestWriterRejectsEntriesAfterFinish verifies the finalize-once contract.
func TestWriterRejectsEntriesAfterFinish(testingHandle *testing.T) {
	archivePath := filepath.Join(testingHandle.TempDir(), archiveFileName)
	archiveWriter, writerError := archive.NewWriter(archivePath)
	if writerError != nil {
		testingHandle.Fatalf("NewWriter error: %v", writerError)
	}
	if finishError := archiveWriter.Finish(); finishError != nil {
		testingHandle.Fatalf("Finish error: %v", finishError)
	}

	if fileError := archiveWriter.AddFile("late.txt", []byte("late")); fileError == nil {
		testingHandle.Fatalf("expected an error adding a file after Finish")
	}
	if directoryError := archiveWriter.AddDirectory("late"); directoryError == nil {
		testingHandle.Fatalf("expected an error adding a directory after Finish")
	}
	if secondFinishError := archiveWriter.Finish(); secondFinishError == nil {
		testingHandle.Fatalf("expected an error finalizing twice")
	}
}

// TestNewWriterFailsOnMissingDestinationDirectory verifies that the
// destination file must be creatable.
func TestNewWriterFailsOnMissingDestinationDirectory(testingHandle *testing.T) {
	archivePath := filepath.Join(testingHandle.TempDir(), "missing", archiveFileName)
	if _, writerError := archive.NewWriter(archivePath); writerError == nil {
		testingHandle.Fatalf("expected an error for an uncreatable destination")
	}
}
