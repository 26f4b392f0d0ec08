package archive_test

import (
	"testing"

	"cdc/internal/archive"
)

// TestExclusionSetMatches verifies that exclusion matching is exact string
// equality with no pattern or normalization semantics.
func TestExclusionSetMatches(testingHandle *testing.T) {
	testCases := []struct {
		name          string
		excludedPaths []string
		candidate     string
		expected      bool
	}{
		{name: "exact match", excludedPaths: []string{"project/vendor"}, candidate: "project/vendor", expected: true},
		{name: "second entry matches", excludedPaths: []string{"project/vendor", "project/cache"}, candidate: "project/cache", expected: true},
		{name: "prefix does not match", excludedPaths: []string{"project"}, candidate: "project/vendor", expected: false},
		{name: "descendant does not match", excludedPaths: []string{"project/vendor"}, candidate: "project/vendor/module", expected: false},
		{name: "case differs", excludedPaths: []string{"Project"}, candidate: "project", expected: false},
		{name: "trailing separator differs", excludedPaths: []string{"project/vendor/"}, candidate: "project/vendor", expected: false},
		{name: "glob characters are literal", excludedPaths: []string{"project/*"}, candidate: "project/vendor", expected: false},
		{name: "dot segments are not resolved", excludedPaths: []string{"project/./vendor"}, candidate: "project/vendor", expected: false},
		{name: "empty entry matches empty candidate", excludedPaths: []string{""}, candidate: "", expected: true},
		{name: "empty entry ignores real paths", excludedPaths: []string{""}, candidate: "project", expected: false},
		{name: "no entries", excludedPaths: nil, candidate: "project", expected: false},
	}
	for _, testCase := range testCases {
		testingHandle.Run(testCase.name, func(subtestHandle *testing.T) {
			exclusionSet := archive.NewExclusionSet(testCase.excludedPaths)
			if matched := exclusionSet.Matches(testCase.candidate); matched != testCase.expected {
				subtestHandle.Fatalf("Matches(%q) = %v, expected %v", testCase.candidate, matched, testCase.expected)
			}
		})
	}
}

// TestExclusionSetPaths verifies that the stored paths keep their order and
// are insulated from later mutation of the input slice.
func TestExclusionSetPaths(testingHandle *testing.T) {
	inputPaths := []string{"first", "second"}
	exclusionSet := archive.NewExclusionSet(inputPaths)
	inputPaths[0] = "mutated"

	storedPaths := exclusionSet.Paths()
	if len(storedPaths) != 2 || storedPaths[0] != "first" || storedPaths[1] != "second" {
		testingHandle.Fatalf("unexpected stored paths: %v", storedPaths)
	}
}
