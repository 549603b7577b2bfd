package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffResult holds the result of comparing two rendered cards
type DiffResult struct {
	CardA       string  `json:"cardA"`
	CardB       string  `json:"cardB"`
	LineCountA  int     `json:"linesA"`
	LineCountB  int     `json:"linesB"`
	Similarity  float64 `json:"similarity"`
	UnifiedDiff string  `json:"diff,omitempty"`
}

// ComputeDiff compares two rendered card outputs by name
func ComputeDiff(nameA, contentA, nameB, contentB string) *DiffResult {
	dmp := diffmatchpatch.New()

	diffs := dmp.DiffMain(contentA, contentB, true)

	// Similarity in [0,1] from the Levenshtein distance
	dist := dmp.DiffLevenshtein(diffs)
	maxLen := len(contentA)
	if len(contentB) > maxLen {
		maxLen = len(contentB)
	}
	similarity := 0.0
	if maxLen > 0 {
		similarity = 1.0 - (float64(dist) / float64(maxLen))
	}

	patches := dmp.PatchMake(contentA, diffs)
	unified := dmp.PatchToText(patches)

	return &DiffResult{
		CardA:       nameA,
		CardB:       nameB,
		LineCountA:  len(strings.Split(contentA, "\n")),
		LineCountB:  len(strings.Split(contentB, "\n")),
		Similarity:  similarity,
		UnifiedDiff: unified,
	}
}
