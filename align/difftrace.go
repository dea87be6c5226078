package align

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderTrace renders two aligned token sequences as a unified diff, one
// token per line, for failing-test diagnostics and godoc examples. Gap
// positions render as the literal "-" token like everywhere else in this
// package.
func RenderTrace(almA, almB []Token, fromLabel, toLabel string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(almA, "\n")),
		B:        difflib.SplitLines(strings.Join(almB, "\n")),
		FromFile: fromLabel,
		ToFile:   toLabel,
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// RenderCoreTrace renders the aligned core of a local alignment as a
// character-level diff, for the finer granularity the prefix/core/suffix
// segmentation calls for versus RenderTrace's line-level view.
func RenderCoreTrace(local LocalAlignment) string {
	dmp := diffmatchpatch.New()
	coreA := strings.Join(local.CoreA, "")
	coreB := strings.Join(local.CoreB, "")
	diffs := dmp.DiffMain(coreA, coreB, false)
	return dmp.DiffPrettyText(diffs)
}
