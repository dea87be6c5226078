// Package ztest holds small golden-value helpers shared across this
// module's _test.go files, the way the teacher's top-level tests lean on
// cmp.Diff for deep-equality checks instead of hand-rolled comparisons.
package ztest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual fails t with a unified diff of got vs want if they are not
// deeply equal, mirroring the cmp.Diff usage in the teacher's io_test.go
// and json_test.go.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}
