package align_test

import (
	"testing"

	"github.com/lexstat/lingalign/align"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint256Deterministic(t *testing.T) {
	almA := []align.Token{"a", "b", "-", "c"}
	almB := []align.Token{"a", "b", "c", "c"}
	f1 := align.Fingerprint256(almA, almB, align.ModeGlobal)
	f2 := align.Fingerprint256(almA, almB, align.ModeGlobal)
	assert.Equal(t, f1, f2)
}

func TestFingerprint256DiffersByMode(t *testing.T) {
	almA := []align.Token{"a", "b"}
	almB := []align.Token{"a", "b"}
	f1 := align.Fingerprint256(almA, almB, align.ModeGlobal)
	f2 := align.Fingerprint256(almA, almB, align.ModeLocal)
	assert.NotEqual(t, f1, f2)
}

func TestFingerprint256DiffersByGapPlacement(t *testing.T) {
	f1 := align.Fingerprint256([]align.Token{"a", "-", "b"}, []align.Token{"a", "c", "b"}, align.ModeGlobal)
	f2 := align.Fingerprint256([]align.Token{"a", "b", "-"}, []align.Token{"a", "b", "c"}, align.ModeGlobal)
	assert.NotEqual(t, f1, f2)
}
