package align_test

import (
	"testing"

	"github.com/lexstat/lingalign/align"
	"github.com/lexstat/lingalign/alphabet"
	"github.com/stretchr/testify/assert"
)

func TestScAlignInvalidMode(t *testing.T) {
	seq := align.Sequence{"a"}
	_, err := align.ScAlign(seq, seq, align.GapWeights{1}, align.GapWeights{1},
		align.ProsodicString{'C'}, align.ProsodicString{'C'}, -1, 1, 0, nil, nil,
		align.Mode("bogus"), false, false)
	assert.NotNil(t, err)
	var invalid *align.ErrInvalidMode
	assert.ErrorAs(t, err, &invalid)
}

func TestScAlignLengthMismatch(t *testing.T) {
	seq := align.Sequence{"a", "b"}
	_, err := align.ScAlign(seq, seq, align.GapWeights{1}, align.GapWeights{1, 1},
		align.ProsodicString{'C', 'C'}, align.ProsodicString{'C', 'C'}, -1, 1, 0, nil, nil,
		align.ModeGlobal, false, false)
	assert.NotNil(t, err)
	var mismatch *align.ErrLengthMismatch
	assert.ErrorAs(t, err, &mismatch)
}

// TestScAlignSelfDistanceZero is scenario S6: identical sequences under
// matching prosodic context and factor=1.0 yield distance 0 in global mode.
func TestScAlignSelfDistanceZero(t *testing.T) {
	seqA := align.Sequence{"t", "a", "t", "a"}
	proA := align.ProsodicString{'C', 'V', 'C', 'V'}
	gop := align.GapWeights{1, 1, 1, 1}

	result, err := align.ScAlign(seqA, seqA, gop, gop, proA, proA, -1, 0.5, 1.0,
		align.SimpleScorer{}, nil, align.ModeGlobal, true, true)
	assert.Nil(t, err)
	assert.InDelta(t, 0.0, result.Distance, 1e-9)
	assert.Equal(t, []align.Token(seqA), result.AlignedA)
	assert.Equal(t, []align.Token(seqA), result.AlignedB)
}

func TestScAlignLocalNonNegative(t *testing.T) {
	seqA := align.Sequence{"x", "a", "b", "c", "y"}
	seqB := align.Sequence{"z", "a", "b", "c", "w"}
	gopA := align.GapWeights{1, 1, 1, 1, 1}
	gopB := align.GapWeights{1, 1, 1, 1, 1}
	proA := align.ProsodicString{'C', 'C', 'C', 'C', 'C'}
	proB := align.ProsodicString{'C', 'C', 'C', 'C', 'C'}

	result, err := align.ScAlign(seqA, seqB, gopA, gopB, proA, proB, -2, 0.5, 0,
		align.SimpleScorer{}, nil, align.ModeLocal, false, false)
	assert.Nil(t, err)
	assert.True(t, result.Similarity >= 0)
	assert.NotNil(t, result.Local)
	assert.Equal(t, []align.Token{"a", "b", "c"}, result.Local.CoreA)
	assert.Equal(t, []align.Token{"a", "b", "c"}, result.Local.CoreB)
}

func TestScAlignRestrictedCharacters(t *testing.T) {
	// A restricted-context position may not align to an unrestricted one,
	// except at the A-terminal column.
	seqA := align.Sequence{"a", "b"}
	seqB := align.Sequence{"a", "b"}
	gop := align.GapWeights{1, 1}
	proA := align.ProsodicString{'C', 'C'}
	proB := align.ProsodicString{'V', 'C'}
	res := alphabet.NewRestrictedSet("V")

	result, err := align.ScAlign(seqA, seqB, gop, gop, proA, proB, -1, 0.5, 0,
		align.SimpleScorer{}, res, align.ModeGlobal, false, false)
	assert.Nil(t, err)
	assert.Equal(t, len(result.AlignedA), len(result.AlignedB))
}

func TestScAlignOverlapFreeTerminalGaps(t *testing.T) {
	seqA := align.Sequence{"a", "b", "c"}
	seqB := align.Sequence{"b", "c"}
	gopA := align.GapWeights{1, 1, 1}
	gopB := align.GapWeights{1, 1}
	proA := align.ProsodicString{'C', 'C', 'C'}
	proB := align.ProsodicString{'C', 'C'}

	result, err := align.ScAlign(seqA, seqB, gopA, gopB, proA, proB, -5, 1, 0,
		align.SimpleScorer{}, nil, align.ModeOverlap, false, false)
	assert.Nil(t, err)
	assert.Equal(t, []align.Token{"a", "b", "c"}, result.AlignedA)
	assert.Equal(t, []align.Token{"-", "b", "c"}, result.AlignedB)
}

func TestScAlignDialignDiagonalRun(t *testing.T) {
	seqA := align.Sequence{"a", "b", "c"}
	seqB := align.Sequence{"a", "b", "c"}
	gop := align.GapWeights{1, 1, 1}
	pro := align.ProsodicString{'C', 'C', 'C'}

	result, err := align.ScAlign(seqA, seqB, gop, gop, pro, pro, -1, 1, 0,
		align.SimpleScorer{}, nil, align.ModeDialign, false, false)
	assert.Nil(t, err)
	assert.Equal(t, []align.Token{"a", "b", "c"}, result.AlignedA)
	assert.Equal(t, []align.Token{"a", "b", "c"}, result.AlignedB)
}
