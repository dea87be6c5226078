package align_test

import (
	"testing"

	"github.com/lexstat/lingalign/align"
	"github.com/stretchr/testify/assert"
)

func TestDistanceIdenticalIsZero(t *testing.T) {
	seq := align.Sequence{"a", "b", "c"}
	result, err := align.ScAlign(seq, seq,
		uniformWeights(3, 1), uniformWeights(3, 1),
		matchingProsody(3), matchingProsody(3),
		1, 0.5, 1.0, align.SimpleScorer{}, nil,
		align.ModeGlobal, true, true)
	assert.Nil(t, err)
	assert.InDelta(t, 0.0, result.Distance, 1e-9)
}

func TestBasicDistanceSymmetric(t *testing.T) {
	seqA := align.Sequence{"a", "b", "a", "b"}
	seqB := align.Sequence{"a", "b", "a"}
	fwd, err := align.BasicAlign(seqA, seqB, -1, 0.5, nil, align.ModeGlobal, true)
	assert.Nil(t, err)
	rev, err := align.BasicAlign(seqB, seqA, -1, 0.5, nil, align.ModeGlobal, true)
	assert.Nil(t, err)
	assert.InDelta(t, fwd.Distance, rev.Distance, 1e-9)
}

func uniformWeights(n int, v float64) align.GapWeights {
	w := make(align.GapWeights, n)
	for i := range w {
		w[i] = v
	}
	return w
}

func matchingProsody(n int) align.ProsodicString {
	p := make(align.ProsodicString, n)
	for i := range p {
		p[i] = 'C'
	}
	return p
}
