package align_test

import (
	"testing"

	"github.com/lexstat/lingalign/align"
	"github.com/stretchr/testify/assert"
)

func TestScoringTableBothOrders(t *testing.T) {
	table := align.ScoringTable{
		{"a", "b"}: 2.5,
	}
	score, err := table.Score("a", "b")
	assert.Nil(t, err)
	assert.Equal(t, 2.5, score)

	score, err = table.Score("b", "a")
	assert.Nil(t, err)
	assert.Equal(t, 2.5, score)
}

func TestScoringTableMissing(t *testing.T) {
	table := align.ScoringTable{}
	_, err := table.Score("a", "b")
	assert.NotNil(t, err)
	var missing *align.ErrMissingScore
	assert.ErrorAs(t, err, &missing)
}

func TestSimpleScorer(t *testing.T) {
	var s align.SimpleScorer
	score, err := s.Score("a", "a")
	assert.Nil(t, err)
	assert.Equal(t, 1.0, score)

	score, err = s.Score("a", "b")
	assert.Nil(t, err)
	assert.Equal(t, -1.0, score)
}

func TestScoreProfile(t *testing.T) {
	colA := align.ProfileColumn{"a", "a"}
	colB := align.ProfileColumn{"a", "X"}
	score, err := align.ScoreProfile(colA, colB, align.SimpleScorer{}, 0.5)
	assert.Nil(t, err)
	// pairs: (a,a)=1, (a,X)=gap, (a,a)=1, (a,X)=gap
	// sum = 2, count = 2 + 2*0.5 = 3
	assert.InDelta(t, 2.0/3.0, score, 1e-9)
}

func TestScoreProfileAllGap(t *testing.T) {
	colA := align.ProfileColumn{"X"}
	colB := align.ProfileColumn{"X"}
	score, err := align.ScoreProfile(colA, colB, align.SimpleScorer{}, 0)
	assert.Nil(t, err)
	assert.Equal(t, 0.0, score)
}

func TestSelfScoreContext(t *testing.T) {
	seq := align.Sequence{"a", "b", "c"}
	score, err := align.SelfScoreContext(seq, align.SimpleScorer{}, 0.5)
	assert.Nil(t, err)
	assert.Equal(t, 3*1.0*1.5, score)
}

func TestSelfScoreBasic(t *testing.T) {
	seq := align.Sequence{"a", "b", "c"}
	score, err := align.SelfScoreBasic(seq, align.SimpleScorer{})
	assert.Nil(t, err)
	assert.Equal(t, 3.0, score)
}
