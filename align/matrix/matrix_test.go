package matrix_test

import (
	"testing"

	"github.com/lexstat/lingalign/align/matrix"
	"github.com/lexstat/lingalign/alphabet"
	"github.com/stretchr/testify/assert"
)

func TestSubstitutionMatrix(t *testing.T) {
	alpha1 := alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})
	alpha2 := alphabet.NewAlphabet([]string{"-", "A", "C", "G", "T"})
	subMat, err := matrix.NewSubstitutionMatrix(alpha1, alpha2, matrix.NUC_4)
	assert.Nil(t, err)

	testCases := []struct {
		symbol1 string
		symbol2 string
		score   int
	}{
		{"A", "A", 5},
		{"A", "C", -4},
		{"C", "T", -4},
		{"-", "-", 0},
	}

	for _, tc := range testCases {
		score, err := subMat.Score(tc.symbol1, tc.symbol2)
		assert.Nil(t, err)
		assert.Equal(t, tc.score, score)
	}
}

func TestNewSubstitutionMatrixDimensionMismatch(t *testing.T) {
	alpha := alphabet.NewAlphabet([]string{"A", "C"})
	_, err := matrix.NewSubstitutionMatrix(alpha, alpha, [][]int{{1}})
	assert.NotNil(t, err)
}

func TestDefault(t *testing.T) {
	score, err := matrix.Default.Score("A", "A")
	assert.Nil(t, err)
	assert.Equal(t, 5, score)

	score, err = matrix.Default.Score("A", "G")
	assert.Nil(t, err)
	assert.Equal(t, -4, score)
}

func TestFromObservedTokens(t *testing.T) {
	seqA := []string{"a", "b", "c"}
	seqB := []string{"a", "c"}
	subMat, err := matrix.FromObservedTokens(seqA, seqB, 1, -1)
	assert.Nil(t, err)

	score, err := subMat.Score("a", "a")
	assert.Nil(t, err)
	assert.Equal(t, 1, score)

	score, err = subMat.Score("a", "b")
	assert.Nil(t, err)
	assert.Equal(t, -1, score)

	_, err = subMat.Score("a", "z")
	assert.NotNil(t, err)
}

func TestDefaultDNARNAProtein(t *testing.T) {
	score, err := matrix.DefaultDNA.Score("A", "A")
	assert.Nil(t, err)
	assert.Equal(t, 1, score)
	score, err = matrix.DefaultDNA.Score("A", "G")
	assert.Nil(t, err)
	assert.Equal(t, -1, score)

	score, err = matrix.DefaultRNA.Score("U", "U")
	assert.Nil(t, err)
	assert.Equal(t, 1, score)

	score, err = matrix.DefaultProtein.Score("M", "M")
	assert.Nil(t, err)
	assert.Equal(t, 1, score)
	score, err = matrix.DefaultProtein.Score("M", "K")
	assert.Nil(t, err)
	assert.Equal(t, -1, score)
}
