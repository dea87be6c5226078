package align

import "github.com/lexstat/lingalign/alphabet"

// ProfileResult is the result of ProfileAlign: the two aligned sequences of
// profile columns and the similarity score. ProfileAlign never computes a
// distance.
type ProfileResult struct {
	AlignedA, AlignedB []ProfileColumn
	Similarity         float64
}

// ProfileAlign aligns two profiles (sequences of already-built alignment
// columns) using the same recurrence structure as ScAlign, but scoring each
// cell with ScoreProfile over whole columns instead of single tokens. Local
// mode is not supported for profiles; only global, overlap, and dialign are.
func ProfileAlign(colsA, colsB []ProfileColumn, gopA, gopB GapWeights, proA, proB ProsodicString,
	gop int, scale, factor, gapWeight float64, scorer Scorer, res *alphabet.RestrictedSet,
	mode Mode) (*ProfileResult, error) {

	switch mode {
	case ModeGlobal, ModeOverlap, ModeDialign:
	default:
		return nil, &ErrInvalidMode{Mode: string(mode), Op: "ProfileAlign"}
	}
	if len(gopA) != len(colsA) || len(proA) != len(colsA) {
		return nil, &ErrLengthMismatch{Name: "profile A inputs", Want: len(colsA), Got: len(gopA)}
	}
	if len(gopB) != len(colsB) || len(proB) != len(colsB) {
		return nil, &ErrLengthMismatch{Name: "profile B inputs", Want: len(colsB), Got: len(gopB)}
	}
	scorer = scorerOrDefault(scorer)

	mCols, nCols := len(colsA), len(colsB)

	scaledGopA := make(GapWeights, mCols)
	for k, w := range gopA {
		scaledGopA[k] = float64(gop) * w
	}
	scaledGopB := make(GapWeights, nCols)
	for k, w := range gopB {
		scaledGopB[k] = float64(gop) * w
	}

	matrix, traceback := newMatrices(scaledGopA, scaledGopB, mCols, nCols, mode, scale)

	for i := 1; i <= nCols; i++ {
		for j := 1; j <= mCols; j++ {
			gapA := scGapACandidate(matrix, traceback, proA, proB, scaledGopB, res, mode, i, j, mCols, scale)
			gapB := scGapBCandidate(matrix, traceback, proA, proB, scaledGopA, res, mode, i, j, nCols, scale)
			match, err := profileMatchCandidate(matrix, colsA, colsB, proA, proB, scorer, gapWeight, factor, mode, i, j)
			if err != nil {
				return nil, err
			}
			v, op := pickBest(gapA, match, gapB)
			matrix[i][j] = v
			traceback[i][j] = op
		}
	}

	almA, almB := tracebackProfile(colsA, colsB, traceback)
	return &ProfileResult{AlignedA: almA, AlignedB: almB, Similarity: matrix[nCols][mCols]}, nil
}

// profileMatchCandidate mirrors scMatchCandidate but scores whole columns
// with ScoreProfile; dialign's diagonal-run exploration over columns
// follows the same "repeat the adjacent pair's score" quirk as ScAlign.
func profileMatchCandidate(matrix [][]float64, colsA, colsB []ProfileColumn, proA, proB ProsodicString,
	scorer Scorer, gapWeight, factor float64, mode Mode, i, j int) (float64, error) {
	var match float64
	if mode != ModeDialign {
		s, err := ScoreProfile(colsA[j-1], colsB[i-1], scorer, gapWeight)
		if err != nil {
			return 0, err
		}
		match = s
	} else {
		limit := i
		if j < limit {
			limit = j
		}
		var best float64
		found := false
		for k := 0; k < limit; k++ {
			cand := matrix[i-k-1][j-k-1]
			for d := 0; d <= k; d++ {
				s, err := ScoreProfile(colsA[j-1], colsB[i-1], scorer, gapWeight)
				if err != nil {
					return 0, err
				}
				cand += s
			}
			if !found || cand > best {
				best, found = cand, true
			}
		}
		match = best - matrix[i-1][j-1]
	}

	switch {
	case proA[j-1] == proB[i-1]:
		return matrix[i-1][j-1] + match + match*factor, nil
	case abs(int(proA[j-1])-int(proB[i-1])) >= 2:
		return matrix[i-1][j-1] + match + match*factor*0.5, nil
	default:
		return matrix[i-1][j-1] + match, nil
	}
}

// tracebackProfile is tracebackGlobal generalized to profile columns.
func tracebackProfile(colsA, colsB []ProfileColumn, traceback [][]TracebackOp) (almA, almB []ProfileColumn) {
	i, j := len(colsB), len(colsA)
	gapCol := func(width int) ProfileColumn {
		col := make(ProfileColumn, width)
		for k := range col {
			col[k] = gapToken
		}
		return col
	}
	for i > 0 || j > 0 {
		switch traceback[i][j] {
		case OpGapA:
			almA = append(almA, gapCol(len(colsB[i-1])))
			almB = append(almB, colsB[i-1])
			i--
		case OpDiag:
			almA = append(almA, colsA[j-1])
			almB = append(almB, colsB[i-1])
			i--
			j--
		default: // OpGapB
			almA = append(almA, colsA[j-1])
			almB = append(almB, gapCol(len(colsA[j-1])))
			j--
		}
	}
	for a, b := 0, len(almA)-1; a < b; a, b = a+1, b-1 {
		almA[a], almA[b] = almA[b], almA[a]
	}
	for a, b := 0, len(almB)-1; a < b; a, b = a+1, b-1 {
		almB[a], almB[b] = almB[b], almB[a]
	}
	return almA, almB
}
