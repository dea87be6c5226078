package align

// BasicResult is the result of BasicAlign.
type BasicResult struct {
	AlignedA, AlignedB []Token
	Local              *LocalAlignment
	Similarity         float64
	Distance           float64
	HasDistance        bool
}

// BasicAlign is the uniform-gap-penalty counterpart of ScAlign: the same
// recurrence skeleton (global/local/overlap/dialign, consecutive-gap
// rescaling, dialign diagonal runs) without per-column gap weights,
// restricted-character constraints, or the prosodic match bonus.
func BasicAlign(seqA, seqB Sequence, gop int, scale float64, scorer Scorer,
	mode Mode, distance bool) (*BasicResult, error) {

	switch mode {
	case ModeGlobal, ModeLocal, ModeOverlap, ModeDialign:
	default:
		return nil, &ErrInvalidMode{Mode: string(mode), Op: "BasicAlign"}
	}
	scorer = scorerOrDefault(scorer)

	mBases, nBases := len(seqA), len(seqB)
	gopA := make(GapWeights, mBases)
	gopB := make(GapWeights, nBases)
	for k := range gopA {
		gopA[k] = float64(gop)
	}
	for k := range gopB {
		gopB[k] = float64(gop)
	}

	matrix, traceback := newMatrices(gopA, gopB, mBases, nBases, mode, scale)

	var best float64
	var bestI, bestJ int

	for i := 1; i <= nBases; i++ {
		for j := 1; j <= mBases; j++ {
			gapA := basicGapACandidate(matrix, traceback, gopB, mode, i, j, mBases, scale)
			gapB := basicGapBCandidate(matrix, traceback, gopA, mode, i, j, nBases, scale)
			match, err := basicMatchCandidate(matrix, seqA, seqB, scorer, mode, i, j)
			if err != nil {
				return nil, err
			}

			switch mode {
			case ModeLocal:
				v, op, ok := pickLocal(gapA, match, gapB)
				if !ok {
					matrix[i][j] = 0
					traceback[i][j] = OpStop
				} else {
					matrix[i][j] = v
					traceback[i][j] = op
				}
				if matrix[i][j] >= best {
					best = matrix[i][j]
					bestI, bestJ = i, j
				}
			default:
				v, op := pickBest(gapA, match, gapB)
				matrix[i][j] = v
				traceback[i][j] = op
			}
		}
	}

	result := &BasicResult{}
	if mode == ModeLocal {
		result.Similarity = best
		local := tracebackLocal(seqA, seqB, traceback, bestI, bestJ)
		result.Local = &local
	} else {
		result.Similarity = matrix[nBases][mBases]
		almA, almB := tracebackGlobal(seqA, seqB, traceback)
		result.AlignedA, result.AlignedB = almA, almB
	}

	if distance {
		selfA, err := SelfScoreBasic(seqA, scorer)
		if err != nil {
			return nil, err
		}
		selfB, err := SelfScoreBasic(seqB, scorer)
		if err != nil {
			return nil, err
		}
		result.Distance = downeyDistance(result.Similarity, selfA, selfB)
		result.HasDistance = true
	}
	return result, nil
}

func basicGapACandidate(matrix [][]float64, traceback [][]TracebackOp, gopB GapWeights, mode Mode, i, j, mBases int, scale float64) float64 {
	switch {
	case j == mBases && mode == ModeOverlap:
		return matrix[i-1][j]
	case mode == ModeDialign:
		return matrix[i-1][j]
	case traceback[i-1][j] == OpGapA:
		return matrix[i-1][j] + gopB[i-1]*scale
	default:
		return matrix[i-1][j] + gopB[i-1]
	}
}

func basicGapBCandidate(matrix [][]float64, traceback [][]TracebackOp, gopA GapWeights, mode Mode, i, j, nBases int, scale float64) float64 {
	switch {
	case i == nBases && mode == ModeOverlap:
		return matrix[i][j-1]
	case mode == ModeDialign:
		return matrix[i][j-1]
	case traceback[i][j-1] == OpGapB:
		return matrix[i][j-1] + gopA[j-1]*scale
	default:
		return matrix[i][j-1] + gopA[j-1]
	}
}

func basicMatchCandidate(matrix [][]float64, seqA, seqB Sequence, scorer Scorer, mode Mode, i, j int) (float64, error) {
	if mode != ModeDialign {
		s, err := scorer.Score(seqA[j-1], seqB[i-1])
		if err != nil {
			return 0, err
		}
		return matrix[i-1][j-1] + s, nil
	}
	limit := i
	if j < limit {
		limit = j
	}
	var best float64
	found := false
	for k := 0; k < limit; k++ {
		cand := matrix[i-k-1][j-k-1]
		for d := 0; d <= k; d++ {
			s, err := scorer.Score(seqA[j-1], seqB[i-1])
			if err != nil {
				return 0, err
			}
			cand += s
		}
		if !found || cand > best {
			best, found = cand, true
		}
	}
	return matrix[i-1][j-1] + (best - matrix[i-1][j-1]), nil
}
