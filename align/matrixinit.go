package align

// newMatrices allocates the (N+1)x(M+1) score and traceback matrices and
// seeds their first row/column according to mode. gopA/gopB are the
// (already gap-weighted) per-column penalties for sequences A and B.
func newMatrices(gopA, gopB GapWeights, mBases, nBases int, mode Mode, scale float64) ([][]float64, [][]TracebackOp) {
	matrix := make([][]float64, nBases+1)
	traceback := make([][]TracebackOp, nBases+1)
	for i := range matrix {
		matrix[i] = make([]float64, mBases+1)
		traceback[i] = make([]TracebackOp, mBases+1)
	}

	switch mode {
	case ModeLocal:
		// everything stays zero; traceback[0][0] stays OpStop, encoding the
		// reset condition at the origin.
		return matrix, traceback
	case ModeGlobal:
		traceback[0][0] = OpDiag
		for j := 1; j <= mBases; j++ {
			matrix[0][j] = matrix[0][j-1] + gopA[j-1]*scale
			traceback[0][j] = OpGapB
		}
		for i := 1; i <= nBases; i++ {
			matrix[i][0] = matrix[i-1][0] + gopB[i-1]*scale
			traceback[i][0] = OpGapA
		}
	case ModeOverlap, ModeDialign:
		traceback[0][0] = OpDiag
		for j := 1; j <= mBases; j++ {
			traceback[0][j] = OpGapB
		}
		for i := 1; i <= nBases; i++ {
			traceback[i][0] = OpGapA
		}
	}
	return matrix, traceback
}
