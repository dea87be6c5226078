package align

// tracebackGlobal walks a completed traceback matrix from (nBases, mBases)
// to the origin, producing the two aligned sequences.
func tracebackGlobal(seqA, seqB Sequence, traceback [][]TracebackOp) (almA, almB []Token) {
	i, j := len(seqB), len(seqA)
	for i > 0 || j > 0 {
		switch traceback[i][j] {
		case OpGapA:
			almA = append(almA, gapSymbol)
			almB = append(almB, seqB[i-1])
			i--
		case OpDiag:
			almA = append(almA, seqA[j-1])
			almB = append(almB, seqB[i-1])
			i--
			j--
		default: // OpGapB
			almA = append(almA, seqA[j-1])
			almB = append(almB, gapSymbol)
			j--
		}
	}
	reverseTokens(almA)
	reverseTokens(almB)
	return almA, almB
}

// tracebackLocal walks a completed traceback matrix from the recorded
// global-maximum cell (k, l) back to the first reset cell, then splits each
// sequence into the prefix before, the aligned core, and the suffix after
// the aligned region.
func tracebackLocal(seqA, seqB Sequence, traceback [][]TracebackOp, k, l int) LocalAlignment {
	var coreA, coreB []Token
	i, j := k, l
	for traceback[i][j] != OpStop {
		switch traceback[i][j] {
		case OpGapA:
			coreA = append(coreA, gapSymbol)
			coreB = append(coreB, seqB[i-1])
			i--
		case OpDiag:
			coreA = append(coreA, seqA[j-1])
			coreB = append(coreB, seqB[i-1])
			i--
			j--
		default: // OpGapB
			coreA = append(coreA, seqA[j-1])
			coreB = append(coreB, gapSymbol)
			j--
		}
	}
	reverseTokens(coreA)
	reverseTokens(coreB)

	return LocalAlignment{
		PrefixA: append([]Token{}, seqA[:j]...),
		CoreA:   coreA,
		SuffixA: append([]Token{}, seqA[l:]...),
		PrefixB: append([]Token{}, seqB[:i]...),
		CoreB:   coreB,
		SuffixB: append([]Token{}, seqB[k:]...),
	}
}

func reverseTokens(s []Token) {
	for a, b := 0, len(s)-1; a < b; a, b = a+1, b-1 {
		s[a], s[b] = s[b], s[a]
	}
}
