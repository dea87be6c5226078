package align

// Scorer is a scoring capability dispatched once at the call site between an
// explicit lookup table and the simple +1/-1 strategy, per the DESIGN NOTES
// "dynamic dispatch of scorer" guidance.
type Scorer interface {
	Score(a, b Token) (float64, error)
}

// ScoringTable is a mapping from (token, token) pairs to a real-valued
// score. It must be defined for every pair encountered by the caller's
// alignment; a missing pair surfaces as ErrMissingScore rather than being
// silently treated as zero.
type ScoringTable map[[2]Token]float64

// Score looks up the pair (a, b) in the table.
func (t ScoringTable) Score(a, b Token) (float64, error) {
	if v, ok := t[[2]Token{a, b}]; ok {
		return v, nil
	}
	if v, ok := t[[2]Token{b, a}]; ok {
		return v, nil
	}
	return 0, &ErrMissingScore{A: a, B: b}
}

// SimpleScorer is the fallback +1/-1 scorer used when the caller supplies no
// table: +1 for an exact match, -1 otherwise. It never errors.
type SimpleScorer struct{}

// Score implements Scorer.
func (SimpleScorer) Score(a, b Token) (float64, error) {
	if a == b {
		return 1.0, nil
	}
	return -1.0, nil
}

// scorerOrDefault returns scorer unchanged, or SimpleScorer{} if scorer is nil,
// matching the spec's "score_simple" fallback for an unsupplied table.
func scorerOrDefault(scorer Scorer) Scorer {
	if scorer == nil {
		return SimpleScorer{}
	}
	return scorer
}

// gapToken is the sentinel token that marks a gap within a profile column.
const gapToken = "X"

func isGapToken(t Token) bool {
	return t == gapToken
}

// ProfileColumn is one column of an already-built alignment: an ordered list
// of tokens of equal length across all columns of the profile, possibly
// containing the gap sentinel "X".
type ProfileColumn = []Token

// ScoreProfile scores a pair of profile columns by averaging the score of
// every cross-pair of non-gap tokens, counting each gap-involving pair as
// gapWeight toward the denominator without contributing to the numerator.
// If the count ends at zero (for example, every pair involves a gap and
// gapWeight is 0) the result is 0 rather than a division by zero.
func ScoreProfile(colA, colB ProfileColumn, scorer Scorer, gapWeight float64) (float64, error) {
	scorer = scorerOrDefault(scorer)
	var sum, count float64
	for _, x := range colA {
		for _, y := range colB {
			if !isGapToken(x) && !isGapToken(y) {
				s, err := scorer.Score(x, y)
				if err != nil {
					return 0, err
				}
				sum += s
				count++
			} else {
				count += gapWeight
			}
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / count, nil
}

// SelfScoreContext computes the self-alignment baseline used by ScAlign's
// distance normalization: the sum over positions of the token's
// self-similarity scaled by (1+factor), since a position always matches
// itself under the prosodic bonus rule.
func SelfScoreContext(seq Sequence, scorer Scorer, factor float64) (float64, error) {
	scorer = scorerOrDefault(scorer)
	var total float64
	for _, tok := range seq {
		s, err := scorer.Score(tok, tok)
		if err != nil {
			return 0, err
		}
		total += s * (1 + factor)
	}
	return total, nil
}

// SelfScoreBasic computes the self-alignment baseline used by BasicAlign's
// distance normalization, with no prosodic scaling.
func SelfScoreBasic(seq Sequence, scorer Scorer) (float64, error) {
	scorer = scorerOrDefault(scorer)
	var total float64
	for _, tok := range seq {
		s, err := scorer.Score(tok, tok)
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total, nil
}
