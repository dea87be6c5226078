package alphabet

// RestrictedSet is an unordered set of prosodic codes (single code points).
// Positions whose prosodic character is in the set may not be aligned
// against positions whose prosodic character is outside it. align.ScAlign
// applies this asymmetrically: a gap step that consumes a restricted
// position while the other sequence's current position is unrestricted is
// vetoed, except when that other position is the last one of its sequence.
type RestrictedSet struct {
	codes map[rune]struct{}
}

// NewRestrictedSet builds a RestrictedSet from a string of restricted codes,
// e.g. "CV" to mark consonant/vowel onsets as restricted.
func NewRestrictedSet(codes string) *RestrictedSet {
	set := &RestrictedSet{codes: make(map[rune]struct{}, len(codes))}
	for _, r := range codes {
		set.codes[r] = struct{}{}
	}
	return set
}

// Contains reports whether r belongs to the restricted set. A nil
// RestrictedSet contains nothing, so callers may pass one unconditionally.
func (s *RestrictedSet) Contains(r rune) bool {
	if s == nil {
		return false
	}
	_, ok := s.codes[r]
	return ok
}
