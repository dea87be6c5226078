/*
Package lingalign implements a pairwise sequence-alignment core for
computational historical linguistics.

It provides Needleman-Wunsch, Smith-Waterman, Waterman-Eggert, and
Levenshtein edit distance over arbitrary token sequences (align package,
classical.go), alongside three generalized dynamic-programming aligners
built for linguistic data: a context-aware aligner that scores gap
placement and matches against per-position gap weights and prosodic
strings (context.go), a profile-column aligner for already-aligned groups
of sequences (profile.go), and a uniform-penalty aligner for plain token
sequences without linguistic context (basic.go).

None of these aligners constructs its own scoring table, prosodic string,
or sound-class encoding; callers supply those, or fall back to the
package's simple defaults. Multiple-sequence alignment, sound-class
transliteration, and file I/O are the job of other packages built on top
of this one.

Subpackages:

  - align/matrix holds substitution-matrix types and default fill-in
    matrices.
  - alphabet holds discrete-symbol bookkeeping shared by substitution
    matrices and restricted-character sets.
  - internal/ztest holds small golden-value test helpers used across the
    module's test files.
*/
package lingalign
