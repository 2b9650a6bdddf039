package grading

// MaxDistance is the largest edit distance still accepted as a spelling slip.
const MaxDistance = 2

//
// reports whether the student answer matches any of the accepted
// variants, either exactly after normalization or within MaxDistance
// edits.
//
// an empty answer is never correct, even against an empty variant.
//
func IsCorrect(studentAnswer string, variants []string) bool {

	s := Normalize(studentAnswer)
	if s == "" {
		return false
	}

	for _, v := range variants {
		target := Normalize(v)
		if target == "" {
			continue
		}
		if s == target {
			return true
		}
		if Distance(s, target) <= MaxDistance {
			return true
		}
	}

	return false
}
