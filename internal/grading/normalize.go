package grading

import "strings"

//
// fold an answer into the form used for comparison:
// lowercase, runs of whitespace collapsed to a single
// space, no leading or trailing whitespace.
//
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
