package grammarquiz

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var errMissingFields = errors.New("Missing name, group or answers")

//
// a quiz as posted by a student
//
type Submission struct {
	Name    string
	Group   string
	Answers map[string]string
}

//
// reads the posted json body into a Submission.
//
// name, group and answers must all be present and non-empty,
// otherwise errMissingFields is returned. a body that is not
// valid json is treated the same way.
// individual answers that are null, false, 0 or "" become
// empty strings, anything else is taken in its string form.
//
func parseSubmission(body []byte) (*Submission, error) {

	if !gjson.ValidBytes(body) {
		return nil, errMissingFields
	}

	fields := gjson.GetManyBytes(body, "name", "group", "answers")
	name, group, answers := fields[0], fields[1], fields[2]
	if !truthy(name) || !truthy(group) || !truthy(answers) {
		return nil, errMissingFields
	}

	sub := &Submission{
		Name:    name.String(),
		Group:   group.String(),
		Answers: map[string]string{},
	}

	if answers.IsObject() {
		answers.ForEach(func(key, value gjson.Result) bool {
			if truthy(value) {
				sub.Answers[key.String()] = value.String()
			} else {
				sub.Answers[key.String()] = ""
			}
			return true
		})
	}

	return sub, nil
}

//
// loose json truthiness: missing, null, false,
// empty string and zero are all false
//
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	default:
		return true
	}
}
