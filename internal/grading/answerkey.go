package grading

// QuestionCount is the fixed number of questions in the quiz.
const QuestionCount = 30

//
// AnswerKey maps a question number to its accepted answer variants,
// in the order they are shown to the student.
//
type AnswerKey map[int][]string

//
// returns the accepted variants for question q,
// or an empty list if the key has no entry for it.
//
func (k AnswerKey) Variants(q int) []string {
	if v, ok := k[q]; ok && v != nil {
		return v
	}
	return []string{}
}

// students write the whole missing verb phrase
var grammarKey = AnswerKey{
	1:  {"had already cooked"},
	2:  {"had been studying"},
	3:  {"had not finished", "hadn't finished"},
	4:  {"had been trying"},
	5:  {"had been crying"},
	6:  {"had not seen", "hadn't seen"},
	7:  {"had been waiting"},
	8:  {"had been playing"},
	9:  {"had not been sleeping", "hadn't been sleeping"},
	10: {"had just washed"},
	11: {"had she put", "had put"},
	12: {"had been working", "had worked"},
	13: {"had never been"},
	14: {"had not been paying", "hadn't been paying"},
	15: {"had he said"},
	16: {"had been driving"},
	17: {"had been practising", "had been practicing"},
	18: {"had not met", "hadn't met"},
	19: {"had she visited"},
	20: {"had already left"},
	21: {"had been looking"},
	22: {"had been living"},
	23: {"had not read", "hadn't read"},
	24: {"had been working"},
	25: {"had left", "had already left"},
	26: {"had not eaten", "hadn't eaten"},
	27: {"had been laughing"},
	28: {"had been sleeping"},
	29: {"had not cleaned", "hadn't cleaned"},
	30: {"had been playing"},
}

//
// the quiz answer key. it is shared by every request and
// must be treated as read-only.
//
func Key() AnswerKey {
	return grammarKey
}
