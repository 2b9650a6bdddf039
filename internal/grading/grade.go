package grading

import "strconv"

//
// outcome for a single question.
// StudentAnswer and AcceptedVariants hold the original,
// un-normalized text.
//
type QuestionResult struct {
	Question         int      `json:"question"`
	StudentAnswer    string   `json:"studentAnswer"`
	Correct          bool     `json:"correct"`
	AcceptedVariants []string `json:"correctAnswers"`
}

//
// the graded quiz.
// Score is always the number of Results marked correct,
// and len(Results) == Total.
//
type GradeReport struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

//
// grades questions 1..total against the key.
//
// answers: student answers keyed "q1", "q2"...; a missing key
// is graded as an empty answer.
// key: accepted variants; a question missing from the key can
// never be correct.
//
func Grade(answers map[string]string, key AnswerKey, total int) GradeReport {

	if total < 0 {
		total = 0
	}

	report := GradeReport{
		Total:   total,
		Results: make([]QuestionResult, 0, total),
	}

	for i := 1; i <= total; i++ {
		studentAnswer, ok := answers["q"+strconv.Itoa(i)]
		if !ok {
			studentAnswer = ""
		}
		variants := key.Variants(i)

		correct := IsCorrect(studentAnswer, variants)
		if correct {
			report.Score++
		}

		report.Results = append(report.Results, QuestionResult{
			Question:         i,
			StudentAnswer:    studentAnswer,
			Correct:          correct,
			AcceptedVariants: variants,
		})
	}

	return report
}
