package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nsip/grammar-quiz/internal/grading"
)

//
// builds the human readable summary of a graded quiz
// that is sent to the class chat.
//
// user supplied text is escaped for telegram's HTML parse mode.
//
func FormatReport(name, group string, report grading.GradeReport) string {

	lines := make([]string, 0, len(report.Results)+6)
	lines = append(lines,
		"🧪 New Grammar Test Result",
		"👤 Name: "+escape(name),
		"👥 Group: "+escape(group),
		fmt.Sprintf("✅ Score: %d / %d", report.Score, report.Total),
		"",
		"Answers:",
	)

	for _, r := range report.Results {
		mark := "❌"
		if r.Correct {
			mark = "✅"
		}
		variants := make([]string, len(r.AcceptedVariants))
		for i, v := range r.AcceptedVariants {
			variants[i] = escape(v)
		}
		lines = append(lines, fmt.Sprintf("%d) Student: \"%s\" | Correct: %s | Key: %s",
			r.Question, escape(r.StudentAnswer), mark, strings.Join(variants, " / ")))
	}

	return strings.Join(lines, "\n")
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}
