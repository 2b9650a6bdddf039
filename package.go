//
// web service that grades the past perfect grammar quiz.
// students post their name, group and the 30 fill-in answers;
// answers are compared to the answer key ignoring case and extra
// whitespace, and allowing a couple of spelling slips.
// the graded result is returned to the student and a summary
// is forwarded to the class telegram chat.
//
package grammarquiz
