package trivia

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a Chicago trivia expert. Generate fun, interesting trivia questions about Chicago. Always use the provide_questions tool to return your answer.`

// buildUserMessage constructs the generation prompt for a date and count.
// The date is included as a seed so each day's batch is unique to that
// day but stable in theme across regenerations.
func buildUserMessage(dateKey string, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today's date is %s. Generate exactly %d multiple-choice Chicago trivia questions.\n", dateKey, count)
	b.WriteString("The questions should be about Chicago — its history, landmarks, sports teams, food, neighborhoods, culture, or famous people.\n")
	b.WriteString("Use the date as a seed so the questions are unique to this day but deterministic.\n")
	b.WriteString("Each question must have exactly 4 options with exactly one correct answer. Cover different topics — no two questions about the same subject.\n")
	fmt.Fprintf(&b, "\nYou MUST respond by calling the provide_questions function with the %d questions.", count)

	return b.String()
}
