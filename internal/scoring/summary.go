package scoring

import "fmt"

// Summarize maps a total score to the canned performance narrative shown on
// the dashboard. Total over all integers.
func Summarize(totalScore int) string {
	performance := "needs improvement"
	recommendation := "May need additional training and support."

	switch {
	case totalScore >= 90:
		performance = "exceptional"
		recommendation = "Outstanding candidate, highly recommended for senior positions."
	case totalScore >= 80:
		performance = "excellent"
		recommendation = "Strong candidate, highly recommended for the position."
	case totalScore >= 70:
		performance = "good"
		recommendation = "Solid candidate with good potential."
	case totalScore >= 60:
		performance = "satisfactory"
		recommendation = "Suitable candidate with room for growth."
	}

	return fmt.Sprintf("Candidate demonstrates %s technical knowledge with an overall score of %d%%. "+
		"Shows understanding of core concepts and problem-solving abilities. %s",
		performance, totalScore, recommendation)
}
