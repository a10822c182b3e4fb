package domain

import "time"

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionOpenEnded      QuestionType = "open-ended"
)

// DefaultQuestionPoints is awarded for a question that names no points.
const DefaultQuestionPoints = 10

// Question is one item of an assessment. CorrectAnswer is a string for
// multiple-choice and open-ended questions and a bool for true-false ones.
type Question struct {
	Text          string       `json:"questionText"`
	Type          QuestionType `json:"questionType"`
	Options       []string     `json:"options"`
	CorrectAnswer any          `json:"correctAnswer"`
	Points        int          `json:"points"`
}

// Assessment is the test attached to a lesson. TotalPoints is always the sum
// of its questions' points.
type Assessment struct {
	ID          string     `json:"id"`
	LessonID    string     `json:"lessonId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	TotalPoints int        `json:"totalPoints"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SumPoints returns the total of the questions' points.
func SumPoints(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.Points
	}
	return total
}
