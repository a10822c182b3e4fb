package domain

import "time"

// Lesson is one unit of a course. Order positions it among its siblings;
// CreatedBy is the account that authored it.
type Lesson struct {
	ID          string      `json:"id"`
	CourseID    string      `json:"courseId"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Content     string      `json:"content"`
	VideoURL    string      `json:"linkVideo"`
	Category    string      `json:"category"`
	Level       CourseLevel `json:"level"`
	AgeGroup    AgeGroup    `json:"ageGroup"`
	Order       int         `json:"order"`
	IsPublished bool        `json:"isPublished"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}
