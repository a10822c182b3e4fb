package domain

import "time"

type AgeGroup string

const (
	AgeGroup3to5   AgeGroup = "3-5"
	AgeGroup6to9   AgeGroup = "6-9"
	AgeGroup10to12 AgeGroup = "10-12"
	AgeGroup13Plus AgeGroup = "13+"
)

type CourseLevel string

const (
	LevelBasic        CourseLevel = "basic"
	LevelIntermediate CourseLevel = "intermediate"
	LevelAdvanced     CourseLevel = "advanced"
)

// Course is a catalog entry. InstructorID references a TeacherProfile.
type Course struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	AgeGroup     AgeGroup    `json:"ageGroup"`
	Level        CourseLevel `json:"level"`
	InstructorID string      `json:"instructor,omitempty"`
	Thumbnail    string      `json:"thumbnail,omitempty"`
	IsPremium    bool        `json:"isPremium"`
	IsPublished  bool        `json:"isPublished"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
