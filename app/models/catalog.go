package models

// Course is one course of study. Year carries whatever JSON value the seed
// data holds; the original system never constrains it.
type Course struct {
	ID   int `json:"id"`
	Year any `json:"year"`
}

// Group is a study group within a course. Number, like Course.Year, is an
// unconstrained JSON value.
type Group struct {
	ID       int `json:"id"`
	CourseID int `json:"course_id"`
	Number   any `json:"number"`
}

// Student belongs to exactly one group and one course.
type Student struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	GroupID  int    `json:"group_id"`
	CourseID int    `json:"course_id"`
}
