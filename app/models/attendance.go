package models

// AttendanceRecord is one student's attendance for one date. The logical key
// is (student_id, date); storage does not enforce it, the recorder does.
// Score and TeacherID are carried for data-shape compatibility with existing
// attendance files; nothing reads them back.
type AttendanceRecord struct {
	StudentID int              `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Score     int              `json:"score"`
	TeacherID int              `json:"teacher_id"`
	GroupID   int              `json:"group_id"`
}

// AnnotatedRecord is an AttendanceRecord joined with its student's catalog
// fields. Name and CourseID are omitted when the student no longer exists;
// GroupID then stays as recorded.
type AnnotatedRecord struct {
	StudentID int              `json:"student_id"`
	Date      string           `json:"date"`
	Status    AttendanceStatus `json:"status"`
	Score     int              `json:"score"`
	TeacherID int              `json:"teacher_id"`
	GroupID   int              `json:"group_id"`
	Name      string           `json:"name,omitempty"`
	CourseID  *int             `json:"course_id,omitempty"`
}

// AbsentStudent is one row of the absent-today report.
type AbsentStudent struct {
	Name          string `json:"name"`
	GroupNumber   any    `json:"group_number"`
	CourseID      int    `json:"course_id"`
	TotalAbsences int    `json:"total_absences"`
}

// AbsenceSummary is one row of the weekly/monthly absence summary.
type AbsenceSummary struct {
	Name        string `json:"name"`
	GroupNumber any    `json:"group_number"`
	CourseID    int    `json:"course_id"`
	AbsentCount int    `json:"absent_count"`
}
