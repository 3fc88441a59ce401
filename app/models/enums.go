package models

// Role defines the possible roles for an application user.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleDirector Role = "director"
)

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)
