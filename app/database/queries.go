package database

import (
	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/storage"
)

// Collection names as stored on disk.
const (
	CollectionUsers      = "users"
	CollectionCourses    = "courses"
	CollectionGroups     = "groups"
	CollectionStudents   = "students"
	CollectionAttendance = "attendance"
)

func GetUsers(store storage.Store) (map[string]models.User, error) {
	users := make(map[string]models.User)
	if err := store.Load(CollectionUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func GetCourses(store storage.Store) ([]models.Course, error) {
	var courses []models.Course
	if err := store.Load(CollectionCourses, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func GetGroups(store storage.Store) ([]models.Group, error) {
	var groups []models.Group
	if err := store.Load(CollectionGroups, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func GetStudents(store storage.Store) ([]models.Student, error) {
	var students []models.Student
	if err := store.Load(CollectionStudents, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func GetAttendance(store storage.Store) ([]models.AttendanceRecord, error) {
	var attendance []models.AttendanceRecord
	if err := store.Load(CollectionAttendance, &attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

func SaveAttendance(store storage.Store, attendance []models.AttendanceRecord) error {
	if attendance == nil {
		attendance = []models.AttendanceRecord{}
	}
	return store.Save(CollectionAttendance, attendance)
}

// GetStudentsByGroup returns the group's roster in storage order.
func GetStudentsByGroup(store storage.Store, groupID int) ([]models.Student, error) {
	students, err := GetStudents(store)
	if err != nil {
		return nil, err
	}
	var roster []models.Student
	for _, s := range students {
		if s.GroupID == groupID {
			roster = append(roster, s)
		}
	}
	return roster, nil
}

func GroupExists(store storage.Store, groupID int) (bool, error) {
	groups, err := GetGroups(store)
	if err != nil {
		return false, err
	}
	for _, g := range groups {
		if g.ID == groupID {
			return true, nil
		}
	}
	return false, nil
}

// GroupNumber resolves a group's number, defaulting to "Unknown" when the
// group is missing from the catalog.
func GroupNumber(groups []models.Group, groupID int) any {
	for _, g := range groups {
		if g.ID == groupID {
			return g.Number
		}
	}
	return "Unknown"
}

// CourseYear resolves a course's year, defaulting to "Unknown" when the
// course is missing from the catalog.
func CourseYear(courses []models.Course, courseID int) any {
	for _, c := range courses {
		if c.ID == courseID {
			return c.Year
		}
	}
	return "Unknown"
}

// FindStudent looks a student up by ID; the second return reports presence.
func FindStudent(students []models.Student, studentID int) (models.Student, bool) {
	for _, s := range students {
		if s.ID == studentID {
			return s, true
		}
	}
	return models.Student{}, false
}
