package main

import (
	"fmt"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

// Seeds starter users and catalog collections so a fresh checkout can log in
// and record attendance. Existing files are overwritten.
func main() {
	config.Init()
	store := config.GetStore()

	users := map[string]models.User{
		"admin":    {Password: "admin123", Role: models.RoleAdmin},
		"director": {Password: "director123", Role: models.RoleDirector},
	}

	courses := []models.Course{
		{ID: 1, Year: 1},
		{ID: 2, Year: 2},
	}

	groups := []models.Group{
		{ID: 1, CourseID: 1, Number: "101"},
		{ID: 2, CourseID: 1, Number: "102"},
		{ID: 3, CourseID: 2, Number: "201"},
	}

	students := []models.Student{
		{ID: 1, Name: "Азиз Раҳимов", GroupID: 1, CourseID: 1},
		{ID: 2, Name: "Баҳром Назаров", GroupID: 1, CourseID: 1},
		{ID: 3, Name: "Дилшод Қосимов", GroupID: 2, CourseID: 1},
		{ID: 4, Name: "Фирӯза Саидова", GroupID: 3, CourseID: 2},
	}

	for name, doc := range map[string]any{
		database.CollectionUsers:    users,
		database.CollectionCourses:  courses,
		database.CollectionGroups:   groups,
		database.CollectionStudents: students,
	} {
		if err := store.Save(name, doc); err != nil {
			fmt.Printf("Error seeding %s: %v\n", name, err)
			return
		}
		fmt.Printf("Seeded %s\n", name)
	}
}
