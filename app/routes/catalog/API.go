package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

// intQuery parses an optional integer query parameter. Absent or empty means
// zero, which the callers treat as "no filter" (the deployed system never
// used zero as a real ID).
func intQuery(c *fiber.Ctx, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "Invalid "+name)
	}
	return value, nil
}

func GetCoursesAPI(c *fiber.Ctx) error {
	courses, err := database.GetCourses(config.GetStore())
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return c.JSON(courses)
}

func GetGroupsAPI(c *fiber.Ctx) error {
	courseID, err := intQuery(c, "course_id")
	if err != nil {
		return err
	}

	groups, err := database.GetGroups(config.GetStore())
	if err != nil {
		return err
	}
	if courseID != 0 {
		filtered := []models.Group{}
		for _, g := range groups {
			if g.CourseID == courseID {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}
	if groups == nil {
		groups = []models.Group{}
	}
	return c.JSON(groups)
}

func GetStudentsAPI(c *fiber.Ctx) error {
	groupID, err := intQuery(c, "group_id")
	if err != nil {
		return err
	}

	students, err := database.GetStudents(config.GetStore())
	if err != nil {
		return err
	}
	if groupID != 0 {
		filtered := []models.Student{}
		for _, s := range students {
			if s.GroupID == groupID {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(students)
}

func GetAllStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetStudents(config.GetStore())
	if err != nil {
		return err
	}
	if students == nil {
		students = []models.Student{}
	}
	return c.JSON(students)
}
