package reports

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

const msgInvalidPeriod = "Период нодуруст: weekly ё monthly"

// GetAbsentStudentsTodayAPI lists every student with at least one absent
// record today, along with their lifetime absence total. The total counts
// records, not distinct dates, matching the deployed behavior.
func GetAbsentStudentsTodayAPI(c *fiber.Ctx) error {
	store := config.GetStore()
	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}
	students, err := database.GetStudents(store)
	if err != nil {
		return err
	}
	groups, err := database.GetGroups(store)
	if err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	problem := []models.AbsentStudent{}
	for _, student := range students {
		absentToday := false
		totalAbsences := 0
		for _, r := range attendance {
			if r.StudentID != student.ID || r.Status != models.Absent {
				continue
			}
			totalAbsences++
			if r.Date == today {
				absentToday = true
			}
		}
		if absentToday {
			problem = append(problem, models.AbsentStudent{
				Name:          student.Name,
				GroupNumber:   database.GroupNumber(groups, student.GroupID),
				CourseID:      student.CourseID,
				TotalAbsences: totalAbsences,
			})
		}
	}
	return c.JSON(problem)
}

// GetAbsentSummaryAPI counts each student's distinct absence dates within a
// trailing window: 7 days for weekly, 30 for monthly. Students with no
// qualifying absences are omitted; rows sort by descending count.
func GetAbsentSummaryAPI(c *fiber.Ctx) error {
	period := c.Query("period", "weekly")

	var daysBack int
	switch period {
	case "weekly":
		daysBack = 7
	case "monthly":
		daysBack = 30
	default:
		return fiber.NewError(fiber.StatusBadRequest, msgInvalidPeriod)
	}

	store := config.GetStore()
	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}
	students, err := database.GetStudents(store)
	if err != nil {
		return err
	}
	groups, err := database.GetGroups(store)
	if err != nil {
		return err
	}

	startDate := time.Now().AddDate(0, 0, -daysBack).Format("2006-01-02")

	summary := []models.AbsenceSummary{}
	for _, student := range students {
		absentDates := make(map[string]bool)
		for _, r := range attendance {
			if r.StudentID == student.ID && r.Status == models.Absent && r.Date >= startDate {
				absentDates[r.Date] = true
			}
		}
		if len(absentDates) > 0 {
			summary = append(summary, models.AbsenceSummary{
				Name:        student.Name,
				GroupNumber: database.GroupNumber(groups, student.GroupID),
				CourseID:    student.CourseID,
				AbsentCount: len(absentDates),
			})
		}
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].AbsentCount > summary[j].AbsentCount
	})
	return c.JSON(summary)
}
