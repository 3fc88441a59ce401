package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

const (
	msgNoMonthlyData = "Маълумот барои моҳи ҷорӣ вуҷуд надорад."
)

// GenerateMonthlyReportAPI writes the current month's absence report to a
// text file and then deletes that month's attendance records from the store.
// The file becomes the only remaining record of the month. With no records
// for the month this is a no-op.
func GenerateMonthlyReportAPI(c *fiber.Ctx) error {
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
	courses, err := database.GetCourses(store)
	if err != nil {
		return err
	}

	yearMonth := time.Now().Format("2006-01")

	var monthly []models.AttendanceRecord
	for _, r := range attendance {
		if strings.HasPrefix(r.Date, yearMonth) {
			monthly = append(monthly, r)
		}
	}
	if len(monthly) == 0 {
		return c.JSON(fiber.Map{"message": msgNoMonthlyData})
	}

	fileName := fmt.Sprintf("monthly_attendance_%s.txt", yearMonth)
	body := renderMonthlyReport(yearMonth, monthly, students, groups, courses)
	if err := os.WriteFile(filepath.Join(config.GetReportsDir(), fileName), []byte(body), 0644); err != nil {
		return err
	}

	remaining := []models.AttendanceRecord{}
	for _, r := range attendance {
		if !strings.HasPrefix(r.Date, yearMonth) {
			remaining = append(remaining, r)
		}
	}
	if err := database.SaveAttendance(store, remaining); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": fmt.Sprintf("Ҳисобот дар файл %s захира шуд.", fileName)})
}

// renderMonthlyReport lays out the report text: one block per student with at
// least one absence in the month, listing the sorted distinct absence dates
// and their count.
func renderMonthlyReport(yearMonth string, monthly []models.AttendanceRecord, students []models.Student, groups []models.Group, courses []models.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ҳисоботи моҳона барои %s\n\n", yearMonth)

	for _, student := range students {
		dates := make(map[string]bool)
		for _, r := range monthly {
			if r.StudentID == student.ID && r.Status == models.Absent {
				dates[r.Date] = true
			}
		}
		if len(dates) == 0 {
			continue
		}

		sorted := make([]string, 0, len(dates))
		for d := range dates {
			sorted = append(sorted, d)
		}
		sort.Strings(sorted)

		fmt.Fprintf(&b, "Донишҷӯ: %s\n", student.Name)
		fmt.Fprintf(&b, "Гурӯҳ: %v\n", database.GroupNumber(groups, student.GroupID))
		fmt.Fprintf(&b, "Курс: %v\n", database.CourseYear(courses, student.CourseID))
		fmt.Fprintf(&b, "Рӯзҳои ғоиб: %s\n", strings.Join(sorted, ", "))
		fmt.Fprintf(&b, "Шумораи умумӣ: %d\n\n", len(sorted))
	}
	return b.String()
}
