package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
)

const (
	msgInvalidDate     = "Санаи нодуруст"
	msgUnknownGroup    = "Гурӯҳи интихобшуда вуҷуд надорад"
	msgInvalidStudents = "Нодурустии формати ID-ҳои донишҷӯён"
)

var validate = validator.New()

type attendanceRequest struct {
	Date            string `form:"date" validate:"omitempty,datetime=2006-01-02"`
	GroupID         int    `form:"group_id"`
	PresentStudents string `form:"present_students"`
}

// parsePresent turns the comma-separated present_students field into the set
// of present student IDs. Tokens that are not in the roster are dropped
// silently; a token that is not an integer aborts the whole request.
func parsePresent(raw string, roster map[int]bool) (map[int]bool, error) {
	present := make(map[int]bool)
	if raw == "" {
		return present, nil
	}
	for _, token := range strings.Split(raw, ",") {
		if token == "" {
			continue
		}
		id, err := strconv.Atoi(token)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, msgInvalidStudents)
		}
		if roster[id] {
			present[id] = true
		}
	}
	return present, nil
}

// RecordAttendanceAPI upserts one day's attendance for a group. The first
// submission for a (group, date) creates one record per roster member; any
// later submission rewrites every existing record's status in place.
func RecordAttendanceAPI(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.FormValue("group_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msgUnknownGroup)
	}
	req := attendanceRequest{
		Date:            c.FormValue("date"),
		GroupID:         groupID,
		PresentStudents: c.FormValue("present_students"),
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msgInvalidDate)
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	store := config.GetStore()
	if req.GroupID == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msgUnknownGroup)
	}
	exists, err := database.GroupExists(store, req.GroupID)
	if err != nil {
		return err
	}
	if !exists {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msgUnknownGroup)
	}

	roster, err := database.GetStudentsByGroup(store, req.GroupID)
	if err != nil {
		return err
	}
	rosterSet := make(map[int]bool, len(roster))
	for _, s := range roster {
		rosterSet[s.ID] = true
	}

	present, err := parsePresent(req.PresentStudents, rosterSet)
	if err != nil {
		return err
	}

	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}

	recorded := false
	for _, r := range attendance {
		if r.GroupID == req.GroupID && r.Date == date {
			recorded = true
			break
		}
	}

	if recorded {
		for i := range attendance {
			if attendance[i].GroupID == req.GroupID && attendance[i].Date == date {
				if present[attendance[i].StudentID] {
					attendance[i].Status = models.Present
				} else {
					attendance[i].Status = models.Absent
				}
			}
		}
		if err := database.SaveAttendance(store, attendance); err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"status":  "updated",
			"message": fmt.Sprintf("Ҳузур барои гурӯҳ %d дар сана %s навсозӣ шуд!", req.GroupID, date),
		})
	}

	for _, s := range roster {
		status := models.Absent
		if present[s.ID] {
			status = models.Present
		}
		attendance = append(attendance, models.AttendanceRecord{
			StudentID: s.ID,
			Date:      date,
			Status:    status,
			Score:     0,
			TeacherID: 1,
			GroupID:   req.GroupID,
		})
	}
	if err := database.SaveAttendance(store, attendance); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Ҳузур барои гурӯҳ %d дар сана %s бо муваффақият захира шуд!", req.GroupID, date),
	})
}

// annotate joins attendance records with the student catalog. Records whose
// student has disappeared keep their stored group_id and carry no name or
// course_id.
func annotate(records []models.AttendanceRecord, students []models.Student) []models.AnnotatedRecord {
	annotated := make([]models.AnnotatedRecord, 0, len(records))
	for _, r := range records {
		row := models.AnnotatedRecord{
			StudentID: r.StudentID,
			Date:      r.Date,
			Status:    r.Status,
			Score:     r.Score,
			TeacherID: r.TeacherID,
			GroupID:   r.GroupID,
		}
		if s, ok := database.FindStudent(students, r.StudentID); ok {
			row.Name = s.Name
			row.GroupID = s.GroupID
			courseID := s.CourseID
			row.CourseID = &courseID
		}
		annotated = append(annotated, row)
	}
	return annotated
}

func GetAttendanceTodayAPI(c *fiber.Ctx) error {
	store := config.GetStore()
	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}
	students, err := database.GetStudents(store)
	if err != nil {
		return err
	}

	today := time.Now().Format("2006-01-02")
	var todays []models.AttendanceRecord
	for _, r := range attendance {
		if r.Date == today {
			todays = append(todays, r)
		}
	}
	return c.JSON(annotate(todays, students))
}

func GetAllAttendanceAPI(c *fiber.Ctx) error {
	store := config.GetStore()
	attendance, err := database.GetAttendance(store)
	if err != nil {
		return err
	}
	students, err := database.GetStudents(store)
	if err != nil {
		return err
	}
	return c.JSON(annotate(attendance, students))
}
