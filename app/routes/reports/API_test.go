package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/storage"
)

func newTestApp(t *testing.T) (*fiber.App, storage.Store) {
	t.Helper()
	store := storage.NewMemoryStore()
	seed := map[string]any{
		database.CollectionUsers: map[string]models.User{
			"admin":    {Password: "admin123", Role: models.RoleAdmin},
			"director": {Password: "director123", Role: models.RoleDirector},
		},
		database.CollectionCourses: []models.Course{{ID: 1, Year: 1}},
		database.CollectionGroups:  []models.Group{{ID: 5, CourseID: 1, Number: "101"}},
		database.CollectionStudents: []models.Student{
			{ID: 1, Name: "Азиз", GroupID: 5, CourseID: 1},
			{ID: 2, Name: "Баҳром", GroupID: 5, CourseID: 1},
		},
	}
	for name, doc := range seed {
		if err := store.Save(name, doc); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	config.AppConfig = &config.Config{Store: store, ReportsDir: t.TempDir()}

	app := fiber.New()
	SetupReportsRoutes(app)
	return app, store
}

func getAs(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: cookie})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format("2006-01-02")
}

func TestAbsentStudentsTodayForbiddenForAdmin(t *testing.T) {
	app, _ := newTestApp(t)
	resp := getAs(t, app, "/api/absent_students/today", "admin:admin")
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for admin, got %d", resp.StatusCode)
	}
}

func TestAbsentStudentsTodayCountsLifetimeRecords(t *testing.T) {
	app, store := newTestApp(t)

	today := time.Now().Format("2006-01-02")
	records := []models.AttendanceRecord{
		{StudentID: 1, Date: today, Status: models.Absent, TeacherID: 1, GroupID: 5},
		{StudentID: 1, Date: "2000-01-01", Status: models.Absent, TeacherID: 1, GroupID: 5},
		// Duplicate record for the same date still counts toward the total.
		{StudentID: 1, Date: "2000-01-01", Status: models.Absent, TeacherID: 1, GroupID: 5},
		{StudentID: 2, Date: today, Status: models.Present, TeacherID: 1, GroupID: 5},
	}
	if err := database.SaveAttendance(store, records); err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	resp := getAs(t, app, "/api/absent_students/today", "director:director")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rows []models.AbsentStudent
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 absent student, got %d", len(rows))
	}
	if rows[0].Name != "Азиз" || rows[0].TotalAbsences != 3 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	if rows[0].GroupNumber != "101" || rows[0].CourseID != 1 {
		t.Fatalf("unexpected catalog join: %+v", rows[0])
	}
}

func TestAbsentSummaryCountsDistinctDates(t *testing.T) {
	app, store := newTestApp(t)

	records := []models.AttendanceRecord{
		// Student 1: absent twice on the same recent date, once on another.
		{StudentID: 1, Date: daysAgo(2), Status: models.Absent, TeacherID: 1, GroupID: 5},
		{StudentID: 1, Date: daysAgo(2), Status: models.Absent, TeacherID: 1, GroupID: 5},
		{StudentID: 1, Date: daysAgo(3), Status: models.Absent, TeacherID: 1, GroupID: 5},
		// Student 2: one absence inside the weekly window.
		{StudentID: 2, Date: daysAgo(1), Status: models.Absent, TeacherID: 1, GroupID: 5},
	}
	if err := database.SaveAttendance(store, records); err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	resp := getAs(t, app, "/api/absent_summary?period=weekly", "director:director")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rows []models.AbsenceSummary
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Sorted by descending absent_count; duplicates collapse to one date.
	if rows[0].Name != "Азиз" || rows[0].AbsentCount != 2 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Name != "Баҳром" || rows[1].AbsentCount != 1 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestAbsentSummaryWindows(t *testing.T) {
	app, store := newTestApp(t)

	records := []models.AttendanceRecord{
		{StudentID: 1, Date: daysAgo(20), Status: models.Absent, TeacherID: 1, GroupID: 5},
		{StudentID: 2, Date: daysAgo(60), Status: models.Absent, TeacherID: 1, GroupID: 5},
	}
	if err := database.SaveAttendance(store, records); err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	resp := getAs(t, app, "/api/absent_summary?period=weekly", "director:director")
	var rows []models.AbsenceSummary
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("weekly window must exclude 20-day-old absence, got %v", rows)
	}

	resp = getAs(t, app, "/api/absent_summary?period=monthly", "director:director")
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Азиз" {
		t.Fatalf("monthly window must include only the 20-day-old absence, got %v", rows)
	}
}

func TestAbsentSummaryDefaultsToWeekly(t *testing.T) {
	app, store := newTestApp(t)
	records := []models.AttendanceRecord{
		{StudentID: 1, Date: daysAgo(20), Status: models.Absent, TeacherID: 1, GroupID: 5},
	}
	if err := database.SaveAttendance(store, records); err != nil {
		t.Fatalf("SaveAttendance: %v", err)
	}

	resp := getAs(t, app, "/api/absent_summary", "director:director")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var rows []models.AbsenceSummary
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("default weekly window must exclude 20-day-old absence, got %v", rows)
	}
}

func TestAbsentSummaryInvalidPeriod(t *testing.T) {
	app, _ := newTestApp(t)
	resp := getAs(t, app, "/api/absent_summary?period=daily", "director:director")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
