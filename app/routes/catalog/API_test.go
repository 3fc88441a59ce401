package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Anushervon04/SRM/app/config"
	"github.com/Anushervon04/SRM/app/database"
	"github.com/Anushervon04/SRM/app/models"
	"github.com/Anushervon04/SRM/app/storage"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := storage.NewMemoryStore()
	seed := map[string]any{
		database.CollectionUsers: map[string]models.User{
			"admin": {Password: "admin123", Role: models.RoleAdmin},
		},
		database.CollectionCourses: []models.Course{
			{ID: 1, Year: 1},
			{ID: 2, Year: 2},
		},
		database.CollectionGroups: []models.Group{
			{ID: 1, CourseID: 1, Number: "101"},
			{ID: 2, CourseID: 1, Number: "102"},
			{ID: 3, CourseID: 2, Number: "201"},
		},
		database.CollectionStudents: []models.Student{
			{ID: 1, Name: "Азиз", GroupID: 1, CourseID: 1},
			{ID: 2, Name: "Баҳром", GroupID: 2, CourseID: 1},
			{ID: 3, Name: "Дилшод", GroupID: 1, CourseID: 1},
		},
	}
	for name, doc := range seed {
		if err := store.Save(name, doc); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	config.AppConfig = &config.Config{Store: store, ReportsDir: t.TempDir()}

	app := fiber.New()
	SetupCatalogRoutes(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "auth", Value: "admin:admin"})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestGetCourses(t *testing.T) {
	app := newTestApp(t)
	resp := get(t, app, "/api/courses")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var courses []models.Course
	if err := json.NewDecoder(resp.Body).Decode(&courses); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
}

func TestGetGroupsFilteredByCourse(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/groups?course_id=1")
	var groups []models.Group
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups for course 1, got %d", len(groups))
	}

	resp = get(t, app, "/api/groups")
	if err := json.NewDecoder(resp.Body).Decode(&groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("expected all 3 groups without filter, got %d", len(groups))
	}
}

func TestGetStudentsFilteredByGroup(t *testing.T) {
	app := newTestApp(t)

	resp := get(t, app, "/api/students?group_id=1")
	var students []models.Student
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(students) != 2 {
		t.Fatalf("expected 2 students in group 1, got %d", len(students))
	}

	// Filter matching nothing yields an empty list, not null.
	resp = get(t, app, "/api/students?group_id=42")
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Fatalf("expected empty list, got %v", students)
	}
}

func TestGetAllStudents(t *testing.T) {
	app := newTestApp(t)
	resp := get(t, app, "/api/students/all")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var students []models.Student
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(students) != 3 {
		t.Fatalf("expected 3 students, got %d", len(students))
	}
}

func TestNonIntegerFilterRejected(t *testing.T) {
	app := newTestApp(t)
	resp := get(t, app, "/api/groups?course_id=abc")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCatalogRequiresAuth(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}
