package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/YeyeJames/jiale15/Controllers"
	"github.com/YeyeJames/jiale15/Models"
	"github.com/YeyeJames/jiale15/Routes"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Models.Store) {
	t.Helper()
	t.Setenv("API_SECRET", "test-secret")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")
	gin.SetMode(gin.TestMode)

	db, err := Models.OpenDataBase(filepath.Join(t.TempDir(), "clinic.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	store := Models.NewStore(db)

	router := gin.New()
	Routes.ConfigRoutes(router, Controllers.New(store), store)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	reply := map[string]any{}
	if w.Body.Len() > 0 {
		// Non-JSON replies (middleware rejections) are left undecoded.
		_ = json.Unmarshal(w.Body.Bytes(), &reply)
	}
	return w, reply
}

func login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()
	w, reply := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": username,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, w.Code, w.Body.String())
	}
	token, ok := reply["jwt"].(string)
	if !ok || token == "" {
		t.Fatalf("login %s: no jwt in reply %v", username, reply)
	}
	return token
}

func TestLoginAndCurrentUser(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "jiale",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials: expected 401, got %d", w.Code)
	}

	token := login(t, router, "jiale", "jiale")

	w, reply := doJSON(t, router, http.MethodGet, "/api/protected/user", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("current user: expected 200, got %d", w.Code)
	}
	data := reply["data"].(map[string]any)
	if data["username"] != "jiale" || data["role"] != Models.RoleAdmin {
		t.Fatalf("unexpected current user %v", data)
	}
}

func TestProtectedRequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/protected/FetchDayStats?date=2024-01-01", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestStaffCannotUseAdminRoutes(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "staff", "staff")

	w, _ := doJSON(t, router, http.MethodPost, "/api/protected/admin/AddTherapist", token, gin.H{
		"name": "林治療師",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for staff on admin route, got %d", w.Code)
	}
}

func TestBookCheckInResetDeleteFlow(t *testing.T) {
	router, store := newTestRouter(t)
	admin := login(t, router, "jiale", "jiale")

	w, reply := doJSON(t, router, http.MethodPost, "/api/protected/admin/AddTherapist", admin, gin.H{
		"name": "林治療師",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add therapist: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	therapistID := uint(reply["data"].(map[string]any)["ID"].(float64))

	treatment, err := store.ListTreatments()
	if err != nil || len(treatment) == 0 {
		t.Fatalf("seeded treatments missing: %v", err)
	}

	staff := login(t, router, "staff", "staff")
	w, reply = doJSON(t, router, http.MethodPost, "/api/protected/BookAppointment", staff, gin.H{
		"patient_name": "王小明",
		"date":         "2024-01-01",
		"time":         "09:00",
		"therapist_id": therapistID,
		"treatment_id": treatment[0].ID,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("book: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	booked := reply["data"].(map[string]any)
	appointmentID := booked["id"].(float64)
	if booked["status"] != Models.StatusScheduled || booked["paid_amount"].(float64) != 0 {
		t.Fatalf("unexpected booking %v", booked)
	}

	// Financial transitions refuse to run without explicit confirmation.
	w, _ = doJSON(t, router, http.MethodPost, "/api/protected/CheckInAppointment", staff, gin.H{
		"id": appointmentID,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unconfirmed check-in: expected 400, got %d", w.Code)
	}

	w, reply = doJSON(t, router, http.MethodPost, "/api/protected/CheckInAppointment", staff, gin.H{
		"id":      appointmentID,
		"confirm": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("check-in: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	checked := reply["data"].(map[string]any)
	if checked["is_paid"] != true || checked["paid_amount"].(float64) != treatment[0].Price {
		t.Fatalf("check-in did not collect payment: %v", checked)
	}

	w, reply = doJSON(t, router, http.MethodGet, "/api/protected/FetchDayStats?date=2024-01-01", staff, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("day stats: expected 200, got %d", w.Code)
	}
	stats := reply["data"].(map[string]any)
	if stats["appointment_count"].(float64) != 1 || stats["total_revenue"].(float64) != treatment[0].Price {
		t.Fatalf("unexpected day stats %v", stats)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/protected/ResetAppointment", staff, gin.H{
		"id":      appointmentID,
		"confirm": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}

	w, reply = doJSON(t, router, http.MethodGet, "/api/protected/FetchDayStats?date=2024-01-01", staff, nil)
	stats = reply["data"].(map[string]any)
	if stats["appointment_count"].(float64) != 1 || stats["total_revenue"].(float64) != 0 {
		t.Fatalf("stats after reset: %v", stats)
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/protected/DeleteAppointment", staff, gin.H{
		"id":      appointmentID,
		"confirm": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", w.Code)
	}

	w, reply = doJSON(t, router, http.MethodGet, "/api/protected/FetchDaySchedule?date=2024-01-01", staff, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("day schedule: expected 200, got %d", w.Code)
	}
	rows := reply["data"].([]any)
	if len(rows) != 0 {
		t.Fatalf("expected empty day after delete, got %d rows", len(rows))
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/protected/DeleteAppointment", staff, gin.H{
		"id":      appointmentID,
		"confirm": true,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete: expected 404, got %d", w.Code)
	}
}

func TestExportDaySales(t *testing.T) {
	router, store := newTestRouter(t)

	therapist, err := store.AddTherapist("林治療師", 30)
	if err != nil {
		t.Fatalf("add therapist: %v", err)
	}
	treatments, err := store.ListTreatments()
	if err != nil || len(treatments) == 0 {
		t.Fatalf("seeded treatments missing: %v", err)
	}
	if _, err := store.CreateAppointment(Models.Appointment{
		PatientName: "王小明",
		Date:        "2024-01-01",
		Time:        "09:00",
		TherapistID: therapist.ID,
		TreatmentID: treatments[0].ID,
	}); err != nil {
		t.Fatalf("book: %v", err)
	}
	t.Cleanup(func() { os.Remove("./DaySales_2024-01-01.xlsx") })

	staff := login(t, router, "staff", "staff")
	w, _ := doJSON(t, router, http.MethodPost, "/api/protected/ExportDaySales", staff, gin.H{
		"date": "2024-01-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if w.Body.Len() == 0 {
		t.Fatal("export returned an empty body")
	}
	// .xlsx files are zip archives.
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("PK")) {
		t.Fatalf("export body is not an xlsx archive, starts with %q", w.Body.Bytes()[:2])
	}

	w, _ = doJSON(t, router, http.MethodPost, "/api/protected/ExportDaySales", staff, gin.H{
		"date": "01-01-2024",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad date: expected 400, got %d", w.Code)
	}
}

func TestBookRejectsUnresolvableSelection(t *testing.T) {
	router, _ := newTestRouter(t)
	staff := login(t, router, "staff", "staff")

	w, _ := doJSON(t, router, http.MethodPost, "/api/protected/BookAppointment", staff, gin.H{
		"patient_name": "王小明",
		"date":         "2024-01-01",
		"time":         "09:00",
		"therapist_id": 12345,
		"treatment_id": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unresolvable therapist: expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestFetchDayScheduleValidatesDate(t *testing.T) {
	router, _ := newTestRouter(t)
	staff := login(t, router, "staff", "staff")

	for _, path := range []string{
		"/api/protected/FetchDaySchedule?date=01-01-2024",
		"/api/protected/FetchDaySchedule",
		fmt.Sprintf("/api/protected/FetchDayStats?date=%s", "2024-13-40"),
	} {
		w, _ := doJSON(t, router, http.MethodGet, path, staff, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, w.Code)
		}
	}
}
