package enroll

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tnishagarg/Gym-Management-System/internal/member"
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"
	"github.com/tnishagarg/Gym-Management-System/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// list and get join member and workout
	if err := db.AutoMigrate(&Enrollment{}, &member.Member{}, &workout.Workout{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func seedMemberAndWorkout(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()

	m := member.Member{MemFirstName: "Ravi", MemLastName: "Kumar"}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	w := workout.Workout{WorkoutName: "Squat"}
	if err := db.Create(&w).Error; err != nil {
		t.Fatalf("seed workout: %v", err)
	}
	return m.MemID, w.WorkoutID
}

func setupEnrollRouter(t *testing.T, svc EnrollServicePort) (*gin.Engine, *http.Cookie) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	sessions := middlewares.NewSessionStore()
	RegisterRoutes(r, svc, sessions, testSecret)

	sid := sessions.Create(1, "Admin", "admin@gym.com")
	signed, err := middlewares.SignSessionID(sid, testSecret)
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return r, &http.Cookie{Name: middlewares.SessionCookie, Value: signed}
}

func postJSON(r http.Handler, path string, body []byte, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func getReq(r http.Handler, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, b []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(b, out); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}
