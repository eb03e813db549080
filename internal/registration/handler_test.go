package registration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(repo, nil))

	r := gin.New()
	r.POST("/registrations", h.Register)
	r.POST("/registrations/:id/checkin", h.CheckIn)
	r.POST("/registrations/:id/checkout", h.CheckOut)
	r.POST("/registrations/:id/feedback", h.SubmitFeedback)
	r.GET("/events/:id/registrations", h.ListByEvent)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler_Created(t *testing.T) {
	repo := newFakeRepo()
	seedEventAndParish(repo, intPtr(10), 0)
	r := newTestRouter(repo)

	w := postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message      string          `json:"message"`
		Registration *RegisterResult `json:"registration"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Registration confirmed", body.Message)
	require.NotNil(t, body.Registration)
	assert.Equal(t, "Weekend Food Pantry", body.Registration.EventTitle)
}

func TestRegisterHandler_ValidationError(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	// Missing required fields fails binding.
	w := postJSON(t, r, "/registrations", `{"event_id": 42}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email fails binding.
	w = postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "Maria", "volunteer_email": "not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterHandler_NotFound(t *testing.T) {
	r := newTestRouter(newFakeRepo())

	w := postJSON(t, r, "/registrations",
		`{"event_id": 99, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterHandler_Conflicts(t *testing.T) {
	repo := newFakeRepo()
	seedEventAndParish(repo, intPtr(1), 0)
	r := newTestRouter(repo)

	body := `{"event_id": 42, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`
	w := postJSON(t, r, "/registrations", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate signup.
	w = postJSON(t, r, "/registrations", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Event filled up by the first registration.
	w = postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "John Doe", "volunteer_email": "john@example.com"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFeedbackHandler_RatingBounds(t *testing.T) {
	repo := newFakeRepo()
	seedEventAndParish(repo, intPtr(10), 0)
	r := newTestRouter(repo)

	w := postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/registrations/1/feedback", `{"rating": 6}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/registrations/1/feedback", `{"rating": 5, "feedback": "Great experience"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckOutHandler_WithoutCheckIn(t *testing.T) {
	repo := newFakeRepo()
	seedEventAndParish(repo, intPtr(10), 0)
	r := newTestRouter(repo)

	w := postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/registrations/1/checkout", `{}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(t, r, "/registrations/1/checkin", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = postJSON(t, r, "/registrations/1/checkout", `{}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListByEventHandler(t *testing.T) {
	repo := newFakeRepo()
	seedEventAndParish(repo, intPtr(10), 0)
	r := newTestRouter(repo)

	w := postJSON(t, r, "/registrations",
		`{"event_id": 42, "volunteer_name": "Maria Garcia", "volunteer_email": "maria@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/events/42/registrations", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	var body struct {
		Count         int            `json:"count"`
		Registrations []Registration `json:"registrations"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Registrations, 1)
	assert.Equal(t, StatusConfirmed, body.Registrations[0].Status)
}
