package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playland-backend/internal/camera"
	"playland-backend/internal/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.AppStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(nil, 20)
	feed := camera.NewFeed(time.Hour)
	handler := NewHandler(s, feed, nil, nil, nil)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/state", handler.GetState)
		api.POST("/children", handler.PostChild)
		api.PATCH("/children/:id", handler.PatchChild)
		api.DELETE("/children/:id", handler.DeleteChild)
		api.POST("/bookings", handler.PostBooking)
		api.POST("/bookings/:id/extend", handler.ExtendBooking)
		api.POST("/bookings/:id/complete", handler.CompleteBooking)
		api.GET("/bookings/recent", handler.GetRecentBookings)
		api.POST("/waiting-list", handler.PostWaitingList)
		api.DELETE("/waiting-list/:id", handler.DeleteWaitingList)
		api.GET("/occupancy", handler.GetOccupancy)
		api.GET("/catalog", handler.GetCatalog)
		api.GET("/camera", handler.GetCamera)
		api.POST("/camera/live", handler.PostCameraLive)
		api.PUT("/subscriptions", handler.PutSubscription)
	}
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostChild_CreatesChild(t *testing.T) {
	r, s := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/children", gin.H{
		"name":      "Mia",
		"age":       4,
		"allergies": []string{"peanuts"},
		"avatar":    "👧",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var child store.Child
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &child))
	assert.NotEmpty(t, child.ID)
	assert.Equal(t, "Mia", child.Name)
	require.Len(t, s.State().Children, 1)
}

func TestPostChild_RejectsMissingFields(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/children", gin.H{"name": "Mia"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/children", gin.H{"age": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/children", gin.H{"name": "Mia", "age": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchChild_PartialUpdate(t *testing.T) {
	r, s := setupRouter(t)
	child, err := s.AddChild(store.ChildParams{Name: "Mia", Age: 4, Notes: "naps at 2pm"})
	require.NoError(t, err)

	w := doJSON(t, r, "PATCH", "/api/children/"+child.ID, gin.H{"age": 5})
	require.Equal(t, http.StatusNoContent, w.Code)

	got := s.State().Children[0]
	assert.Equal(t, 5, got.Age)
	assert.Equal(t, "Mia", got.Name)
	assert.Equal(t, "naps at 2pm", got.Notes)
}

func TestBookingLifecycle(t *testing.T) {
	r, s := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/bookings", gin.H{
		"childId":       "child_1",
		"childName":     "Mia",
		"date":          "2024-06-01",
		"timeSlot":      "9:00 AM",
		"duration":      60,
		"payment":       25,
		"paymentMethod": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var booking store.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, store.StatusActive, booking.Status)
	assert.Equal(t, 1, s.State().CurrentOccupancy)

	w = doJSON(t, r, "POST", "/api/bookings/"+booking.ID+"/extend", gin.H{
		"additionalMinutes": 30,
		"additionalPayment": 10,
	})
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 90, s.State().Bookings[0].Duration)
	assert.Equal(t, 35.0, s.State().Bookings[0].Payment)

	w = doJSON(t, r, "POST", "/api/bookings/"+booking.ID+"/complete", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, store.StatusCompleted, s.State().Bookings[0].Status)
	assert.Equal(t, 0, s.State().CurrentOccupancy)
}

func TestPostBooking_RejectsUnknownPaymentMethod(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/bookings", gin.H{
		"childId":       "child_1",
		"childName":     "Mia",
		"date":          "2024-06-01",
		"timeSlot":      "9:00 AM",
		"duration":      60,
		"paymentMethod": "wire",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecentBookings_LimitValidation(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/bookings/recent?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "GET", "/api/bookings/recent?limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWaitingListEndpoints(t *testing.T) {
	r, s := setupRouter(t)

	w := doJSON(t, r, "POST", "/api/waiting-list", gin.H{
		"childId":   "child_1",
		"childName": "Mia",
		"date":      "2024-06-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var entry store.WaitingListEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, 1, entry.Position)

	w = doJSON(t, r, "DELETE", "/api/waiting-list/"+entry.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, s.State().WaitingList)
}

func TestGetOccupancy(t *testing.T) {
	r, s := setupRouter(t)
	_, err := s.ShiftOccupancy(12)
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/api/occupancy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"current":12,"max":20,"level":"medium"}`, w.Body.String())
}

func TestCameraToggle(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/camera", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"live":false,"frame":0}`, w.Body.String())

	w = doJSON(t, r, "POST", "/api/camera/live", gin.H{"live": true})
	require.Equal(t, http.StatusOK, w.Code)

	var resp cameraResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Live)

	w = doJSON(t, r, "POST", "/api/camera/live", gin.H{"live": false})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetCatalog(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "GET", "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TimeSlots      []string `json:"timeSlots"`
		ExtensionPrice float64  `json:"extensionPrice"`
		Durations      []struct {
			Minutes int     `json:"minutes"`
			Price   float64 `json:"price"`
		} `json:"durations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.TimeSlots, 9)
	assert.Len(t, resp.Durations, 4)
	assert.Equal(t, 10.0, resp.ExtensionPrice)
}

func TestPutSubscription_RejectsInvalidBody(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, "PUT", "/api/subscriptions", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
