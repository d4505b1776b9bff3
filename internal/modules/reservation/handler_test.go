package reservation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"hotelreserve/internal/domain"
	"hotelreserve/internal/modules/payment"
	"hotelreserve/internal/repository"
	"hotelreserve/internal/store"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testLogger()
	roomRepo := repository.NewRoomRepository(domain.DefaultInventory())
	guestRepo := repository.NewGuestRepository()
	bookingRepo := repository.NewBookingRepository()
	bookingStore := store.New(filepath.Join(t.TempDir(), "bookings_data.csv"), log)
	pay := payment.NewService(repository.NewSequence("PAY", 5), nil, log)

	svc := NewService(roomRepo, guestRepo, bookingRepo, pay, bookingStore, log)
	svc.now = func() time.Time {
		return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	}
	handler := NewHandler(svc)

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)
	return router
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var payload apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestCreateBookingEndpoint(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-01", "2024-06-04"))
	require.Equal(t, http.StatusCreated, resp.Code)

	payload := decode(t, resp)
	require.True(t, payload.Success)

	var b domain.Booking
	require.NoError(t, json.Unmarshal(payload.Data, &b))
	require.Equal(t, "BK00001", b.ID)
	require.Equal(t, domain.BookingConfirmed, b.Status)
	require.NotNil(t, b.Payment)
	require.True(t, b.Payment.Successful)
}

func TestCreateBookingConflictEndpoint(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-01", "2024-06-04"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-02", "2024-06-03"))
	require.Equal(t, http.StatusConflict, resp.Code)
	require.Equal(t, "NOT_AVAILABLE", decode(t, resp).Error.Code)
}

func TestCreateBookingValidationEndpoint(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-04", "2024-06-01"))
	require.Equal(t, http.StatusBadRequest, resp.Code)

	// Missing required fields are caught by binding and reported
	// per field in the error details.
	resp = performRequest(router, http.MethodPost, "/api/v1/bookings",
		map[string]string{"guest_name": "Alice"})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	payload := decode(t, resp)
	require.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	require.Equal(t, "CheckIn is required", payload.Error.Details["CheckIn"])
	require.Equal(t, "RoomNumber is required", payload.Error.Details["RoomNumber"])
	require.NotContains(t, payload.Error.Details, "GuestName")

	// A malformed body is not a field error and carries no details.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	raw := httptest.NewRecorder()
	router.ServeHTTP(raw, req)
	require.Equal(t, http.StatusBadRequest, raw.Code)
	payload = decode(t, raw)
	require.Equal(t, "VALIDATION_ERROR", payload.Error.Code)
	require.Empty(t, payload.Error.Details)
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("201", "2024-06-01", "2024-06-03"))
	require.Equal(t, http.StatusCreated, resp.Code)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &b))

	// Check-out before check-in is rejected with the current status.
	resp = performRequest(router, http.MethodPost, "/api/v1/bookings/"+b.ID+"/checkout", nil)
	require.Equal(t, http.StatusConflict, resp.Code)
	require.Equal(t, "INVALID_STATUS", decode(t, resp).Error.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings/"+b.ID+"/checkin", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings/"+b.ID+"/checkout", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Booking   domain.Booking `json:"booking"`
		TotalCost string         `json:"total_cost"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &out))
	require.Equal(t, domain.BookingCheckedOut, out.Booking.Status)
	require.Equal(t, "300", out.TotalCost)
}

func TestCancelEndpointReportsRefund(t *testing.T) {
	router := setupRouter(t)

	// now is pinned to 2024-05-01; check-in a month out gets a full refund.
	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-01", "2024-06-04"))
	require.Equal(t, http.StatusCreated, resp.Code)
	var b domain.Booking
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &b))

	resp = performRequest(router, http.MethodPost, "/api/v1/bookings/"+b.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Refund string `json:"refund"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &out))
	require.Equal(t, "240", out.Refund)
}

func TestGetUnknownBookingEndpoint(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/bookings/BK99999", nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
	require.Equal(t, "NOT_FOUND", decode(t, resp).Error.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodGet,
		"/api/v1/rooms/search?check_in=2024-06-01&check_out=2024-06-03&category=suite", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Offers []RoomOffer `json:"offers"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &out))
	require.Len(t, out.Offers, 4)

	resp = performRequest(router, http.MethodGet,
		"/api/v1/rooms/search?check_in=2024-06-03&check_out=2024-06-01", nil)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListEndpointIncludesSummary(t *testing.T) {
	router := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/bookings",
		createReq("101", "2024-06-01", "2024-06-04"))
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/bookings", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Bookings []domain.Booking `json:"bookings"`
		Summary  Summary          `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, &out))
	require.Len(t, out.Bookings, 1)
	require.Equal(t, 1, out.Summary.Total)
	require.Equal(t, 1, out.Summary.Confirmed)
	require.Equal(t, "240.00", out.Summary.Revenue.StringFixed(2))
}
