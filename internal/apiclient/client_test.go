package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tripwise/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestClient_UnwrapsEnvelopeAndSendsHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/me", r.URL.Path)
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		assert.Equal(t, "device-1", r.Header.Get("X-Device-Id"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"data":[{"id":7,"tourName":"Tour Đà Lạt 3N2Đ","status":"Paid"}],"message":"ok"}`))
	})

	got, err := c.Bookings().ListMine(context.Background(), Auth{AccessToken: "access-1", DeviceID: "device-1", RequestID: "req-1"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].ID)
	assert.Equal(t, models.BookingPaid, got[0].Status)
}

func TestClient_DecodesStructuredError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"daily limit reached","code":"QUOTA_EXCEEDED"}`))
	})

	_, err := c.Itineraries().Generate(context.Background(), Auth{}, models.ItineraryRequest{Destination: "Huế"})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, CodeQuotaExceeded, apiErr.Code)
	assert.Equal(t, "daily limit reached", apiErr.Message)
	assert.False(t, apiErr.IsUnauthorized())
}

func TestClient_ErrorWithoutBodyUsesStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.Tours().List(context.Background(), Auth{})
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsServer())
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
}

func TestAPIError_IsUnauthorized(t *testing.T) {
	assert.True(t, (&APIError{Status: http.StatusUnauthorized}).IsUnauthorized())
	assert.True(t, (&APIError{Status: http.StatusForbidden, Code: CodeTokenExpired}).IsUnauthorized())
	assert.False(t, (&APIError{Status: http.StatusConflict, Code: CodeDuplicateEmail}).IsUnauthorized())
}

func TestClient_RefundRequestBodyIsForwardedAsIs(t *testing.T) {
	var got models.RefundRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bookings/42/refund", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	in := models.RefundRequest{BookingID: 42, CancelReason: "  sick  ", RefundMethod: "bank_transfer"}
	require.NoError(t, c.Bookings().RequestRefund(context.Background(), Auth{}, in))
	assert.Equal(t, in, got)
}

func TestClient_ModerationQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	got, err := c.Tours().ListForModeration(context.Background(), Auth{}, models.TourPending)
	require.NoError(t, err)
	assert.Empty(t, got)
}
