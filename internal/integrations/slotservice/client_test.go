package slotservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_ListAvailable(t *testing.T) {
	startsAt := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/professionals/7/slots", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("available"))
		assert.Equal(t, "1000", r.URL.Query().Get("page_size"))

		json.NewEncoder(w).Encode(SlotListResponse{
			Items: []Slot{
				{ID: 10, ProfessionalID: 7, StartsAt: startsAt, EndsAt: startsAt.Add(time.Hour), Available: true},
				{ID: 11, ProfessionalID: 7, StartsAt: startsAt.Add(time.Hour), EndsAt: startsAt.Add(2 * time.Hour), Available: true},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	slots, err := client.ListAvailable(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, int64(10), slots[0].ID)
	assert.True(t, slots[0].StartsAt.Equal(startsAt))
	assert.True(t, slots[0].EndsAt.Equal(startsAt.Add(time.Hour)))
}

func TestClient_ListAvailable_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	_, err := client.ListAvailable(context.Background(), 7)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestClient_ListAvailable_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже остановлен

	client := NewClient(server.URL, time.Second, 1000, nopLogger{})

	_, err := client.ListAvailable(context.Background(), 7)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestClient_ListAvailable_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	_, err := client.ListAvailable(context.Background(), 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_SetAvailability(t *testing.T) {
	var gotBody SetAvailabilityRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/slots/10/availability", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	err := client.SetAvailability(context.Background(), 10, false)

	require.NoError(t, err)
	assert.False(t, gotBody.Available)
}

func TestClient_SetAvailability_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	err := client.SetAvailability(context.Background(), 10, false)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestClient_SetAvailability_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, 1000, nopLogger{})

	err := client.SetAvailability(context.Background(), 10, false)

	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
