package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/incident-report/api-go/config"
)

func newLocationRouter(upstream string) *gin.Engine {
	lc := NewLocationController(&config.GeocodeConfig{BaseURL: upstream, APIKey: "test-key"})
	r := gin.New()
	r.GET("/getlocation", lc.GetLocation)
	return r
}

func TestGetLocationResolvesAddress(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("latlng"); got != "40.7128,-74.0060" {
			t.Errorf("unexpected latlng %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("unexpected key %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "OK",
			"results": []map[string]string{
				{"formatted_address": "1 Police Plaza, New York, NY"},
			},
		})
	}))
	defer upstream.Close()

	r := newLocationRouter(upstream.URL)
	w := performRequest(t, r, http.MethodGet, "/getlocation?lat=40.7128&lng=-74.0060", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var data map[string]string
	env := decodeEnvelope(t, w)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("could not decode data: %v", err)
	}
	if data["address"] != "1 Police Plaza, New York, NY" {
		t.Errorf("unexpected address %q", data["address"])
	}
}

func TestGetLocationUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":        "REQUEST_DENIED",
			"error_message": "The provided API key is invalid.",
		})
	}))
	defer upstream.Close()

	r := newLocationRouter(upstream.URL)
	w := performRequest(t, r, http.MethodGet, "/getlocation?lat=1&lng=2", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Message != "The provided API key is invalid." {
		t.Errorf("unexpected message %q", env.Message)
	}
}

func TestGetLocationMissingCoordinates(t *testing.T) {
	r := newLocationRouter("http://unused.invalid")
	w := performRequest(t, r, http.MethodGet, "/getlocation?lat=1", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
