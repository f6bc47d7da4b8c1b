package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

func TestAPIClient_SearchActivities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search-activities" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var criteria dto.SearchCriteria
		if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil || criteria.City != "Boston, MA" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`[{"id":1,"name":"Park Day","time":"Sunday","description":"Fun","location":"Common","distance":"1 mile","icon":"🌳"}]`))
	}))
	defer server.Close()

	client := NewAPIClient(server.Client(), server.URL)
	activities, err := client.SearchActivities(context.Background(), dto.SearchCriteria{
		City: "Boston, MA", KidAges: "4,7", Availability: "Sunday morning", MaxDistance: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activities) != 1 || activities[0].ID != 1 || activities[0].Name != "Park Day" {
		t.Fatalf("unexpected activities: %+v", activities)
	}
}

func TestAPIClient_ServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(dto.ServerErrorResponse{
			Error:   "Failed to get activity recommendations",
			Message: "no text content in Claude response",
		})
	}))
	defer server.Close()

	client := NewAPIClient(server.Client(), server.URL)
	_, err := client.SearchActivities(context.Background(), dto.SearchCriteria{})
	if err == nil || err.Error() != "no text content in Claude response" {
		t.Fatalf("expected server message surfaced, got %v", err)
	}
}

func TestAPIClient_FallbackErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("gateway timeout"))
	}))
	defer server.Close()

	client := NewAPIClient(server.Client(), server.URL)
	_, err := client.SearchActivities(context.Background(), dto.SearchCriteria{})
	if err == nil || err.Error() != "Failed to fetch activities" {
		t.Fatalf("expected generic fallback, got %v", err)
	}
}
