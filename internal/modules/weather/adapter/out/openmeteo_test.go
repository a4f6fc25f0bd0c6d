package out

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"rovi/internal/modules/weather/domain"
	apperrors "rovi/internal/platform/errors"
)

func TestLocateParsesFirstResult(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Miami" {
			t.Errorf("unexpected name param: %q", got)
		}
		if got := r.URL.Query().Get("count"); got != "1" {
			t.Errorf("unexpected count param: %q", got)
		}
		fmt.Fprint(w, `{"results":[{"name":"Miami","latitude":25.77,"longitude":-80.19,"timezone":"America/New_York"}]}`)
	}))
	defer server.Close()

	client := NewOpenMeteoClientWithBase(server.URL, server.URL)
	location, err := client.Locate(context.Background(), "Miami")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if location.Name != "Miami" || location.Timezone != "America/New_York" {
		t.Fatalf("unexpected location: %+v", location)
	}
	if location.Latitude != 25.77 || location.Longitude != -80.19 {
		t.Fatalf("unexpected coordinates: %+v", location)
	}
}

func TestLocateUnknownCity(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer server.Close()

	client := NewOpenMeteoClientWithBase(server.URL, server.URL)
	_, err := client.Locate(context.Background(), "Atlantis")
	if !errors.Is(err, apperrors.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
}

func TestObserveParsesCurrentReading(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("current"); got != "temperature_2m,weather_code" {
			t.Errorf("unexpected current param: %q", got)
		}
		fmt.Fprint(w, `{"timezone":"America/New_York","current":{"temperature_2m":30.6,"weather_code":3}}`)
	}))
	defer server.Close()

	client := NewOpenMeteoClientWithBase(server.URL, server.URL)
	observation, err := client.Observe(context.Background(), domain.Location{Name: "Miami", Latitude: 25.77, Longitude: -80.19})
	if err != nil {
		t.Fatalf("observe: %v", err)
	}
	if observation.Temperature != 30.6 || observation.Code != 3 {
		t.Fatalf("unexpected observation: %+v", observation)
	}
	if observation.Timezone != "America/New_York" {
		t.Fatalf("timezone lost: %+v", observation)
	}
}

func TestGetJSONRejectsNon200(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewOpenMeteoClientWithBase(server.URL, server.URL)
	if _, err := client.Locate(context.Background(), "Miami"); err == nil {
		t.Fatalf("non-200 must error")
	}
}
