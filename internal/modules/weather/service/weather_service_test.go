package service

import (
	"context"
	"errors"
	"testing"

	"rovi/internal/modules/weather/domain"
	apperrors "rovi/internal/platform/errors"
)

type fakeGeocoder struct {
	location domain.Location
	err      error
}

func (f fakeGeocoder) Locate(context.Context, string) (domain.Location, error) {
	return f.location, f.err
}

type fakeObserver struct {
	observation domain.Observation
	err         error
}

func (f fakeObserver) Observe(context.Context, domain.Location) (domain.Observation, error) {
	return f.observation, f.err
}

func TestCurrentRoundsAndClassifies(t *testing.T) {
	t.Parallel()
	svc := NewWeatherService(
		fakeGeocoder{location: domain.Location{Name: "Miami", Timezone: "America/New_York"}},
		fakeObserver{observation: domain.Observation{Temperature: 30.6, Code: 3, Timezone: "Etc/GMT+5"}},
	)
	report, err := svc.Current(context.Background(), "Miami")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if report.Temperature != 31 {
		t.Fatalf("temperature must round, got %d", report.Temperature)
	}
	if report.Condition != domain.ConditionCloud || report.Description != "Overcast" {
		t.Fatalf("unexpected classification: %+v", report)
	}
	if report.Timezone != "America/New_York" {
		t.Fatalf("geocoder timezone must win: %q", report.Timezone)
	}
}

func TestCurrentTimezoneFallbacks(t *testing.T) {
	t.Parallel()
	svc := NewWeatherService(
		fakeGeocoder{location: domain.Location{Name: "Miami"}},
		fakeObserver{observation: domain.Observation{Timezone: "America/New_York"}},
	)
	report, err := svc.Current(context.Background(), "Miami")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if report.Timezone != "America/New_York" {
		t.Fatalf("forecast timezone must be the fallback: %q", report.Timezone)
	}

	svc = NewWeatherService(fakeGeocoder{location: domain.Location{Name: "Miami"}}, fakeObserver{})
	report, err = svc.Current(context.Background(), "Miami")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if report.Timezone != "UTC" {
		t.Fatalf("UTC is the last resort: %q", report.Timezone)
	}
}

func TestCurrentPropagatesErrors(t *testing.T) {
	t.Parallel()
	svc := NewWeatherService(fakeGeocoder{err: apperrors.ErrCityNotFound}, fakeObserver{})
	if _, err := svc.Current(context.Background(), "Atlantis"); !errors.Is(err, apperrors.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}
	svc = NewWeatherService(fakeGeocoder{}, fakeObserver{err: errors.New("unreachable")})
	if _, err := svc.Current(context.Background(), "Miami"); err == nil {
		t.Fatalf("observer failure must surface")
	}
	if _, err := NewWeatherService(fakeGeocoder{}, fakeObserver{}).Current(context.Background(), ""); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("empty city must be rejected")
	}
}
