package service

import (
	"context"
	"fmt"
	"math"

	"rovi/internal/modules/weather/domain"
	weatherout "rovi/internal/modules/weather/port/out"
	apperrors "rovi/internal/platform/errors"
)

type WeatherService struct {
	geocoder weatherout.Geocoder
	observer weatherout.Observer
}

func NewWeatherService(geocoder weatherout.Geocoder, observer weatherout.Observer) *WeatherService {
	return &WeatherService{geocoder: geocoder, observer: observer}
}

// Current geocodes the city, reads the forecast, and classifies the code.
// The timezone prefers the geocoder's answer, then the forecast's, then UTC.
func (s *WeatherService) Current(ctx context.Context, city string) (domain.Report, error) {
	if city == "" {
		return domain.Report{}, fmt.Errorf("city is required: %w", apperrors.ErrInvalidInput)
	}
	location, err := s.geocoder.Locate(ctx, city)
	if err != nil {
		return domain.Report{}, err
	}
	observation, err := s.observer.Observe(ctx, location)
	if err != nil {
		return domain.Report{}, err
	}

	condition, description := domain.Classify(observation.Code)
	timezone := location.Timezone
	if timezone == "" {
		timezone = observation.Timezone
	}
	if timezone == "" {
		timezone = "UTC"
	}
	return domain.Report{
		City:        location.Name,
		Temperature: int(math.Round(observation.Temperature)),
		Code:        observation.Code,
		Condition:   condition,
		Description: description,
		Timezone:    timezone,
	}, nil
}
