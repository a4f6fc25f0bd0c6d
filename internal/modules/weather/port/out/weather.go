package out

import (
	"context"

	"rovi/internal/modules/weather/domain"
)

// Geocoder resolves a city name to coordinates and timezone. A city the
// service cannot find surfaces as apperrors.ErrCityNotFound.
type Geocoder interface {
	Locate(ctx context.Context, city string) (domain.Location, error)
}

// Observer fetches the current reading for a location.
type Observer interface {
	Observe(ctx context.Context, location domain.Location) (domain.Observation, error)
}
