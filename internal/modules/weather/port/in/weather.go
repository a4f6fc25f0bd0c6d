package in

import (
	"context"

	"rovi/internal/modules/weather/dto"
)

type Usecase interface {
	Current(ctx context.Context, city string) (dto.WeatherOutput, error)
}
