package in

import (
	"context"

	weatherdto "rovi/internal/modules/weather/dto"
	weatherin "rovi/internal/modules/weather/port/in"
)

type CLIHandler struct {
	usecase weatherin.Usecase
}

func NewCLIHandler(usecase weatherin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Current(ctx context.Context, city string) (weatherdto.WeatherOutput, error) {
	return h.usecase.Current(ctx, city)
}
