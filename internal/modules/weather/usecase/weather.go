package usecase

import (
	"context"

	"rovi/internal/modules/weather/dto"
	weatherin "rovi/internal/modules/weather/port/in"
	"rovi/internal/modules/weather/service"
)

type Interactor struct {
	svc *service.WeatherService
}

func NewInteractor(svc *service.WeatherService) weatherin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Current(ctx context.Context, city string) (dto.WeatherOutput, error) {
	report, err := i.svc.Current(ctx, city)
	if err != nil {
		return dto.WeatherOutput{}, err
	}
	return dto.WeatherOutput{
		City:        report.City,
		Temperature: report.Temperature,
		Code:        report.Code,
		Condition:   string(report.Condition),
		Description: report.Description,
		Timezone:    report.Timezone,
	}, nil
}
