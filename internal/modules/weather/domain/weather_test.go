package domain_test

import (
	"testing"

	"rovi/internal/modules/weather/domain"
)

func TestClassifyKnownCodes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code int
		want domain.Condition
	}{
		{0, domain.ConditionClear},
		{3, domain.ConditionCloud},
		{45, domain.ConditionFog},
		{55, domain.ConditionRain},
		{65, domain.ConditionRain},
		{75, domain.ConditionSnow},
		{82, domain.ConditionRain},
		{86, domain.ConditionSnow},
		{99, domain.ConditionRain},
	}
	for _, tc := range cases {
		condition, description := domain.Classify(tc.code)
		if condition != tc.want {
			t.Fatalf("code %d: got %s, want %s", tc.code, condition, tc.want)
		}
		if description == "" || description == "Unknown" {
			t.Fatalf("code %d: missing description", tc.code)
		}
	}
}

func TestClassifyUnknownCodeDefaultsClear(t *testing.T) {
	t.Parallel()
	condition, description := domain.Classify(42)
	if condition != domain.ConditionClear || description != "Unknown" {
		t.Fatalf("unknown code: got %s/%s", condition, description)
	}
}
