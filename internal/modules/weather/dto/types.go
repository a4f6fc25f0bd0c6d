package dto

type WeatherOutput struct {
	City        string
	Temperature int
	Code        int
	Condition   string
	Description string
	Timezone    string
}
