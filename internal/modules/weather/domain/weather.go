package domain

// Condition is the coarse bucket widgets render an icon from.
type Condition string

const (
	ConditionClear Condition = "clear"
	ConditionCloud Condition = "cloud"
	ConditionFog   Condition = "fog"
	ConditionRain  Condition = "rain"
	ConditionSnow  Condition = "snow"
)

// Location is a geocoded city.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string // IANA name, may be empty
}

// Observation is the raw current-weather reading for a location.
type Observation struct {
	Temperature float64 // Celsius
	Code        int     // WMO weather code
	Timezone    string
}

// Report is the classified, display-ready weather.
type Report struct {
	City        string
	Temperature int // Celsius, rounded
	Code        int
	Condition   Condition
	Description string
	Timezone    string
}

type codeInfo struct {
	condition   Condition
	description string
}

// wmoCodes maps the WMO weather interpretation codes the forecast service
// emits onto coarse conditions.
var wmoCodes = map[int]codeInfo{
	0:  {ConditionClear, "Clear sky"},
	1:  {ConditionClear, "Mainly clear"},
	2:  {ConditionCloud, "Partly cloudy"},
	3:  {ConditionCloud, "Overcast"},
	45: {ConditionFog, "Fog"},
	48: {ConditionFog, "Depositing rime fog"},
	51: {ConditionRain, "Light drizzle"},
	53: {ConditionRain, "Moderate drizzle"},
	55: {ConditionRain, "Dense drizzle"},
	56: {ConditionRain, "Light freezing drizzle"},
	57: {ConditionRain, "Dense freezing drizzle"},
	61: {ConditionRain, "Slight rain"},
	63: {ConditionRain, "Moderate rain"},
	65: {ConditionRain, "Heavy rain"},
	66: {ConditionRain, "Light freezing rain"},
	67: {ConditionRain, "Heavy freezing rain"},
	71: {ConditionSnow, "Slight snow fall"},
	73: {ConditionSnow, "Moderate snow fall"},
	75: {ConditionSnow, "Heavy snow fall"},
	77: {ConditionSnow, "Snow grains"},
	80: {ConditionRain, "Slight rain showers"},
	81: {ConditionRain, "Moderate rain showers"},
	82: {ConditionRain, "Violent rain showers"},
	85: {ConditionSnow, "Slight snow showers"},
	86: {ConditionSnow, "Heavy snow showers"},
	95: {ConditionRain, "Thunderstorm"},
	96: {ConditionRain, "Thunderstorm with slight hail"},
	99: {ConditionRain, "Thunderstorm with heavy hail"},
}

// Classify buckets a WMO code. Unknown codes come back as a clear condition
// with an "Unknown" description rather than an error.
func Classify(code int) (Condition, string) {
	if info, ok := wmoCodes[code]; ok {
		return info.condition, info.description
	}
	return ConditionClear, "Unknown"
}
