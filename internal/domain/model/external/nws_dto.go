package external

// PointResponse is the api.weather.gov /points/{lat},{lon} document
type PointResponse struct {
	Properties PointProperties `json:"properties"`
}

type PointProperties struct {
	Forecast         string `json:"forecast"`
	ForecastGridData string `json:"forecastGridData"`
	GridID           string `json:"gridId"`
	GridX            int    `json:"gridX"`
	GridY            int    `json:"gridY"`
}

// ForecastResponse is the forecast document linked from a point
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

type ForecastPeriod struct {
	Number          int      `json:"number"`
	Name            string   `json:"name"`
	Temperature     *float64 `json:"temperature"`
	TemperatureUnit string   `json:"temperatureUnit"`
	WindSpeed       string   `json:"windSpeed"`
	WindDirection   string   `json:"windDirection"`
	ShortForecast   string   `json:"shortForecast"`
}

// GridDataResponse is the raw gridpoint document linked from a point
type GridDataResponse struct {
	Properties GridDataProperties `json:"properties"`
}

type GridDataProperties struct {
	RelativeHumidity GridLayer `json:"relativeHumidity"`
}

type GridLayer struct {
	UOM    string           `json:"uom"`
	Values []GridLayerValue `json:"values"`
}

type GridLayerValue struct {
	ValidTime string   `json:"validTime"`
	Value     *float64 `json:"value"`
}

// ProblemResponse is the application/problem+json body returned on errors
type ProblemResponse struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
