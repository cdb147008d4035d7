package model

// Location is a latitude and longitude pair, also the body of refresh messages
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ConditionsSource tells where a conditions lookup was answered from
type ConditionsSource string

const (
	SourceCache ConditionsSource = "cache"
	SourceAPI   ConditionsSource = "api"
)
