package dto

type AirportResponse struct {
	ID           int     `json:"id"`
	IATACode     string  `json:"iata_code"`
	ICAOCode     string  `json:"icao_code,omitempty"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AltitudeFeet float64 `json:"altitude_feet,omitempty"`
}

type AutocompleteEntry struct {
	IATA    string `json:"iata"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Label   string `json:"label"`
}
