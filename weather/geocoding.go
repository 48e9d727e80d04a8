package weather

// GeocodingPlace is one match of the direct or reverse geocoding endpoints
type GeocodingPlace struct {
	Name        string            `json:"name"`
	LocalNames  map[string]string `json:"local_names,omitempty"`
	Coordinates Coordinates       `json:"coord"`
	CountryCode string            `json:"country"`
	State       string            `json:"state,omitempty"`
}

// LocalName returns the name in the given language code, falling back to Name
func (p GeocodingPlace) LocalName(lang string) string {
	if name, ok := p.LocalNames[lang]; ok && name != "" {
		return name
	}
	return p.Name
}

// ZipCodePlace is the result of a zip/post code lookup
type ZipCodePlace struct {
	Zip         string      `json:"zip"`
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coord"`
	CountryCode string      `json:"country"`
}
