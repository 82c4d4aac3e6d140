package models

// CEPAddress is the address fragment resolved from a postal code.
// Empty fields were not returned by the lookup service.
type CEPAddress struct {
	CEP          string `json:"cep"`
	Street       string `json:"street,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
}

// Position is a device position fix
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Region is the coarse region inferred from a CEP prefix
type Region struct {
	Region   string `json:"region"`
	State    string `json:"state"`
	TimeZone string `json:"timeZone"`
}

// BrazilianState pairs a state name with its UF
type BrazilianState struct {
	Name string `json:"name"`
	UF   string `json:"uf"`
}
