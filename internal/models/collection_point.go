package models

import "time"

// WasteType is a recyclable material category accepted by a collection point
type WasteType string

const (
	WasteGlass       WasteType = "Vidro"
	WasteMetal       WasteType = "Metal"
	WastePaper       WasteType = "Papel"
	WastePlastic     WasteType = "Plástico"
	WasteOrganic     WasteType = "Orgânico"
	WasteBatteries   WasteType = "Baterias"
	WasteElectronics WasteType = "Eletrônicos"
	WasteOil         WasteType = "Óleo"
)

// MaxAcceptedWastes is the number of distinct waste types.
const MaxAcceptedWastes = 8

// AllWasteTypes lists the closed set of waste types in display order.
func AllWasteTypes() []WasteType {
	return []WasteType{
		WasteGlass, WasteMetal, WastePaper, WastePlastic,
		WasteOrganic, WasteBatteries, WasteElectronics, WasteOil,
	}
}

// IsValid reports whether w belongs to the closed set.
func (w WasteType) IsValid() bool {
	for _, known := range AllWasteTypes() {
		if w == known {
			return true
		}
	}
	return false
}

// Coordinates is a WGS84 position
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CollectionPoint is a user-submitted location accepting recyclable waste
type CollectionPoint struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	UserID         string      `json:"userId"`
	Address        Address     `json:"address"`
	Coordinates    Coordinates `json:"coordinates"`
	AcceptedWastes []WasteType `json:"acceptedWastes"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// CollectionPointForm is the raw collection point form as typed by the user.
// Coordinates stay as strings until the record is created.
type CollectionPointForm struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	CEP            string      `json:"cep"`
	Street         string      `json:"street"`
	Number         string      `json:"number"`
	Complement     string      `json:"complement"`
	Neighborhood   string      `json:"neighborhood"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	Latitude       string      `json:"latitude"`
	Longitude      string      `json:"longitude"`
	AcceptedWastes []WasteType `json:"acceptedWastes"`
}

// CollectionPointStats aggregates the stored collection points
type CollectionPointStats struct {
	Total       int               `json:"total"`
	ByWasteType map[WasteType]int `json:"byWasteType"`
	ByCity      map[string]int    `json:"byCity"`
	Recent      int               `json:"recent"`
}
