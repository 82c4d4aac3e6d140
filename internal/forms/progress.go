package forms

import (
	"math"
	"reflect"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

// Progress is the completion state of the collection point form
type Progress struct {
	Percentage int `json:"percentage"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}

// requiredTextFields are the scalar fields counted by CalculateProgress
func requiredTextFields(f models.CollectionPointForm) []string {
	return []string{
		f.Name, f.Description, f.CEP, f.Street, f.Number,
		f.Neighborhood, f.City, f.State, f.Latitude, f.Longitude,
	}
}

// CalculateProgress counts non-blank required fields plus a non-empty waste selection
func CalculateProgress(form models.CollectionPointForm) Progress {
	fields := requiredTextFields(form)
	completed := 0
	for _, v := range fields {
		if strings.TrimSpace(v) != "" {
			completed++
		}
	}
	if len(form.AcceptedWastes) > 0 {
		completed++
	}

	total := len(fields) + 1
	return Progress{
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
		Completed:  completed,
		Total:      total,
	}
}

// CleanFormData trims text fields, strips CEP formatting and copies the waste selection
func CleanFormData(form models.CollectionPointForm) models.CollectionPointForm {
	return models.CollectionPointForm{
		Name:           strings.TrimSpace(form.Name),
		Description:    strings.TrimSpace(form.Description),
		CEP:            utils.CleanCEP(form.CEP),
		Street:         strings.TrimSpace(form.Street),
		Number:         strings.TrimSpace(form.Number),
		Complement:     strings.TrimSpace(form.Complement),
		Neighborhood:   strings.TrimSpace(form.Neighborhood),
		City:           strings.TrimSpace(form.City),
		State:          strings.TrimSpace(form.State),
		Latitude:       strings.TrimSpace(form.Latitude),
		Longitude:      strings.TrimSpace(form.Longitude),
		AcceptedWastes: append([]models.WasteType{}, form.AcceptedWastes...),
	}
}

// IsFormDirty reports whether current differs from initial once both are cleaned
func IsFormDirty(current, initial models.CollectionPointForm) bool {
	return !reflect.DeepEqual(CleanFormData(current), CleanFormData(initial))
}

// FromCollectionPoint rebuilds the form for editing an existing point
func FromCollectionPoint(p models.CollectionPoint) models.CollectionPointForm {
	return models.CollectionPointForm{
		Name:           p.Name,
		Description:    p.Description,
		CEP:            p.Address.CEP,
		Street:         p.Address.Street,
		Number:         p.Address.Number,
		Complement:     p.Address.Complement,
		Neighborhood:   p.Address.Neighborhood,
		City:           p.Address.City,
		State:          p.Address.State,
		Latitude:       utils.FormatCoordinate(p.Coordinates.Latitude),
		Longitude:      utils.FormatCoordinate(p.Coordinates.Longitude),
		AcceptedWastes: append([]models.WasteType{}, p.AcceptedWastes...),
	}
}
