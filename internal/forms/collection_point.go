package forms

import (
	"fmt"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

type rule func(models.CollectionPointForm) string

// lengthRule checks a required trimmed text against inclusive rune bounds.
// max <= 0 disables the upper bound.
func lengthRule(required, tooShort, tooLong string, min, max int) func(string) string {
	return func(value string) string {
		v := strings.TrimSpace(value)
		switch {
		case v == "":
			return required
		case utils.RuneLen(v) < min:
			return tooShort
		case max > 0 && utils.RuneLen(v) > max:
			return tooLong
		}
		return ""
	}
}

var (
	checkName = lengthRule("Nome do local é obrigatório",
		"Nome deve ter pelo menos 3 caracteres", "Nome deve ter no máximo 100 caracteres", 3, 100)
	checkDescription = lengthRule("Descrição é obrigatória",
		"Descrição deve ter pelo menos 10 caracteres", "Descrição deve ter no máximo 500 caracteres", 10, 500)
	checkStreet = lengthRule("Rua é obrigatória",
		"Rua deve ter pelo menos 3 caracteres", "Rua deve ter no máximo 100 caracteres", 3, 100)
	checkNeighborhood = lengthRule("Bairro é obrigatório",
		"Bairro deve ter pelo menos 2 caracteres", "Bairro deve ter no máximo 50 caracteres", 2, 50)
	checkCity = lengthRule("Cidade é obrigatória",
		"Cidade deve ter pelo menos 2 caracteres", "Cidade deve ter no máximo 50 caracteres", 2, 50)
	checkState = lengthRule("Estado é obrigatório",
		"Estado deve ter pelo menos 2 caracteres", "", 2, 0)
)

func checkCEP(value string) string {
	if strings.TrimSpace(value) == "" {
		return "CEP é obrigatório"
	}
	if !utils.IsValidCEP(value) {
		return "CEP deve ter 8 dígitos"
	}
	return ""
}

func checkNumber(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Número é obrigatório"
	}
	if !utils.IsValidAddressNumber(value) {
		return "Número deve conter apenas dígitos e opcionalmente uma letra"
	}
	return ""
}

func checkAcceptedWastes(wastes []models.WasteType) string {
	if len(wastes) == 0 {
		return "Selecione pelo menos um tipo de resíduo"
	}
	if len(wastes) > models.MaxAcceptedWastes {
		return fmt.Sprintf("Máximo de %d tipos de resíduos permitidos", models.MaxAcceptedWastes)
	}
	for _, w := range wastes {
		if !w.IsValid() {
			return fmt.Sprintf("Tipo de resíduo inválido: %s", w)
		}
	}
	return ""
}

// collectionPointRules maps every validated field to its typed rule.
// The complement is optional and has no rule.
var collectionPointRules = map[Field]rule{
	FieldName:           func(f models.CollectionPointForm) string { return checkName(f.Name) },
	FieldDescription:    func(f models.CollectionPointForm) string { return checkDescription(f.Description) },
	FieldCEP:            func(f models.CollectionPointForm) string { return checkCEP(f.CEP) },
	FieldStreet:         func(f models.CollectionPointForm) string { return checkStreet(f.Street) },
	FieldNumber:         func(f models.CollectionPointForm) string { return checkNumber(f.Number) },
	FieldNeighborhood:   func(f models.CollectionPointForm) string { return checkNeighborhood(f.Neighborhood) },
	FieldCity:           func(f models.CollectionPointForm) string { return checkCity(f.City) },
	FieldState:          func(f models.CollectionPointForm) string { return checkState(f.State) },
	FieldLatitude:       func(f models.CollectionPointForm) string { return utils.LatitudeError(f.Latitude) },
	FieldLongitude:      func(f models.CollectionPointForm) string { return utils.LongitudeError(f.Longitude) },
	FieldAcceptedWastes: func(f models.CollectionPointForm) string { return checkAcceptedWastes(f.AcceptedWastes) },
}

// ValidateCollectionPointForm runs every field rule and returns the violated ones
func ValidateCollectionPointForm(form models.CollectionPointForm) Errors {
	errs := Errors{}
	for field, check := range collectionPointRules {
		if msg := check(form); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// ValidateField validates form with only field replaced by value and returns
// that field's message, or "" when it is valid.
func ValidateField(field Field, value Value, rest models.CollectionPointForm) string {
	check, ok := collectionPointRules[field]
	if !ok {
		return ""
	}
	return check(WithField(rest, field, value))
}
