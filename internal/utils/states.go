package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
)

var brazilianStates = []models.BrazilianState{
	{Name: "Acre", UF: "AC"},
	{Name: "Alagoas", UF: "AL"},
	{Name: "Amapá", UF: "AP"},
	{Name: "Amazonas", UF: "AM"},
	{Name: "Bahia", UF: "BA"},
	{Name: "Ceará", UF: "CE"},
	{Name: "Distrito Federal", UF: "DF"},
	{Name: "Espírito Santo", UF: "ES"},
	{Name: "Goiás", UF: "GO"},
	{Name: "Maranhão", UF: "MA"},
	{Name: "Mato Grosso", UF: "MT"},
	{Name: "Mato Grosso do Sul", UF: "MS"},
	{Name: "Minas Gerais", UF: "MG"},
	{Name: "Pará", UF: "PA"},
	{Name: "Paraíba", UF: "PB"},
	{Name: "Paraná", UF: "PR"},
	{Name: "Pernambuco", UF: "PE"},
	{Name: "Piauí", UF: "PI"},
	{Name: "Rio de Janeiro", UF: "RJ"},
	{Name: "Rio Grande do Norte", UF: "RN"},
	{Name: "Rio Grande do Sul", UF: "RS"},
	{Name: "Rondônia", UF: "RO"},
	{Name: "Roraima", UF: "RR"},
	{Name: "Santa Catarina", UF: "SC"},
	{Name: "São Paulo", UF: "SP"},
	{Name: "Sergipe", UF: "SE"},
	{Name: "Tocantins", UF: "TO"},
}

// trailing two uppercase letters, e.g. "São Paulo - SP"
var trailingUFRegex = regexp.MustCompile(`(?:^|[^A-Za-z])([A-Z]{2})$`)

// BrazilianStates returns the 27 federative units in alphabetical order
func BrazilianStates() []models.BrazilianState {
	out := make([]models.BrazilianState, len(brazilianStates))
	copy(out, brazilianStates)
	return out
}

// IsKnownUF reports whether uf is one of the 27 state abbreviations
func IsKnownUF(uf string) bool {
	for _, s := range brazilianStates {
		if s.UF == uf {
			return true
		}
	}
	return false
}

// DeriveUF resolves the UF for a free-text state field.
// A trailing known UF token wins, then the state name table (case-insensitive).
// Anything else is models.ErrUnknownState.
func DeriveUF(state string) (string, error) {
	state = strings.TrimSpace(state)

	if m := trailingUFRegex.FindStringSubmatch(state); m != nil && IsKnownUF(m[1]) {
		return m[1], nil
	}

	for _, s := range brazilianStates {
		if strings.EqualFold(s.Name, state) {
			return s.UF, nil
		}
	}

	return "", fmt.Errorf("%w: %q", models.ErrUnknownState, state)
}
