package utils

import (
	"github.com/recicla365/app-ecopontos/internal/models"
)

// CleanCEP strips formatting from a postal code
func CleanCEP(cep string) string {
	return OnlyDigits(cep)
}

// IsValidCEP reports whether cep has exactly 8 digits once formatting is removed
func IsValidCEP(cep string) bool {
	return len(CleanCEP(cep)) == 8
}

// FormatCEP renders a complete CEP as NNNNN-NNN. Incomplete input is returned unchanged.
func FormatCEP(cep string) string {
	clean := CleanCEP(cep)
	if len(clean) != 8 {
		return cep
	}
	return clean[:5] + "-" + clean[5:]
}

// MaskCEP applies the NNNNN-NNN mask progressively while the user types.
// Digits beyond the eighth are dropped.
func MaskCEP(value string) string {
	clean := CleanCEP(value)
	if len(clean) <= 5 {
		return clean
	}
	if len(clean) > 8 {
		clean = clean[:8]
	}
	return clean[:5] + "-" + clean[5:]
}

var cepRegions = map[byte]models.Region{
	'0': {Region: "São Paulo (SP)", State: "SP", TimeZone: "America/Sao_Paulo"},
	'1': {Region: "São Paulo (SP)", State: "SP", TimeZone: "America/Sao_Paulo"},
	'2': {Region: "Rio de Janeiro e Espírito Santo", State: "RJ", TimeZone: "America/Sao_Paulo"},
	'3': {Region: "Minas Gerais", State: "MG", TimeZone: "America/Sao_Paulo"},
	'4': {Region: "Bahia e Sergipe", State: "BA", TimeZone: "America/Bahia"},
	'5': {Region: "Paraná", State: "PR", TimeZone: "America/Sao_Paulo"},
	'6': {Region: "Pernambuco, Paraíba, Rio Grande do Norte e Alagoas", State: "PE", TimeZone: "America/Recife"},
	'7': {Region: "Ceará e Piauí", State: "CE", TimeZone: "America/Fortaleza"},
	'8': {Region: "Rio Grande do Sul", State: "RS", TimeZone: "America/Sao_Paulo"},
	'9': {Region: "Goiás, Tocantins, Maranhão, Pará, Amazonas, Roraima, Amapá e Acre", State: "GO", TimeZone: "America/Sao_Paulo"},
}

// DetectRegionByCEP infers a coarse region from the first CEP digit
func DetectRegionByCEP(cep string) models.Region {
	clean := CleanCEP(cep)
	if clean != "" {
		if region, ok := cepRegions[clean[0]]; ok {
			return region
		}
	}
	return models.Region{Region: "Região não identificada", State: "BR", TimeZone: "America/Sao_Paulo"}
}
