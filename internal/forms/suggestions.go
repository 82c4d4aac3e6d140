package forms

import (
	"regexp"
	"strings"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

// FormatWasteList renders a waste selection as a Portuguese list ("A, B e C")
func FormatWasteList(wastes []models.WasteType) string {
	switch len(wastes) {
	case 0:
		return "Nenhum tipo selecionado"
	case 1:
		return string(wastes[0])
	}

	names := make([]string, len(wastes)-1)
	for i, w := range wastes[:len(wastes)-1] {
		names[i] = string(w)
	}
	return strings.Join(names, ", ") + " e " + string(wastes[len(wastes)-1])
}

// GenerateNameSuggestions proposes collection point names from the location, without duplicates
func GenerateNameSuggestions(city, neighborhood string) []string {
	city = strings.TrimSpace(city)
	neighborhood = strings.TrimSpace(neighborhood)

	var candidates []string
	if city != "" {
		candidates = append(candidates, "EcoPonto "+city, "Recicla "+city, "Coleta "+city)
	}
	if neighborhood != "" {
		candidates = append(candidates, "EcoPonto "+neighborhood, "Recicla "+neighborhood, "Verde "+neighborhood)
	}
	if city != "" && neighborhood != "" {
		candidates = append(candidates, "EcoPonto "+neighborhood+" - "+city, neighborhood+" Recicla")
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// NameReview is the advisory review of a collection point name
type NameReview struct {
	IsValid     bool     `json:"isValid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

var allowedNameRegex = regexp.MustCompile(`^[a-zA-ZÀ-ÿ0-9\s\-_]+$`)

// ValidateName reviews a collection point name. Unlike the form rules this is advisory.
func ValidateName(name string) NameReview {
	review := NameReview{Issues: []string{}, Suggestions: []string{}}
	lower := strings.ToLower(name)

	if utils.RuneLen(name) < 3 {
		review.Issues = append(review.Issues, "Nome muito curto")
	}
	if utils.RuneLen(name) > 100 {
		review.Issues = append(review.Issues, "Nome muito longo")
	}
	if !allowedNameRegex.MatchString(name) {
		review.Issues = append(review.Issues, "Contém caracteres especiais não permitidos")
	}
	if strings.Contains(lower, "teste") || strings.Contains(lower, "exemplo") {
		review.Issues = append(review.Issues, `Evite usar palavras como "teste" ou "exemplo"`)
		review.Suggestions = append(review.Suggestions, "Use um nome descritivo e real")
	}
	if !strings.Contains(lower, "eco") && !strings.Contains(lower, "recicla") && !strings.Contains(lower, "verde") {
		review.Suggestions = append(review.Suggestions, `Considere usar palavras como "EcoPonto", "Recicla" ou "Verde"`)
	}

	review.IsValid = len(review.Issues) == 0
	return review
}

// CoordinateHints returns the placeholder hints shown next to the coordinate inputs
func CoordinateHints() map[Field]string {
	return map[Field]string{
		FieldLatitude:  "Ex: -26.3044 (Sul: negativo, Norte: positivo)",
		FieldLongitude: "Ex: -48.8487 (Oeste: negativo, Leste: positivo)",
	}
}

// SampleFormData returns a fully valid example form
func SampleFormData() models.CollectionPointForm {
	return models.CollectionPointForm{
		Name:           "EcoPonto Exemplo",
		Description:    "Ponto de coleta de exemplo para testes do sistema. Aceita diversos tipos de materiais recicláveis.",
		CEP:            "89201-000",
		Street:         "Rua do Príncipe",
		Number:         "1234",
		Complement:     "Próximo ao terminal",
		Neighborhood:   "Centro",
		City:           "Joinville",
		State:          "Santa Catarina - SC",
		Latitude:       "-26.3044",
		Longitude:      "-48.8487",
		AcceptedWastes: []models.WasteType{models.WastePaper, models.WastePlastic, models.WasteGlass, models.WasteMetal},
	}
}
