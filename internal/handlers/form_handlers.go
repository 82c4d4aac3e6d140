package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/forms"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// FormValidationResponse is the full review of a collection point form
type FormValidationResponse struct {
	IsValid    bool                    `json:"isValid"`
	Errors     forms.Errors            `json:"errors"`
	Progress   forms.Progress          `json:"progress"`
	Uniqueness models.UniquenessResult `json:"uniqueness"`
	WasteList  string                  `json:"wasteList"`
	Region     models.Region           `json:"region"`
	NameReview forms.NameReview        `json:"nameReview"`
}

// FieldValidationRequest carries one field value plus the rest of the form.
// Value is a string for text fields and an array for acceptedWastes.
type FieldValidationRequest struct {
	Value json.RawMessage            `json:"value"`
	Form  models.CollectionPointForm `json:"form"`
}

// FieldValidationResponse is the result of validating a single field
type FieldValidationResponse struct {
	Field   forms.Field `json:"field"`
	IsValid bool        `json:"isValid"`
	Error   string      `json:"error,omitempty"`
}

// SuggestionsResponse lists name suggestions and form hints
type SuggestionsResponse struct {
	Names           []string                   `json:"names"`
	CoordinateHints map[forms.Field]string     `json:"coordinateHints"`
	Sample          models.CollectionPointForm `json:"sample"`
}

// FormHandlers handles the form review endpoints
type FormHandlers struct {
	points *services.CollectionPointStore
	logger *logging.SafeLogger
}

// NewFormHandlers creates a new form handlers instance
func NewFormHandlers(points *services.CollectionPointStore, logger *logging.SafeLogger) *FormHandlers {
	return &FormHandlers{
		points: points,
		logger: logger,
	}
}

// ValidateCollectionPointForm godoc
// @Summary Validar formulário de ponto de coleta
// @Description Aplica as regras de todos os campos, calcula o progresso e verifica nome e endereço duplicados. Nada é salvo.
// @Tags forms
// @Accept json
// @Produce json
// @Param exclude_id query string false "ID do ponto em edição, ignorado na verificação de duplicidade"
// @Param data body models.CollectionPointForm true "Formulário"
// @Success 200 {object} FormValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Requisição inválida"
// @Router /forms/collection-point/validate [post]
func (h *FormHandlers) ValidateCollectionPointForm(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ValidateCollectionPointForm")
	defer span.End()

	var form models.CollectionPointForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	errs := forms.ValidateCollectionPointForm(form)
	uniqueness := h.points.ValidateUniquePoint(ctx, form, c.Query("exclude_id"))

	span.SetAttributes(
		attribute.Int("validation.errors", len(errs)),
		attribute.Bool("validation.unique", uniqueness.IsValid),
	)

	c.JSON(http.StatusOK, FormValidationResponse{
		IsValid:    errs.IsValid() && uniqueness.IsValid,
		Errors:     errs,
		Progress:   forms.CalculateProgress(form),
		Uniqueness: uniqueness,
		WasteList:  forms.FormatWasteList(form.AcceptedWastes),
		Region:     utils.DetectRegionByCEP(form.CEP),
		NameReview: forms.ValidateName(form.Name),
	})
}

// ValidateCollectionPointField godoc
// @Summary Validar um campo do formulário
// @Description Valida apenas o campo informado, usando o restante do formulário como contexto.
// @Tags forms
// @Accept json
// @Produce json
// @Param field path string true "Nome do campo (ex: cep, latitude, acceptedWastes)"
// @Param data body FieldValidationRequest true "Valor do campo e formulário atual"
// @Success 200 {object} FieldValidationResponse "Resultado da validação"
// @Failure 400 {object} ErrorResponse "Campo desconhecido ou valor inválido"
// @Router /forms/collection-point/field/{field} [post]
func (h *FormHandlers) ValidateCollectionPointField(c *gin.Context) {
	field, ok := forms.ParseCollectionPointField(c.Param("field"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Campo desconhecido", Field: c.Param("field")})
		return
	}

	var req FieldValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	value, err := decodeFieldValue(field, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest, Field: string(field)})
		return
	}

	msg := forms.ValidateField(field, value, req.Form)
	c.JSON(http.StatusOK, FieldValidationResponse{Field: field, IsValid: msg == "", Error: msg})
}

func decodeFieldValue(field forms.Field, raw json.RawMessage) (forms.Value, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return forms.Value{}, nil
	}
	if field == forms.FieldAcceptedWastes {
		var wastes []models.WasteType
		if err := json.Unmarshal(raw, &wastes); err != nil {
			return forms.Value{}, err
		}
		return forms.WastesValue(wastes...), nil
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return forms.Value{}, err
	}
	return forms.TextValue(text), nil
}

// GetSuggestions godoc
// @Summary Sugestões para o formulário
// @Description Sugestões de nome a partir da cidade e bairro, dicas de coordenadas e um formulário de exemplo.
// @Tags forms
// @Produce json
// @Param city query string false "Cidade"
// @Param neighborhood query string false "Bairro"
// @Success 200 {object} SuggestionsResponse "Sugestões"
// @Router /forms/collection-point/suggestions [get]
func (h *FormHandlers) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, SuggestionsResponse{
		Names:           forms.GenerateNameSuggestions(c.Query("city"), c.Query("neighborhood")),
		CoordinateHints: forms.CoordinateHints(),
		Sample:          forms.SampleFormData(),
	})
}

// ListWasteTypes godoc
// @Summary Tipos de resíduo
// @Tags forms
// @Produce json
// @Success 200 {array} string "Tipos de resíduo aceitos"
// @Router /waste-types [get]
func (h *FormHandlers) ListWasteTypes(c *gin.Context) {
	c.JSON(http.StatusOK, models.AllWasteTypes())
}

// ListStates godoc
// @Summary Estados brasileiros
// @Tags forms
// @Produce json
// @Success 200 {array} models.BrazilianState "Estados e UFs"
// @Router /states [get]
func (h *FormHandlers) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, utils.BrazilianStates())
}
