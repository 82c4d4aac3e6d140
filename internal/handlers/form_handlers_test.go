package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/recicla365/app-ecopontos/internal/forms"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCollectionPointForm(t *testing.T) {
	app := newTestApp(t)

	t.Run("valid and unique", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/v1/forms/collection-point/validate", validPointForm())
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[FormValidationResponse](t, w)
		assert.True(t, resp.IsValid)
		assert.Empty(t, resp.Errors)
		assert.Equal(t, forms.Progress{Percentage: 100, Completed: 11, Total: 11}, resp.Progress)
		assert.True(t, resp.Uniqueness.IsValid)
		assert.Equal(t, "Papel e Vidro", resp.WasteList)
		assert.Equal(t, "RS", resp.Region.State)
		assert.True(t, resp.NameReview.IsValid)
	})

	t.Run("empty form", func(t *testing.T) {
		w := app.do(t, http.MethodPost, "/v1/forms/collection-point/validate", models.CollectionPointForm{})
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[FormValidationResponse](t, w)
		assert.False(t, resp.IsValid)
		assert.Len(t, resp.Errors, 11)
		assert.Equal(t, 0, resp.Progress.Percentage)
		assert.Equal(t, "Nenhum tipo selecionado", resp.WasteList)
	})

	t.Run("name taken by a seeded point", func(t *testing.T) {
		form := validPointForm()
		form.Name = "ECOTRINDADE"
		w := app.do(t, http.MethodPost, "/v1/forms/collection-point/validate", form)
		resp := decode[FormValidationResponse](t, w)
		assert.False(t, resp.IsValid)
		assert.Empty(t, resp.Errors)
		assert.Equal(t, "name", resp.Uniqueness.Field)
	})

	t.Run("editing excludes itself", func(t *testing.T) {
		form := validPointForm()
		form.Name = "EcoTrindade"
		w := app.do(t, http.MethodPost, "/v1/forms/collection-point/validate?exclude_id=2", form)
		assert.True(t, decode[FormValidationResponse](t, w).Uniqueness.IsValid)
	})
}

func TestValidateCollectionPointField(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name      string
		field     string
		value     interface{}
		wantCode  int
		wantValid bool
		wantError string
	}{
		{name: "valid cep", field: "cep", value: "89201-000", wantCode: http.StatusOK, wantValid: true},
		{name: "short cep", field: "cep", value: "8920", wantCode: http.StatusOK, wantError: "CEP deve ter 8 dígitos"},
		{name: "latitude out of range", field: "latitude", value: "-91", wantCode: http.StatusOK, wantError: "Latitude deve estar entre -90 e 90"},
		{name: "longitude not a number", field: "longitude", value: "abc", wantCode: http.StatusOK, wantError: "Longitude deve ser um número válido"},
		{name: "number with letter", field: "number", value: "12A", wantCode: http.StatusOK, wantValid: true},
		{name: "wastes", field: "acceptedWastes", value: []string{"Vidro", "Metal"}, wantCode: http.StatusOK, wantValid: true},
		{name: "unknown waste", field: "acceptedWastes", value: []string{"Madeira"}, wantCode: http.StatusOK, wantError: "Tipo de resíduo inválido: Madeira"},
		{name: "no wastes", field: "acceptedWastes", value: []string{}, wantCode: http.StatusOK, wantError: "Selecione pelo menos um tipo de resíduo"},
		{name: "complement has no rule", field: "complement", value: "", wantCode: http.StatusOK, wantValid: true},
		{name: "unknown field", field: "color", value: "blue", wantCode: http.StatusBadRequest},
		{name: "text field given an array", field: "name", value: []string{"a"}, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.value)
			require.NoError(t, err)

			w := app.do(t, http.MethodPost, "/v1/forms/collection-point/field/"+tt.field,
				FieldValidationRequest{Value: raw, Form: validPointForm()})
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode != http.StatusOK {
				return
			}

			resp := decode[FieldValidationResponse](t, w)
			assert.Equal(t, tt.wantValid, resp.IsValid)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestFormReferenceData(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/v1/forms/collection-point/suggestions?city=Joinville&neighborhood=Centro", nil)
	require.Equal(t, http.StatusOK, w.Code)
	suggestions := decode[SuggestionsResponse](t, w)
	assert.Contains(t, suggestions.Names, "EcoPonto Joinville")
	assert.Contains(t, suggestions.Names, "EcoPonto Centro - Joinville")
	assert.Contains(t, suggestions.CoordinateHints, forms.FieldLatitude)
	assert.Empty(t, forms.ValidateCollectionPointForm(suggestions.Sample))

	w = app.do(t, http.MethodGet, "/v1/waste-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.AllWasteTypes(), decode[[]models.WasteType](t, w))

	w = app.do(t, http.MethodGet, "/v1/states", nil)
	require.Equal(t, http.StatusOK, w.Code)
	states := decode[[]models.BrazilianState](t, w)
	assert.Len(t, states, 27)
	assert.Contains(t, states, models.BrazilianState{Name: "Santa Catarina", UF: "SC"})
}
