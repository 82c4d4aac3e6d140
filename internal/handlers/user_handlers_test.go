package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decode[UserListResponse](t, w)
	assert.NotNil(t, empty.Data)
	assert.Zero(t, empty.Total, "demo accounts are not registered users")

	w = app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name      string
		query     string
		wantTotal int
	}{
		{name: "all", query: "", wantTotal: 1},
		{name: "by name", query: "?q=fernanda", wantTotal: 1},
		{name: "by formatted cpf", query: "?q=" + url.QueryEscape("111.444"), wantTotal: 1},
		{name: "by city", query: "?city=" + url.QueryEscape("florianópolis"), wantTotal: 1},
		{name: "other city", query: "?city=Joinville", wantTotal: 0},
		{name: "no match", query: "?q=inexistente", wantTotal: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(t, http.MethodGet, "/v1/users"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			resp := decode[UserListResponse](t, w)
			assert.Equal(t, tt.wantTotal, resp.Total)
			for _, user := range resp.Data {
				assert.Empty(t, user.PasswordHash)
			}
		})
	}

	t.Run("cpf and email are masked", func(t *testing.T) {
		w := app.do(t, http.MethodGet, "/v1/users", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[UserListResponse](t, w)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "111.***.777-**", resp.Data[0].CPF)
		assert.Equal(t, "m***@email.com", resp.Data[0].Email)
		assert.NotContains(t, w.Body.String(), "111.444.777-35")
		assert.NotContains(t, w.Body.String(), "maria.teste@email.com")
	})
}

func TestGetUserStats(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code)

	w = app.do(t, http.MethodGet, "/v1/users/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[UserStatsResponse](t, w)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.RecentCount)
	assert.Equal(t, 1, stats.CitiesCount)
	assert.Equal(t, 1, stats.GenderDistribution[models.GenderFemale])
	assert.Equal(t, 5, stats.DemoUsers)
	assert.Equal(t, 6, stats.TotalUsers)
}
