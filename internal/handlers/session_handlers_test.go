package handlers

import (
	"net/http"
	"testing"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_RequiresDeviceID(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/v1/session", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodGet, "/v1/session", nil, withDevice(deviceA))
	require.Equal(t, http.StatusOK, w.Code)
	info := decode[models.SessionInfo](t, w)
	assert.False(t, info.IsAuthenticated)
	assert.Equal(t, "anonymous", info.State)
	assert.Nil(t, info.User)
}

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	info := decode[models.SessionInfo](t, w)
	require.True(t, info.IsAuthenticated)
	require.NotNil(t, info.User)
	assert.Equal(t, "111.444.777-35", info.User.CPF)
	assert.Equal(t, "SC", info.User.Address.UF)
	assert.Empty(t, info.User.PasswordHash)
	assert.NotEmpty(t, info.Token)

	// the session survives into the next request on the same device
	w = app.do(t, http.MethodGet, "/v1/session", nil, withDevice(deviceA))
	restored := decode[models.SessionInfo](t, w)
	assert.True(t, restored.IsAuthenticated)
	assert.Equal(t, info.User.ID, restored.User.ID)

	// and not on another device
	w = app.do(t, http.MethodGet, "/v1/session", nil, withDevice(deviceB))
	assert.False(t, decode[models.SessionInfo](t, w).IsAuthenticated)
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(body map[string]string)
		wantCode  int
		wantField string
	}{
		{
			name:      "invalid cpf",
			mutate:    func(b map[string]string) { b["cpf"] = "123.456.789-00" },
			wantCode:  http.StatusBadRequest,
			wantField: "cpf",
		},
		{
			name:      "password mismatch",
			mutate:    func(b map[string]string) { b["confirmPassword"] = "outrasenha123" },
			wantCode:  http.StatusBadRequest,
			wantField: "confirmPassword",
		},
		{
			name:      "short password",
			mutate:    func(b map[string]string) { b["password"], b["confirmPassword"] = "abc", "abc" },
			wantCode:  http.StatusBadRequest,
			wantField: "password",
		},
		{
			name:      "demo email",
			mutate:    func(b map[string]string) { b["email"] = "ana@floripa.com" },
			wantCode:  http.StatusConflict,
			wantField: "email",
		},
		{
			name:      "demo cpf",
			mutate:    func(b map[string]string) { b["cpf"] = "529.982.247-25" },
			wantCode:  http.StatusConflict,
			wantField: "cpf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			body := validRegisterBody()
			tt.mutate(body)

			w := app.do(t, http.MethodPost, "/v1/session/register", body, withDevice(deviceA))
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())

			if tt.wantCode == http.StatusBadRequest {
				resp := decode[ValidationErrorResponse](t, w)
				assert.Contains(t, resp.Fields, fieldKey(tt.wantField))
				return
			}
			resp := decode[ErrorResponse](t, w)
			assert.Equal(t, tt.wantField, resp.Field)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestRegister_DuplicateRegisteredUser(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code)

	body := validRegisterBody()
	body["email"] = "outra@email.com"
	w = app.do(t, http.MethodPost, "/v1/session/register", body, withDevice(deviceB))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "cpf", decode[ErrorResponse](t, w).Field)
}

func TestLoginLogout(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/session/login",
		models.LoginInput{Email: "pedro@joinville.com", Password: "errada"}, withDevice(deviceA))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, msgLoginFailed, decode[ErrorResponse](t, w).Error)

	w = app.do(t, http.MethodPost, "/v1/session/login", `{"email":""}`, withDevice(deviceA))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := app.login(t, deviceA, "pedro@joinville.com", "pedro123")
	assert.NotEmpty(t, token)

	w = app.do(t, http.MethodPost, "/v1/session/logout", nil, withDevice(deviceA))
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[models.SessionInfo](t, w).IsAuthenticated)

	// logging out twice is harmless
	w = app.do(t, http.MethodPost, "/v1/session/logout", nil, withDevice(deviceA))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_RegisteredUser(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code)

	token := app.login(t, deviceB, "MARIA.TESTE@email.com", "minhasenha123")
	assert.NotEmpty(t, token)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodPut, "/v1/session/profile", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(t, http.MethodPost, "/v1/session/register", validRegisterBody(), withDevice(deviceA))
	require.Equal(t, http.StatusCreated, w.Code)
	token := decode[models.SessionInfo](t, w).Token

	profile := validRegisterBody()
	profile["name"] = "Maria Fernanda Oliveira"
	profile["city"] = "Joinville"

	t.Run("wrong token", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/v1/session/profile", profile, withDevice(deviceA), withBearer("nope"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		w := app.do(t, http.MethodPut, "/v1/session/profile", profile, withDevice(deviceA), withBearer(token))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		info := decode[models.SessionInfo](t, w)
		assert.Equal(t, "Maria Fernanda Oliveira", info.User.Name)
		assert.Equal(t, "Joinville", info.User.Address.City)
	})

	t.Run("demo email taken", func(t *testing.T) {
		taken := validRegisterBody()
		taken["email"] = "juliana@joinville.com"
		w := app.do(t, http.MethodPut, "/v1/session/profile", taken, withDevice(deviceA))
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "email", decode[ErrorResponse](t, w).Field)
	})

	t.Run("invalid form", func(t *testing.T) {
		bad := validRegisterBody()
		bad["cep"] = "123"
		w := app.do(t, http.MethodPut, "/v1/session/profile", bad, withDevice(deviceA))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[ValidationErrorResponse](t, w).Fields, fieldKey("cep"))
	})
}

func TestUpdateProfile_DemoAccount(t *testing.T) {
	app := newTestApp(t)
	app.login(t, deviceA, "pedro@joinville.com", "pedro123")

	profile := validRegisterBody()
	profile["email"] = "pedro.novo@joinville.com"

	// demo accounts are not stored records and cannot be edited
	w := app.do(t, http.MethodPut, "/v1/session/profile", profile, withDevice(deviceA))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, msgProfileFailed, decode[ErrorResponse](t, w).Error)

	w = app.do(t, http.MethodGet, "/v1/session", nil, withDevice(deviceA))
	assert.Equal(t, "pedro@joinville.com", decode[models.SessionInfo](t, w).User.Email)
}

func TestTheme(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, http.MethodGet, "/v1/preferences/theme", nil, withDevice(deviceA))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.ThemeLight, decode[ThemeResponse](t, w).Theme)

	w = app.do(t, http.MethodPut, "/v1/preferences/theme", ThemeRequest{Theme: "sepia"}, withDevice(deviceA))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.do(t, http.MethodPut, "/v1/preferences/theme", ThemeRequest{Theme: models.ThemeDark}, withDevice(deviceA))
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(t, http.MethodGet, "/v1/preferences/theme", nil, withDevice(deviceA))
	assert.Equal(t, models.ThemeDark, decode[ThemeResponse](t, w).Theme)

	// theme survives logout and stays per device
	app.login(t, deviceA, "ana@floripa.com", "ana12345")
	app.do(t, http.MethodPost, "/v1/session/logout", nil, withDevice(deviceA))
	w = app.do(t, http.MethodGet, "/v1/preferences/theme", nil, withDevice(deviceA))
	assert.Equal(t, models.ThemeDark, decode[ThemeResponse](t, w).Theme)

	w = app.do(t, http.MethodGet, "/v1/preferences/theme", nil, withDevice(deviceB))
	assert.Equal(t, models.ThemeLight, decode[ThemeResponse](t, w).Theme)
}
