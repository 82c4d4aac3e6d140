package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/forms"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/middleware"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	deviceA = "device-aaaa-0001"
	deviceB = "device-bbbb-0002"
)

var testPasswordParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func init() {
	gin.SetMode(gin.TestMode)
}

// testApp is a fully wired router over an in-memory backend with the demo
// data seeded and a fake ViaCEP upstream
type testApp struct {
	router  *gin.Engine
	backend *storage.MemoryBackend
	users   *services.UserStore
	points  *services.CollectionPointStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithBackend(t, storage.NewMemoryBackend())
}

func newTestAppWithBackend(t *testing.T, backend *storage.MemoryBackend) *testApp {
	t.Helper()

	logger := logging.NewSafeLogger(zap.NewNop())
	demo, err := services.NewDemoUsers(testPasswordParams)
	require.NoError(t, err)

	users := services.NewUserStore(backend, logger, services.WithPasswordParams(testPasswordParams))
	points := services.NewCollectionPointStore(backend, logger)
	_, err = services.SeedCollectionPoints(context.Background(), points)
	require.NoError(t, err)

	viaCEP := newFakeViaCEP(t)
	cep := services.NewCEPService(viaCEP.URL, &http.Client{Timeout: 2 * time.Second}, backend, time.Hour, logger)

	loader := func(ctx context.Context, deviceID string) *services.Session {
		kv := storage.NewKeyValueStore(storage.WithNamespace(backend, "device:"+deviceID), logger)
		session := services.NewSession(kv, users, demo, logger)
		session.Init(ctx)
		return session
	}

	router := gin.New()
	RegisterRoutes(router.Group("/v1"), API{
		Health:  NewHealthHandlers(map[string]storage.Backend{"storage": backend}, logger),
		Session: NewSessionHandlers(users, demo, logger),
		Users:   NewUserHandlers(users, demo, logger),
		Points:  NewCollectionPointHandlers(points, logger),
		Forms:   NewFormHandlers(points, logger),
		Lookup: NewLookupHandlers(cep, LookupConfig{
			GeolocationTimeout: 5 * time.Second,
			GeolocationMaxAge:  time.Minute,
			MapsBaseURL:        "https://www.google.com/maps",
		}, logger),
		Sessions: middleware.SessionLoader(loader),
	})

	return &testApp{router: router, backend: backend, users: users, points: points}
}

func newFakeViaCEP(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch strings.Trim(r.URL.Path, "/") {
		case "89201000/json":
			_, _ = w.Write([]byte(`{"cep":"89201-000","logradouro":"Rua do Príncipe","bairro":"Centro","localidade":"Joinville","uf":"SC"}`))
		case "00000000/json":
			_, _ = w.Write([]byte(`{"erro": true}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

type requestOption func(*http.Request)

func withDevice(id string) requestOption {
	return func(r *http.Request) { r.Header.Set(middleware.DeviceIDHeader, id) }
}

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func (a *testApp) do(t *testing.T, method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// login signs in a demo account on device and returns the session token
func (a *testApp) login(t *testing.T, device, email, password string) string {
	t.Helper()
	w := a.do(t, http.MethodPost, "/v1/session/login", models.LoginInput{Email: email, Password: password}, withDevice(device))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	info := decode[models.SessionInfo](t, w)
	require.True(t, info.IsAuthenticated)
	return info.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func fieldKey(name string) forms.Field {
	return forms.Field(name)
}

func validPointForm() models.CollectionPointForm {
	return models.CollectionPointForm{
		Name:           "Ponto Verde Boa Vista",
		Description:    "Ponto de coleta comunitário no bairro Boa Vista",
		CEP:            "89205-000",
		Street:         "Rua Albano Schmidt",
		Number:         "3000",
		Neighborhood:   "Boa Vista",
		City:           "Joinville",
		State:          "Santa Catarina",
		Latitude:       "-26.2980",
		Longitude:      "-48.8200",
		AcceptedWastes: []models.WasteType{models.WastePaper, models.WasteGlass},
	}
}

func validRegisterBody() map[string]string {
	return map[string]string{
		"name":            "Maria Fernanda Santos",
		"email":           "maria.teste@email.com",
		"cpf":             "11144477735",
		"gender":          "F",
		"birthDate":       "1985-12-03",
		"cep":             "88010-000",
		"street":          "Rua Felipe Schmidt",
		"number":          "456",
		"neighborhood":    "Centro",
		"city":            "Florianópolis",
		"state":           "Santa Catarina",
		"password":        "minhasenha123",
		"confirmPassword": "minhasenha123",
	}
}
