package services

import (
	"context"
	"errors"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"go.uber.org/zap"
)

var (
	errBackendDown = errors.New("backend down")

	testPasswordParams = &argon2id.Params{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}

	testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
)

func testLogger() *logging.SafeLogger {
	return logging.NewSafeLogger(zap.NewNop())
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func testStoreOptions() []StoreOption {
	return []StoreOption{WithNowFunc(fixedClock()), WithPasswordParams(testPasswordParams)}
}

// failingBackend fails every operation
type failingBackend struct{}

func (failingBackend) Get(context.Context, string) (string, bool, error) {
	return "", false, errBackendDown
}

func (failingBackend) Set(context.Context, string, string, time.Duration) error {
	return errBackendDown
}

func (failingBackend) Delete(context.Context, string) error {
	return errBackendDown
}

func (failingBackend) Ping(context.Context) error {
	return errBackendDown
}

func validUserInput() models.UserInput {
	return models.UserInput{
		Name:      "Maria Fernanda Santos",
		Email:     "maria.teste@email.com",
		CPF:       "111.444.777-35",
		Gender:    models.GenderFemale,
		BirthDate: "1985-12-03",
		Password:  "minhasenha123",
		Address: models.Address{
			CEP:          "88010-000",
			Street:       "Rua Felipe Schmidt",
			Number:       "456",
			Neighborhood: "Centro",
			City:         "Florianópolis",
			State:        "Santa Catarina",
			UF:           "SC",
		},
	}
}

func validPointForm() models.CollectionPointForm {
	return models.CollectionPointForm{
		Name:           "Ponto Verde Teste",
		Description:    "Ponto de coleta para testes automatizados",
		CEP:            "89201000",
		Street:         "Rua do Príncipe",
		Number:         "100",
		Neighborhood:   "Centro",
		City:           "Joinville",
		State:          "Santa Catarina",
		Latitude:       "-26.3",
		Longitude:      "-48.8",
		AcceptedWastes: []models.WasteType{models.WastePaper, models.WasteGlass},
	}
}
