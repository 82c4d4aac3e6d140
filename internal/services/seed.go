package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/recicla365/app-ecopontos/internal/models"
)

// demoAccount is a seed user together with its clear text password
type demoAccount struct {
	user     models.User
	password string
}

var demoAccounts = []demoAccount{
	{
		user: models.User{
			ID: "1", Name: "Ana Beatriz Souza", Email: "ana@floripa.com", CPF: "529.982.247-25",
			Gender: models.GenderFemale, BirthDate: "1988-04-12",
			Address: models.Address{
				CEP: "88010-000", Street: "Rua Felipe Schmidt", Number: "120",
				Neighborhood: "Centro", City: "Florianópolis", State: "Santa Catarina", UF: "SC",
			},
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		password: "ana12345",
	},
	{
		user: models.User{
			ID: "2", Name: "Carlos Henrique Lima", Email: "carlos@floripa.com", CPF: "935.411.347-80",
			Gender: models.GenderMale, BirthDate: "1992-09-30",
			Address: models.Address{
				CEP: "88040-000", Street: "Rua Lauro Linhares", Number: "450",
				Neighborhood: "Trindade", City: "Florianópolis", State: "Santa Catarina", UF: "SC",
			},
			CreatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		password: "carlos123",
	},
	{
		user: models.User{
			ID: "3", Name: "Mariana Costa", Email: "mariana@floripa.com", CPF: "714.602.380-01",
			Gender: models.GenderFemale, BirthDate: "1985-12-03",
			Address: models.Address{
				CEP: "88050-000", Street: "Avenida Madre Benvenuta", Number: "780",
				Neighborhood: "Santa Mônica", City: "Florianópolis", State: "Santa Catarina", UF: "SC",
			},
			CreatedAt: time.Date(2024, 2, 1, 14, 0, 0, 0, time.UTC),
		},
		password: "mariana123",
	},
	{
		user: models.User{
			ID: "4", Name: "Pedro Almeida", Email: "pedro@joinville.com", CPF: "168.995.350-09",
			Gender: models.GenderMale, BirthDate: "1990-05-15",
			Address: models.Address{
				CEP: "89201-000", Street: "Rua do Príncipe", Number: "1200",
				Neighborhood: "Centro", City: "Joinville", State: "Santa Catarina", UF: "SC",
			},
			CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		},
		password: "pedro123",
	},
	{
		user: models.User{
			ID: "5", Name: "Juliana Ferreira", Email: "juliana@joinville.com", CPF: "390.533.447-05",
			Gender: models.GenderOther, BirthDate: "1995-07-21",
			Address: models.Address{
				CEP: "89204-000", Street: "Rua Ottokar Doerffel", Number: "400",
				Neighborhood: "Vila Nova", City: "Joinville", State: "Santa Catarina", UF: "SC",
			},
			CreatedAt: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
		},
		password: "juliana123",
	},
}

// DemoUsers is the fixed set of demo accounts checked before the
// registered users on login and registration
type DemoUsers struct {
	users []models.User
}

// NewDemoUsers hashes the demo passwords with params. A nil params uses
// argon2id.DefaultParams.
func NewDemoUsers(params *argon2id.Params) (*DemoUsers, error) {
	if params == nil {
		params = argon2id.DefaultParams
	}

	users := make([]models.User, 0, len(demoAccounts))
	for _, account := range demoAccounts {
		hash, err := argon2id.CreateHash(account.password, params)
		if err != nil {
			return nil, fmt.Errorf("failed to hash demo password for %s: %w", account.user.Email, err)
		}
		user := account.user
		user.PasswordHash = hash
		users = append(users, user)
	}
	return &DemoUsers{users: users}, nil
}

// All returns the demo users without their password hashes
func (d *DemoUsers) All() []models.User {
	if d == nil {
		return []models.User{}
	}
	users := make([]models.User, 0, len(d.users))
	for _, user := range d.users {
		users = append(users, user.WithoutPassword())
	}
	return users
}

// Authenticate returns the demo user matching email and password
func (d *DemoUsers) Authenticate(email, password string) (*models.User, bool) {
	if d == nil {
		return nil, false
	}
	for _, user := range d.users {
		if !strings.EqualFold(user.Email, strings.TrimSpace(email)) {
			continue
		}
		if match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash); err == nil && match {
			found := user
			return &found, true
		}
		return nil, false
	}
	return nil, false
}

// ValidateUnique reports whether cpf or email is already taken by a demo user
func (d *DemoUsers) ValidateUnique(cpf, email string) models.UniquenessResult {
	if d == nil {
		return models.UniquenessResult{IsValid: true}
	}
	return checkUniqueUser(d.users, cpf, email, "")
}

// DemoCollectionPoints returns the demo collection points owned by the demo users
func DemoCollectionPoints() []models.CollectionPoint {
	sc := func(cep, street, number, complement, neighborhood, city string) models.Address {
		return models.Address{
			CEP: cep, Street: street, Number: number, Complement: complement,
			Neighborhood: neighborhood, City: city, State: "Santa Catarina", UF: "SC",
		}
	}
	at := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}

	return []models.CollectionPoint{
		{
			ID: "1", Name: "Verde Centro Floripa", UserID: "1",
			Description:    "Principal ponto de coleta do centro de Florianópolis.",
			Address:        sc("88010-000", "Rua Felipe Schmidt", "123", "", "Centro", "Florianópolis"),
			Coordinates:    models.Coordinates{Latitude: -27.5954, Longitude: -48.5480},
			AcceptedWastes: []models.WasteType{models.WasteGlass, models.WasteMetal, models.WastePaper, models.WastePlastic},
			CreatedAt:      at("2024-01-01T00:00:00Z"),
		},
		{
			ID: "2", Name: "EcoTrindade", UserID: "2",
			Description:    "Ponto universitário para coleta de materiais recicláveis.",
			Address:        sc("88040-000", "Rua Lauro Linhares", "456", "", "Trindade", "Florianópolis"),
			Coordinates:    models.Coordinates{Latitude: -27.6014, Longitude: -48.5205},
			AcceptedWastes: []models.WasteType{models.WastePaper, models.WastePlastic, models.WasteOrganic},
			CreatedAt:      at("2024-01-15T10:30:00Z"),
		},
		{
			ID: "3", Name: "Recicla Santa Mônica", UserID: "3",
			Description:    "Ponto comunitário focado em materiais domésticos.",
			Address:        sc("88050-000", "Avenida Madre Benvenuta", "789", "", "Santa Mônica", "Florianópolis"),
			Coordinates:    models.Coordinates{Latitude: -27.5707, Longitude: -48.5073},
			AcceptedWastes: []models.WasteType{models.WasteGlass, models.WasteMetal, models.WasteOil},
			CreatedAt:      at("2024-02-01T14:20:00Z"),
		},
		{
			ID: "4", Name: "EcoPonto Centro Joinville", UserID: "4",
			Description:    "Ponto de coleta principal no centro da cidade, especializado em eletrônicos e baterias.",
			Address:        sc("89201-000", "Rua do Príncipe", "1234", "Próximo ao Terminal Central", "Centro", "Joinville"),
			Coordinates:    models.Coordinates{Latitude: -26.3044, Longitude: -48.8487},
			AcceptedWastes: []models.WasteType{models.WasteElectronics, models.WasteBatteries, models.WasteMetal, models.WastePlastic},
			CreatedAt:      at("2024-03-01T08:30:00Z"),
		},
		{
			ID: "5", Name: "Recicla Norte", UserID: "4",
			Description:    "Ponto de coleta voltado para materiais orgânicos e papel na região norte.",
			Address:        sc("89202-000", "Rua XV de Novembro", "567", "", "América", "Joinville"),
			Coordinates:    models.Coordinates{Latitude: -26.2874, Longitude: -48.8370},
			AcceptedWastes: []models.WasteType{models.WasteOrganic, models.WastePaper, models.WasteGlass},
			CreatedAt:      at("2024-03-05T11:20:00Z"),
		},
		{
			ID: "6", Name: "EcoStation Bucarein", UserID: "5",
			Description:    "Estação completa de reciclagem com coleta de todos os tipos de materiais.",
			Address:        sc("89203-000", "Rua Visconde de Taunay", "890", "", "Bucarein", "Joinville"),
			Coordinates:    models.Coordinates{Latitude: -26.3125, Longitude: -48.8692},
			AcceptedWastes: models.AllWasteTypes(),
			CreatedAt:      at("2024-03-08T14:15:00Z"),
		},
		{
			ID: "7", Name: "Verde Vila Nova", UserID: "5",
			Description:    "Pequeno ponto de coleta comunitário focado em vidro e metal.",
			Address:        sc("89204-000", "Rua Ottokar Doerffel", "432", "", "Vila Nova", "Joinville"),
			Coordinates:    models.Coordinates{Latitude: -26.2956, Longitude: -48.8544},
			AcceptedWastes: []models.WasteType{models.WasteGlass, models.WasteMetal},
			CreatedAt:      at("2024-03-12T09:45:00Z"),
		},
		{
			ID: "8", Name: "EcoCentauro", UserID: "4",
			Description:    "Ponto especializado em óleo de cozinha e materiais plásticos.",
			Address:        sc("89205-000", "Rua Ministro Calógeras", "678", "", "Centauro", "Joinville"),
			Coordinates:    models.Coordinates{Latitude: -26.3183, Longitude: -48.8761},
			AcceptedWastes: []models.WasteType{models.WasteOil, models.WastePlastic},
			CreatedAt:      at("2024-03-15T16:30:00Z"),
		},
	}
}

// SeedCollectionPoints imports the demo collection points into store,
// leaving already stored ids untouched
func SeedCollectionPoints(ctx context.Context, store *CollectionPointStore) (int, error) {
	return store.Import(ctx, DemoCollectionPoints())
}
