package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserStore(backend storage.Backend) *UserStore {
	return NewUserStore(backend, testLogger(), testStoreOptions()...)
}

func TestUserStore_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	created, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.NotEqual(t, "minhasenha123", created.PasswordHash)
	assert.Contains(t, created.PasswordHash, "$argon2id$")

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *got)
}

func TestUserStore_GetByIDNotFound(t *testing.T) {
	store := newTestUserStore(storage.NewMemoryBackend())

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserStore_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	_, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	tests := []struct {
		name  string
		edit  func(*models.UserInput)
		field string
	}{
		{
			name:  "same cpf with different formatting",
			edit:  func(in *models.UserInput) { in.CPF = "11144477735"; in.Email = "other@email.com" },
			field: "cpf",
		},
		{
			name:  "same email with different case",
			edit:  func(in *models.UserInput) { in.CPF = "529.982.247-25"; in.Email = "MARIA.TESTE@email.com" },
			field: "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validUserInput()
			tt.edit(&input)

			_, err := store.Create(ctx, input)
			require.Error(t, err)

			var dup *models.DuplicateError
			require.True(t, errors.As(err, &dup))
			assert.Equal(t, tt.field, dup.Field)
			assert.ErrorIs(t, err, models.ErrDuplicate)
		})
	}

	all, _ := store.GetAll(ctx)
	assert.Len(t, all, 1)
}

func TestUserStore_Update(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	created, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	name := "  Maria F. Santos "
	password := "novasenha123"
	updated, err := store.Update(ctx, created.ID, models.UserUpdate{Name: &name, Password: &password})
	require.NoError(t, err)

	assert.Equal(t, "Maria F. Santos", updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.NotEqual(t, created.PasswordHash, updated.PasswordHash)

	user, ok := store.Authenticate(ctx, created.Email, "novasenha123")
	require.True(t, ok)
	assert.Equal(t, created.ID, user.ID)

	_, ok = store.Authenticate(ctx, created.Email, "minhasenha123")
	assert.False(t, ok)
}

func TestUserStore_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	first, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	second := validUserInput()
	second.CPF = "529.982.247-25"
	second.Email = "segundo@email.com"
	_, err = store.Create(ctx, second)
	require.NoError(t, err)

	name := "Outro Nome"
	_, err = store.Update(ctx, "missing", models.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)

	email := "segundo@email.com"
	_, err = store.Update(ctx, first.ID, models.UserUpdate{Email: &email})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	// Keeping its own cpf is not a conflict
	cpf := first.CPF
	_, err = store.Update(ctx, first.ID, models.UserUpdate{CPF: &cpf})
	assert.NoError(t, err)
}

func TestUserStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	created, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, created.ID))
	assert.ErrorIs(t, store.Delete(ctx, created.ID), models.ErrNotFound)

	all, _ := store.GetAll(ctx)
	assert.Empty(t, all)
}

func TestUserStore_Search(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	_, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	other := validUserInput()
	other.Name = "João da Silva"
	other.Email = "joao.teste@email.com"
	other.CPF = "529.982.247-25"
	other.Address.City = "Joinville"
	_, err = store.Create(ctx, other)
	require.NoError(t, err)

	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 2},
		{query: "maria", want: 1},
		{query: "JOINVILLE", want: 1},
		{query: "email.com", want: 2},
		{query: "529.982", want: 1},
		{query: "zzz", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := store.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, found, tt.want)
		})
	}
}

func TestUserStore_CityRecentAndStats(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryBackend()

	old := NewUserStore(backend, testLogger(),
		WithNowFunc(func() time.Time { return testNow.AddDate(0, -3, 0) }),
		WithPasswordParams(testPasswordParams),
	)
	oldUser := validUserInput()
	oldUser.Gender = models.GenderMale
	_, err := old.Create(ctx, oldUser)
	require.NoError(t, err)

	store := newTestUserStore(backend)
	recent := validUserInput()
	recent.CPF = "529.982.247-25"
	recent.Email = "novo@email.com"
	recent.Address.City = "Joinville"
	created, err := store.Create(ctx, recent)
	require.NoError(t, err)

	byCity, err := store.GetByCity(ctx, "joinville")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, created.ID, byCity[0].ID)

	latest, err := store.GetRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, latest, 1)
	assert.Equal(t, created.ID, latest[0].ID)

	stats, err := store.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.RecentCount)
	assert.Equal(t, 2, stats.CitiesCount)
	assert.Equal(t, 1, stats.GenderDistribution[models.GenderMale])
	assert.Equal(t, 1, stats.GenderDistribution[models.GenderFemale])
}

func TestUserStore_ValidateUniqueUser(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend())

	created, err := store.Create(ctx, validUserInput())
	require.NoError(t, err)

	result := store.ValidateUniqueUser(ctx, "111.444.777-35", "", "")
	assert.False(t, result.IsValid)
	assert.Equal(t, "cpf", result.Field)
	assert.Equal(t, msgCPFTaken, result.Message)

	result = store.ValidateUniqueUser(ctx, "", "maria.teste@email.com", "")
	assert.False(t, result.IsValid)
	assert.Equal(t, "email", result.Field)

	assert.True(t, store.ValidateUniqueUser(ctx, "111.444.777-35", "maria.teste@email.com", created.ID).IsValid)
	assert.True(t, store.ValidateUniqueUser(ctx, "529.982.247-25", "livre@email.com", "").IsValid)
}

func TestUserStore_BackendFailure(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(failingBackend{})

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = store.Create(ctx, validUserInput())
	assert.ErrorIs(t, err, models.ErrStorageRead)

	_, ok := store.Authenticate(ctx, "maria.teste@email.com", "minhasenha123")
	assert.False(t, ok)
}

func TestUserStore_QuotaExceeded(t *testing.T) {
	ctx := context.Background()
	store := newTestUserStore(storage.NewMemoryBackend(storage.WithQuota(64)))

	_, err := store.Create(ctx, validUserInput())
	assert.ErrorIs(t, err, models.ErrStorageWrite)
}
