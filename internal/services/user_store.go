package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alexedwards/argon2id"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.uber.org/zap"
)

const (
	msgCPFTaken     = "CPF já cadastrado no sistema"
	msgEmailTaken   = "Email já cadastrado no sistema"
	recentUsersDays = 30
)

// UserStore keeps the registered users as one JSON array
type UserStore struct {
	mu     sync.Mutex
	users  *storage.JSONCollection[models.User]
	logger *logging.SafeLogger
	cfg    storeConfig
}

// NewUserStore creates a UserStore persisting through backend
func NewUserStore(backend storage.Backend, logger *logging.SafeLogger, opts ...StoreOption) *UserStore {
	return &UserStore{
		users:  storage.NewJSONCollection[models.User](backend, storage.KeyRegisteredUsers, "users", logger),
		logger: logger,
		cfg:    newStoreConfig(opts),
	}
}

// snapshot loads the users for read-only operations. A failed read
// degrades to an empty list.
func (s *UserStore) snapshot(ctx context.Context) []models.User {
	users, _ := s.users.Load(ctx)
	return users
}

// GetAll returns every registered user
func (s *UserStore) GetAll(ctx context.Context) ([]models.User, error) {
	return s.snapshot(ctx), nil
}

// GetByID returns the user with id, or models.ErrNotFound
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range s.snapshot(ctx) {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: usuário %s", models.ErrNotFound, id)
}

// Create registers a new user. CPF and email must be unique; the password
// is stored as an argon2id hash.
func (s *UserStore) Create(ctx context.Context, input models.UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	if result := checkUniqueUser(users, input.CPF, input.Email, ""); !result.IsValid {
		return models.User{}, models.NewDuplicateError(result.Field, result.Message)
	}

	hash, err := argon2id.CreateHash(input.Password, s.cfg.passwordParams)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.cfg.nowFunc()
	user := models.User{
		ID:           utils.GenerateID("user", now),
		Name:         strings.TrimSpace(input.Name),
		Email:        strings.TrimSpace(input.Email),
		CPF:          strings.TrimSpace(input.CPF),
		Gender:       input.Gender,
		BirthDate:    input.BirthDate,
		PasswordHash: hash,
		Address:      input.Address,
		CreatedAt:    now,
	}

	if err := s.users.Save(ctx, append(users, user)); err != nil {
		return models.User{}, err
	}

	s.logger.Info("user created",
		zap.String("user_id", user.ID),
		zap.String("cpf", observability.MaskCPF(utils.OnlyDigits(user.CPF))),
	)
	return user, nil
}

// Update merges the non-nil fields of update over the stored user
func (s *UserStore) Update(ctx context.Context, id string, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	idx := indexOfUser(users, id)
	if idx < 0 {
		return models.User{}, fmt.Errorf("%w: Usuário não encontrado", models.ErrNotFound)
	}

	if update.CPF != nil && strings.TrimSpace(*update.CPF) != "" {
		if result := checkUniqueUser(users, *update.CPF, "", id); !result.IsValid {
			return models.User{}, models.NewDuplicateError(result.Field, result.Message)
		}
	}
	if update.Email != nil && strings.TrimSpace(*update.Email) != "" {
		if result := checkUniqueUser(users, "", *update.Email, id); !result.IsValid {
			return models.User{}, models.NewDuplicateError(result.Field, result.Message)
		}
	}

	user := users[idx]
	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Email != nil {
		user.Email = strings.TrimSpace(*update.Email)
	}
	if update.CPF != nil {
		user.CPF = strings.TrimSpace(*update.CPF)
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.BirthDate != nil {
		user.BirthDate = *update.BirthDate
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Password != nil && *update.Password != "" {
		hash, err := argon2id.CreateHash(*update.Password, s.cfg.passwordParams)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated := make([]models.User, len(users))
	copy(updated, users)
	updated[idx] = user

	if err := s.users.Save(ctx, updated); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Delete removes the user with id
func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.users.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOfUser(users, id)
	if idx < 0 {
		return fmt.Errorf("%w: Usuário não encontrado", models.ErrNotFound)
	}

	remaining := make([]models.User, 0, len(users)-1)
	remaining = append(remaining, users[:idx]...)
	remaining = append(remaining, users[idx+1:]...)
	return s.users.Save(ctx, remaining)
}

// Search matches name, email and city case-insensitively, and CPF by digits.
// An empty query returns every user.
func (s *UserStore) Search(ctx context.Context, query string) ([]models.User, error) {
	users := s.snapshot(ctx)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users, nil
	}
	digits := utils.OnlyDigits(query)

	matches := []models.User{}
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), q) ||
			strings.Contains(strings.ToLower(user.Email), q) ||
			(digits != "" && strings.Contains(utils.OnlyDigits(user.CPF), digits)) ||
			strings.Contains(strings.ToLower(user.Address.City), q) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

// GetByCity returns the users whose city matches case-insensitively
func (s *UserStore) GetByCity(ctx context.Context, city string) ([]models.User, error) {
	matches := []models.User{}
	for _, user := range s.snapshot(ctx) {
		if strings.EqualFold(user.Address.City, strings.TrimSpace(city)) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

// GetRecent returns up to limit users, newest first
func (s *UserStore) GetRecent(ctx context.Context, limit int) ([]models.User, error) {
	users := s.snapshot(ctx)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if limit >= 0 && len(users) > limit {
		users = users[:limit]
	}
	return users, nil
}

// ValidateUniqueUser checks cpf then email against the stored users,
// ignoring excludeID. It never mutates the store.
func (s *UserStore) ValidateUniqueUser(ctx context.Context, cpf, email, excludeID string) models.UniquenessResult {
	return checkUniqueUser(s.snapshot(ctx), cpf, email, excludeID)
}

// GetStats aggregates the registered users
func (s *UserStore) GetStats(ctx context.Context) (models.UserStats, error) {
	users := s.snapshot(ctx)
	since := s.cfg.nowFunc().AddDate(0, 0, -recentUsersDays)

	stats := models.UserStats{
		Total:              len(users),
		GenderDistribution: map[models.Gender]int{},
	}
	cities := map[string]struct{}{}
	for _, user := range users {
		if !user.CreatedAt.Before(since) {
			stats.RecentCount++
		}
		cities[user.Address.City] = struct{}{}
		stats.GenderDistribution[user.Gender]++
	}
	stats.CitiesCount = len(cities)
	return stats, nil
}

// Authenticate returns the user matching email whose password verifies
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*models.User, bool) {
	for _, user := range s.snapshot(ctx) {
		if !strings.EqualFold(user.Email, strings.TrimSpace(email)) {
			continue
		}
		if passwordMatches(password, user.PasswordHash, s.logger) {
			found := user
			return &found, true
		}
		return nil, false
	}
	return nil, false
}

func passwordMatches(password, hash string, logger *logging.SafeLogger) bool {
	if hash == "" {
		return false
	}
	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		logger.Warn("stored password hash is unreadable", zap.Error(err))
		return false
	}
	return match
}

func indexOfUser(users []models.User, id string) int {
	for i, user := range users {
		if user.ID == id {
			return i
		}
	}
	return -1
}

// checkUniqueUser reports the first violated field, cpf before email.
// Blank values are not checked.
func checkUniqueUser(users []models.User, cpf, email, excludeID string) models.UniquenessResult {
	cpfDigits := utils.OnlyDigits(cpf)
	if cpfDigits != "" {
		for _, user := range users {
			if user.ID != excludeID && utils.OnlyDigits(user.CPF) == cpfDigits {
				return models.UniquenessResult{IsValid: false, Message: msgCPFTaken, Field: "cpf"}
			}
		}
	}

	email = strings.TrimSpace(email)
	if email != "" {
		for _, user := range users {
			if user.ID != excludeID && strings.EqualFold(user.Email, email) {
				return models.UniquenessResult{IsValid: false, Message: msgEmailTaken, Field: "email"}
			}
		}
	}

	return models.UniquenessResult{IsValid: true}
}
