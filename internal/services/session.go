package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.uber.org/zap"
)

// Session is the auth session of one device. It starts uninitialized and
// only Init moves it out of that state on its own.
type Session struct {
	mu    sync.RWMutex
	state models.SessionState
	user  *models.User
	token string

	kv     *storage.KeyValueStore
	users  *UserStore
	demo   *DemoUsers
	logger *logging.SafeLogger
	cfg    storeConfig
}

// NewSession creates a session persisting its state through kv.
// demo may be nil when no demo accounts are configured.
func NewSession(kv *storage.KeyValueStore, users *UserStore, demo *DemoUsers, logger *logging.SafeLogger, opts ...StoreOption) *Session {
	return &Session{
		state:  models.SessionUninitialized,
		kv:     kv,
		users:  users,
		demo:   demo,
		logger: logger,
		cfg:    newStoreConfig(opts),
	}
}

// Init restores a persisted user and token. When either one is missing
// the persisted auth state is cleared and the session becomes anonymous.
func (s *Session) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = models.SessionInitializing

	user := s.kv.GetUser(ctx)
	token := s.kv.GetToken(ctx)
	if user == nil || token == "" {
		s.kv.ClearAuth(ctx)
		s.setAnonymousLocked()
		observability.SessionTransitions.WithLabelValues("init", "anonymous").Inc()
		return
	}

	s.user = user
	s.token = token
	s.state = models.SessionAuthenticated
	observability.SessionTransitions.WithLabelValues("init", "authenticated").Inc()
}

// Login authenticates against the demo users first and then the registered
// users. A wrong email or password returns false.
func (s *Session) Login(ctx context.Context, email, password string) bool {
	user, ok := s.demo.Authenticate(email, password)
	if !ok {
		user, ok = s.users.Authenticate(ctx, email, password)
	}
	if !ok {
		observability.SessionTransitions.WithLabelValues("login", "rejected").Inc()
		s.logger.Info("login rejected", zap.String("email", observability.MaskEmail(email)))
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked(ctx, *user)
	observability.SessionTransitions.WithLabelValues("login", "success").Inc()
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return true
}

// Logout clears the persisted auth state. Calling it without a session is a no-op.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kv.ClearAuth(ctx)
	s.setAnonymousLocked()
	observability.SessionTransitions.WithLabelValues("logout", "success").Inc()
}

// Register creates a user and starts a session for it. CPF and email must
// not belong to a demo user or a registered user; a violation returns a
// *models.DuplicateError naming the field.
func (s *Session) Register(ctx context.Context, input models.UserInput) (models.User, error) {
	if result := s.demo.ValidateUnique(input.CPF, input.Email); !result.IsValid {
		observability.SessionTransitions.WithLabelValues("register", "duplicate").Inc()
		return models.User{}, models.NewDuplicateError(result.Field, result.Message)
	}

	user, err := s.users.Create(ctx, input)
	if err != nil {
		observability.SessionTransitions.WithLabelValues("register", "error").Inc()
		return models.User{}, fmt.Errorf("failed to register user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistLocked(ctx, user)
	observability.SessionTransitions.WithLabelValues("register", "success").Inc()
	return user.WithoutPassword(), nil
}

// UpdateUser applies update to the session user and refreshes the session.
// It returns false when there is no session or the update fails.
func (s *Session) UpdateUser(ctx context.Context, update models.UserUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false
	}

	updated, err := s.users.Update(ctx, s.user.ID, update)
	if err != nil {
		s.logger.Warn("failed to update session user",
			zap.String("user_id", s.user.ID),
			zap.Error(err),
		)
		return false
	}

	clean := updated.WithoutPassword()
	s.user = &clean
	s.kv.SetUser(ctx, clean)
	return true
}

// IsAuthenticated is true only once initialization finished with a user present
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == models.SessionAuthenticated && s.user != nil
}

// State returns the current lifecycle state
func (s *Session) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns a copy of the session user, or nil
func (s *Session) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Info returns the public view of the session
func (s *Session) Info() models.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := models.SessionInfo{
		State:           s.state.String(),
		IsAuthenticated: s.state == models.SessionAuthenticated && s.user != nil,
	}
	if info.IsAuthenticated {
		user := *s.user
		info.User = &user
		info.Token = s.token
	}
	return info
}

// Theme returns the persisted theme, light when unset
func (s *Session) Theme(ctx context.Context) models.Theme {
	if theme := s.kv.GetTheme(ctx); theme != "" {
		return theme
	}
	return models.ThemeLight
}

// SetTheme persists theme
func (s *Session) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: tema %q", models.ErrInvalidInput, theme)
	}
	s.kv.SetTheme(ctx, theme)
	return nil
}

func (s *Session) persistLocked(ctx context.Context, user models.User) {
	clean := user.WithoutPassword()
	token := utils.GenerateToken(clean.ID, s.cfg.nowFunc())

	s.kv.SetUser(ctx, clean)
	s.kv.SetToken(ctx, token)

	s.user = &clean
	s.token = token
	s.state = models.SessionAuthenticated
}

func (s *Session) setAnonymousLocked() {
	s.user = nil
	s.token = ""
	s.state = models.SessionAnonymous
}
