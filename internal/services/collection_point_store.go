package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.uber.org/zap"
)

const (
	msgPointNotFound      = "Ponto de coleta não encontrado"
	msgPointEditForbidden = "Você não tem permissão para editar este ponto de coleta"
	msgPointDelForbidden  = "Você não tem permissão para deletar este ponto de coleta"
	msgPointNameTaken     = "Já existe um ponto de coleta com este nome"
	msgPointAddressTaken  = "Já existe um ponto de coleta neste endereço"
	recentPointsDays      = 7
)

// CollectionPointStore keeps the collection points as one JSON array
type CollectionPointStore struct {
	mu     sync.Mutex
	points *storage.JSONCollection[models.CollectionPoint]
	logger *logging.SafeLogger
	cfg    storeConfig
}

// NewCollectionPointStore creates a CollectionPointStore persisting through backend
func NewCollectionPointStore(backend storage.Backend, logger *logging.SafeLogger, opts ...StoreOption) *CollectionPointStore {
	return &CollectionPointStore{
		points: storage.NewJSONCollection[models.CollectionPoint](backend, storage.KeyCollectionPoints, "collection_points", logger),
		logger: logger,
		cfg:    newStoreConfig(opts),
	}
}

func (s *CollectionPointStore) snapshot(ctx context.Context) []models.CollectionPoint {
	points, _ := s.points.Load(ctx)
	return points
}

// fromForm normalizes the form into the mutable part of a point: trimmed
// text, derived UF and parsed coordinates
func fromForm(form models.CollectionPointForm) (models.CollectionPoint, error) {
	uf, err := utils.DeriveUF(form.State)
	if err != nil {
		return models.CollectionPoint{}, err
	}

	coordinates, err := utils.ParseCoordinates(form.Latitude, form.Longitude)
	if err != nil {
		return models.CollectionPoint{}, err
	}

	wastes := make([]models.WasteType, len(form.AcceptedWastes))
	copy(wastes, form.AcceptedWastes)

	return models.CollectionPoint{
		Name:        strings.TrimSpace(form.Name),
		Description: strings.TrimSpace(form.Description),
		Address: models.Address{
			CEP:          utils.FormatCEP(form.CEP),
			Street:       strings.TrimSpace(form.Street),
			Number:       strings.TrimSpace(form.Number),
			Complement:   strings.TrimSpace(form.Complement),
			Neighborhood: strings.TrimSpace(form.Neighborhood),
			City:         strings.TrimSpace(form.City),
			State:        strings.TrimSpace(form.State),
			UF:           uf,
		},
		Coordinates:    coordinates,
		AcceptedWastes: wastes,
	}, nil
}

// Create stores a new point owned by userID. The name and address are
// checked against the snapshot being written, so a caller that skipped
// ValidateUniquePoint still gets a *models.DuplicateError.
func (s *CollectionPointStore) Create(ctx context.Context, form models.CollectionPointForm, userID string) (models.CollectionPoint, error) {
	point, err := fromForm(form)
	if err != nil {
		return models.CollectionPoint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.points.Load(ctx)
	if err != nil {
		return models.CollectionPoint{}, err
	}
	if result := checkUniquePoint(points, form, ""); !result.IsValid {
		return models.CollectionPoint{}, models.NewDuplicateError(result.Field, result.Message)
	}

	now := s.cfg.nowFunc()
	point.ID = utils.GenerateID("cp", now)
	point.UserID = userID
	point.CreatedAt = now

	if err := s.points.Save(ctx, append(points, point)); err != nil {
		return models.CollectionPoint{}, err
	}

	s.logger.Info("collection point created",
		zap.String("point_id", point.ID),
		zap.String("user_id", userID),
	)
	return point, nil
}

// Update replaces the mutable fields of a point owned by userID
func (s *CollectionPointStore) Update(ctx context.Context, id string, form models.CollectionPointForm, userID string) (models.CollectionPoint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.points.Load(ctx)
	if err != nil {
		return models.CollectionPoint{}, err
	}

	idx := indexOfPoint(points, id)
	if idx < 0 {
		return models.CollectionPoint{}, fmt.Errorf("%w: %s", models.ErrNotFound, msgPointNotFound)
	}
	existing := points[idx]
	if existing.UserID != userID {
		return models.CollectionPoint{}, fmt.Errorf("%w: %s", models.ErrForbidden, msgPointEditForbidden)
	}

	if result := checkUniquePoint(points, form, id); !result.IsValid {
		return models.CollectionPoint{}, models.NewDuplicateError(result.Field, result.Message)
	}

	point, err := fromForm(form)
	if err != nil {
		return models.CollectionPoint{}, err
	}
	point.ID = existing.ID
	point.UserID = existing.UserID
	point.CreatedAt = existing.CreatedAt

	updated := make([]models.CollectionPoint, len(points))
	copy(updated, points)
	updated[idx] = point

	if err := s.points.Save(ctx, updated); err != nil {
		return models.CollectionPoint{}, err
	}
	return point, nil
}

// GetByID returns the point with id, or models.ErrNotFound
func (s *CollectionPointStore) GetByID(ctx context.Context, id string) (*models.CollectionPoint, error) {
	for _, point := range s.snapshot(ctx) {
		if point.ID == id {
			found := point
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrNotFound, msgPointNotFound)
}

// GetByUser returns the points owned by userID
func (s *CollectionPointStore) GetByUser(ctx context.Context, userID string) ([]models.CollectionPoint, error) {
	return s.filter(ctx, func(p models.CollectionPoint) bool { return p.UserID == userID }), nil
}

// GetAll returns every point
func (s *CollectionPointStore) GetAll(ctx context.Context) ([]models.CollectionPoint, error) {
	return s.snapshot(ctx), nil
}

// GetByWasteType returns the points accepting waste
func (s *CollectionPointStore) GetByWasteType(ctx context.Context, waste models.WasteType) ([]models.CollectionPoint, error) {
	return s.filter(ctx, func(p models.CollectionPoint) bool { return acceptsWaste(p, waste) }), nil
}

// GetByCity returns the points whose city matches case-insensitively
func (s *CollectionPointStore) GetByCity(ctx context.Context, city string) ([]models.CollectionPoint, error) {
	city = strings.TrimSpace(city)
	return s.filter(ctx, func(p models.CollectionPoint) bool { return strings.EqualFold(p.Address.City, city) }), nil
}

// GetRecent returns up to limit points, newest first
func (s *CollectionPointStore) GetRecent(ctx context.Context, limit int) ([]models.CollectionPoint, error) {
	points := s.snapshot(ctx)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].CreatedAt.After(points[j].CreatedAt)
	})
	if limit >= 0 && len(points) > limit {
		points = points[:limit]
	}
	return points, nil
}

// Delete removes a point owned by userID
func (s *CollectionPointStore) Delete(ctx context.Context, id, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.points.Load(ctx)
	if err != nil {
		return err
	}

	idx := indexOfPoint(points, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", models.ErrNotFound, msgPointNotFound)
	}
	if points[idx].UserID != userID {
		return fmt.Errorf("%w: %s", models.ErrForbidden, msgPointDelForbidden)
	}

	remaining := make([]models.CollectionPoint, 0, len(points)-1)
	remaining = append(remaining, points[:idx]...)
	remaining = append(remaining, points[idx+1:]...)
	if err := s.points.Save(ctx, remaining); err != nil {
		return err
	}

	s.logger.Info("collection point deleted", zap.String("point_id", id), zap.String("user_id", userID))
	return nil
}

// Import appends the given points, skipping ids that are already stored.
// It returns the number of points added.
func (s *CollectionPointStore) Import(ctx context.Context, incoming []models.CollectionPoint) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	points, err := s.points.Load(ctx)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, point := range incoming {
		if indexOfPoint(points, point.ID) >= 0 {
			continue
		}
		points = append(points, point)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := s.points.Save(ctx, points); err != nil {
		return 0, err
	}
	return added, nil
}

// Search matches name, description, neighborhood, city and accepted waste
// types case-insensitively. An empty query returns every point.
func (s *CollectionPointStore) Search(ctx context.Context, query string) ([]models.CollectionPoint, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.snapshot(ctx), nil
	}

	return s.filter(ctx, func(p models.CollectionPoint) bool {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Address.Neighborhood), q) ||
			strings.Contains(strings.ToLower(p.Address.City), q) {
			return true
		}
		for _, waste := range p.AcceptedWastes {
			if strings.Contains(strings.ToLower(string(waste)), q) {
				return true
			}
		}
		return false
	}), nil
}

// ValidateUniquePoint rejects a form whose name matches another point
// case-insensitively, or whose cep, street and number all match another
// point. excludeID skips the point being edited.
func (s *CollectionPointStore) ValidateUniquePoint(ctx context.Context, form models.CollectionPointForm, excludeID string) models.UniquenessResult {
	return checkUniquePoint(s.snapshot(ctx), form, excludeID)
}

// checkUniquePoint reports the first violated field, name before address.
func checkUniquePoint(points []models.CollectionPoint, form models.CollectionPointForm, excludeID string) models.UniquenessResult {
	name := strings.TrimSpace(form.Name)
	cep := utils.CleanCEP(form.CEP)
	street := strings.TrimSpace(form.Street)
	number := strings.TrimSpace(form.Number)

	for _, point := range points {
		if excludeID != "" && point.ID == excludeID {
			continue
		}
		if strings.EqualFold(point.Name, name) {
			return models.UniquenessResult{IsValid: false, Message: msgPointNameTaken, Field: "name"}
		}
		if utils.CleanCEP(point.Address.CEP) == cep &&
			strings.EqualFold(point.Address.Street, street) &&
			point.Address.Number == number {
			return models.UniquenessResult{IsValid: false, Message: msgPointAddressTaken, Field: "address"}
		}
	}
	return models.UniquenessResult{IsValid: true}
}

// GetStatistics aggregates the stored points
func (s *CollectionPointStore) GetStatistics(ctx context.Context) (models.CollectionPointStats, error) {
	points := s.snapshot(ctx)
	since := s.cfg.nowFunc().AddDate(0, 0, -recentPointsDays)

	stats := models.CollectionPointStats{
		Total:       len(points),
		ByWasteType: map[models.WasteType]int{},
		ByCity:      map[string]int{},
	}
	for _, point := range points {
		for _, waste := range point.AcceptedWastes {
			stats.ByWasteType[waste]++
		}
		stats.ByCity[point.Address.City]++
		if !point.CreatedAt.Before(since) {
			stats.Recent++
		}
	}
	return stats, nil
}

func (s *CollectionPointStore) filter(ctx context.Context, keep func(models.CollectionPoint) bool) []models.CollectionPoint {
	matches := []models.CollectionPoint{}
	for _, point := range s.snapshot(ctx) {
		if keep(point) {
			matches = append(matches, point)
		}
	}
	return matches
}

func acceptsWaste(point models.CollectionPoint, waste models.WasteType) bool {
	for _, accepted := range point.AcceptedWastes {
		if accepted == waste {
			return true
		}
	}
	return false
}

func indexOfPoint(points []models.CollectionPoint, id string) int {
	for i, point := range points {
		if point.ID == id {
			return i
		}
	}
	return -1
}
