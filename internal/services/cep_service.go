package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"github.com/recicla365/app-ecopontos/internal/storage"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.uber.org/zap"
)

// viaCEPResponse is the payload returned by ViaCEP
type viaCEPResponse struct {
	CEP         string   `json:"cep"`
	Logradouro  string   `json:"logradouro"`
	Complemento string   `json:"complemento"`
	Bairro      string   `json:"bairro"`
	Localidade  string   `json:"localidade"`
	UF          string   `json:"uf"`
	Erro        flagBool `json:"erro"`
}

// flagBool accepts both true and "true", ViaCEP has sent either
type flagBool bool

func (f *flagBool) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	*f = flagBool(value == "true")
	return nil
}

// CEPService resolves postal codes to addresses through ViaCEP. When a
// cache backend is configured, successful lookups are cached for cacheTTL.
type CEPService struct {
	baseURL  string
	client   *http.Client
	cache    storage.Backend
	cacheTTL time.Duration
	logger   *logging.SafeLogger
}

// NewCEPService creates a CEPService. cache may be nil.
func NewCEPService(baseURL string, client *http.Client, cache storage.Backend, cacheTTL time.Duration, logger *logging.SafeLogger) *CEPService {
	return &CEPService{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Lookup resolves cep. It fails with models.ErrCEPInvalid for malformed
// input, models.ErrCEPNotFound when ViaCEP reports the code unknown and
// models.ErrLookupFailed on any transport or decoding problem.
func (s *CEPService) Lookup(ctx context.Context, cep string) (models.CEPAddress, error) {
	clean := utils.CleanCEP(cep)
	if !utils.IsValidCEP(clean) {
		observability.CEPLookups.WithLabelValues("invalid").Inc()
		return models.CEPAddress{}, fmt.Errorf("%w: CEP inválido", models.ErrCEPInvalid)
	}

	if address, ok := s.fromCache(ctx, clean); ok {
		observability.CEPLookups.WithLabelValues("success").Inc()
		return address, nil
	}

	start := time.Now()
	address, err := s.fetch(ctx, clean)
	observability.OperationDuration.WithLabelValues("cep_lookup").Observe(time.Since(start).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, models.ErrCEPNotFound):
			observability.CEPLookups.WithLabelValues("not_found").Inc()
		default:
			observability.CEPLookups.WithLabelValues("error").Inc()
			s.logger.Warn("CEP lookup failed", zap.String("cep", clean), zap.Error(err))
		}
		return models.CEPAddress{}, err
	}

	observability.CEPLookups.WithLabelValues("success").Inc()
	s.toCache(ctx, clean, address)
	return address, nil
}

func (s *CEPService) fetch(ctx context.Context, clean string) (models.CEPAddress, error) {
	ctx, span, done := utils.TraceExternalService(ctx, "viacep", "lookup")
	defer done()

	url := fmt.Sprintf("%s/%s/json/", s.baseURL, clean)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.CEPAddress{}, fmt.Errorf("%w: %w", models.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return models.CEPAddress{}, fmt.Errorf("%w: Erro ao buscar CEP: %w", models.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	utils.AddSpanAttribute(span, "http.status_code", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return models.CEPAddress{}, fmt.Errorf("%w: Erro na consulta do CEP (status %d)", models.ErrLookupFailed, resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return models.CEPAddress{}, fmt.Errorf("%w: Erro ao buscar CEP: %w", models.ErrLookupFailed, err)
	}
	if payload.Erro {
		return models.CEPAddress{}, fmt.Errorf("%w: CEP não encontrado", models.ErrCEPNotFound)
	}

	return models.CEPAddress{
		CEP:          utils.FormatCEP(clean),
		Street:       payload.Logradouro,
		Complement:   payload.Complemento,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		State:        payload.UF,
	}, nil
}

func cepCacheKey(clean string) string {
	return "cep:" + clean
}

func (s *CEPService) fromCache(ctx context.Context, clean string) (models.CEPAddress, bool) {
	if s.cache == nil {
		return models.CEPAddress{}, false
	}
	ctx, _, done := utils.TraceCacheOperation(ctx, "get", cepCacheKey(clean))
	defer done()

	raw, ok, err := s.cache.Get(ctx, cepCacheKey(clean))
	if err != nil {
		s.logger.Warn("CEP cache read failed", zap.Error(err))
		observability.CacheHits.WithLabelValues("cep", "error").Inc()
		return models.CEPAddress{}, false
	}
	if !ok {
		observability.CacheHits.WithLabelValues("cep", "miss").Inc()
		return models.CEPAddress{}, false
	}

	var address models.CEPAddress
	if err := json.Unmarshal([]byte(raw), &address); err != nil {
		observability.CacheHits.WithLabelValues("cep", "miss").Inc()
		return models.CEPAddress{}, false
	}
	observability.CacheHits.WithLabelValues("cep", "hit").Inc()
	return address, true
}

func (s *CEPService) toCache(ctx context.Context, clean string, address models.CEPAddress) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(address)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cepCacheKey(clean), string(payload), s.cacheTTL); err != nil {
		s.logger.Warn("CEP cache write failed", zap.Error(err))
	}
}

// Autofill looks up the form's CEP and merges the result into it. On any
// failure the form is returned untouched together with the error.
func (s *CEPService) Autofill(ctx context.Context, form models.CollectionPointForm) (models.CollectionPointForm, error) {
	address, err := s.Lookup(ctx, form.CEP)
	if err != nil {
		return form, err
	}
	return MergeAddress(form, address), nil
}

// MergeAddress fills form with the fields the lookup returned. Fields the
// lookup left empty keep their current value, and the CEP is rewritten in
// its formatted form.
func MergeAddress(form models.CollectionPointForm, address models.CEPAddress) models.CollectionPointForm {
	merged := form
	merged.AcceptedWastes = append([]models.WasteType(nil), form.AcceptedWastes...)

	if address.CEP != "" {
		merged.CEP = address.CEP
	}
	if address.Street != "" {
		merged.Street = address.Street
	}
	if address.Neighborhood != "" {
		merged.Neighborhood = address.Neighborhood
	}
	if address.City != "" {
		merged.City = address.City
	}
	if address.State != "" {
		merged.State = address.State
	}
	return merged
}
