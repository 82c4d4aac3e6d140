package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/forms"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/middleware"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/utils"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CollectionPointListResponse wraps a list of collection points
type CollectionPointListResponse struct {
	Data  []models.CollectionPoint `json:"data"`
	Total int                      `json:"total"`
}

// CollectionPointHandlers handles the collection point endpoints
type CollectionPointHandlers struct {
	points *services.CollectionPointStore
	logger *logging.SafeLogger
}

// NewCollectionPointHandlers creates a new collection point handlers instance
func NewCollectionPointHandlers(points *services.CollectionPointStore, logger *logging.SafeLogger) *CollectionPointHandlers {
	return &CollectionPointHandlers{
		points: points,
		logger: logger,
	}
}

func listResponse(points []models.CollectionPoint) CollectionPointListResponse {
	if points == nil {
		points = []models.CollectionPoint{}
	}
	return CollectionPointListResponse{Data: points, Total: len(points)}
}

// ListCollectionPoints godoc
// @Summary Listar pontos de coleta
// @Description Lista os pontos de coleta. Os filtros são aplicados na ordem q, waste, city; recent limita aos mais novos.
// @Tags collection-points
// @Produce json
// @Param q query string false "Busca por nome, descrição, bairro, cidade ou tipo de resíduo"
// @Param waste query string false "Tipo de resíduo aceito (ex: Vidro)"
// @Param city query string false "Cidade"
// @Param recent query int false "Quantidade de pontos mais recentes" minimum(1)
// @Success 200 {object} CollectionPointListResponse "Pontos de coleta"
// @Failure 400 {object} ErrorResponse "Parâmetros inválidos"
// @Router /collection-points [get]
func (h *CollectionPointHandlers) ListCollectionPoints(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListCollectionPoints")
	defer span.End()

	var (
		points []models.CollectionPoint
		err    error
	)
	switch {
	case c.Query("q") != "":
		points, err = h.points.Search(ctx, c.Query("q"))
	case c.Query("waste") != "":
		waste := models.WasteType(c.Query("waste"))
		if !waste.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Tipo de resíduo inválido", Field: "waste"})
			return
		}
		points, err = h.points.GetByWasteType(ctx, waste)
	case c.Query("city") != "":
		points, err = h.points.GetByCity(ctx, c.Query("city"))
	case c.Query("recent") != "":
		limit, convErr := strconv.Atoi(c.Query("recent"))
		if convErr != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetro recent inválido", Field: "recent"})
			return
		}
		points, err = h.points.GetRecent(ctx, limit)
	default:
		points, err = h.points.GetAll(ctx)
	}
	if err != nil {
		respondError(c, span, err)
		return
	}

	span.SetAttributes(attribute.Int("points_returned", len(points)))
	h.logger.Debug("ListCollectionPoints completed",
		zap.Int("points_returned", len(points)),
		zap.Duration("total_duration", time.Since(startTime)))
	c.JSON(http.StatusOK, listResponse(points))
}

// GetCollectionPointStats godoc
// @Summary Estatísticas dos pontos de coleta
// @Description Total, distribuição por tipo de resíduo e por cidade, e pontos criados nos últimos 7 dias.
// @Tags collection-points
// @Produce json
// @Success 200 {object} models.CollectionPointStats "Estatísticas"
// @Router /collection-points/stats [get]
func (h *CollectionPointHandlers) GetCollectionPointStats(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCollectionPointStats")
	defer span.End()

	stats, err := h.points.GetStatistics(ctx)
	if err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetCollectionPoint godoc
// @Summary Obter ponto de coleta
// @Tags collection-points
// @Produce json
// @Param id path string true "ID do ponto de coleta"
// @Success 200 {object} models.CollectionPoint "Ponto de coleta"
// @Failure 404 {object} ErrorResponse "Ponto de coleta não encontrado"
// @Router /collection-points/{id} [get]
func (h *CollectionPointHandlers) GetCollectionPoint(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCollectionPoint")
	defer span.End()

	id := c.Param("id")
	span.SetAttributes(attribute.String("point_id", id))

	point, err := h.points.GetByID(ctx, id)
	if err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// ListUserCollectionPoints godoc
// @Summary Pontos de coleta de um usuário
// @Tags collection-points
// @Produce json
// @Param id path string true "ID do usuário"
// @Success 200 {object} CollectionPointListResponse "Pontos de coleta do usuário"
// @Router /users/{id}/collection-points [get]
func (h *CollectionPointHandlers) ListUserCollectionPoints(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListUserCollectionPoints")
	defer span.End()

	points, err := h.points.GetByUser(ctx, c.Param("id"))
	if err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(points))
}

// bindPointForm decodes and validates a collection point form, answering
// 400 when it is malformed or breaks a field rule
func bindPointForm(c *gin.Context) (models.CollectionPointForm, bool) {
	var form models.CollectionPointForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return form, false
	}

	_, span, done := utils.TraceValidationOperation(c.Request.Context(), "collection_point", "form")
	errs := forms.ValidateCollectionPointForm(form)
	utils.AddSpanAttribute(span, "validation.errors", len(errs))
	done()

	if !errs.IsValid() {
		respondValidation(c, errs)
		return form, false
	}
	return form, true
}

// CreateCollectionPoint godoc
// @Summary Cadastrar ponto de coleta
// @Description Valida o formulário, verifica nome e endereço duplicados e cadastra o ponto para o usuário autenticado.
// @Tags collection-points
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param data body models.CollectionPointForm true "Formulário do ponto de coleta"
// @Security BearerAuth
// @Success 201 {object} models.CollectionPoint "Ponto de coleta cadastrado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Usuário não autenticado"
// @Failure 409 {object} ErrorResponse "Nome ou endereço já cadastrado"
// @Failure 507 {object} ErrorResponse "Falha ao salvar os dados"
// @Router /collection-points [post]
func (h *CollectionPointHandlers) CreateCollectionPoint(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "CreateCollectionPoint")
	defer span.End()

	session, _ := middleware.GetSession(c)
	user, ok := sessionUser(c, session)
	if !ok {
		return
	}

	form, ok := bindPointForm(c)
	if !ok {
		return
	}

	if result := h.points.ValidateUniquePoint(ctx, form, ""); !result.IsValid {
		c.JSON(http.StatusConflict, ErrorResponse{Error: result.Message, Field: result.Field})
		return
	}

	point, err := h.points.Create(ctx, form, user.ID)
	if err != nil {
		respondError(c, span, err)
		return
	}

	span.SetAttributes(attribute.String("point_id", point.ID))
	c.JSON(http.StatusCreated, point)
}

// UpdateCollectionPoint godoc
// @Summary Atualizar ponto de coleta
// @Description Atualiza um ponto de coleta do usuário autenticado.
// @Tags collection-points
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param id path string true "ID do ponto de coleta"
// @Param data body models.CollectionPointForm true "Formulário do ponto de coleta"
// @Security BearerAuth
// @Success 200 {object} models.CollectionPoint "Ponto de coleta atualizado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Usuário não autenticado"
// @Failure 403 {object} ErrorResponse "Ponto de coleta de outro usuário"
// @Failure 404 {object} ErrorResponse "Ponto de coleta não encontrado"
// @Failure 409 {object} ErrorResponse "Nome ou endereço já cadastrado"
// @Router /collection-points/{id} [put]
func (h *CollectionPointHandlers) UpdateCollectionPoint(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateCollectionPoint")
	defer span.End()

	session, _ := middleware.GetSession(c)
	user, ok := sessionUser(c, session)
	if !ok {
		return
	}

	id := c.Param("id")
	span.SetAttributes(attribute.String("point_id", id))

	form, ok := bindPointForm(c)
	if !ok {
		return
	}

	if result := h.points.ValidateUniquePoint(ctx, form, id); !result.IsValid {
		c.JSON(http.StatusConflict, ErrorResponse{Error: result.Message, Field: result.Field})
		return
	}

	point, err := h.points.Update(ctx, id, form, user.ID)
	if err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

// DeleteCollectionPoint godoc
// @Summary Remover ponto de coleta
// @Tags collection-points
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param id path string true "ID do ponto de coleta"
// @Security BearerAuth
// @Success 204 "Ponto de coleta removido"
// @Failure 401 {object} ErrorResponse "Usuário não autenticado"
// @Failure 403 {object} ErrorResponse "Ponto de coleta de outro usuário"
// @Failure 404 {object} ErrorResponse "Ponto de coleta não encontrado"
// @Router /collection-points/{id} [delete]
func (h *CollectionPointHandlers) DeleteCollectionPoint(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteCollectionPoint")
	defer span.End()

	session, _ := middleware.GetSession(c)
	user, ok := sessionUser(c, session)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.points.Delete(ctx, id, user.ID); err != nil {
		respondError(c, span, err)
		return
	}
	c.Status(http.StatusNoContent)
}
