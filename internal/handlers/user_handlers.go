package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/logging"
	"github.com/recicla365/app-ecopontos/internal/models"
	"github.com/recicla365/app-ecopontos/internal/services"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// UserListResponse wraps a list of users without password hashes, CPF and
// email masked
type UserListResponse struct {
	Data  []models.User `json:"data"`
	Total int           `json:"total"`
}

// UserStatsResponse adds the demo account count to the registered user stats
type UserStatsResponse struct {
	models.UserStats
	DemoUsers  int `json:"demoUsers"`
	TotalUsers int `json:"totalUsers"`
}

// UserHandlers handles the registered user endpoints
type UserHandlers struct {
	users  *services.UserStore
	demo   *services.DemoUsers
	logger *logging.SafeLogger
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(users *services.UserStore, demo *services.DemoUsers, logger *logging.SafeLogger) *UserHandlers {
	return &UserHandlers{
		users:  users,
		demo:   demo,
		logger: logger,
	}
}

// ListUsers godoc
// @Summary Listar usuários cadastrados
// @Description Lista os usuários cadastrados, com busca opcional por nome, email, cidade ou CPF. CPF e email são mascarados.
// @Tags users
// @Produce json
// @Param q query string false "Texto de busca"
// @Param city query string false "Cidade"
// @Success 200 {object} UserListResponse "Usuários"
// @Router /users [get]
func (h *UserHandlers) ListUsers(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListUsers")
	defer span.End()

	var (
		users []models.User
		err   error
	)
	if city := c.Query("city"); city != "" {
		users, err = h.users.GetByCity(ctx, city)
	} else {
		users, err = h.users.Search(ctx, c.Query("q"))
	}
	if err != nil {
		respondError(c, span, err)
		return
	}

	span.SetAttributes(attribute.Int("users_returned", len(users)))
	public := publicUsers(users)
	c.JSON(http.StatusOK, UserListResponse{Data: public, Total: len(public)})
}

// GetUserStats godoc
// @Summary Estatísticas dos usuários
// @Description Total de cadastrados, cadastrados nos últimos 30 dias, cidades distintas e distribuição por gênero.
// @Tags users
// @Produce json
// @Success 200 {object} UserStatsResponse "Estatísticas"
// @Router /users/stats [get]
func (h *UserHandlers) GetUserStats(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetUserStats")
	defer span.End()

	stats, err := h.users.GetStats(ctx)
	if err != nil {
		respondError(c, span, err)
		return
	}

	demo := len(h.demo.All())
	c.JSON(http.StatusOK, UserStatsResponse{
		UserStats:  stats,
		DemoUsers:  demo,
		TotalUsers: demo + stats.Total,
	})
}
