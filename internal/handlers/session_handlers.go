package handlers

import (
	"net/http"
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

const (
	msgLoginFailed   = "Email ou senha incorretos. Tente novamente."
	msgProfileFailed = "Não foi possível atualizar o perfil"
)

// ThemeRequest is the payload for changing the theme preference
type ThemeRequest struct {
	Theme models.Theme `json:"theme" binding:"required"`
}

// ThemeResponse carries the current theme preference
type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
}

// SessionHandlers handles the device session endpoints
type SessionHandlers struct {
	users  *services.UserStore
	demo   *services.DemoUsers
	logger *logging.SafeLogger
}

// NewSessionHandlers creates a new session handlers instance
func NewSessionHandlers(users *services.UserStore, demo *services.DemoUsers, logger *logging.SafeLogger) *SessionHandlers {
	return &SessionHandlers{
		users:  users,
		demo:   demo,
		logger: logger,
	}
}

// Register godoc
// @Summary Cadastrar usuário
// @Description Valida o formulário de cadastro, cria o usuário e inicia a sessão no dispositivo.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param data body forms.RegisterForm true "Dados de cadastro"
// @Success 201 {object} models.SessionInfo "Usuário cadastrado e autenticado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 409 {object} ErrorResponse "CPF ou email já cadastrado"
// @Failure 507 {object} ErrorResponse "Falha ao salvar os dados"
// @Router /session/register [post]
func (h *SessionHandlers) Register(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Register")
	defer span.End()

	span.SetAttributes(
		attribute.String("operation", "register"),
		attribute.String("service", "session"),
	)

	session, _ := middleware.GetSession(c)

	var form forms.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	_, validationSpan, done := utils.TraceValidationOperation(ctx, "registration", "form")
	errs := forms.ValidateRegistration(form)
	utils.AddSpanAttribute(validationSpan, "validation.errors", len(errs))
	done()
	if !errs.IsValid() {
		respondValidation(c, errs)
		return
	}

	user, err := session.Register(ctx, form.ToUserInput())
	if err != nil {
		h.logger.Info("registration rejected", zap.Error(err))
		respondError(c, span, err)
		return
	}

	h.logger.Debug("Register completed",
		zap.String("user_id", user.ID),
		zap.Duration("total_duration", time.Since(startTime)))
	c.JSON(http.StatusCreated, session.Info())
}

// Login godoc
// @Summary Entrar
// @Description Autentica pelas contas de demonstração e depois pelos usuários cadastrados.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param data body models.LoginInput true "Credenciais"
// @Success 200 {object} models.SessionInfo "Sessão iniciada"
// @Failure 400 {object} ErrorResponse "Requisição inválida"
// @Failure 401 {object} ErrorResponse "Email ou senha incorretos"
// @Router /session/login [post]
func (h *SessionHandlers) Login(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Login")
	defer span.End()

	session, _ := middleware.GetSession(c)

	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}

	if !session.Login(ctx, input.Email, input.Password) {
		span.SetAttributes(attribute.Bool("login.success", false))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: msgLoginFailed})
		return
	}

	span.SetAttributes(attribute.Bool("login.success", true))
	c.JSON(http.StatusOK, session.Info())
}

// Logout godoc
// @Summary Sair
// @Description Remove o usuário e o token persistidos no dispositivo. Pode ser chamado sem sessão.
// @Tags session
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Success 200 {object} models.SessionInfo "Sessão encerrada"
// @Router /session/logout [post]
func (h *SessionHandlers) Logout(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "Logout")
	defer span.End()

	session, _ := middleware.GetSession(c)
	session.Logout(ctx)
	c.JSON(http.StatusOK, session.Info())
}

// GetSession godoc
// @Summary Consultar sessão
// @Description Retorna o estado da sessão do dispositivo.
// @Tags session
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Success 200 {object} models.SessionInfo "Estado da sessão"
// @Router /session [get]
func (h *SessionHandlers) GetSession(c *gin.Context) {
	session, _ := middleware.GetSession(c)
	c.JSON(http.StatusOK, session.Info())
}

// UpdateProfile godoc
// @Summary Atualizar perfil
// @Description Atualiza os dados do usuário autenticado e a sessão persistida.
// @Tags session
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param data body forms.ProfileForm true "Dados do perfil"
// @Security BearerAuth
// @Success 200 {object} models.SessionInfo "Perfil atualizado"
// @Failure 400 {object} ValidationErrorResponse "Dados inválidos"
// @Failure 401 {object} ErrorResponse "Usuário não autenticado"
// @Failure 409 {object} ErrorResponse "CPF ou email já cadastrado"
// @Router /session/profile [put]
func (h *SessionHandlers) UpdateProfile(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "UpdateProfile")
	defer span.End()

	session, _ := middleware.GetSession(c)
	user, ok := sessionUser(c, session)
	if !ok {
		return
	}
	span.SetAttributes(attribute.String("user_id", user.ID))

	var form forms.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}
	if errs := forms.ValidateProfile(form); !errs.IsValid() {
		respondValidation(c, errs)
		return
	}

	if result := h.users.ValidateUniqueUser(ctx, form.CPF, form.Email, user.ID); !result.IsValid {
		c.JSON(http.StatusConflict, ErrorResponse{Error: result.Message, Field: result.Field})
		return
	}
	if result := h.demo.ValidateUnique(form.CPF, form.Email); !result.IsValid {
		c.JSON(http.StatusConflict, ErrorResponse{Error: result.Message, Field: result.Field})
		return
	}

	if !session.UpdateUser(ctx, form.ToUserUpdate()) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgProfileFailed})
		return
	}
	c.JSON(http.StatusOK, session.Info())
}

// GetTheme godoc
// @Summary Consultar tema
// @Description Retorna o tema salvo no dispositivo (light quando não definido).
// @Tags preferences
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Success 200 {object} ThemeResponse "Tema atual"
// @Router /preferences/theme [get]
func (h *SessionHandlers) GetTheme(c *gin.Context) {
	session, _ := middleware.GetSession(c)
	c.JSON(http.StatusOK, ThemeResponse{Theme: session.Theme(c.Request.Context())})
}

// SetTheme godoc
// @Summary Alterar tema
// @Description Salva o tema (light ou dark) no dispositivo.
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Device-ID header string true "Identificador do dispositivo"
// @Param data body ThemeRequest true "Tema"
// @Success 200 {object} ThemeResponse "Tema salvo"
// @Failure 400 {object} ErrorResponse "Tema inválido"
// @Router /preferences/theme [put]
func (h *SessionHandlers) SetTheme(c *gin.Context) {
	_, span := otel.Tracer("").Start(c.Request.Context(), "SetTheme")
	defer span.End()

	session, _ := middleware.GetSession(c)

	var req ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidRequest})
		return
	}
	if err := session.SetTheme(c.Request.Context(), req.Theme); err != nil {
		respondError(c, span, err)
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: req.Theme})
}
