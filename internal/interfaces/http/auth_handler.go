package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/auth"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// AuthHandler maneja registro, login y logout.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	recorder *audit.Recorder
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, recorder *audit.Recorder) *AuthHandler {
	return &AuthHandler{uc: uc, recorder: recorder}
}

// Register godoc
// @Summary      Registrar usuario (rol client)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		h.recorder.Record(audit.Actor{IP: clientIP(c), UserAgent: c.Get("User-Agent")}, audit.Entry{
			EntityType: "session",
			EntityID:   in.Email,
			Action:     entity.AuditLoginFailed,
		})
		return respondError(c, err)
	}
	h.recorder.Record(audit.Actor{
		UserID:    out.User.ID,
		Role:      out.User.Role,
		IP:        clientIP(c),
		UserAgent: c.Get("User-Agent"),
	}, audit.Entry{
		EntityType: "session",
		EntityID:   out.User.ID,
		Action:     entity.AuditLogin,
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    out.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "session",
		EntityID:   GetUserID(c),
		Action:     entity.AuditLogout,
	})
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Usuario autenticado con su scope resuelto
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	scope := GetScope(c)
	user, err := h.uc.Profile(GetUserID(c), scope.CompanyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
