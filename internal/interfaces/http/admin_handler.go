package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ilogush/cars-api/internal/application/audit"
	"github.com/ilogush/cars-api/internal/application/dto"
	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain"
	"github.com/ilogush/cars-api/internal/domain/entity"
	"github.com/ilogush/cars-api/internal/domain/repository"
)

// AdminHandler operaciones exclusivas de admin: impersonación de empresa
// (admin-mode) y audit log.
type AdminHandler struct {
	companyUC *usecase.CompanyUseCase
	recorder  *audit.Recorder
}

// NewAdminHandler construye el handler de administración.
func NewAdminHandler(companyUC *usecase.CompanyUseCase, recorder *audit.Recorder) *AdminHandler {
	return &AdminHandler{companyUC: companyUC, recorder: recorder}
}

// EnterCompany godoc
// @Summary      Entrar en admin-mode sobre una empresa
// @Description  No persiste estado: devuelve el redirectUrl con los query
// @Description  params (admin_mode + company_id) que el cliente debe propagar.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnterCompanyRequest  true  "companyId"
// @Success      200   {object}  dto.AdminModeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/enter-company [post]
func (h *AdminHandler) EnterCompany(c *fiber.Ctx) error {
	var in dto.EnterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.CompanyID == "" {
		return respondError(c, domain.ErrInvalidInput)
	}
	// admin ve cualquier empresa; el GetByID valida que exista
	company, err := h.companyUC.GetByID(GetScope(c), "", in.CompanyID)
	if err != nil {
		return respondError(c, err)
	}
	actor := actorFrom(c)
	actor.CompanyID = company.ID
	h.recorder.Record(actor, audit.Entry{
		EntityType: "company", EntityID: company.ID, Action: entity.AuditLogin,
	})
	return c.JSON(dto.AdminModeResponse{
		CompanyID:   company.ID,
		RedirectURL: "/?" + QueryAdminMode + "=true&" + QueryAdminCompany + "=" + company.ID,
	})
}

// ExitCompany godoc
// @Summary      Salir de admin-mode
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.AdminModeResponse
// @Router       /api/admin/exit-company [post]
func (h *AdminHandler) ExitCompany(c *fiber.Ctx) error {
	h.recorder.Record(actorFrom(c), audit.Entry{
		EntityType: "company", EntityID: GetAdminCompany(c), Action: entity.AuditLogout,
	})
	return c.JSON(dto.AdminModeResponse{RedirectURL: "/"})
}

// ListAuditLogs godoc
// @Summary      Listar audit log (solo admin)
// @Tags         admin
// @Produce      json
// @Param        page        query  int     false  "página (>= 1)"
// @Param        pageSize    query  int     false  "tamaño de página (max 100)"
// @Param        userId      query  string  false  "filtro por usuario"
// @Param        companyId   query  string  false  "filtro por empresa"
// @Param        entityType  query  string  false  "filtro por tipo de entidad"
// @Param        action      query  string  false  "filtro por acción"
// @Success      200  {object}  dto.AuditLogListResponse
// @Router       /api/admin/audit-logs [get]
func (h *AdminHandler) ListAuditLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badBody(c)
	}
	page.Normalize()
	filter := repository.AuditLogFilter{
		UserID:     c.Query("userId"),
		CompanyID:  c.Query("companyId"),
		EntityType: c.Query("entityType"),
		Action:     c.Query("action"),
	}
	list, err := h.recorder.List(filter, page.Limit(), page.Offset())
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Role:       l.Role,
			CompanyID:  l.CompanyID,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Action:     l.Action,
			IP:         l.IP,
			UserAgent:  l.UserAgent,
			CreatedAt:  l.CreatedAt,
		})
	}
	return c.JSON(dto.AuditLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize},
	})
}

// ClearAuditLogs godoc
// @Summary      Vaciar audit log (solo admin)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.ClearAuditLogsResponse
// @Router       /api/admin/audit-logs [delete]
func (h *AdminHandler) ClearAuditLogs(c *fiber.Ctx) error {
	deleted, err := h.recorder.Clear()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ClearAuditLogsResponse{Deleted: deleted})
}
