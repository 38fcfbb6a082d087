package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/identity"
	"github.com/sepandsoft/admin-directory/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// List handles GET /admins/. A SUPER_ADMIN gets a page of records; everyone
// else gets the self-view, a single object holding their own record.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	if !caller.IsSuper() {
		admin, err := h.adminService.GetByID(caller.ID)
		if err != nil {
			if errors.Is(err, services.ErrAdminNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
					Error: true, Message: "admin not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "failed to fetch admin",
			})
		}
		return c.JSON(dto.NewAdminResponse(admin))
	}

	offset, limit := pagination(c)
	admins, err := h.adminService.List(offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to list admins",
		})
	}
	return c.JSON(dto.NewAdminListResponse(admins))
}

// Create handles POST /admins/.
func (h *AdminHandler) Create(c *fiber.Ctx) error {
	caller, err := identity.FromContext(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.FirstName == "" || req.LastName == "" || req.Username == "" ||
		req.Email == "" || req.NationalID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "first_name, last_name, username, email and national_id are required",
		})
	}
	if len(req.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "password must be at least 8 characters",
		})
	}

	admin, err := h.adminService.Create(caller, &req)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrInvalidBirthday):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrDuplicateAdmin):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to create admin",
		})
	}

	return c.JSON(dto.NewAdminResponse(admin))
}

// Get handles GET /admins/:id.
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	adminID, ok := h.scopedTarget(c, "view")
	if !ok {
		return nil
	}

	admin, err := h.adminService.GetByID(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "admin not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to fetch admin",
		})
	}

	return c.JSON(dto.NewAdminResponse(admin))
}

// Update handles PATCH /admins/:id with exclude-unset semantics.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	adminID, ok := h.scopedTarget(c, "edit")
	if !ok {
		return nil
	}

	var req dto.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	admin, err := h.adminService.Update(adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "admin not found",
			})
		case errors.Is(err, dto.ErrInvalidBirthday):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrDuplicateAdmin):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to update admin",
		})
	}

	return c.JSON(dto.NewAdminResponse(admin))
}

// Delete handles DELETE /admins/:id and returns the removed record.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	adminID, ok := h.scopedTarget(c, "delete")
	if !ok {
		return nil
	}

	admin, err := h.adminService.Delete(adminID)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "admin not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to delete admin",
		})
	}

	return c.JSON(dto.NewAdminResponse(admin))
}

// Search handles GET /admins/search/.
func (h *AdminHandler) Search(c *fiber.Ctx) error {
	offset, limit := pagination(c)
	query := dto.SearchAdminsQuery{
		Username:   c.Query("username"),
		Email:      c.Query("email"),
		Role:       c.Query("role"),
		Status:     c.Query("status"),
		NationalID: c.Query("national_id"),
		Gender:     c.Query("gender"),
		Phone:      int64(c.QueryInt("phone", 0)),
		Operator:   c.Query("operator"),
		Offset:     offset,
		Limit:      limit,
	}

	admins, err := h.adminService.Search(&query)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoSearchFilters), errors.Is(err, services.ErrInvalidOperator):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAdminNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "no admins matched the search",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "failed to search admins",
		})
	}

	return c.JSON(dto.NewAdminListResponse(admins))
}

// scopedTarget resolves the caller and the :id path parameter, writes the
// error response itself when the caller may not act on the target, and
// reports whether the handler should proceed. The ownership check runs before
// any storage access.
func (h *AdminHandler) scopedTarget(c *fiber.Ctx, action string) (uuid.UUID, bool) {
	caller, err := identity.FromContext(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return uuid.Nil, false
	}

	adminID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "invalid admin id",
		})
		return uuid.Nil, false
	}

	if !caller.CanAccess(adminID) {
		_ = c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "you do not have permission to " + action + " other admins",
		})
		return adminID, false
	}

	return adminID, true
}

func pagination(c *fiber.Ctx) (offset, limit int) {
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit = c.QueryInt("limit", 100)
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	return offset, limit
}
