package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sepandsoft/admin-directory/internal/dto"
	"github.com/sepandsoft/admin-directory/internal/services"
)

type AuthHandler struct {
	tokenService *services.TokenService
}

func NewAuthHandler(tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.tokenService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrAdminInactive) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "login failed",
		})
	}

	return c.JSON(resp)
}
