package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jeongjingoo/tech/dto"
	"github.com/jeongjingoo/tech/internal/middleware"
	"github.com/jeongjingoo/tech/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Technician login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	profile, token, err := h.auth.Login(ctx, req.ID, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LoginResponse{
		ID:          profile.ID,
		Name:        profile.Name,
		Team:        profile.Team,
		AccessToken: token,
	}))
}

// Me godoc
// @Summary Current technician
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{data=models.Profile}
// @Failure 401 {object} dto.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	return c.JSON(dto.OK(claims.Profile()))
}
