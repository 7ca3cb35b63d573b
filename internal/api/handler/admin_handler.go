package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-api/internal/core/ports"
)

// AdminHandler serves the legacy debug endpoints. The router only mounts it
// when debug endpoints are enabled in configuration; none of these routes
// require authentication.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type compareRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type compareResponse struct {
	Match bool `json:"match"`
}

// ListUsers returns every user with credentials redacted.
// Mounted as GET /signup and POST /status.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// PurgeUsers deletes all users and returns the remaining (empty) list.
// Mounted as DELETE /deleteallusers.
func (h *AdminHandler) PurgeUsers(c echo.Context) error {
	users, err := h.adminService.PurgeUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListSessions returns every session record. Mounted as POST /sessions.
func (h *AdminHandler) ListSessions(c echo.Context) error {
	sessions, err := h.adminService.ListSessions(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessions)
}

// Compare checks a raw password against the stored hash for an email.
// Mounted as GET /compare.
func (h *AdminHandler) Compare(c echo.Context) error {
	var req compareRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	match, err := h.adminService.ComparePassword(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, compareResponse{Match: match})
}
