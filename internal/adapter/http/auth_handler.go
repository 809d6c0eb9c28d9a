package http

import (
	"net/http"
	"strings"

	authUC "casetrack-backend/internal/usecase/auth"
	"casetrack-backend/pkg/id"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc *authUC.Usecase
	cv *CustomValidator
}

func NewAuthHandler(uc *authUC.Usecase, cv *CustomValidator) *AuthHandler {
	return &AuthHandler{uc: uc, cv: cv}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login runs before the auth middleware; it derives its own request id
// for the audit trail.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	requestID := strings.TrimSpace(c.Request().Header.Get("Ax-Request-Id"))
	if requestID == "" {
		requestID = id.NewRequestID()
	}
	res, err := h.uc.Login(c.Request().Context(), req.Email, req.Password, c.RealIP(), requestID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
