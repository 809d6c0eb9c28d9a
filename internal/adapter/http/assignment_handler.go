package http

import (
	"net/http"

	assignmentUC "casetrack-backend/internal/usecase/assignment"

	"github.com/labstack/echo/v4"
)

type AssignmentHandler struct {
	uc *assignmentUC.Usecase
	cv *CustomValidator
}

func NewAssignmentHandler(uc *assignmentUC.Usecase, cv *CustomValidator) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, cv: cv}
}

type assignRequest struct {
	SupervisorID uint64 `json:"supervisor_id" validate:"required"`
	TechnicianID uint64 `json:"technician_id" validate:"required"`
}

func (h *AssignmentHandler) Assign(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Assign(c.Request().Context(), req.SupervisorID, req.TechnicianID, actor); err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "assigned"})
}

func (h *AssignmentHandler) Unassign(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	technicianID, err := pathID(c, "technician_id")
	if err != nil {
		return writeFault(c, err)
	}
	if err := h.uc.Unassign(c.Request().Context(), technicianID, actor); err != nil {
		return writeFault(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AssignmentHandler) List(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	res, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AssignmentHandler) ListSupervisors(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	res, err := h.uc.ListSupervisors(c.Request().Context())
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AssignmentHandler) ListUnassignedTechnicians(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	res, err := h.uc.ListUnassignedTechnicians(c.Request().Context())
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
