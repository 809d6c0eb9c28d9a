package http

import (
	"net/http"
	"strconv"

	userDomain "casetrack-backend/internal/domain/user"
	evidenceUC "casetrack-backend/internal/usecase/evidence"

	"github.com/labstack/echo/v4"
)

type EvidenceHandler struct {
	uc *evidenceUC.Usecase
	cv *CustomValidator
}

func NewEvidenceHandler(uc *evidenceUC.Usecase, cv *CustomValidator) *EvidenceHandler {
	return &EvidenceHandler{uc: uc, cv: cv}
}

type registerEvidenceRequest struct {
	CaseID            uint64   `json:"case_id" validate:"required"`
	TechnicianID      uint64   `json:"technician_id"`
	EvidenceNumber    string   `json:"evidence_number" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	ObjectType        string   `json:"object_type"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	Weight            *float64 `json:"weight"`
	WeightUnit        string   `json:"weight_unit"`
	DiscoveryLocation string   `json:"discovery_location"`
	StatusID          uint64   `json:"status_id"`
	Notes             string   `json:"notes"`
	Quantity          int      `json:"quantity" validate:"gte=0"`
}

func (h *EvidenceHandler) Register(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req registerEvidenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	id, err := h.uc.Register(c.Request().Context(), evidenceUC.RegisterInput{
		CaseID:            req.CaseID,
		TechnicianID:      req.TechnicianID,
		EvidenceNumber:    req.EvidenceNumber,
		Description:       req.Description,
		ObjectType:        req.ObjectType,
		Color:             req.Color,
		Size:              req.Size,
		Weight:            req.Weight,
		WeightUnit:        req.WeightUnit,
		DiscoveryLocation: req.DiscoveryLocation,
		StatusID:          req.StatusID,
		Notes:             req.Notes,
		Quantity:          req.Quantity,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

func (h *EvidenceHandler) Get(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	res, err := h.uc.Get(c.Request().Context(), id, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *EvidenceHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	caseID, _ := strconv.ParseUint(c.QueryParam("case_id"), 10, 64)
	statusID, _ := strconv.ParseUint(c.QueryParam("status_id"), 10, 64)

	res, err := h.uc.List(c.Request().Context(), evidenceUC.ListInput{
		CaseID:          caseID,
		StatusID:        statusID,
		Search:          c.QueryParam("search"),
		IncludeInactive: c.QueryParam("include_inactive") == "true" && actor.Role == userDomain.RoleAdmin,
		Page:            page,
		PageSize:        size,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

type updateEvidenceRequest struct {
	EvidenceNumber    string   `json:"evidence_number" validate:"required"`
	Description       string   `json:"description" validate:"required"`
	ObjectType        string   `json:"object_type"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	Weight            *float64 `json:"weight"`
	WeightUnit        string   `json:"weight_unit"`
	DiscoveryLocation string   `json:"discovery_location"`
	StatusID          uint64   `json:"status_id" validate:"required"`
	Notes             string   `json:"notes"`
	Quantity          int      `json:"quantity" validate:"gte=0"`
}

func (h *EvidenceHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	var req updateEvidenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	err = h.uc.Update(c.Request().Context(), id, evidenceUC.UpdateInput{
		EvidenceNumber:    req.EvidenceNumber,
		Description:       req.Description,
		ObjectType:        req.ObjectType,
		Color:             req.Color,
		Size:              req.Size,
		Weight:            req.Weight,
		WeightUnit:        req.WeightUnit,
		DiscoveryLocation: req.DiscoveryLocation,
		StatusID:          req.StatusID,
		Notes:             req.Notes,
		Quantity:          req.Quantity,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *EvidenceHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	if err := h.uc.Delete(c.Request().Context(), id, actor); err != nil {
		return writeFault(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
