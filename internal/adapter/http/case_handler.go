package http

import (
	"net/http"
	"strconv"
	"time"

	"casetrack-backend/internal/adapter/middleware"
	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	caseUC "casetrack-backend/internal/usecase/caserecord"

	"github.com/labstack/echo/v4"
)

type CaseHandler struct {
	uc *caseUC.Usecase
	cv *CustomValidator
}

func NewCaseHandler(uc *caseUC.Usecase, cv *CustomValidator) *CaseHandler {
	return &CaseHandler{uc: uc, cv: cv}
}

func requireActor(c echo.Context) (userDomain.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return userDomain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return actor, nil
}

func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fault.Validation("invalid %s", name)
	}
	return id, nil
}

type createCaseRequest struct {
	CaseNumber           string     `json:"case_number" validate:"required,casenum"`
	ExternalCaseRef      string     `json:"external_case_ref"`
	RegisteredByID       uint64     `json:"registered_by_id" validate:"required"`
	AssignedTechnicianID uint64     `json:"assigned_technician_id" validate:"required"`
	SupervisorID         *uint64    `json:"supervisor_id"`
	ProsecutorOfficeID   uint64     `json:"prosecutor_office_id" validate:"required"`
	UnitID               uint64     `json:"unit_id" validate:"required"`
	StatusID             uint64     `json:"status_id" validate:"required"`
	Urgency              string     `json:"urgency" validate:"urgency"`
	CrimeType            string     `json:"crime_type"`
	IncidentLocation     string     `json:"incident_location"`
	IncidentDate         *time.Time `json:"incident_date"`
	CaseDescription      string     `json:"case_description"`
	Notes                string     `json:"notes"`
	LimitDate            *time.Time `json:"limit_date"`
	AnalysisStartDate    *time.Time `json:"analysis_start_date"`
	DictumDeliveryDate   *time.Time `json:"dictum_delivery_date"`
	DepartmentID         *uint64    `json:"department_id"`
	MunicipalityID       *uint64    `json:"municipality_id"`
}

func (h *CaseHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	id, err := h.uc.Create(c.Request().Context(), caseUC.CreateCaseInput{
		CaseNumber:           req.CaseNumber,
		ExternalCaseRef:      req.ExternalCaseRef,
		RegisteredByID:       req.RegisteredByID,
		AssignedTechnicianID: req.AssignedTechnicianID,
		SupervisorID:         req.SupervisorID,
		ProsecutorOfficeID:   req.ProsecutorOfficeID,
		UnitID:               req.UnitID,
		StatusID:             req.StatusID,
		Urgency:              caserecord.Urgency(req.Urgency),
		CrimeType:            req.CrimeType,
		IncidentLocation:     req.IncidentLocation,
		IncidentDate:         req.IncidentDate,
		CaseDescription:      req.CaseDescription,
		Notes:                req.Notes,
		LimitDate:            req.LimitDate,
		AnalysisStartDate:    req.AnalysisStartDate,
		DictumDeliveryDate:   req.DictumDeliveryDate,
		DepartmentID:         req.DepartmentID,
		MunicipalityID:       req.MunicipalityID,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

type evidenceItemRequest struct {
	Description       string   `json:"description" validate:"required"`
	ObjectType        string   `json:"object_type"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	Weight            *float64 `json:"weight"`
	WeightUnit        string   `json:"weight_unit"`
	DiscoveryLocation string   `json:"discovery_location"`
	StatusID          uint64   `json:"status_id"`
	Notes             string   `json:"notes"`
	Quantity          int      `json:"quantity"`
}

type createWithEvidenceRequest struct {
	ExternalCaseRef      string                `json:"external_case_ref"`
	RegisteredByID       uint64                `json:"registered_by_id" validate:"required"`
	AssignedTechnicianID uint64                `json:"assigned_technician_id"`
	ProsecutorOfficeID   uint64                `json:"prosecutor_office_id" validate:"required"`
	UnitID               uint64                `json:"unit_id" validate:"required"`
	StatusID             uint64                `json:"status_id"`
	Urgency              string                `json:"urgency" validate:"urgency"`
	CrimeType            string                `json:"crime_type"`
	Notes                string                `json:"notes"`
	Evidence             []evidenceItemRequest `json:"evidence" validate:"dive"`
}

func (h *CaseHandler) CreateWithEvidence(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createWithEvidenceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	items := make([]caseUC.EvidenceInput, 0, len(req.Evidence))
	for _, it := range req.Evidence {
		items = append(items, caseUC.EvidenceInput{
			Description:       it.Description,
			ObjectType:        it.ObjectType,
			Color:             it.Color,
			Size:              it.Size,
			Weight:            it.Weight,
			WeightUnit:        it.WeightUnit,
			DiscoveryLocation: it.DiscoveryLocation,
			StatusID:          it.StatusID,
			Notes:             it.Notes,
			Quantity:          it.Quantity,
		})
	}
	res, err := h.uc.CreateWithEvidence(c.Request().Context(), caseUC.CreateWithEvidenceInput{
		ExternalCaseRef:      req.ExternalCaseRef,
		RegisteredByID:       req.RegisteredByID,
		AssignedTechnicianID: req.AssignedTechnicianID,
		ProsecutorOfficeID:   req.ProsecutorOfficeID,
		UnitID:               req.UnitID,
		StatusID:             req.StatusID,
		Urgency:              caserecord.Urgency(req.Urgency),
		CrimeType:            req.CrimeType,
		Notes:                req.Notes,
		Evidence:             items,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *CaseHandler) List(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	statusID, _ := strconv.ParseUint(c.QueryParam("status_id"), 10, 64)
	unitID, _ := strconv.ParseUint(c.QueryParam("unit_id"), 10, 64)
	officeID, _ := strconv.ParseUint(c.QueryParam("prosecutor_office_id"), 10, 64)

	res, err := h.uc.List(c.Request().Context(), caseUC.ListInput{
		Search:             c.QueryParam("search"),
		StatusID:           statusID,
		UnitID:             unitID,
		ProsecutorOfficeID: officeID,
		IncludeInactive:    c.QueryParam("include_inactive") == "true" && actor.Role == userDomain.RoleAdmin,
		Page:               page,
		PageSize:           size,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CaseHandler) Get(c echo.Context) error {
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

type updateCaseRequest struct {
	CaseNumber           string     `json:"case_number" validate:"required,casenum"`
	ExternalCaseRef      string     `json:"external_case_ref"`
	AssignedTechnicianID uint64     `json:"assigned_technician_id" validate:"required"`
	SupervisorID         *uint64    `json:"supervisor_id"`
	ProsecutorOfficeID   uint64     `json:"prosecutor_office_id" validate:"required"`
	UnitID               uint64     `json:"unit_id" validate:"required"`
	StatusID             uint64     `json:"status_id" validate:"required"`
	Urgency              string     `json:"urgency" validate:"urgency"`
	CrimeType            string     `json:"crime_type"`
	IncidentLocation     string     `json:"incident_location"`
	IncidentDate         *time.Time `json:"incident_date"`
	CaseDescription      string     `json:"case_description"`
	Notes                string     `json:"notes"`
	LimitDate            *time.Time `json:"limit_date"`
	AnalysisStartDate    *time.Time `json:"analysis_start_date"`
	DictumDeliveryDate   *time.Time `json:"dictum_delivery_date"`
	DepartmentID         *uint64    `json:"department_id"`
	MunicipalityID       *uint64    `json:"municipality_id"`
}

func (h *CaseHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	var req updateCaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	err = h.uc.Update(c.Request().Context(), id, caseUC.UpdateCaseInput{
		CaseNumber:           req.CaseNumber,
		ExternalCaseRef:      req.ExternalCaseRef,
		AssignedTechnicianID: req.AssignedTechnicianID,
		SupervisorID:         req.SupervisorID,
		ProsecutorOfficeID:   req.ProsecutorOfficeID,
		UnitID:               req.UnitID,
		StatusID:             req.StatusID,
		Urgency:              caserecord.Urgency(req.Urgency),
		CrimeType:            req.CrimeType,
		IncidentLocation:     req.IncidentLocation,
		IncidentDate:         req.IncidentDate,
		CaseDescription:      req.CaseDescription,
		Notes:                req.Notes,
		LimitDate:            req.LimitDate,
		AnalysisStartDate:    req.AnalysisStartDate,
		DictumDeliveryDate:   req.DictumDeliveryDate,
		DepartmentID:         req.DepartmentID,
		MunicipalityID:       req.MunicipalityID,
	}, actor)
	if err != nil {
		return writeFault(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CaseHandler) Delete(c echo.Context) error {
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

func (h *CaseHandler) Approve(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	if err := h.uc.Approve(c.Request().Context(), id, actor.ID, actor); err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "approved"})
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *CaseHandler) Reject(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := h.cv.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Reject(c.Request().Context(), id, actor.ID, req.Reason, actor); err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "rejected"})
}
