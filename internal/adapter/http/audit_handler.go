package http

import (
	"net/http"
	"strconv"
	"time"

	auditDomain "casetrack-backend/internal/domain/audit"
	auditUC "casetrack-backend/internal/usecase/audit"

	"github.com/labstack/echo/v4"
)

type AuditHandler struct {
	svc *auditUC.Service
}

func NewAuditHandler(svc *auditUC.Service) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) Query(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("page_size"))
	userID, _ := strconv.ParseUint(c.QueryParam("user_id"), 10, 64)
	caseID, _ := strconv.ParseUint(c.QueryParam("case_id"), 10, 64)

	f := auditDomain.Filter{
		UserID:     userID,
		CaseID:     caseID,
		Action:     auditDomain.Action(c.QueryParam("action")),
		EntityType: auditDomain.EntityType(c.QueryParam("entity_type")),
		Page:       page,
		PageSize:   size,
	}
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.From = &t
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			f.To = &t
		}
	}

	res, err := h.svc.Query(c.Request().Context(), f)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// CaseHistory returns the full trail of one case, oldest entry first.
func (h *AuditHandler) CaseHistory(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	caseID, err := pathID(c, "id")
	if err != nil {
		return writeFault(c, err)
	}
	res, err := h.svc.HistoryFor(c.Request().Context(), caseID)
	if err != nil {
		return writeFault(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
