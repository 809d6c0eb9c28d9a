package caserecord

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	assignmentDomain "casetrack-backend/internal/domain/assignment"
	auditDomain "casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/caserecord"
	evidenceDomain "casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/domain/uow"
	"casetrack-backend/internal/domain/visibility"
	"casetrack-backend/internal/notify"
	"casetrack-backend/internal/usecase/besteffort"

	"gorm.io/gorm"
)

// Usecase owns the case lifecycle: create, update, approve, reject,
// soft-delete and the role-scoped reads. Mutations commit first; audit
// and notification run after the commit and never fail the call.
type Usecase struct {
	cases       caserecord.Repository
	statuses    caserecord.StatusRepository
	catalogs    caserecord.CatalogRepository
	users       userDomain.Repository
	assignments assignmentDomain.Repository
	uow         uow.UnitOfWork
	recorder    auditDomain.Recorder
	notifier    notify.Notifier
}

func NewUsecase(
	cases caserecord.Repository,
	statuses caserecord.StatusRepository,
	catalogs caserecord.CatalogRepository,
	users userDomain.Repository,
	assignments assignmentDomain.Repository,
	tx uow.UnitOfWork,
	recorder auditDomain.Recorder,
	notifier notify.Notifier,
) *Usecase {
	return &Usecase{
		cases:       cases,
		statuses:    statuses,
		catalogs:    catalogs,
		users:       users,
		assignments: assignments,
		uow:         tx,
		recorder:    recorder,
		notifier:    notifier,
	}
}

// classify maps persistence-boundary failures onto the shared taxonomy;
// anything unrecognized propagates as-is.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fault.Conflict("duplicate key")
	case errors.Is(err, context.DeadlineExceeded):
		return fault.Transient("persistence timeout")
	default:
		return err
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateCaseInput, actor userDomain.Actor) (uint64, error) {
	if err := u.validateCreate(ctx, in); err != nil {
		return 0, err
	}

	c := caserecord.Case{
		CaseNumber:           in.CaseNumber,
		ExternalCaseRef:      in.ExternalCaseRef,
		RegisteredByID:       in.RegisteredByID,
		AssignedTechnicianID: in.AssignedTechnicianID,
		SupervisorID:         in.SupervisorID,
		ProsecutorOfficeID:   in.ProsecutorOfficeID,
		UnitID:               in.UnitID,
		StatusID:             in.StatusID,
		Urgency:              urgencyOrDefault(in.Urgency),
		CrimeType:            in.CrimeType,
		IncidentLocation:     in.IncidentLocation,
		IncidentDate:         in.IncidentDate,
		CaseDescription:      in.CaseDescription,
		Notes:                in.Notes,
		LimitDate:            in.LimitDate,
		AnalysisStartDate:    in.AnalysisStartDate,
		DictumDeliveryDate:   in.DictumDeliveryDate,
		DepartmentID:         in.DepartmentID,
		MunicipalityID:       in.MunicipalityID,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Cases.Create(ctx, &c)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The pre-check raced another create; the unique index is the
		// authority.
		return 0, fault.Conflict("case number %q is already in use", in.CaseNumber)
	}
	if err != nil {
		return 0, classify(err)
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionCreate,
		EntityType:  auditDomain.EntityCase,
		EntityID:    c.ID,
		CaseID:      c.ID,
		Description: "Case created: " + c.CaseNumber,
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:  c.CaseNumber,
			ExternalRef: c.ExternalCaseRef,
			Urgency:     string(c.Urgency),
			CrimeType:   c.CrimeType,
		}),
	})
	return c.ID, nil
}

// validateCreate runs the precondition chain in its documented order;
// the first failing rule wins and nothing is written.
func (u *Usecase) validateCreate(ctx context.Context, in CreateCaseInput) error {
	inUse, err := u.cases.NumberInUse(ctx, in.CaseNumber, 0)
	if err != nil {
		return classify(err)
	}
	if inUse {
		return fault.Conflict("case number %q is already in use", in.CaseNumber)
	}
	if err := u.requireActiveUser(ctx, in.RegisteredByID, "registering user"); err != nil {
		return err
	}
	if err := u.requireActiveUser(ctx, in.AssignedTechnicianID, "assigned technician"); err != nil {
		return err
	}
	if in.SupervisorID != nil {
		if err := u.requireActiveUser(ctx, *in.SupervisorID, "supervisor"); err != nil {
			return err
		}
	}
	if err := u.requireActiveCatalogs(ctx, in.ProsecutorOfficeID, in.UnitID); err != nil {
		return err
	}
	if _, err := u.statuses.GetByID(ctx, in.StatusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.Validation("status %d does not exist", in.StatusID)
		}
		return classify(err)
	}
	return nil
}

func (u *Usecase) requireActiveUser(ctx context.Context, id uint64, label string) error {
	ok, err := u.users.IsActive(ctx, id)
	if err != nil {
		return classify(err)
	}
	if !ok {
		return fault.Validation("%s %d is not an active user", label, id)
	}
	return nil
}

func (u *Usecase) requireActiveCatalogs(ctx context.Context, officeID, unitID uint64) error {
	ok, err := u.catalogs.OfficeActive(ctx, officeID)
	if err != nil {
		return classify(err)
	}
	if !ok {
		return fault.Validation("prosecutor office %d is not active", officeID)
	}
	ok, err = u.catalogs.UnitActive(ctx, unitID)
	if err != nil {
		return classify(err)
	}
	if !ok {
		return fault.Validation("forensic unit %d is not active", unitID)
	}
	return nil
}

func urgencyOrDefault(ur caserecord.Urgency) caserecord.Urgency {
	if ur == "" {
		return caserecord.UrgencyOrdinary
	}
	return ur
}

// CreateWithEvidence auto-numbers the case (EXP-<year>-NNNN) and its
// evidence items (IND-001..) and writes everything in one transaction.
// The max-suffix scan can race a concurrent create, so a duplicate-key
// failure gets exactly one retry with a regenerated number.
func (u *Usecase) CreateWithEvidence(ctx context.Context, in CreateWithEvidenceInput, actor userDomain.Actor) (*CreateWithEvidenceResult, error) {
	technicianID := in.AssignedTechnicianID
	if technicianID == 0 {
		technicianID = in.RegisteredByID
	}

	if err := u.requireActiveUser(ctx, in.RegisteredByID, "registering user"); err != nil {
		return nil, err
	}
	if technicianID != in.RegisteredByID {
		if err := u.requireActiveUser(ctx, technicianID, "assigned technician"); err != nil {
			return nil, err
		}
	}
	if err := u.requireActiveCatalogs(ctx, in.ProsecutorOfficeID, in.UnitID); err != nil {
		return nil, err
	}
	statusID, err := u.resolveInitialStatus(ctx, in.StatusID)
	if err != nil {
		return nil, err
	}

	year := time.Now().UTC().Year()
	attempt := func() (*CreateWithEvidenceResult, error) {
		res := &CreateWithEvidenceResult{}
		err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
			maxSuffix, err := r.Cases.MaxNumberSuffix(ctx, year)
			if err != nil {
				return err
			}
			c := caserecord.Case{
				CaseNumber:           fmt.Sprintf("EXP-%d-%04d", year, maxSuffix+1),
				ExternalCaseRef:      in.ExternalCaseRef,
				RegisteredByID:       in.RegisteredByID,
				AssignedTechnicianID: technicianID,
				ProsecutorOfficeID:   in.ProsecutorOfficeID,
				UnitID:               in.UnitID,
				StatusID:             statusID,
				Urgency:              urgencyOrDefault(in.Urgency),
				CrimeType:            in.CrimeType,
				Notes:                in.Notes,
			}
			if err := r.Cases.Create(ctx, &c); err != nil {
				return err
			}
			now := time.Now().UTC()
			for i, item := range in.Evidence {
				ev, err := buildEvidence(ctx, r, c.ID, i, item, technicianID, now)
				if err != nil {
					return err
				}
				if err := r.Evidence.Create(ctx, ev); err != nil {
					return err
				}
				res.Evidence = append(res.Evidence, CreatedEvidence{ID: ev.ID, EvidenceNumber: ev.EvidenceNumber})
			}
			res.CaseID = c.ID
			res.CaseNumber = c.CaseNumber
			return nil
		})
		return res, err
	}

	res, err := attempt()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		res, err = attempt()
	}
	if err != nil {
		return nil, classify(err)
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionCreate,
		EntityType:  auditDomain.EntityCase,
		EntityID:    res.CaseID,
		CaseID:      res.CaseID,
		Description: fmt.Sprintf("Case created with %d evidence items: %s", len(res.Evidence), res.CaseNumber),
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:    res.CaseNumber,
			ExternalRef:   in.ExternalCaseRef,
			Urgency:       string(urgencyOrDefault(in.Urgency)),
			CrimeType:     in.CrimeType,
			EvidenceCount: len(res.Evidence),
		}),
	})
	return res, nil
}

// resolveInitialStatus defaults to Pending Review, falling back to the
// lowest-ordered status if that catalog row was renamed.
func (u *Usecase) resolveInitialStatus(ctx context.Context, explicit uint64) (uint64, error) {
	if explicit != 0 {
		if _, err := u.statuses.GetByID(ctx, explicit); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fault.Validation("status %d does not exist", explicit)
			}
			return 0, classify(err)
		}
		return explicit, nil
	}
	st, err := u.statuses.GetByName(ctx, caserecord.StatusPendingReview)
	if err == nil {
		return st.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, classify(err)
	}
	st, err = u.statuses.Lowest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fault.Integrity("status catalog is empty")
		}
		return 0, classify(err)
	}
	return st.ID, nil
}

func buildEvidence(ctx context.Context, r uow.Repos, caseID uint64, index int, in EvidenceInput, technicianID uint64, now time.Time) (*evidenceDomain.Evidence, error) {
	statusID := in.StatusID
	if statusID == 0 {
		st, err := r.EvidenceStatuses.GetByName(ctx, evidenceDomain.StatusPending)
		if err != nil {
			return nil, fault.Integrity("evidence status catalog has no %q entry", evidenceDomain.StatusPending)
		}
		statusID = st.ID
	} else if _, err := r.EvidenceStatuses.GetByID(ctx, statusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.Validation("evidence status %d does not exist", statusID)
		}
		return nil, err
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return &evidenceDomain.Evidence{
		CaseID:            caseID,
		EvidenceNumber:    fmt.Sprintf("IND-%03d", index+1),
		Description:       in.Description,
		ObjectType:        in.ObjectType,
		Color:             in.Color,
		Size:              in.Size,
		Weight:            in.Weight,
		WeightUnit:        in.WeightUnit,
		DiscoveryLocation: in.DiscoveryLocation,
		TechnicianID:      technicianID,
		RegistrationDate:  now,
		StatusID:          statusID,
		Notes:             in.Notes,
		Quantity:          quantity,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, caseID uint64, actor userDomain.Actor) (*caserecord.Case, error) {
	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("case %d does not exist", caseID)
		}
		return nil, classify(err)
	}
	// Technicians only see their own assignments; other roles are
	// unrestricted on point reads.
	if actor.Role == userDomain.RoleTechnician && c.AssignedTechnicianID != actor.ID {
		return nil, fault.Forbidden("no permission to view this case")
	}
	return c, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput, actor userDomain.Actor) (*ListResult, error) {
	scope, err := u.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	page, size := in.Page, in.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	items, total, err := u.cases.List(ctx, caserecord.ListFilter{
		Search:             in.Search,
		StatusID:           in.StatusID,
		UnitID:             in.UnitID,
		ProsecutorOfficeID: in.ProsecutorOfficeID,
		IncludeInactive:    in.IncludeInactive,
		Scope:              scope,
		Page:               page,
		PageSize:           size,
	})
	if err != nil {
		return nil, classify(err)
	}
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}, nil
}

func (u *Usecase) scopeFor(ctx context.Context, actor userDomain.Actor) (visibility.Scope, error) {
	if actor.Role == userDomain.RoleSupervisor {
		ids, err := u.assignments.TechniciansFor(ctx, actor.ID)
		if err != nil {
			return visibility.Scope{}, classify(err)
		}
		return visibility.ScopeFor(actor.Role, actor.ID, ids), nil
	}
	return visibility.ScopeFor(actor.Role, actor.ID, nil), nil
}

func (u *Usecase) Update(ctx context.Context, caseID uint64, in UpdateCaseInput, actor userDomain.Actor) error {
	var diff auditDomain.FieldDiff
	var number string
	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *caserecord.Case) error {
		if in.CaseNumber != c.CaseNumber {
			inUse, err := r.Cases.NumberInUse(ctx, in.CaseNumber, c.ID)
			if err != nil {
				return err
			}
			if inUse {
				return fault.Conflict("case number %q is already in use", in.CaseNumber)
			}
		}
		diff = auditDomain.FieldDiff{
			Before: map[string]string{
				"case_number": c.CaseNumber,
				"status_id":   fmt.Sprint(c.StatusID),
			},
			After: map[string]string{
				"case_number": in.CaseNumber,
				"status_id":   fmt.Sprint(in.StatusID),
			},
		}

		c.CaseNumber = in.CaseNumber
		c.ExternalCaseRef = in.ExternalCaseRef
		c.AssignedTechnicianID = in.AssignedTechnicianID
		c.SupervisorID = in.SupervisorID
		c.ProsecutorOfficeID = in.ProsecutorOfficeID
		c.UnitID = in.UnitID
		c.StatusID = in.StatusID
		c.Urgency = urgencyOrDefault(in.Urgency)
		c.CrimeType = in.CrimeType
		c.IncidentLocation = in.IncidentLocation
		c.IncidentDate = in.IncidentDate
		c.CaseDescription = in.CaseDescription
		c.Notes = in.Notes
		c.LimitDate = in.LimitDate
		c.AnalysisStartDate = in.AnalysisStartDate
		c.DictumDeliveryDate = in.DictumDeliveryDate
		c.DepartmentID = in.DepartmentID
		c.MunicipalityID = in.MunicipalityID
		number = c.CaseNumber
		return r.Cases.Save(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("case %d does not exist", caseID)
		}
		return classify(err)
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionUpdate,
		EntityType:  auditDomain.EntityCase,
		EntityID:    caseID,
		CaseID:      caseID,
		Description: "Case updated: " + number,
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{CaseNumber: number, Diff: &diff}),
	})
	return nil
}

func (u *Usecase) Delete(ctx context.Context, caseID uint64, actor userDomain.Actor) error {
	var number, externalRef string
	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *caserecord.Case) error {
		number = c.CaseNumber
		externalRef = c.ExternalCaseRef
		return r.Cases.SoftDelete(ctx, c.ID, actor.ID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("case %d does not exist", caseID)
		}
		return classify(err)
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionDelete,
		EntityType:  auditDomain.EntityCase,
		EntityID:    caseID,
		CaseID:      caseID,
		Description: "Case deleted: " + number,
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{CaseNumber: number, ExternalRef: externalRef}),
	})
	return nil
}

// Approve re-runs regardless of the current status: re-approving an
// approved case and approving a rejected one are both allowed correction
// flows, so there is deliberately no terminal-state guard here.
func (u *Usecase) Approve(ctx context.Context, caseID, supervisorID uint64, actor userDomain.Actor) error {
	var number string
	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *caserecord.Case) error {
		st, err := r.CaseStatuses.GetByName(ctx, caserecord.StatusApproved)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.Integrity("status catalog has no %q entry", caserecord.StatusApproved)
			}
			return err
		}
		c.StatusID = st.ID
		c.SupervisorID = &supervisorID
		number = c.CaseNumber
		return r.Cases.Save(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("case %d does not exist", caseID)
		}
		return classify(err)
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionApprove,
		EntityType:  auditDomain.EntityCase,
		EntityID:    caseID,
		CaseID:      caseID,
		Description: "Case approved: " + number,
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{CaseNumber: number}),
	})
	return nil
}

// Reject commits the transition first, then notifies the technician and
// records the audit entry, both best-effort and in that order.
func (u *Usecase) Reject(ctx context.Context, caseID, supervisorID uint64, reason string, actor userDomain.Actor) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fault.Validation("rejection reason is required")
	}

	var number, techEmail, techName string
	err := u.uow.WithinCaseTx(ctx, caseID, func(r uow.Repos, c *caserecord.Case) error {
		st, err := r.CaseStatuses.GetByName(ctx, caserecord.StatusRejected)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.Integrity("status catalog has no %q entry", caserecord.StatusRejected)
			}
			return err
		}
		c.StatusID = st.ID
		c.SupervisorID = &supervisorID
		appendRejectionNote(c, supervisorID, reason)
		number = c.CaseNumber
		besteffort.Do("resolve rejection recipient", func() error {
			tech, err := r.Users.GetByID(ctx, c.AssignedTechnicianID)
			if err != nil {
				return err
			}
			techEmail, techName = tech.Email, tech.FullName
			return nil
		})
		return r.Cases.Save(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("case %d does not exist", caseID)
		}
		return classify(err)
	}

	if techEmail != "" {
		besteffort.Do("notify rejection", func() error {
			return u.notifier.NotifyRejection(ctx, techEmail, techName, number, reason)
		})
	}
	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionReject,
		EntityType:  auditDomain.EntityCase,
		EntityID:    caseID,
		CaseID:      caseID,
		Description: "Case rejected: " + number,
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:    number,
			Reason:        reason,
			NotifiedEmail: techEmail,
		}),
	})
	return nil
}

// appendRejectionNote appends, never overwrites: prior rejection history
// must survive later rejections.
func appendRejectionNote(c *caserecord.Case, supervisorID uint64, reason string) {
	block := fmt.Sprintf("=== REJECTION === %s\nSupervisor: %d\nReason: %s",
		time.Now().UTC().Format(time.RFC3339), supervisorID, reason)
	if c.Notes != "" {
		c.Notes += "\n\n"
	}
	c.Notes += block
}

func (u *Usecase) record(ctx context.Context, actor userDomain.Actor, e auditDomain.Entry) {
	e.UserID = actor.ID
	e.IPAddress = actor.IP
	e.RequestID = actor.RequestID
	besteffort.Do("audit "+string(e.Action), func() error {
		u.recorder.Record(ctx, e)
		return nil
	})
}
