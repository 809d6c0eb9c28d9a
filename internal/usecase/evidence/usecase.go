package evidence

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	assignmentDomain "casetrack-backend/internal/domain/assignment"
	auditDomain "casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/domain/visibility"
	"casetrack-backend/internal/usecase/besteffort"

	"gorm.io/gorm"
)

// Usecase manages the evidence registry. Every item hangs off a case;
// visibility follows the parent case's assigned technician.
type Usecase struct {
	items       evidence.Repository
	statuses    evidence.StatusRepository
	cases       caserecord.Repository
	assignments assignmentDomain.Repository
	users       userDomain.Repository
	recorder    auditDomain.Recorder
}

func NewUsecase(
	items evidence.Repository,
	statuses evidence.StatusRepository,
	cases caserecord.Repository,
	assignments assignmentDomain.Repository,
	users userDomain.Repository,
	recorder auditDomain.Recorder,
) *Usecase {
	return &Usecase{
		items:       items,
		statuses:    statuses,
		cases:       cases,
		assignments: assignments,
		users:       users,
		recorder:    recorder,
	}
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput, actor userDomain.Actor) (uint64, error) {
	c, err := u.visibleCase(ctx, in.CaseID, actor)
	if err != nil {
		return 0, err
	}
	if in.EvidenceNumber == "" {
		return 0, fault.Validation("evidence number is required")
	}
	inUse, err := u.items.NumberInUse(ctx, c.ID, in.EvidenceNumber, 0)
	if err != nil {
		return 0, err
	}
	if inUse {
		return 0, fault.Conflict("evidence number %q already exists in case %s", in.EvidenceNumber, c.CaseNumber)
	}
	statusID, err := u.resolveStatus(ctx, in.StatusID)
	if err != nil {
		return 0, err
	}
	technicianID := in.TechnicianID
	if technicianID == 0 {
		technicianID = c.AssignedTechnicianID
	}
	active, err := u.users.IsActive(ctx, technicianID)
	if err != nil {
		return 0, err
	}
	if !active {
		return 0, fault.Validation("technician %d does not exist or is inactive", technicianID)
	}
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	e := evidence.Evidence{
		CaseID:            c.ID,
		EvidenceNumber:    in.EvidenceNumber,
		Description:       in.Description,
		ObjectType:        in.ObjectType,
		Color:             in.Color,
		Size:              in.Size,
		Weight:            in.Weight,
		WeightUnit:        in.WeightUnit,
		DiscoveryLocation: in.DiscoveryLocation,
		TechnicianID:      technicianID,
		RegistrationDate:  time.Now().UTC(),
		StatusID:          statusID,
		Notes:             in.Notes,
		Quantity:          quantity,
	}
	if err := u.items.Create(ctx, &e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, fault.Conflict("evidence number %q already exists in case %s", in.EvidenceNumber, c.CaseNumber)
		}
		return 0, err
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionCreate,
		EntityType:  auditDomain.EntityEvidence,
		EntityID:    e.ID,
		EvidenceID:  &e.ID,
		CaseID:      c.ID,
		Description: fmt.Sprintf("Evidence registered: %s (%s)", e.EvidenceNumber, c.CaseNumber),
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:     c.CaseNumber,
			EvidenceNumber: e.EvidenceNumber,
			Description:    e.Description,
			Quantity:       e.Quantity,
		}),
	})
	return e.ID, nil
}

func (u *Usecase) resolveStatus(ctx context.Context, explicit uint64) (uint64, error) {
	if explicit != 0 {
		if _, err := u.statuses.GetByID(ctx, explicit); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, fault.Validation("evidence status %d does not exist", explicit)
			}
			return 0, err
		}
		return explicit, nil
	}
	st, err := u.statuses.GetByName(ctx, evidence.StatusPending)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fault.Integrity("evidence status catalog has no %q entry", evidence.StatusPending)
		}
		return 0, err
	}
	return st.ID, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64, actor userDomain.Actor) (*evidence.Evidence, error) {
	e, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("evidence %d does not exist", id)
		}
		return nil, err
	}
	if _, err := u.visibleCase(ctx, e.CaseID, actor); err != nil {
		return nil, err
	}
	return e, nil
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
	items, total, err := u.items.List(ctx, evidence.ListFilter{
		CaseID:          in.CaseID,
		StatusID:        in.StatusID,
		Search:          in.Search,
		Scope:           scope,
		IncludeInactive: in.IncludeInactive,
		Page:            page,
		PageSize:        size,
	})
	if err != nil {
		return nil, err
	}
	return &ListResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: int(math.Ceil(float64(total) / float64(size))),
	}, nil
}

func (u *Usecase) Update(ctx context.Context, id uint64, in UpdateInput, actor userDomain.Actor) error {
	e, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("evidence %d does not exist", id)
		}
		return err
	}
	c, err := u.visibleCase(ctx, e.CaseID, actor)
	if err != nil {
		return err
	}
	if in.EvidenceNumber != e.EvidenceNumber {
		inUse, err := u.items.NumberInUse(ctx, e.CaseID, in.EvidenceNumber, e.ID)
		if err != nil {
			return err
		}
		if inUse {
			return fault.Conflict("evidence number %q already exists in case %s", in.EvidenceNumber, c.CaseNumber)
		}
	}
	if _, err := u.statuses.GetByID(ctx, in.StatusID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.Validation("evidence status %d does not exist", in.StatusID)
		}
		return err
	}
	diff := auditDomain.FieldDiff{
		Before: map[string]string{
			"evidence_number": e.EvidenceNumber,
			"description":     e.Description,
			"status_id":       fmt.Sprint(e.StatusID),
		},
		After: map[string]string{
			"evidence_number": in.EvidenceNumber,
			"description":     in.Description,
			"status_id":       fmt.Sprint(in.StatusID),
		},
	}

	e.EvidenceNumber = in.EvidenceNumber
	e.Description = in.Description
	e.ObjectType = in.ObjectType
	e.Color = in.Color
	e.Size = in.Size
	e.Weight = in.Weight
	e.WeightUnit = in.WeightUnit
	e.DiscoveryLocation = in.DiscoveryLocation
	e.StatusID = in.StatusID
	e.Notes = in.Notes
	if in.Quantity >= 1 {
		e.Quantity = in.Quantity
	}
	if err := u.items.Save(ctx, e); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fault.Conflict("evidence number %q already exists in case %s", in.EvidenceNumber, c.CaseNumber)
		}
		return err
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionUpdate,
		EntityType:  auditDomain.EntityEvidence,
		EntityID:    e.ID,
		EvidenceID:  &e.ID,
		CaseID:      e.CaseID,
		Description: fmt.Sprintf("Evidence updated: %s (%s)", e.EvidenceNumber, c.CaseNumber),
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:     c.CaseNumber,
			EvidenceNumber: e.EvidenceNumber,
			Diff:           &diff,
		}),
	})
	return nil
}

func (u *Usecase) Delete(ctx context.Context, id uint64, actor userDomain.Actor) error {
	e, err := u.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("evidence %d does not exist", id)
		}
		return err
	}
	c, err := u.visibleCase(ctx, e.CaseID, actor)
	if err != nil {
		return err
	}
	if err := u.items.SoftDelete(ctx, e.ID, actor.ID); err != nil {
		return err
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionDelete,
		EntityType:  auditDomain.EntityEvidence,
		EntityID:    e.ID,
		EvidenceID:  &e.ID,
		CaseID:      e.CaseID,
		Description: fmt.Sprintf("Evidence deleted: %s (%s)", e.EvidenceNumber, c.CaseNumber),
		DetailsJSON: auditDomain.EncodeDetails(auditDomain.Details{
			CaseNumber:     c.CaseNumber,
			EvidenceNumber: e.EvidenceNumber,
			Description:    e.Description,
		}),
	})
	return nil
}

// visibleCase loads the parent case and enforces the caller's scope on
// it. Evidence access is exactly case access.
func (u *Usecase) visibleCase(ctx context.Context, caseID uint64, actor userDomain.Actor) (*caserecord.Case, error) {
	c, err := u.cases.GetByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("case %d does not exist", caseID)
		}
		return nil, err
	}
	scope, err := u.scopeFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !scope.Allows(c.AssignedTechnicianID) {
		return nil, fault.Forbidden("no permission to access case %s", c.CaseNumber)
	}
	return c, nil
}

func (u *Usecase) scopeFor(ctx context.Context, actor userDomain.Actor) (visibility.Scope, error) {
	if actor.Role == userDomain.RoleSupervisor {
		ids, err := u.assignments.TechniciansFor(ctx, actor.ID)
		if err != nil {
			return visibility.Scope{}, err
		}
		return visibility.ScopeFor(actor.Role, actor.ID, ids), nil
	}
	return visibility.ScopeFor(actor.Role, actor.ID, nil), nil
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
