package assignment

import (
	"context"
	"errors"
	"fmt"

	"casetrack-backend/internal/domain/assignment"
	auditDomain "casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/fault"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/usecase/besteffort"

	"gorm.io/gorm"
)

// Usecase manages supervisor-to-technician assignments. A technician
// belongs to at most one supervisor; assigning again moves them.
type Usecase struct {
	assignments assignment.Repository
	users       userDomain.Repository
	recorder    auditDomain.Recorder
}

func NewUsecase(assignments assignment.Repository, users userDomain.Repository, recorder auditDomain.Recorder) *Usecase {
	return &Usecase{assignments: assignments, users: users, recorder: recorder}
}

func (u *Usecase) Assign(ctx context.Context, supervisorID, technicianID uint64, actor userDomain.Actor) error {
	sup, err := u.requireActive(ctx, supervisorID, "supervisor")
	if err != nil {
		return err
	}
	if sup.Role != userDomain.RoleSupervisor {
		return fault.Validation("user %d is not a supervisor", supervisorID)
	}
	tech, err := u.requireActive(ctx, technicianID, "technician")
	if err != nil {
		return err
	}
	if tech.Role != userDomain.RoleTechnician {
		return fault.Validation("user %d is not a technician", technicianID)
	}

	if err := u.assignments.Upsert(ctx, supervisorID, technicianID); err != nil {
		return err
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionUpdate,
		EntityType:  auditDomain.EntityAssignment,
		EntityID:    technicianID,
		Description: fmt.Sprintf("Technician %d assigned to supervisor %d", technicianID, supervisorID),
	})
	return nil
}

func (u *Usecase) Unassign(ctx context.Context, technicianID uint64, actor userDomain.Actor) error {
	if err := u.assignments.Remove(ctx, technicianID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("technician %d has no assignment", technicianID)
		}
		return err
	}

	u.record(ctx, actor, auditDomain.Entry{
		Action:      auditDomain.ActionDelete,
		EntityType:  auditDomain.EntityAssignment,
		EntityID:    technicianID,
		Description: fmt.Sprintf("Technician %d unassigned", technicianID),
	})
	return nil
}

func (u *Usecase) List(ctx context.Context) ([]assignment.Assignment, error) {
	return u.assignments.List(ctx)
}

// ListSupervisors returns the active supervisors available for
// assignment.
func (u *Usecase) ListSupervisors(ctx context.Context) ([]userDomain.User, error) {
	return u.users.ListByRole(ctx, userDomain.RoleSupervisor)
}

// ListUnassignedTechnicians returns active technicians without a
// supervisor.
func (u *Usecase) ListUnassignedTechnicians(ctx context.Context) ([]userDomain.User, error) {
	techs, err := u.users.ListByRole(ctx, userDomain.RoleTechnician)
	if err != nil {
		return nil, err
	}
	current, err := u.assignments.List(ctx)
	if err != nil {
		return nil, err
	}
	assigned := make(map[uint64]bool, len(current))
	for _, a := range current {
		assigned[a.TechnicianID] = true
	}
	out := make([]userDomain.User, 0, len(techs))
	for _, t := range techs {
		if !assigned[t.ID] {
			out = append(out, t)
		}
	}
	return out, nil
}

// TechniciansFor returns the technician ids currently supervised by the
// given supervisor, used to build the visibility scope.
func (u *Usecase) TechniciansFor(ctx context.Context, supervisorID uint64) ([]uint64, error) {
	return u.assignments.TechniciansFor(ctx, supervisorID)
}

func (u *Usecase) requireActive(ctx context.Context, id uint64, label string) (*userDomain.User, error) {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.Validation("%s %d does not exist", label, id)
		}
		return nil, err
	}
	if !usr.Active {
		return nil, fault.Validation("%s %d is not active", label, id)
	}
	return usr, nil
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
