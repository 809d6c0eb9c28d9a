package notifymock

import (
	"context"
	"sync"
)

// Sent captures a single delivery attempt.
type Sent struct {
	Email          string
	TechnicianName string
	CaseNumber     string
	Reason         string
}

// Notifier records outbound notifications; Err (or PanicOnNotify) makes
// every delivery fail so tests can prove callers shrug it off.
type Notifier struct {
	mu            sync.Mutex
	Deliveries    []Sent
	Err           error
	PanicOnNotify bool
}

func (m *Notifier) NotifyRejection(ctx context.Context, email, technicianName, caseNumber, reason string) error {
	if m.PanicOnNotify {
		panic("notifymock: notifier exploded")
	}
	m.mu.Lock()
	m.Deliveries = append(m.Deliveries, Sent{
		Email:          email,
		TechnicianName: technicianName,
		CaseNumber:     caseNumber,
		Reason:         reason,
	})
	m.mu.Unlock()
	return m.Err
}

// Count returns how many deliveries were attempted.
func (m *Notifier) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Deliveries)
}
