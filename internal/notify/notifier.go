package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Notifier delivers outbound notifications on review transitions. Callers
// treat every implementation as best-effort: errors are logged at the call
// site, never propagated past it.
type Notifier interface {
	NotifyRejection(ctx context.Context, email, technicianName, caseNumber, reason string) error
}

// MailGateway posts rejection notices to an HTTP mail relay.
type MailGateway struct {
	endpoint string
	from     string
	client   *http.Client
}

func NewMailGateway(endpoint, from string) *MailGateway {
	return &MailGateway{
		endpoint: endpoint,
		from:     from,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type mailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (g *MailGateway) NotifyRejection(ctx context.Context, email, technicianName, caseNumber, reason string) error {
	p := mailPayload{
		From:    g.from,
		To:      email,
		Subject: fmt.Sprintf("Case %s rejected", caseNumber),
		Body: fmt.Sprintf("Hello %s,\n\nCase %s was rejected during review.\nReason: %s\n\nPlease correct and resubmit.",
			technicianName, caseNumber, reason),
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail gateway: unexpected status %d", resp.StatusCode)
	}
	return nil
}
