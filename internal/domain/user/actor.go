package user

// Actor is the authenticated caller attached to each request by the HTTP
// layer. The core never authenticates; it trusts and applies this.
type Actor struct {
	ID        uint64
	Role      Role
	IP        string
	RequestID string
}
