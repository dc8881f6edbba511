package session

import "fmt"

// Role identifies the author of a conversation turn. It is a closed
// enumeration: sessions only ever store user and assistant turns.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Turn is one message within a session. Text is stored verbatim and never
// mutated after creation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Validate checks that the turn carries a recognized role.
func (t Turn) Validate() error {
	if !t.Role.Valid() {
		return fmt.Errorf("invalid turn role: %q", t.Role)
	}
	return nil
}
