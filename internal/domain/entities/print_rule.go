package entities

import "time"

// PrintRule is an explicit allow/deny entry for a (machine, label) pair.
//
// The rule table is an allow-list: a machine may only print a label when an
// active rule exists for the pair with Authorized=true. Absence of a rule is
// a denial, never an error.
//
// PrintLimit optionally caps the all-time quantity for the pair; zero means
// unlimited.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (machine_label-index): machine_label ("<machine_id>#<label_id>")

type PrintRule struct {
	ID         string     `json:"id"`
	MachineID  string     `json:"machine_id"`
	LabelID    string     `json:"label_id"`
	Authorized bool       `json:"authorized"`
	PrintLimit int        `json:"print_limit"`
	Reason     string     `json:"reason,omitempty"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}
