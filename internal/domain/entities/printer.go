package entities

import "time"

// Printer is the Zebra label printer attached to a machine (1:1).
//
// Requests arriving from a machine are only serviceable while that machine
// has an active printer assigned.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (machine_id-index): machine_id

type Printer struct {
	ID        string     `json:"id"`
	Code      string     `json:"code"`
	Model     string     `json:"model,omitempty"`
	MachineID string     `json:"machine_id"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
