package entities

import "time"

// LotAssignment links a lot to a machine. A machine can carry several active
// assignments; the one with the lowest Priority value decides which lot is
// current for that machine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (machine_id-index): machine_id

type LotAssignment struct {
	ID           string     `json:"id"`
	LotID        string     `json:"lot_id"`
	MachineID    string     `json:"machine_id"`
	Priority     int        `json:"priority"`
	AssignedAt   time.Time  `json:"assigned_at"`
	UnassignedAt *time.Time `json:"unassigned_at,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
