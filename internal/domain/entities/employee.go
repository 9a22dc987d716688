package entities

import "time"

// Employee is a plant worker who requests label prints from a workstation.
// Distinct from administrative accounts: employees never log into the admin
// surfaces, they only identify themselves by their company-assigned number.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number (unique by data entry)

type Employee struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Department string     `json:"department,omitempty"`
	Position   string     `json:"position,omitempty"`
	HiredAt    time.Time  `json:"hired_at"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// FullName is the display name used in audit listings.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
