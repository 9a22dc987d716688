package entities

import "time"

// Lot is a production run. Each lot prints exactly one label template and may
// cap the total quantity printed against it. MaxQuantity zero means unlimited.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number (unique by data entry)

type Lot struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Description string     `json:"description,omitempty"`
	LabelID     string     `json:"label_id"`
	MaxQuantity int        `json:"max_quantity"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	ProductCode string     `json:"product_code,omitempty"`
	Customer    string     `json:"customer,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
