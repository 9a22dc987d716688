package entities

import "time"

// Label is a named printable template. ContentZPL holds the literal ZPL
// program sent to the printer on authorization; the service treats it as an
// opaque payload and never renders or validates it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code (unique by data entry)

type Label struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ContentZPL  string     `json:"content_zpl"`
	WidthMM     int        `json:"width_mm,omitempty"`
	HeightMM    int        `json:"height_mm,omitempty"`
	Category    string     `json:"category,omitempty"`
	Version     string     `json:"version,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}
