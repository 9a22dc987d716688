package entities

import "time"

// Machine is a shop-floor workstation allowed to request label prints.
//
// A machine may be identified by any of three values carried by the print
// request: its code, its network hostname or its MAC address. The match is
// case-sensitive and first-match-wins; keeping those three values unique
// across machines is a data-entry responsibility, not an engine one.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (code-index): code
//   - GSI2 (hostname-index): hostname
//   - GSI3 (mac-index): mac_address
//
// DailyPrintLimit caps the quantity a machine may print per UTC day across
// all labels. Zero means unlimited.

type Machine struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Hostname        string     `json:"hostname,omitempty"`
	MACAddress      string     `json:"mac_address,omitempty"`
	DailyPrintLimit int        `json:"daily_print_limit"`
	RegisteredAt    time.Time  `json:"registered_at"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
