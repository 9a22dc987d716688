package request

import "strings"

// PrintRequest is the payload a workstation sends to ask for a print run.
//
// The machine identifier may be the machine code, the hostname or the MAC
// address; the engine resolves whichever matches. OriginIP is optional: when
// absent the boundary substitutes the transport-level client address.

type PrintRequest struct {
	MachineIdentifier string `json:"machine_identifier" binding:"required"`
	EmployeeNumber    string `json:"employee_number" binding:"required"`
	Quantity          int    `json:"quantity" binding:"required"`
	OriginIP          string `json:"origin_ip"`
}

func (r PrintRequest) ResolveMachineIdentifier() string {
	return strings.TrimSpace(r.MachineIdentifier)
}

func (r PrintRequest) ResolveEmployeeNumber() string {
	return strings.TrimSpace(r.EmployeeNumber)
}

// ResolveOriginIP prefers the address the workstation reported and falls
// back to the transport-level one.
func (r PrintRequest) ResolveOriginIP(fallback string) string {
	if v := strings.TrimSpace(r.OriginIP); v != "" {
		return v
	}
	return fallback
}
