package entities

// AuthorizationResult is the outcome of one evaluation of the rule pipeline.
//
// The engine always returns a well-formed result: authorized with the record
// and payload, or denied with a human-readable reason. Reference pointers are
// populated for whichever stages resolved before the pipeline stopped, so a
// denial still carries context for audit display.

type AuthorizationResult struct {
	Authorized   bool         `json:"authorized"`
	DenialReason string       `json:"denial_reason,omitempty"`
	Record       *PrintRecord `json:"record,omitempty"`
	ContentZPL   string       `json:"content_zpl,omitempty"`
	Machine      *Machine     `json:"machine,omitempty"`
	Employee     *Employee    `json:"employee,omitempty"`
	Lot          *Lot         `json:"lot,omitempty"`
	Label        *Label       `json:"label,omitempty"`
}
