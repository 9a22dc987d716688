package entities

import "time"

// PrintState is the lifecycle state of a print record.
//
// Valid transitions: requested → {authorized → {executed | failed}} | denied.
// Denied and failed records never count toward quota consumption.

type PrintState string

const (
	PrintStateRequested  PrintState = "requested"
	PrintStateAuthorized PrintState = "authorized"
	PrintStateExecuted   PrintState = "executed"
	PrintStateFailed     PrintState = "failed"
	PrintStateDenied     PrintState = "denied"
)

// CountsTowardQuota reports whether a record in this state consumes quota.
func (s PrintState) CountsTowardQuota() bool {
	return s == PrintStateAuthorized || s == PrintStateExecuted
}

// PrintRecord is the auditable row written for every authorization attempt,
// authorized or denied. One request, one record, no silent drops.
//
// Reference ids may be empty on denied records when resolution failed before
// the corresponding stage.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (machine_id-index): machine_id, SK requested_at
//   - GSI2 (lot_id-index): lot_id
//   - GSI3 (machine_label-index): machine_label ("<machine_id>#<label_id>")
//
// The machine_id-index doubles as the daily-quota lookup: quota sums query by
// machine and requested_at range and filter on state.

type PrintRecord struct {
	ID                 string     `json:"id"`
	MachineID          string     `json:"machine_id,omitempty"`
	PrinterID          string     `json:"printer_id,omitempty"`
	EmployeeID         string     `json:"employee_id,omitempty"`
	LotID              string     `json:"lot_id,omitempty"`
	LabelID            string     `json:"label_id,omitempty"`
	Quantity           int        `json:"quantity"`
	State              PrintState `json:"state"`
	RequestedAt        time.Time  `json:"requested_at"`
	AuthorizedAt       *time.Time `json:"authorized_at,omitempty"`
	ExecutedAt         *time.Time `json:"executed_at,omitempty"`
	Result             string     `json:"result,omitempty"`
	ErrorMessage       string     `json:"error_message,omitempty"`
	DenialReason       string     `json:"denial_reason,omitempty"`
	OriginIP           string     `json:"origin_ip,omitempty"`
	AuthorizedByUserID string     `json:"authorized_by_user_id,omitempty"`
	ZPLHash            string     `json:"zpl_hash,omitempty"`
}

// PrintRecordDetail is a print record together with whichever reference
// entities could be resolved for display. References left nil either no
// longer exist or were never resolved for an early denial.
type PrintRecordDetail struct {
	Record   PrintRecord `json:"record"`
	Machine  *Machine    `json:"machine,omitempty"`
	Employee *Employee   `json:"employee,omitempty"`
	Lot      *Lot        `json:"lot,omitempty"`
	Label    *Label      `json:"label,omitempty"`
}
