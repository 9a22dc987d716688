package response

import (
	"time"

	"labelpress/internal/domain/entities"
)

type MachineRef struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type EmployeeRef struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

type LotRef struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type LabelRef struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// PrintRecordResponse is the audit view of one print attempt with whichever
// references resolved. The ZPL payload itself is deliberately absent: audit
// consumers get the hash, not the printable content.

type PrintRecordResponse struct {
	ID                 string       `json:"id"`
	Quantity           int          `json:"quantity"`
	State              string       `json:"state"`
	RequestedAt        time.Time    `json:"requested_at"`
	AuthorizedAt       *time.Time   `json:"authorized_at,omitempty"`
	ExecutedAt         *time.Time   `json:"executed_at,omitempty"`
	Result             string       `json:"result,omitempty"`
	ErrorMessage       string       `json:"error_message,omitempty"`
	DenialReason       string       `json:"denial_reason,omitempty"`
	OriginIP           string       `json:"origin_ip,omitempty"`
	AuthorizedByUserID string       `json:"authorized_by_user_id,omitempty"`
	ZPLHash            string       `json:"zpl_hash,omitempty"`
	Machine            *MachineRef  `json:"machine,omitempty"`
	Employee           *EmployeeRef `json:"employee,omitempty"`
	Lot                *LotRef      `json:"lot,omitempty"`
	Label              *LabelRef    `json:"label,omitempty"`
}

func FromPrintRecordDetail(d entities.PrintRecordDetail) PrintRecordResponse {
	resp := PrintRecordResponse{
		ID:                 d.Record.ID,
		Quantity:           d.Record.Quantity,
		State:              string(d.Record.State),
		RequestedAt:        d.Record.RequestedAt,
		AuthorizedAt:       d.Record.AuthorizedAt,
		ExecutedAt:         d.Record.ExecutedAt,
		Result:             d.Record.Result,
		ErrorMessage:       d.Record.ErrorMessage,
		DenialReason:       d.Record.DenialReason,
		OriginIP:           d.Record.OriginIP,
		AuthorizedByUserID: d.Record.AuthorizedByUserID,
		ZPLHash:            d.Record.ZPLHash,
	}
	if d.Machine != nil {
		resp.Machine = &MachineRef{ID: d.Machine.ID, Code: d.Machine.Code, Name: d.Machine.Name}
	}
	if d.Employee != nil {
		resp.Employee = &EmployeeRef{ID: d.Employee.ID, Number: d.Employee.Number, Name: d.Employee.FullName()}
	}
	if d.Lot != nil {
		resp.Lot = &LotRef{ID: d.Lot.ID, Number: d.Lot.Number}
	}
	if d.Label != nil {
		resp.Label = &LabelRef{ID: d.Label.ID, Code: d.Label.Code, Name: d.Label.Name, Version: d.Label.Version}
	}
	return resp
}

// ConfirmationResponse acknowledges a recorded execution outcome.
type ConfirmationResponse struct {
	PrintRecordID string     `json:"print_record_id"`
	State         string     `json:"state"`
	ExecutedAt    *time.Time `json:"executed_at,omitempty"`
	Message       string     `json:"message"`
}

func FromConfirmedRecord(rec entities.PrintRecord) ConfirmationResponse {
	return ConfirmationResponse{
		PrintRecordID: rec.ID,
		State:         string(rec.State),
		ExecutedAt:    rec.ExecutedAt,
		Message:       "confirmation recorded",
	}
}
