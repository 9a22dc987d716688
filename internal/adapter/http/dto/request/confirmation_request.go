package request

import (
	"strings"
	"time"
)

// ConfirmationRequest reports the hardware outcome for an authorized print.
// ExecutedAt defaults to the current UTC time when omitted.

type ConfirmationRequest struct {
	PrintRecordID string     `json:"print_record_id" binding:"required"`
	Success       bool       `json:"success"`
	Result        string     `json:"result"`
	ErrorMessage  string     `json:"error_message"`
	ExecutedAt    *time.Time `json:"executed_at"`
}

func (r ConfirmationRequest) ResolvePrintRecordID() string {
	return strings.TrimSpace(r.PrintRecordID)
}

// ResolveExecutedAt returns the reported execution time, or the zero time
// when the caller left it out; the usecase substitutes now() for zero.
func (r ConfirmationRequest) ResolveExecutedAt() time.Time {
	if r.ExecutedAt == nil {
		return time.Time{}
	}
	return r.ExecutedAt.UTC()
}
