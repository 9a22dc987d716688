package response

import (
	"fmt"

	"labelpress/internal/domain/entities"
)

// AuthorizationResponse is the answer a workstation gets for a print
// request. Authorized answers carry the record id and the raw ZPL payload to
// push to the printer; denied answers carry the reason and no payload.

type AuthorizationResponse struct {
	Authorized    bool   `json:"authorized"`
	PrintRecordID string `json:"print_record_id,omitempty"`
	ContentZPL    string `json:"content_zpl,omitempty"`
	Quantity      int    `json:"quantity,omitempty"`
	DenialReason  string `json:"denial_reason,omitempty"`
	Message       string `json:"message"`
}

func FromAuthorizationResult(res entities.AuthorizationResult, quantity int) AuthorizationResponse {
	if !res.Authorized {
		return AuthorizationResponse{
			Authorized:   false,
			DenialReason: res.DenialReason,
			Message:      fmt.Sprintf("print denied: %s", res.DenialReason),
		}
	}

	resp := AuthorizationResponse{
		Authorized: true,
		ContentZPL: res.ContentZPL,
		Quantity:   quantity,
		Message:    fmt.Sprintf("print authorized: %d label(s)", quantity),
	}
	if res.Record != nil {
		resp.PrintRecordID = res.Record.ID
	}
	return resp
}

// Denied builds the response for requests rejected at the boundary, before
// the engine runs. The shape matches an engine denial so workstations handle
// both the same way.
func Denied(reason, message string) AuthorizationResponse {
	return AuthorizationResponse{
		Authorized:   false,
		DenialReason: reason,
		Message:      message,
	}
}
