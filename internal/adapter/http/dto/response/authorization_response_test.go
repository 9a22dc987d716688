package response

import (
	"testing"

	"labelpress/internal/domain/entities"
)

func TestFromAuthorizationResult(t *testing.T) {
	t.Run("authorized", func(t *testing.T) {
		rec := entities.PrintRecord{ID: "rec-1", State: entities.PrintStateAuthorized}
		res := entities.AuthorizationResult{Authorized: true, Record: &rec, ContentZPL: "^XA^XZ"}

		resp := FromAuthorizationResult(res, 5)
		if !resp.Authorized {
			t.Fatalf("expected authorized")
		}
		if resp.PrintRecordID != "rec-1" || resp.ContentZPL != "^XA^XZ" || resp.Quantity != 5 {
			t.Fatalf("unexpected mapped fields: %+v", resp)
		}
		if resp.Message != "print authorized: 5 label(s)" {
			t.Fatalf("unexpected message %q", resp.Message)
		}
		if resp.DenialReason != "" {
			t.Fatalf("authorized response must not carry a denial reason")
		}
	})

	t.Run("denied", func(t *testing.T) {
		res := entities.AuthorizationResult{Authorized: false, DenialReason: "lot is not active"}

		resp := FromAuthorizationResult(res, 5)
		if resp.Authorized {
			t.Fatalf("expected denied")
		}
		if resp.DenialReason != "lot is not active" {
			t.Fatalf("unexpected reason %q", resp.DenialReason)
		}
		if resp.Message != "print denied: lot is not active" {
			t.Fatalf("unexpected message %q", resp.Message)
		}
		if resp.ContentZPL != "" || resp.PrintRecordID != "" {
			t.Fatalf("denied response must not carry payload fields: %+v", resp)
		}
	})
}

func TestDenied(t *testing.T) {
	resp := Denied("invalid quantity", "error: quantity must be greater than zero")
	if resp.Authorized {
		t.Fatalf("expected denied")
	}
	if resp.DenialReason != "invalid quantity" || resp.Message != "error: quantity must be greater than zero" {
		t.Fatalf("unexpected fields: %+v", resp)
	}
}
