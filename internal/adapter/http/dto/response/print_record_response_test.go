package response

import (
	"testing"
	"time"

	"labelpress/internal/domain/entities"
)

func TestFromPrintRecordDetail(t *testing.T) {
	now := time.Now().UTC()
	detail := entities.PrintRecordDetail{
		Record: entities.PrintRecord{
			ID:           "rec-1",
			Quantity:     5,
			State:        entities.PrintStateExecuted,
			RequestedAt:  now,
			AuthorizedAt: &now,
			ExecutedAt:   &now,
			Result:       "success",
			OriginIP:     "10.0.0.7",
			ZPLHash:      "abc123",
		},
		Machine:  &entities.Machine{ID: "m-1", Code: "PC-TEST", Name: "Test workstation"},
		Employee: &entities.Employee{ID: "e-1", Number: "123456", FirstName: "Maria", LastName: "Silva"},
		Lot:      &entities.Lot{ID: "lot-1", Number: "L-001"},
		Label:    &entities.Label{ID: "lbl-1", Code: "TBL-TEST", Name: "Test label", Version: "2"},
	}

	resp := FromPrintRecordDetail(detail)
	if resp.ID != "rec-1" || resp.Quantity != 5 || resp.State != "executed" {
		t.Fatalf("unexpected record fields: %+v", resp)
	}
	if !resp.RequestedAt.Equal(now) || resp.AuthorizedAt == nil || resp.ExecutedAt == nil {
		t.Fatalf("unexpected timestamps: %+v", resp)
	}
	if resp.ZPLHash != "abc123" {
		t.Fatalf("unexpected hash %q", resp.ZPLHash)
	}
	if resp.Machine == nil || resp.Machine.Code != "PC-TEST" {
		t.Fatalf("unexpected machine ref: %+v", resp.Machine)
	}
	if resp.Employee == nil || resp.Employee.Name != "Maria Silva" {
		t.Fatalf("unexpected employee ref: %+v", resp.Employee)
	}
	if resp.Lot == nil || resp.Lot.Number != "L-001" {
		t.Fatalf("unexpected lot ref: %+v", resp.Lot)
	}
	if resp.Label == nil || resp.Label.Code != "TBL-TEST" || resp.Label.Version != "2" {
		t.Fatalf("unexpected label ref: %+v", resp.Label)
	}
}

func TestFromPrintRecordDetail_UnresolvedReferences(t *testing.T) {
	detail := entities.PrintRecordDetail{
		Record: entities.PrintRecord{
			ID:           "rec-1",
			Quantity:     1,
			State:        entities.PrintStateDenied,
			DenialReason: "machine not registered or inactive",
		},
	}

	resp := FromPrintRecordDetail(detail)
	if resp.Machine != nil || resp.Employee != nil || resp.Lot != nil || resp.Label != nil {
		t.Fatalf("expected nil references, got %+v", resp)
	}
	if resp.DenialReason != "machine not registered or inactive" {
		t.Fatalf("unexpected reason %q", resp.DenialReason)
	}
}

func TestFromConfirmedRecord(t *testing.T) {
	now := time.Now().UTC()
	rec := entities.PrintRecord{ID: "rec-1", State: entities.PrintStateExecuted, ExecutedAt: &now}

	resp := FromConfirmedRecord(rec)
	if resp.PrintRecordID != "rec-1" || resp.State != "executed" {
		t.Fatalf("unexpected fields: %+v", resp)
	}
	if resp.ExecutedAt == nil || !resp.ExecutedAt.Equal(now) {
		t.Fatalf("unexpected executed_at: %+v", resp.ExecutedAt)
	}
	if resp.Message != "confirmation recorded" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}
