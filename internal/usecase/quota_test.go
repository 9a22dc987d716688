package usecase

import "testing"

func TestQuotaStatus(t *testing.T) {
	t.Run("zero limit is not enforced", func(t *testing.T) {
		q := quotaStatus{limit: 0, used: 500}
		if q.enforced() {
			t.Fatalf("expected not enforced")
		}
		if q.atLimit() {
			t.Fatalf("unenforced quota must never be at limit")
		}
		if q.wouldExceed(1000) {
			t.Fatalf("unenforced quota must never be exceeded")
		}
	})

	t.Run("under the limit", func(t *testing.T) {
		q := quotaStatus{limit: 100, used: 40}
		if q.atLimit() {
			t.Fatalf("expected under limit")
		}
		if q.wouldExceed(60) {
			t.Fatalf("exact fill must be allowed")
		}
		if !q.wouldExceed(61) {
			t.Fatalf("expected overflow at 61")
		}
		if q.remaining() != 60 {
			t.Fatalf("expected 60 remaining, got %d", q.remaining())
		}
	})

	t.Run("at the limit", func(t *testing.T) {
		q := quotaStatus{limit: 100, used: 100}
		if !q.atLimit() {
			t.Fatalf("expected at limit")
		}
		if q.remaining() != 0 {
			t.Fatalf("expected 0 remaining, got %d", q.remaining())
		}
	})

	t.Run("over the limit floors remaining at zero", func(t *testing.T) {
		q := quotaStatus{limit: 100, used: 130}
		if !q.atLimit() {
			t.Fatalf("expected at limit")
		}
		if q.remaining() != 0 {
			t.Fatalf("expected 0 remaining, got %d", q.remaining())
		}
	})
}
