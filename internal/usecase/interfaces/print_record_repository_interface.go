package interfaces

import (
	"context"
	"time"

	"labelpress/internal/domain/entities"
)

// IPrintRecordRepository abstracts DynamoDB persistence for the print-record
// ledger: one append per authorization attempt plus the execution update.
//
// The Sum* methods back the quota checks. They count quantities from records
// in state authorized or executed only; denied and failed attempts never
// consume quota.

type IPrintRecordRepository interface {
	Create(ctx context.Context, r entities.PrintRecord) (entities.PrintRecord, error)
	GetByID(ctx context.Context, id string) (entities.PrintRecord, error)
	// UpdateExecution moves a record to its terminal state after the
	// workstation reports the hardware outcome. Returns the zero-value
	// record when the id does not exist.
	UpdateExecution(ctx context.Context, id string, state entities.PrintState, executedAt time.Time, result, errorMessage string) (entities.PrintRecord, error)

	// SumQuantityForMachineSince sums consumed quantity for a machine with
	// requested_at >= since. Used for the daily machine quota.
	SumQuantityForMachineSince(ctx context.Context, machineID string, since time.Time) (int, error)
	// SumQuantityForLot sums all-time consumed quantity for a lot.
	SumQuantityForLot(ctx context.Context, lotID string) (int, error)
	// SumQuantityForMachineLabel sums all-time consumed quantity for a
	// (machine, label) pair. Used for the rule-specific quota.
	SumQuantityForMachineLabel(ctx context.Context, machineID, labelID string) (int, error)
}
