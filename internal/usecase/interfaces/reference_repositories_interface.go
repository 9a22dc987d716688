package interfaces

import (
	"context"

	"labelpress/internal/domain/entities"
)

// Reference-data repositories abstract DynamoDB persistence for the entities
// the rule engine reads. All Get* methods return the zero-value entity (empty
// ID) when nothing matches; absence is an expected outcome for the engine,
// never an error.
//
// Create methods exist for the administrative collaborators and the dev
// seeder that populate reference data; the engine itself only reads.

type IMachineRepository interface {
	Create(ctx context.Context, m entities.Machine) (entities.Machine, error)
	GetByID(ctx context.Context, id string) (entities.Machine, error)
	// GetByIdentifier resolves a machine by code, hostname or MAC address,
	// in that order, case-sensitively. First match wins.
	GetByIdentifier(ctx context.Context, identifier string) (entities.Machine, error)
}

type IPrinterRepository interface {
	Create(ctx context.Context, p entities.Printer) (entities.Printer, error)
	// GetActiveByMachineID resolves the active printer assigned to a machine.
	GetActiveByMachineID(ctx context.Context, machineID string) (entities.Printer, error)
}

type IEmployeeRepository interface {
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	// GetActiveByNumber resolves an active employee by company number.
	GetActiveByNumber(ctx context.Context, number string) (entities.Employee, error)
}

type ILabelRepository interface {
	Create(ctx context.Context, l entities.Label) (entities.Label, error)
	GetByID(ctx context.Context, id string) (entities.Label, error)
}

type ILotRepository interface {
	Create(ctx context.Context, l entities.Lot) (entities.Lot, error)
	GetByID(ctx context.Context, id string) (entities.Lot, error)
	CreateAssignment(ctx context.Context, a entities.LotAssignment) (entities.LotAssignment, error)
	// ListActiveAssignmentsByMachineID returns the active lot assignments for
	// a machine, in no particular order; callers pick by priority.
	ListActiveAssignmentsByMachineID(ctx context.Context, machineID string) ([]entities.LotAssignment, error)
}

type IPrintRuleRepository interface {
	Create(ctx context.Context, r entities.PrintRule) (entities.PrintRule, error)
	// GetActiveByMachineAndLabel resolves the active rule for a (machine,
	// label) pair. Zero-value result means no rule: default deny.
	GetActiveByMachineAndLabel(ctx context.Context, machineID, labelID string) (entities.PrintRule, error)
}
