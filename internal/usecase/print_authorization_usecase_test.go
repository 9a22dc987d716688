package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"labelpress/internal/domain/entities"
	mock_interfaces "labelpress/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testZPL = "^XA^FO50,50^A0N,50,50^FDTEST LABEL^FS^XZ"

type engineDeps struct {
	machines  *mock_interfaces.MockIMachineRepository
	printers  *mock_interfaces.MockIPrinterRepository
	employees *mock_interfaces.MockIEmployeeRepository
	labels    *mock_interfaces.MockILabelRepository
	lots      *mock_interfaces.MockILotRepository
	rules     *mock_interfaces.MockIPrintRuleRepository
	records   *mock_interfaces.MockIPrintRecordRepository
}

func newEngine(ctrl *gomock.Controller) (*PrintAuthorizationUseCase, engineDeps) {
	d := engineDeps{
		machines:  mock_interfaces.NewMockIMachineRepository(ctrl),
		printers:  mock_interfaces.NewMockIPrinterRepository(ctrl),
		employees: mock_interfaces.NewMockIEmployeeRepository(ctrl),
		labels:    mock_interfaces.NewMockILabelRepository(ctrl),
		lots:      mock_interfaces.NewMockILotRepository(ctrl),
		rules:     mock_interfaces.NewMockIPrintRuleRepository(ctrl),
		records:   mock_interfaces.NewMockIPrintRecordRepository(ctrl),
	}
	uc := NewPrintAuthorizationUseCase(d.machines, d.printers, d.employees, d.labels, d.lots, d.rules, d.records)
	return uc, d
}

func testMachine() entities.Machine {
	return entities.Machine{ID: "m-1", Code: "PC-TEST", Name: "Test workstation", DailyPrintLimit: 100, Active: true}
}

func testPrinter() entities.Printer {
	return entities.Printer{ID: "p-1", MachineID: "m-1", Active: true}
}

func testEmployee() entities.Employee {
	return entities.Employee{ID: "e-1", Number: "123456", FirstName: "Maria", LastName: "Silva", Active: true}
}

func testLot() entities.Lot {
	return entities.Lot{ID: "lot-1", Number: "L-001", LabelID: "lbl-1", MaxQuantity: 1000, Active: true}
}

func testLabel() entities.Label {
	return entities.Label{ID: "lbl-1", Code: "TBL-TEST", ContentZPL: testZPL, Active: true}
}

func testRule() entities.PrintRule {
	return entities.PrintRule{ID: "r-1", MachineID: "m-1", LabelID: "lbl-1", Authorized: true, Active: true}
}

func testAssignments() []entities.LotAssignment {
	return []entities.LotAssignment{{ID: "as-1", LotID: "lot-1", MachineID: "m-1", Priority: 1, Active: true}}
}

// expectDenialWrite arms the ledger mock for exactly one denial append and
// captures the written record for assertions.
func expectDenialWrite(d engineDeps, captured *entities.PrintRecord) {
	d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) {
			*captured = r
			return r, nil
		})
}

func TestPrintAuthorizationUseCase_Evaluate_Authorized(t *testing.T) {
	t.Run("full pipeline pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(testRule(), nil)
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)

		var written entities.PrintRecord
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) {
				written = r
				return r, nil
			})

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 5, "10.0.0.7")
		if !res.Authorized {
			t.Fatalf("expected authorized, got denial %q", res.DenialReason)
		}
		if res.ContentZPL != testZPL {
			t.Fatalf("expected ZPL payload, got %q", res.ContentZPL)
		}
		if res.Record == nil || res.Record.ID != written.ID {
			t.Fatalf("expected result to carry the created record")
		}
		if written.State != entities.PrintStateAuthorized {
			t.Fatalf("expected authorized state, got %s", written.State)
		}
		if written.Quantity != 5 || written.MachineID != "m-1" || written.EmployeeID != "e-1" || written.LotID != "lot-1" || written.LabelID != "lbl-1" || written.PrinterID != "p-1" {
			t.Fatalf("record fields wrong: %+v", written)
		}
		if written.AuthorizedAt == nil || written.AuthorizedAt.IsZero() {
			t.Fatalf("expected authorized_at to be stamped")
		}
		if written.OriginIP != "10.0.0.7" {
			t.Fatalf("expected origin ip, got %q", written.OriginIP)
		}
		if written.ZPLHash != hashZPL(testZPL) {
			t.Fatalf("expected payload hash %s, got %s", hashZPL(testZPL), written.ZPLHash)
		}
		if res.Machine == nil || res.Employee == nil || res.Lot == nil || res.Label == nil {
			t.Fatalf("expected resolved references on the result")
		}
	})

	t.Run("lowest priority assignment wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		assignments := []entities.LotAssignment{
			{ID: "as-2", LotID: "lot-2", MachineID: "m-1", Priority: 5, Active: true},
			{ID: "as-1", LotID: "lot-1", MachineID: "m-1", Priority: 1, Active: true},
		}

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(assignments, nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(testRule(), nil)
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) { return r, nil })

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if !res.Authorized {
			t.Fatalf("expected authorized, got denial %q", res.DenialReason)
		}
	})

	t.Run("unlimited machine skips daily sum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		machine := testMachine()
		machine.DailyPrintLimit = 0
		lot := testLot()
		lot.MaxQuantity = 0

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(machine, nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(lot, nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(testRule(), nil)
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) { return r, nil })

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 999, "")
		if !res.Authorized {
			t.Fatalf("expected authorized, got denial %q", res.DenialReason)
		}
	})
}

func TestPrintAuthorizationUseCase_Evaluate_Denials(t *testing.T) {
	t.Run("machine unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "ghost").Return(entities.Machine{}, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "ghost", "123456", 1, "10.0.0.7")
		if res.Authorized {
			t.Fatalf("expected denial")
		}
		if res.DenialReason != "machine not registered or inactive" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
		if written.State != entities.PrintStateDenied || written.DenialReason != res.DenialReason {
			t.Fatalf("denial record wrong: %+v", written)
		}
		if written.MachineID != "" {
			t.Fatalf("unresolved machine must not appear on the record")
		}
		if written.OriginIP != "10.0.0.7" {
			t.Fatalf("expected origin ip on denial record, got %q", written.OriginIP)
		}
	})

	t.Run("machine inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		machine := testMachine()
		machine.Active = false
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(machine, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "machine not registered or inactive" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("no active printer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(entities.Printer{}, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "printer not assigned or inactive" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
		if written.MachineID != "m-1" {
			t.Fatalf("expected resolved machine on denial record, got %q", written.MachineID)
		}
	})

	t.Run("employee unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "999999").Return(entities.Employee{}, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "999999", 1, "")
		if res.DenialReason != "employee invalid or inactive" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("no lot assignment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(nil, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "no active lot assigned to this machine" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("assigned lot missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(entities.Lot{}, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "no active lot assigned to this machine" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("lot inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		lot := testLot()
		lot.Active = false
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(lot, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "lot is not active" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("lot without label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		lot := testLot()
		lot.LabelID = ""
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(lot, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "no label assigned to lot" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("label inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		label := testLabel()
		label.Active = false
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(label, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "label is not active" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("no rule is default deny", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(entities.PrintRule{}, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "machine not authorized to print this label" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
		if written.LabelID != "lbl-1" || written.LotID != "lot-1" {
			t.Fatalf("expected resolved refs on denial record: %+v", written)
		}
	})

	t.Run("rule explicitly unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rule := testRule()
		rule.Authorized = false
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(rule, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "machine not authorized to print this label" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})
}

func TestPrintAuthorizationUseCase_Evaluate_Quotas(t *testing.T) {
	// arm arms every expectation up to and including the rule lookup.
	arm := func(d engineDeps, machine entities.Machine, lot entities.Lot, rule entities.PrintRule) {
		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(machine, nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(lot, nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(rule, nil)
	}

	t.Run("daily limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		arm(d, testMachine(), testLot(), testRule())
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(100, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "daily print limit reached (100)" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("daily limit would be exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		arm(d, testMachine(), testLot(), testRule())
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(95, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 10, "")
		if res.DenialReason != "requested quantity exceeds the daily limit (5 remaining)" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("exact daily remainder is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		arm(d, testMachine(), testLot(), testRule())
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(95, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) { return r, nil })

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 5, "")
		if !res.Authorized {
			t.Fatalf("expected authorized at exact remainder, got %q", res.DenialReason)
		}
	})

	t.Run("lot limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		arm(d, testMachine(), testLot(), testRule())
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(1000, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "lot print limit reached (1000)" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("lot limit would be exceeded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		arm(d, testMachine(), testLot(), testRule())
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(995, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 10, "")
		if res.DenialReason != "requested quantity exceeds the lot limit (5 remaining)" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("rule pair limit reached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rule := testRule()
		rule.PrintLimit = 50
		arm(d, testMachine(), testLot(), rule)
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)
		d.records.EXPECT().SumQuantityForMachineLabel(gomock.Any(), "m-1", "lbl-1").Return(50, nil)
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.DenialReason != "print limit for this machine-label combination reached" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})

	t.Run("rule pair under limit passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rule := testRule()
		rule.PrintLimit = 50
		arm(d, testMachine(), testLot(), rule)
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)
		d.records.EXPECT().SumQuantityForMachineLabel(gomock.Any(), "m-1", "lbl-1").Return(49, nil)
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) { return r, nil })

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 10, "")
		if !res.Authorized {
			t.Fatalf("expected authorized, got %q", res.DenialReason)
		}
	})
}

func TestPrintAuthorizationUseCase_Evaluate_Faults(t *testing.T) {
	t.Run("store error becomes denial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(entities.Machine{}, errors.New("dynamo down"))
		var written entities.PrintRecord
		expectDenialWrite(d, &written)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.Authorized {
			t.Fatalf("expected denial")
		}
		if res.DenialReason != "internal system error: dynamo down" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
		if written.State != entities.PrintStateDenied {
			t.Fatalf("expected denied audit record, got %s", written.State)
		}
	})

	t.Run("denial audit failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "ghost").Return(entities.Machine{}, nil)
		d.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PrintRecord{}, errors.New("ledger down"))

		res := uc.Evaluate(context.Background(), "ghost", "123456", 1, "")
		if res.Authorized {
			t.Fatalf("expected denial")
		}
		if res.DenialReason != "machine not registered or inactive" {
			t.Fatalf("ledger fault must not replace the denial reason, got %q", res.DenialReason)
		}
	})

	t.Run("authorized record write failure becomes denial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.machines.EXPECT().GetByIdentifier(gomock.Any(), "PC-TEST").Return(testMachine(), nil)
		d.printers.EXPECT().GetActiveByMachineID(gomock.Any(), "m-1").Return(testPrinter(), nil)
		d.employees.EXPECT().GetActiveByNumber(gomock.Any(), "123456").Return(testEmployee(), nil)
		d.lots.EXPECT().ListActiveAssignmentsByMachineID(gomock.Any(), "m-1").Return(testAssignments(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)
		d.rules.EXPECT().GetActiveByMachineAndLabel(gomock.Any(), "m-1", "lbl-1").Return(testRule(), nil)
		d.records.EXPECT().SumQuantityForMachineSince(gomock.Any(), "m-1", gomock.Any()).Return(0, nil)
		d.records.EXPECT().SumQuantityForLot(gomock.Any(), "lot-1").Return(0, nil)

		gomock.InOrder(
			d.records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PrintRecord{}, errors.New("write refused")),
			d.records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.PrintRecord) (entities.PrintRecord, error) { return r, nil }),
		)

		res := uc.Evaluate(context.Background(), "PC-TEST", "123456", 1, "")
		if res.Authorized {
			t.Fatalf("expected denial after failed write")
		}
		if res.DenialReason != "internal system error: write refused" {
			t.Fatalf("unexpected reason %q", res.DenialReason)
		}
	})
}

func TestPrintAuthorizationUseCase_Confirm(t *testing.T) {
	t.Run("empty record id", func(t *testing.T) {
		uc, _ := newEngine(gomock.NewController(t))
		_, err := uc.Confirm(context.Background(), "  ", true, "", "", time.Time{})
		if !errors.Is(err, ErrInvalidPrintRecordID) {
			t.Fatalf("expected ErrInvalidPrintRecordID, got %v", err)
		}
	})

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{}, nil)
		_, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{})
		if !errors.Is(err, ErrPrintRecordNotFound) {
			t.Fatalf("expected ErrPrintRecordNotFound, got %v", err)
		}
	})

	t.Run("record not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateDenied}, nil)
		_, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{})
		if !errors.Is(err, ErrPrintRecordNotPending) {
			t.Fatalf("expected ErrPrintRecordNotPending, got %v", err)
		}
	})

	t.Run("already executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateExecuted}, nil)
		_, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{})
		if !errors.Is(err, ErrPrintRecordNotPending) {
			t.Fatalf("expected ErrPrintRecordNotPending, got %v", err)
		}
	})

	t.Run("success moves to executed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		executedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateAuthorized}, nil)
		d.records.EXPECT().UpdateExecution(gomock.Any(), "rec-1", entities.PrintStateExecuted, executedAt, "success", "").
			Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateExecuted, ExecutedAt: &executedAt}, nil)

		rec, err := uc.Confirm(context.Background(), "rec-1", true, "", "", executedAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.State != entities.PrintStateExecuted {
			t.Fatalf("expected executed, got %s", rec.State)
		}
	})

	t.Run("failure moves to failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		executedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateAuthorized}, nil)
		d.records.EXPECT().UpdateExecution(gomock.Any(), "rec-1", entities.PrintStateFailed, executedAt, "failed", "out of ribbon").
			Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateFailed}, nil)

		rec, err := uc.Confirm(context.Background(), "rec-1", false, "", "out of ribbon", executedAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.State != entities.PrintStateFailed {
			t.Fatalf("expected failed, got %s", rec.State)
		}
	})

	t.Run("zero executed_at defaults to now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		before := time.Now().UTC()
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateAuthorized}, nil)
		d.records.EXPECT().UpdateExecution(gomock.Any(), "rec-1", entities.PrintStateExecuted, gomock.Any(), "success", "").
			DoAndReturn(func(_ context.Context, id string, state entities.PrintState, executedAt time.Time, _, _ string) (entities.PrintRecord, error) {
				if executedAt.Before(before) {
					t.Fatalf("expected executed_at to default to now, got %v", executedAt)
				}
				return entities.PrintRecord{ID: id, State: state, ExecutedAt: &executedAt}, nil
			})

		if _, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update losing the race maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{ID: "rec-1", State: entities.PrintStateAuthorized}, nil)
		d.records.EXPECT().UpdateExecution(gomock.Any(), "rec-1", entities.PrintStateExecuted, gomock.Any(), "success", "").
			Return(entities.PrintRecord{}, nil)

		_, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{})
		if !errors.Is(err, ErrPrintRecordNotFound) {
			t.Fatalf("expected ErrPrintRecordNotFound, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{}, errors.New("dynamo down"))
		_, err := uc.Confirm(context.Background(), "rec-1", true, "", "", time.Time{})
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestPrintAuthorizationUseCase_GetRecord(t *testing.T) {
	t.Run("empty record id", func(t *testing.T) {
		uc, _ := newEngine(gomock.NewController(t))
		_, err := uc.GetRecord(context.Background(), "")
		if !errors.Is(err, ErrInvalidPrintRecordID) {
			t.Fatalf("expected ErrInvalidPrintRecordID, got %v", err)
		}
	})

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(entities.PrintRecord{}, nil)
		_, err := uc.GetRecord(context.Background(), "rec-1")
		if !errors.Is(err, ErrPrintRecordNotFound) {
			t.Fatalf("expected ErrPrintRecordNotFound, got %v", err)
		}
	})

	t.Run("resolves all references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rec := entities.PrintRecord{ID: "rec-1", MachineID: "m-1", EmployeeID: "e-1", LotID: "lot-1", LabelID: "lbl-1", State: entities.PrintStateAuthorized}
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)
		d.machines.EXPECT().GetByID(gomock.Any(), "m-1").Return(testMachine(), nil)
		d.employees.EXPECT().GetByID(gomock.Any(), "e-1").Return(testEmployee(), nil)
		d.lots.EXPECT().GetByID(gomock.Any(), "lot-1").Return(testLot(), nil)
		d.labels.EXPECT().GetByID(gomock.Any(), "lbl-1").Return(testLabel(), nil)

		detail, err := uc.GetRecord(context.Background(), "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Machine == nil || detail.Machine.Code != "PC-TEST" {
			t.Fatalf("expected machine resolved, got %+v", detail.Machine)
		}
		if detail.Employee == nil || detail.Employee.Number != "123456" {
			t.Fatalf("expected employee resolved, got %+v", detail.Employee)
		}
		if detail.Lot == nil || detail.Lot.Number != "L-001" {
			t.Fatalf("expected lot resolved, got %+v", detail.Lot)
		}
		if detail.Label == nil || detail.Label.Code != "TBL-TEST" {
			t.Fatalf("expected label resolved, got %+v", detail.Label)
		}
	})

	t.Run("early denial has no references to resolve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rec := entities.PrintRecord{ID: "rec-1", State: entities.PrintStateDenied, DenialReason: "machine not registered or inactive"}
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)

		detail, err := uc.GetRecord(context.Background(), "rec-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Machine != nil || detail.Employee != nil || detail.Lot != nil || detail.Label != nil {
			t.Fatalf("expected no references, got %+v", detail)
		}
	})

	t.Run("reference lookup error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, d := newEngine(ctrl)

		rec := entities.PrintRecord{ID: "rec-1", MachineID: "m-1", State: entities.PrintStateAuthorized}
		d.records.EXPECT().GetByID(gomock.Any(), "rec-1").Return(rec, nil)
		d.machines.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Machine{}, errors.New("dynamo down"))

		_, err := uc.GetRecord(context.Background(), "rec-1")
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestPickAssignment(t *testing.T) {
	t.Run("empty returns nil", func(t *testing.T) {
		if got := pickAssignment(nil); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})

	t.Run("lowest priority wins", func(t *testing.T) {
		got := pickAssignment([]entities.LotAssignment{
			{ID: "as-1", LotID: "lot-a", Priority: 3},
			{ID: "as-2", LotID: "lot-b", Priority: 1},
			{ID: "as-3", LotID: "lot-c", Priority: 2},
		})
		if got == nil || got.LotID != "lot-b" {
			t.Fatalf("expected lot-b, got %+v", got)
		}
	})
}
