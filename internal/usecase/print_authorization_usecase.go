package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"labelpress/internal/domain/entities"
	"labelpress/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrintRecordID  = errors.New("invalid print record id")
	ErrPrintRecordNotFound   = errors.New("print record not found")
	ErrPrintRecordNotPending = errors.New("print record is not awaiting execution")
)

// IPrintAuthorizationUseCase is the rule engine for label printing.
//
// Principle: printing is not sending a file, it is executing a decision of
// the system. Every condition is validated before a single label leaves a
// printer, and every attempt, granted or not, leaves a print record behind.

type IPrintAuthorizationUseCase interface {
	// Evaluate runs the ordered validation pipeline for one print request.
	// It never returns an error: store faults are folded into a denial so
	// the caller always gets a definitive answer.
	Evaluate(ctx context.Context, machineIdentifier, employeeNumber string, quantity int, originIP string) entities.AuthorizationResult
	// Confirm records the hardware outcome for a previously authorized
	// print, moving the record to executed or failed.
	Confirm(ctx context.Context, recordID string, success bool, result, errorMessage string, executedAt time.Time) (entities.PrintRecord, error)
	// GetRecord returns a print record with its resolved references.
	GetRecord(ctx context.Context, recordID string) (entities.PrintRecordDetail, error)
}

type PrintAuthorizationUseCase struct {
	machines  interfaces.IMachineRepository
	printers  interfaces.IPrinterRepository
	employees interfaces.IEmployeeRepository
	labels    interfaces.ILabelRepository
	lots      interfaces.ILotRepository
	rules     interfaces.IPrintRuleRepository
	records   interfaces.IPrintRecordRepository
}

var _ IPrintAuthorizationUseCase = (*PrintAuthorizationUseCase)(nil)

func NewPrintAuthorizationUseCase(
	machines interfaces.IMachineRepository,
	printers interfaces.IPrinterRepository,
	employees interfaces.IEmployeeRepository,
	labels interfaces.ILabelRepository,
	lots interfaces.ILotRepository,
	rules interfaces.IPrintRuleRepository,
	records interfaces.IPrintRecordRepository,
) *PrintAuthorizationUseCase {
	return &PrintAuthorizationUseCase{
		machines:  machines,
		printers:  printers,
		employees: employees,
		labels:    labels,
		lots:      lots,
		rules:     rules,
		records:   records,
	}
}

// resolved accumulates the references the pipeline has looked up so far.
// Denials carry whatever was resolved before the failing stage.
type resolved struct {
	machine  *entities.Machine
	printer  *entities.Printer
	employee *entities.Employee
	lot      *entities.Lot
	label    *entities.Label
}

func (rs resolved) toResult() entities.AuthorizationResult {
	return entities.AuthorizationResult{
		Machine:  rs.machine,
		Employee: rs.employee,
		Lot:      rs.lot,
		Label:    rs.label,
	}
}

func (u *PrintAuthorizationUseCase) Evaluate(ctx context.Context, machineIdentifier, employeeNumber string, quantity int, originIP string) entities.AuthorizationResult {
	log.Printf("[print][usecase] evaluate start machine=%q employee=%q quantity=%d", machineIdentifier, employeeNumber, quantity)

	var rs resolved

	// 1. Machine
	machine, err := u.machines.GetByIdentifier(ctx, machineIdentifier)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if machine.ID == "" || !machine.Active {
		return u.deny(ctx, rs, quantity, originIP, "machine not registered or inactive")
	}
	rs.machine = &machine

	// 2. Printer
	printer, err := u.printers.GetActiveByMachineID(ctx, machine.ID)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if printer.ID == "" {
		return u.deny(ctx, rs, quantity, originIP, "printer not assigned or inactive")
	}
	rs.printer = &printer

	// 3. Employee
	employee, err := u.employees.GetActiveByNumber(ctx, employeeNumber)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if employee.ID == "" {
		return u.deny(ctx, rs, quantity, originIP, "employee invalid or inactive")
	}
	rs.employee = &employee

	// 4. Current lot: lowest priority value among active assignments.
	assignments, err := u.lots.ListActiveAssignmentsByMachineID(ctx, machine.ID)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	current := pickAssignment(assignments)
	if current == nil {
		return u.deny(ctx, rs, quantity, originIP, "no active lot assigned to this machine")
	}
	lot, err := u.lots.GetByID(ctx, current.LotID)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if lot.ID == "" {
		return u.deny(ctx, rs, quantity, originIP, "no active lot assigned to this machine")
	}
	if !lot.Active {
		return u.deny(ctx, rs, quantity, originIP, "lot is not active")
	}
	rs.lot = &lot

	// 5. Label
	if lot.LabelID == "" {
		return u.deny(ctx, rs, quantity, originIP, "no label assigned to lot")
	}
	label, err := u.labels.GetByID(ctx, lot.LabelID)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if label.ID == "" {
		return u.deny(ctx, rs, quantity, originIP, "no label assigned to lot")
	}
	if !label.Active {
		return u.deny(ctx, rs, quantity, originIP, "label is not active")
	}
	rs.label = &label

	// 6. Allow-list rule for the (machine, label) pair. No rule means deny.
	rule, err := u.rules.GetActiveByMachineAndLabel(ctx, machine.ID, label.ID)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}
	if rule.ID == "" || !rule.Authorized {
		return u.deny(ctx, rs, quantity, originIP, "machine not authorized to print this label")
	}

	// 7. Quotas. Each sum is a separate read from the ledger; the insert
	// below is another round-trip, so two concurrent requests near a limit
	// can both pass their check and push the aggregate past it.

	// 7a. Machine daily limit, UTC calendar day.
	if machine.DailyPrintLimit > 0 {
		startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
		usedToday, err := u.records.SumQuantityForMachineSince(ctx, machine.ID, startOfDay)
		if err != nil {
			return u.internalFault(ctx, rs, quantity, originIP, err)
		}
		q := quotaStatus{limit: machine.DailyPrintLimit, used: usedToday}
		if q.atLimit() {
			return u.deny(ctx, rs, quantity, originIP, fmt.Sprintf("daily print limit reached (%d)", q.limit))
		}
		if q.wouldExceed(quantity) {
			return u.deny(ctx, rs, quantity, originIP, fmt.Sprintf("requested quantity exceeds the daily limit (%d remaining)", q.remaining()))
		}
	}

	// 7b. Lot limit, all time.
	if lot.MaxQuantity > 0 {
		usedLot, err := u.records.SumQuantityForLot(ctx, lot.ID)
		if err != nil {
			return u.internalFault(ctx, rs, quantity, originIP, err)
		}
		q := quotaStatus{limit: lot.MaxQuantity, used: usedLot}
		if q.atLimit() {
			return u.deny(ctx, rs, quantity, originIP, fmt.Sprintf("lot print limit reached (%d)", q.limit))
		}
		if q.wouldExceed(quantity) {
			return u.deny(ctx, rs, quantity, originIP, fmt.Sprintf("requested quantity exceeds the lot limit (%d remaining)", q.remaining()))
		}
	}

	// 7c. Rule-specific limit, all time.
	if rule.PrintLimit > 0 {
		usedPair, err := u.records.SumQuantityForMachineLabel(ctx, machine.ID, label.ID)
		if err != nil {
			return u.internalFault(ctx, rs, quantity, originIP, err)
		}
		q := quotaStatus{limit: rule.PrintLimit, used: usedPair}
		if q.atLimit() {
			return u.deny(ctx, rs, quantity, originIP, "print limit for this machine-label combination reached")
		}
	}

	// 8. Everything validated: persist the authorized record and hand the
	// payload back. Automatic path only, no manual authorizer.
	now := time.Now().UTC()
	rec := entities.PrintRecord{
		ID:           uuid.NewString(),
		MachineID:    machine.ID,
		PrinterID:    printer.ID,
		EmployeeID:   employee.ID,
		LotID:        lot.ID,
		LabelID:      label.ID,
		Quantity:     quantity,
		State:        entities.PrintStateAuthorized,
		RequestedAt:  now,
		AuthorizedAt: &now,
		OriginIP:     originIP,
		Result:       "authorized by rule engine",
		ZPLHash:      hashZPL(label.ContentZPL),
	}
	created, err := u.records.Create(ctx, rec)
	if err != nil {
		return u.internalFault(ctx, rs, quantity, originIP, err)
	}

	log.Printf("[print][usecase] authorized record=%s machine=%s employee=%s quantity=%d", created.ID, machine.Code, employee.Number, quantity)

	res := rs.toResult()
	res.Authorized = true
	res.Record = &created
	res.ContentZPL = label.ContentZPL
	return res
}

func (u *PrintAuthorizationUseCase) Confirm(ctx context.Context, recordID string, success bool, result, errorMessage string, executedAt time.Time) (entities.PrintRecord, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.PrintRecord{}, ErrInvalidPrintRecordID
	}

	rec, err := u.records.GetByID(ctx, recordID)
	if err != nil {
		return entities.PrintRecord{}, err
	}
	if rec.ID == "" {
		return entities.PrintRecord{}, ErrPrintRecordNotFound
	}
	if rec.State != entities.PrintStateAuthorized {
		return entities.PrintRecord{}, ErrPrintRecordNotPending
	}

	state := entities.PrintStateExecuted
	if !success {
		state = entities.PrintStateFailed
	}
	if executedAt.IsZero() {
		executedAt = time.Now().UTC()
	}
	if result == "" {
		if success {
			result = "success"
		} else {
			result = "failed"
		}
	}

	updated, err := u.records.UpdateExecution(ctx, recordID, state, executedAt.UTC(), result, errorMessage)
	if err != nil {
		return entities.PrintRecord{}, err
	}
	if updated.ID == "" {
		return entities.PrintRecord{}, ErrPrintRecordNotFound
	}
	log.Printf("[print][usecase] confirmed record=%s state=%s", updated.ID, updated.State)
	return updated, nil
}

func (u *PrintAuthorizationUseCase) GetRecord(ctx context.Context, recordID string) (entities.PrintRecordDetail, error) {
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return entities.PrintRecordDetail{}, ErrInvalidPrintRecordID
	}

	rec, err := u.records.GetByID(ctx, recordID)
	if err != nil {
		return entities.PrintRecordDetail{}, err
	}
	if rec.ID == "" {
		return entities.PrintRecordDetail{}, ErrPrintRecordNotFound
	}

	detail := entities.PrintRecordDetail{Record: rec}
	if rec.MachineID != "" {
		m, err := u.machines.GetByID(ctx, rec.MachineID)
		if err != nil {
			return entities.PrintRecordDetail{}, err
		}
		if m.ID != "" {
			detail.Machine = &m
		}
	}
	if rec.EmployeeID != "" {
		e, err := u.employees.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			return entities.PrintRecordDetail{}, err
		}
		if e.ID != "" {
			detail.Employee = &e
		}
	}
	if rec.LotID != "" {
		l, err := u.lots.GetByID(ctx, rec.LotID)
		if err != nil {
			return entities.PrintRecordDetail{}, err
		}
		if l.ID != "" {
			detail.Lot = &l
		}
	}
	if rec.LabelID != "" {
		lb, err := u.labels.GetByID(ctx, rec.LabelID)
		if err != nil {
			return entities.PrintRecordDetail{}, err
		}
		if lb.ID != "" {
			detail.Label = &lb
		}
	}
	return detail, nil
}

// deny records the denied attempt and returns the denial result. The audit
// write is best-effort: a ledger fault must not mask the denial reason from
// the caller, so failures are logged and swallowed.
func (u *PrintAuthorizationUseCase) deny(ctx context.Context, rs resolved, quantity int, originIP, reason string) entities.AuthorizationResult {
	log.Printf("[print][usecase] denied reason=%q quantity=%d", reason, quantity)

	rec := entities.PrintRecord{
		ID:           uuid.NewString(),
		Quantity:     quantity,
		State:        entities.PrintStateDenied,
		RequestedAt:  time.Now().UTC(),
		DenialReason: reason,
		OriginIP:     originIP,
		Result:       "denied",
	}
	if rs.machine != nil {
		rec.MachineID = rs.machine.ID
	}
	if rs.printer != nil {
		rec.PrinterID = rs.printer.ID
	}
	if rs.employee != nil {
		rec.EmployeeID = rs.employee.ID
	}
	if rs.lot != nil {
		rec.LotID = rs.lot.ID
	}
	if rs.label != nil {
		rec.LabelID = rs.label.ID
	}
	if _, err := u.records.Create(ctx, rec); err != nil {
		log.Printf("[print][usecase] denial audit write failed reason=%q err=%v", reason, err)
	}

	res := rs.toResult()
	res.Authorized = false
	res.DenialReason = reason
	return res
}

// internalFault converts an unexpected store error into a denial. The engine
// never surfaces raw failures to its caller; the short diagnostic string is
// all the boundary layer gets.
func (u *PrintAuthorizationUseCase) internalFault(ctx context.Context, rs resolved, quantity int, originIP string, err error) entities.AuthorizationResult {
	log.Printf("[print][usecase] internal fault err=%v", err)
	return u.deny(ctx, rs, quantity, originIP, fmt.Sprintf("internal system error: %v", err))
}

// pickAssignment returns the active assignment with the lowest priority
// value, or nil when the machine has none.
func pickAssignment(assignments []entities.LotAssignment) *entities.LotAssignment {
	var best *entities.LotAssignment
	for i := range assignments {
		a := &assignments[i]
		if best == nil || a.Priority < best.Priority {
			best = a
		}
	}
	return best
}

func hashZPL(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
