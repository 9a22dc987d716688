package database

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"labelpress/internal/domain/entities"
	"labelpress/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SeedRepositories bundles the reference-data repositories the dev seeder
// writes through.
type SeedRepositories struct {
	Machines  interfaces.IMachineRepository
	Printers  interfaces.IPrinterRepository
	Employees interfaces.IEmployeeRepository
	Labels    interfaces.ILabelRepository
	Lots      interfaces.ILotRepository
	Rules     interfaces.IPrintRuleRepository
}

// DevSeedEnabled reports whether the local test fixture should be loaded at
// startup. Off unless SEED_DEV_DATA is set.
func DevSeedEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SEED_DEV_DATA"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// SeedDevData loads a small working fixture for local development: one
// workstation with a printer, one operator, one lot printing a 4x6 test
// label, and the allow rule tying them together. Safe to call repeatedly:
// the conditional puts make rerunning a no-op failure that is ignored.
func SeedDevData(ctx context.Context, repos SeedRepositories) {
	now := time.Now().UTC()

	// Fixture ids are derived, not random, so reruns collide on the
	// conditional put instead of duplicating the fixture.
	ns := uuid.MustParse("8a50ce4e-9c39-4c08-b031-5fd3a71d7ac3")
	fixtureID := func(name string) string {
		return uuid.NewSHA1(ns, []byte(name)).String()
	}

	machineID := fixtureID("machine/PC-TEST")
	labelID := fixtureID("label/TBL-TEST")
	lotID := fixtureID("lot/L-001")

	machine := entities.Machine{
		ID:              machineID,
		Code:            "PC-TEST",
		Name:            "Local test workstation",
		Hostname:        "pc-test.local",
		DailyPrintLimit: 100,
		RegisteredAt:    now,
		Active:          true,
	}
	printer := entities.Printer{
		ID:        fixtureID("printer/ZEBRA-USB"),
		Code:      "ZEBRA-USB",
		Model:     "ZT230",
		MachineID: machineID,
		Active:    true,
	}
	employee := entities.Employee{
		ID:        fixtureID("employee/123456"),
		Number:    "123456",
		FirstName: "Test",
		LastName:  "Operator",
		HiredAt:   now,
		Active:    true,
	}
	label := entities.Label{
		ID:         labelID,
		Code:       "TBL-TEST",
		Name:       "Zebra 4x6 test",
		ContentZPL: "^XA^FO50,50^A0N,50,50^FDTEST LABEL^FS^XZ",
		WidthMM:    101,
		HeightMM:   152,
		Active:     true,
	}
	lot := entities.Lot{
		ID:          lotID,
		Number:      "L-001",
		Description: "Development test lot",
		LabelID:     labelID,
		MaxQuantity: 1000,
		StartedAt:   now,
		Active:      true,
	}
	assignment := entities.LotAssignment{
		ID:         fixtureID("assignment/L-001/PC-TEST"),
		LotID:      lotID,
		MachineID:  machineID,
		Priority:   1,
		AssignedAt: now,
		Active:     true,
	}
	rule := entities.PrintRule{
		ID:         fixtureID("rule/PC-TEST/TBL-TEST"),
		MachineID:  machineID,
		LabelID:    labelID,
		Authorized: true,
		PrintLimit: 0,
		Reason:     "development fixture",
		Active:     true,
	}

	seed := []struct {
		what string
		fn   func() error
	}{
		{"machine", func() error { _, err := repos.Machines.Create(ctx, machine); return err }},
		{"printer", func() error { _, err := repos.Printers.Create(ctx, printer); return err }},
		{"employee", func() error { _, err := repos.Employees.Create(ctx, employee); return err }},
		{"label", func() error { _, err := repos.Labels.Create(ctx, label); return err }},
		{"lot", func() error { _, err := repos.Lots.Create(ctx, lot); return err }},
		{"assignment", func() error { _, err := repos.Lots.CreateAssignment(ctx, assignment); return err }},
		{"rule", func() error { _, err := repos.Rules.Create(ctx, rule); return err }},
	}

	for _, s := range seed {
		if err := s.fn(); err != nil {
			log.Printf("[database] seed %s skipped: %v", s.what, err)
		}
	}
	log.Printf("[database] dev seed done machine=%s employee=%s lot=%s", machine.Code, employee.Number, lot.Number)
}
