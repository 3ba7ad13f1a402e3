package services

import (
	"testing"
	"time"

	"github.com/mattmosz/APP-TESO/app/models"
)

func TestBuildDebtorsWorkbook(t *testing.T) {
	deadline := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	report := []*models.ActivityReport{
		{
			Activity: models.ActivitySummary{
				ID: "a1", Name: "Excursión", FeePerStudent: 50,
				TotalExpected: 100, TotalCollected: 50, Shortfall: 50,
				PercentCollected: 50, PaymentDeadline: deadline,
			},
			Debtors: []models.DebtorEntry{
				{StudentID: "s2", FullName: "Luis Gómez", AmountPaid: 0, AmountOwed: 50, PercentPaid: 0},
			},
			DebtorCount: 1,
		},
		{
			Activity: models.ActivitySummary{
				ID: "a2", Name: "Rifa", FeePerStudent: 10,
				TotalExpected: 20, TotalCollected: 5, Shortfall: 15,
				PercentCollected: 25, PaymentDeadline: deadline,
			},
			Debtors:     []models.DebtorEntry{},
			DebtorCount: 0,
		},
	}

	f, err := BuildDebtorsWorkbook(report)
	if err != nil {
		t.Fatalf("BuildDebtorsWorkbook: %v", err)
	}

	got, err := f.GetCellValue(debtorsSheet, "A1")
	if err != nil || got != "Activity" {
		t.Errorf("A1 = %q, %v; want Activity header", got, err)
	}

	checks := map[string]string{
		"A2": "Excursión",
		"B2": "2025-06-15",
		"F2": "50",
		"G2": "50%",
		"H2": "Luis Gómez",
		"J2": "50",
		"A3": "Rifa",
		"G3": "25%",
		"H3": "", // shortfall-only row has no student cells
	}
	for cell, want := range checks {
		got, err := f.GetCellValue(debtorsSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestBuildDebtorsWorkbookEmptyReport(t *testing.T) {
	f, err := BuildDebtorsWorkbook(nil)
	if err != nil {
		t.Fatalf("BuildDebtorsWorkbook: %v", err)
	}
	got, err := f.GetCellValue(debtorsSheet, "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "" {
		t.Errorf("expected no data rows, got %q", got)
	}
}
