package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mattmosz/APP-TESO/app/models"
)

const debtorsSheet = "Deudores"

var debtorsHeader = []string{
	"Activity", "Deadline", "Fee", "Expected", "Collected", "Shortfall", "% Collected",
	"Student", "Paid", "Owed", "% Paid",
}

// BuildDebtorsWorkbook renders the debtor report as a spreadsheet, one row per
// debtor. Activities with a shortfall but no listed debtors (orphaned
// payments, fee changes) still get a summary row.
func BuildDebtorsWorkbook(report []*models.ActivityReport) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", debtorsSheet)

	for col, title := range debtorsHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(debtorsSheet, cell, title); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, entry := range report {
		if len(entry.Debtors) == 0 {
			if err := setRow(f, row, activityCells(entry)); err != nil {
				return nil, err
			}
			row++
			continue
		}
		for _, debtor := range entry.Debtors {
			cells := append(activityCells(entry),
				debtor.FullName, debtor.AmountPaid, debtor.AmountOwed, debtor.PercentPaid)
			if err := setRow(f, row, cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	return f, nil
}

func activityCells(entry *models.ActivityReport) []interface{} {
	a := entry.Activity
	return []interface{}{
		a.Name,
		a.PaymentDeadline.Format("2006-01-02"),
		a.FeePerStudent,
		a.TotalExpected,
		a.TotalCollected,
		a.Shortfall,
		fmt.Sprintf("%d%%", a.PercentCollected),
	}
}

func setRow(f *excelize.File, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(debtorsSheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
