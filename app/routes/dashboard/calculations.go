package dashboard

import (
	"math"

	"github.com/mattmosz/APP-TESO/app/models"
)

// percentOf returns round(100 * part / whole) clamped to [0, 100]. A zero or
// negative whole yields 0 instead of a division fault; a fee-requiring
// activity can legitimately carry a zero fee while it is being set up.
func percentOf(part, whole float64) int {
	if whole <= 0 {
		return 0
	}
	if part >= whole {
		return 100
	}
	return int(math.Round(100 * part / whole))
}

// expectedTotal is the activity's explicit target when one was set, otherwise
// the fee times the current roster size.
func expectedTotal(a *models.Activity, studentCount int) float64 {
	if a.TotalExpected != 0 {
		return a.TotalExpected
	}
	return a.FeePerStudent * float64(studentCount)
}

// BuildDebtorsReport computes per-activity collection totals and per-student
// outstanding balances. Callers pass active students, active fee-requiring
// activities and the full payment set; the function itself never touches the
// database and never mutates its inputs.
//
// Payments from students not in the roster (deactivated after paying) count
// toward the collected totals but produce no debtor entries. An activity
// appears in the report only while it has debtors or a shortfall; fully
// collected activities drop out.
func BuildDebtorsReport(students []*models.Student, activities []*models.Activity, payments []*models.Payment) []*models.ActivityReport {
	paymentsByActivity := make(map[string][]*models.Payment)
	for _, p := range payments {
		paymentsByActivity[p.ActivityID] = append(paymentsByActivity[p.ActivityID], p)
	}

	report := []*models.ActivityReport{}
	for _, activity := range activities {
		if !activity.RequiresFee {
			continue
		}

		var totalCollected float64
		paidByStudent := make(map[string]float64)
		for _, p := range paymentsByActivity[activity.ID] {
			totalCollected += p.Amount
			paidByStudent[p.StudentID] += p.Amount
		}

		totalExpected := expectedTotal(activity, len(students))
		shortfall := totalExpected - totalCollected

		debtors := []models.DebtorEntry{}
		for _, student := range students {
			paid := paidByStudent[student.ID]
			owed := activity.FeePerStudent - paid
			if owed > 0 {
				debtors = append(debtors, models.DebtorEntry{
					StudentID:   student.ID,
					FullName:    student.FullName,
					AmountPaid:  paid,
					AmountOwed:  owed,
					PercentPaid: percentOf(paid, activity.FeePerStudent),
				})
			}
		}

		if len(debtors) > 0 || shortfall > 0 {
			report = append(report, &models.ActivityReport{
				Activity: models.ActivitySummary{
					ID:               activity.ID,
					Name:             activity.Name,
					FeePerStudent:    activity.FeePerStudent,
					TotalExpected:    totalExpected,
					TotalCollected:   totalCollected,
					Shortfall:        shortfall,
					PercentCollected: percentOf(totalCollected, totalExpected),
					PaymentDeadline:  activity.PaymentDeadline,
				},
				Debtors:     debtors,
				DebtorCount: len(debtors),
			})
		}
	}
	return report
}
