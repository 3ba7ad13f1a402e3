package models

import "time"

// DashboardStats is the top-level treasury balance. Income and expense totals
// are global sums; payments toward inactive activities still count.
type DashboardStats struct {
	StudentCount     int     `json:"student_count"`
	ActivityCount    int     `json:"activity_count"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	AvailableBalance float64 `json:"available_balance"`
}

// ActivitySummary is the collection status of one fee-requiring activity.
type ActivitySummary struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	FeePerStudent    float64   `json:"fee_per_student"`
	TotalExpected    float64   `json:"total_expected"`
	TotalCollected   float64   `json:"total_collected"`
	Shortfall        float64   `json:"shortfall"`
	PercentCollected int       `json:"percent_collected"`
	PaymentDeadline  time.Time `json:"payment_deadline"`
}

// DebtorEntry is a student who still owes part of an activity's fee.
type DebtorEntry struct {
	StudentID   string  `json:"student_id"`
	FullName    string  `json:"full_name"`
	AmountPaid  float64 `json:"amount_paid"`
	AmountOwed  float64 `json:"amount_owed"`
	PercentPaid int     `json:"percent_paid"`
}

// ActivityReport groups an activity's collection summary with its debtors.
type ActivityReport struct {
	Activity    ActivitySummary `json:"activity"`
	Debtors     []DebtorEntry   `json:"debtors"`
	DebtorCount int             `json:"debtor_count"`
}
