package database

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

// GetDashboardStats returns the top-level treasury balance. Income and expense
// totals deliberately include payments and expenses tied to inactive
// activities; the money was still received or spent.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_active = true`).Scan(&stats.StudentCount)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*) FROM activities WHERE is_active = true`).Scan(&stats.ActivityCount)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM payments`).Scan(&stats.TotalIncome)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&stats.TotalExpenses)
	if err != nil {
		return nil, err
	}

	stats.AvailableBalance = stats.TotalIncome - stats.TotalExpenses
	return stats, nil
}

// GetActiveStudents returns active students sorted by name. The debtor report
// iterates this list, so report entries come out in name order.
func GetActiveStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, full_name, is_active, created_at, updated_at
			  FROM students WHERE is_active = true ORDER BY full_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.FullName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetActiveFeeActivities returns active activities that require a fee, the
// only ones a debtor report is computed for.
func GetActiveFeeActivities(db *sql.DB) ([]*models.Activity, error) {
	query := `SELECT id, name, date, requires_fee, fee_per_student, total_expected,
			  COALESCE(payment_deadline, date), description, is_active, created_at, updated_at
			  FROM activities
			  WHERE is_active = true AND requires_fee = true
			  ORDER BY date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		a := &models.Activity{}
		err := rows.Scan(
			&a.ID, &a.Name, &a.Date, &a.RequiresFee, &a.FeePerStudent, &a.TotalExpected,
			&a.PaymentDeadline, &a.Description, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// GetAllPayments returns every payment, without attachments or joins. The
// report math only needs student, activity and amount.
func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT id, student_id, activity_id, amount, paid_at FROM payments`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p := &models.Payment{}
		if err := rows.Scan(&p.ID, &p.StudentID, &p.ActivityID, &p.Amount, &p.PaidAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
