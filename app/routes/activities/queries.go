package activities

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

const activityColumns = `id, name, date, requires_fee, fee_per_student, total_expected,
	COALESCE(payment_deadline, date), description, is_active, created_at, updated_at`

func scanActivity(row interface{ Scan(...interface{}) error }, a *models.Activity) error {
	return row.Scan(
		&a.ID, &a.Name, &a.Date, &a.RequiresFee, &a.FeePerStudent, &a.TotalExpected,
		&a.PaymentDeadline, &a.Description, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
}

func GetAllActivities(db *sql.DB) ([]*models.Activity, error) {
	rows, err := db.Query(`SELECT ` + activityColumns + ` FROM activities ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []*models.Activity{} // empty slice for non-null JSON
	for rows.Next() {
		a := &models.Activity{}
		if err := scanActivity(rows, a); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

func GetActivityByID(db *sql.DB, id string) (*models.Activity, error) {
	a := &models.Activity{}
	err := scanActivity(db.QueryRow(`SELECT `+activityColumns+` FROM activities WHERE id = $1`, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func CreateActivity(db *sql.DB, a *models.Activity) error {
	query := `INSERT INTO activities (name, date, requires_fee, fee_per_student, total_expected,
			  payment_deadline, description, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		a.Name, a.Date, a.RequiresFee, a.FeePerStudent, a.TotalExpected,
		a.PaymentDeadline, a.Description, a.IsActive,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func UpdateActivity(db *sql.DB, a *models.Activity) error {
	query := `UPDATE activities SET name = $1, date = $2, requires_fee = $3, fee_per_student = $4,
			  total_expected = $5, payment_deadline = $6, description = $7, is_active = $8,
			  updated_at = NOW()
			  WHERE id = $9
			  RETURNING created_at, updated_at`

	return db.QueryRow(query,
		a.Name, a.Date, a.RequiresFee, a.FeePerStudent, a.TotalExpected,
		a.PaymentDeadline, a.Description, a.IsActive, a.ID,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}

// DeleteActivity removes the activity and, through the FK cascade, its
// payments. Expenses that referenced it keep their rows with a null activity.
func DeleteActivity(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
