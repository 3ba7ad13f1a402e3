package payments

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

const paymentSelect = `SELECT p.id, p.student_id, p.activity_id, p.amount, p.paid_at, p.notes,
	p.receipt_filename, p.receipt_mimetype, p.receipt_data,
	p.created_at, p.updated_at,
	s.full_name, a.name, a.fee_per_student
	FROM payments p
	JOIN students s ON p.student_id = s.id
	JOIN activities a ON p.activity_id = a.id`

func scanPaymentRow(rows *sql.Rows) (*models.Payment, error) {
	p := &models.Payment{}
	var filename, mimetype, data sql.NullString
	err := rows.Scan(
		&p.ID, &p.StudentID, &p.ActivityID, &p.Amount, &p.PaidAt, &p.Notes,
		&filename, &mimetype, &data,
		&p.CreatedAt, &p.UpdatedAt,
		&p.StudentName, &p.ActivityName, &p.FeePerStudent,
	)
	if err != nil {
		return nil, err
	}
	if filename.Valid {
		p.Receipt = &models.Attachment{
			Filename:   filename.String,
			Mimetype:   mimetype.String,
			Base64Data: data.String,
		}
	}
	return p, nil
}

func queryPayments(db *sql.DB, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{} // empty slice for non-null JSON
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	return queryPayments(db, paymentSelect+` ORDER BY p.paid_at DESC`)
}

func GetPaymentsByActivity(db *sql.DB, activityID string) ([]*models.Payment, error) {
	return queryPayments(db, paymentSelect+` WHERE p.activity_id = $1 ORDER BY p.paid_at DESC`, activityID)
}

func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	return queryPayments(db, paymentSelect+` WHERE p.student_id = $1 ORDER BY p.paid_at DESC`, studentID)
}

func GetPaymentByID(db *sql.DB, id string) (*models.Payment, error) {
	payments, err := queryPayments(db, paymentSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, sql.ErrNoRows
	}
	return payments[0], nil
}

func CreatePayment(db *sql.DB, p *models.Payment) error {
	var filename, mimetype, data interface{}
	if p.Receipt != nil {
		filename, mimetype, data = p.Receipt.Filename, p.Receipt.Mimetype, p.Receipt.Base64Data
	}

	query := `INSERT INTO payments (student_id, activity_id, amount, paid_at, notes,
			  receipt_filename, receipt_mimetype, receipt_data)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		p.StudentID, p.ActivityID, p.Amount, p.PaidAt, p.Notes,
		filename, mimetype, data,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func UpdatePayment(db *sql.DB, p *models.Payment) error {
	var filename, mimetype, data interface{}
	if p.Receipt != nil {
		filename, mimetype, data = p.Receipt.Filename, p.Receipt.Mimetype, p.Receipt.Base64Data
	}

	query := `UPDATE payments SET student_id = $1, activity_id = $2, amount = $3, paid_at = $4,
			  notes = $5, receipt_filename = $6, receipt_mimetype = $7, receipt_data = $8,
			  updated_at = NOW()
			  WHERE id = $9
			  RETURNING created_at, updated_at`

	return db.QueryRow(query,
		p.StudentID, p.ActivityID, p.Amount, p.PaidAt, p.Notes,
		filename, mimetype, data, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func DeletePayment(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM payments WHERE id = $1`, id)
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
