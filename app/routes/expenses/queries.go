package expenses

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

const expenseSelect = `SELECT e.id, e.name, e.amount, e.date, e.activity_id, e.description,
	e.invoice_filename, e.invoice_mimetype, e.invoice_data,
	e.created_at, e.updated_at, a.name
	FROM expenses e
	LEFT JOIN activities a ON e.activity_id = a.id`

func scanExpenseRow(rows *sql.Rows) (*models.Expense, error) {
	e := &models.Expense{}
	var activityID, activityName sql.NullString
	var filename, mimetype, data sql.NullString
	err := rows.Scan(
		&e.ID, &e.Name, &e.Amount, &e.Date, &activityID, &e.Description,
		&filename, &mimetype, &data,
		&e.CreatedAt, &e.UpdatedAt, &activityName,
	)
	if err != nil {
		return nil, err
	}
	if activityID.Valid {
		e.ActivityID = &activityID.String
		e.ActivityName = activityName.String
	}
	if filename.Valid {
		e.Invoice = &models.Attachment{
			Filename:   filename.String,
			Mimetype:   mimetype.String,
			Base64Data: data.String,
		}
	}
	return e, nil
}

func queryExpenses(db *sql.DB, query string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // empty slice for non-null JSON
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetAllExpenses(db *sql.DB) ([]*models.Expense, error) {
	return queryExpenses(db, expenseSelect+` ORDER BY e.date DESC`)
}

func GetExpenseByID(db *sql.DB, id string) (*models.Expense, error) {
	expenses, err := queryExpenses(db, expenseSelect+` WHERE e.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, sql.ErrNoRows
	}
	return expenses[0], nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	var filename, mimetype, data interface{}
	if e.Invoice != nil {
		filename, mimetype, data = e.Invoice.Filename, e.Invoice.Mimetype, e.Invoice.Base64Data
	}

	query := `INSERT INTO expenses (name, amount, date, activity_id, description,
			  invoice_filename, invoice_mimetype, invoice_data)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query,
		e.Name, e.Amount, e.Date, e.ActivityID, e.Description,
		filename, mimetype, data,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func UpdateExpense(db *sql.DB, e *models.Expense) error {
	var filename, mimetype, data interface{}
	if e.Invoice != nil {
		filename, mimetype, data = e.Invoice.Filename, e.Invoice.Mimetype, e.Invoice.Base64Data
	}

	query := `UPDATE expenses SET name = $1, amount = $2, date = $3, activity_id = $4,
			  description = $5, invoice_filename = $6, invoice_mimetype = $7, invoice_data = $8,
			  updated_at = NOW()
			  WHERE id = $9
			  RETURNING created_at, updated_at`

	return db.QueryRow(query,
		e.Name, e.Amount, e.Date, e.ActivityID, e.Description,
		filename, mimetype, data, e.ID,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func DeleteExpense(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM expenses WHERE id = $1`, id)
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
