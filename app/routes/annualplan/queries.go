package annualplan

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

// The annual_plan table has a single slot (slot = 1, enforced by a CHECK
// constraint), so replacing the document is an upsert instead of the old
// clear-collection-then-insert dance.

func GetAnnualPlan(db *sql.DB) (*models.AnnualPlan, error) {
	plan := &models.AnnualPlan{}
	query := `SELECT filename, mimetype, data, uploaded_at FROM annual_plan WHERE slot = 1`

	err := db.QueryRow(query).Scan(&plan.Filename, &plan.Mimetype, &plan.Base64Data, &plan.UploadedAt)
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func ReplaceAnnualPlan(db *sql.DB, plan *models.AnnualPlan) error {
	query := `INSERT INTO annual_plan (slot, filename, mimetype, data, uploaded_at)
			  VALUES (1, $1, $2, $3, NOW())
			  ON CONFLICT (slot) DO UPDATE
			  SET filename = EXCLUDED.filename,
			      mimetype = EXCLUDED.mimetype,
			      data = EXCLUDED.data,
			      uploaded_at = EXCLUDED.uploaded_at
			  RETURNING uploaded_at`

	return db.QueryRow(query, plan.Filename, plan.Mimetype, plan.Base64Data).Scan(&plan.UploadedAt)
}

// DeleteAnnualPlan is idempotent; deleting an absent plan is not an error.
func DeleteAnnualPlan(db *sql.DB) error {
	_, err := db.Exec(`DELETE FROM annual_plan WHERE slot = 1`)
	return err
}
