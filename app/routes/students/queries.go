package students

import (
	"database/sql"

	"github.com/mattmosz/APP-TESO/app/models"
)

func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, full_name, is_active, created_at, updated_at
			  FROM students ORDER BY full_name ASC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{} // empty slice for non-null JSON
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.FullName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, full_name, is_active, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&s.ID, &s.FullName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (full_name, is_active)
			  VALUES ($1, $2)
			  RETURNING id, created_at, updated_at`

	return db.QueryRow(query, s.FullName, s.IsActive).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students SET full_name = $1, is_active = $2, updated_at = NOW()
			  WHERE id = $3
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, s.FullName, s.IsActive, s.ID).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// DeactivateStudent soft-deletes a student. Historical payments stay on the
// books so income totals do not shift retroactively.
func DeactivateStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE students SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
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
