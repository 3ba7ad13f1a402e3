package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema and applies incremental updates. Every
// statement is idempotent so the runner is safe to execute on every startup.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	tables := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			display_name VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'admin',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			full_name VARCHAR(255) NOT NULL,
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			requires_fee BOOLEAN NOT NULL DEFAULT true,
			fee_per_student NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (fee_per_student >= 0),
			total_expected NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (total_expected >= 0),
			payment_deadline DATE,
			description TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			activity_id UUID NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			paid_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			notes TEXT NOT NULL DEFAULT '',
			receipt_filename VARCHAR(255),
			receipt_mimetype VARCHAR(100),
			receipt_data TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			amount NUMERIC(10,2) NOT NULL CHECK (amount >= 0),
			date TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			activity_id UUID REFERENCES activities(id) ON DELETE SET NULL,
			description TEXT NOT NULL DEFAULT '',
			invoice_filename VARCHAR(255),
			invoice_mimetype VARCHAR(100),
			invoice_data TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS annual_plan (
			slot INT PRIMARY KEY DEFAULT 1 CHECK (slot = 1),
			filename VARCHAR(255) NOT NULL,
			mimetype VARCHAR(100) NOT NULL,
			data TEXT NOT NULL,
			uploaded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range tables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create table: %v", err)
			return err
		}
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_activity_id ON payments(activity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_paid_at ON payments(paid_at)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_activity_id ON expenses(activity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create index: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	if err := addRequiresFeeColumn(db); err != nil {
		return err
	}
	if err := dropUniquePaymentConstraint(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// addRequiresFeeColumn backfills the requires_fee flag on databases created
// before fee-free activities existed.
func addRequiresFeeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'activities'
				AND column_name = 'requires_fee'
			) THEN
				ALTER TABLE activities ADD COLUMN requires_fee BOOLEAN NOT NULL DEFAULT true;
				RAISE NOTICE 'Added requires_fee column to activities';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for requires_fee column: %v", err)
		return err
	}
	return nil
}

// dropUniquePaymentConstraint removes the old one-payment-per-student-per-
// activity index so partial payments can accumulate toward a fee.
func dropUniquePaymentConstraint(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF EXISTS (
				SELECT 1
				FROM pg_indexes
				WHERE tablename = 'payments'
				AND indexname = 'idx_payments_student_activity_unique'
			) THEN
				DROP INDEX idx_payments_student_activity_unique;
				RAISE NOTICE 'Dropped unique payment index from payments';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for payments unique index: %v", err)
		return err
	}
	return nil
}
