package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the two application tables when they do not exist
// yet. The count columns on bookings are nullable on purpose: the signup
// flow records an enrolment booking with no counts at all.  The login
// column uses a binary collation so login names are unique and matched
// case-sensitively, as the site has always treated them.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS accounts (
	id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	login    VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
	password VARCHAR(255)    NOT NULL,
	member   TINYINT         NOT NULL DEFAULT 0,
	UNIQUE KEY uq_accounts_login (login)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`)
	if err != nil {
		return fmt.Errorf("create accounts table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS bookings (
	id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
	account_id BIGINT UNSIGNED NOT NULL,
	adult      INT NULL,
	student    INT NULL,
	child      INT NULL,
	infant     INT NULL,
	KEY idx_bookings_account (account_id),
	CONSTRAINT fk_bookings_account FOREIGN KEY (account_id) REFERENCES accounts (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`)
	if err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	return nil
}
