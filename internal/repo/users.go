package repo

import (
	"context"

	"github.com/rs/zerolog"

	"cafe-pos/internal/db"
)

// Users reads and writes the Users table. Credentials are stored and matched
// as given; duplicate emails are permitted. Failures are logged and come back
// as false.
type Users struct {
	Store *db.Store
	Log   zerolog.Logger
}

// InsertUser inserts unconditionally and reports whether the row was written.
func (r *Users) InsertUser(ctx context.Context, email, password string) bool {
	h, err := r.Store.Open(ctx)
	if err != nil {
		r.Log.Error().Err(err).Msg("open store failed")
		return false
	}
	defer func() { _ = h.Close() }()

	if _, err := h.ExecContext(ctx,
		`INSERT INTO Users (email, password) VALUES (?, ?)`, email, password,
	); err != nil {
		r.Log.Error().Err(err).Msg("insert user failed")
		return false
	}
	return true
}

func (r *Users) EmailExists(ctx context.Context, email string) bool {
	return r.exists(ctx, `SELECT COUNT(*) FROM Users WHERE email = ?`, email)
}

// CredentialsMatch reports whether a row matches both fields exactly,
// case-sensitive.
func (r *Users) CredentialsMatch(ctx context.Context, email, password string) bool {
	return r.exists(ctx, `SELECT COUNT(*) FROM Users WHERE email = ? AND password = ?`, email, password)
}

func (r *Users) exists(ctx context.Context, query string, args ...any) bool {
	h, err := r.Store.Open(ctx)
	if err != nil {
		r.Log.Error().Err(err).Msg("open store failed")
		return false
	}
	defer func() { _ = h.Close() }()

	var n int
	if err := h.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		r.Log.Error().Err(err).Msg("user lookup failed")
		return false
	}
	return n > 0
}
