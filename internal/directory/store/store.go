package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// anything else tomorrow) implement this. It exposes sub-repositories to
// keep concerns tidy and testable, and a Tx-scoped Store for multi-table
// writes that must be atomic (registration is the canonical case: the
// credential insert and the profile insert are never observed apart).
type Store interface {
	Users() Users
	Sessions() Sessions
	Students() Students
	Alumni() Alumni
	Events() Events
	Meta() Meta

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a credential record by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. Email must already be
	// lower-cased by the caller.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new credential record (id is provided by the
	// app via ULID). Returns ErrAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password_hash (argon2) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Sessions interface {
	// CreateSession stores a new session record.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session for a token fingerprint,
	// provided it is neither revoked nor expired at the given instant.
	GetSessionByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Session, error)

	// RevokeSession flips revoked=1 for the token fingerprint. Revoking an
	// unknown or already-revoked session is a no-op.
	RevokeSession(ctx context.Context, hash string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context, now time.Time) error
}

type Students interface {
	// GetStudent returns a student profile by id.
	GetStudent(ctx context.Context, id string) (domain.StudentProfile, error)

	// CreateStudent inserts a student profile row.
	CreateStudent(ctx context.Context, p domain.StudentProfile) error

	// DeleteStudent removes the row if present; absent ids are a no-op.
	DeleteStudent(ctx context.Context, id string) error

	// ListStudents returns all student profiles in insertion order.
	ListStudents(ctx context.Context) ([]domain.StudentProfile, error)

	// IsEmpty returns true if there are no student profiles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Alumni interface {
	// GetAlumnus returns an alumni profile by id.
	GetAlumnus(ctx context.Context, id string) (domain.AlumniProfile, error)

	// CreateAlumnus inserts an alumni profile row.
	CreateAlumnus(ctx context.Context, p domain.AlumniProfile) error

	// UpdateAlumnus rewrites the mutable fields (company, position,
	// achievements) and bumps updated_at.
	UpdateAlumnus(ctx context.Context, p domain.AlumniProfile) error

	// DeleteAlumnus removes the row if present; absent ids are a no-op.
	DeleteAlumnus(ctx context.Context, id string) error

	// ListAlumni returns all alumni profiles in insertion order.
	ListAlumni(ctx context.Context) ([]domain.AlumniProfile, error)

	// ListNotableAlumni returns the notable subset, preserving table order.
	ListNotableAlumni(ctx context.Context) ([]domain.AlumniProfile, error)

	// IsEmpty returns true if there are no alumni profiles.
	IsEmpty(ctx context.Context) (bool, error)
}

type Events interface {
	// GetEvent returns an event by id.
	GetEvent(ctx context.Context, id string) (domain.Event, error)

	// CreateEvent inserts an event row.
	CreateEvent(ctx context.Context, e domain.Event) error

	// DeleteEvent removes the row if present; absent ids are a no-op.
	DeleteEvent(ctx context.Context, id string) error

	// ListEvents returns all events in insertion order.
	ListEvents(ctx context.Context) ([]domain.Event, error)

	// IsEmpty returns true if there are no events.
	IsEmpty(ctx context.Context) (bool, error)
}

// Meta is a small key/value table for process markers, e.g. the
// "initialized" flag that gates demo seeding.
type Meta interface {
	// GetMeta returns the value for key or ErrNotFound.
	GetMeta(ctx context.Context, key string) (string, error)

	// SetMeta upserts a key/value pair.
	SetMeta(ctx context.Context, key, value string) error
}
