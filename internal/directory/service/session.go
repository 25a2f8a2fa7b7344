package service

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/campusdir/internal/directory/domain"
	"github.com/aussiebroadwan/campusdir/internal/directory/store"
	"github.com/aussiebroadwan/campusdir/pkg/cryptox"
	"github.com/aussiebroadwan/campusdir/pkg/idx"
	"github.com/aussiebroadwan/campusdir/pkg/ratex"
	"github.com/aussiebroadwan/campusdir/pkg/slogx"
)

// DefaultSessionTTL bounds how long a session token stays valid without
// a fresh login.
const DefaultSessionTTL = 24 * time.Hour

// ProfileSeed carries the profile attributes synthesised at registration
// when the caller does not supply them.
type ProfileSeed struct {
	GraduationYear int
	Department     string
	Company        string
	Position       string
}

// ProfileDefaults produces placeholder profile attributes for a new user.
// Implementations must be deterministic over the user id so seeded fields
// are stable across restarts.
type ProfileDefaults func(userID string, role domain.Role) ProfileSeed

// SessionService owns credential registration and verification plus the
// session lifecycle. Sessions are keyed by opaque token, one per caller
// context; there is no global current-user slot.
type SessionService struct {
	Store store.Store

	// TTL for newly minted sessions. Zero means DefaultSessionTTL.
	TTL time.Duration

	// LoginLimiter throttles attempts per email. Optional.
	LoginLimiter *ratex.Limiter

	// Defaults fills profile attributes missing from registration.
	// Optional; defaultProfileSeed is used when nil.
	Defaults ProfileDefaults
}

// RegisterParams are the inputs to Register. Name, Email, Password and
// Role are required; the profile attributes are optional overrides for
// the generated placeholders.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role

	GraduationYear int
	Department     string
	Company        string
	Position       string
}

// Register creates a credential record and, for student/alumni roles, the
// matching profile row with the same id. Both writes happen in one store
// transaction so no reader ever observes the credential without its
// profile. On success a session is minted and the raw token returned
// alongside the stripped identity.
func (s *SessionService) Register(ctx context.Context, params RegisterParams) (domain.Identity, string, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(params.Name)
	email := normalizeEmail(params.Email)
	if name == "" || email == "" || params.Password == "" || !params.Role.Valid() {
		return domain.Identity{}, "", ErrValidation
	}

	passwordHash, err := cryptox.HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.Identity{}, "", err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         params.Role,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateEmail
			}
			return err
		}

		if !params.Role.HasProfile() {
			return nil
		}
		return s.createProfile(ctx, tx, user, params)
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			log.Warn("registration rejected: duplicate email", slog.String("email", email))
		} else {
			log.Error("registration failed", slog.Any("error", err))
		}
		return domain.Identity{}, "", err
	}

	token, err := s.mintSession(ctx, user.ID)
	if err != nil {
		return domain.Identity{}, "", err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)
	return user.Identity(), token, nil
}

// createProfile writes the role-specific profile row inside the
// registration transaction.
func (s *SessionService) createProfile(ctx context.Context, tx store.Tx, user domain.User, params RegisterParams) error {
	defaults := s.Defaults
	if defaults == nil {
		defaults = defaultProfileSeed
	}
	seed := defaults(user.ID, user.Role)

	if params.GraduationYear != 0 {
		seed.GraduationYear = params.GraduationYear
	}
	if params.Department != "" {
		seed.Department = params.Department
	}
	if params.Company != "" {
		seed.Company = params.Company
	}
	if params.Position != "" {
		seed.Position = params.Position
	}

	switch user.Role {
	case domain.RoleStudent:
		return tx.Students().CreateStudent(ctx, domain.StudentProfile{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			GraduationYear: seed.GraduationYear,
			Department:     seed.Department,
		})
	case domain.RoleAlumni:
		return tx.Alumni().CreateAlumnus(ctx, domain.AlumniProfile{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			GraduationYear: seed.GraduationYear,
			Department:     seed.Department,
			Company:        seed.Company,
			Position:       seed.Position,
		})
	}
	return nil
}

// Login verifies an email/password pair and mints a new session. A failed
// login never touches existing sessions.
func (s *SessionService) Login(ctx context.Context, email, password string) (domain.Identity, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.Identity{}, "", ErrInvalidCredentials
	}

	if s.LoginLimiter != nil && !s.LoginLimiter.Allow(email) {
		log.Warn("login rate limited", slog.String("email", email))
		return domain.Identity{}, "", ErrRateLimited
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login failed: unknown email", slog.String("email", email))
			return domain.Identity{}, "", ErrInvalidCredentials
		}
		return domain.Identity{}, "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login failed: wrong password", slog.String("user_id", user.ID))
			return domain.Identity{}, "", ErrInvalidCredentials
		}
		return domain.Identity{}, "", err
	}

	token, err := s.mintSession(ctx, user.ID)
	if err != nil {
		return domain.Identity{}, "", err
	}

	log.Debug("user logged in", slog.String("user_id", user.ID))
	return user.Identity(), token, nil
}

// Logout revokes the session behind the token. Unknown or already-revoked
// tokens are a no-op, so logout is idempotent.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Store.Sessions().RevokeSession(ctx, cryptox.FingerprintToken(token))
}

// Identity resolves a live session token to its authenticated identity.
func (s *SessionService) Identity(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, ErrInvalidSession
	}

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token), time.Now().UTC())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Identity{}, ErrInvalidSession
		}
		return domain.Identity{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Credential vanished underneath a live session.
			return domain.Identity{}, ErrInvalidSession
		}
		return domain.Identity{}, err
	}

	return user.Identity(), nil
}

// mintSession issues an opaque token, stores its fingerprint and returns
// the raw token. The raw value is never persisted.
func (s *SessionService) mintSession(ctx context.Context, userID string) (string, error) {
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	err = s.Store.Sessions().CreateSession(ctx, domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var (
	seedDepartments = []string{"Computer Science", "Engineering", "Business", "Arts"}
	seedCompanies   = []string{"Google", "Microsoft", "Amazon", "Apple", "Facebook"}
	seedPositions   = []string{"Software Engineer", "Product Manager", "Data Scientist", "Designer", "Marketing"}
)

// defaultProfileSeed derives placeholder attributes from the user id so the
// same user always gets the same values. Students graduate in the near
// future, alumni in the recent past.
func defaultProfileSeed(userID string, role domain.Role) ProfileSeed {
	h := fnv.New32a()
	h.Write([]byte(userID))
	n := int(h.Sum32())

	year := time.Now().UTC().Year()
	seed := ProfileSeed{
		Department: seedDepartments[n%len(seedDepartments)],
	}
	switch role {
	case domain.RoleStudent:
		seed.GraduationYear = year + n%4
	case domain.RoleAlumni:
		seed.GraduationYear = year - 1 - n%10
		seed.Company = seedCompanies[n%len(seedCompanies)]
		seed.Position = seedPositions[n%len(seedPositions)]
	}
	return seed
}
