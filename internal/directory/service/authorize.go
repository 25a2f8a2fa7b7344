package service

import "github.com/aussiebroadwan/campusdir/internal/directory/domain"

// DecisionKind enumerates the outcomes of an authorization check.
type DecisionKind int

const (
	// DecisionAllow grants access to the requested view.
	DecisionAllow DecisionKind = iota

	// DecisionRedirectLogin sends an unauthenticated (or unrecognisable)
	// caller to the login page.
	DecisionRedirectLogin

	// DecisionRedirectDashboard sends an authenticated caller without the
	// required role to their own dashboard.
	DecisionRedirectDashboard
)

// Decision is the result of Authorize. Role is set only for
// DecisionRedirectDashboard and names the caller's own role.
type Decision struct {
	Kind DecisionKind
	Role domain.Role
}

// Allowed reports whether the caller may proceed.
func (d Decision) Allowed() bool { return d.Kind == DecisionAllow }

// RedirectPath maps a non-Allow decision onto the route the presentation
// layer should navigate to. Allow has no redirect and returns "".
func (d Decision) RedirectPath() string {
	switch d.Kind {
	case DecisionRedirectLogin:
		return "/"
	case DecisionRedirectDashboard:
		switch d.Role {
		case domain.RoleStudent:
			return "/student-dashboard"
		case domain.RoleAlumni:
			return "/alumni-dashboard"
		case domain.RoleDepartment:
			return "/department-dashboard"
		}
	}
	return ""
}

// Authorize decides whether an identity may access a view restricted to
// the required roles. It is pure and total: every (identity, required)
// pair lands on exactly one decision.
//
//  1. No identity: redirect to login.
//  2. Identity holds one of the required roles: allow.
//  3. Identity holds another valid role: redirect to its own dashboard.
//  4. Identity carries an unknown role value: treat as unauthenticated
//     rather than rendering nothing.
func Authorize(identity *domain.Identity, required ...domain.Role) Decision {
	if identity == nil {
		return Decision{Kind: DecisionRedirectLogin}
	}

	for _, role := range required {
		if identity.Role == role {
			return Decision{Kind: DecisionAllow}
		}
	}

	if identity.Role.Valid() {
		return Decision{Kind: DecisionRedirectDashboard, Role: identity.Role}
	}

	return Decision{Kind: DecisionRedirectLogin}
}
