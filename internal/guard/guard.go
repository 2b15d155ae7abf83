// Package guard decides whether a view may render for the current session.
// It is pure routing logic: no side effects beyond the decision it returns.
package guard

import (
	"github.com/sugarstack/sweetshop-cli/internal/models"
	"github.com/sugarstack/sweetshop-cli/internal/session"
)

// View identifies a navigable screen.
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewCatalog
	ViewAddSweet
	ViewEditSweet
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewRegister:
		return "register"
	case ViewCatalog:
		return "catalog"
	case ViewAddSweet:
		return "add-sweet"
	case ViewEditSweet:
		return "edit-sweet"
	default:
		return "unknown"
	}
}

// RequiresSession reports whether the view is only reachable when logged in.
func (v View) RequiresSession() bool {
	return v != ViewLogin && v != ViewRegister
}

// RequiresAdmin reports whether the view mutates the catalog and therefore
// needs the elevated role.
func (v View) RequiresAdmin() bool {
	return v == ViewAddSweet || v == ViewEditSweet
}

// Decision is the outcome of evaluating a navigation.
type Decision int

const (
	// ShowLoading renders the neutral loading indicator and nothing else.
	ShowLoading Decision = iota
	// Allow renders the requested view.
	Allow
	// RedirectLogin sends the navigation to the login view.
	RedirectLogin
	// RedirectCatalog sends the navigation to the default authenticated view.
	RedirectCatalog
)

// Evaluate gates a navigation to target given the session state and identity.
// While the session probe is pending nothing but the loading indicator may
// render. Unauthenticated users only reach login/register; authenticated users
// are bounced off those back to the catalog, and off admin views they lack the
// role for.
func Evaluate(state session.State, identity models.Identity, target View) Decision {
	if state == session.StateLoading {
		return ShowLoading
	}

	authenticated := state == session.StateAuthenticated

	if !target.RequiresSession() {
		if authenticated {
			return RedirectCatalog
		}
		return Allow
	}

	if !authenticated {
		return RedirectLogin
	}
	if target.RequiresAdmin() && !identity.IsAdmin() {
		return RedirectCatalog
	}
	return Allow
}
