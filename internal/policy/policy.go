// Package policy holds the single access table for the HTTP API and the
// browser pages. The API middleware and the page guards both read from it.
package policy

import (
	"net/http"
	"strings"

	"biodata-api/internal/models"
)

// Access is the requirement a route places on its caller.
type Access string

const (
	// Public routes need no token. On pages it also means guest-only:
	// an authenticated viewer is sent to the dashboard.
	Public Access = "public"
	// Protected routes need any authenticated caller.
	Protected Access = "protected"
	// UserOnly routes need an authenticated caller without the admin role.
	UserOnly Access = "user_only"
	// AdminOnly routes need an authenticated admin.
	AdminOnly Access = "admin_only"
)

const (
	LoginPage     = "/login"
	DashboardPage = "/dashboard"
)

// Rule binds a route pattern to its access requirement. Patterns use gin's
// ":param" segment syntax. Method is empty for page rules.
type Rule struct {
	Method     string `json:"method,omitempty"`
	Pattern    string `json:"pattern"`
	Access     Access `json:"access"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// APIRules lists every route the server registers.
var APIRules = []Rule{
	{Method: http.MethodGet, Pattern: "/health", Access: Public},
	{Method: http.MethodGet, Pattern: "/swagger/*any", Access: Public},
	{Method: http.MethodGet, Pattern: "/api/policy", Access: Public},

	{Method: http.MethodPost, Pattern: "/api/auth/register", Access: Public},
	{Method: http.MethodPost, Pattern: "/api/auth/login", Access: Public},
	{Method: http.MethodPost, Pattern: "/api/auth/logout", Access: Protected},
	{Method: http.MethodGet, Pattern: "/api/auth/me", Access: Protected},

	{Method: http.MethodGet, Pattern: "/api/biodata", Access: Protected},
	{Method: http.MethodPost, Pattern: "/api/biodata", Access: Protected},
	{Method: http.MethodGet, Pattern: "/api/biodata/:id", Access: Protected},
	{Method: http.MethodPut, Pattern: "/api/biodata/:id", Access: Protected},
	{Method: http.MethodDelete, Pattern: "/api/biodata/:id", Access: Protected},

	{Method: http.MethodGet, Pattern: "/api/admin/biodata", Access: AdminOnly},
	{Method: http.MethodGet, Pattern: "/api/admin/biodata/export", Access: AdminOnly},
	{Method: http.MethodGet, Pattern: "/api/admin/biodata/:id", Access: AdminOnly},
	{Method: http.MethodPut, Pattern: "/api/admin/biodata/:id", Access: AdminOnly},
	{Method: http.MethodDelete, Pattern: "/api/admin/biodata/:id", Access: AdminOnly},
}

// PageRules is the browser route table.
var PageRules = []Rule{
	{Pattern: "/", Access: Public, RedirectTo: DashboardPage},
	{Pattern: LoginPage, Access: Public},
	{Pattern: "/register", Access: Public},
	{Pattern: DashboardPage, Access: Protected},
	{Pattern: "/biodata/new", Access: UserOnly},
	{Pattern: "/biodata/edit/:id", Access: Protected},
	{Pattern: "/biodata", Access: Protected},
	{Pattern: "/admin/biodata", Access: AdminOnly},
}

// Viewer is whoever is asking: nil Role with Authenticated false is a guest.
type Viewer struct {
	Authenticated bool
	Role          models.Role
}

func (v Viewer) isAdmin() bool { return v.Authenticated && v.Role == models.RoleAdmin }

// Guest is the unauthenticated viewer.
var Guest = Viewer{}

// Decision is the outcome of a page guard.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// LookupAPI finds the rule for a registered route. ok is false for routes
// missing from the table; callers treat those as AdminOnly.
func LookupAPI(method, fullPath string) (Rule, bool) {
	for _, r := range APIRules {
		if r.Method == method && r.Pattern == fullPath {
			return r, true
		}
	}
	return Rule{Method: method, Pattern: fullPath, Access: AdminOnly}, false
}

// RequiresToken reports whether the access class needs an authenticated caller.
func (a Access) RequiresToken() bool {
	return a != Public
}

// Permits reports whether an authenticated viewer satisfies the requirement.
// Guests only satisfy Public.
func (a Access) Permits(v Viewer) bool {
	switch a {
	case Public:
		return true
	case Protected:
		return v.Authenticated
	case UserOnly:
		return v.Authenticated && !v.isAdmin()
	case AdminOnly:
		return v.isAdmin()
	default:
		return false
	}
}

// EvaluatePage applies the page table to path. Unknown paths are treated as
// Protected.
func EvaluatePage(v Viewer, path string) Decision {
	rule, ok := matchPage(path)
	if !ok {
		rule = Rule{Pattern: path, Access: Protected}
	}
	if rule.RedirectTo != "" {
		return Decision{RedirectTo: rule.RedirectTo}
	}

	switch {
	case rule.Access == Public:
		if v.Authenticated {
			return Decision{RedirectTo: DashboardPage}
		}
		return Decision{Allow: true}
	case !v.Authenticated:
		return Decision{RedirectTo: LoginPage}
	case rule.Access.Permits(v):
		return Decision{Allow: true}
	default:
		return Decision{RedirectTo: DashboardPage}
	}
}

func matchPage(path string) (Rule, bool) {
	for _, r := range PageRules {
		if matchPattern(r.Pattern, path) {
			return r, true
		}
	}
	return Rule{}, false
}

// matchPattern matches a concrete path against a pattern with ":param"
// segments. Trailing slashes are ignored.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := splitPath(pattern)
	xs := splitPath(path)
	if len(ps) != len(xs) {
		return false
	}
	for i, seg := range ps {
		if strings.HasPrefix(seg, ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if seg != xs[i] {
			return false
		}
	}
	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
