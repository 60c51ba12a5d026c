// Package names provides the name-supplier capability consumed by the
// population generator. A supplier only needs to produce plausible names;
// uniqueness is enforced by the caller's reject-and-retry loop.
package names

// Scope selects the style of name to generate.
type Scope string

const (
	ScopeLeague Scope = "league"
	ScopeTeam   Scope = "team"
	ScopePlayer Scope = "player"
)

// Supplier produces a candidate name for the given scope. Repeated calls
// may return duplicates; callers needing uniqueness must retry.
type Supplier interface {
	Next(scope Scope) string
}
