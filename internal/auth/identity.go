package auth

// Identity is the account behind an authenticated session, as shown on
// the dashboard. It carries no password material.
type Identity struct {
	Email string
	Name  string
}
