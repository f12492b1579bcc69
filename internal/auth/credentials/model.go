package credentials

import "time"

// Account is a registered (name, email, password) record. Email is the
// unique key. Password holds whatever the configured matcher prepared.
type Account struct {
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}
