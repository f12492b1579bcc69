// Package screen picks which of the three views a browser sees.
package screen

import "fmt"

type Screen int

const (
	Login Screen = iota
	Register
	Dashboard
)

// Initial is the screen shown to a new browser.
const Initial = Login

func (s Screen) String() string {
	switch s {
	case Login:
		return "Login"
	case Register:
		return "Register"
	case Dashboard:
		return "Dashboard"
	default:
		return fmt.Sprintf("Screen(%d)", int(s))
	}
}

// Slug is the lowercase menu value used in URLs.
func (s Screen) Slug() string {
	switch s {
	case Login:
		return "login"
	case Register:
		return "register"
	case Dashboard:
		return "dashboard"
	default:
		return ""
	}
}

// Parse resolves a menu value.
func Parse(slug string) (Screen, bool) {
	switch slug {
	case "login":
		return Login, true
	case "register":
		return Register, true
	case "dashboard":
		return Dashboard, true
	default:
		return Initial, false
	}
}

// Menu returns the sidebar entries for the authentication state.
func Menu(authenticated bool) []Screen {
	if authenticated {
		return []Screen{Dashboard}
	}
	return []Screen{Login, Register}
}

// Resolve returns the screen to render. An authenticated browser always
// lands on the Dashboard; an anonymous one only reaches Login or Register.
func Resolve(authenticated bool, choice Screen) Screen {
	if authenticated {
		return Dashboard
	}

	switch choice {
	case Login, Register:
		return choice
	case Dashboard:
		return Login
	default:
		return Initial
	}
}
