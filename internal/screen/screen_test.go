package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name          string
		authenticated bool
		choice        Screen
		want          Screen
	}{
		{"anonymous login", false, Login, Login},
		{"anonymous register", false, Register, Register},
		{"anonymous cannot reach dashboard", false, Dashboard, Login},
		{"anonymous unknown choice", false, Screen(9), Login},
		{"authenticated login choice", true, Login, Dashboard},
		{"authenticated register choice", true, Register, Dashboard},
		{"authenticated dashboard", true, Dashboard, Dashboard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.authenticated, tc.choice))
		})
	}
}

func TestMenu(t *testing.T) {
	assert.Equal(t, []Screen{Login, Register}, Menu(false))
	assert.Equal(t, []Screen{Dashboard}, Menu(true))
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []Screen{Login, Register, Dashboard} {
		got, ok := Parse(s.Slug())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}

	got, ok := Parse("settings")
	assert.False(t, ok)
	assert.Equal(t, Initial, got)
	assert.Equal(t, Login, Initial)
	assert.Equal(t, "Screen(5)", Screen(5).String())
}
