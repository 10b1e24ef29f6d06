package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// --- concrete argument vectors ----------------------------------------------
//

func TestTranslate_KnownVectors(t *testing.T) {
	cases := []struct {
		name   string
		action Action
		scopes []string
		want   []string
	}{
		{
			name:   "auth single scope",
			action: ActionAuth,
			scopes: []string{"baz"},
			want:   []string{"--client", "foo", "--tenant", "bar", "--resource", " ", "--scope", "baz"},
		},
		{
			name:   "auth two scopes",
			action: ActionAuth,
			scopes: []string{"baz", "quux"},
			want:   []string{"--client", "foo", "--tenant", "bar", "--resource", " ", "--scope", "baz", "--scope", "quux"},
		},
		{
			name:   "clear single scope",
			action: ActionClear,
			scopes: []string{"baz"},
			want:   []string{"--client", "foo", "--tenant", "bar", "--resource", " ", "--scope", "baz", "--clear"},
		},
		{
			name:   "clear two scopes",
			action: ActionClear,
			scopes: []string{"baz", "quux"},
			want:   []string{"--client", "foo", "--tenant", "bar", "--resource", " ", "--scope", "baz", "--scope", "quux", "--clear"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := New(tc.action, "foo", "bar", tc.scopes)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Translate(cmd))
		})
	}
}

//
// --- structural properties ---------------------------------------------------
//

func TestTranslate_FixedPrefix(t *testing.T) {
	for _, action := range Actions {
		t.Run(action.String(), func(t *testing.T) {
			cmd, err := New(action, "client-id", "tenant-id", []string{"s1", "s2", "s3"})
			require.NoError(t, err)

			args := Translate(cmd)
			require.GreaterOrEqual(t, len(args), 6)
			assert.Equal(t,
				[]string{"--client", "client-id", "--tenant", "tenant-id", "--resource", " "},
				args[:6])
		})
	}
}

func TestTranslate_ScopeOrderPreserved(t *testing.T) {
	scopes := []string{"zeta", "alpha", "alpha", "mid"}
	cmd, err := New(ActionAuth, "c", "t", scopes)
	require.NoError(t, err)

	args := Translate(cmd)
	// Scope pairs are a contiguous block right after the prefix, input order
	// intact (duplicates included).
	for i, scope := range scopes {
		assert.Equal(t, "--scope", args[6+2*i])
		assert.Equal(t, scope, args[7+2*i])
	}
}

func TestTranslate_Length(t *testing.T) {
	cases := []struct {
		name   string
		action Action
		n      int
	}{
		{"auth one scope", ActionAuth, 1},
		{"auth five scopes", ActionAuth, 5},
		{"clear one scope", ActionClear, 1},
		{"clear five scopes", ActionClear, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scopes := make([]string, tc.n)
			for i := range scopes {
				scopes[i] = "scope"
			}
			cmd, err := New(tc.action, "c", "t", scopes)
			require.NoError(t, err)

			want := 6 + 2*tc.n
			if tc.action == ActionClear {
				want++
			}
			assert.Len(t, Translate(cmd), want)
		})
	}
}

func TestTranslate_ClearMarker(t *testing.T) {
	clear, err := New(ActionClear, "c", "t", []string{"s"})
	require.NoError(t, err)
	args := Translate(clear)
	assert.Equal(t, "--clear", args[len(args)-1])

	auth, err := New(ActionAuth, "c", "t", []string{"s"})
	require.NoError(t, err)
	assert.NotContains(t, Translate(auth), "--clear")
}

func TestTranslate_Idempotent(t *testing.T) {
	cmd, err := New(ActionClear, "c", "t", []string{"s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, Translate(cmd), Translate(cmd))
}

// Every defined action must translate to a vector with the shared prefix;
// adding a new Action without a translation rule fails here.
func TestTranslate_AllActions(t *testing.T) {
	for _, action := range Actions {
		t.Run(action.String(), func(t *testing.T) {
			cmd, err := New(action, "c", "t", []string{"s"})
			require.NoError(t, err)

			args := Translate(cmd)
			require.NotEmpty(t, args)
			assert.Equal(t, "--client", args[0])
		})
	}
}
