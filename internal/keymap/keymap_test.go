//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestAll_EveryActionBound(t *testing.T) {
	actions := []Action{
		ActionQuit, ActionMoveUp, ActionMoveDown, ActionSelect,
		ActionPlayPause, ActionStop, ActionVolumeDown, ActionVolumeUp,
	}
	r := NewResolver(All)
	for _, a := range actions {
		bound := false
		for _, b := range All {
			for _, k := range b.Keys {
				if b.Action == a && r.Resolve(k) == a {
					bound = true
				}
			}
		}
		if !bound {
			t.Errorf("action %q has no keys", a)
		}
	}
}

func TestAll_NoKeyBoundTwice(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	km := NewKeyMap(All)

	got := km.ShortHelp()
	if len(got) != len(All) {
		t.Fatalf("ShortHelp() returned %d bindings, want %d", len(got), len(All))
	}
	for i, b := range got {
		if b.Help().Key != All[i].Help {
			t.Errorf("binding %d help key = %q, want %q", i, b.Help().Key, All[i].Help)
		}
		for _, k := range All[i].Keys {
			if !key.Matches(fakeKey(k), b) {
				t.Errorf("binding %d does not match %q", i, k)
			}
		}
	}

	full := km.FullHelp()
	if len(full) != 1 || len(full[0]) != len(All) {
		t.Errorf("FullHelp() shape = %v, want one row of %d", len(full), len(All))
	}
}

type fakeKey string

func (k fakeKey) String() string { return string(k) }
