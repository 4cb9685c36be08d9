package theme

import "testing"

func TestByNameFallsBackToFlexokiDark(t *testing.T) {
	if got := ByName("does-not-exist").Name; got != "flexoki-dark" {
		t.Fatalf("ByName fallback = %q, want flexoki-dark", got)
	}
	if got := ByName("tokyo-night").Name; got != "tokyo-night" {
		t.Fatalf("ByName(tokyo-night) = %q", got)
	}
}

func TestToggleRoundTrip(t *testing.T) {
	defer SetActive("flexoki-dark")

	SetActive("tokyo-night")
	if got := Toggle("tokyo-night"); got.Name != "flexoki-light" {
		t.Fatalf("dark -> %q, want flexoki-light", got.Name)
	}
	if got := Toggle("tokyo-night"); got.Name != "tokyo-night" {
		t.Fatalf("light -> %q, want tokyo-night", got.Name)
	}

	// A light preference still toggles back to a dark theme.
	SetActive("flexoki-light")
	if got := Toggle("flexoki-light"); !got.Dark {
		t.Fatalf("light with light preference -> %q, want a dark theme", got.Name)
	}
}

func TestNamesMatchesAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() has %d entries, All has %d", len(names), len(All))
	}
	for i, n := range names {
		if All[i].Name != n {
			t.Fatalf("Names()[%d] = %q, want %q", i, n, All[i].Name)
		}
	}
}
