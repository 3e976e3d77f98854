package bloqs

import (
	"fmt"
	"slices"
	"testing"
)

func keysOf(t *Tracker) []Key {
	var keys []Key
	for r := range t.All() {
		keys = append(keys, r.Key())
	}
	return keys
}

func TestTracker_AddDeduplicates(t *testing.T) {
	t.Parallel()

	first := MustScript(ScriptDef{Name: "plotly"})
	other := MustScript(ScriptDef{Name: "d3"})
	again := MustScript(ScriptDef{Name: "plotly", Uncompressed: true})

	tr := NewTracker()
	tr.Add(first, other)
	tr.Add(again)
	tr.Add(first)

	if tr.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tr.Len())
	}

	got := tr.Resources()
	if got[0] != Resource(first) {
		t.Error("first registration should keep its position and instance")
	}
	if got[1] != Resource(other) {
		t.Error("second resource out of order")
	}
}

func TestTracker_PreservesOrder(t *testing.T) {
	t.Parallel()

	names := []string{"zeta", "alpha", "mid", "beta", "omega"}

	tr := NewTracker()
	var want []Key
	for _, n := range names {
		s := MustScript(ScriptDef{Name: n})
		tr.Add(s)
		want = append(want, s.Key())
	}

	if got := keysOf(tr); !slices.Equal(got, want) {
		t.Errorf("iteration order = %v, want %v", got, want)
	}
}

func TestTracker_KindIsPartOfIdentity(t *testing.T) {
	t.Parallel()

	tr := NewTracker(
		MustScript(ScriptDef{Name: "widget"}),
		MustStyle(StyleDef{Name: "widget"}),
	)

	if tr.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (script and style with same name are distinct)", tr.Len())
	}
	if !tr.Contains(Key{Kind: KindStyle, Name: "widget"}) {
		t.Error("Contains(style:widget) = false")
	}
	if tr.Contains(Key{Kind: KindStyle, Name: "other"}) {
		t.Error("Contains(style:other) = true")
	}
}

func TestTracker_Any(t *testing.T) {
	t.Parallel()

	empty := NewTracker()
	if empty.Any() {
		t.Error("empty.Any() = true")
	}
	if AnyOf[*Script](empty) {
		t.Error("AnyOf[*Script](empty) = true")
	}

	styles := NewTracker(MustStyle(StyleDef{Inline: "p{}"}))
	if !styles.Any() {
		t.Error("styles.Any() = false")
	}
	if AnyOf[*Script](styles) {
		t.Error("AnyOf[*Script](styles only) = true")
	}
	if !AnyOf[*Style](styles) {
		t.Error("AnyOf[*Style](styles) = false")
	}

	styles.Add(MustScript(ScriptDef{Inline: "x()"}))
	if !AnyOf[*Script](styles) {
		t.Error("AnyOf[*Script] after adding script = false")
	}
}

func TestTracker_AnyFunc(t *testing.T) {
	t.Parallel()

	tr := NewTracker(MustScript(ScriptDef{Name: "a"}), MustScript(ScriptDef{Name: "b"}))

	if !tr.AnyFunc(nil) {
		t.Error("AnyFunc(nil) on non-empty tracker = false")
	}
	if !tr.AnyFunc(func(r Resource) bool { return r.Key().Name == "b" }) {
		t.Error("AnyFunc(name==b) = false")
	}
	if tr.AnyFunc(func(r Resource) bool { return r.Key().Kind == KindStyle }) {
		t.Error("AnyFunc(style) = true")
	}
}

func TestTracker_RepeatedPasses(t *testing.T) {
	t.Parallel()

	tr := NewTracker()
	for i := range 4 {
		tr.Add(MustScript(ScriptDef{Name: fmt.Sprintf("s%d", i)}))
	}

	first := keysOf(tr)
	second := keysOf(tr)
	if !slices.Equal(first, second) {
		t.Errorf("passes differ: %v vs %v", first, second)
	}

	// Early break does not affect the next pass.
	for range tr.All() {
		break
	}
	if got := keysOf(tr); len(got) != 4 {
		t.Errorf("pass after early break yielded %d resources, want 4", len(got))
	}
}

func TestTracker_ZeroValueAndNil(t *testing.T) {
	t.Parallel()

	var tr Tracker
	tr.Add(nil, MustStyle(StyleDef{Name: "x"}), nil)

	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}
