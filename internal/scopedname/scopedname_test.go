package scopedname

import "testing"

func TestLocalAndScopeName(t *testing.T) {
	n := New(
		Component{"std", Namespace},
		Component{"vector", Class},
		Component{"push_back", None},
	)
	if got, want := n.LocalName(), "push_back"; got != want {
		t.Errorf("LocalName() = %q, want %q", got, want)
	}
	if got, want := n.ScopeName().String(), "std::vector"; got != want {
		t.Errorf("ScopeName() = %q, want %q", got, want)
	}
	if got, want := n.String(), "std::vector::push_back"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIsConstructor(t *testing.T) {
	ctor := New(Component{"Widget", Class}, Component{"Widget", None})
	if !ctor.IsConstructor() {
		t.Errorf("expected Widget::Widget to be a constructor name")
	}
	notCtor := New(Component{"Widget", Class}, Component{"Resize", None})
	if notCtor.IsConstructor() {
		t.Errorf("expected Widget::Resize not to be a constructor name")
	}
}

func TestEqualAndCompare(t *testing.T) {
	a := New(Component{"A", Namespace}, Component{"B", None})
	b := New(Component{"A", Namespace}, Component{"B", None})
	c := New(Component{"A", Namespace}, Component{"C", None})

	if !a.Equal(b) {
		t.Errorf("expected a == b")
	}
	if a.Equal(c) {
		t.Errorf("expected a != c")
	}
	if a.Compare(c) >= 0 {
		t.Errorf("expected a < c lexicographically")
	}
}

func TestIsNestingLegal(t *testing.T) {
	tests := []struct {
		outer, inner Kind
		want         bool
	}{
		{Namespace, Class, true},
		{Class, Namespace, false}, // less restrictive inside more restrictive: illegal
		{Class, Enum, true},
		{Enum, Class, false},
		{Struct, Union, true},
	}
	for _, tt := range tests {
		if got := IsNestingLegal(tt.outer, tt.inner); got != tt.want {
			t.Errorf("IsNestingLegal(%v, %v) = %v, want %v", tt.outer, tt.inner, got, tt.want)
		}
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		id   string
		cpp  bool
		want bool
	}{
		{"_Foo", false, true},
		{"__foo", false, true}, // leading "_" followed by "_" matches "_[A-Z_].*" in any dialect
		{"foo__bar", true, true},
		{"foo__bar", false, false},
		{"normal_name", true, false},
		{"_x", false, false}, // lowercase after underscore isn't reserved
	}
	for _, tt := range tests {
		if got := IsReserved(tt.id, tt.cpp); got != tt.want {
			t.Errorf("IsReserved(%q, cpp=%v) = %v, want %v", tt.id, tt.cpp, got, tt.want)
		}
	}
}
