package typebits

import (
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
)

func TestCheckUniversallyLegal(t *testing.T) {
	ty := Type{Base: BaseInt, Store: StoreConst}
	if got := Check(ty); got != dialect.AllDialects {
		t.Errorf("Check(int const) = %v, want AllDialects", got)
	}
}

func TestCheckRestrictedByDialect(t *testing.T) {
	ty := Type{Base: BaseInt, Store: StoreConstexpr}
	got := Check(ty)
	if got.Contains(dialect.C99) {
		t.Errorf("constexpr must not be legal in C99")
	}
	if !got.Contains(dialect.Cpp11) {
		t.Errorf("constexpr must be legal in C++11")
	}
}

func TestCheckLongLongImpliesC99(t *testing.T) {
	ty := Type{Base: BaseLongLong | BaseInt}
	got := Check(ty)
	if got.Contains(dialect.C89) {
		t.Errorf("long long must not be legal in C89")
	}
	if !got.Contains(dialect.C99) {
		t.Errorf("long long must be legal in C99")
	}
}

func TestCheckEmptyWhenImpossible(t *testing.T) {
	// mutable (C++-only) combined with _Accum (Embedded-C-only) admits no dialect.
	ty := Type{Base: BaseAccum, Store: StoreMutable}
	if got := Check(ty); !got.IsEmpty() {
		t.Errorf("Check(impossible combination) = %v, want empty", got)
	}
}

func TestInvariants(t *testing.T) {
	if !HasConflictingSignedness(Type{Base: BaseSigned | BaseUnsigned | BaseInt}) {
		t.Errorf("expected signed+unsigned conflict to be detected")
	}
	if HasConflictingSignedness(Type{Base: BaseSigned | BaseInt}) {
		t.Errorf("signed alone must not conflict")
	}
	if !HasConflictingAuto(Type{Base: BaseAuto, Store: StoreAuto}) {
		t.Errorf("expected auto/auto conflict to be detected")
	}
	if !ForbidsBitfieldWidth(Type{Store: StoreTypedef}) {
		t.Errorf("typedef storage should forbid bit-field widths")
	}
	if !IsLongLong(Type{Base: BaseLongLong}) {
		t.Errorf("expected IsLongLong to report true")
	}
}

func TestNameCOrdering(t *testing.T) {
	ty := Type{Base: BaseUnsigned | BaseLong | BaseInt, Store: StoreStatic | StoreConst}
	got := NameC(ty, false)
	want := "static const unsigned long int"
	if got != want {
		t.Errorf("NameC() = %q, want %q", got, want)
	}
}

func TestNameCEastConst(t *testing.T) {
	ty := Type{Base: BaseInt, Store: StoreConst}
	west := NameC(ty, false)
	east := NameC(ty, true)
	if west == east {
		t.Errorf("expected east/west const to render differently")
	}
	if west != "const int" {
		t.Errorf("west const = %q, want %q", west, "const int")
	}
	if east != "int const" {
		t.Errorf("east const = %q, want %q", east, "int const")
	}
}

func TestNameEnglishHyphenation(t *testing.T) {
	ty := Type{Attr: AttrNodiscard, Store: StoreThreadLocal}
	got := NameEnglish(ty)
	want := "no-discard thread-local"
	if got != want {
		t.Errorf("NameEnglish() = %q, want %q", got, want)
	}
}
