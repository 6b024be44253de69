package diag

import (
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
)

func TestCollectorErrorAborts(t *testing.T) {
	c := NewCollector()
	if c.Aborted() {
		t.Fatalf("fresh collector should not be aborted")
	}
	ok := c.Error(BadMain, ast.SourceSpan{}, "main() must return int", "")
	if ok {
		t.Errorf("Error should return false")
	}
	if !c.Aborted() {
		t.Errorf("collector should be aborted after Error")
	}
}

func TestCollectorWarnDoesNotAbort(t *testing.T) {
	c := NewCollector()
	c.Warn(ReservedIdent, ast.SourceSpan{}, "\"_Foo\" is reserved", "")
	if c.Aborted() {
		t.Errorf("Warn must never abort the pass")
	}
	if len(c.Diagnostics()) != 1 {
		t.Errorf("expected 1 diagnostic, got %d", len(c.Diagnostics()))
	}
}

func TestFirstError(t *testing.T) {
	c := NewCollector()
	c.Warn(DeprecatedFeature, ast.SourceSpan{}, "deprecated", "")
	c.Error(UnknownName, ast.SourceSpan{}, "\"X\": unknown name", "")
	c.Error(BadCast, ast.SourceSpan{}, "can not cast into Function", "")

	first, ok := c.FirstError()
	if !ok || first.Code != UnknownName {
		t.Errorf("FirstError = %v, %v, want UnknownName", first, ok)
	}
}

func TestCLIErrorFormatting(t *testing.T) {
	err := Wrap(Diagnostic{Code: BadMain, Message: "main() must return int", Hint: "did you mean int main(void)?"})
	want := "main() must return int: did you mean int main(void)?"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
