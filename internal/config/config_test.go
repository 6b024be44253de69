package config

import (
	"os"
	"testing"

	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("CDECL_DIALECT")
	os.Unsetenv("CDECL_EAST_CONST")

	opts := Load()
	if opts.Dialect != dialect.C17 {
		t.Errorf("default Dialect = %v, want C17", opts.Dialect)
	}
	if opts.EastConst {
		t.Errorf("default EastConst = true, want false")
	}
}

func TestLoadDialectOverride(t *testing.T) {
	os.Setenv("CDECL_DIALECT", "c++17")
	defer os.Unsetenv("CDECL_DIALECT")

	opts := Load()
	if opts.Dialect != dialect.Cpp17 {
		t.Errorf("Dialect = %v, want Cpp17", opts.Dialect)
	}
}

func TestEnvBoolOverride(t *testing.T) {
	os.Setenv("CDECL_EAST_CONST", "true")
	defer os.Unsetenv("CDECL_EAST_CONST")

	opts := Load()
	if !opts.EastConst {
		t.Errorf("EastConst = false, want true")
	}
}

func TestEnvBoolIgnoresGarbage(t *testing.T) {
	os.Setenv("CDECL_EAST_CONST", "not-a-bool")
	defer os.Unsetenv("CDECL_EAST_CONST")

	opts := Load()
	if opts.EastConst {
		t.Errorf("EastConst should fall back to default on unparsable value")
	}
}
