package checker

import "github.com/paul-j-lucas/cdecl-sub004/internal/dialect"

// Minimum-dialect thresholds the structural and type-legality passes
// check against. dialect.Dialect's iota ordering already matches its
// chronological rank (see dialect.go's info table), so plain numeric
// comparison against these doubles as dialect.RankOrder.
const (
	requiredKnrC  = dialect.KnrC
	requiredC99   = dialect.C99
	requiredC23   = dialect.C23
	requiredCpp11 = dialect.Cpp11
	requiredCpp14 = dialect.Cpp14
	requiredCpp17 = dialect.Cpp17
	requiredCpp20 = dialect.Cpp20
)
