// Package operator implements the static catalogue of overloadable C++
// operators (§3.5): legality, member/non-member constraints, and
// parameter-count bounds. The shape mirrors the teacher's NodeMapping
// catalogue (internal/core/contracts.go) and its provider-side
// BuildMappings/TranslateKind lookup (internal/provider/provider.go) —
// a static table keyed by an identifier, built once, queried by value.
package operator

import "github.com/paul-j-lucas/cdecl-sub004/internal/dialect"

// ID identifies one overloadable operator.
type ID uint8

const (
	Plus ID = iota
	Minus
	Star
	Slash
	Percent
	Caret
	Amp
	Pipe
	Tilde
	Not
	Assign
	Less
	Greater
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	CaretAssign
	AmpAssign
	PipeAssign
	LeftShift
	RightShift
	LeftShiftAssign
	RightShiftAssign
	Equal
	NotEqual
	LessEqual
	GreaterEqual
	Spaceship // <=>
	AndAnd
	OrOr
	PlusPlus
	MinusMinus
	Comma
	ArrowStar
	Arrow
	Call      // operator()
	Subscript // operator[]
	New
	NewArray
	Delete
	DeleteArray
	Coawait
	numOperators
)

// Form encodes which forms an operator may be overloaded as.
type Form uint8

const (
	FormMemberOnly Form = iota
	FormNonMemberOnly
	FormBoth
	FormNotOverloadable
)

// Info describes one operator's legality and shape.
type Info struct {
	Spelling   string // the literal token, e.g. "+"
	English    string // the English token used in diagnostics/rendering
	Dialects   dialect.Set
	Form       Form
	ParamsMin  int
	ParamsMax  int // -1 means unbounded (only operator())
}

// For every FormBoth binary operator, the member form's implicit receiver
// stands in for the left operand, so ParamsMin (member) is always one
// less than ParamsMax (non-member) — see InferForm.
var table = map[ID]Info{
	Plus:            {"+", "+", cppOnly(), FormBoth, 1, 2},
	Minus:           {"-", "-", cppOnly(), FormBoth, 1, 2},
	Star:            {"*", "*", cppOnly(), FormBoth, 1, 2},
	Slash:           {"/", "/", cppOnly(), FormBoth, 1, 2},
	Percent:         {"%", "%", cppOnly(), FormBoth, 1, 2},
	Caret:           {"^", "^", cppOnly(), FormBoth, 1, 2},
	Amp:             {"&", "&", cppOnly(), FormBoth, 1, 2},
	Pipe:            {"|", "|", cppOnly(), FormBoth, 1, 2},
	Tilde:           {"~", "~", cppOnly(), FormMemberOnly, 0, 0},
	Not:             {"!", "!", cppOnly(), FormBoth, 0, 1},
	Assign:          {"=", "=", cppOnly(), FormMemberOnly, 1, 1},
	Less:            {"<", "<", cppOnly(), FormBoth, 1, 2},
	Greater:         {">", ">", cppOnly(), FormBoth, 1, 2},
	PlusAssign:      {"+=", "+=", cppOnly(), FormBoth, 1, 2},
	MinusAssign:     {"-=", "-=", cppOnly(), FormBoth, 1, 2},
	StarAssign:      {"*=", "*=", cppOnly(), FormBoth, 1, 2},
	SlashAssign:     {"/=", "/=", cppOnly(), FormBoth, 1, 2},
	PercentAssign:   {"%=", "%=", cppOnly(), FormBoth, 1, 2},
	CaretAssign:     {"^=", "^=", cppOnly(), FormBoth, 1, 2},
	AmpAssign:       {"&=", "&=", cppOnly(), FormBoth, 1, 2},
	PipeAssign:      {"|=", "|=", cppOnly(), FormBoth, 1, 2},
	LeftShift:       {"<<", "<<", cppOnly(), FormBoth, 1, 2},
	RightShift:      {">>", ">>", cppOnly(), FormBoth, 1, 2},
	LeftShiftAssign: {"<<=", "<<=", cppOnly(), FormBoth, 1, 2},
	RightShiftAssign: {">>=", ">>=", cppOnly(), FormBoth, 1, 2},
	Equal:           {"==", "==", cppOnly(), FormBoth, 1, 2},
	NotEqual:        {"!=", "!=", cppOnly(), FormBoth, 1, 2},
	LessEqual:       {"<=", "<=", cppOnly(), FormBoth, 1, 2},
	GreaterEqual:    {">=", ">=", cppOnly(), FormBoth, 1, 2},
	Spaceship:       {"<=>", "<=>", cpp20Plus(), FormBoth, 1, 2},
	AndAnd:          {"&&", "&&", cppOnly(), FormBoth, 1, 2},
	OrOr:            {"||", "||", cppOnly(), FormBoth, 1, 2},
	PlusPlus:        {"++", "++", cppOnly(), FormBoth, 0, 2}, // postfix takes a dummy int
	MinusMinus:      {"--", "--", cppOnly(), FormBoth, 0, 2},
	Comma:           {",", ",", cppOnly(), FormBoth, 1, 2},
	ArrowStar:       {"->*", "->*", cppOnly(), FormMemberOnly, 1, 1},
	Arrow:           {"->", "->", cppOnly(), FormMemberOnly, 0, 0},
	Call:            {"()", "()", cppOnly(), FormMemberOnly, 0, -1},
	Subscript:       {"[]", "[]", cppOnly(), FormMemberOnly, 1, 2}, // C++23 allows 2 subscript args
	New:             {"new", "new", cppOnly(), FormBoth, 1, -1},
	NewArray:        {"new[]", "new[]", cppOnly(), FormBoth, 1, -1},
	Delete:          {"delete", "delete", cppOnly(), FormBoth, 1, 2},
	DeleteArray:     {"delete[]", "delete[]", cppOnly(), FormBoth, 1, 2},
	Coawait:         {"co_await", "co_await", cpp20Plus(), FormMemberOnly, 0, 0},
}

func cppOnly() dialect.Set {
	return dialect.Of(dialect.Cpp98, dialect.Cpp03, dialect.Cpp11, dialect.Cpp14, dialect.Cpp17, dialect.Cpp20, dialect.Cpp23)
}

func cpp20Plus() dialect.Set {
	return dialect.Of(dialect.Cpp20, dialect.Cpp23)
}

// Lookup returns the Info for id.
func Lookup(id ID) (Info, bool) {
	info, ok := table[id]
	return info, ok
}

// IsNewOrDelete reports whether id is one of the new/delete family, which
// is restricted to the TS_NEW_DELETE_OPER storage subset (§4.4.1).
func IsNewOrDelete(id ID) bool {
	switch id {
	case New, NewArray, Delete, DeleteArray:
		return true
	default:
		return false
	}
}

// InferForm decides the member/non-member form for id given the observed
// parameter count, when the user did not specify one explicitly (§4.4.1,
// "Operator inference" in §8): if Form permits only one form, that form
// is used; if Form is FormBoth, the form whose bounds match nParams wins.
func InferForm(id ID, nParams int) (Form, bool) {
	info, ok := table[id]
	if !ok {
		return FormNotOverloadable, false
	}
	switch info.Form {
	case FormMemberOnly, FormNonMemberOnly, FormNotOverloadable:
		return info.Form, true
	case FormBoth:
		// Non-member form takes one more parameter than member form
		// for every binary/unary operator pair (the implicit receiver).
		if nParams == info.ParamsMin {
			return FormMemberOnly, true
		}
		if nParams == info.ParamsMax {
			return FormNonMemberOnly, true
		}
		return FormBoth, false
	}
	return FormNotOverloadable, false
}
