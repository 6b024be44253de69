// Package diag implements the diagnostic taxonomy and CLIError-style
// wrapper (§7) that the checker reports through and the CLI surface
// returns, modeled on the teacher's CLIError in internal/core/errorfmt.go.
package diag

import (
	"encoding/json"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
)

// Code enumerates the error taxonomy of §7.
type Code string

const (
	UnknownName         Code = "UNKNOWN_NAME"
	NotSupported        Code = "NOT_SUPPORTED"
	IllegalCombination  Code = "ILLEGAL_COMBINATION"
	IllegalRelation     Code = "ILLEGAL_RELATION"
	BadReturn           Code = "BAD_RETURN"
	BadParam            Code = "BAD_PARAM"
	BadOperator         Code = "BAD_OPERATOR"
	BadMain             Code = "BAD_MAIN"
	BadCast             Code = "BAD_CAST"
	ReservedIdent       Code = "RESERVED_IDENT"
	DeprecatedFeature   Code = "DEPRECATED_FEATURE"
)

// Severity distinguishes errors, which abort the current pass, from
// warnings, which never do (§7).
type Severity uint8

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single reported problem, attached to the outermost
// relevant node and its source span (§7).
type Diagnostic struct {
	Code     Code        `json:"code"`
	Severity Severity    `json:"-"`
	Message  string      `json:"message"`
	Hint     string      `json:"hint,omitempty"`
	Span     ast.SourceSpan `json:"span"`
}

func (d Diagnostic) Error() string {
	if d.Hint != "" {
		return d.Message + " (" + d.Hint + ")"
	}
	return d.Message
}

// CLIError is the uniform error payload returned to the outer CLI/REPL
// layer, mirroring the teacher's internal/core/errorfmt.go CLIError: a
// human message with an optional JSON rendering.
type CLIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e CLIError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

func (e CLIError) JSON() string {
	b, _ := json.Marshal(e)
	return string(b)
}

// Wrap builds a CLIError for a Diagnostic that escaped to the command
// boundary.
func Wrap(d Diagnostic) error {
	return CLIError{Code: d.Code, Message: d.Message, Detail: d.Hint}
}

// Collector accumulates diagnostics during a single checker pass (§7).
// Errors are reported root-first and the first one aborts the pass;
// warnings are collected leaves-inclusive and never abort, per §7's
// ordering rule.
type Collector struct {
	diags   []Diagnostic
	aborted bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Error records an error diagnostic and marks the pass as aborted. It
// returns false so callers can write `return c.Error(...)` from deep in
// a visitor and have the visitor's own bool-returning convention carry
// the abort upward.
func (c *Collector) Error(code Code, span ast.SourceSpan, message, hint string) bool {
	c.diags = append(c.diags, Diagnostic{Code: code, Severity: Error, Message: message, Hint: hint, Span: span})
	c.aborted = true
	return false
}

// Warn records a warning diagnostic; it never aborts the pass.
func (c *Collector) Warn(code Code, span ast.SourceSpan, message, hint string) {
	c.diags = append(c.diags, Diagnostic{Code: code, Severity: Warning, Message: message, Hint: hint, Span: span})
}

// Aborted reports whether an error has been recorded.
func (c *Collector) Aborted() bool { return c.aborted }

// Diagnostics returns all diagnostics recorded so far, in discovery
// order.
func (c *Collector) Diagnostics() []Diagnostic { return c.diags }

// FirstError returns the first recorded error diagnostic, if any.
func (c *Collector) FirstError() (Diagnostic, bool) {
	for _, d := range c.diags {
		if d.Severity == Error {
			return d, true
		}
	}
	return Diagnostic{}, false
}
