// Package cli wires the checker, renderers, and TypedefStore into the
// one-shot command surface, grounded on the teacher's internal/cli
// Runner (a thin orchestration layer the cobra/pflag-parsed flags
// delegate to rather than inlining logic in main).
package cli

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/checker"
	"github.com/paul-j-lucas/cdecl-sub004/internal/config"
	"github.com/paul-j-lucas/cdecl-sub004/internal/diag"
	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/history"
	"github.com/paul-j-lucas/cdecl-sub004/internal/render/english"
	"github.com/paul-j-lucas/cdecl-sub004/internal/render/gibberish"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/show"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typedefstore"
)

// Runner holds everything one CLI invocation needs: the options
// context, the TypedefStore that define and show work on, and an
// optional history recorder.
type Runner struct {
	Opts     *config.Options
	Store    *typedefstore.Store
	Recorder *history.Recorder
}

// New creates a Runner with a fresh TypedefStore and no history
// recorder; callers wanting persistence call AttachHistory separately.
func New(opts *config.Options) *Runner {
	return &Runner{Opts: opts, Store: typedefstore.New()}
}

// AttachHistory opens a history store at dsn and binds it to r.
func (r *Runner) AttachHistory(dsn string, debug bool) error {
	db, err := history.Connect(dsn, debug)
	if err != nil {
		return err
	}
	rec, err := history.NewRecorder(db, dialectLabel(r.Opts))
	if err != nil {
		return err
	}
	r.Recorder = rec
	return nil
}

func dialectLabel(opts *config.Options) string {
	return dialect.Name(opts.Dialect)
}

func (r *Runner) checkerOptions() checker.Options {
	return checker.Options{
		Dialect:      r.Opts.Dialect,
		EastConst:    r.Opts.EastConst,
		ExplicitInt:  r.Opts.ExplicitInt,
		ExplicitECSU: r.Opts.ExplicitECSU,
	}
}

// Explain checks root and, if it passes, renders it as English prose.
// It returns the rendered text and the diagnostics recorded even on
// success (warnings survive a clean check).
func (r *Runner) Explain(a *ast.Arena, root ast.Ref) (string, []diag.Diagnostic, error) {
	c := checker.Check(a, root, r.checkerOptions())
	if first, ok := c.FirstError(); ok {
		r.record("explain", "", "", c.Diagnostics())
		return "", c.Diagnostics(), diag.Wrap(first)
	}
	out := english.Render(a, root)
	r.record("explain", "", out, c.Diagnostics())
	return out, c.Diagnostics(), nil
}

// Declare checks root and, if it passes, renders it as gibberish with
// sname as the declarator's identifier.
func (r *Runner) Declare(a *ast.Arena, root ast.Ref, sname string) (string, []diag.Diagnostic, error) {
	c := checker.Check(a, root, r.checkerOptions())
	if first, ok := c.FirstError(); ok {
		r.record("declare", sname, "", c.Diagnostics())
		return "", c.Diagnostics(), diag.Wrap(first)
	}
	out := gibberish.Render(a, root, sname, gibberish.Options{EastConst: r.Opts.EastConst})
	r.record("declare", sname, out, c.Diagnostics())
	return out, c.Diagnostics(), nil
}

// Define inserts root into the TypedefStore under sname.
func (r *Runner) Define(sname scopedname.Name, a *ast.Arena, root ast.Ref) error {
	dst := r.Store.Arena()
	ref := ast.Dup(a, root, dst)
	if err := r.Store.Insert(sname, ref); err != nil {
		return err
	}
	r.record("define", sname.String(), "", nil)
	return nil
}

// Show runs ShowCommand over r's TypedefStore.
func (r *Runner) Show(opts show.Options) ([]show.Result, error) {
	results, err := show.Run(r.Store, opts)
	if err == nil {
		r.record("show", opts.Glob, fmt.Sprintf("%d matches", len(results)), nil)
	}
	return results, err
}

func (r *Runner) record(kind, input, output string, diagnostics any) {
	if r.Recorder == nil {
		return
	}
	_ = r.Recorder.Record(kind, input, output, diagnostics)
}

// Close releases the optional history recorder.
func (r *Runner) Close() error {
	if r.Recorder == nil {
		return nil
	}
	return r.Recorder.Close()
}
