// Package show implements ShowCommand (§4.7, SPEC_FULL.md §10.2):
// filtering a TypedefStore by glob pattern, then rendering each
// surviving entry in English or gibberish form. Entries are not
// filtered by dialect (see Options).
//
// Glob matching uses bmatcuk/doublestar/v4 rather than hand-rolling a
// matcher, following the convention (seen across the example pack) of
// reaching for an ecosystem library for pattern matching instead of the
// stdlib's path.Match, which doesn't support "**".
package show

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/paul-j-lucas/cdecl-sub004/internal/dialect"
	"github.com/paul-j-lucas/cdecl-sub004/internal/render/english"
	"github.com/paul-j-lucas/cdecl-sub004/internal/render/gibberish"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typedefstore"
)

// Format selects the renderer ShowCommand uses for matching entries.
type Format uint8

const (
	English Format = iota
	Gibberish
)

// Options configures a Show invocation. DialectFilter is currently
// advisory: TypedefStore does not record the dialect an entry was
// inserted under, so every entry passes a non-universal filter rather
// than being dropped without provenance to filter on.
type Options struct {
	Glob          string
	DialectFilter dialect.Set
	Format        Format
	EastConst     bool
}

// Result pairs a matched entry's display name with its rendered form.
type Result struct {
	Name   string
	Output string
}

// Run filters store by glob, walking entries in insertion order
// (§4.7), and renders each survivor in the requested format.
func Run(store *typedefstore.Store, opts Options) ([]Result, error) {
	glob := opts.Glob
	if glob == "" {
		glob = "*"
	}

	var out []Result
	for _, e := range store.All() {
		name := e.Name.String()
		matched, err := doublestar.Match(glob, name)
		if err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", glob, err)
		}
		if !matched {
			continue
		}

		var rendered string
		switch opts.Format {
		case Gibberish:
			rendered = gibberish.Render(store.Arena(), e.Ref, e.Name.LocalName(), gibberish.Options{EastConst: opts.EastConst})
		default:
			rendered = english.Render(store.Arena(), e.Ref)
		}
		out = append(out, Result{Name: name, Output: rendered})
	}
	return out, nil
}
