// Package cliparse is the demonstration front end that feeds
// ast.Builder (§6.1's documented parser stand-in) from a small English
// phrase grammar, since the real lexical scanner and grammar parser
// for C/C++ declarator syntax are explicitly out of scope (§1) and
// Builder's own doc comment names itself as what "the demonstration
// CLI" should drive instead of a hand-rolled C grammar.
//
// The grammar mirrors internal/render/english's output so that
// Parse(Render(ast)) round-trips: "pointer to int", "array 10 of
// pointer to char", "function (int, char) returning int", with
// optional leading cv-qualifiers. The phrase carries no declared name
// (the declare command takes it from its --as flag), and tokens left
// over after the phrase are not consumed.
package cliparse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl-sub004/internal/ast"
	"github.com/paul-j-lucas/cdecl-sub004/internal/scopedname"
	"github.com/paul-j-lucas/cdecl-sub004/internal/typebits"
)

var baseWords = map[string]typebits.Base{
	"void": typebits.BaseVoid, "bool": typebits.BaseBool, "char": typebits.BaseChar,
	"short": typebits.BaseShort, "int": typebits.BaseInt, "long": typebits.BaseLong,
	"signed": typebits.BaseSigned, "unsigned": typebits.BaseUnsigned,
	"float": typebits.BaseFloat, "double": typebits.BaseDouble,
}

var qualWords = map[string]typebits.Store{
	"const": typebits.StoreConst, "volatile": typebits.StoreVolatile,
}

// parser walks a whitespace-tokenized phrase left to right. It has no
// backtracking: the grammar is small enough that one token of
// lookahead, read with peek, always resolves the next production.
type parser struct {
	b      *ast.Builder
	toks   []string
	pos    int
}

// Parse builds an AST from phrase and returns its root reference
// together with the Builder that owns the arena.
func Parse(phrase string) (*ast.Builder, ast.Ref, error) {
	p := &parser{b: ast.NewBuilder(), toks: tokenize(phrase)}
	ref, err := p.parseType()
	if err != nil {
		return nil, ast.NoRef, err
	}
	return p.b, ref, nil
}

func tokenize(phrase string) []string {
	phrase = strings.ReplaceAll(phrase, "(", " ( ")
	phrase = strings.ReplaceAll(phrase, ")", " ) ")
	phrase = strings.ReplaceAll(phrase, ",", " , ")
	return strings.Fields(phrase)
}

func (p *parser) peek() string {
	if p.pos >= len(p.toks) {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

func (p *parser) expect(word string) error {
	if p.next() != word {
		return fmt.Errorf("cliparse: expected %q at position %d", word, p.pos-1)
	}
	return nil
}

// parseType parses one of: "pointer to X", "reference to X", "rvalue
// reference to X", "array [N] of X", "function (params) returning X",
// or a bare qualified builtin/name.
func (p *parser) parseType() (ast.Ref, error) {
	switch p.peek() {
	case "pointer":
		p.next()
		if err := p.expect("to"); err != nil {
			return ast.NoRef, err
		}
		to, err := p.parseType()
		if err != nil {
			return ast.NoRef, err
		}
		return p.b.Pointer(to), nil
	case "reference":
		p.next()
		if err := p.expect("to"); err != nil {
			return ast.NoRef, err
		}
		to, err := p.parseType()
		if err != nil {
			return ast.NoRef, err
		}
		return p.b.Reference(to), nil
	case "rvalue":
		p.next()
		if err := p.expect("reference"); err != nil {
			return ast.NoRef, err
		}
		if err := p.expect("to"); err != nil {
			return ast.NoRef, err
		}
		to, err := p.parseType()
		if err != nil {
			return ast.NoRef, err
		}
		return p.b.RvalueReference(to), nil
	case "array":
		p.next()
		size := ast.ArraySize{Kind: ast.ArraySizeNone}
		if n, err := strconv.ParseInt(p.peek(), 10, 64); err == nil {
			p.next()
			size = ast.ArraySize{Kind: ast.ArraySizeInt, Int: n}
		}
		if err := p.expect("of"); err != nil {
			return ast.NoRef, err
		}
		of, err := p.parseType()
		if err != nil {
			return ast.NoRef, err
		}
		return p.b.Array(of, size), nil
	case "function":
		p.next()
		params, err := p.parseParams()
		if err != nil {
			return ast.NoRef, err
		}
		ret := ast.NoRef
		if p.peek() == "returning" {
			p.next()
			ret, err = p.parseType()
			if err != nil {
				return ast.NoRef, err
			}
		}
		return p.b.Function(scopedname.Name{}, params, ret), nil
	default:
		return p.parseSpecifiers()
	}
}

func (p *parser) parseParams() ([]ast.Ref, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var params []ast.Ref
	for p.peek() != ")" && p.peek() != "" {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, t)
		if p.peek() == "," {
			p.next()
		}
	}
	if err := p.expect(")"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseSpecifiers consumes qualifiers then one or more base-type
// words (e.g. "unsigned long int"), falling back to a Builtin node with
// no base type, named by the unrecognized leading word.
func (p *parser) parseSpecifiers() (ast.Ref, error) {
	var store typebits.Store
	for {
		if q, ok := qualWords[p.peek()]; ok {
			store |= q
			p.next()
			continue
		}
		break
	}

	var base typebits.Base
	consumed := false
	for {
		w := p.peek()
		if b, ok := baseWords[w]; ok {
			base |= b
			p.next()
			consumed = true
			continue
		}
		break
	}
	if !consumed {
		name := p.next()
		if name == "" {
			return ast.NoRef, fmt.Errorf("cliparse: unexpected end of input")
		}
		r := p.b.Builtin(typebits.Type{Store: store})
		return p.b.Named(r, name), nil
	}
	return p.b.Builtin(typebits.Type{Base: base, Store: store}), nil
}
