// Package wings is the module resolver and import preprocessor (§4.2). It
// turns a main source path into a Program: the main CodeUnit, its
// dependency wings in resolution order, and the set of built-in libraries
// the program pulled in.
package wings

import (
	"os"
	"path/filepath"

	"github.com/spin-lang/spin/internal/lexer"
	"github.com/spin-lang/spin/internal/spinerr"
)

// Library identifies one of the three built-in libraries selectable by
// `import` (§6).
type Library int

const (
	Console Library = iota
	Kronos
	Maths
)

var libraryNames = map[string]Library{
	"Console": Console,
	"Kronos":  Kronos,
	"Maths":   Maths,
}

func (l Library) String() string {
	switch l {
	case Console:
		return "Console"
	case Kronos:
		return "Kronos"
	case Maths:
		return "Maths"
	default:
		return "?"
	}
}

// CodeUnit is one resolved source file: its name, owned contents, and the
// token stream produced by the lexer and rewritten in place by Wings (§3).
type CodeUnit struct {
	Name     string
	Contents string
	Tokens   []lexer.Token
}

// Program is the result of resolving a main file and all of its
// transitive wings (§3).
type Program struct {
	Main      *CodeUnit
	Wings     []*CodeUnit // dependency order, deepest first
	Libraries map[Library]bool
}

// resolver carries state across the recursive, depth-first walk over
// imports (each import is resolved as soon as it is scanned).
type resolver struct {
	visited   map[string]*CodeUnit // absolute path -> already-resolved unit (diamond dedup)
	order     []*CodeUnit          // wings in dependency order, deepest first
	libraries map[Library]bool
}

// Resolve reads mainPath, lexes it, and recursively resolves every `import`
// directive reachable from it, returning the assembled Program.
func Resolve(mainPath string) (*Program, error) {
	r := &resolver{
		visited:   make(map[string]*CodeUnit),
		libraries: make(map[Library]bool),
	}
	abs, err := filepath.Abs(mainPath)
	if err != nil {
		return nil, spinerr.New(spinerr.FileManagement, mainPath, 0, 0, "cannot resolve path: %v", err)
	}
	main, err := r.resolveUnit(abs, true)
	if err != nil {
		return nil, err
	}
	return &Program{Main: main, Wings: r.order, Libraries: r.libraries}, nil
}

// resolveUnit loads and preprocesses one file. isMain suppresses the
// "discard trivial wings" rule (§4.2) for the program's entry point.
func (r *resolver) resolveUnit(absPath string, isMain bool) (*CodeUnit, error) {
	if existing, ok := r.visited[absPath]; ok {
		// A diamond dependency: some other unit already resolved this
		// wing. Silently skipped per §4.2 ("detected (pre-order) and
		// silently skipped") — it is not appended to r.order again.
		return existing, nil
	}

	contents, err := os.ReadFile(absPath)
	if err != nil {
		return nil, spinerr.New(spinerr.FileManagement, absPath, 0, 0, "unreadable file: %v", err)
	}

	unit := &CodeUnit{Name: absPath, Contents: string(contents)}
	unit.Tokens = lexer.Tokenize(unit.Contents)
	r.visited[absPath] = unit

	if err := r.processImports(unit, filepath.Dir(absPath)); err != nil {
		return nil, err
	}
	classifyTypes(unit.Tokens)
	unit.Tokens = compactEmpty(unit.Tokens)

	if !isMain && isTrivial(unit.Tokens) {
		return unit, nil
	}
	if !isMain {
		r.order = append(r.order, unit)
	}
	return unit, nil
}

// isTrivial reports whether a unit's token stream is just the sentinels —
// it is silently discarded from the wing list (§4.2).
func isTrivial(tokens []lexer.Token) bool {
	for _, t := range tokens {
		if t.Kind != lexer.BeginFile && t.Kind != lexer.EndFile {
			return false
		}
	}
	return true
}

func compactEmpty(tokens []lexer.Token) []lexer.Token {
	out := make([]lexer.Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != lexer.Empty {
			out = append(out, t)
		}
	}
	return out
}

// processImports scans unit.Tokens for `import A::B::C;` directives,
// blanks their tokens, and resolves each to either a known library or a
// recursively-loaded file wing (§4.2).
func (r *resolver) processImports(unit *CodeUnit, baseDir string) error {
	importedHere := make(map[string]bool) // duplicate-within-this-unit check
	tokens := unit.Tokens

	for i := 0; i < len(tokens); i++ {
		if tokens[i].Kind != lexer.KwImport {
			continue
		}
		startIdx := i
		parts, nextIdx, err := parseDottedName(unit, tokens, i+1)
		if err != nil {
			return err
		}
		if nextIdx >= len(tokens) || tokens[nextIdx].Kind != lexer.Semi {
			line, col := spinerr.ResolveLine(unit.Contents, tokens[startIdx].Position)
			return spinerr.New(spinerr.Preprocessor, unit.Name, line, col, "missing ';' at end of import")
		}
		endIdx := nextIdx

		dotted := joinDotted(parts)
		if importedHere[dotted] {
			line, col := spinerr.ResolveLine(unit.Contents, tokens[startIdx].Position)
			return spinerr.New(spinerr.Preprocessor, unit.Name, line, col, "repeated import of %q", dotted)
		}
		importedHere[dotted] = true

		for k := startIdx; k <= endIdx; k++ {
			tokens[k].Kind = lexer.Empty
		}

		last := parts[len(parts)-1]
		if len(parts) == 1 {
			if lib, ok := libraryNames[last.Lexeme]; ok {
				r.libraries[lib] = true
				reclassify(tokens, last.Lexeme)
				i = endIdx
				continue
			}
		}
		// File import: A/B/C.spin relative to baseDir.
		relPath := filepath.Join(append(toStrings(parts)[:len(parts)-1], last.Lexeme+".spin")...)
		fullPath := filepath.Join(baseDir, relPath)
		if _, err := r.resolveUnit(fullPath, false); err != nil {
			return err
		}
		reclassify(tokens, last.Lexeme)
		i = endIdx
	}
	return nil
}

// parseDottedName reads a `A :: B :: C` sequence starting at idx, returning
// the identifier tokens and the index just past the last one.
func parseDottedName(unit *CodeUnit, tokens []lexer.Token, idx int) ([]lexer.Token, int, error) {
	var parts []lexer.Token
	for {
		if idx >= len(tokens) || tokens[idx].Kind == lexer.EndFile {
			line, col := spinerr.ResolveLine(unit.Contents, uint32(len(unit.Contents)))
			return nil, 0, spinerr.New(spinerr.Preprocessor, unit.Name, line, col, "unexpected EOF inside import")
		}
		if tokens[idx].Kind != lexer.Symbol && tokens[idx].Kind != lexer.CustomType {
			line, col := spinerr.ResolveLine(unit.Contents, tokens[idx].Position)
			return nil, 0, spinerr.New(spinerr.Preprocessor, unit.Name, line, col, "expected identifier in import path, got %s", tokens[idx].Kind)
		}
		parts = append(parts, tokens[idx])
		idx++
		if idx < len(tokens) && tokens[idx].Kind == lexer.OpDoubleColon {
			idx++
			continue
		}
		break
	}
	return parts, idx, nil
}

func joinDotted(parts []lexer.Token) string {
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "::"
		}
		s += p.Lexeme
	}
	return s
}

func toStrings(parts []lexer.Token) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Lexeme
	}
	return out
}

// reclassify rewrites every Symbol token matching name to CustomType, so
// later stages see library/class usages uniformly (§4.2).
func reclassify(tokens []lexer.Token, name string) {
	for i := range tokens {
		if tokens[i].Kind == lexer.Symbol && tokens[i].Lexeme == name {
			tokens[i].Kind = lexer.CustomType
		}
	}
}

// classifyTypes reclassifies every identifier immediately following a
// BasicTypeName or CustomType token from Symbol to CustomType (§4.2), so
// the parser sees class/type usages uniformly ahead of declarations.
func classifyTypes(tokens []lexer.Token) {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind != lexer.BasicTypeName && tokens[i].Kind != lexer.CustomType {
			continue
		}
		if tokens[i+1].Kind == lexer.Symbol {
			tokens[i+1].Kind = lexer.CustomType
		}
	}
}
