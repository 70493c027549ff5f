// Package loader resolves `import` targets to parsed expression trees,
// memoizing by path and content hash so repeated imports of the same file
// skip re-lexing and re-parsing.
package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"os"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/pkg/lexer"
	"github.com/glint-lang/glint/pkg/parser"
)

type cacheEntry struct {
	hash string
	expr ast.Expr
}

// Loader loads and parses files referenced by `import`. Evaluation always
// happens fresh per call (the language requires a fresh env per import);
// only the lex/parse step is cached.
type Loader struct {
	cache map[string]cacheEntry
}

// New creates an empty Loader.
func New() *Loader {
	return &Loader{cache: make(map[string]cacheEntry)}
}

// Load reads path, parses it, and returns the root expression. A cache hit
// requires both the path and the sha256 of its current bytes to match a
// previous load, so editing a file between two imports is observed.
func (l *Loader) Load(path string) (ast.Expr, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(text)
	hash := hex.EncodeToString(sum[:])

	if entry, ok := l.cache[path]; ok && entry.hash == hash {
		return entry.expr, nil
	}

	lx := lexer.New(path, string(text))
	p := parser.New(lx, path)
	expr, err := p.Parse()
	if err != nil {
		return nil, err
	}

	l.cache[path] = cacheEntry{hash: hash, expr: expr}
	return expr, nil
}
