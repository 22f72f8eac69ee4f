// Package cache memoizes parsed number formats so that repeatedly
// formatting cells that share a format string (the common case across a
// worksheet) doesn't re-run the lexer and parser on every cell.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sheetfmt/sheetfmt"
)

// defaultCapacity bounds the process-wide cache. A worksheet rarely uses
// more than a few dozen distinct format strings even across thousands of
// cells, so this comfortably covers real workbooks without unbounded growth.
const defaultCapacity = 100

var (
	once  sync.Once
	inst  *lru.Cache[string, *sheetfmt.NumberFormat]
	inErr error
)

func instance() *lru.Cache[string, *sheetfmt.NumberFormat] {
	once.Do(func() {
		inst, inErr = lru.New[string, *sheetfmt.NumberFormat](defaultCapacity)
	})
	if inErr != nil {
		panic(inErr)
	}
	return inst
}

// Get returns the cached compiled format for formatStr, if present.
func Get(formatStr string) (*sheetfmt.NumberFormat, bool) {
	return instance().Get(formatStr)
}

// Put stores a compiled format, evicting the least-recently-used entry
// once the cache reaches its capacity.
func Put(formatStr string, nf *sheetfmt.NumberFormat) {
	instance().Add(formatStr, nf)
}

// ParseCached parses formatStr through the process-wide cache, compiling
// and storing it on first use.
func ParseCached(formatStr string) (*sheetfmt.NumberFormat, error) {
	if nf, ok := Get(formatStr); ok {
		return nf, nil
	}
	nf, err := sheetfmt.Parse(formatStr)
	if err != nil {
		return nil, err
	}
	Put(formatStr, nf)
	return nf, nil
}
