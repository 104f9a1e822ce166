package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a valve identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

const (
	alphabet    = 26
	maxPairIdx  = alphabet*alphabet - 1
	pairIDFirst = 'A'
)

// PairIDFn returns the two-letter ID of idx: 0→"AA", 1→"AB", 26→"BA", 675→"ZZ".
// Panics if idx is outside [0, 675].
func PairIDFn(idx int) string {
	if idx < 0 || idx > maxPairIdx {
		panic(fmt.Sprintf("PairIDFn: idx must be in [0,%d], got %d", maxPairIdx, idx))
	}

	return string([]rune{pairIDFirst + rune(idx/alphabet), pairIDFirst + rune(idx%alphabet)})
}

// ExcelColumnIDFn returns the spreadsheet column name of idx: 0→"A",
// 25→"Z", 26→"AA". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/alphabet - 1 {
		runes = append(runes, rune('A'+(i%alphabet)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "V0", "V1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithPairIDs resets the ID scheme to PairIDFn.
func WithPairIDs() BuilderOption {
	return WithIDScheme(PairIDFn)
}

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
