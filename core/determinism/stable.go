// Package determinism provides the numeric and hashing primitives that keep
// estimates reproducible: identical inputs give bit-identical outputs.
package determinism

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Output precision. Persisted quotations are compared on these rounded
// values, so changing either is a breaking change.
const (
	CurrencyPlaces = 2
	PouchPlaces    = 4
)

// FromFloat converts an input number to decimal. NaN and ±Inf become zero
// so that no non-finite value reaches the arithmetic.
func FromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// FromFloatPtr is FromFloat for optional inputs
func FromFloatPtr(f *float64) (decimal.Decimal, bool) {
	if f == nil {
		return decimal.Zero, false
	}
	return FromFloat(*f), true
}

// SafeDiv returns n/d, or zero when d is zero
func SafeDiv(n, d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}
	return n.Div(d)
}

// Percent returns v * p/100
func Percent(v, p decimal.Decimal) decimal.Decimal {
	return v.Mul(p).Div(decimal.NewFromInt(100))
}

// Round2 rounds half away from zero to currency precision
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(CurrencyPlaces)
}

// Round4 rounds half away from zero to per-pouch precision
func Round4(d decimal.Decimal) decimal.Decimal {
	return d.Round(PouchPlaces)
}

// ContentHash is a SHA-256 hash for content integrity
type ContentHash [32]byte

// ComputeHash computes a content hash from bytes
func ComputeHash(data []byte) ContentHash {
	return sha256.Sum256(data)
}

// Hex returns the hash as a hex string
func (h ContentHash) Hex() string {
	return hex.EncodeToString(h[:])
}

// String implements Stringer
func (h ContentHash) String() string {
	return h.Hex()[:16]
}

// HashJSON hashes the canonical JSON encoding of v. encoding/json sorts
// map keys, so equal values always hash equal.
func HashJSON(v interface{}) (ContentHash, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return ContentHash{}, fmt.Errorf("hash input: %w", err)
	}
	return ComputeHash(data), nil
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
