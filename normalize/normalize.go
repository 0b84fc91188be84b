// Package normalize converts heterogeneous ordered input into clean numeric
// sequences. Missing and unparseable tokens are dropped, never replaced, and
// the relative order of surviving values is preserved. All outputs are plain
// float64.
package normalize

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"statistician/domain/core"
)

// Source is the single ingestion interface. Any ordered iterable of tokens
// can feed the normalizer by exposing its tokens in order.
type Source interface {
	Tokens() []any
}

// Values adapts an already-numeric sequence
type Values []float64

func (v Values) Tokens() []any {
	out := make([]any, len(v))
	for i, x := range v {
		out[i] = x
	}
	return out
}

// Tokens adapts a mixed-type sequence
type Tokens []any

func (t Tokens) Tokens() []any { return t }

// Strings adapts a textual sequence
type Strings []string

func (s Strings) Tokens() []any {
	out := make([]any, len(s))
	for i, x := range s {
		out[i] = x
	}
	return out
}

// FromAny adapts arbitrary input into a Source. Slices and arrays of any
// element type are accepted; anything else fails with ErrInvalidInput.
func FromAny(v any) (Source, error) {
	if v == nil {
		return nil, core.NewInvalidInputError("nil input")
	}
	if src, ok := v.(Source); ok {
		return src, nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		tokens := make(Tokens, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			tokens[i] = rv.Index(i).Interface()
		}
		return tokens, nil
	default:
		return nil, core.NewInvalidInputError("input is not an ordered iterable")
	}
}

// strips every rune that is not a digit, decimal point, or minus sign
var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// Clean normalizes a token sequence into finite float64 values. Missing
// markers and tokens that fail to parse are dropped.
func Clean(src Source) []float64 {
	tokens := src.Tokens()
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := cleanToken(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// CleanAny adapts then cleans arbitrary input. Non-iterable input fails with
// ErrInvalidInput.
func CleanAny(v any) ([]float64, error) {
	src, err := FromAny(v)
	if err != nil {
		return nil, err
	}
	return Clean(src), nil
}

func cleanToken(tok any) (float64, bool) {
	switch v := tok.(type) {
	case nil:
		return 0, false
	case float64:
		return v, isFinite(v)
	case float32:
		return float64(v), isFinite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case string:
		return cleanString(v)
	default:
		return 0, false
	}
}

// cleanString strips decorations (whitespace, thousands separators, currency
// symbols, percent signs) and attempts a float parse. An empty result after
// cleaning counts as a missing marker.
func cleanString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, isFinite(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
