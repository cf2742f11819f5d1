// Package placeholder generates context values and substitutes {key} tokens in
// title patterns.
package placeholder

import (
	"fmt"
	"maps"
	"math"
	"regexp"
	"strconv"
)

// Context maps placeholder keys to generated scalars (string or int).
type Context map[string]any

// Clone returns an independent copy. A nil Context clones to an empty one.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	maps.Copy(out, c)
	return out
}

var tokenPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Keys returns the distinct placeholder keys referenced by pattern, in order.
func Keys(pattern string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range tokenPattern.FindAllStringSubmatch(pattern, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// Strip removes every placeholder token from pattern.
func Strip(pattern string) string {
	return tokenPattern.ReplaceAllString(pattern, " ")
}

// Resolve replaces each {key} token in pattern with ctx[key]. Keys missing from
// ctx are filled by fallback, called at most once per key; ctx is not modified.
// With a nil fallback the key name itself is used.
func Resolve(pattern string, ctx Context, fallback func(key string) any) string {
	filled := make(map[string]string)
	return tokenPattern.ReplaceAllStringFunc(pattern, func(token string) string {
		key := token[1 : len(token)-1]
		if v, ok := ctx[key]; ok {
			return Format(v)
		}
		if s, ok := filled[key]; ok {
			return s
		}
		s := key
		if fallback != nil {
			s = Format(fallback(key))
		}
		filled[key] = s
		return s
	})
}

// Format renders a context value. Integral floats, as produced by JSON
// decoding, render without a fractional part.
func Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
