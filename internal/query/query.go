package query

import (
	"net/url"
	"sort"
	"strings"
)

// Pair is a single decoded key/value parameter.
type Pair struct {
	Key   string
	Value string
}

// Parse splits an ampersand-separated, percent-encoded query string into
// decoded pairs in their original order. It is deliberately lenient: a
// segment without '=' becomes a key with an empty value, and a segment whose
// percent-encoding is broken is kept verbatim rather than rejected, matching
// how browsers serialize form data.
func Parse(s string) []Pair {
	segments := strings.Split(s, "&")
	pairs := make([]Pair, 0, len(segments))

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, Pair{
			Key:   unescape(key),
			Value: unescape(value),
		})
	}

	return pairs
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// Collect folds pairs into a unique-key map. Later duplicates overwrite
// earlier ones.
func Collect(pairs []Pair) map[string]string {
	params := make(map[string]string, len(pairs))
	for _, p := range pairs {
		params[p.Key] = p.Value
	}
	return params
}

// CheckString builds the canonical data-check-string: every parameter except
// the excluded ones, serialized as "key=value" lines sorted by key in
// ascending byte order and joined with '\n'. The result is identical for any
// two inputs carrying the same parameter set, regardless of their order.
func CheckString(pairs []Pair, exclude ...string) string {
	params := Collect(pairs)
	for _, key := range exclude {
		delete(params, key)
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(params[key])
	}

	return b.String()
}
