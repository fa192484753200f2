package report

import (
	"sort"
	"strconv"
	"unicode/utf8"

	"onebrc/stats"
)

// Entry pairs a station name with its merged accumulator.
type Entry struct {
	Name  string
	Stats stats.Stats
}

// Render sorts entries by code point and serializes them as
// {name=min/mean/max, ...}, one fractional digit per value, trailing
// newline. Entries are sorted in place.
func Render(entries []Entry) string {
	sort.Slice(entries, func(i, j int) bool {
		return codepointLess(entries[i].Name, entries[j].Name)
	})

	buf := make([]byte, 0, 32*len(entries)+3)
	buf = append(buf, '{')
	for i, e := range entries {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = append(buf, e.Name...)
		buf = append(buf, '=')
		buf = appendTenths(buf, e.Stats.Min)
		buf = append(buf, '/')
		buf = appendTenths(buf, meanTenths(e.Stats.Sum, e.Stats.Count))
		buf = append(buf, '/')
		buf = appendTenths(buf, e.Stats.Max)
	}
	buf = append(buf, "}\n"...)
	return string(buf)
}

// meanTenths divides sum by count rounding half away from zero. The
// tie-break uses the integer remainder, never float division. count must be
// positive.
func meanTenths(sum, count int64) int32 {
	q := sum / count
	r := sum % count
	if r < 0 {
		r = -r
	}
	if 2*r >= count {
		if sum < 0 {
			q--
		} else {
			q++
		}
	}
	return int32(q)
}

// appendTenths renders integer tenths as a signed decimal with exactly one
// fractional digit. Zero renders as 0.0, never -0.0.
func appendTenths(buf []byte, tenths int32) []byte {
	if tenths < 0 {
		buf = append(buf, '-')
		tenths = -tenths
	}
	buf = strconv.AppendInt(buf, int64(tenths/10), 10)
	return append(buf, '.', byte('0'+tenths%10))
}

// codepointLess orders strings by their Unicode code point sequence rather
// than raw bytes, which is the documented output ordering.
func codepointLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			return ra < rb
		}
		a, b = a[na:], b[nb:]
	}
	return len(a) < len(b)
}
