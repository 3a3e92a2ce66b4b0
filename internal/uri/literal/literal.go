// Package literal renders key and parameter values in URL literal form.
package literal

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format renders v the way it appears inside a key predicate:
// strings are single-quoted with embedded quotes doubled, GUIDs, numbers
// and booleans are bare, timestamps use RFC 3339. Durations render as
// duration'P…' and byte slices as binary'…' in base64url.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + strings.ReplaceAll(x, "'", "''") + "'"
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case float32:
		return formatFloat(float64(x), 32)
	case float64:
		return formatFloat(x, 64)
	case uuid.UUID:
		return x.String()
	case time.Time:
		return x.Format(time.RFC3339Nano)
	case time.Duration:
		return "duration'" + formatDuration(x) + "'"
	case []byte:
		return "binary'" + base64.URLEncoding.EncodeToString(x) + "'"
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	}
	return strconv.FormatFloat(f, 'G', -1, bits)
}

// formatDuration renders d as an ISO 8601 day-time duration, e.g. "-P1DT2H0.5S".
func formatDuration(d time.Duration) string {
	var b strings.Builder
	n := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		n = uint64(-(d + 1)) + 1
	}
	b.WriteByte('P')

	const day = uint64(24 * time.Hour)
	if days := n / day; days > 0 {
		b.WriteString(strconv.FormatUint(days, 10) + "D")
		n %= day
		if n == 0 {
			return b.String()
		}
	}

	b.WriteByte('T')
	if h := n / uint64(time.Hour); h > 0 {
		b.WriteString(strconv.FormatUint(h, 10) + "H")
		n %= uint64(time.Hour)
	}
	if m := n / uint64(time.Minute); m > 0 {
		b.WriteString(strconv.FormatUint(m, 10) + "M")
		n %= uint64(time.Minute)
	}
	if n > 0 || b.Len() <= 2 {
		secs := strconv.FormatUint(n/uint64(time.Second), 10)
		if frac := n % uint64(time.Second); frac > 0 {
			secs += "." + strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
		}
		b.WriteString(secs + "S")
	}
	return b.String()
}

// KeyValue is one named component of a key predicate.
type KeyValue struct {
	Name  string
	Value any
}

// FormatKey renders a key predicate without parentheses. A single key
// renders as its bare value; composite keys render as Name=value pairs.
func FormatKey(values []KeyValue) string {
	if len(values) == 1 {
		return Format(values[0].Value)
	}
	parts := make([]string, len(values))
	for i, kv := range values {
		parts[i] = kv.Name + "=" + Format(kv.Value)
	}
	return strings.Join(parts, ",")
}
