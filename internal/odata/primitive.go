package odata

import (
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/conduit-lang/odatacore/internal/edm"
)

// Date is a calendar date without a time zone (Edm.Date).
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date part of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// TimeOfDay is a clock time without a date (Edm.TimeOfDay).
type TimeOfDay struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// TimeOfDayOf returns the clock part of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// String renders the time as hh:mm:ss with fractional seconds when present.
func (t TimeOfDay) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", t.Nanosecond)
	}
	return s
}

// Decimal is an exact decimal number kept in its textual form (Edm.Decimal).
type Decimal struct {
	text string
}

// ParseDecimal validates s as a decimal number.
func ParseDecimal(s string) (Decimal, error) {
	if _, ok := new(big.Rat).SetString(s); !ok || s == "" {
		return Decimal{}, fmt.Errorf("invalid decimal %q", s)
	}
	return Decimal{text: s}, nil
}

// MustParseDecimal is ParseDecimal that panics on invalid input.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Decimal) String() string { return d.text }

// PrimitiveKindOf maps the Go type of v to its Edm primitive kind.
// Unsigned integers other than byte have no Edm counterpart.
func PrimitiveKindOf(v any) (edm.PrimitiveTypeKind, bool) {
	switch v.(type) {
	case string:
		return edm.PrimitiveString, true
	case bool:
		return edm.PrimitiveBoolean, true
	case uint8:
		return edm.PrimitiveByte, true
	case int8:
		return edm.PrimitiveSByte, true
	case int16:
		return edm.PrimitiveInt16, true
	case int32:
		return edm.PrimitiveInt32, true
	case int, int64:
		return edm.PrimitiveInt64, true
	case float32:
		return edm.PrimitiveSingle, true
	case float64:
		return edm.PrimitiveDouble, true
	case Decimal:
		return edm.PrimitiveDecimal, true
	case []byte:
		return edm.PrimitiveBinary, true
	case time.Time:
		return edm.PrimitiveDateTimeOffset, true
	case time.Duration:
		return edm.PrimitiveDuration, true
	case uuid.UUID:
		return edm.PrimitiveGuid, true
	case Date:
		return edm.PrimitiveDate, true
	case TimeOfDay:
		return edm.PrimitiveTimeOfDay, true
	default:
		return edm.PrimitiveNone, false
	}
}
