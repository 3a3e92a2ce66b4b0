package literal

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "1", "'1'"},
		{"escaped quote", "O'Neil", "'O''Neil'"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"byte", uint8(255), "255"},
		{"bool", true, "true"},
		{"double", 1.5, "1.5"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(-1), "-INF"},
		{"guid", id, "3f2504e0-4f89-11d3-9a0c-0305e82c3301"},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
		{"nil", nil, "null"},
		{"duration hour", time.Hour, "duration'PT1H'"},
		{"duration minutes", 90 * time.Second, "duration'PT1M30S'"},
		{"duration days", 48 * time.Hour, "duration'P2D'"},
		{"negative duration", -(26*time.Hour + 500*time.Millisecond), "duration'-P1DT2H0.5S'"},
		{"zero duration", time.Duration(0), "duration'PT0S'"},
		{"binary", []byte{1, 2, 3}, "binary'AQID'"},
		{"binary url alphabet", []byte{0xfb, 0xff}, "binary'-_8='"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "'1'", FormatKey([]KeyValue{{Name: "Id", Value: "1"}}))
	assert.Equal(t, "OrderId=1,Line='a'", FormatKey([]KeyValue{
		{Name: "OrderId", Value: 1},
		{Name: "Line", Value: "a"},
	}))
}
