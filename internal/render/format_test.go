package render

import (
	"image"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroupedInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{13034431, "13,034,431"},
		{200000000, "200,000,000"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatGroupedInt(tt.in))
		})
	}
}

func TestParseGroupedInt_RoundTrip(t *testing.T) {
	values := []int64{0, 1, 12, 123, 1234, 12345, 123456, 1234567, 200_000_000, 4_600_000_000, math.MaxInt64}
	for n := int64(1); n < math.MaxInt64/7; n *= 7 {
		values = append(values, n, n-1, n+1)
	}

	for _, n := range values {
		got, err := ParseGroupedInt(FormatGroupedInt(n))
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, got)
	}
}

func TestParseGroupedInt_Rejects(t *testing.T) {
	for _, s := range []string{"", ",", "1,23", "1234,567", "1,2345", "abc", "1,00a", "+5", "--3"} {
		_, err := ParseGroupedInt(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestFormatRank(t *testing.T) {
	assert.Equal(t, Unranked, FormatRank(0))
	assert.Equal(t, Unranked, FormatRank(-1))
	assert.Equal(t, "12,345", FormatRank(12345))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+1,500", FormatSigned(1500))
	assert.Equal(t, "0", FormatSigned(0))
	assert.Equal(t, "-20", FormatSigned(-20))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0%", FormatPercent(0))
	assert.Equal(t, "45.2%", FormatPercent(0.452))
	assert.Equal(t, "100.0%", FormatPercent(1))
}

func TestFormatCompact(t *testing.T) {
	assert.Equal(t, "9,999", FormatCompact(9999))
	assert.Equal(t, "12.3K", FormatCompact(12_345))
	assert.Equal(t, "13.0M", FormatCompact(13_034_431))
	assert.Equal(t, "4.6B", FormatCompact(4_600_000_000))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45s", FormatDuration(45*time.Second))
	assert.Equal(t, "1m", FormatDuration(time.Minute))
	assert.Equal(t, "2h", FormatDuration(2*time.Hour))
	assert.Equal(t, "3d 4h 12m", FormatDuration(76*time.Hour+12*time.Minute))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "07 Mar 2026", FormatDate(time.Date(2026, 3, 7, 18, 0, 0, 0, time.UTC)))
}

func TestTruncate(t *testing.T) {
	face := NewFace(testFont(t), 14)

	assert.Equal(t, "Zulrah", Truncate(face, "Zulrah", 500))

	long := "Phosani's Nightmare of Ashihama"
	short := Truncate(face, long, 80)
	assert.LessOrEqual(t, MeasureString(face, short), 80)
	assert.Contains(t, short, "...")
}

func TestCenteredOrigin(t *testing.T) {
	face := NewFace(testFont(t), 14)
	r := image.Rect(100, 100, 300, 140)

	o := CenteredOrigin(face, "99", r)
	w := MeasureString(face, "99")

	assert.Equal(t, r.Min.X+(r.Dx()-w)/2, o.X)
	assert.Greater(t, o.Y, r.Min.Y)
	assert.Less(t, o.Y, r.Max.Y)
}

func TestNewFace_FallsBackWithoutFont(t *testing.T) {
	face := NewFace(nil, 14)
	assert.Positive(t, MeasureString(face, "abc"))
}
