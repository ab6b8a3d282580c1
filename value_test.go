package las

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Scalars(t *testing.T) {
	tests := []struct {
		raw  string
		want Value
	}{
		{"", Missing},
		{"   ", Missing},
		{"42", IntValue(42)},
		{"-7", IntValue(-7)},
		{"1670.000", FloatValue(1670)},
		{"-999.25", FloatValue(-999.25)},
		{"1.5e3", FloatValue(1500)},
		{"SAND", TextValue("SAND")},
		{"100091604920W300", TextValue("100091604920W300")},
		{"300E074350061450", TextValue("300E074350061450")},
		{"0x1F", TextValue("0x1F")},
		{"1_000", TextValue("1_000")},
		{"Inf", TextValue("Inf")},
		{"NaN", TextValue("NaN")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw, "")
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v (%s), got %v (%s)", tt.want, tt.want.Kind(), got, got.Kind())
		})
	}
}

func TestParseValue_FormatHintNotDate(t *testing.T) {
	got, err := ParseValue("0.2160", "F8.4")
	require.NoError(t, err)
	assert.True(t, got.Equal(FloatValue(0.216)))

	got, err = ParseValue("1", "S")
	require.NoError(t, err)
	assert.True(t, got.Equal(IntValue(1)))
}

func TestParseValue_Dates(t *testing.T) {
	tests := []struct {
		raw    string
		format string
		want   time.Time
	}{
		{"01/10/2016", "MM/DD/YYYY", time.Date(2016, time.January, 10, 0, 0, 0, 0, time.UTC)},
		{"01/10/2016", "DD/MM/YYYY", time.Date(2016, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{"DEC-3-2017", "MMM-DD-YYYY", time.Date(2017, time.December, 3, 0, 0, 0, 0, time.UTC)},
		{"dec-03-2017", "MMM-DD-YYYY", time.Date(2017, time.December, 3, 0, 0, 0, 0, time.UTC)},
		{"25-DEC-88", "DD-MMM-YY", time.Date(1988, time.December, 25, 0, 0, 0, 0, time.UTC)},
		{"05/06/12", "DD/MM/YY", time.Date(2012, time.June, 5, 0, 0, 0, 0, time.UTC)},
		{"2016-03-01T12:00:10", "YYYY-MM-DDThh:mm:ss", time.Date(2016, time.March, 1, 12, 0, 10, 0, time.UTC)},
		{"14:05", "hh:mm", time.Date(1, time.January, 1, 14, 5, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw+" "+tt.format, func(t *testing.T) {
			got, err := ParseValue(tt.raw, tt.format)
			require.NoError(t, err)
			tm, ok := got.Time()
			require.True(t, ok, "expected datetime, got %s", got.Kind())
			assert.Equal(t, tt.want, tm)
		})
	}
}

func TestParseValue_BadDates(t *testing.T) {
	tests := []struct {
		raw    string
		format string
	}{
		{"13/25/2016", "DD/MM/YYYY"},
		{"31/02/2016", "DD/MM/YYYY"},
		{"ABC-03-2017", "MMM-DD-YYYY"},
		{"2016/01/01", "DD-MM-YYYY"},
		{"01/01/2016 extra", "DD/MM/YYYY"},
		{"25:00", "hh:mm"},
		{"yesterday", "DD/MM/YYYY"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseValue(tt.raw, tt.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDateParse)
			assert.True(t, got.IsMissing())

			var dpe *DateParseError
			require.ErrorAs(t, err, &dpe)
			assert.Equal(t, tt.format, dpe.Format)
		})
	}
}

func TestIsDateFormat(t *testing.T) {
	assert.True(t, IsDateFormat("DD/MM/YYYY"))
	assert.True(t, IsDateFormat("MMM-DD-YYYY"))
	assert.True(t, IsDateFormat("hh:mm"))
	assert.True(t, IsDateFormat("YYYY-MM-DDThh:mm:ss"))
	assert.False(t, IsDateFormat(""))
	assert.False(t, IsDateFormat("F13.4"))
	assert.False(t, IsDateFormat("S"))
	assert.False(t, IsDateFormat("E12.4"))
}

func TestFormatValue(t *testing.T) {
	date := time.Date(2016, time.January, 22, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "", FormatValue(Missing, ""))
	assert.Equal(t, "42", FormatValue(IntValue(42), ""))
	assert.Equal(t, "1670.0", FormatValue(FloatValue(1670), ""))
	assert.Equal(t, "-999.25", FormatValue(FloatValue(-999.25), ""))
	assert.Equal(t, "1e+21", FormatValue(FloatValue(1e21), ""))
	assert.Equal(t, "NaN", FormatValue(FloatValue(math.NaN()), ""))
	assert.Equal(t, "SAND", FormatValue(TextValue("SAND"), ""))
	assert.Equal(t, "22/01/2016", FormatValue(TimeValue(date), "DD/MM/YYYY"))
	assert.Equal(t, "JAN-22-2016", FormatValue(TimeValue(date), "MMM-DD-YYYY"))
	assert.Equal(t, "2016-01-22T00:00:00", FormatValue(TimeValue(date), ""))
}

func TestFormatValue_RoundTrip(t *testing.T) {
	values := []struct {
		v      Value
		format string
	}{
		{IntValue(-12), ""},
		{FloatValue(0.1), ""},
		{FloatValue(1670), ""},
		{FloatValue(2.5e-7), ""},
		{TextValue("ANY ET AL OIL WELL #12"), ""},
		{TimeValue(time.Date(1986, time.December, 13, 0, 0, 0, 0, time.UTC)), "DD/MM/YYYY"},
		{TimeValue(time.Date(2017, time.December, 3, 0, 0, 0, 0, time.UTC)), "MMM-DD-YYYY"},
		{TimeValue(time.Date(1, time.January, 1, 14, 5, 0, 0, time.UTC)), "hh:mm"},
	}

	for _, tt := range values {
		t.Run(tt.v.String(), func(t *testing.T) {
			back, err := ParseValue(FormatValue(tt.v, tt.format), tt.format)
			require.NoError(t, err)
			assert.True(t, tt.v.Equal(back), "%v != %v", tt.v, back)
		})
	}
}

func TestValueAccessors(t *testing.T) {
	f, ok := IntValue(3).Float()
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = TextValue("x").Float()
	assert.False(t, ok)

	_, ok = FloatValue(1.5).Int()
	assert.False(t, ok)

	assert.True(t, FloatValue(math.NaN()).Equal(FloatValue(math.NaN())))
	assert.False(t, IntValue(1).Equal(FloatValue(1)))
	assert.True(t, Missing.Equal(Value{}))
	assert.Equal(t, "float", KindFloat.String())
}
