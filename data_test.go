package las

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(lines ...string) []dataRow {
	rows := make([]dataRow, len(lines))
	for i, line := range lines {
		rows[i] = dataRow{line: i + 1, text: line}
	}
	return rows
}

func TestSplitRows_Unwrapped(t *testing.T) {
	cfg := dataConfig{delimiter: " "}
	got, err := splitRows(rowsOf("1 2 3", "   ", "4 5 6"), 3, cfg)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2", "3"}, {"4", "5", "6"}}, got)

	_, err = splitRows(rowsOf("1 2 3", "4 5"), 3, cfg)
	require.ErrorIs(t, err, ErrColumnCount)

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)

	var mismatch *ColumnCountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Got)
}

func TestSplitRows_Wrapped(t *testing.T) {
	cfg := dataConfig{delimiter: " ", wrapped: true}

	got, err := splitRows(rowsOf(
		"910.000",
		"-999.25 2692.7075 0.3140 19.4086",
		"19.4086 13.1709 12.2681",
		"910.125",
		"-999.25 2712.6460 0.2886 23.3987",
		"23.3987 13.6129 12.4744",
	), 8, cfg)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "910.000", got[0][0])
	assert.Equal(t, "12.2681", got[0][7])
	assert.Equal(t, "910.125", got[1][0])
	assert.Len(t, got[1], 8)

	_, err = splitRows(rowsOf("1 2", "3 4"), 3, cfg)
	require.ErrorIs(t, err, ErrColumnCount)

	_, err = splitRows(rowsOf("1 2 3", "4"), 3, cfg)
	require.ErrorIs(t, err, ErrColumnCount)
	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
}

func TestSplitDataLine(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, splitDataLine("  1\t2   3 ", " "))
	assert.Equal(t, []string{"1670.0", "123.45", "SHALE"}, splitDataLine("1670.0, 123.45, SHALE", ","))
	assert.Equal(t, []string{"a", "", "c"}, splitDataLine("a,,c", ","))
	assert.Equal(t, []string{"x y", "z"}, splitDataLine("x y\tz", "\t"))
	assert.Nil(t, splitDataLine("   ", " "))
}

func TestBuildColumn_Inference(t *testing.T) {
	cfg := dataConfig{nullSubs: true, null: -999.25, hasNull: true}

	floats := buildColumn([]string{"1.5", "-999.25", "3"}, "", cfg)
	assert.Equal(t, ColumnFloat, floats.Kind())
	assert.Equal(t, 1.5, floats.Floats()[0])
	assert.True(t, math.IsNaN(floats.Floats()[1]))
	assert.True(t, floats.IsNull(1))
	assert.True(t, floats.At(1).IsMissing())

	times := buildColumn([]string{"2016-03-01T12:00:00", "2016-03-01T12:00:10"}, "", cfg)
	assert.Equal(t, ColumnTime, times.Kind())
	assert.Equal(t, time.Date(2016, time.March, 1, 12, 0, 10, 0, time.UTC), times.Times()[1])

	hinted := buildColumn([]string{"01/02/2017", "-999.25"}, "DD/MM/YYYY", cfg)
	assert.Equal(t, ColumnTime, hinted.Kind())
	assert.Equal(t, time.Date(2017, time.February, 1, 0, 0, 0, 0, time.UTC), hinted.Times()[0])
	assert.True(t, hinted.Times()[1].IsZero())
	assert.True(t, hinted.IsNull(1))

	texts := buildColumn([]string{"SHALE", "-999.25", "12"}, "", cfg)
	assert.Equal(t, ColumnText, texts.Kind())
	assert.Equal(t, []string{"SHALE", "", "12"}, texts.Texts())
	assert.True(t, texts.IsNull(1))

	mixed := buildColumn([]string{"01/02/2017", "notadate"}, "DD/MM/YYYY", cfg)
	assert.Equal(t, ColumnText, mixed.Kind())
}

func TestBuildColumn_NonDecimalNumbersAreText(t *testing.T) {
	cfg := dataConfig{nullSubs: true, null: -999.25, hasNull: true}

	for _, tok := range []string{"0x1p3", "Inf", "NaN", "1_000"} {
		col := buildColumn([]string{"1.0", tok}, "", cfg)
		assert.Equal(t, ColumnText, col.Kind(), tok)
		assert.Equal(t, []string{"1.0", tok}, col.Texts(), tok)
	}
}

func TestBuildColumn_NullsWithoutSubstitution(t *testing.T) {
	cfg := dataConfig{nullSubs: false, null: -999.25, hasNull: true}

	floats := buildColumn([]string{"1.5", "-999.2500"}, "", cfg)
	assert.Equal(t, ColumnFloat, floats.Kind())
	assert.Equal(t, []float64{1.5, -999.25}, floats.Floats())
	assert.False(t, floats.IsNull(1))

	times := buildColumn([]string{"01/02/2017", "-999.25"}, "DD/MM/YYYY", cfg)
	assert.Equal(t, ColumnText, times.Kind())
	assert.Equal(t, []string{"01/02/2017", "-999.25"}, times.Texts())

	texts := buildColumn([]string{"SHALE", "-999.25"}, "", cfg)
	assert.Equal(t, []string{"SHALE", "-999.25"}, texts.Texts())
}

func TestBuildColumn_AllNull(t *testing.T) {
	cfg := dataConfig{nullSubs: true, null: -999.25, hasNull: true}
	col := buildColumn([]string{"-999.25", "-999.25"}, "", cfg)
	assert.Equal(t, ColumnFloat, col.Kind())
	assert.True(t, math.IsNaN(col.Floats()[0]))
	_, _, ok := col.Range()
	assert.False(t, ok)
}

func TestNullSubstitution(t *testing.T) {
	path := filepath.Join("testdata", "null_subs.las")

	doc, err := Read(path)
	require.NoError(t, err)
	dt, ok := doc.Column("DT")
	require.True(t, ok)
	assert.True(t, math.IsNaN(dt.Floats()[0]))
	assert.Equal(t, 122.0, dt.Floats()[1])

	doc, err = Read(path, WithNullSubs(false))
	require.NoError(t, err)
	dt, _ = doc.Column("DT")
	assert.Equal(t, -999.25, dt.Floats()[0])
	assert.False(t, dt.IsNull(0))
}

func TestColumnAccessorsByKind(t *testing.T) {
	col := Column{kind: ColumnText, texts: []string{"a"}, nulls: []bool{false}}
	assert.Nil(t, col.Floats())
	assert.Nil(t, col.Times())
	assert.Equal(t, 1, col.Len())
	assert.True(t, col.At(0).Equal(TextValue("a")))
	assert.Equal(t, "text", col.Kind().String())
}
