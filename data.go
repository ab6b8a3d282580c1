package las

import (
	"math"
	"strings"
	"time"
)

// ColumnKind is the storage type inferred for a curve's samples.
type ColumnKind uint8

const (
	ColumnFloat ColumnKind = iota
	ColumnTime
	ColumnText
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnFloat:
		return "float64"
	case ColumnTime:
		return "datetime"
	case ColumnText:
		return "text"
	default:
		return "unknown"
	}
}

// Column holds the samples of one curve. Exactly one slice is populated, per Kind.
type Column struct {
	kind   ColumnKind
	floats []float64
	times  []time.Time
	texts  []string
	nulls  []bool
}

// Kind returns the storage type.
func (c Column) Kind() ColumnKind { return c.kind }

// Len returns the number of samples.
func (c Column) Len() int { return len(c.nulls) }

// IsNull reports whether sample i was the null sentinel and got substituted.
func (c Column) IsNull(i int) bool { return c.nulls[i] }

// At returns sample i as a Value. Substituted nulls are Missing.
func (c Column) At(i int) Value {
	if c.nulls[i] {
		return Missing
	}
	switch c.kind {
	case ColumnFloat:
		return FloatValue(c.floats[i])
	case ColumnTime:
		return TimeValue(c.times[i])
	default:
		return TextValue(c.texts[i])
	}
}

// Floats returns a copy of a float column; nil for other kinds.
func (c Column) Floats() []float64 {
	if c.kind != ColumnFloat {
		return nil
	}
	return append([]float64(nil), c.floats...)
}

// Times returns a copy of a time column; nil for other kinds.
func (c Column) Times() []time.Time {
	if c.kind != ColumnTime {
		return nil
	}
	return append([]time.Time(nil), c.times...)
}

// Texts returns a copy of a text column; nil for other kinds.
func (c Column) Texts() []string {
	if c.kind != ColumnText {
		return nil
	}
	return append([]string(nil), c.texts...)
}

// Curve is one data column plus its header metadata.
type Curve struct {
	HeaderItem
	data Column
}

// Data returns the curve's samples.
func (c *Curve) Data() Column { return c.data }

// dataRow is one physical line of a data section.
type dataRow struct {
	line int
	text string
}

// dataConfig is the part of Options the builder needs, resolved against the header.
type dataConfig struct {
	nullSubs  bool
	null      float64
	hasNull   bool
	wrapped   bool
	delimiter string
}

type wrapState uint8

const (
	awaitingRowStart wrapState = iota
	accumulatingContinuation
)

// splitRows turns physical data lines into logical rows of exactly n tokens.
//
// In wrapped mode tokens accumulate across lines until n are collected; a
// line that pushes the count past n is an error. Unwrapped lines must each
// hold exactly n tokens.
func splitRows(rows []dataRow, n int, cfg dataConfig) ([][]string, error) {
	var (
		out     [][]string
		pending []string
		start   dataRow
		state   = awaitingRowStart
	)

	for _, row := range rows {
		tokens := splitDataLine(row.text, cfg.delimiter)
		if len(tokens) == 0 {
			continue
		}

		if !cfg.wrapped {
			if len(tokens) != n {
				return nil, &LineError{Line: row.line, Text: row.text, Err: &ColumnCountMismatchError{Expected: n, Got: len(tokens)}}
			}
			out = append(out, tokens)
			continue
		}

		switch state {
		case awaitingRowStart:
			start = row
			pending = append(make([]string, 0, n), tokens...)
		case accumulatingContinuation:
			pending = append(pending, tokens...)
		}

		switch {
		case len(pending) == n:
			out = append(out, pending)
			pending = nil
			state = awaitingRowStart
		case len(pending) > n:
			return nil, &LineError{Line: row.line, Text: row.text, Err: &ColumnCountMismatchError{Expected: n, Got: len(pending)}}
		default:
			state = accumulatingContinuation
		}
	}

	if state == accumulatingContinuation {
		return nil, &LineError{Line: start.line, Text: start.text, Err: &ColumnCountMismatchError{Expected: n, Got: len(pending)}}
	}
	return out, nil
}

// splitDataLine splits on whitespace, or on the LAS 3.0 DLM character.
func splitDataLine(text, delimiter string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if delimiter == "" || delimiter == " " {
		return strings.Fields(text)
	}
	parts := strings.Split(text, delimiter)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// buildCurves fills one Column per definition from the logical rows.
func buildCurves(defs []HeaderItem, rows [][]string, cfg dataConfig) []Curve {
	curves := make([]Curve, len(defs))
	for j, def := range defs {
		tokens := make([]string, len(rows))
		for i, row := range rows {
			tokens[i] = row[j]
		}
		curves[j] = Curve{HeaderItem: def, data: buildColumn(tokens, def.Format, cfg)}
	}
	return curves
}

// buildColumn infers the column type and applies null substitution.
func buildColumn(tokens []string, format string, cfg dataConfig) Column {
	isNull := make([]bool, len(tokens))
	for i, tok := range tokens {
		isNull[i] = cfg.isNullToken(tok)
	}

	if times, ok := parseTimeColumn(tokens, isNull, format); ok {
		if !cfg.nullSubs && anyTrue(isNull) {
			// The sentinel has no time representation; keep every sample as text.
			return textColumn(tokens, isNull, false)
		}
		return Column{kind: ColumnTime, times: times, nulls: maskNulls(isNull, cfg.nullSubs)}
	}

	if floats, ok := parseFloatColumn(tokens, isNull, cfg); ok {
		return Column{kind: ColumnFloat, floats: floats, nulls: maskNulls(isNull, cfg.nullSubs)}
	}

	return textColumn(tokens, isNull, cfg.nullSubs)
}

func parseTimeColumn(tokens []string, isNull []bool, format string) ([]time.Time, bool) {
	fields, hinted := compileDateFormat(format)
	times := make([]time.Time, len(tokens))
	nonNull := 0
	for i, tok := range tokens {
		if isNull[i] {
			continue
		}
		nonNull++
		if hinted {
			t, err := parseDate(tok, format, fields)
			if err != nil {
				return nil, false
			}
			times[i] = t
			continue
		}
		t, ok := parseISOTime(tok)
		if !ok {
			return nil, false
		}
		times[i] = t
	}
	return times, nonNull > 0
}

func parseFloatColumn(tokens []string, isNull []bool, cfg dataConfig) ([]float64, bool) {
	floats := make([]float64, len(tokens))
	for i, tok := range tokens {
		if isNull[i] {
			if cfg.nullSubs {
				floats[i] = math.NaN()
			} else {
				floats[i] = cfg.nullFloat(tok)
			}
			continue
		}
		f, ok := parseFloat(tok)
		if !ok {
			return nil, false
		}
		floats[i] = f
	}
	return floats, true
}

func textColumn(tokens []string, isNull []bool, subs bool) Column {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		if subs && isNull[i] {
			continue
		}
		texts[i] = tok
	}
	return Column{kind: ColumnText, texts: texts, nulls: maskNulls(isNull, subs)}
}

// maskNulls returns the substitution mask; without substitution nothing is null.
func maskNulls(isNull []bool, subs bool) []bool {
	if subs {
		return isNull
	}
	return make([]bool, len(isNull))
}

func (cfg dataConfig) isNullToken(tok string) bool {
	if !cfg.hasNull {
		return false
	}
	f, ok := parseFloat(tok)
	return ok && f == cfg.null
}

// nullFloat is the sentinel as written, for columns that keep it verbatim.
func (cfg dataConfig) nullFloat(tok string) float64 {
	if f, ok := parseFloat(tok); ok {
		return f
	}
	return cfg.null
}

func anyTrue(bs []bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}
