// Package las provides parsing of LAS (Log ASCII Standard) well-log files.
package las

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// maxLineSize bounds a single physical line; LAS 3.0 data rows can be wide.
const maxLineSize = 16 << 20

// Scanner wraps a bufio.Scanner with line counting.
type Scanner struct {
	*bufio.Scanner
	lineNum int
}

// NewScanner creates a new Scanner from an io.Reader.
func NewScanner(r io.Reader) *Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{Scanner: s}
}

// NextLine advances the scanner and returns the current line number and text.
func (s *Scanner) NextLine() (int, string, bool) {
	if !s.Scan() {
		return s.lineNum, "", false
	}
	s.lineNum++
	text := s.Text()
	if s.lineNum == 1 {
		text = strings.TrimPrefix(text, "\ufeff")
	}
	return s.lineNum, text, true
}

// Option configures a Parser.
type Option func(*Parser)

// WithNullSubs enables or disables replacing the NULL sentinel with a missing marker.
func WithNullSubs(enabled bool) Option {
	return func(p *Parser) { p.nullSubs = enabled }
}

// WithNullValue overrides the NULL sentinel declared in the ~Well section.
func WithNullValue(null float64) Option {
	return func(p *Parser) {
		p.null = null
		p.nullSet = true
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithConcurrency bounds the number of files ReadFiles parses at once.
func WithConcurrency(n int) Option {
	return func(p *Parser) { p.concurrency = n }
}

// Parser holds read configuration. A Parser keeps no state between
// documents and may be shared by concurrent callers.
type Parser struct {
	nullSubs    bool
	null        float64
	nullSet     bool
	logger      logrus.FieldLogger
	concurrency int
}

// NewParser creates a Parser with null substitution enabled.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		nullSubs:    true,
		logger:      logrus.StandardLogger(),
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDocument parses a LAS document from an io.Reader.
func (p *Parser) ParseDocument(r io.Reader) (*Document, error) {
	a := newAssembler(p)
	scanner := NewScanner(r)

	for {
		lineNum, line, ok := scanner.NextLine()
		if !ok {
			break
		}
		if err := a.consume(lineNum, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LineError{Line: scanner.lineNum + 1, Err: err}
	}

	return a.finish()
}

// assembler is the per-document state of one parse.
type assembler struct {
	p   *Parser
	log logrus.FieldLogger

	sections []*Section
	current  *Section
	dataset  string
	headers  map[*Section]dataRow

	primary  map[SectionKind]*Section
	defs     map[string]*Section
	params   map[string]*Section
	rows     map[string][]dataRow
	setOrder []string
	setNames map[string]string
	textOnly map[*Section]bool

	version Version
}

func newAssembler(p *Parser) *assembler {
	return &assembler{
		p:        p,
		log:      p.logger,
		headers:  make(map[*Section]dataRow),
		primary:  make(map[SectionKind]*Section),
		defs:     make(map[string]*Section),
		params:   make(map[string]*Section),
		rows:     make(map[string][]dataRow),
		setNames: make(map[string]string),
		textOnly: make(map[*Section]bool),
	}
}

// consume dispatches one physical line to the open section.
func (a *assembler) consume(lineNum int, line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "~") {
		a.openSection(lineNum, trimmed)
		return nil
	}

	if a.current == nil {
		if !strings.HasPrefix(trimmed, "#") {
			a.log.WithField("line", lineNum).Debug("ignoring text before first section")
		}
		return nil
	}

	switch a.current.Kind {
	case SectionData:
		if strings.HasPrefix(trimmed, "#") {
			return nil
		}
		a.rows[a.dataset] = append(a.rows[a.dataset], dataRow{line: lineNum, text: line})
		return nil
	case SectionOther:
		a.current.lines = append(a.current.lines, strings.TrimRight(line, " \t"))
		return nil
	}

	if strings.HasPrefix(trimmed, "#") {
		return nil
	}

	if a.current.Kind == SectionUnknown {
		a.current.lines = append(a.current.lines, strings.TrimRight(line, " \t"))
		if a.textOnly[a.current] {
			return nil
		}
		raw, err := splitHeaderLine(line)
		if err == nil {
			var item HeaderItem
			if item, err = raw.item(); err == nil {
				a.current.items = append(a.current.items, item)
				return nil
			}
		}
		a.log.WithFields(logrus.Fields{"line": lineNum, "section": a.current.Name}).
			Warn("section is not in header format, keeping it as text")
		a.textOnly[a.current] = true
		a.current.items = nil
		return nil
	}

	return a.headerLine(lineNum, line)
}

// headerLine tokenizes a line of a header section.
func (a *assembler) headerLine(lineNum int, line string) error {
	raw, err := splitHeaderLine(line)
	if err != nil {
		return &LineError{Line: lineNum, Text: line, Err: err}
	}

	// LAS 1.2 puts the information in the description column of ~Well.
	if a.current.Kind == SectionWell && a.version == Version12 && a.current == a.primary[SectionWell] {
		switch strings.ToUpper(raw.name) {
		case "STRT", "STOP", "STEP", "NULL":
		default:
			if raw.description != "" {
				raw.value, raw.description = raw.description, raw.value
			}
		}
	}

	item, err := raw.item()
	if err != nil {
		return &LineError{Line: lineNum, Text: line, Err: err}
	}

	if a.current.Kind == SectionVersion && strings.EqualFold(item.OriginalMnemonic, "VERS") {
		v, ok := detectVersion(item.Value)
		if !ok {
			return &LineError{Line: lineNum, Text: line, Err: &UnknownVersionError{Version: FormatValue(item.Value, "")}}
		}
		a.version = v
		a.log.WithFields(logrus.Fields{"line": lineNum, "version": v}).Debug("detected LAS version")
	}

	a.current.items = append(a.current.items, item)
	return nil
}

// openSection starts a new section from a ~ header line.
func (a *assembler) openSection(lineNum int, line string) {
	title := strings.TrimSpace(strings.TrimPrefix(line, "~"))
	name, kind, dataset := classifySection(title)

	sec := newSection(name, title, kind)
	a.sections = append(a.sections, sec)
	a.headers[sec] = dataRow{line: lineNum, text: line}
	a.current = sec
	a.dataset = foldKey(dataset)

	if dataset != "" {
		if _, ok := a.setNames[a.dataset]; !ok {
			a.setNames[a.dataset] = dataset
			a.setOrder = append(a.setOrder, a.dataset)
		}
		switch kind {
		case SectionCurves:
			if _, ok := a.defs[a.dataset]; !ok {
				a.defs[a.dataset] = sec
			}
		case SectionParameters:
			if _, ok := a.params[a.dataset]; !ok {
				a.params[a.dataset] = sec
			}
		}
	}

	isPrimary := dataset == "" || a.dataset == foldKey(logDataSet)
	if _, seen := a.primary[kind]; isPrimary && !seen && kind != SectionUnknown {
		a.primary[kind] = sec
	}

	a.log.WithFields(logrus.Fields{
		"line":    lineNum,
		"section": name,
		"kind":    kind.String(),
	}).Debug("opened section")
}

// finish resolves mnemonics, builds curve data and assembles the Document.
func (a *assembler) finish() (*Document, error) {
	if a.version == "" {
		at := dataRow{line: 1}
		if v, ok := a.primary[SectionVersion]; ok {
			at = a.headers[v]
		}
		return nil, &LineError{Line: at.line, Text: at.text, Err: &UnknownVersionError{}}
	}

	for _, sec := range a.sections {
		sec.resolve()
	}

	doc := &Document{
		version: a.version,
		byName:  make(map[string]*Section),
		byMnem:  make(map[string]int),
	}

	for _, kind := range []SectionKind{SectionVersion, SectionWell, SectionCurves, SectionParameters, SectionOther} {
		if _, ok := a.primary[kind]; !ok {
			sec := newSection(defaultSectionName(kind), "", kind)
			a.primary[kind] = sec
			a.sections = append(a.sections, sec)
		}
	}
	doc.sections = a.sections
	for _, sec := range a.sections {
		for _, key := range []string{sec.Name, sec.Title} {
			if k := foldKey(key); k != "" {
				if _, taken := doc.byName[k]; !taken {
					doc.byName[k] = sec
				}
			}
		}
	}

	doc.primary = a.primary
	cfg := a.dataConfig()
	doc.wrapped = cfg.wrapped

	logKey := foldKey(logDataSet)
	defs := a.primary[SectionCurves]
	curves, err := a.buildDataSet(defs, a.rows[logKey], cfg)
	if err != nil {
		return nil, err
	}
	doc.curves = curves
	for i, c := range curves {
		doc.byMnem[foldKey(c.Mnemonic)] = i
	}

	// LAS 3.0 secondary data sets are never wrapped.
	setCfg := cfg
	setCfg.wrapped = false
	for _, key := range a.setOrder {
		if key == logKey {
			continue
		}
		ds := &DataSet{Name: a.setNames[key], Parameters: a.params[key], Definition: a.defs[key]}
		if ds.Definition != nil || len(a.rows[key]) > 0 {
			if ds.curves, err = a.buildDataSet(ds.Definition, a.rows[key], setCfg); err != nil {
				return nil, err
			}
		}
		doc.datasets = append(doc.datasets, ds)
	}

	a.checkIndexExtent(doc)

	a.log.WithFields(logrus.Fields{
		"version": doc.version,
		"curves":  len(doc.curves),
		"wrapped": doc.wrapped,
	}).Debug("parsed LAS document")
	return doc, nil
}

func (a *assembler) buildDataSet(defs *Section, rows []dataRow, cfg dataConfig) ([]Curve, error) {
	items := defs.Items()
	logical, err := splitRows(rows, len(items), cfg)
	if err != nil {
		return nil, err
	}
	return buildCurves(items, logical, cfg), nil
}

// dataConfig reads WRAP, DLM and NULL from the header and applies overrides.
func (a *assembler) dataConfig() dataConfig {
	cfg := dataConfig{nullSubs: a.p.nullSubs, delimiter: " "}
	version := a.primary[SectionVersion]

	if text, ok := version.Value("WRAP").Text(); ok {
		cfg.wrapped = strings.EqualFold(text, "YES")
	}

	if item, ok := version.Get("DLM"); ok {
		text, _ := item.Value.Text()
		switch strings.ToUpper(text) {
		case "", "SPACE":
		case "COMMA":
			cfg.delimiter = ","
		case "TAB":
			cfg.delimiter = "\t"
		default:
			a.log.WithField("dlm", text).Warn("unknown DLM value, splitting data on whitespace")
		}
	}

	switch {
	case a.p.nullSet:
		cfg.null, cfg.hasNull = a.p.null, true
	default:
		if f, ok := a.primary[SectionWell].Value("NULL").Float(); ok {
			cfg.null, cfg.hasNull = f, true
		}
	}
	return cfg
}

// checkIndexExtent warns when the data does not span STRT..STOP.
func (a *assembler) checkIndexExtent(doc *Document) {
	lo, hi, ok := doc.IndexRange()
	if !ok {
		return
	}
	index, _ := doc.Index()
	if index.Data().Kind() != ColumnFloat {
		return
	}
	well := doc.Well()
	strt, okStrt := well.Value("STRT").Float()
	stop, okStop := well.Value("STOP").Float()
	if !okStrt || !okStop {
		return
	}
	tol := 1e-6
	if step, ok := well.Value("STEP").Float(); ok && step != 0 {
		tol = math.Abs(step) / 2
	}
	wantLo, wantHi := math.Min(strt, stop), math.Max(strt, stop)
	if math.Abs(lo-wantLo) > tol || math.Abs(hi-wantHi) > tol {
		a.log.WithFields(logrus.Fields{
			"strt": strt, "stop": stop, "min": lo, "max": hi,
		}).Warn("index curve does not match STRT/STOP")
	}
}

func detectVersion(v Value) (Version, bool) {
	f, ok := v.Float()
	if !ok {
		return "", false
	}
	switch {
	case math.Abs(f-1.2) < 1e-9:
		return Version12, true
	case math.Abs(f-2.0) < 1e-9:
		return Version20, true
	case math.Abs(f-3.0) < 1e-9:
		return Version30, true
	}
	return "", false
}

func defaultSectionName(kind SectionKind) string {
	switch kind {
	case SectionVersion:
		return "Version"
	case SectionWell:
		return "Well"
	case SectionCurves:
		return "Curves"
	case SectionParameters:
		return "Parameter"
	case SectionOther:
		return "Other"
	}
	return kind.String()
}
