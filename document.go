package las

import (
	"strings"
)

// Version is a supported LAS revision.
type Version string

const (
	Version12 Version = "1.2"
	Version20 Version = "2.0"
	Version30 Version = "3.0"
)

// DataSet is a LAS 3.0 definition/data pair such as Core or Drilling.
type DataSet struct {
	Name       string
	Parameters *Section
	Definition *Section
	curves     []Curve
}

// Curves returns the data set's curves in definition order.
func (ds *DataSet) Curves() []Curve {
	return append([]Curve(nil), ds.curves...)
}

// Document is a parsed LAS file. It is read-only after construction.
type Document struct {
	version  Version
	wrapped  bool
	sections []*Section
	primary  map[SectionKind]*Section
	byName   map[string]*Section
	curves   []Curve
	byMnem   map[string]int
	datasets []*DataSet
}

// VersionNumber returns the declared LAS version.
func (d *Document) VersionNumber() Version { return d.version }

// Wrapped reports whether the data section used wrapped rows.
func (d *Document) Wrapped() bool { return d.wrapped }

// Version returns the ~Version section.
func (d *Document) Version() *Section { return d.sectionOfKind(SectionVersion) }

// Well returns the ~Well section.
func (d *Document) Well() *Section { return d.sectionOfKind(SectionWell) }

// Params returns the ~Parameter section (~Log_Parameter in LAS 3.0).
func (d *Document) Params() *Section { return d.sectionOfKind(SectionParameters) }

// CurveSection returns the ~Curve section (~Log_Definition in LAS 3.0).
func (d *Document) CurveSection() *Section { return d.sectionOfKind(SectionCurves) }

// Other returns the free text of the ~Other section.
func (d *Document) Other() string { return d.sectionOfKind(SectionOther).Text() }

// sectionOfKind returns the primary section of a kind. Every document has
// one of each primary kind, possibly empty.
func (d *Document) sectionOfKind(kind SectionKind) *Section {
	return d.primary[kind]
}

// Section looks up any section by name or title, ignoring case.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.byName[foldKey(strings.TrimPrefix(name, "~"))]
	return s, ok
}

// Sections returns the primary and named sections in file order.
func (d *Document) Sections() []*Section {
	return append([]*Section(nil), d.sections...)
}

// Curves returns the curves in declaration order.
func (d *Document) Curves() []Curve {
	return append([]Curve(nil), d.curves...)
}

// Keys returns the resolved curve mnemonics in declaration order.
func (d *Document) Keys() []string {
	keys := make([]string, len(d.curves))
	for i, c := range d.curves {
		keys[i] = c.Mnemonic
	}
	return keys
}

// Curve looks up a curve by resolved mnemonic. An exact match wins over a
// case-insensitive one.
func (d *Document) Curve(mnemonic string) (*Curve, bool) {
	for i := range d.curves {
		if d.curves[i].Mnemonic == mnemonic {
			c := d.curves[i]
			return &c, true
		}
	}
	i, ok := d.byMnem[foldKey(mnemonic)]
	if !ok {
		return nil, false
	}
	c := d.curves[i]
	return &c, true
}

// Column returns the samples of the named curve.
func (d *Document) Column(mnemonic string) (Column, bool) {
	c, ok := d.Curve(mnemonic)
	if !ok {
		return Column{}, false
	}
	return c.Data(), true
}

// Index returns the first curve, conventionally depth or time.
func (d *Document) Index() (*Curve, bool) {
	if len(d.curves) == 0 {
		return nil, false
	}
	c := d.curves[0]
	return &c, true
}

// DataSets returns the LAS 3.0 secondary data sets in file order.
func (d *Document) DataSets() []*DataSet {
	return append([]*DataSet(nil), d.datasets...)
}

// DataSet looks up a LAS 3.0 data set such as "Core", ignoring case.
func (d *Document) DataSet(name string) (*DataSet, bool) {
	for _, ds := range d.datasets {
		if strings.EqualFold(ds.Name, name) {
			return ds, true
		}
	}
	return nil, false
}
