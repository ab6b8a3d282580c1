package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/lasgo/las"
)

type headerItemOut struct {
	Mnemonic     string `yaml:"mnemonic"`
	Unit         string `yaml:"unit,omitempty"`
	Value        string `yaml:"value,omitempty"`
	Type         string `yaml:"type"`
	Format       string `yaml:"format,omitempty"`
	Description  string `yaml:"description,omitempty"`
	Associations string `yaml:"associations,omitempty"`
}

type sectionOut struct {
	Name  string          `yaml:"name"`
	Title string          `yaml:"title,omitempty"`
	Items []headerItemOut `yaml:"items,omitempty"`
	Text  string          `yaml:"text,omitempty"`
}

func headerAction(c *cli.Context) error {
	doc, err := readArg(c)
	if err != nil {
		return err
	}

	switch c.String("format") {
	case "yaml":
		return writeHeaderYAML(c.App.Writer, doc)
	case "text":
		return writeHeaderText(c.App.Writer, doc)
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
}

func headerSections(doc *las.Document) []sectionOut {
	var out []sectionOut
	for _, sec := range doc.Sections() {
		if sec.Kind == las.SectionData {
			continue
		}
		so := sectionOut{Name: sec.Name, Title: sec.Title, Text: sec.Text()}
		for _, item := range sec.Items() {
			so.Items = append(so.Items, headerItemOut{
				Mnemonic:     item.Mnemonic,
				Unit:         item.Unit,
				Value:        las.FormatValue(item.Value, item.Format),
				Type:         item.Value.Kind().String(),
				Format:       item.Format,
				Description:  item.Description,
				Associations: item.Associations,
			})
		}
		out = append(out, so)
	}
	return out
}

func writeHeaderYAML(w io.Writer, doc *las.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(map[string]any{
		"version":  string(doc.VersionNumber()),
		"wrapped":  doc.Wrapped(),
		"sections": headerSections(doc),
	})
	if err != nil {
		return err
	}
	return enc.Close()
}

func writeHeaderText(w io.Writer, doc *las.Document) error {
	for _, sec := range headerSections(doc) {
		fmt.Fprintf(w, "~%s\n", sec.Name)
		for _, item := range sec.Items {
			fmt.Fprintf(w, "  %s.%s %s : %s\n", item.Mnemonic, item.Unit, item.Value, item.Description)
		}
		if sec.Text != "" {
			fmt.Fprintln(w, sec.Text)
		}
	}
	return nil
}

func curvesAction(c *cli.Context) error {
	doc, err := readArg(c)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MNEMONIC\tUNIT\tTYPE\tSAMPLES\tMIN\tMAX\tDESCRIPTION")
	for _, curve := range doc.Curves() {
		col := curve.Data()
		lo, hi := "-", "-"
		if l, h, ok := col.Range(); ok {
			lo, hi = formatFloat(l), formatFloat(h)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			curve.Mnemonic, curve.Unit, col.Kind(), col.Len(), lo, hi, curve.Description)
	}
	return tw.Flush()
}

func dataAction(c *cli.Context) error {
	doc, err := readArg(c)
	if err != nil {
		return err
	}

	names := c.StringSlice("curve")
	if len(names) == 0 {
		names = doc.Keys()
	}
	cols := make([]las.Column, len(names))
	for i, name := range names {
		col, ok := doc.Column(name)
		if !ok {
			return fmt.Errorf("no curve %q (have %s)", name, strings.Join(doc.Keys(), ", "))
		}
		cols[i] = col
	}

	w := c.App.Writer
	fmt.Fprintln(w, strings.Join(names, "\t"))
	if len(cols) == 0 {
		return nil
	}
	row := make([]string, len(cols))
	for i := 0; i < cols[0].Len(); i++ {
		for j, col := range cols {
			v := col.At(i)
			if f, ok := v.Float(); ok {
				row[j] = formatFloat(f)
			} else {
				row[j] = v.String()
			}
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
