package render

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/domain/model"
	"github.com/urbanwaste/dumpwatch/pkg/domain/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var statusEmoji = map[types.Status]string{
	types.StatusPending:    "🔴",
	types.StatusInProgress: "🟡",
	types.StatusResolved:   "🟢",
}

// StatusLabel formats a status for humans, e.g. "🟡 In progress"
func StatusLabel(status types.Status) string {
	emoji, ok := statusEmoji[status]
	if !ok {
		emoji = "❓"
	}
	return emoji + " " + capitalize(strings.ReplaceAll(status.String(), "_", " "))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Printer writes human-readable views of points and reports
type Printer struct {
	w      io.Writer
	locale language.Tag
}

// NewPrinter creates a Printer that sorts names with the collation rules of locale
func NewPrinter(w io.Writer, locale language.Tag) *Printer {
	return &Printer{w: w, locale: locale}
}

// Writer returns the underlying writer
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Printf writes a formatted line fragment
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// Println writes a line
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.w, args...)
}

// SortNames returns a copy of names in locale order ("Álvaro" next to "Alvaro", not after "Z")
func (p *Printer) SortNames(names []string) []string {
	sorted := slices.Clone(names)
	collate.New(p.locale).SortStrings(sorted)
	return sorted
}

// Point prints the details of a single point
func (p *Printer) Point(point model.DisposalPoint) {
	p.Printf("     ID: %d\n", point.ID)
	p.Printf("     Neighborhood: %s\n", point.Neighborhood)
	p.Printf("     Severity: %d\n", point.Severity)
	p.Printf("     Status: %s\n", StatusLabel(point.Status))
}

// PointsOfNeighborhood prints points where the neighborhood is already known
func (p *Printer) PointsOfNeighborhood(points []model.DisposalPoint) {
	for _, point := range points {
		p.Printf("     - ID: %d, Severity: %d, Status: %s\n", point.ID, point.Severity, StatusLabel(point.Status))
	}
}

// PointsWithNeighborhood prints points with their neighborhood and severity
func (p *Printer) PointsWithNeighborhood(points []model.DisposalPoint) {
	for _, point := range points {
		p.Printf("     - ID: %d, Neighborhood: %s, Severity: %d\n", point.ID, point.Neighborhood, point.Severity)
	}
}

// PointTable prints every field of every point in aligned columns
func (p *Printer) PointTable(points []model.DisposalPoint) {
	if len(points) == 0 {
		p.Println("  -> No disposal points registered.")
		return
	}
	for _, point := range points {
		p.Printf("  - ID: %-3d | Neighborhood: %-15s | Severity: %-2d | Status: %s\n",
			point.ID, point.Neighborhood, point.Severity, StatusLabel(point.Status))
	}
}

// Neighborhoods prints neighborhood names in locale order
func (p *Printer) Neighborhoods(names []string) {
	for _, name := range p.SortNames(names) {
		p.Printf("     - %s\n", name)
	}
}

// Report prints the per-neighborhood counts in locale order of the names
func (p *Printer) Report(report map[string]int) {
	names := make([]string, 0, len(report))
	for name := range report {
		names = append(names, name)
	}
	for _, name := range p.SortNames(names) {
		p.Printf("     - %s: %d disposal point(s)\n", name, report[name])
	}
}

// Bands prints the definition of every severity band
func (p *Printer) Bands() {
	for _, band := range types.Bands() {
		min, max := band.Bounds()
		p.Printf("     - %s (%d-%d): %s\n", capitalize(band.String()), min, max, band.Description())
	}
}

// YAML writes v as a YAML document
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return goerr.Wrap(err, "failed to flush YAML")
	}
	return nil
}
