// Package goquery provides a goquery-based implementation of
// praticagem.Extractor. The movement table is located by the semantics of
// its header row rather than by position or exact wording, so reorderings,
// renamed headers, and extra columns on the source site do not break
// extraction.
package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/marcusvs/praticagem"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// requiredColumns are the normalized keywords that identify the movement
// table. A header matches a keyword when its normalized text contains the
// keyword as a substring, so "Data Prevista" still resolves to "data" and
// "Manobra Programada" to "manobra".
var requiredColumns = []string{"data", "horario", "manobra", "berco", "navio", "situacao"}

// Ensure Extractor implements praticagem.Extractor at compile time.
var _ praticagem.Extractor = (*Extractor)(nil)

// Extractor extracts movement records from the pilotage page HTML.
// It is stateless; concurrent use is safe.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// columnIndexes holds the resolved zero-based position of each semantic
// column in the selected table. A value of -1 means unresolved; Extract
// fails before reading any data row while any field is still -1.
type columnIndexes struct {
	date     int
	time     int
	maneuver int
	berth    int
	vessel   int
	status   int
}

// Extract parses the HTML, locates the movement table, and returns one
// Movement per data row in document order. A table with a header row but no
// data rows yields an empty slice. Returns ESTRUCTURE when no table carries
// all six required columns or a required column cannot be resolved.
func (e *Extractor) Extract(html string) ([]praticagem.Movement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, praticagem.Errorf(praticagem.EINVALID, "failed to parse HTML: %v", err)
	}

	table := findMovementTable(doc)
	if table == nil {
		return nil, praticagem.Errorf(praticagem.ESTRUCTURE, "movement table not found")
	}

	rows := table.Find("tr")
	movements := []praticagem.Movement{}
	if rows.Length() < 2 {
		// Header row only. The table shape is fine, there is just nothing
		// scheduled, so this is not an error.
		return movements, nil
	}

	idx, err := mapColumns(rows.First())
	if err != nil {
		return nil, err
	}

	rows.Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() == 0 {
			return // blank or formatting row
		}
		movements = append(movements, praticagem.Movement{
			Date:     cellText(cells, idx.date),
			Time:     cellText(cells, idx.time),
			Maneuver: cellText(cells, idx.maneuver),
			Berth:    cellText(cells, idx.berth),
			Vessel:   cellText(cells, idx.vessel),
			Status:   cellText(cells, idx.status),
		})
	})

	return movements, nil
}

// findMovementTable returns the first table whose header cells, once
// normalized, contain every required keyword. Returns nil if no table
// qualifies.
func findMovementTable(doc *goquery.Document) *goquery.Selection {
	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, candidate *goquery.Selection) bool {
		headers := candidate.Find("th").Map(func(_ int, th *goquery.Selection) string {
			return Normalize(th.Text())
		})
		for _, keyword := range requiredColumns {
			if !containsKeyword(headers, keyword) {
				return true // keep scanning
			}
		}
		table = candidate
		return false
	})
	return table
}

// mapColumns resolves the six semantic columns from the header row.
// Resolution happens in one pass over the headers and fails with ESTRUCTURE
// naming the first unresolved keyword, before any data row is touched.
func mapColumns(headerRow *goquery.Selection) (columnIndexes, error) {
	headers := headerRow.Find("th").Map(func(_ int, th *goquery.Selection) string {
		return Normalize(th.Text())
	})

	idx := columnIndexes{date: -1, time: -1, maneuver: -1, berth: -1, vessel: -1, status: -1}
	targets := []struct {
		keyword string
		field   *int
	}{
		{"data", &idx.date},
		{"horario", &idx.time},
		{"manobra", &idx.maneuver},
		{"berco", &idx.berth},
		{"navio", &idx.vessel},
		{"situacao", &idx.status},
	}

	for _, t := range targets {
		for i, header := range headers {
			if strings.Contains(header, t.keyword) {
				*t.field = i
				break
			}
		}
		if *t.field < 0 {
			return idx, praticagem.Errorf(praticagem.ESTRUCTURE, "required column missing: %s", t.keyword)
		}
	}

	return idx, nil
}

// cellText returns the trimmed text of the cell at the given index, or the
// empty string when the row has fewer cells than the header. Short rows are
// tolerated so one malformed row cannot abort the whole extraction.
func cellText(cells *goquery.Selection, index int) string {
	if index >= cells.Length() {
		return ""
	}
	return strings.TrimSpace(cells.Eq(index).Text())
}

func containsKeyword(headers []string, keyword string) bool {
	for _, header := range headers {
		if strings.Contains(header, keyword) {
			return true
		}
	}
	return false
}

// Normalize canonicalizes text for header comparison: Unicode diacritics
// are stripped via NFD decomposition, surrounding whitespace is trimmed,
// and the result is lower-cased. Normalizing an already-normalized string
// returns it unchanged.
func Normalize(s string) string {
	// The chain carries transform state, so build it per call to keep
	// concurrent extractions independent.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}
