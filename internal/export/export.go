// Package export reads and writes the tabular run outputs. Column order is
// a contract with downstream consumers and must not change.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/Vbhatt03/Automated-Application/internal/domain"
)

const snippetLimit = 200

var baseHeader = []string{
	"company", "role", "location", "remote", "salary",
	"link", "source", "status", "description_snippet",
}

var enrichedHeader = append(append([]string{}, baseHeader...),
	"recruiter_contacts", "cold_email_draft", "linkedin_message",
)

// Enrichment is the extra per-row output of the contact discovery pass.
type Enrichment struct {
	Contacts        string
	ColdEmail       string
	LinkedInMessage string
}

func baseRow(l domain.Listing) []string {
	return []string{
		l.Company,
		l.Role,
		l.Location,
		l.WorkMode,
		l.Salary,
		l.Link,
		l.Source,
		string(l.Status),
		snippet(l.Description),
	}
}

// snippet keeps exports readable: a listing description can be pages long.
func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= snippetLimit {
		return s
	}
	return string(r[:snippetLimit])
}

// WriteListings writes the raw or status-annotated snapshot.
func WriteListings(path string, listings []domain.Listing) error {
	return write(path, baseHeader, listings, nil)
}

// WriteEnriched writes the final export. extra must be parallel to listings;
// rows without enrichment get empty trailing cells.
func WriteEnriched(path string, listings []domain.Listing, extra []Enrichment) error {
	return write(path, enrichedHeader, listings, extra)
}

func write(path string, header []string, listings []domain.Listing, extra []Enrichment) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write export header: %w", err)
	}

	for i, l := range listings {
		row := baseRow(l)
		if extra != nil {
			var e Enrichment
			if i < len(extra) {
				e = extra[i]
			}
			row = append(row, e.Contacts, e.ColdEmail, e.LinkedInMessage)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush export: %w", err)
	}
	return nil
}

// ReadListings loads a previously written snapshot, statuses included. The
// enrichment pass starts here, so a missing file is a hard error rather
// than an empty result.
func ReadListings(path string) ([]domain.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read export %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	listings := make([]domain.Listing, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(baseHeader) {
			continue
		}
		listings = append(listings, domain.Listing{
			Company:     row[0],
			Role:        row[1],
			Location:    row[2],
			WorkMode:    row[3],
			Salary:      row[4],
			Link:        row[5],
			Source:      row[6],
			Status:      domain.Status(row[7]),
			Description: row[8],
		})
	}
	return listings, nil
}
