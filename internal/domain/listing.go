package domain

import "strings"

// Status is the application lifecycle state of a listing. Pending is the
// initial state; Applied and Flagged are terminal, and a record that never
// reaches an automated flow stays Pending.
type Status string

const (
	StatusPending Status = "Pending"
	StatusApplied Status = "Applied"
	StatusFlagged Status = "Flagged"
)

// Terminal reports whether the status may never change again. Pending records
// may still be picked up by a later run.
func (s Status) Terminal() bool {
	return s == StatusApplied || s == StatusFlagged
}

// Listing is one job posting pulled from any source.
type Listing struct {
	Company     string
	Role        string
	Location    string
	Link        string // canonical URL, part of the identity key
	Source      string // provider tag (RemoteOK, Indeed, email-alert, ...)
	Salary      string // free text, "N/A" when the source had none
	WorkMode    string // Remote/Hybrid/Onsite/Unknown
	Description string // search text for relevance matching
	Status      Status
}

// Key is the dedup identity: lower-cased, trimmed (company, role, location,
// link). Two records with the same key are the same listing no matter which
// source produced them.
type Key struct {
	Company  string
	Role     string
	Location string
	Link     string
}

func (l Listing) Key() Key {
	return Key{
		Company:  strings.ToLower(strings.TrimSpace(l.Company)),
		Role:     strings.ToLower(strings.TrimSpace(l.Role)),
		Location: strings.ToLower(strings.TrimSpace(l.Location)),
		Link:     strings.TrimSpace(l.Link),
	}
}

// Normalize trims every textual field and fills defaults so a provider that
// yielded partial data still produces a well-formed record. It never fails.
func Normalize(l Listing) Listing {
	l.Company = cleanText(l.Company)
	l.Role = cleanText(l.Role)
	l.Location = cleanText(l.Location)
	l.Link = strings.TrimSpace(l.Link)
	l.Source = cleanText(l.Source)
	l.Salary = cleanText(l.Salary)
	l.Description = cleanText(l.Description)

	if l.Salary == "" {
		l.Salary = "N/A"
	}
	if l.WorkMode == "" {
		l.WorkMode = InferWorkMode(l.Location, l.Role, l.Description)
	}
	if l.Status == "" {
		l.Status = StatusPending
	}
	return l
}

// InferWorkMode guesses the work mode from free text when the source did not
// carry one.
func InferWorkMode(location, role, desc string) string {
	blob := strings.ToLower(strings.Join([]string{location, role, desc}, " "))

	switch {
	case strings.Contains(blob, "remote"):
		return "Remote"
	case strings.Contains(blob, "hybrid"):
		return "Hybrid"
	case strings.Contains(blob, "on-site") || strings.Contains(blob, "onsite") || strings.Contains(blob, "on site"):
		return "Onsite"
	default:
		return "Unknown"
	}
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
