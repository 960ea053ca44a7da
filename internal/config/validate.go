package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus everything wrong
// or suspicious with it. Errors stop a run before it starts; warnings are
// surfaced and ignored.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Profile.Keywords = trimList(out.Profile.Keywords)
	out.Email.SearchSubjectAny = trimList(out.Email.SearchSubjectAny)
	out.Search.Query = strings.TrimSpace(out.Search.Query)
	out.Search.Location = strings.TrimSpace(out.Search.Location)

	// defaults
	if out.Sources.IndeedPages <= 0 {
		out.Sources.IndeedPages = 1
	}
	if out.Sources.RequestsPerSec <= 0 {
		out.Sources.RequestsPerSec = 1.5
	}
	if out.Email.Mailbox == "" {
		out.Email.Mailbox = "INBOX"
	}
	if out.Email.MaxMessages <= 0 {
		out.Email.MaxMessages = 50
	}

	// ---- validation rules ----

	if out.Apply.MaxPerRun < 0 {
		res.addErr("apply.max_apps_per_run must be >= 0")
	}
	if out.Apply.MaxPerRun > 100 {
		res.addWarn("apply.max_apps_per_run is very high (%d); automated submissions are externally visible and should stay throttled.", out.Apply.MaxPerRun)
	}

	if len(out.Profile.Keywords) == 0 {
		res.addWarn("profile.keywords is empty; nothing will pass the resume-fit filter.")
	}

	for i, c := range out.Salary.Cutoffs {
		if c.Monthly < 0 {
			res.addErr("salary.cutoffs[%d].monthly must be >= 0", i)
		}
		if strings.TrimSpace(c.Match) == "" && strings.TrimSpace(c.Currency) == "" {
			res.addErr("salary.cutoffs[%d] needs a match substring or a currency", i)
		}
	}

	if out.Email.Enabled {
		if out.Email.IMAPHost == "" || out.Email.Username == "" {
			res.addErr("email source enabled but imap_host/username missing")
		}
	}

	return out, res
}
