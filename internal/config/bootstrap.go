package config

import (
	"errors"
	"os"
	"path/filepath"
)

// defaultYAML seeds a fresh data dir. Cutoff figures mirror the original
// per-geography table; edit the user copy, not this.
const defaultYAML = `app:
  data_dir: "."
  verbose: false

search:
  query: "machine learning"
  location: "India"

sources:
  remoteok: true
  weworkremotely: true
  remotive: true
  ycombinator: true
  wellfound: true
  indeed: true
  indeed_pages: 1
  requests_per_sec: 1.5
  greenhouse_boards: []

email:
  enabled: false
  imap_host: "imap.gmail.com"
  imap_port: 993
  username: ""
  mailbox: "INBOX"
  search_subject_any: ["job alert", "new jobs"]
  max_messages: 50

apply:
  max_apps_per_run: 20
  headless: true
  resume_path: "resume.pdf"

profile:
  identity:
    name: ""
    phone: ""
    email: ""
    linkedin: ""
  keywords:
    - "machine learning"
    - "deep learning"
    - "computer vision"
    - "embedded"
    - "robotics"
    - "python"
    - "c++"
    - "tensorflow"

salary:
  cutoffs:
    - { match: "india", currency: "INR", monthly: 70000 }
    - { match: "united states", currency: "USD", monthly: 4000 }
    - { match: "usa", monthly: 4000 }
    - { match: "germany", currency: "EUR", monthly: 3000 }
    - { match: "uk", currency: "GBP", monthly: 2500 }

contacts:
  hunter_enabled: true
  snov_enabled: true
`

// EnsureUserConfig makes sure dataDir holds a config.yml, seeding it with the
// default config on first run, and returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.WriteFile(userPath, []byte(defaultYAML), 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
