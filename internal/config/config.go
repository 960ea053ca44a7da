package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Cutoff is one row of the salary cutoff table: a listing whose location
// contains Match (or, failing that, whose detected currency equals Currency)
// must earn at least Monthly per month in that currency.
type Cutoff struct {
	Match    string  `yaml:"match"`
	Currency string  `yaml:"currency"`
	Monthly  float64 `yaml:"monthly"`
}

// Identity is the contact identity typed into application forms and rendered
// into outreach drafts.
type Identity struct {
	Name     string `yaml:"name"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
}

type Config struct {
	App struct {
		DataDir string `yaml:"data_dir"`
		Verbose bool   `yaml:"verbose"`
	} `yaml:"app"`

	Search struct {
		Query    string `yaml:"query"`
		Location string `yaml:"location"`
	} `yaml:"search"`

	Sources struct {
		RemoteOK       bool    `yaml:"remoteok"`
		WeWorkRemotely bool    `yaml:"weworkremotely"`
		Remotive       bool    `yaml:"remotive"`
		YCombinator    bool    `yaml:"ycombinator"`
		Wellfound      bool    `yaml:"wellfound"`
		Indeed         bool    `yaml:"indeed"`
		IndeedPages    int     `yaml:"indeed_pages"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`

		// hosted Greenhouse board slugs, e.g. "acme" for
		// boards.greenhouse.io/acme
		GreenhouseBoards []string `yaml:"greenhouse_boards"`
	} `yaml:"sources"`

	Email struct {
		Enabled          bool     `yaml:"enabled"`
		IMAPHost         string   `yaml:"imap_host"`
		IMAPPort         int      `yaml:"imap_port"`
		Username         string   `yaml:"username"`
		Mailbox          string   `yaml:"mailbox"`
		SearchSubjectAny []string `yaml:"search_subject_any"`
		MaxMessages      int      `yaml:"max_messages"`
	} `yaml:"email"`

	Apply struct {
		MaxPerRun  int    `yaml:"max_apps_per_run"`
		Headless   bool   `yaml:"headless"`
		ResumePath string `yaml:"resume_path"`
	} `yaml:"apply"`

	Profile struct {
		Identity Identity `yaml:"identity"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"profile"`

	Salary struct {
		Cutoffs []Cutoff `yaml:"cutoffs"`
	} `yaml:"salary"`

	Contacts struct {
		HunterEnabled bool `yaml:"hunter_enabled"`
		SnovEnabled   bool `yaml:"snov_enabled"`
	} `yaml:"contacts"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
