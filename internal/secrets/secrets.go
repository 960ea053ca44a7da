package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the app's secrets in the OS keychain.
const KeyringService = "autoapply"

// Well-known secret names. The env fallback is the name upper-cased with
// dashes replaced, e.g. "hunter-api-key" -> AUTOAPPLY_HUNTER_API_KEY.
const (
	HunterAPIKey     = "hunter-api-key"
	SnovClientID     = "snov-client-id"
	SnovClientSecret = "snov-client-secret"
	IMAPPassword     = "imap-password"
)

var ErrNotFound = errors.New("secret not found")

// Get looks a secret up in the OS keyring first, then in the environment.
func Get(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.New("secret name is empty")
	}

	if v, err := keyring.Get(KeyringService, name); err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}

	if v := strings.TrimSpace(os.Getenv(envName(name))); v != "" {
		return v, nil
	}

	return "", ErrNotFound
}

func Set(name, value string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("secret name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}
	return keyring.Set(KeyringService, name, value)
}

func Delete(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("secret name is empty")
	}
	return keyring.Delete(KeyringService, name)
}

// SiteCredentials returns the login email/password pair for an apply target
// site, e.g. site "linkedin" reads linkedin-email / linkedin-password.
func SiteCredentials(site string) (email, password string, err error) {
	email, err = Get(site + "-email")
	if err != nil {
		return "", "", err
	}
	password, err = Get(site + "-password")
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func envName(name string) string {
	name = strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	return "AUTOAPPLY_" + name
}
