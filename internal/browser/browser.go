// Package browser defines the automation capability the apply flow drives.
// The production implementation is backed by a headless Chromium via rod;
// tests substitute scripted fakes.
package browser

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports that a selector matched no element within the wait
// window. The apply state machine branches on it: a missing apply button
// means "leave the record Pending", a missing submit button means "Flagged".
var ErrNotFound = errors.New("element not found")

// Capability is the minimal surface the apply flow needs from a browser.
// Every method honors ctx cancellation.
type Capability interface {
	// Navigate loads the URL and waits for the page load event.
	Navigate(ctx context.Context, url string) error
	// FindAndClick locates the first element matching selector and clicks it.
	FindAndClick(ctx context.Context, selector string) error
	// FindAndType locates the element and types text into it.
	FindAndType(ctx context.Context, selector, text string) error
	// UploadFile sets path on a file input matching selector.
	UploadFile(ctx context.Context, selector, path string) error
	// Wait sleeps for d or until ctx is done, whichever comes first.
	Wait(ctx context.Context, d time.Duration) error
	// Cookies returns the current cookie jar as an opaque blob.
	Cookies(ctx context.Context) ([]byte, error)
	// RestoreCookies installs a blob previously returned by Cookies.
	RestoreCookies(ctx context.Context, blob []byte) error
	// Close releases the underlying browser.
	Close() error
}
