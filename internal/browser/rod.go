package browser

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

const elementWait = 8 * time.Second

// RodDriver implements Capability on a headless Chromium controlled via the
// DevTools protocol. A single page is reused across navigations so cookies
// and login state survive within a run.
type RodDriver struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	logger   zerolog.Logger
}

// NewRodDriver launches Chromium and connects to it. The caller must Close.
func NewRodDriver(headless bool, logger zerolog.Logger) (*RodDriver, error) {
	l := launcher.New().
		Headless(headless).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("disable-default-apps").
		Set("disable-sync")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(url)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	return &RodDriver{
		browser:  b,
		launcher: l,
		logger:   logger.With().Str("component", "browser").Logger(),
	}, nil
}

func (d *RodDriver) currentPage(ctx context.Context) (*rod.Page, error) {
	if d.page == nil {
		page, err := d.browser.Context(ctx).Page(proto.TargetCreateTarget{})
		if err != nil {
			return nil, fmt.Errorf("open page: %w", err)
		}
		if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:  1366,
			Height: 900,
		}); err != nil {
			return nil, fmt.Errorf("set viewport: %w", err)
		}
		d.page = page
	}
	return d.page.Context(ctx), nil
}

func (d *RodDriver) Navigate(ctx context.Context, url string) error {
	page, err := d.currentPage(ctx)
	if err != nil {
		return err
	}
	d.logger.Debug().Str("url", url).Msg("navigating")
	if err := page.Navigate(url); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load %s: %w", url, err)
	}
	return nil
}

// element resolves a selector with a bounded wait. Timeouts collapse into
// ErrNotFound so callers can treat "slow" and "absent" identically.
func (d *RodDriver) element(ctx context.Context, selector string) (*rod.Element, error) {
	page, err := d.currentPage(ctx)
	if err != nil {
		return nil, err
	}
	el, err := page.Timeout(elementWait).Element(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return el, nil
}

func (d *RodDriver) FindAndClick(ctx context.Context, selector string) error {
	el, err := d.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

func (d *RodDriver) FindAndType(ctx context.Context, selector, text string) error {
	el, err := d.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.Input(text); err != nil {
		return fmt.Errorf("type into %s: %w", selector, err)
	}
	return nil
}

func (d *RodDriver) UploadFile(ctx context.Context, selector, path string) error {
	el, err := d.element(ctx, selector)
	if err != nil {
		return err
	}
	if err := el.SetFiles([]string{path}); err != nil {
		return fmt.Errorf("upload to %s: %w", selector, err)
	}
	return nil
}

func (d *RodDriver) Wait(ctx context.Context, dur time.Duration) error {
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (d *RodDriver) Cookies(ctx context.Context) ([]byte, error) {
	cookies, err := d.browser.Context(ctx).GetCookies()
	if err != nil {
		return nil, fmt.Errorf("get cookies: %w", err)
	}
	blob, err := json.Marshal(proto.CookiesToParams(cookies))
	if err != nil {
		return nil, fmt.Errorf("encode cookies: %w", err)
	}
	return blob, nil
}

func (d *RodDriver) RestoreCookies(ctx context.Context, blob []byte) error {
	var cookies []*proto.NetworkCookieParam
	if err := json.Unmarshal(blob, &cookies); err != nil {
		return fmt.Errorf("decode cookies: %w", err)
	}
	if err := d.browser.Context(ctx).SetCookies(cookies); err != nil {
		return fmt.Errorf("set cookies: %w", err)
	}
	return nil
}

func (d *RodDriver) Close() error {
	if d.page != nil {
		_ = d.page.Close()
	}
	err := d.browser.Close()
	d.launcher.Cleanup()
	return err
}
