// Package navigate resolves menu links and hands them to a navigation
// target. The menu itself never navigates; it only reports activations.
package navigate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Navigator performs navigation to a resolved target.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// Func adapts a function to Navigator.
type Func func(ctx context.Context, target string) error

func (f Func) Navigate(ctx context.Context, target string) error {
	return f(ctx, target)
}

// Writer prints each target on its own line, for shells that consume the
// selection.
type Writer struct {
	Out io.Writer
}

func (w Writer) Navigate(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.Out == nil {
		return fmt.Errorf("navigate %s: no output", target)
	}
	_, err := fmt.Fprintln(w.Out, target)
	return err
}

// Recorder keeps targets in memory until the terminal is released.
type Recorder struct {
	mu      sync.Mutex
	targets []string
}

func (r *Recorder) Navigate(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.targets = append(r.targets, target)
	r.mu.Unlock()
	return nil
}

// Targets returns the recorded targets in order.
func (r *Recorder) Targets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.targets...)
}

// Replay sends every recorded target to next.
func (r *Recorder) Replay(ctx context.Context, next Navigator) error {
	for _, target := range r.Targets() {
		if err := next.Navigate(ctx, target); err != nil {
			return err
		}
	}
	return nil
}

// Resolve prefixes a site-relative link with the locale ("/de/profile").
// Absolute http(s) links and empty locales are left as they are.
func Resolve(link, locale string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	locale = strings.Trim(strings.TrimSpace(locale), "/")
	if locale == "" {
		return link
	}
	if link == "" || link == "/" {
		return "/" + locale
	}
	if !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return "/" + locale + link
}

// IsCurrent reports whether link, once resolved, points at current.
// Trailing slashes are ignored on both sides.
func IsCurrent(link, locale, current string) bool {
	if strings.TrimSpace(current) == "" || link == "" {
		return false
	}
	return normalize(Resolve(link, locale)) == normalize(current)
}

func normalize(path string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(path), "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
