// Package i18n resolves menu label keys to display text for a locale.
package i18n

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	// LabelPrefix is prepended to menu labels when looking them up.
	LabelPrefix = "header_"
	// FallbackLocale is used when no requested locale matches.
	FallbackLocale = "en"
)

// Catalog holds messages for a set of locales.
type Catalog struct {
	tags     []language.Tag
	messages []map[string]string
	matcher  language.Matcher
}

// NewCatalog builds a catalog from locale → key → text. The fallback locale
// must be present and is used when nothing else matches.
func NewCatalog(fallback string, messages map[string]map[string]string) (*Catalog, error) {
	fallbackTag, err := language.Parse(fallback)
	if err != nil {
		return nil, fmt.Errorf("fallback locale %q: %w", fallback, err)
	}
	locales := make([]string, 0, len(messages))
	for locale := range messages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	c := &Catalog{}
	found := false
	for _, locale := range locales {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, err)
		}
		entries := make(map[string]string, len(messages[locale]))
		for k, v := range messages[locale] {
			entries[k] = v
		}
		if tag == fallbackTag {
			// The matcher treats the first tag as the default.
			c.tags = append([]language.Tag{tag}, c.tags...)
			c.messages = append([]map[string]string{entries}, c.messages...)
			found = true
			continue
		}
		c.tags = append(c.tags, tag)
		c.messages = append(c.messages, entries)
	}
	if !found {
		return nil, fmt.Errorf("fallback locale %q has no messages", fallback)
	}
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// ParseCatalog decodes a YAML document keyed by locale.
func ParseCatalog(data []byte, fallback string) (*Catalog, error) {
	var messages map[string]map[string]string
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	return NewCatalog(fallback, messages)
}

// ReadCatalog loads a YAML catalog from disk.
func ReadCatalog(path, fallback string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := ParseCatalog(data, fallback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Locales lists the supported locales, fallback first.
func (c *Catalog) Locales() []string {
	out := make([]string, len(c.tags))
	for i, tag := range c.tags {
		out[i] = tag.String()
	}
	return out
}

// Translator returns the translator for the closest supported locale.
func (c *Catalog) Translator(locale string) Translator {
	if c == nil || len(c.tags) == 0 {
		return Translator{}
	}
	idx := 0
	if tag, err := language.Parse(locale); err == nil {
		_, idx, _ = c.matcher.Match(tag)
	}
	return Translator{
		locale:   c.tags[idx],
		messages: c.messages[idx],
		fallback: c.messages[0],
	}
}

// Translator looks up messages for one locale. The zero value returns keys
// unchanged.
type Translator struct {
	locale   language.Tag
	messages map[string]string
	fallback map[string]string
}

// Locale returns the matched locale, or "" for the zero Translator.
func (t Translator) Locale() string {
	if t.messages == nil {
		return ""
	}
	return t.locale.String()
}

// T returns the text for key, falling back to the default locale and then
// to the key itself.
func (t Translator) T(key string) string {
	if text, ok := t.lookup(key); ok {
		return text
	}
	return key
}

// Label resolves a menu label. Unknown labels are shown as written.
func (t Translator) Label(label string) string {
	if text, ok := t.lookup(LabelPrefix + label); ok {
		return text
	}
	return label
}

func (t Translator) lookup(key string) (string, bool) {
	if text, ok := t.messages[key]; ok && text != "" {
		return text, true
	}
	if text, ok := t.fallback[key]; ok && text != "" {
		return text, true
	}
	return "", false
}

// Default returns the built-in catalog for the default menu.
func Default() *Catalog {
	c, err := NewCatalog(FallbackLocale, map[string]map[string]string{
		"en": {
			"header_home":            "Home",
			"header_tickets":         "Tickets",
			"header_sell_ticket":     "Sell ticket",
			"header_redeem_ticket":   "Redeem ticket",
			"header_verify_ticket":   "Verify ticket",
			"header_account":         "Account",
			"header_profile":         "Profile",
			"header_login":           "Login",
			"header_register":        "Register",
			"header_forgot_password": "Forgot password",
			"header_explore":         "Explore",
			"header_events":          "Events",
			"header_concerts":        "Concerts",
			"header_sports":          "Sports",
			"header_football":        "Football",
			"header_tennis":          "Tennis",
			"header_theatre":         "Theatre",
			"header_about":           "About",
			"header_docs":            "Docs",
		},
		"de": {
			"header_home":            "Start",
			"header_tickets":         "Tickets",
			"header_sell_ticket":     "Ticket verkaufen",
			"header_redeem_ticket":   "Ticket einlösen",
			"header_verify_ticket":   "Ticket prüfen",
			"header_account":         "Konto",
			"header_profile":         "Profil",
			"header_login":           "Anmelden",
			"header_register":        "Registrieren",
			"header_forgot_password": "Passwort vergessen",
			"header_explore":         "Entdecken",
			"header_events":          "Veranstaltungen",
			"header_concerts":        "Konzerte",
			"header_theatre":         "Theater",
			"header_about":           "Über uns",
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
