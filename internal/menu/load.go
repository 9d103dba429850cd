package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a menu file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for menu files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown menu file format")

// document is the on-disk shape of a menu file.
type document struct {
	Title string  `yaml:"title" json:"title"`
	Items []*Node `yaml:"items" json:"items"`
}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes and validates a menu document. JSON input may carry
// comments and trailing commas.
func Parse(data []byte, format Format) (*Tree, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing menu: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, fmt.Errorf("parsing menu: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return New(doc.Title, doc.Items...)
}

// ReadFile loads a menu file from disk.
func ReadFile(path string) (*Tree, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	tree, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Default returns the built-in marketplace navigation.
func Default() *Tree {
	return MustNew("JOPT",
		&Node{ID: "home", Label: "home", Link: "/"},
		&Node{ID: "tickets", Label: "tickets", Children: []*Node{
			{ID: "sell", Label: "sell_ticket", Link: "/profile#sell"},
			{ID: "redeem", Label: "redeem_ticket", Link: "/redeem-ticket"},
			{ID: "verify", Label: "verify_ticket", Link: "/redeem-ticket#verify"},
		}},
		&Node{ID: "account", Label: "account", Children: []*Node{
			{ID: "profile", Label: "profile", Link: "/profile"},
			{ID: "login", Label: "login", Link: "/login"},
			{ID: "register", Label: "register", Link: "/register"},
			{ID: "forgot-password", Label: "forgot_password", Link: "/forgot-password"},
		}},
		&Node{ID: "explore", Label: "explore", Children: []*Node{
			{ID: "events", Label: "events", Children: []*Node{
				{ID: "concerts", Label: "concerts", Link: "/events/concerts"},
				{ID: "sports", Label: "sports", Children: []*Node{
					{ID: "football", Label: "football", Link: "/events/sports/football"},
					{ID: "tennis", Label: "tennis", Link: "/events/sports/tennis"},
				}},
				{ID: "theatre", Label: "theatre", Link: "/events/theatre"},
			}},
			{ID: "about", Label: "about", Link: "/about"},
			{ID: "docs", Label: "docs", Link: "https://jopt.com/docs"},
		}},
	)
}
