package menu

import (
	"errors"
	"fmt"
	"strings"
)

// MaxDepth bounds tree nesting; deeper input is treated as malformed.
const MaxDepth = 10

var (
	ErrNilNode       = errors.New("nil node")
	ErrEmptyID       = errors.New("empty id")
	ErrInvalidID     = fmt.Errorf("id contains %q", PathSeparator)
	ErrDuplicateID   = errors.New("duplicate sibling id")
	ErrEmptyBranch   = errors.New("branch has no children")
	ErrMissingLink   = errors.New("leaf has no link")
	ErrBranchLink    = errors.New("branch must not carry a link")
	ErrDepthExceeded = fmt.Errorf("depth exceeds %d levels", MaxDepth)
)

// ConfigError reports a malformed node. Path holds the ancestor ids.
type ConfigError struct {
	Path   []string
	NodeID string
	Err    error
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("menu: node %q: %v", e.NodeID, e.Err)
	}
	return fmt.Sprintf("menu: node %q under %q: %v", e.NodeID, Key(e.Path...), e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Validate checks a tree literal and reports every offending node. The
// result is nil or an errors.Join of *ConfigError values.
func Validate(roots []*Node) error {
	var errs []error
	if len(roots) == 0 {
		return nil
	}
	validateLevel(roots, nil, 1, &errs)
	return errors.Join(errs...)
}

func validateLevel(nodes []*Node, path []string, depth int, errs *[]error) {
	report := func(id string, err error) {
		*errs = append(*errs, &ConfigError{Path: append([]string(nil), path...), NodeID: id, Err: err})
	}
	seen := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		if node == nil {
			report("", ErrNilNode)
			continue
		}
		id := node.ID
		if strings.TrimSpace(id) == "" {
			report(id, ErrEmptyID)
			continue
		}
		if strings.Contains(id, PathSeparator) {
			report(id, ErrInvalidID)
		}
		if _, dup := seen[id]; dup {
			report(id, ErrDuplicateID)
		}
		seen[id] = struct{}{}

		switch {
		case len(node.Children) > 0 && node.Link != "":
			report(id, ErrBranchLink)
		case node.Children != nil && len(node.Children) == 0:
			report(id, ErrEmptyBranch)
		case len(node.Children) == 0 && node.Link == "":
			report(id, ErrMissingLink)
		}

		if len(node.Children) == 0 {
			continue
		}
		if depth >= MaxDepth {
			report(id, ErrDepthExceeded)
			continue
		}
		validateLevel(node.Children, append(path, id), depth+1, errs)
	}
}
