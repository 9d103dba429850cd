package dispatcher

import (
	"github.com/atomicstack/hovermenu/internal/backend"
	"github.com/atomicstack/hovermenu/internal/i18n"
	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/atomicstack/hovermenu/internal/menu"
)

// TreeStore holds the active navigation tree.
type TreeStore interface {
	Tree() *menu.Tree
	SetTree(*menu.Tree)
}

type Result struct {
	TreeUpdated   bool
	TreeUnchanged bool
	LabelsUpdated bool
	Catalog       *i18n.Catalog
	Err           error
}

// Updated reports whether the event changed anything on screen.
func (r Result) Updated() bool {
	return r.TreeUpdated || r.LabelsUpdated
}

type Dispatcher struct {
	trees TreeStore
}

func New(trees TreeStore) *Dispatcher {
	return &Dispatcher{trees: trees}
}

// Handle applies a reloaded tree to the store. Catalogs are returned for the
// caller to install since translation is a view concern.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Reload.Error(evt.Path, evt.Err)
		res.Err = evt.Err
		return res
	}
	switch data := evt.Data.(type) {
	case *menu.Tree:
		if data == nil {
			return res
		}
		unchanged := d.trees.Tree().Equal(data)
		d.trees.SetTree(data)
		if unchanged {
			events.Reload.Unchanged(evt.Path)
			res.TreeUnchanged = true
			return res
		}
		events.Reload.Applied(evt.Path, data.Len())
		res.TreeUpdated = true
	case *i18n.Catalog:
		if data == nil {
			return res
		}
		events.Reload.Applied(evt.Path, len(data.Locales()))
		res.LabelsUpdated = true
		res.Catalog = data
	}
	return res
}
