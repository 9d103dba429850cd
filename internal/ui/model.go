package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/hovermenu/internal/backend"
	"github.com/atomicstack/hovermenu/internal/data/dispatcher"
	"github.com/atomicstack/hovermenu/internal/hover"
	"github.com/atomicstack/hovermenu/internal/i18n"
	"github.com/atomicstack/hovermenu/internal/logging"
	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/atomicstack/hovermenu/internal/navigate"
	"github.com/atomicstack/hovermenu/internal/theme"
	"github.com/atomicstack/hovermenu/internal/ui/command"
	uistate "github.com/atomicstack/hovermenu/internal/ui/state"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Tree      *menu.Tree
	Catalog   *i18n.Catalog
	Locale    string
	Current   string
	OpenDelay time.Duration

	Width      int
	Height     int
	ShowFooter bool

	Watcher   *backend.Watcher
	Navigator navigate.Navigator
	// StartupErr is shown in the status line, typically a menu file that
	// failed to load.
	StartupErr error
}

// Anchor is the on-screen position a popup opens against. Root anchors
// point at the cell below a bar item; nested anchors at the cell right of a
// popup row.
type Anchor struct {
	Level int
	Index int
	X     int
	Y     int
}

// Model implements the Bubble Tea model for the menu bar and its popups.
type Model struct {
	ctrl    *hover.Controller
	catalog *i18n.Catalog
	tr      i18n.Translator
	locale  string
	current string

	levels     []*level
	focus      int
	itemsDirty bool
	layout     layout

	openDelay     time.Duration
	openSeq       int
	pointerInside bool
	hovered       string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	help        help.Model
	keys        keyMap

	status   string
	errMsg   string
	chosen   []command.Result
	queued   []tea.Cmd
	backend  *backend.Watcher
	bus      *command.Bus
	dispatch *dispatcher.Dispatcher

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for the configured tree.
func NewModel(opts Options) *Model {
	tree := opts.Tree
	if tree == nil {
		tree = menu.MustNew("")
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}
	m := &Model{
		catalog:    catalog,
		tr:         catalog.Translator(opts.Locale),
		locale:     opts.Locale,
		current:    opts.Current,
		openDelay:  opts.OpenDelay,
		showFooter: opts.ShowFooter,
		help:       help.New(),
		keys:       defaultKeyMap(),
		backend:    opts.Watcher,
		bus:        command.New(context.Background(), opts.Navigator),
	}
	if opts.StartupErr != nil {
		m.errMsg = opts.StartupErr.Error()
	}
	ctrl, err := hover.New(tree,
		hover.WithFocusReturn(m.handleFocusReturn),
		hover.WithActivate(m.handleActivation),
	)
	if err != nil {
		// unreachable with the non-nil tree above
		logging.Error(err)
	}
	m.ctrl = ctrl
	m.dispatch = dispatcher.New(ctrl)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.syncLevels()
	m.layout = m.computeLayout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(openDelayMsg{}):      m.handleOpenDelayMsg,
		reflect.TypeOf(command.Result{}):    m.handleNavigationResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate brings the rendered levels in line with the controller and
// flushes commands queued by controller callbacks.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncLevels()
	m.layout = m.computeLayout()
	if len(m.queued) > 0 {
		cmds = append(cmds, m.queued...)
		m.queued = nil
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// syncLevels rebuilds the level stack from the controller's open path.
// Levels whose path is unchanged keep their cursor.
func (m *Model) syncLevels() {
	path := m.ctrl.OpenIDs()
	want := len(path) + 1
	levels := make([]*level, 0, want)
	for depth := 0; depth < want; depth++ {
		prefix := path[:depth]
		key := menu.Key(prefix...)
		if depth < len(m.levels) && m.levels[depth].Key() == key {
			existing := m.levels[depth]
			if m.itemsDirty {
				existing.UpdateItems(m.itemsFor(prefix))
			}
			levels = append(levels, existing)
			continue
		}
		levels = append(levels, uistate.NewLevel(depth, prefix, m.itemsFor(prefix)))
	}
	m.levels = levels
	m.itemsDirty = false
	if m.focus >= len(m.levels) {
		m.focus = len(m.levels) - 1
	}
	if m.focus < 0 {
		m.focus = 0
	}
}

// itemsFor renders the children under path for the active locale.
func (m *Model) itemsFor(path []string) []uistate.Item {
	nodes := m.ctrl.Tree().Children(path...)
	items := make([]uistate.Item, len(nodes))
	for i, node := range nodes {
		items[i] = uistate.Item{
			ID:     node.ID,
			Label:  m.tr.Label(node.DisplayLabel()),
			Branch: node.IsBranch(),
		}
		if node.IsLeaf() {
			items[i].Link = navigate.Resolve(node.Link, m.locale)
			items[i].Current = navigate.IsCurrent(node.Link, m.locale, m.current)
		}
	}
	return items
}

func (m *Model) levelAt(depth int) *level {
	if depth < 0 || depth >= len(m.levels) {
		return nil
	}
	return m.levels[depth]
}

func (m *Model) focusedLevel() *level {
	return m.levelAt(m.focus)
}

// Controller exposes the hover controller driving the menu.
func (m *Model) Controller() *hover.Controller {
	return m.ctrl
}

// Chosen returns the navigations completed during the session.
func (m *Model) Chosen() []command.Result {
	return append([]command.Result(nil), m.chosen...)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}
