package events

import "github.com/atomicstack/hovermenu/internal/logging"

type MenuTracer struct{}

type InputTracer struct{}

type CommandTracer struct{}

type ReloadTracer struct{}

var (
	Menu    = MenuTracer{}
	Input   = InputTracer{}
	Command = CommandTracer{}
	Reload  = ReloadTracer{}
)

func (MenuTracer) Open(level int, nodeID string, path []string) {
	logging.Trace("menu.open", map[string]interface{}{"level": level, "node": nodeID, "path": path})
}

func (MenuTracer) Close(level, previousDepth int) {
	logging.Trace("menu.close", map[string]interface{}{"level": level, "previous_depth": previousDepth})
}

// Path records the open path attached to later trace entries.
func (MenuTracer) Path(ids []string) {
	if !logging.TraceEnabled() {
		return
	}
	logging.SetOpenPath(ids)
}

func (MenuTracer) Toggle(nodeID string, open bool) {
	logging.Trace("menu.toggle", map[string]interface{}{"node": nodeID, "open": open})
}

func (MenuTracer) FocusReturn(anchor interface{}) {
	logging.Trace("menu.focus-return", map[string]interface{}{"anchor": anchor})
}

func (MenuTracer) Activate(path []string, link string) {
	logging.Trace("menu.activate", map[string]interface{}{"path": path, "link": link})
}

func (MenuTracer) Ignore(op string, level int, nodeID string) {
	logging.Trace("menu.ignore", map[string]interface{}{"op": op, "level": level, "node": nodeID})
}

func (MenuTracer) Reset(reason string) {
	logging.Trace("menu.reset", map[string]interface{}{"reason": reason})
}

func (InputTracer) Key(key string) {
	logging.Trace("input.key", map[string]interface{}{"key": key})
}

func (InputTracer) Click(x, y int, hit bool) {
	logging.Trace("input.click", map[string]interface{}{"x": x, "y": y, "hit": hit})
}

func (InputTracer) Blur() {
	logging.Trace("input.blur", nil)
}

func (InputTracer) TypeAhead(level int, query string, index int) {
	logging.Trace("input.type-ahead", map[string]interface{}{"level": level, "query": query, "index": index})
}

func (CommandTracer) Queue(id, target string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "target": target})
}

func (CommandTracer) Skip(id, target string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "target": target})
}

func (CommandTracer) Result(id, target string, err error) {
	payload := map[string]interface{}{"id": id, "target": target}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("command.result", payload)
}

func (ReloadTracer) Applied(path string, nodes int) {
	logging.Trace("reload.applied", map[string]interface{}{"path": path, "nodes": nodes})
}

func (ReloadTracer) Unchanged(path string) {
	logging.Trace("reload.unchanged", map[string]interface{}{"path": path})
}

func (ReloadTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("reload.error", map[string]interface{}{"path": path, "error": err.Error()})
}
