package events

import "github.com/NathanNeurotic/FreeMcBoot-Installer-UMCS/internal/logging"

type UITracer struct{}

type CommandTracer struct{}

type InputTracer struct{}

var (
	UI      = UITracer{}
	Command = CommandTracer{}
	Input   = InputTracer{}
)

func (UITracer) MenuEnter(menuID string, itemID int) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menuID, "item": itemID})
}

func (UITracer) MenuCursor(menuID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (UITracer) MenuValue(menuID string, itemID, value int) {
	logging.Trace("menu.value", map[string]interface{}{"menu": menuID, "item": itemID, "value": value})
}

func (UITracer) MenuPage(from, to string) {
	logging.Trace("menu.page", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) MenuCancel(menuID string) {
	logging.Trace("menu.cancel", map[string]interface{}{"menu": menuID})
}

func (UITracer) MenuCallback(menuID string, result int) {
	logging.Trace("menu.callback", map[string]interface{}{"menu": menuID, "result": result})
}

func (UITracer) Transition(menuID, kind string) {
	logging.Trace("menu.transition", map[string]interface{}{"menu": menuID, "kind": kind})
}

func (UITracer) MessageBox(title string, options, result int) {
	logging.Trace("msgbox.result", map[string]interface{}{"title": title, "options": options, "result": result})
}

func (InputTracer) Key(key, button string) {
	logging.Trace("input.key", map[string]interface{}{"key": key, "button": button})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "outcome": outcome})
}

func (CommandTracer) Error(id string, err error) {
	if err == nil {
		return
	}
	logging.Trace("command.error", map[string]interface{}{"id": id, "error": err.Error()})
}
