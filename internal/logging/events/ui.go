package events

import "github.com/ferrovax/zeroscope/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (UITracer) Key(mode, key string) {
	logging.Trace("ui.key", map[string]interface{}{"mode": mode, "key": key})
}

func (UITracer) Mode(mode string) {
	logging.Trace("ui.mode", map[string]interface{}{"mode": mode})
}

func (UITracer) Sort(order string) {
	logging.Trace("ui.sort", map[string]interface{}{"order": order})
}

func (UITracer) Prune(removed int) {
	logging.Trace("ui.prune", map[string]interface{}{"removed": removed})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (FilterTracer) Begin() {
	logging.Trace("filter.begin", nil)
}

func (FilterTracer) Draft(text string) {
	logging.Trace("filter.draft", map[string]interface{}{"text": text})
}

func (FilterTracer) Commit(text string) {
	logging.Trace("filter.commit", map[string]interface{}{"text": text})
}

func (FilterTracer) Cancel() {
	logging.Trace("filter.cancel", nil)
}

func (FilterTracer) Snap(moved bool) {
	logging.Trace("filter.snap", map[string]interface{}{"moved": moved})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
