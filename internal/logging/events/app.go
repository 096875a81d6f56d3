package events

import "github.com/ferrovax/zeroscope/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Resume() {
	logging.Trace("app.resume", nil)
}
