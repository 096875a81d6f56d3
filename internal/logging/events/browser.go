package events

import "github.com/ferrovax/zeroscope/internal/logging"

type BrowserTracer struct{}

var Browser = BrowserTracer{}

func (BrowserTracer) MetaStarted(domain string) {
	logging.Trace("browser.meta.start", map[string]interface{}{"domain": domain})
}

func (BrowserTracer) MetaFailed(err error) {
	if err == nil {
		return
	}
	logging.Trace("browser.meta.fail", map[string]interface{}{"error": err.Error()})
}

func (BrowserTracer) TypeFound(name string) {
	logging.Trace("browser.type.found", map[string]interface{}{"type": name})
}

func (BrowserTracer) TypeExpired(name string) {
	logging.Trace("browser.type.expired", map[string]interface{}{"type": name})
}

func (BrowserTracer) BrowseFailed(name string, err error) {
	payload := map[string]interface{}{"type": name}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("browser.browse.fail", payload)
}

func (BrowserTracer) EntryResolved(typeName, fullName string) {
	logging.Trace("browser.entry.resolved", map[string]interface{}{"type": typeName, "name": fullName})
}

func (BrowserTracer) EntryRemoved(typeName, fullName string) {
	logging.Trace("browser.entry.removed", map[string]interface{}{"type": typeName, "name": fullName})
}
