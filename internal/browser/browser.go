// Package browser feeds the session from mDNS service discovery. One
// goroutine browses the meta service for type names; every type found gets
// its own browse goroutine. All of them push normalized events into a Sink
// and are torn down together by context cancellation.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"

	"github.com/ferrovax/zeroscope/internal/catalog"
	"github.com/ferrovax/zeroscope/internal/logging"
	"github.com/ferrovax/zeroscope/internal/logging/events"
)

const (
	metaService = "_services._dns-sd._udp"

	// DefaultDomain is browsed when no domain is configured.
	DefaultDomain = "local."

	metricsInterval = time.Second
)

// Counter keys published through Sink.SetMetrics.
const (
	CounterTypesFound      = "types_found"
	CounterTypesExpired    = "types_expired"
	CounterEntriesResolved = "entries_resolved"
	CounterEntriesRemoved  = "entries_removed"
	CounterBrowseFailures  = "browse_failures"
	CounterMetaFailures    = "meta_failures"
	CounterMetaIgnored     = "meta_ignored"
	CounterActiveBrowses   = "active_browses"
)

// Sink receives normalized discovery events. *session.Session satisfies it.
type Sink interface {
	AddType(name string)
	RemoveType(name string) bool
	UpsertEntry(e catalog.Entry)
	MarkEntryRemoved(fullName string)
	SetMetrics(counters map[string]int)
}

// Browser owns the discovery goroutines. Stop cancels them; Wait blocks
// until they have drained.
type Browser struct {
	domain string
	sink   Sink

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	active   map[string]struct{}
	counters map[string]int
}

// New creates a stopped browser for the given domain.
func New(domain string, sink Sink) *Browser {
	if strings.TrimSpace(domain) == "" {
		domain = DefaultDomain
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Browser{
		domain:   domain,
		sink:     sink,
		ctx:      ctx,
		cancel:   cancel,
		active:   make(map[string]struct{}),
		counters: make(map[string]int),
	}
}

// Start launches the meta browse and the metrics publisher.
func (b *Browser) Start() {
	b.wg.Add(2)
	go b.browseMeta()
	go b.publishMetrics()
}

// Stop cancels every subscription. The resolver closes each entry channel
// once its context is done, which lets the browse goroutines drain out.
func (b *Browser) Stop() {
	b.cancel()
}

// Wait blocks until every discovery goroutine has exited.
func (b *Browser) Wait() {
	b.wg.Wait()
}

func (b *Browser) browseMeta() {
	defer b.wg.Done()
	entries := make(chan *zeroconf.ServiceEntry, 16)
	resolver, err := zeroconf.NewResolver(nil)
	if err == nil {
		err = resolver.Browse(b.ctx, metaService, b.domain, entries)
	}
	if err != nil {
		b.count(CounterMetaFailures)
		events.Browser.MetaFailed(err)
		logging.Error(fmt.Errorf("meta browse: %w", err))
		return
	}
	events.Browser.MetaStarted(b.domain)
	for entry := range entries {
		name, ok := TypeName(entry, b.domain)
		if !ok {
			b.count(CounterMetaIgnored)
			continue
		}
		if entry.TTL == 0 {
			b.count(CounterTypesExpired)
			events.Browser.TypeExpired(name)
			b.sink.RemoveType(name)
			continue
		}
		b.startType(name)
	}
}

// startType spawns one browse goroutine per type; repeated announcements of
// a type already being browsed are ignored.
func (b *Browser) startType(name string) {
	b.mu.Lock()
	if _, dup := b.active[name]; dup {
		b.mu.Unlock()
		return
	}
	b.active[name] = struct{}{}
	b.mu.Unlock()

	b.count(CounterTypesFound)
	events.Browser.TypeFound(name)
	b.sink.AddType(name)
	b.wg.Add(1)
	go b.browseType(name)
}

func (b *Browser) browseType(name string) {
	defer b.wg.Done()
	entries := make(chan *zeroconf.ServiceEntry, 16)
	resolver, err := zeroconf.NewResolver(nil)
	if err == nil {
		err = resolver.Browse(b.ctx, Service(name, b.domain), b.domain, entries)
	}
	if err != nil {
		b.count(CounterBrowseFailures)
		events.Browser.BrowseFailed(name, err)
		logging.Error(fmt.Errorf("browse %s: %w", name, err))
		b.forget(name)
		// Retract the type so the pane does not advertise a dead browse.
		// Refused while entries still reference it, which is fine: those
		// entries came from an earlier, working browse.
		b.sink.RemoveType(name)
		return
	}
	for entry := range entries {
		b.handleEntry(name, entry)
	}
	b.forget(name)
}

func (b *Browser) forget(name string) {
	b.mu.Lock()
	delete(b.active, name)
	b.mu.Unlock()
}

func (b *Browser) handleEntry(typeName string, entry *zeroconf.ServiceEntry) {
	if entry == nil {
		return
	}
	e := Normalize(typeName, entry)
	if entry.TTL == 0 {
		b.count(CounterEntriesRemoved)
		events.Browser.EntryRemoved(typeName, e.FullName)
		b.sink.MarkEntryRemoved(e.FullName)
		return
	}
	b.count(CounterEntriesResolved)
	events.Browser.EntryResolved(typeName, e.FullName)
	b.sink.UpsertEntry(e)
}

func (b *Browser) count(key string) {
	b.mu.Lock()
	b.counters[key]++
	b.mu.Unlock()
}

// Metrics returns a copy of the event counters plus the number of browses
// currently active.
func (b *Browser) Metrics() map[string]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]int, len(b.counters)+1)
	for k, v := range b.counters {
		out[k] = v
	}
	out[CounterActiveBrowses] = len(b.active)
	return out
}

func (b *Browser) publishMetrics() {
	defer b.wg.Done()
	ticker := time.NewTicker(metricsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			b.sink.SetMetrics(b.Metrics())
		}
	}
}
