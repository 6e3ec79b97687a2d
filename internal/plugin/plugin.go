package plugin

import (
	"sync"
	"time"

	"github.com/SamWeichangyue/page-spy/internal/entry"
	"github.com/SamWeichangyue/page-spy/internal/harbor"
	logpkg "github.com/SamWeichangyue/page-spy/pkg/log"
)

// Options configures a Plugin.
type Options struct {
	// Filter is an optional CEL expression selecting cared messages.
	Filter string
	Logger logpkg.Logger
}

// Plugin owns one harbor and feeds it from the host bus.
type Plugin struct {
	harbor *harbor.Harbor
	filter caredFilter
	logger logpkg.Logger

	mu     sync.Mutex
	inited bool
	paused bool
	cancel func()
}

// New builds a plugin around h. A filter expression that does not compile is
// a construction error; everything downstream is total.
func New(h *harbor.Harbor, opts Options) (*Plugin, error) {
	f, err := newCaredFilter(opts.Filter)
	if err != nil {
		return nil, err
	}
	lg := opts.Logger
	if lg == nil {
		lg = logpkg.NewNop()
	}
	return &Plugin{
		harbor: h,
		filter: f,
		logger: lg.With(logpkg.Component("plugin")),
	}, nil
}

// Init subscribes to the bus. Idempotent: a second call on an already
// initialized instance is a no-op.
func (p *Plugin) Init(bus Bus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.inited {
		return
	}
	p.inited = true
	p.cancel = bus.Subscribe(p.onMessage)
}

// Pause drops incoming messages without side effects until Resume.
func (p *Plugin) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
}

// Resume re-enables message forwarding.
func (p *Plugin) Resume() {
	p.mu.Lock()
	p.paused = false
	p.mu.Unlock()
}

// Paused reports the current state.
func (p *Plugin) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Stop cancels the bus subscription. The harbor and its contents survive.
func (p *Plugin) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.inited = false
}

// Reharbor reconfigures the division period of the owned harbor.
func (p *Plugin) Reharbor(period time.Duration) { p.harbor.Reharbor(period) }

// Harbor exposes the owned harbor for export and inspection.
func (p *Plugin) Harbor() *harbor.Harbor { return p.harbor }

func (p *Plugin) onMessage(m Message) {
	p.mu.Lock()
	paused := p.paused
	p.mu.Unlock()
	if paused {
		return
	}
	if !p.filter.Eval(m) {
		return
	}
	kind, ok := entry.KindFromCategory(m.Category)
	if !ok {
		return
	}
	ts := m.TsMs
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	e := entry.Entry{Kind: kind, TsMs: ts, URL: m.URL, Data: m.Data}
	if !p.harbor.Add(e) {
		p.logger.Debug("message dropped",
			logpkg.Str("category", m.Category),
			logpkg.Str("url", m.URL),
			logpkg.Int("size", len(m.Data)))
	}
}
