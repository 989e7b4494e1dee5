// Package ui holds the rendering-surface independent interaction state:
// per-region request state machines, transient toasts, section visibility,
// and the content-swap primitive. Nothing here touches HTTP or a DOM; the
// surface subscribes to state changes and draws them however it likes.
package ui

import (
	"errors"
	"html/template"
	"sync"
)

// State is one phase of a region's request lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// ErrBusy is returned when a region already has an operation in flight; the
// trigger stays disabled until the pending call resolves.
var ErrBusy = errors.New("ui: operation already in progress")

// Event is the message a region emits after each transition.
type Event struct {
	Region  string
	State   State
	Content template.HTML
	Err     string
}

// Region is one independently-loading area of the UI. Exactly one operation
// may be in flight per region; independent regions load concurrently with no
// shared state.
type Region struct {
	name string

	mu      sync.Mutex
	state   State
	content template.HTML
	errMsg  string
	subs    []chan Event
}

// NewRegion builds an idle region.
func NewRegion(name string) *Region {
	return &Region{name: name}
}

// Name returns the region identifier.
func (r *Region) Name() string {
	return r.name
}

// Begin moves Idle/Loaded/Error -> Loading, installing the skeleton
// placeholder. It fails with ErrBusy while an operation is in flight.
func (r *Region) Begin(skeleton template.HTML) error {
	r.mu.Lock()
	if r.state == StateLoading {
		r.mu.Unlock()
		return ErrBusy
	}
	r.state = StateLoading
	r.content = skeleton
	r.errMsg = ""
	ev := r.eventLocked()
	r.mu.Unlock()

	r.publish(ev)
	return nil
}

// Complete moves Loading -> Loaded with the rendered content.
func (r *Region) Complete(content template.HTML) {
	r.mu.Lock()
	r.state = StateLoaded
	r.content = content
	r.errMsg = ""
	ev := r.eventLocked()
	r.mu.Unlock()

	r.publish(ev)
}

// Fail moves Loading -> Error. The inline error fragment replaces the
// skeleton so the region never shows a stuck placeholder.
func (r *Region) Fail(message string) {
	r.mu.Lock()
	r.state = StateError
	r.errMsg = message
	r.content = template.HTML(`<p class="text-red-600 text-center">` +
		template.HTMLEscapeString(message) + `</p>`)
	ev := r.eventLocked()
	r.mu.Unlock()

	r.publish(ev)
}

// Reset returns the region to Idle with empty content.
func (r *Region) Reset() {
	r.mu.Lock()
	r.state = StateIdle
	r.content = ""
	r.errMsg = ""
	ev := r.eventLocked()
	r.mu.Unlock()

	r.publish(ev)
}

// Snapshot returns the current state and content.
func (r *Region) Snapshot() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.eventLocked()
}

// Subscribe returns a channel of future transitions plus a cancel func.
// Slow subscribers miss events rather than blocking the region.
func (r *Region) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	r.mu.Lock()
	r.subs = append(r.subs, ch)
	r.mu.Unlock()

	cancel := func() {
		r.mu.Lock()
		for i, sub := range r.subs {
			if sub == ch {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				break
			}
		}
		r.mu.Unlock()
	}
	return ch, cancel
}

func (r *Region) eventLocked() Event {
	return Event{Region: r.name, State: r.state, Content: r.content, Err: r.errMsg}
}

func (r *Region) publish(ev Event) {
	r.mu.Lock()
	subs := make([]chan Event, len(r.subs))
	copy(subs, r.subs)
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// The fixed regions of the main app.
const (
	RegionDashboard  = "dashboard"
	RegionCrop       = "cropResults"
	RegionField      = "fieldResults"
	RegionPrices     = "priceResults"
	RegionReports    = "myReports"
	RegionFertilizer = "fertilizerResults"
)

// Regions is the registry of the app's loading areas.
type Regions struct {
	mu      sync.Mutex
	regions map[string]*Region
}

// NewRegions builds a registry pre-populated with the fixed app regions.
func NewRegions() *Regions {
	rs := &Regions{regions: map[string]*Region{}}
	for _, name := range []string{
		RegionDashboard, RegionCrop, RegionField,
		RegionPrices, RegionReports, RegionFertilizer,
	} {
		rs.regions[name] = NewRegion(name)
	}
	return rs
}

// Get returns the named region, creating it on first use.
func (rs *Regions) Get(name string) *Region {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r, ok := rs.regions[name]
	if !ok {
		r = NewRegion(name)
		rs.regions[name] = r
	}
	return r
}
