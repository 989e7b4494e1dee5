package ui

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity is the visual weight of a transient message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DismissAfter is how long a toast stays visible before auto-dismissing.
const DismissAfter = 3500 * time.Millisecond

// Toast is one transient message.
type Toast struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Toasts queues transient messages and dismisses them after a fixed
// interval.
type Toasts struct {
	ttl time.Duration

	mu    sync.Mutex
	items []Toast
}

// NewToasts builds a queue with the standard dismiss interval.
func NewToasts() *Toasts {
	return &Toasts{ttl: DismissAfter}
}

// Show enqueues a message and schedules its dismissal.
func (t *Toasts) Show(severity Severity, message string) Toast {
	toast := Toast{
		ID:        uuid.NewString(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}
	t.mu.Lock()
	t.items = append(t.items, toast)
	t.mu.Unlock()

	time.AfterFunc(t.ttl, func() { t.Dismiss(toast.ID) })
	return toast
}

// Dismiss removes a toast by id; unknown ids are ignored.
func (t *Toasts) Dismiss(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, item := range t.items {
		if item.ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

// Active returns the currently visible toasts in display order.
func (t *Toasts) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.items))
	copy(out, t.items)
	return out
}
