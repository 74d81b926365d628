package host

import (
	"sync"
	"sync/atomic"
	"time"
)

// StaticPreferences always loads the same preferences.
type StaticPreferences Preferences

// Load implements PreferenceSource.
func (p StaticPreferences) Load() (Preferences, error) {
	return Preferences(p), nil
}

// ManualBattery is a battery whose level is set by hand. The zero value
// reports 100.
type ManualBattery struct {
	used atomic.Int32
}

// NewManualBattery returns a battery at level.
func NewManualBattery(level int) *ManualBattery {
	b := &ManualBattery{}
	b.Set(level)
	return b
}

// Set clamps level to 0..100 and stores it.
func (b *ManualBattery) Set(level int) {
	level = min(max(level, 0), 100)
	b.used.Store(int32(100 - level))
}

// Add changes the level by delta, clamped.
func (b *ManualBattery) Add(delta int) int {
	l, _ := b.Level()
	b.Set(l + delta)
	l, _ = b.Level()
	return l
}

// Level implements BatterySource.
func (b *ManualBattery) Level() (int, error) {
	return 100 - int(b.used.Load()), nil
}

// ManualZone is a ZoneSource whose location is set by hand. Subscribers
// are notified synchronously by SetLocation.
type ManualZone struct {
	mu   sync.Mutex
	loc  *time.Location
	subs map[int]func()
	next int
}

// NewManualZone returns a zone source at loc; nil means time.Local.
func NewManualZone(loc *time.Location) *ManualZone {
	if loc == nil {
		loc = time.Local
	}
	return &ManualZone{loc: loc, subs: make(map[int]func())}
}

// Location implements ZoneSource.
func (z *ManualZone) Location() *time.Location {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.loc
}

// SetLocation changes the zone and notifies subscribers.
func (z *ManualZone) SetLocation(loc *time.Location) {
	z.mu.Lock()
	z.loc = loc
	subs := make([]func(), 0, len(z.subs))
	for _, fn := range z.subs {
		subs = append(subs, fn)
	}
	z.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribers returns the number of live subscriptions.
func (z *ManualZone) Subscribers() int {
	z.mu.Lock()
	defer z.mu.Unlock()
	return len(z.subs)
}

// Subscribe implements ZoneSource.
func (z *ManualZone) Subscribe(fn func()) func() {
	z.mu.Lock()
	defer z.mu.Unlock()
	id := z.next
	z.next++
	z.subs[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			z.mu.Lock()
			delete(z.subs, id)
			z.mu.Unlock()
		})
	}
}
