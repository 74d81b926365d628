package host

import (
	"errors"
	"fmt"
	"math"

	"github.com/distatus/battery"
)

// SystemBattery reads the charge of one battery through the operating
// system's power supply interface.
type SystemBattery struct {
	// Index selects the battery; 0 is the first one.
	Index int

	get func(idx int) (*battery.Battery, error)
}

// Level implements BatterySource. Packs that report slightly more than
// their full capacity read as 100.
func (b SystemBattery) Level() (int, error) {
	get := b.get
	if get == nil {
		get = battery.Get
	}
	bat, err := get(b.Index)
	if err != nil && !chargeKnown(err) {
		return 0, fmt.Errorf("host: read battery %d: %w", b.Index, err)
	}
	if bat == nil || bat.Full <= 0 {
		return 0, fmt.Errorf("host: battery %d reports no full capacity", b.Index)
	}
	level := min(int(math.Round(bat.Current/bat.Full*100)), 100)
	if err := CheckLevel(level); err != nil {
		return 0, err
	}
	return level, nil
}

// chargeKnown reports whether a partial read still has both charge values.
func chargeKnown(err error) bool {
	var partial battery.ErrPartial
	return errors.As(err, &partial) && partial.Current == nil && partial.Full == nil
}
