package host

import (
	"errors"
	"testing"
	"time"

	"github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wf "github.com/gogpu/watchface"
)

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()
	assert.Equal(t, wf.Blue, p.PrimaryColor)
	assert.True(t, p.UnreadIndicator)

	got, err := StaticPreferences(p).Load()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestManualBattery(t *testing.T) {
	var zero ManualBattery
	l, err := zero.Level()
	require.NoError(t, err)
	assert.Equal(t, 100, l)

	b := NewManualBattery(42)
	l, _ = b.Level()
	assert.Equal(t, 42, l)

	assert.Equal(t, 0, b.Add(-100))
	assert.Equal(t, 100, b.Add(250))
}

func TestManualZone(t *testing.T) {
	z := NewManualZone(time.UTC)
	calls := 0
	unsub := z.Subscribe(func() { calls++ })
	assert.Equal(t, 1, z.Subscribers())

	tokyo := time.FixedZone("JST", 9*3600)
	z.SetLocation(tokyo)
	assert.Equal(t, 1, calls)
	assert.Equal(t, tokyo, z.Location())

	unsub()
	unsub()
	z.SetLocation(time.UTC)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, z.Subscribers())
}

func TestSystemBattery(t *testing.T) {
	errGone := errors.New("no such device")
	tests := []struct {
		name    string
		bat     *battery.Battery
		err     error
		want    int
		fail    bool
		wantErr error
	}{
		{name: "ok", bat: &battery.Battery{Current: 43500, Full: 50000}, want: 87},
		{name: "overfull reads full", bat: &battery.Battery{Current: 50400, Full: 50000}, want: 100},
		{name: "empty", bat: &battery.Battery{Current: 0, Full: 50000}, want: 0},
		{
			name: "partial read with charge",
			bat:  &battery.Battery{Current: 25000, Full: 50000},
			err:  battery.ErrPartial{ChargeRate: errGone},
			want: 50,
		},
		{
			name: "partial read without charge",
			bat:  &battery.Battery{Full: 50000},
			err:  battery.ErrPartial{Current: errGone},
			fail: true,
		},
		{name: "read failure", err: errGone, fail: true, wantErr: errGone},
		{name: "unknown capacity", bat: &battery.Battery{Current: 100}, fail: true},
		{name: "negative charge", bat: &battery.Battery{Current: -5000, Full: 50000}, fail: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := SystemBattery{Index: 1, get: func(idx int) (*battery.Battery, error) {
				assert.Equal(t, 1, idx)
				return tt.bat, tt.err
			}}
			got, err := b.Level()
			if tt.fail {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSystemBatteryNegativeIsRangeError(t *testing.T) {
	b := SystemBattery{get: func(int) (*battery.Battery, error) {
		return &battery.Battery{Current: -5000, Full: 50000}, nil
	}}
	_, err := b.Level()
	var lre *LevelRangeError
	assert.ErrorAs(t, err, &lre)
}

func TestCheckLevel(t *testing.T) {
	assert.NoError(t, CheckLevel(0))
	assert.NoError(t, CheckLevel(100))
	err := CheckLevel(-1)
	assert.EqualError(t, err, "host: battery level -1 out of range 0..100")
}
