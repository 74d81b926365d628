package host

import "fmt"

// LevelRangeError reports a battery level outside 0..100.
type LevelRangeError struct {
	Level int
}

func (e *LevelRangeError) Error() string {
	return fmt.Sprintf("host: battery level %d out of range 0..100", e.Level)
}

// CheckLevel returns a *LevelRangeError when level is not a percentage.
func CheckLevel(level int) error {
	if level < 0 || level > 100 {
		return &LevelRangeError{Level: level}
	}
	return nil
}
