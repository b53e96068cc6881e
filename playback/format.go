package playback

import (
	"fmt"
	"time"
)

// FormatTime renders milliseconds as M:SS. Minutes are not padded; zero or negative input renders "0:00".
func FormatTime(millis int64) string {
	if millis <= 0 {
		return "0:00"
	}
	totalSeconds := millis / 1000
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatDuration is FormatTime for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Milliseconds())
}
