package util

import (
	"fmt"
	"time"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

type timeAgoUnit struct {
	name    string
	seconds int64
}

// Scanned largest first. Month and minute share an initial.
var timeAgoUnits = []timeAgoUnit{
	{name: "year", seconds: 31536000},
	{name: "month", seconds: 2592000},
	{name: "week", seconds: 604800},
	{name: "day", seconds: 86400},
	{name: "hour", seconds: 3600},
	{name: "minute", seconds: 60},
}

// FormatTimeAgo renders the age of then relative to now as "<n><unit initial> ago",
// using the largest unit that fits at least once. Anything under a minute, in
// the future or unset renders as "Just now".
func FormatTimeAgo(now, then time.Time) string {
	if then.IsZero() {
		return "Just now"
	}

	seconds := int64(now.Sub(then) / time.Second)
	for _, unit := range timeAgoUnits {
		if n := seconds / unit.seconds; n >= 1 {
			return fmt.Sprintf("%d%c ago", n, unit.name[0])
		}
	}

	return "Just now"
}
