package catalog

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/yildizm/go-logparser"
)

// LoadActivity parses a stewardship audit log (json, logfmt or text lines)
// into dashboard activity, newest first, keeping at most limit entries.
func LoadActivity(path string, limit int) ([]Activity, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity log: %w", err)
	}
	return ParseActivity(string(data), time.Now(), limit)
}

// ParseActivity converts audit log lines into activity rows relative to now
func ParseActivity(data string, now time.Time, limit int) ([]Activity, error) {
	p := logparser.New()
	entries, err := p.ParseString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse activity log: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	activity := make([]Activity, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		action := field(e, "action")
		if action == "" {
			action = e.Message
		}
		if action == "" {
			continue
		}
		status := field(e, "status")
		if status == "" {
			status = statusFromLevel(e.Level)
		}
		activity = append(activity, Activity{
			Action: action,
			Asset:  field(e, "asset"),
			User:   field(e, "user"),
			When:   Ago(now, e.Timestamp),
			Status: status,
		})
		if limit > 0 && len(activity) == limit {
			break
		}
	}
	return activity, nil
}

func field(e *logparser.LogEntry, key string) string {
	if e.Fields == nil {
		return ""
	}
	v, ok := e.Fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func statusFromLevel(level string) string {
	switch level {
	case "ERROR", "error", "FATAL", "fatal":
		return "Failed"
	case "WARN", "warn", "WARNING", "warning":
		return "Pending"
	default:
		return "Validated"
	}
}

// Ago renders the distance between t and now the way the dashboard shows it
func Ago(now, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	default:
		return plural(int(d/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
