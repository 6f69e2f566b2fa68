package catalog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgo(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Time{}, ""},
		{now.Add(-10 * time.Second), "just now"},
		{now.Add(-time.Minute), "1 minute ago"},
		{now.Add(-45 * time.Minute), "45 minutes ago"},
		{now.Add(-2 * time.Hour), "2 hours ago"},
		{now.Add(-50 * time.Hour), "2 days ago"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Ago(now, tt.at))
	}
}

func TestParseActivityJSON(t *testing.T) {
	now := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	log := `{"timestamp":"2025-02-01T10:00:00Z","level":"info","message":"Schema updated","action":"Schema updated","asset":"customer_orders","user":"John Smith","status":"Validated"}
{"timestamp":"2025-02-01T08:00:00Z","level":"warn","message":"New data source added","asset":"marketing_analytics","user":"Sarah Chen"}
{"timestamp":"2025-02-01T11:30:00Z","level":"info","message":"Lineage documented","asset":"sales_pipeline","user":"Mike Johnson"}`

	activity, err := ParseActivity(log, now, 0)
	require.NoError(t, err)
	require.Len(t, activity, 3)

	// newest first
	assert.Equal(t, "Lineage documented", activity[0].Action)
	assert.Equal(t, "30 minutes ago", activity[0].When)
	assert.Equal(t, "Schema updated", activity[1].Action)
	assert.Equal(t, "customer_orders", activity[1].Asset)
	assert.Equal(t, "John Smith", activity[1].User)
	assert.Equal(t, "Validated", activity[1].Status)
	assert.Equal(t, "4 hours ago", activity[2].When)

	limited, err := ParseActivity(log, now, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestLoadActivityMissingFile(t *testing.T) {
	_, err := LoadActivity(filepath.Join(t.TempDir(), "audit.log"), 5)
	assert.Error(t, err)
}
