package service

import (
	"testing"
	"time"

	"eodly/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStats(t *testing.T) {
	now := time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC) // a Sunday
	day := func(offset int) string { return now.AddDate(0, 0, offset).Format("2006-01-02") }

	reports := []model.Report{
		{Date: day(0), Status: model.StatusDone},
		{Date: day(0), Status: model.StatusBlocked},
		{Date: day(-3), Status: model.StatusDone},
		// Outside the chart window, still counted in the overview.
		{Date: day(-9), Status: model.StatusDone},
		// Pending is counted in neither series.
		{Date: day(-1), Status: model.StatusPending},
	}

	stats := BuildStats(reports, now)

	require.Len(t, stats.Chart, 7)
	assert.Equal(t, day(-6), stats.Chart[0].Date)
	assert.Equal(t, day(0), stats.Chart[6].Date)
	assert.Equal(t, "Sun", stats.Chart[6].Name)
	assert.Equal(t, 1, stats.Chart[6].Completed)
	assert.Equal(t, 1, stats.Chart[6].Blocked)
	assert.Equal(t, 1, stats.Chart[3].Completed)

	assert.Equal(t, 5, stats.Overview.Count)
	assert.Equal(t, 1, stats.Overview.Blocked)
	assert.Equal(t, 60, stats.Overview.Rate) // 3 of 5 done
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil, time.Now())
	assert.Equal(t, 0, stats.Overview.Rate)
	assert.Equal(t, 0, stats.Overview.Count)
	require.Len(t, stats.Chart, 7)
}
