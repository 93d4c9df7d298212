package service

import (
	"math"
	"time"

	"eodly/internal/model"
)

// BuildStats computes the seven-day activity series and the overview counters
// over the submitted reports. The series covers the six days before now
// through today, ascending.
func BuildStats(reports []model.Report, now time.Time) model.StatsResponse {
	chart := make([]model.DayStat, 0, 7)
	index := make(map[string]int, 7)
	for i := 6; i >= 0; i-- {
		d := now.AddDate(0, 0, -i)
		iso := d.Format("2006-01-02")
		index[iso] = len(chart)
		chart = append(chart, model.DayStat{Name: d.Format("Mon"), Date: iso})
	}

	done, blocked := 0, 0
	for _, r := range reports {
		if i, ok := index[r.Date]; ok {
			switch r.Status {
			case model.StatusDone:
				chart[i].Completed++
			case model.StatusBlocked:
				chart[i].Blocked++
			}
		}
		switch r.Status {
		case model.StatusDone:
			done++
		case model.StatusBlocked:
			blocked++
		}
	}

	rate := 0
	if len(reports) > 0 {
		rate = int(math.Round(float64(done) / float64(len(reports)) * 100))
	}

	return model.StatsResponse{
		Chart: chart,
		Overview: model.StatsOverview{
			Rate:    rate,
			Blocked: blocked,
			Count:   len(reports),
		},
	}
}
