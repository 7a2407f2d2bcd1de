package sales

import (
	"time"

	"cafe-pos/internal/models"
)

// WeekdayLabels matches the dashboard chart axis, Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeeklySeries buckets per-day totals into the Monday..Sunday week containing
// now. Totals outside that week, or with an unparseable date, are skipped.
func WeeklySeries(totals []models.DailyTotal, now time.Time) [7]float64 {
	dayIndex := make(map[string]int, 7)
	monday := startOfWeek(now)
	for i := 0; i < 7; i++ {
		dayIndex[monday.AddDate(0, 0, i).Format(models.DayFormat)] = i
	}

	var series [7]float64
	for _, t := range totals {
		day, ok := models.DayPortion(t.Date)
		if !ok {
			continue
		}
		if i, ok := dayIndex[day]; ok {
			series[i] += t.TotalAmount
		}
	}
	return series
}

func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	back := (int(t.Weekday()) + 6) % 7 // Monday = 0
	return t.AddDate(0, 0, -back)
}
