package date

import (
	"fmt"
	"time"

	"github.com/Kirill-Lekhov/notalib/apperr"
)

// Week identifies a calendar week within a year.
type Week struct {
	Week int
	Year int
}

func (w Week) String() string { return fmt.Sprintf("%d week of %d year", w.Week, w.Year) }

// WeekMode selects how week numbers are assigned. Both modes treat Monday as
// the first day of the week.
type WeekMode int

const (
	// WeekModeNormal numbers weeks 1..53. Days before the first Monday of
	// the year belong to the last week of the previous year.
	WeekModeNormal WeekMode = iota
	// WeekModeMatchYear numbers weeks 0..53. Week 0 covers the days before
	// the first Monday, so the year of the result always matches the year
	// of the input date.
	WeekModeMatchYear
)

// WeekOf returns the week of t under the given numbering mode.
func WeekOf(t time.Time, mode WeekMode) (Week, error) {
	switch mode {
	case WeekModeNormal:
		w := matchYearWeek(t)
		if w.Week == 0 {
			// Roll into the last week of the previous year.
			w = matchYearWeek(time.Date(t.Year()-1, time.December, 31, 0, 0, 0, 0, t.Location()))
		}
		return w, nil
	case WeekModeMatchYear:
		return matchYearWeek(t), nil
	default:
		return Week{}, apperr.New("date.WeekOf", apperr.InvalidInput, "unknown week numbering mode %d", mode)
	}
}

// matchYearWeek computes the Monday-first week number in 0..53, matching
// strftime's %W directive.
func matchYearWeek(t time.Time) Week {
	monday := (int(t.Weekday()) + 6) % 7
	return Week{Week: (t.YearDay() + 6 - monday) / 7, Year: t.Year()}
}
