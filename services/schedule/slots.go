// Package schedule produces the per-day time slot grid shown in the booking
// wizard. Availability is deterministic for a given date so repeated loads of
// the same day always show the same grid.
package schedule

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"eliezerclean/models"
)

const dateLayout = "2006-01-02"

const (
	openingHour   = 8
	closingHour   = 18
	saturdayClose = 14
	lunchHour     = 13
)

// Slots returns the bookable slots for a date. Past dates and Sundays have
// none. The last bookable start is one hour before closing, and the lunch
// hour is skipped.
func Slots(date string, now time.Time) ([]models.TimeSlot, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(today) {
		return nil, fmt.Errorf("date %s is in the past", date)
	}
	if day.Weekday() == time.Sunday {
		return []models.TimeSlot{}, nil
	}

	closing := closingHour
	if day.Weekday() == time.Saturday {
		closing = saturdayClose
	}

	r := rand.New(rand.NewSource(dateSeed(date)))
	slots := make([]models.TimeSlot, 0, closing-openingHour)
	for hour := openingHour; hour < closing; hour++ {
		if hour == lunchHour {
			continue
		}
		available := r.Float64() > 0.3
		slots = append(slots, models.TimeSlot{
			Time:      fmt.Sprintf("%02d:00", hour),
			Available: available,
			Optimal:   available && r.Float64() > 0.6,
		})
	}
	return slots, nil
}

func dateSeed(date string) int64 {
	h := fnv.New64a()
	h.Write([]byte(date))
	return int64(h.Sum64())
}
