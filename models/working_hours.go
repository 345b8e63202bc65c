package models

import (
	"fmt"
	"time"
)

// DateLayout is the wire/storage format for calendar dates. Dates in this
// format compare correctly as plain strings.
const DateLayout = "2006-01-02"

// Effectivity marks a WorkingHours record as the current one for its
// (staff, weekday) pair or as superseded up to an inclusive end date.
type Effectivity struct {
	Superseded bool   `bson:"superseded" json:"superseded"`
	Until      string `bson:"until,omitempty" json:"until,omitempty"` // set iff Superseded
}

// Current is the effectivity of the single live record per staff/weekday.
func Current() Effectivity { return Effectivity{} }

// SupersededUntil marks a record as historical through the given date.
func SupersededUntil(date string) Effectivity {
	return Effectivity{Superseded: true, Until: date}
}

// WorkingHours describes one staff member's bookable window for a single
// weekday, valid from EffectiveFrom until superseded.
type WorkingHours struct {
	ID            string       `bson:"id" json:"id"`
	StaffID       string       `bson:"staffId" json:"staffId"`
	DayOfWeek     time.Weekday `bson:"dayOfWeek" json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	IsWorkingDay  bool         `bson:"isWorkingDay" json:"isWorkingDay"`
	Window        Interval     `bson:"window" json:"window"`
	Breaks        []Interval   `bson:"breaks,omitempty" json:"breaks,omitempty"`
	EffectiveFrom string       `bson:"effectiveFrom" json:"effectiveFrom"`
	Effectivity   Effectivity  `bson:"effectivity" json:"effectivity"`
	CreatedAt     time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// CoversDate reports whether this record is the one in force on the given
// date ("2006-01-02").
func (wh WorkingHours) CoversDate(date string) bool {
	if wh.EffectiveFrom != "" && wh.EffectiveFrom > date {
		return false
	}
	if wh.Effectivity.Superseded {
		return wh.Effectivity.Until >= date
	}
	return true
}

// Validate enforces the structural invariants: a working day needs a valid
// window, every break must lie inside it, and breaks may not overlap each
// other.
func (wh WorkingHours) Validate() error {
	if wh.DayOfWeek < time.Sunday || wh.DayOfWeek > time.Saturday {
		return fmt.Errorf("invalid day of week: %d", wh.DayOfWeek)
	}
	if !wh.IsWorkingDay {
		if len(wh.Breaks) > 0 {
			return fmt.Errorf("non-working day cannot have breaks")
		}
		return nil
	}
	if err := wh.Window.Validate(); err != nil {
		return fmt.Errorf("working window: %w", err)
	}
	for i, br := range wh.Breaks {
		if err := br.Validate(); err != nil {
			return fmt.Errorf("break %d: %w", i, err)
		}
		if !wh.Window.Contains(br) {
			return fmt.Errorf("break %s-%s outside working window %s-%s",
				br.Start, br.End, wh.Window.Start, wh.Window.End)
		}
		for j := 0; j < i; j++ {
			if br.Overlaps(wh.Breaks[j]) {
				return fmt.Errorf("break %s-%s overlaps break %s-%s",
					br.Start, br.End, wh.Breaks[j].Start, wh.Breaks[j].End)
			}
		}
	}
	return nil
}

// WorkingHoursPatch carries a partial update for a single weekday record.
// Nil fields are left untouched; Breaks replaces the whole array when set.
type WorkingHoursPatch struct {
	IsWorkingDay *bool       `json:"isWorkingDay,omitempty"`
	Window       *Interval   `json:"window,omitempty"`
	Breaks       *[]Interval `json:"breaks,omitempty"`
}
