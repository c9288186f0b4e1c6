package records

import (
	"cmp"
	"fmt"
	"time"

	"github.com/i5heu/GoCourseLab/pkg/search"
)

type Athlete struct {
	Name    string
	Country string
	Medals  int
}

// MostMedals returns the index of the athlete with the most medals, the
// earliest one on ties.
func MostMedals(athletes []Athlete) (int, error) {
	if len(athletes) == 0 {
		return -1, ErrNoRecords
	}
	best := 0
	for i, a := range athletes[1:] {
		if a.Medals > athletes[best].Medals {
			best = i + 1
		}
	}
	return best, nil
}

// StageTime is the time spent on one stage of a race.
type StageTime struct {
	Hours, Minutes, Seconds int
}

func (s StageTime) Duration() time.Duration {
	return time.Duration(s.Hours)*time.Hour + time.Duration(s.Minutes)*time.Minute + time.Duration(s.Seconds)*time.Second
}

func (s StageTime) String() string {
	return fmt.Sprintf("%dh %dm %ds", s.Hours, s.Minutes, s.Seconds)
}

func (s StageTime) Validate() error {
	if s.Hours < 0 {
		return &FieldError{Field: "hours", Value: s.Hours, Reason: "must not be negative"}
	}
	if err := checkRange("minutes", s.Minutes, 0, 59); err != nil {
		return err
	}
	return checkRange("seconds", s.Seconds, 0, 59)
}

// TotalTime adds the stages and carries seconds into minutes and minutes
// into hours.
func TotalTime(stages []StageTime) StageTime {
	var t StageTime
	for _, s := range stages {
		t.Hours += s.Hours
		t.Minutes += s.Minutes
		t.Seconds += s.Seconds
	}
	t.Minutes += t.Seconds / 60
	t.Seconds %= 60
	t.Hours += t.Minutes / 60
	t.Minutes %= 60
	return t
}

type Person struct {
	Name     string
	Disabled bool
}

// SplitByDisability partitions people preserving their order.
func SplitByDisability(people []Person) (without, with []Person) {
	for _, p := range people {
		if p.Disabled {
			with = append(with, p)
		} else {
			without = append(without, p)
		}
	}
	return without, with
}

// Enrollee is a roster entry: a student number and four partial grades.
type Enrollee struct {
	Number int
	Grades [4]float64
}

func (e Enrollee) Validate() error {
	if err := checkRange("number", e.Number, 1, 12000); err != nil {
		return err
	}
	for i, g := range e.Grades {
		if err := checkRange(fmt.Sprintf("grades[%d]", i), g, 0, 10); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRoster checks every entry and that numbers strictly increase, which
// FindEnrollee relies on.
func ValidateRoster(roster []Enrollee) error {
	numbers := make([]int, len(roster))
	for i, e := range roster {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		numbers[i] = e.Number
	}
	return search.ValidateIncreasing(numbers)
}

// FindEnrollee binary-searches a roster sorted by number.
func FindEnrollee(roster []Enrollee, number int) (Enrollee, bool) {
	i, ok := search.BinaryFunc(roster, number, func(e Enrollee, n int) int {
		return cmp.Compare(e.Number, n)
	})
	if !ok {
		return Enrollee{}, false
	}
	return roster[i], true
}
