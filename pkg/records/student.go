package records

import "fmt"

type Student struct {
	Name   string
	Sex    string
	Age    int
	Grades []float64
}

// Validate checks age in [6, 100] and every grade in [0, 10].
func (s Student) Validate() error {
	if err := checkRange("age", s.Age, 6, 100); err != nil {
		return err
	}
	for i, g := range s.Grades {
		if err := checkRange(fmt.Sprintf("grades[%d]", i), g, 0, 10); err != nil {
			return err
		}
	}
	return nil
}

// Average is the arithmetic mean of the grades.
func (s Student) Average() (float64, error) {
	if len(s.Grades) == 0 {
		return 0, &FieldError{Field: "grades", Value: 0, Reason: "no grades recorded"}
	}
	sum := 0.0
	for _, g := range s.Grades {
		sum += g
	}
	return sum / float64(len(s.Grades)), nil
}

// BestStudent returns the index of the student with the highest average.
// Ties keep the earliest student.
func BestStudent(students []Student) (int, error) {
	if len(students) == 0 {
		return -1, ErrNoRecords
	}
	best, bestAvg := -1, 0.0
	for i, s := range students {
		avg, err := s.Average()
		if err != nil {
			return -1, fmt.Errorf("student %d: %w", i, err)
		}
		if best < 0 || avg > bestAvg {
			best, bestAvg = i, avg
		}
	}
	return best, nil
}
