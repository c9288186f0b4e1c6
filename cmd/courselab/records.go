package main

import (
	"fmt"
	"sort"

	"github.com/i5heu/GoCourseLab/pkg/records"
)

const maxRecords = 50

var recordKinds = map[string]exercise{
	"runners":   {"runners grouped by age category", runRunners},
	"students":  {"student averages and the best student", runStudents},
	"employees": {"payroll minimum, maximum and mean", runEmployees},
	"athletes":  {"athlete with the most medals", runAthletes},
	"stages":    {"total time of a multi-stage race", runStages},
	"people":    {"people split by disability", runPeople},
	"enrollees": {"roster lookup by student number", runEnrollees},
}

func runRecords(a *app) error {
	if len(a.args) == 0 || a.args[0] == "help" {
		recordsHelp(a)
		return nil
	}
	kind, ok := recordKinds[a.args[0]]
	if !ok {
		recordsHelp(a)
		return fmt.Errorf("unknown record kind %q", a.args[0])
	}
	return kind.run(a)
}

func recordsHelp(a *app) {
	names := make([]string, 0, len(recordKinds))
	for name := range recordKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	a.out.Printf("usage: courselab records <kind>\n\n")
	for _, name := range names {
		a.out.Printf("  %-10s %s\n", name, recordKinds[name].about)
	}
}

// collect asks for the number of records and reads each one. A record that
// fails validate is reported and read again.
func collect[T any](a *app, what string, read func() (T, error), validate func(T) error) ([]T, error) {
	n, err := a.in.IntRange(fmt.Sprintf("number of %s: ", what), 1, maxRecords)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for len(out) < n {
		a.out.Section(fmt.Sprintf("%s #%d", what, len(out)+1))
		r, err := read()
		if err != nil {
			return nil, err
		}
		if validate != nil {
			if err := validate(r); err != nil {
				a.out.Error("%v, enter the record again", err)
				continue
			}
		}
		out = append(out, r)
	}
	return out, nil
}

func runRunners(a *app) error {
	a.out.Banner("RUNNERS")
	runners, err := collect(a, "runners", func() (r records.Runner, err error) {
		if r.Name, err = a.in.NonEmpty("name: "); err != nil {
			return r, err
		}
		if r.Age, err = a.in.IntRange("age: ", 1, 120); err != nil {
			return r, err
		}
		if r.Sex, err = a.in.NonEmpty("sex: "); err != nil {
			return r, err
		}
		r.Club, err = a.in.NonEmpty("club: ")
		return r, err
	}, records.Runner.Validate)
	if err != nil {
		return err
	}
	for _, cat := range []records.Category{records.Juvenile, records.Senior, records.Veteran} {
		a.out.Section(cat.String())
		for _, r := range runners {
			if r.Category() == cat {
				a.out.Printf("%s (%d, %s, %s)\n", r.Name, r.Age, r.Sex, r.Club)
			}
		}
	}
	return nil
}

func runStudents(a *app) error {
	a.out.Banner("STUDENTS")
	grades, err := a.in.IntRange("grades per student: ", 1, 10)
	if err != nil {
		return err
	}
	students, err := collect(a, "students", func() (s records.Student, err error) {
		if s.Name, err = a.in.NonEmpty("name: "); err != nil {
			return s, err
		}
		if s.Sex, err = a.in.NonEmpty("sex: "); err != nil {
			return s, err
		}
		if s.Age, err = a.in.IntRange("age: ", 6, 100); err != nil {
			return s, err
		}
		for i := 0; i < grades; i++ {
			g, err := a.in.Float(fmt.Sprintf("grade %d: ", i+1), 0, 10)
			if err != nil {
				return s, err
			}
			s.Grades = append(s.Grades, g)
		}
		return s, nil
	}, records.Student.Validate)
	if err != nil {
		return err
	}
	a.out.Section("averages")
	for _, s := range students {
		avg, err := s.Average()
		if err != nil {
			return err
		}
		a.out.Printf("%-20s %.2f\n", s.Name, avg)
	}
	best, err := records.BestStudent(students)
	if err != nil {
		return err
	}
	a.out.OK("best student: %s", students[best].Name)
	return nil
}

func runEmployees(a *app) error {
	a.out.Banner("EMPLOYEES")
	employees, err := collect(a, "employees", func() (e records.Employee, err error) {
		if e.Name, err = a.in.NonEmpty("name: "); err != nil {
			return e, err
		}
		if e.Position, err = a.in.NonEmpty("position: "); err != nil {
			return e, err
		}
		if e.Department, err = a.in.NonEmpty("department: "); err != nil {
			return e, err
		}
		if e.Age, err = a.in.IntRange("age: ", 16, 100); err != nil {
			return e, err
		}
		e.Salary, err = a.in.Float("salary: ", 0, 1e9)
		return e, err
	}, records.Employee.Validate)
	if err != nil {
		return err
	}
	st, err := records.Salaries(employees)
	if err != nil {
		return err
	}
	a.out.OK("lowest salary: %.2f (%s)", st.Min, employees[st.Lowest].Name)
	a.out.OK("highest salary: %.2f (%s)", st.Max, employees[st.Highest].Name)
	a.out.OK("mean salary: %.2f, payroll: %.2f", st.Mean, st.Total)
	return nil
}

func runAthletes(a *app) error {
	a.out.Banner("ATHLETES")
	athletes, err := collect(a, "athletes", func() (at records.Athlete, err error) {
		if at.Name, err = a.in.NonEmpty("name: "); err != nil {
			return at, err
		}
		if at.Country, err = a.in.NonEmpty("country: "); err != nil {
			return at, err
		}
		at.Medals, err = a.in.IntAtLeast("medals: ", 0)
		return at, err
	}, nil)
	if err != nil {
		return err
	}
	best, err := records.MostMedals(athletes)
	if err != nil {
		return err
	}
	at := athletes[best]
	a.out.OK("most medals: %s (%s) with %d", at.Name, at.Country, at.Medals)
	return nil
}

func runStages(a *app) error {
	a.out.Banner("STAGES")
	stages, err := collect(a, "stages", func() (s records.StageTime, err error) {
		if s.Hours, err = a.in.IntAtLeast("hours: ", 0); err != nil {
			return s, err
		}
		if s.Minutes, err = a.in.IntRange("minutes: ", 0, 59); err != nil {
			return s, err
		}
		s.Seconds, err = a.in.IntRange("seconds: ", 0, 59)
		return s, err
	}, records.StageTime.Validate)
	if err != nil {
		return err
	}
	a.out.OK("total time: %s", records.TotalTime(stages))
	return nil
}

func runPeople(a *app) error {
	a.out.Banner("PEOPLE")
	people, err := collect(a, "people", func() (p records.Person, err error) {
		if p.Name, err = a.in.NonEmpty("name: "); err != nil {
			return p, err
		}
		d, err := a.in.IntRange("disability (1 yes, 0 no): ", 0, 1)
		p.Disabled = d == 1
		return p, err
	}, nil)
	if err != nil {
		return err
	}
	without, with := records.SplitByDisability(people)
	for _, group := range []struct {
		title  string
		people []records.Person
	}{{"without disability", without}, {"with disability", with}} {
		a.out.Section(group.title)
		if len(group.people) == 0 {
			a.out.Printf("(none)\n")
		}
		for _, p := range group.people {
			a.out.Printf("%s\n", p.Name)
		}
	}
	return nil
}

func runEnrollees(a *app) error {
	a.out.Banner("ROSTER")
	last := 0
	roster, err := collect(a, "enrollees", func() (e records.Enrollee, err error) {
		if e.Number, err = a.in.IntRange("student number: ", last+1, 12000); err != nil {
			return e, err
		}
		for i := range e.Grades {
			if e.Grades[i], err = a.in.Float(fmt.Sprintf("grade %d: ", i+1), 0, 10); err != nil {
				return e, err
			}
		}
		last = e.Number
		return e, nil
	}, records.Enrollee.Validate)
	if err != nil {
		return err
	}
	if err := records.ValidateRoster(roster); err != nil {
		return err
	}
	for {
		n, err := a.in.IntRange("\nnumber to look up (0 to quit): ", 0, 12000)
		if err != nil || n == 0 {
			return err
		}
		e, ok := records.FindEnrollee(roster, n)
		if !ok {
			a.out.Warn("no student with number %d", n)
			continue
		}
		a.out.OK("student %d: grades %.1f %.1f %.1f %.1f", e.Number, e.Grades[0], e.Grades[1], e.Grades[2], e.Grades[3])
	}
}
