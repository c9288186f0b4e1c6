package records

type Employee struct {
	Name       string
	Position   string
	Department string
	Age        int
	Salary     float64
}

func (e Employee) Validate() error {
	if e.Salary <= 0 {
		return &FieldError{Field: "salary", Value: e.Salary, Reason: "must be positive"}
	}
	return nil
}

// SalaryStats summarizes a payroll. Lowest and Highest are indexes into the
// input; ties keep the earliest employee.
type SalaryStats struct {
	Min, Max, Mean  float64
	Total           float64
	Lowest, Highest int
}

func Salaries(employees []Employee) (SalaryStats, error) {
	if len(employees) == 0 {
		return SalaryStats{}, ErrNoRecords
	}
	st := SalaryStats{Min: employees[0].Salary, Max: employees[0].Salary}
	for i, e := range employees {
		st.Total += e.Salary
		if e.Salary < st.Min {
			st.Min, st.Lowest = e.Salary, i
		}
		if e.Salary > st.Max {
			st.Max, st.Highest = e.Salary, i
		}
	}
	st.Mean = st.Total / float64(len(employees))
	return st, nil
}
