package records

// Category is the competition bracket of a runner.
type Category uint8

const (
	Juvenile Category = iota // age <= 18
	Senior                   // age <= 40
	Veteran                  // age > 40
)

func (c Category) String() string {
	switch c {
	case Juvenile:
		return "Juvenile"
	case Senior:
		return "Senior"
	case Veteran:
		return "Veteran"
	}
	return "unknown"
}

type Runner struct {
	Name string
	Age  int
	Sex  string
	Club string
}

func (r Runner) Validate() error {
	return checkRange("age", r.Age, 1, 120)
}

func (r Runner) Category() Category {
	switch {
	case r.Age <= 18:
		return Juvenile
	case r.Age <= 40:
		return Senior
	default:
		return Veteran
	}
}
