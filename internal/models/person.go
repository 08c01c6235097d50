package models

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Sex is the fixed two-variant enumeration used for every person
type Sex int

const (
	SexUnset Sex = iota
	Male
	Female
)

// Sexes lists the selectable values in display order
var Sexes = []Sex{Male, Female}

func (s Sex) String() string {
	switch s {
	case Male:
		return "m"
	case Female:
		return "f"
	default:
		return ""
	}
}

// Label returns the human readable name shown in selection widgets
func (s Sex) Label() string {
	switch s {
	case Male:
		return "Male"
	case Female:
		return "Female"
	default:
		return ""
	}
}

// ParseSex maps a selection label or short code back to a Sex.
// Unknown text yields SexUnset.
func ParseSex(text string) Sex {
	for _, s := range Sexes {
		if strings.EqualFold(text, s.Label()) || strings.EqualFold(text, s.String()) {
			return s
		}
	}
	return SexUnset
}

// Country is the fixed enumeration of countries a person can belong to
type Country int

const (
	CountryUnset Country = iota
	Switzerland
	Germany
	Austria
	France
	Italy
	Liechtenstein
)

// Countries lists the selectable values in display order
var Countries = []Country{Switzerland, Germany, Austria, France, Italy, Liechtenstein}

func (c Country) String() string {
	switch c {
	case Switzerland:
		return "CH"
	case Germany:
		return "DE"
	case Austria:
		return "AT"
	case France:
		return "FR"
	case Italy:
		return "IT"
	case Liechtenstein:
		return "LI"
	default:
		return ""
	}
}

// Label returns the human readable name shown in selection widgets
func (c Country) Label() string {
	switch c {
	case Switzerland:
		return "Switzerland"
	case Germany:
		return "Germany"
	case Austria:
		return "Austria"
	case France:
		return "France"
	case Italy:
		return "Italy"
	case Liechtenstein:
		return "Liechtenstein"
	default:
		return ""
	}
}

// ParseCountry maps a selection label or ISO code back to a Country.
// Unknown text yields CountryUnset.
func ParseCountry(text string) Country {
	for _, c := range Countries {
		if strings.EqualFold(text, c.Label()) || strings.EqualFold(text, c.String()) {
			return c
		}
	}
	return CountryUnset
}

// IDSequence hands out person ids. Every value is strictly greater than
// all values previously returned by the same sequence.
type IDSequence struct {
	last atomic.Uint64
}

// NewIDSequence creates a sequence whose first id is 1
func NewIDSequence() *IDSequence {
	return &IDSequence{}
}

// Next returns the next id
func (s *IDSequence) Next() uint64 {
	return s.last.Add(1)
}

// Last returns the most recently issued id, or 0 if none was issued
func (s *IDSequence) Last() uint64 {
	return s.last.Load()
}

// PersonInput holds parsed field values ready for construction
type PersonInput struct {
	FirstName string
	LastName  string
	Age       int
	Salary    float64
	Country   Country
	Sex       Sex
}

// Person represents one roster entry. The id is fixed at construction.
type Person struct {
	id        uint64
	age       int
	salary    float64
	firstName string
	lastName  string
	country   Country
	sex       Sex
}

// NewPerson builds a person from typed input and takes the next id from seq.
// The input is not re-checked here.
func NewPerson(seq *IDSequence, in PersonInput) *Person {
	return &Person{
		id:        seq.Next(),
		age:       in.Age,
		salary:    in.Salary,
		firstName: in.FirstName,
		lastName:  in.LastName,
		country:   in.Country,
		sex:       in.Sex,
	}
}

func (p *Person) ID() uint64        { return p.id }
func (p *Person) Age() int          { return p.age }
func (p *Person) Salary() float64   { return p.salary }
func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string  { return p.lastName }
func (p *Person) Country() Country  { return p.country }
func (p *Person) Sex() Sex          { return p.sex }

func (p *Person) SetAge(age int)             { p.age = age }
func (p *Person) SetSalary(salary float64)   { p.salary = salary }
func (p *Person) SetFirstName(name string)   { p.firstName = name }
func (p *Person) SetLastName(name string)    { p.lastName = name }
func (p *Person) SetCountry(country Country) { p.country = country }
func (p *Person) SetSex(sex Sex)             { p.sex = sex }

// FullName returns "first last"
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

// String renders the representation used for display and equality
func (p *Person) String() string {
	return fmt.Sprintf("%s %s %.2f %s %d %s",
		p.firstName, p.lastName, p.salary, p.country, p.age, p.sex)
}

// Equal reports representation equality: the formatted strings match
// ignoring case. Ids are not considered.
func (p *Person) Equal(other *Person) bool {
	if other == nil {
		return false
	}
	return strings.EqualFold(p.String(), other.String())
}

// ComparePersons orders by first name, then last name, then sex with
// male before female. Salary, age and country never take part.
func ComparePersons(a, b *Person) int {
	if c := strings.Compare(a.firstName, b.firstName); c != 0 {
		return c
	}
	if c := strings.Compare(a.lastName, b.lastName); c != 0 {
		return c
	}
	if a.Equal(b) || a.sex == b.sex {
		return 0
	}
	if a.sex == Female {
		return 1
	}
	if b.sex == Female {
		return -1
	}
	return 0
}
