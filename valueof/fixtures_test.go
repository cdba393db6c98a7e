package valueof_test

import (
	"errors"
	"time"

	"github.com/tomasbasham/paramstyle"
)

type Person struct {
	Name     string   `param:"name"`
	Age      int      `param:"age,omitempty"`
	Pronouns []string `param:"pronouns"`
}

type ComplexPerson struct {
	ID        int      `param:"id"`
	Name      string   `param:"name"`
	Age       int      `param:"age,omitempty"`
	Pronouns  []string `param:"pronouns,omitempty"`
	CreatedAt MyDate   `param:"created_at"`
	Private   string   `param:"-"`
	Optional  *string  `param:"optional,omitempty"`
}

type IgnoredFields struct {
	Public  string `param:"public"`
	Private string `param:"-"`
	Ignored string `param:",ignore"`
	NoTag   string
	Empty   string `param:""`
	Omitted string `param:",omitempty"`
	hidden  string
}

type User struct {
	Name    string  `param:"name"`
	Age     int     `param:"age,omitempty"`
	Address Address `param:"address"`
}

type Address struct {
	Street string `param:"street"`
	City   string `param:"city"`
}

type MyDate time.Time

func (d MyDate) MarshalParam() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

var errBadAnimal = errors.New("bad animal")

type Animal int

func (a Animal) MarshalParam() (string, error) {
	switch a {
	case 1:
		return "gopher", nil
	case 2:
		return "zebra", nil
	default:
		return "", errBadAnimal
	}
}

// Range describes itself as a mapping of its bounds.
type Range struct {
	Min, Max int64
}

func (r Range) ParamValue() (paramstyle.Value, error) {
	return paramstyle.Mapping(
		paramstyle.Field("gte", paramstyle.Int(r.Min)),
		paramstyle.Field("lte", paramstyle.Int(r.Max)),
	), nil
}
