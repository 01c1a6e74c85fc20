package weather

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownVariable is returned when an alias or obs code matches no
	// registered variable.
	ErrUnknownVariable = errors.New("unknown weather variable")
)

// Interval is the temporal resolution of a BoM dataset.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalMonthly Interval = "monthly"
	IntervalAnnual  Interval = "annual"
)

// Valid reports whether the interval is one of the enumerated values.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDaily, IntervalMonthly, IntervalAnnual:
		return true
	}
	return false
}

// Variable describes a single BoM observation code (p_nccObsCode): its
// numeric code, temporal resolution, display name, and the aliases callers
// may use to refer to it.
type Variable struct {
	Name     string   `json:"name"`
	Code     int      `json:"code"`
	Interval Interval `json:"interval"`
	Aliases  []string `json:"aliases"`
}

// variables is the static registry of supported observation codes. It is
// built once at init and never mutated afterwards.
var variables = []Variable{
	{
		Name:     "Rainfall - daily total",
		Code:     136,
		Interval: IntervalDaily,
		Aliases:  []string{"daily_rain", "daily_rainfall"},
	},
	{
		Name:     "Maximum temperature - daily",
		Code:     122,
		Interval: IntervalDaily,
		Aliases:  []string{"daily_max_temp", "max_temp"},
	},
	{
		Name:     "Rainfall - monthly total",
		Code:     139,
		Interval: IntervalMonthly,
		Aliases:  []string{"monthly_rain"},
	},
}

// aliasIndex maps lower-cased aliases to positions in variables. Built once;
// a duplicate alias is a programming error in the registry.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]int {
	idx := make(map[string]int)
	for i, v := range variables {
		for _, a := range v.Aliases {
			key := strings.ToLower(a)
			if _, ok := idx[key]; ok {
				panic("weather: duplicate variable alias " + a)
			}
			idx[key] = i
		}
	}
	return idx
}

// Variables returns a copy of the registry.
func Variables() []Variable {
	out := make([]Variable, len(variables))
	copy(out, variables)
	return out
}

// ResolveVariable returns the variable whose alias set contains a
// case-insensitive match for alias. A string that parses as an integer is
// treated as an obs code. Unknown input returns ErrUnknownVariable; there is
// no fallback to a default variable.
func ResolveVariable(alias string) (Variable, error) {
	key := strings.ToLower(strings.TrimSpace(alias))
	if i, ok := aliasIndex[key]; ok {
		return variables[i], nil
	}
	if code, err := strconv.Atoi(key); err == nil {
		return ResolveVariableCode(code)
	}
	return Variable{}, fmt.Errorf("%w: %q", ErrUnknownVariable, alias)
}

// ResolveVariableCode returns the variable with the given obs code.
func ResolveVariableCode(code int) (Variable, error) {
	for _, v := range variables {
		if v.Code == code {
			return v, nil
		}
	}
	return Variable{}, fmt.Errorf("%w: obs code %d", ErrUnknownVariable, code)
}
