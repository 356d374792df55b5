package weather

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is a temperature scale the service can express values in.
type Unit string

const (
	UnitCelsius    Unit = "celsius"
	UnitFahrenheit Unit = "fahrenheit"
)

// ParseUnit validates a unit string. An empty string defaults to celsius.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "", string(UnitCelsius):
		return UnitCelsius, nil
	case string(UnitFahrenheit):
		return UnitFahrenheit, nil
	}
	return "", fmt.Errorf("%w: unit must be \"celsius\" or \"fahrenheit\"", ErrInvalidInput)
}

// APIUnits maps the unit to the upstream provider's units parameter, so the
// provider returns values already expressed in the requested scale.
func (u Unit) APIUnits() string {
	if u == UnitFahrenheit {
		return "imperial"
	}
	return "metric"
}

// Symbol returns the degree symbol for the unit.
func (u Unit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// ConvertTemperature converts a temperature between celsius and fahrenheit.
// Same-unit conversion returns the input unchanged, with no rounding error.
func ConvertTemperature(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == UnitCelsius && to == UnitFahrenheit {
		return value*9/5 + 32
	}
	if from == UnitFahrenheit && to == UnitCelsius {
		return (value - 32) * 5 / 9
	}
	return value
}

// FormatTemperature rounds a temperature to the nearest whole degree and
// optionally appends the unit's degree symbol.
func FormatTemperature(value float64, unit Unit, withSymbol bool) string {
	rounded := int(math.Round(value))
	if !withSymbol {
		return strconv.Itoa(rounded)
	}
	return strconv.Itoa(rounded) + unit.Symbol()
}
