package api

// Unit is the temperature unit sent with every backend request.
type Unit string

const (
	UnitFahrenheit Unit = "fahrenheit"
	UnitCelsius    Unit = "celsius"
)

// ParseUnit maps a stored config value to a Unit, defaulting to fahrenheit.
func ParseUnit(s string) Unit {
	if s == string(UnitCelsius) {
		return UnitCelsius
	}
	return UnitFahrenheit
}

func (u Unit) Toggle() Unit {
	if u == UnitCelsius {
		return UnitFahrenheit
	}
	return UnitCelsius
}

// Symbol returns the display symbol the backend also echoes back ("°F"/"°C").
func (u Unit) Symbol() string {
	if u == UnitCelsius {
		return "°C"
	}
	return "°F"
}
