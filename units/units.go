// Package units provides the unit-tagged quantity types the METAR and TAF
// parsers emit instead of raw floats: Angle, Length, Velocity, Pressure,
// and Temperature. Each quantity is a plain {value, unit tag} pair;
// conversion does the scalar math.
package units

import "github.com/skybound-wx/metar/conversion"

// Angle is a planar angle, always reported in degrees by this parser.
type Angle struct {
	degrees float64
}

// AngleDegrees constructs an Angle from a value in degrees.
func AngleDegrees(v float64) Angle { return Angle{degrees: v} }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return a.degrees }

// LengthUnit identifies the unit a Length was constructed with.
type LengthUnit int

const (
	Meters LengthUnit = iota
	Kilometers
	Feet
	StatuteMiles
	Millimeters
	Decimeters
)

// Length is a distance, constructed with an explicit unit. It reads back
// in its own unit (Value), in meters, or in feet; there are no readers for
// the other units.
type Length struct {
	value float64
	unit  LengthUnit
}

func LengthMeters(v float64) Length       { return Length{value: v, unit: Meters} }
func LengthKilometers(v float64) Length   { return Length{value: v, unit: Kilometers} }
func LengthFeet(v float64) Length         { return Length{value: v, unit: Feet} }
func LengthStatuteMiles(v float64) Length { return Length{value: v, unit: StatuteMiles} }
func LengthMillimeters(v float64) Length  { return Length{value: v, unit: Millimeters} }
func LengthDecimeters(v float64) Length   { return Length{value: v, unit: Decimeters} }

// Unit reports the unit the Length was constructed with.
func (l Length) Unit() LengthUnit { return l.unit }

// Value reports the raw numeric value in the Length's own unit.
func (l Length) Value() float64 { return l.value }

// Meters converts the Length to meters.
func (l Length) Meters() float64 {
	switch l.unit {
	case Meters:
		return l.value
	case Kilometers:
		return conversion.KmToM(l.value)
	case Feet:
		return conversion.FtToM(l.value)
	case StatuteMiles:
		return conversion.MilesToM(l.value)
	case Millimeters:
		return conversion.MmToM(l.value)
	case Decimeters:
		return conversion.DmToM(l.value)
	default:
		return l.value
	}
}

// Feet converts the Length to feet.
func (l Length) Feet() float64 {
	if l.unit == Feet {
		return l.value
	}
	return conversion.MToFt(l.Meters())
}

// VelocityUnit identifies the unit a Velocity was constructed with.
type VelocityUnit int

const (
	MetersPerSecond VelocityUnit = iota
	Knots
	KilometersPerHour
)

// Velocity is a speed, constructed with an explicit unit.
type Velocity struct {
	value float64
	unit  VelocityUnit
}

func VelocityMetersPerSecond(v float64) Velocity   { return Velocity{value: v, unit: MetersPerSecond} }
func VelocityKnots(v float64) Velocity             { return Velocity{value: v, unit: Knots} }
func VelocityKilometersPerHour(v float64) Velocity { return Velocity{value: v, unit: KilometersPerHour} }

func (v Velocity) Unit() VelocityUnit { return v.unit }
func (v Velocity) Value() float64     { return v.value }

// Knots converts the Velocity to knots.
func (v Velocity) Knots() float64 {
	switch v.unit {
	case Knots:
		return v.value
	case MetersPerSecond:
		return conversion.MpsToKts(v.value)
	case KilometersPerHour:
		return conversion.KphToKts(v.value)
	default:
		return v.value
	}
}

// MetersPerSecondValue converts the Velocity to meters per second.
func (v Velocity) MetersPerSecondValue() float64 {
	switch v.unit {
	case MetersPerSecond:
		return v.value
	case Knots:
		return conversion.KtsToMps(v.value)
	case KilometersPerHour:
		return conversion.KphToMps(v.value)
	default:
		return v.value
	}
}

// PressureUnit identifies the unit a Pressure was constructed with.
type PressureUnit int

const (
	Hectopascals PressureUnit = iota
	InchesOfMercury
)

// Pressure is an atmospheric pressure, constructed with an explicit unit.
type Pressure struct {
	value float64
	unit  PressureUnit
}

func PressureHectopascals(v float64) Pressure    { return Pressure{value: v, unit: Hectopascals} }
func PressureInchesOfMercury(v float64) Pressure { return Pressure{value: v, unit: InchesOfMercury} }

func (p Pressure) Unit() PressureUnit { return p.unit }
func (p Pressure) Value() float64     { return p.value }

// Hectopascals converts the Pressure to hectopascals.
func (p Pressure) Hectopascals() float64 {
	if p.unit == Hectopascals {
		return p.value
	}
	return conversion.InHgTohPa(p.value)
}

// InchesOfMercury converts the Pressure to inches of mercury.
func (p Pressure) InchesOfMercury() float64 {
	if p.unit == InchesOfMercury {
		return p.value
	}
	return conversion.HPaToInHg(p.value)
}

// Temperature is always reported in degrees Celsius by this parser; no
// other unit ever appears in a METAR or TAF bulletin.
type Temperature struct {
	celsius float64
}

// TemperatureCelsius constructs a Temperature from a value in degrees Celsius.
func TemperatureCelsius(v float64) Temperature { return Temperature{celsius: v} }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() float64 { return t.celsius }
