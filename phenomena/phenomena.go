// Package phenomena parses METAR present- and recent-weather groups:
// intensity, vicinity, descriptor, and the precipitation/obscuration/
// other condition codes.
package phenomena

import "github.com/skybound-wx/metar/scan"

// Intensity is the reported strength of a weather phenomenon.
type Intensity int

const (
	Moderate Intensity = iota
	Light
	Heavy
)

// Descriptor further qualifies a weather phenomenon (shower, blowing,
// freezing, and so on).
type Descriptor string

const (
	Shallow      Descriptor = "MI"
	Partial      Descriptor = "PR"
	Patches      Descriptor = "BC"
	LowDrifting  Descriptor = "DR"
	Blowing      Descriptor = "BL"
	Showers      Descriptor = "SH"
	Thunderstorm Descriptor = "TS"
	Freezing     Descriptor = "FZ"
)

// ConditionKind distinguishes which of the three condition categories a
// Weather atom carries.
type ConditionKind int

const (
	NoCondition ConditionKind = iota
	PrecipitationCondition
	ObscurationCondition
	OtherCondition
)

// Precipitation is a single precipitation type code.
type Precipitation string

const (
	Rain          Precipitation = "RA"
	Drizzle       Precipitation = "DZ"
	Snow          Precipitation = "SN"
	SnowGrains    Precipitation = "SG"
	IceCrystals   Precipitation = "IC"
	IcePellets    Precipitation = "PL"
	Hail          Precipitation = "GR"
	SmallHail     Precipitation = "GS"
	UnknownPrecip Precipitation = "UP"
)

// Obscuration is a single obscuration type code.
type Obscuration string

const (
	Fog            Obscuration = "FG"
	Mist           Obscuration = "BR"
	Haze           Obscuration = "HZ"
	VolcanicAsh    Obscuration = "VA"
	WidespreadDust Obscuration = "DU"
	Smoke          Obscuration = "FU"
	Sand           Obscuration = "SA"
	Spray          Obscuration = "PY"
)

// Other is a single non-precipitation, non-obscuration weather code.
type Other string

const (
	Squall      Other = "SQ"
	Dust        Other = "PO"
	Duststorm   Other = "DS"
	Sandstorm   Other = "SS"
	FunnelCloud Other = "FC"
)

// Weather is one reported weather atom.
type Weather struct {
	Intensity     Intensity
	Vicinity      bool
	Descriptor    *Descriptor
	Kind          ConditionKind
	Precipitation []Precipitation
	Obscuration   Obscuration
	Other         Other
}

// Parse recognizes a single weather atom, in the grammar's four ordered
// alternatives: a descriptor followed by one-or-more precipitation
// codes, a descriptor followed by a single obscuration code, a
// descriptor followed by a single other-phenomenon code, and finally a
// descriptor alone with no condition at all.
func Parse(s *scan.Scanner) (*Weather, bool) {
	mark := s.Mark()
	intensity := parseIntensity(s)
	vicinity := s.Literal("VC")
	descriptor, hasDescriptor := parseDescriptor(s)

	if precip, ok := oneOrMorePrecipitation(s); ok {
		return &Weather{Intensity: intensity, Vicinity: vicinity, Descriptor: descriptor, Kind: PrecipitationCondition, Precipitation: precip}, true
	}

	if obsc, ok := parseObscuration(s); ok {
		return &Weather{Intensity: intensity, Vicinity: vicinity, Descriptor: descriptor, Kind: ObscurationCondition, Obscuration: obsc}, true
	}

	if other, ok := parseOther(s); ok {
		return &Weather{Intensity: intensity, Vicinity: vicinity, Descriptor: descriptor, Kind: OtherCondition, Other: other}, true
	}

	if hasDescriptor {
		return &Weather{Intensity: intensity, Vicinity: vicinity, Descriptor: descriptor, Kind: NoCondition}, true
	}

	s.Reset(mark)
	return nil, false
}

// ParseRecent recognizes the "RE" recent-weather wrapper: "RE" followed
// by a weather atom, or the documented "RE//" garbled sentinel.
func ParseRecent(s *scan.Scanner) (*Weather, bool) {
	mark := s.Mark()
	if s.Literal("RE") {
		if w, ok := Parse(s); ok {
			return w, true
		}
		s.Reset(mark)
	}
	if s.Literal("RE//") {
		return nil, true
	}
	s.Reset(mark)
	return nil, false
}

func parseIntensity(s *scan.Scanner) Intensity {
	mark := s.Mark()
	if s.Literal("+") {
		return Heavy
	}
	s.Reset(mark)
	if s.Literal("-") {
		return Light
	}
	s.Reset(mark)
	return Moderate
}

func parseDescriptor(s *scan.Scanner) (*Descriptor, bool) {
	val, ok := s.OneOf("descriptor", "MI", "PR", "BC", "DR", "BL", "SH", "TS", "FZ")
	if !ok {
		return nil, false
	}
	d := Descriptor(val)
	return &d, true
}

func oneOrMorePrecipitation(s *scan.Scanner) ([]Precipitation, bool) {
	var result []Precipitation
	for {
		val, ok := s.OneOf("precipitation", "RA", "DZ", "SN", "SG", "IC", "PL", "GR", "GS", "UP")
		if !ok {
			break
		}
		result = append(result, Precipitation(val))
	}
	return result, len(result) > 0
}

func parseObscuration(s *scan.Scanner) (Obscuration, bool) {
	val, ok := s.OneOf("obscuration", "FG", "BR", "HZ", "VA", "DU", "FU", "SA", "PY")
	return Obscuration(val), ok
}

func parseOther(s *scan.Scanner) (Other, bool) {
	val, ok := s.OneOf("other weather condition", "SQ", "PO", "DS", "SS", "FC")
	return Other(val), ok
}
