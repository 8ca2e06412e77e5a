// Package metar decodes METAR and TAF aviation weather bulletins into
// structured reports.
package metar

import (
	"time"

	"github.com/skybound-wx/metar/clouds"
	"github.com/skybound-wx/metar/phenomena"
	"github.com/skybound-wx/metar/runway"
	"github.com/skybound-wx/metar/units"
	"github.com/skybound-wx/metar/visibility"
	"github.com/skybound-wx/metar/wind"
)

// ObservationFlag is a station-reported qualifier on how the observation
// was produced.
type ObservationFlag string

const (
	Automated      ObservationFlag = "AUTO"
	Missing        ObservationFlag = "NIL"
	Corrected      ObservationFlag = "COR"
	CorrectionA    ObservationFlag = "CCA"
	CorrectionB    ObservationFlag = "CCB"
	CorrectionC    ObservationFlag = "CCC"
	RoutineDelayed ObservationFlag = "RTD"
)

// ZuluTime is a time-of-day in UTC, as reported, with no date attached.
type ZuluTime struct {
	Hour   int
	Minute int
}

// ZuluDateTime is the observation time reported in a METAR: a day of
// month plus a time of day. The day is not resolved against the wall
// clock, since the report alone does not say which month or year it
// belongs to; callers that need an absolute timestamp should resolve it
// themselves with the clock package, exactly as TAF's issue and validity
// times are resolved internally.
type ZuluDateTime struct {
	DayOfMonth int
	Time       ZuluTime
	IsZulu     bool
}

// ZuluTimeRange is a begin/end pair of times of day, used for the
// observation validity range group.
type ZuluTimeRange struct {
	Begin ZuluTime
	End   ZuluTime
}

// Temperatures is the reported air temperature and, when present, dew
// point.
type Temperatures struct {
	Air      units.Temperature
	Dewpoint *units.Temperature
}

// AccumulatedRainfall is the RF group: rainfall accumulated recently and
// over a longer reference period.
type AccumulatedRainfall struct {
	Recent units.Length
	Past   units.Length
}

// ColorState is a military color-code weather state.
type ColorState string

const (
	Blue     ColorState = "BLU"
	BluePlus ColorState = "BLU+"
	White    ColorState = "WHT"
	Green    ColorState = "GRN"
	Yellow1  ColorState = "YLO1"
	Yellow2  ColorState = "YLO2"
	Yellow   ColorState = "YLO"
	Amber    ColorState = "AMB"
	Red      ColorState = "RED"
)

// Color is a military color-code group, reporting the current state and
// optionally the state it is trending toward.
type Color struct {
	IsBlack      bool
	CurrentColor ColorState
	NextColor    *ColorState
}

// WaterSurfaceState is the sea-state code reported in the "S" form of a
// water conditions group.
type WaterSurfaceState string

const (
	CalmGlassy  WaterSurfaceState = "0"
	CalmRippled WaterSurfaceState = "1"
	Smooth      WaterSurfaceState = "2"
	Slight      WaterSurfaceState = "3"
	Moderate    WaterSurfaceState = "4"
	Rough       WaterSurfaceState = "5"
	VeryRough   WaterSurfaceState = "6"
	High        WaterSurfaceState = "7"
	VeryHigh    WaterSurfaceState = "8"
	Phenomenal  WaterSurfaceState = "9"
)

// WaterConditions is the "W" group reporting sea surface temperature
// plus either a qualitative surface state or a significant wave height.
type WaterConditions struct {
	Temperature           *units.Temperature
	SurfaceState          *WaterSurfaceState
	SignificantWaveHeight *units.Length
}

// TrendKind distinguishes the two trend forecast forms.
type TrendKind int

const (
	NoSignificantChange TrendKind = iota
	Becoming
	Temporarily
)

// TrendTimeType identifies which kind of time qualifies a trend's
// forecast period.
type TrendTimeType string

const (
	At   TrendTimeType = "AT"
	From TrendTimeType = "FM"
	Till TrendTimeType = "TL"
)

// TrendTime pairs a time-of-day with the qualifier that explains what it
// means within the trend.
type TrendTime struct {
	TimeType TrendTimeType
	Time     ZuluTime
}

// TrendReport is the forecast body of a BECMG/TEMPO trend group.
type TrendReport struct {
	Time       *TrendTime
	Wind       *wind.Wind
	Visibility *visibility.Visibility
	Weather    []phenomena.Weather
	CloudCover []clouds.Cover
	ColorState *ColorState
}

// Trend is a single trend group: either the no-significant-change
// sentinel, or a BECMG/TEMPO forecast body.
type Trend struct {
	Kind   TrendKind
	Report *TrendReport // nil when Kind == NoSignificantChange
}

// Report is a fully decoded METAR.
type Report struct {
	Identifier               string
	ObservationTime          *ZuluDateTime
	ObservationValidityRange *ZuluTimeRange
	ObservationFlags         []ObservationFlag
	Wind                     *wind.Wind
	Visibility               *visibility.Visibility
	RunwayVisibilities       []runway.Visibility
	RunwayReports            []runway.Report
	Weather                  []phenomena.Weather
	RecentWeather            []phenomena.Weather
	CloudCover               []clouds.Cover
	CAVOK                    bool
	Temperatures             *Temperatures
	Pressure                 *units.Pressure
	AccumulatedRainfall      *AccumulatedRainfall
	Color                    *Color
	WaterConditions          *WaterConditions
	Trends                   []Trend
	Remark                   string
	MaintenanceNeeded        bool
}

// TAF is a fully decoded terminal aerodrome forecast. Its forecast body
// is deliberately not deeply parsed: TAF condition groups reuse METAR's
// vocabulary in a much more free-form sequence, position-dependent on
// the FM/BECMG/TEMPO/PROB change-group structure, and the source grammar
// this parser is ported from likewise leaves it as raw text.
type TAF struct {
	Identifier string
	IssueTime  time.Time
	ValidFrom  time.Time
	ValidTo    time.Time
	Conditions string
}
