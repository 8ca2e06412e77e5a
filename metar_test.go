package metar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("a typical automated observation", func(t *testing.T) {
		r, err := ParseMETAR("METAR KJFK 121851Z 28016KT 10SM FEW050 SCT250 22/14 A3001 RMK AO2 SLP160")
		assert.NoError(t, err)
		assert.Equal(t, "KJFK", r.Identifier)
		assert.NotNil(t, r.ObservationTime)
		assert.Equal(t, 12, r.ObservationTime.DayOfMonth)
		assert.Equal(t, 18, r.ObservationTime.Time.Hour)
		assert.Equal(t, 51, r.ObservationTime.Time.Minute)
		assert.NotNil(t, r.Wind)
		assert.InDelta(t, 280, r.Wind.Direction.Degrees(), 0.001)
		assert.InDelta(t, 16, r.Wind.Speed.Knots(), 0.001)
		assert.NotNil(t, r.Visibility)
		assert.InDelta(t, 10, r.Visibility.Prevailing.Distance.Value(), 0.001)
		assert.Len(t, r.CloudCover, 2)
		assert.NotNil(t, r.Temperatures)
		assert.InDelta(t, 22, r.Temperatures.Air.Celsius(), 0.001)
		assert.InDelta(t, 14, r.Temperatures.Dewpoint.Celsius(), 0.001)
		assert.NotNil(t, r.Pressure)
		assert.InDelta(t, 30.01, r.Pressure.InchesOfMercury(), 0.001)
		assert.Contains(t, r.Remark, "AO2")
	})

	t.Run("CAVOK with an AUTO flag and no visibility group", func(t *testing.T) {
		r, err := ParseMETAR("METAR EGLL 121850Z AUTO 24010KT CAVOK 18/12 Q1013")
		assert.NoError(t, err)
		assert.Contains(t, r.ObservationFlags, Automated)
		assert.True(t, r.CAVOK)
		assert.InDelta(t, 1013, r.Pressure.Hectopascals(), 0.001)
	})

	t.Run("an A-prefixed altimeter reading is read as inches of mercury", func(t *testing.T) {
		r, err := ParseMETAR("METAR KBOS 121851Z 00000KT 10SM CLR 15/10 A2992")
		assert.NoError(t, err)
		assert.InDelta(t, 29.92, r.Pressure.InchesOfMercury(), 0.001)
	})

	t.Run("missing an identifier is a lexical error", func(t *testing.T) {
		_, err := ParseMETAR("   ")
		assert.Error(t, err)
	})

	t.Run("a garbled wind sentinel reports no wind", func(t *testing.T) {
		r, err := ParseMETAR("METAR LFPG 121850Z /////KT 9999 NSC 10/05 Q1008")
		assert.NoError(t, err)
		assert.Nil(t, r.Wind)
	})

	t.Run("a military bulletin reports color state, rainfall, and water conditions", func(t *testing.T) {
		r, err := ParseMETAR("METAR EGUN 121850Z 27012KT 9999 FEW030 15/10 Q1015 RF00.2/00.2 WHT W18/S4")
		assert.NoError(t, err)
		assert.NotNil(t, r.Color)
		assert.Equal(t, White, r.Color.CurrentColor)
		assert.NotNil(t, r.AccumulatedRainfall)
		assert.NotNil(t, r.WaterConditions)
		assert.NotNil(t, r.WaterConditions.SurfaceState)
		assert.Equal(t, Moderate, *r.WaterConditions.SurfaceState)
	})
}

func TestParseTAF(t *testing.T) {
	fixed := func(dayOfMonth, hour, minute int) time.Time {
		return time.Date(2026, time.January, dayOfMonth, hour, minute, 0, 0, time.UTC)
	}

	t.Run("a typical TAF", func(t *testing.T) {
		taf, err := ParseTAFWithClock("TAF KJFK 121720Z 1218/1324 28015G25KT P6SM FEW250", fixed)
		assert.NoError(t, err)
		assert.Equal(t, "KJFK", taf.Identifier)
		assert.Equal(t, 17, taf.IssueTime.Hour())
		assert.Equal(t, 20, taf.IssueTime.Minute())
		assert.Equal(t, 18, taf.ValidFrom.Hour())
		assert.Equal(t, 0, taf.ValidTo.Hour())
		assert.Contains(t, taf.Conditions, "28015G25KT")
	})

	t.Run("missing an identifier is a lexical error", func(t *testing.T) {
		_, err := ParseTAFWithClock("", fixed)
		assert.Error(t, err)
	})
}
