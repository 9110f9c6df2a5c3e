package decoder

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rcliao/beatmap/internal/model"
)

const (
	minTimingPointFields = 2

	// SimpleQuadruple is the time signature used when none is given.
	SimpleQuadruple = 4

	defaultSampleVolume = 100
)

// decodeTimingPoint decodes
// "time,beatLength,meter,sampleSet,sampleIndex,volume,uninherited,effects".
func (d *Decoder) decodeTimingPoint(n int, line string) {
	fields := strings.Split(line, ",")
	if len(fields) < minTimingPointFields {
		d.drop(n, "timing point has fewer than 2 fields")
		return
	}

	beatLength := parseNumber(fields[1])
	tp := model.TimingPoint{
		Time:             parseNumber(fields[0]),
		SpeedMultiplier:  1,
		CustomSampleBank: 0,
		SampleVolume:     defaultSampleVolume,
	}
	// negative beat length is a slider velocity multiplier, not a tempo
	if beatLength < 0 {
		tp.SpeedMultiplier = 100 / -beatLength
	}

	timeSignature := model.Number(SimpleQuadruple)
	if f, ok := field(fields, 2); ok && f[0] != '0' {
		timeSignature = parseNumber(f)
	}

	bank := int(d.doc.General.SampleSet())
	if f, ok := field(fields, 3); ok {
		bank = parseBits(f)
	}
	tp.SampleBank = timingBankName(bank)

	if f, ok := field(fields, 4); ok {
		tp.CustomSampleBank = parseNumber(f)
	}
	if f, ok := field(fields, 5); ok {
		tp.SampleVolume = parseNumber(f)
	}

	uninherited := true
	if f, ok := field(fields, 6); ok {
		uninherited = f[0] == '1'
	}

	effects := 0
	if f, ok := field(fields, 7); ok {
		effects = parseBits(f)
	}
	tp.KiaiMode = hasFlag(effects, EffectKiai)
	tp.OmitFirstBarLine = hasFlag(effects, EffectOmitFirstBarLine)

	if uninherited {
		tp.BeatLength = lo.ToPtr(beatLength)
		tp.TimeSignature = lo.ToPtr(timeSignature)
	}

	d.doc.TimingPoints = append(d.doc.TimingPoints, tp)
}

// timingBankName maps a legacy bank index to the name shown on a timing
// point. None shows as normal, and so does an unknown index.
func timingBankName(bank int) string {
	switch model.SampleSet(bank) {
	case model.SampleSetNone, model.SampleSetNormal:
		return model.SampleSetNormal.String()
	case model.SampleSetSoft:
		return model.SampleSetSoft.String()
	case model.SampleSetDrum:
		return model.SampleSetDrum.String()
	}
	return model.SampleSetNormal.String()
}
