package decoder

import (
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/rcliao/beatmap/internal/model"
)

const (
	minHitObjectFields = 4

	// MaxRepeatCount is the largest raw slider repeat field accepted.
	MaxRepeatCount = 9000

	collinearEpsilon = 1e-3
)

// Field positions of a hit object record.
const (
	fieldX = iota
	fieldY
	fieldTime
	fieldType
	fieldSound
	fieldParams // circle: sample bank, slider: path
	fieldSlides
	fieldLength
	fieldEdgeSounds
	fieldEdgeSets
	fieldSliderSampleBank
)

// decodeHitObject decodes "x,y,time,type,hitSound,params...,hitSample".
func (d *Decoder) decodeHitObject(n int, line string) error {
	fields := strings.Split(line, ",")
	if len(fields) < minHitObjectFields {
		d.drop(n, "hit object has fewer than 4 fields")
		return nil
	}

	typ := parseBits(fields[fieldType])
	comboOffset, typ := takeComboOffset(typ)
	combo, typ := takeFlag(typ, TypeNewCombo)

	soundType := 0
	if f, ok := field(fields, fieldSound); ok {
		soundType = parseBits(f)
	}

	obj := model.HitObject{
		Pos: model.Vec2{
			X: parseNumber(fields[fieldX]),
			Y: parseNumber(fields[fieldY]),
		},
		Combo:       combo,
		ComboOffset: comboOffset,
	}

	var bank model.SampleBankInfo
	switch {
	case hasFlag(typ, TypeCircle):
		obj.Kind = model.KindCircle
		if f, ok := field(fields, fieldParams); ok {
			bank = resolveSampleBank(f)
		}
	case hasFlag(typ, TypeSlider):
		slider, err := decodeSlider(fields, soundType)
		if err != nil {
			return err
		}
		obj.Kind = model.KindSlider
		obj.Slider = slider
		// a slider plays its samples when it completes
		obj.Samples = slider.NodeSamples[len(slider.NodeSamples)-1]
	case hasFlag(typ, TypeSpinner), hasFlag(typ, TypeHold):
		// TODO: decode spinner end time and hold end time/sample tokens.
		d.drop(n, "spinner and hold objects are not decoded")
		return nil
	default:
		d.drop(n, "no shape bit set")
		return nil
	}

	obj.StartTime = parseNumber(fields[fieldTime])
	if obj.Samples == nil {
		obj.Samples = expandSoundType(soundType, bank)
	}
	d.doc.HitObjects = append(d.doc.HitObjects, obj)
	return nil
}

// decodeSlider decodes the slider fields
// "curveType|x:y|...,slides,length,edgeSounds,edgeSets,hitSample".
func decodeSlider(fields []string, soundType int) (*model.Slider, error) {
	s := &model.Slider{
		Points:   []model.Vec2{},
		PathType: model.PathCatmull,
	}

	if f, ok := field(fields, fieldParams); ok {
		tokens := strings.Split(f, "|")
		s.PathType = parsePathType(tokens[0])
		for _, tok := range tokens[1:] {
			x, y, _ := strings.Cut(tok, ":")
			s.Points = append(s.Points, model.Vec2{X: parseNumber(x), Y: parseNumber(y)})
		}
	}

	// a perfect circle cannot pass through three collinear points
	if len(s.Points) == 3 && s.PathType == model.PathPerfect && collinear(s.Points[0], s.Points[1], s.Points[2]) {
		s.PathType = model.PathLinear
	}

	slides := 1
	if f, ok := field(fields, fieldSlides); ok {
		raw := parseNumber(f)
		if raw > MaxRepeatCount {
			return nil, fmt.Errorf("%w: slider repeat count %v exceeds %d", ErrMalformedRecord, float64(raw), MaxRepeatCount)
		}
		// NaN fails the comparison and keeps the single span
		if raw >= 1 {
			slides = int(raw)
		}
	}
	// the raw field counts the first span
	s.RepeatCount = max(0, slides-1)

	s.Length = 0
	if f, ok := field(fields, fieldLength); ok {
		s.Length = parseNumber(f)
	}

	nodes := s.RepeatCount + 2

	var defaultBank model.SampleBankInfo
	if f, ok := field(fields, fieldSliderSampleBank); ok {
		defaultBank = resolveSampleBank(f)
	}
	banks := lo.Times(nodes, func(int) model.SampleBankInfo { return defaultBank })
	if f, ok := field(fields, fieldEdgeSets); ok {
		for i, tok := range strings.Split(f, "|") {
			if i >= nodes {
				break
			}
			if strings.TrimSpace(tok) != "" {
				banks[i] = resolveSampleBank(tok)
			}
		}
	}

	sounds := lo.Times(nodes, func(int) int { return soundType })
	if f, ok := field(fields, fieldEdgeSounds); ok {
		for i, tok := range strings.Split(f, "|") {
			if i >= nodes {
				break
			}
			sounds[i] = parseBits(tok)
		}
	}

	s.NodeSamples = lo.Times(nodes, func(i int) []model.SampleInfo {
		return expandSoundType(sounds[i], banks[i])
	})
	return s, nil
}

// parsePathType maps a curve letter to its PathType, Catmull when unknown.
func parsePathType(code string) model.PathType {
	switch strings.TrimSpace(code) {
	case "B":
		return model.PathBezier
	case "L":
		return model.PathLinear
	case "P":
		return model.PathPerfect
	case "C":
		return model.PathCatmull
	}
	return model.PathCatmull
}

// collinear reports whether a, b and c lie on one line.
func collinear(a, b, c model.Vec2) bool {
	cross := float64((b.Y-a.Y)*(c.X-a.X) - (b.X-a.X)*(c.Y-a.Y))
	return math.Abs(cross) <= collinearEpsilon
}
