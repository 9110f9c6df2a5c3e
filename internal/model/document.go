// Package model defines the decoded beatmap document and the stored library record.
package model

// KeySampleSet is the [General] key holding the default sample bank.
const KeySampleSet = "SampleSet"

// Fixed [Difficulty] keys.
const (
	KeyHPDrainRate       = "HPDrainRate"
	KeyCircleSize        = "CircleSize"
	KeyOverallDifficulty = "OverallDifficulty"
	KeyApproachRate      = "ApproachRate"
)

// Document is the result of decoding one beatmap.
type Document struct {
	Version      int           `json:"formatVersion,omitempty"`
	General      General       `json:"general"`
	Metadata     Metadata      `json:"metadata,omitempty"`
	Difficulty   Difficulty    `json:"difficulty"`
	TimingPoints []TimingPoint `json:"timingPoints"`
	HitObjects   []HitObject   `json:"hitObjects"`
}

// NewDocument returns an empty document ready to be filled by a decoder.
func NewDocument() *Document {
	return &Document{
		General:      General{},
		Metadata:     Metadata{},
		Difficulty:   Difficulty{},
		TimingPoints: []TimingPoint{},
		HitObjects:   []HitObject{},
	}
}

// General holds [General] values. Values are strings or Numbers, except
// SampleSet which holds a SampleSet.
type General map[string]any

// SampleSet returns the default sample bank, Normal when unset or unrecognized.
func (g General) SampleSet() SampleSet {
	switch v := g[KeySampleSet].(type) {
	case SampleSet:
		return v
	case float64:
		// decoded back from JSON
		return SampleSet(v)
	}
	return SampleSetNormal
}

// Metadata holds raw [Metadata] strings.
type Metadata map[string]string

// Difficulty holds [Difficulty] values.
type Difficulty map[string]Number

func (d Difficulty) get(key string) Number {
	if v, ok := d[key]; ok {
		return v
	}
	return NaN()
}

func (d Difficulty) HPDrainRate() Number       { return d.get(KeyHPDrainRate) }
func (d Difficulty) CircleSize() Number        { return d.get(KeyCircleSize) }
func (d Difficulty) OverallDifficulty() Number { return d.get(KeyOverallDifficulty) }
func (d Difficulty) ApproachRate() Number      { return d.get(KeyApproachRate) }

// TimingPoint is one entry of [TimingPoints]. BeatLength and TimeSignature
// are only set on uninherited (tempo-defining) points.
type TimingPoint struct {
	Time             Number  `json:"time"`
	BeatLength       *Number `json:"beatLength,omitempty"`
	SpeedMultiplier  Number  `json:"speedMultiplier"`
	TimeSignature    *Number `json:"timeSignature,omitempty"`
	SampleBank       string  `json:"sampleBank"`
	CustomSampleBank Number  `json:"customSampleBank"`
	SampleVolume     Number  `json:"sampleVolume"`
	KiaiMode         bool    `json:"kiaiMode"`
	OmitFirstBarLine bool    `json:"omitFirstBarLine"`
}

// Uninherited reports whether the point defines tempo.
func (tp TimingPoint) Uninherited() bool {
	return tp.BeatLength != nil
}

// HitObjectKind tags the shape of a HitObject.
type HitObjectKind string

const (
	KindCircle  HitObjectKind = "circle"
	KindSlider  HitObjectKind = "slider"
	KindSpinner HitObjectKind = "spinner"
	KindHold    HitObjectKind = "hold"
)

// HitObject is one entry of [HitObjects]. Slider is set only for sliders
// and its fields are flattened into the JSON object.
type HitObject struct {
	Kind        HitObjectKind `json:"kind"`
	Pos         Vec2          `json:"pos"`
	Combo       bool          `json:"combo"`
	ComboOffset int           `json:"comboOffset"`
	StartTime   Number        `json:"startTime"`
	Samples     []SampleInfo  `json:"samples"`
	*Slider
}

// PathType is the curve type of a slider path.
type PathType string

const (
	PathCatmull PathType = "catmull"
	PathBezier  PathType = "bezier"
	PathLinear  PathType = "linear"
	PathPerfect PathType = "perfect"
)

// Slider holds the slider-only fields of a HitObject. NodeSamples has
// RepeatCount+2 entries: the head, one per repeat, and the tail.
type Slider struct {
	Points      []Vec2         `json:"points"`
	Length      Number         `json:"length"`
	PathType    PathType       `json:"pathType"`
	RepeatCount int            `json:"repeatCount"`
	NodeSamples [][]SampleInfo `json:"nodeSamples"`
}
