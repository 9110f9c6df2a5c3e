package model

import "strings"

// SampleSet is the legacy numeric sample bank index.
type SampleSet int

const (
	SampleSetNone   SampleSet = 0
	SampleSetNormal SampleSet = 1
	SampleSetSoft   SampleSet = 2
	SampleSetDrum   SampleSet = 3
)

// String returns the lowercase bank name.
func (s SampleSet) String() string {
	switch s {
	case SampleSetNone:
		return "none"
	case SampleSetNormal:
		return "normal"
	case SampleSetSoft:
		return "soft"
	case SampleSetDrum:
		return "drum"
	}
	return "unknown"
}

// ParseSampleSet accepts a bank name (any case) as written in [General].
func ParseSampleSet(s string) (SampleSet, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return SampleSetNone, true
	case "normal":
		return SampleSetNormal, true
	case "soft":
		return SampleSetSoft, true
	case "drum":
		return SampleSetDrum, true
	}
	return 0, false
}

// Sample names produced by sound type expansion.
const (
	SampleHitNormal  = "hitnormal"
	SampleHitWhistle = "hitwhistle"
	SampleHitFinish  = "hitfinish"
	SampleHitClap    = "hitclap"
)

// SampleBankInfo is the decoded form of a "bank:addbank:index:volume:filename"
// token. A nil field means the value was absent and the context default
// applies.
type SampleBankInfo struct {
	Normal           *string
	Add              *string
	CustomSampleBank *Number
	Volume           *Number
	Filename         *string
}

// SampleInfo describes one sample played by a hit object. It either names
// an exact file (Filename) or a sample from a bank (Bank, Name, Volume,
// CustomSampleBank); the two shapes are never mixed.
type SampleInfo struct {
	Filename         string  `json:"filename,omitempty"`
	Bank             *string `json:"bank,omitempty"`
	Name             string  `json:"name,omitempty"`
	Volume           *Number `json:"volume,omitempty"`
	CustomSampleBank *Number `json:"customSampleBank,omitempty"`
}
