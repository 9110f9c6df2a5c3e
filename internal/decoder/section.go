package decoder

import "regexp"

// Section names with a registered decoder.
const (
	SectionGeneral      = "General"
	SectionMetadata     = "Metadata"
	SectionDifficulty   = "Difficulty"
	SectionTimingPoints = "TimingPoints"
	SectionHitObjects   = "HitObjects"
)

var sectionRegex = regexp.MustCompile(`^\[([^\[\]]+)\]$`)

// sectionName reports whether line is a "[Name]" header.
func sectionName(line string) (string, bool) {
	if line == "" || line[0] != '[' {
		return "", false
	}
	m := sectionRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// route hands line to the decoder of the active section. Lines in other
// sections are ignored.
func (d *Decoder) route(n int, line string) error {
	switch d.section {
	case SectionGeneral:
		d.decodeGeneral(n, line)
	case SectionMetadata:
		d.decodeMetadata(n, line)
	case SectionDifficulty:
		d.decodeDifficulty(n, line)
	case SectionTimingPoints:
		d.decodeTimingPoint(n, line)
	case SectionHitObjects:
		return d.decodeHitObject(n, line)
	}
	return nil
}
