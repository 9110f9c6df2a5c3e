package decoder

import (
	"strconv"
	"strings"

	"github.com/rcliao/beatmap/internal/model"
)

// splitKeyValue splits "Key: Value" at the first colon.
func splitKeyValue(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

func (d *Decoder) decodeGeneral(n int, line string) {
	key, value, ok := splitKeyValue(line)
	if !ok {
		d.drop(n, "not a key/value pair")
		return
	}

	if key == model.KeySampleSet {
		if s, ok := parseSampleSet(value); ok {
			d.doc.General[key] = s
			return
		}
	}

	if num, ok := coerceNumber(value); ok {
		d.doc.General[key] = num
		return
	}
	d.doc.General[key] = value
}

// parseSampleSet accepts a bank name or its legacy index.
func parseSampleSet(value string) (model.SampleSet, bool) {
	if s, ok := model.ParseSampleSet(value); ok {
		return s, true
	}
	i, err := strconv.Atoi(value)
	if err != nil || i < int(model.SampleSetNone) || i > int(model.SampleSetDrum) {
		return 0, false
	}
	return model.SampleSet(i), true
}

func (d *Decoder) decodeDifficulty(n int, line string) {
	key, value, ok := splitKeyValue(line)
	if !ok {
		d.drop(n, "not a key/value pair")
		return
	}
	d.doc.Difficulty[key] = parseNumber(value)
}

func (d *Decoder) decodeMetadata(n int, line string) {
	key, value, ok := splitKeyValue(line)
	if !ok {
		d.drop(n, "not a key/value pair")
		return
	}
	d.doc.Metadata[key] = value
}
