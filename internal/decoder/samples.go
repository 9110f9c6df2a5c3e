package decoder

import (
	"strings"

	"github.com/samber/lo"

	"github.com/rcliao/beatmap/internal/model"
)

// resolveSampleBank decodes "bank:addbank[:index][:volume][:filename]".
func resolveSampleBank(token string) model.SampleBankInfo {
	parts := strings.Split(token, ":")
	var info model.SampleBankInfo

	normal, _ := field(parts, 0)
	info.Normal = sampleBankName(normal)

	// an empty addition bank follows the normal bank
	if add, ok := field(parts, 1); ok {
		info.Add = sampleBankName(add)
	} else {
		info.Add = info.Normal
	}

	if f, ok := field(parts, 2); ok {
		info.CustomSampleBank = lo.ToPtr(parseNumber(f))
	}
	if f, ok := field(parts, 3); ok {
		info.Volume = lo.ToPtr(parseNumber(f))
	}
	if len(parts) > 4 && parts[4] != "" {
		info.Filename = lo.ToPtr(parts[4])
	}
	return info
}

// sampleBankName maps a legacy bank index to its name. None and unknown
// indices are absent so the context default applies.
func sampleBankName(token string) *string {
	n, ok := coerceNumber(token)
	if !ok {
		return nil
	}
	switch model.SampleSet(n) {
	case model.SampleSetNormal:
		return lo.ToPtr(model.SampleSetNormal.String())
	case model.SampleSetSoft:
		return lo.ToPtr(model.SampleSetSoft.String())
	case model.SampleSetDrum:
		return lo.ToPtr(model.SampleSetDrum.String())
	}
	return nil
}

// additions lists the addition sounds in the order they are played.
var additions = []struct {
	flag int
	name string
}{
	{SoundFinish, model.SampleHitFinish},
	{SoundWhistle, model.SampleHitWhistle},
	{SoundClap, model.SampleHitClap},
}

// expandSoundType lists the samples for a sound bitmask: hitnormal from the
// normal bank, then finish, whistle and clap from the addition bank. An
// explicit filename replaces all of them.
func expandSoundType(soundType int, bank model.SampleBankInfo) []model.SampleInfo {
	if bank.Filename != nil && *bank.Filename != "" {
		return []model.SampleInfo{{Filename: *bank.Filename}}
	}

	samples := []model.SampleInfo{{
		Bank:             bank.Normal,
		Name:             model.SampleHitNormal,
		Volume:           bank.Volume,
		CustomSampleBank: bank.CustomSampleBank,
	}}
	for _, a := range additions {
		if !hasFlag(soundType, a.flag) {
			continue
		}
		samples = append(samples, model.SampleInfo{
			Bank:             bank.Add,
			Name:             a.name,
			Volume:           bank.Volume,
			CustomSampleBank: bank.CustomSampleBank,
		})
	}
	return samples
}
