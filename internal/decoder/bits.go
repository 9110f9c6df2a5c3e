package decoder

// Hit object type bits (field 3).
const (
	TypeCircle      = 1 << 0 // bit 0
	TypeSlider      = 1 << 1 // bit 1
	TypeNewCombo    = 1 << 2 // bit 2
	TypeSpinner     = 1 << 3 // bit 3
	TypeComboOffset = 7 << 4 // bits 4-6, a 3-bit value
	TypeHold        = 1 << 7 // bit 7

	comboOffsetShift = 4
)

// Sound type bits (field 4 and slider node overlays).
const (
	SoundNormal  = 1 << 0 // bit 0, always played
	SoundWhistle = 1 << 1 // bit 1
	SoundFinish  = 1 << 2 // bit 2
	SoundClap    = 1 << 3 // bit 3
)

// Timing point effect bits (field 7).
const (
	EffectKiai             = 1 << 0 // bit 0
	EffectOmitFirstBarLine = 1 << 3 // bit 3
)

// takeComboOffset extracts the combo offset from a type bitmask and returns
// the bitmask with those bits cleared.
func takeComboOffset(typ int) (offset, rest int) {
	return (typ & TypeComboOffset) >> comboOffsetShift, typ &^ TypeComboOffset
}

// takeFlag reports whether flag is set in bits and returns bits with it cleared.
func takeFlag(bits, flag int) (set bool, rest int) {
	return bits&flag != 0, bits &^ flag
}

func hasFlag(bits, flag int) bool {
	return bits&flag != 0
}
