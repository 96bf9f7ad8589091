/*
   Copyright Mycophonic.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package reg holds the chip's register map and the bit-level parameter
// encoders. Gain and volume parameters are taken in tenths of a decibel
// so callers never touch floating point; each encoder validates its
// domain before producing a register byte. Mixer routing gain is whole
// decibels (the hardware step is 3 dB).
package reg

import "fmt"

// Channel gain bounds in tenths of a dB. The hardware attenuates in
// 0.5 dB steps from 0 down to -96 dB, on both the DAC and ADC paths.
const (
	ChannelGainMin = -960
	ChannelGainMax = 0
)

// EncodeChannelGain converts a DAC/ADC digital gain in tenths of a dB to
// its register byte. Values between 0.5 dB steps round to the nearest
// step. The same byte is written to the left and right channel registers;
// the two paths use an identical encoding.
func EncodeChannelGain(tenthsDB int) (byte, error) {
	if tenthsDB < ChannelGainMin || tenthsDB > ChannelGainMax {
		return 0, fmt.Errorf("%w: %d", ErrGainRange, tenthsDB)
	}

	atten := -tenthsDB
	value := byte(atten/10) << 1

	// Bit 0 is the half-dB step; set when the tenths remainder rounds up.
	if atten%10 > 5 {
		value |= 1
	}

	return value, nil
}

// DecodeChannelGain converts a channel gain register byte back to tenths
// of a dB. Inverse of EncodeChannelGain up to the 0.5 dB quantization.
func DecodeChannelGain(value byte) int {
	tenths := int(value>>1) * 10
	if value&1 != 0 {
		tenths += 5
	}

	return -tenths
}

// Output volume bounds in tenths of a dB, stepping in 1.5 dB increments.
const (
	OutputVolumeMin  = -450
	OutputVolumeMax  = 45
	OutputVolumeStep = 15
)

// EncodeOutputVolume converts an output stage volume in tenths of a dB
// to its register byte. Only exact 1.5 dB steps are accepted; there is no
// rounding on this path.
func EncodeOutputVolume(tenthsDB int) (byte, error) {
	if tenthsDB < OutputVolumeMin || tenthsDB > OutputVolumeMax {
		return 0, fmt.Errorf("%w: %d", ErrVolumeRange, tenthsDB)
	}

	if tenthsDB%OutputVolumeStep != 0 {
		return 0, fmt.Errorf("%w: %d", ErrVolumeStep, tenthsDB)
	}

	return byte((tenthsDB - OutputVolumeMin) / OutputVolumeStep), nil
}

// Mixer routing gain bounds in whole dB, stepping in 3 dB increments.
const (
	MixerGainMin  = -15
	MixerGainMax  = 6
	MixerGainStep = 3
)

// mixerEnable routes the DAC output into the mixer (bit 7 of the mixer
// registers). The gain field occupies bits 5:3 and counts 3 dB steps
// down from +6 dB.
const mixerEnable byte = 0b1000_0000

// EncodeMixerGain converts a DAC-to-output-mixer routing gain in whole dB
// to its register byte, with the routing enable bit set. The mixer
// registers are shared routing+gain bytes, so the complete value is
// produced here rather than OR'd into a previous state.
func EncodeMixerGain(db int) (byte, error) {
	if db < MixerGainMin || db > MixerGainMax {
		return 0, fmt.Errorf("%w: %d", ErrMixerRange, db)
	}

	if db%MixerGainStep != 0 {
		return 0, fmt.Errorf("%w: %d", ErrMixerStep, db)
	}

	bits := byte((-db/MixerGainStep)+2) << 3

	return bits | mixerEnable, nil
}

// widthShift positions the 3-bit sample width code within DACControl1.
// The remaining format bits (L/R swap, polarity) stay at their defaults.
const widthShift = 3

// EncodeWidth converts a serial sample width in bits to the DACControl1
// byte carrying its 3-bit format code.
func EncodeWidth(bitsPerSample uint8) (byte, error) {
	var code byte

	switch bitsPerSample {
	case 16:
		code = 0b011
	case 18:
		code = 0b010
	case 20:
		code = 0b001
	case 24:
		code = 0b000
	case 32:
		code = 0b100

	default:
		return 0, fmt.Errorf("%w: %d bits", ErrSampleWidth, bitsPerSample)
	}

	return code << widthShift, nil
}
