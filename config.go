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

package es8388

import (
	"fmt"
	"slices"
)

// Config holds the parameters for codec bring-up. Start from
// DefaultConfig and override fields as needed; New validates everything
// before the first register write.
type Config struct {
	// SampleRate in Hz, as programmed into the audio bus.
	SampleRate int

	// BitsPerSample must be one of 16, 18, 20, 24 or 32.
	BitsPerSample uint8

	// Format is the serial frame standard. The base flow uses Philips
	// framing.
	Format FrameFormat

	// Slots selects the active channel slots. Both by default.
	Slots SlotMode

	// BCLKDivider fixes the MCLK-to-BCLK divider. Zero selects automatic
	// detection; non-zero values must be members of the chip's divider
	// table.
	BCLKDivider int

	// DACGain is the initial DAC digital gain in tenths of a dB,
	// applied identically to both channels.
	DACGain int

	// OutputVolume is the initial output-1 volume in tenths of a dB,
	// applied identically to both channels.
	OutputVolume int

	// StartMuted leaves the soft mute engaged after bring-up. The chip
	// is muted during reconfiguration regardless.
	StartMuted bool

	// AutoStart starts the audio bus as the final bring-up step.
	AutoStart bool

	// ChipMaster would make the codec generate the bit and word clocks.
	// Only the clock-consumer role is implemented; setting this makes
	// New fail with ErrUnimplemented.
	ChipMaster bool
}

// DefaultConfig returns the bring-up defaults: 48 kHz 16-bit stereo
// Philips framing, DAC at -12.0 dB, output 1 at -9.0 dB, unmuted and
// streaming.
func DefaultConfig() Config {
	return Config{
		SampleRate:    48000,
		BitsPerSample: 16,
		Format:        FormatPhilips,
		Slots:         SlotsBoth,
		DACGain:       -120,
		OutputVolume:  -90,
		AutoStart:     true,
	}
}

func (c Config) validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrConfig, c.SampleRate)
	}

	if !slices.Contains(sampleWidths, c.BitsPerSample) {
		return fmt.Errorf("%w: %d bits per sample", ErrUnsupportedFormat, c.BitsPerSample)
	}

	if c.ChipMaster {
		return fmt.Errorf("%w: chip as clock master", ErrUnimplemented)
	}

	return nil
}

// audioConfig derives the frame description handed to the audio bus,
// including the fixed MCLK ratio policy.
func (c Config) audioConfig() AudioConfig {
	return AudioConfig{
		SampleRate:     c.SampleRate,
		BitsPerSample:  c.BitsPerSample,
		Format:         c.Format,
		Slots:          c.Slots,
		MCLKMultiplier: MCLKMultiplier(c.BitsPerSample),
	}
}
