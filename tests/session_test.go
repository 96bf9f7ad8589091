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

package tests_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/mycophonic/agar/pkg/agar"

	"github.com/mycophonic/mycelium-es8388"
)

// registerMap is a control bus that keeps only the final value written
// to each register, the way the write-only chip itself would.
type registerMap map[byte]byte

func (m registerMap) WriteRegister(register, value byte) error {
	m[register] = value

	return nil
}

// pullingAudioBus models a platform I2S controller that drains the PCM
// source when started, counting what it consumed.
type pullingAudioBus struct {
	source     io.Reader
	config     es8388.AudioConfig
	configured bool
	started    bool
	consumed   int64
}

func (b *pullingAudioBus) Stop() error { return nil }

func (b *pullingAudioBus) Configure(config es8388.AudioConfig) error {
	b.config = config
	b.configured = true

	return nil
}

func (b *pullingAudioBus) Start() error {
	n, err := io.Copy(io.Discard, b.source)
	if err != nil {
		return err
	}

	b.consumed = n
	b.started = true

	return nil
}

// TestSession_BringUpLeavesChipPlaying runs a full default bring-up
// against a generated white-noise source and checks the chip's final
// register image plus the audio-side handshake.
func TestSession_BringUpLeavesChipPlaying(t *testing.T) {
	t.Parallel()

	const (
		sampleRate = 44100
		bitDepth   = 16
		channels   = 2
		durationS  = 1
	)

	srcPCM := agar.GenerateWhiteNoise(sampleRate, bitDepth, channels, durationS)
	audio := &pullingAudioBus{source: bytes.NewReader(srcPCM)}
	chip := registerMap{}

	config := es8388.DefaultConfig()
	config.SampleRate = sampleRate

	codec, err := es8388.New(chip, audio, config)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !audio.configured || !audio.started {
		t.Fatalf("audio bus handshake incomplete: configured=%t started=%t", audio.configured, audio.started)
	}

	wantBytes := int64(sampleRate * channels * bitDepth / 8 * durationS)
	if audio.consumed != wantBytes {
		t.Fatalf("audio bus consumed %d bytes, want %d", audio.consumed, wantBytes)
	}

	if audio.config.SampleRate != sampleRate || audio.config.MCLKMultiplier != 256 {
		t.Fatalf("audio config = %+v, want 44100 Hz at mclk x256", audio.config)
	}

	// Final register image after the default bring-up: powered, clock
	// consumer with automatic divider, 16-bit Philips frames, -12 dB DAC
	// gain, 0 dB mixer routing, -9 dB output volume, unmuted.
	want := registerMap{
		1:  0x00,
		2:  0x00,
		4:  0x3C,
		8:  0x00,
		23: 0x18,
		25: 0x22,
		26: 0x18,
		27: 0x18,
		39: 0x90,
		42: 0x90,
		43: 0x80,
		46: 0x18,
		47: 0x18,
	}

	for register, value := range want {
		if chip[register] != value {
			t.Errorf("register %d = 0x%02X, want 0x%02X", register, chip[register], value)
		}
	}

	if len(chip) != len(want) {
		t.Errorf("touched %d registers, want %d: %v", len(chip), len(want), chip)
	}

	if codec.Muted() {
		t.Error("codec reports muted after default bring-up")
	}
}

// TestSession_SampleWidthMatrix checks that each supported width
// programs the matching frame code and master-clock multiplier.
func TestSession_SampleWidthMatrix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bits      uint8
		widthByte byte
		mclk      int
	}{
		{16, 0b00011000, 256},
		{18, 0b00010000, 384},
		{20, 0b00001000, 256},
		{24, 0b00000000, 384},
		{32, 0b00100000, 256},
	}

	for _, tc := range cases {
		chip := registerMap{}
		audio := &pullingAudioBus{source: bytes.NewReader(nil)}

		config := es8388.DefaultConfig()
		config.BitsPerSample = tc.bits

		if _, err := es8388.New(chip, audio, config); err != nil {
			t.Fatalf("New(%d-bit): %v", tc.bits, err)
		}

		if chip[23] != tc.widthByte {
			t.Errorf("%d-bit: register 23 = 0x%02X, want 0x%02X", tc.bits, chip[23], tc.widthByte)
		}

		if audio.config.MCLKMultiplier != tc.mclk {
			t.Errorf("%d-bit: mclk multiplier = %d, want %d", tc.bits, audio.config.MCLKMultiplier, tc.mclk)
		}
	}
}

// TestSession_LiveControls drives the runtime controls after bring-up
// and checks the chip's final register image.
func TestSession_LiveControls(t *testing.T) {
	t.Parallel()

	chip := registerMap{}
	audio := &pullingAudioBus{source: bytes.NewReader(nil)}

	codec, err := es8388.New(chip, audio, es8388.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := codec.SetMute(true); err != nil {
		t.Fatalf("SetMute: %v", err)
	}

	if err := codec.SetDACGain(-480); err != nil { // -48.0 dB
		t.Fatalf("SetDACGain: %v", err)
	}

	if err := codec.SetADCGain(-240); err != nil { // -24.0 dB
		t.Fatalf("SetADCGain: %v", err)
	}

	if err := codec.SetOutputVolume(2, 45); err != nil { // +4.5 dB
		t.Fatalf("SetOutputVolume: %v", err)
	}

	want := registerMap{
		25: 0x26, // muted
		26: 0x60, 27: 0x60, // DAC gain -48 dB
		16: 0x30, 17: 0x30, // ADC gain -24 dB
		48: 0x21, 49: 0x21, // output 2 full scale +4.5 dB
	}

	for register, value := range want {
		if chip[register] != value {
			t.Errorf("register %d = 0x%02X, want 0x%02X", register, chip[register], value)
		}
	}

	if !codec.Muted() {
		t.Error("codec reports unmuted after SetMute(true)")
	}
}
