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

// FrameFormat selects the serial audio framing variant on the data bus.
type FrameFormat uint8

// Serial frame standards. The chip family speaks the two's-complement
// Philips variant by default; the justified variants exist on the wire
// but are not selected by the base flow.
const (
	FormatPhilips FrameFormat = iota
	FormatMSBJustified
	FormatLSBJustified
)

// SlotMode selects which channel slots of the serial frame carry data.
type SlotMode uint8

// Slot activation modes. Both slots are active by default.
const (
	SlotsBoth SlotMode = iota
	SlotsLeftOnly
	SlotsRightOnly
)

// Sample widths the serial format register has codes for.
//
//nolint:gochecknoglobals
var sampleWidths = []uint8{16, 18, 20, 24, 32}

// MCLKMultiplier returns the master-clock to sample-rate ratio used for
// a given sample width: 384 when the width divides evenly into the
// 384-cycle frame (multiples of 3 bits), 256 otherwise. This is a fixed
// policy of the bring-up flow, not a caller choice.
func MCLKMultiplier(bitsPerSample uint8) int {
	if bitsPerSample%3 == 0 {
		return 384
	}

	return 256
}

// AudioConfig describes the serial audio frame the codec and the audio
// bus must agree on. It is handed to AudioBus.Configure during bring-up.
type AudioConfig struct {
	SampleRate     int
	BitsPerSample  uint8
	Format         FrameFormat
	Slots          SlotMode
	MCLKMultiplier int
}
