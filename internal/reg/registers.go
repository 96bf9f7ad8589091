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

package reg

// Register is an ES8388 control-register address. Registers are 8-bit,
// write-only on the bus mode this driver targets: there is no readback,
// so every write must carry the complete intended byte.
type Register = byte

// Control-register addresses, numbered as in the ES8388 register map.
//
//revive:disable:exported
const (
	ChipControl1 Register = 0  // serial format master switches, reference enables
	ChipControl2 Register = 1  // analog block power
	ChipPower    Register = 2  // digital processing power
	ADCPower     Register = 3  // ADC path power
	DACPower     Register = 4  // DAC path + output stage power
	MasterMode   Register = 8  // master/slave, speed, BCLK divider
	ADCControl2  Register = 10 // mic input mux
	ADCControl8  Register = 16 // ADC digital gain, left
	ADCControl9  Register = 17 // ADC digital gain, right
	DACControl1  Register = 23 // serial format, sample width
	DACControl3  Register = 25 // soft mute, ramp rate
	DACControl4  Register = 26 // DAC digital gain, left
	DACControl5  Register = 27 // DAC digital gain, right
	DACControl16 Register = 38 // output mixer input mux
	DACControl17 Register = 39 // left mixer routing + gain
	DACControl42 Register = 42 // right mixer routing + gain
	DACControl21 Register = 43 // shared LRCLK source
	DACControl24 Register = 46 // output 1 volume, left
	DACControl25 Register = 47 // output 1 volume, right
	DACControl26 Register = 48 // output 2 volume, left
	DACControl27 Register = 49 // output 2 volume, right
)

// Fixed write patterns. Shared registers get their complete byte here;
// partial-bit-field writes are not possible without readback.
const (
	// AnalogOn / AnalogOff drive ChipControl2.
	AnalogOn  byte = 0x00
	AnalogOff byte = 0xFF

	// DigitalOn enables the digital signal processing block via ChipPower.
	DigitalOn byte = 0x00

	// ADCOn / ADCOff drive ADCPower.
	ADCOn  byte = 0x00
	ADCOff byte = 0xFF

	// DACOn is the DACPower pattern enabling both DAC channels and the
	// output stage.
	DACOn byte = 0b0011_1100

	// MuteBase is the DACControl3 byte with soft mute cleared; MuteBit is
	// OR'd in to mute.
	MuteBase byte = 0b0010_0010
	MuteBit  byte = 0b0000_0100

	// LRCLKShared makes the ADC reuse the DAC's LRCLK (DACControl21 bit 7).
	LRCLKShared byte = 0b1000_0000

	// MasterMode flag bits. The low five bits carry the BCLK divider index
	// from ResolveDivider.
	ModeMaster      byte = 0b1000_0000
	ModeDoubleSpeed byte = 0b0100_0000
	ModeInvertBCLK  byte = 0b0010_0000
)
