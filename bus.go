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

// Control-bus device addressing.
const (
	// PrimaryAddress is the chip's control-bus address with the address
	// pin low; SecondaryAddress with it high.
	PrimaryAddress   = 0x10
	SecondaryAddress = 0x11

	// MaxControlClock is the highest control-bus clock the chip accepts,
	// in Hz.
	MaxControlClock = 400_000
)

// ControlBus is the write-only register transport (I2C or SPI). The
// hardware path this driver targets has no readback, so there is no
// ReadRegister: the driver trusts each write and never models "current
// register value", only "last value intentionally written".
//
// A write transfers one complete register byte; partial bit-field
// updates do not exist at this level.
type ControlBus interface {
	WriteRegister(register, value byte) error
}

// AudioBus is the synchronous serial transport carrying PCM samples.
// The codec driver reconfigures and starts/stops it around its register
// sequence but does not own its lifetime, and never moves sample data
// itself. Stop must precede any register write that changes clocking;
// Start, if requested, comes last.
type AudioBus interface {
	Stop() error
	Configure(AudioConfig) error
	Start() error
}
