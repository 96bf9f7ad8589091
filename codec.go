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

	"github.com/mycophonic/mycelium-es8388/internal/reg"
)

// Codec is a live session on one ES8388. It owns its control bus
// exclusively and borrows the audio bus: it reconfigures and starts or
// stops it, but never moves sample data and never outlives the caller's
// ownership of either.
//
// A Codec is built by New only after a complete, successful bring-up.
// It is not safe for concurrent use; callers needing that must
// serialize externally. There is no power-down sequence: dropping the
// Codec leaves the chip running as last configured.
type Codec struct {
	bus    ControlBus
	audio  AudioBus
	config Config
	muted  bool
	state  sequenceState
}

// sequenceState tracks progress through the linear bring-up sequence.
// There is no transition back to sequenceReset short of tearing the
// session down and constructing a new one.
type sequenceState uint8

const (
	sequenceReset sequenceState = iota
	sequenceMuted
	sequencePoweredOn
	sequenceClockConfigured
	sequenceFormatConfigured
	sequenceRoutedAndLeveled
	sequenceReady
)

func (s sequenceState) String() string {
	switch s {
	case sequenceReset:
		return "reset"
	case sequenceMuted:
		return "muted"
	case sequencePoweredOn:
		return "powered-on"
	case sequenceClockConfigured:
		return "clock-configured"
	case sequenceFormatConfigured:
		return "format-configured"
	case sequenceRoutedAndLeveled:
		return "routed-and-leveled"
	case sequenceReady:
		return "ready"

	default:
		return "unknown"
	}
}

// sequenceStep is one entry of the bring-up order. Steps run strictly
// in table order; the first failure abandons the rest with no retry and
// no rollback, leaving the chip muted but only partially configured.
type sequenceStep struct {
	name string
	next sequenceState
	run  func(*Codec) error
}

// New validates config, encodes every register parameter, then drives
// the fixed bring-up sequence: audio bus stopped and reconfigured, chip
// force-muted, powered up, clocked, formatted, routed, leveled, and
// finally unmuted and started as requested. Parameter validation
// happens before the first write; transport failures abort mid-sequence
// and surface the collaborator's error.
func New(bus ControlBus, audio AudioBus, config Config) (*Codec, error) {
	if bus == nil {
		return nil, fmt.Errorf("%w: nil control bus", ErrConfig)
	}

	if audio == nil {
		return nil, fmt.Errorf("%w: nil audio bus", ErrConfig)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	widthByte, err := reg.EncodeWidth(config.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	gainByte, err := reg.EncodeChannelGain(config.DACGain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	volumeByte, err := reg.EncodeOutputVolume(config.OutputVolume)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	routingByte, err := reg.EncodeMixerGain(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	clockByte := reg.DividerAuto
	if config.BCLKDivider != 0 {
		clockByte, err = reg.ResolveDivider(config.BCLKDivider)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOutOfRange, err)
		}
	}

	codec := &Codec{
		bus:    bus,
		audio:  audio,
		config: config,
		muted:  true,
		state:  sequenceReset,
	}

	steps := []sequenceStep{
		{"stopping audio bus", sequenceReset, func(c *Codec) error {
			return c.audioCall("stop", c.audio.Stop)
		}},
		{"configuring audio bus", sequenceReset, func(c *Codec) error {
			if err := c.audio.Configure(config.audioConfig()); err != nil {
				return fmt.Errorf("%w: configure: %w", ErrTransport, err)
			}

			return nil
		}},
		// Always mute first, whatever the caller asked for: the output
		// stage must not be live while clocking and routing change.
		{"engaging mute", sequenceMuted, func(c *Codec) error {
			return c.write(reg.DACControl3, reg.MuteBase|reg.MuteBit)
		}},
		{"powering DAC and analog block", sequencePoweredOn, func(c *Codec) error {
			if err := c.write(reg.DACPower, reg.DACOn); err != nil {
				return err
			}

			return c.write(reg.ChipControl2, reg.AnalogOn)
		}},
		// Clock consumer, single speed, BCLK not inverted; the low bits
		// carry the divider index, 0 meaning automatic detection.
		{"configuring clocking", sequenceClockConfigured, func(c *Codec) error {
			return c.write(reg.MasterMode, clockByte)
		}},
		{"sharing LRCLK", sequenceClockConfigured, func(c *Codec) error {
			return c.write(reg.DACControl21, reg.LRCLKShared)
		}},
		{"setting sample width", sequenceFormatConfigured, func(c *Codec) error {
			return c.write(reg.DACControl1, widthByte)
		}},
		{"setting DAC gain", sequenceFormatConfigured, func(c *Codec) error {
			return c.writePair(reg.DACControl4, reg.DACControl5, gainByte)
		}},
		{"routing DAC into output mixers", sequenceRoutedAndLeveled, func(c *Codec) error {
			return c.writePair(reg.DACControl17, reg.DACControl42, routingByte)
		}},
		{"setting output volume", sequenceRoutedAndLeveled, func(c *Codec) error {
			return c.writePair(reg.DACControl24, reg.DACControl25, volumeByte)
		}},
		{"enabling digital processing", sequenceReady, func(c *Codec) error {
			return c.write(reg.ChipPower, reg.DigitalOn)
		}},
	}

	if !config.StartMuted {
		steps = append(steps, sequenceStep{"releasing mute", sequenceReady, func(c *Codec) error {
			if err := c.write(reg.DACControl3, reg.MuteBase); err != nil {
				return err
			}

			c.muted = false

			return nil
		}})
	}

	if config.AutoStart {
		steps = append(steps, sequenceStep{"starting audio bus", sequenceReady, func(c *Codec) error {
			return c.audioCall("start", c.audio.Start)
		}})
	}

	for _, step := range steps {
		if err := step.run(codec); err != nil {
			return nil, fmt.Errorf("bring-up stopped in %s state: %s: %w", codec.state, step.name, err)
		}

		codec.state = step.next
	}

	return codec, nil
}

// Format returns the audio frame configuration established at bring-up.
func (c *Codec) Format() AudioConfig { return c.config.audioConfig() }

// Muted reports the logical mute state: the last mute value
// intentionally written, as the hardware cannot be read back.
func (c *Codec) Muted() bool { return c.muted }

// SetMute engages or releases the DAC soft mute. Repeated calls with
// the same value repeat the identical write; the chip state is the same
// either way.
func (c *Codec) SetMute(muted bool) error {
	value := reg.MuteBase
	if muted {
		value |= reg.MuteBit
	}

	if err := c.write(reg.DACControl3, value); err != nil {
		return err
	}

	c.muted = muted

	return nil
}

// SetDACGain sets the playback digital gain in tenths of a dB,
// -96.0 dB to 0 dB, rounded to the chip's 0.5 dB steps. Both channels
// are ganged.
func (c *Codec) SetDACGain(tenthsDB int) error {
	value, err := reg.EncodeChannelGain(tenthsDB)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return c.writePair(reg.DACControl4, reg.DACControl5, value)
}

// SetADCGain sets the capture digital gain in tenths of a dB, with the
// same domain and ganging as SetDACGain.
func (c *Codec) SetADCGain(tenthsDB int) error {
	value, err := reg.EncodeChannelGain(tenthsDB)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return c.writePair(reg.ADCControl8, reg.ADCControl9, value)
}

// SetOutputVolume sets the analog output-stage volume for output pair 1
// or 2, in tenths of a dB, -45.0 dB to +4.5 dB in exact 1.5 dB steps.
// Both channels are ganged.
func (c *Codec) SetOutputVolume(output int, tenthsDB int) error {
	var left, right byte

	switch output {
	case 1:
		left, right = reg.DACControl24, reg.DACControl25
	case 2:
		left, right = reg.DACControl26, reg.DACControl27

	default:
		return fmt.Errorf("%w: output %d", ErrOutOfRange, output)
	}

	value, err := reg.EncodeOutputVolume(tenthsDB)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}

	return c.writePair(left, right, value)
}

// SetMCLKRatio would change the master-clock multiplier outside a full
// stop/reconfigure cycle. The hardware needs a coordinated audio-bus
// reconfiguration for that, so the base flow does not support it.
func (c *Codec) SetMCLKRatio(int) error {
	return fmt.Errorf("%w: standalone MCLK ratio change", ErrUnimplemented)
}

func (c *Codec) write(register, value byte) error {
	if err := c.bus.WriteRegister(register, value); err != nil {
		return fmt.Errorf("%w: register %d: %w", ErrTransport, register, err)
	}

	return nil
}

// writePair writes the same byte to a ganged left/right register pair.
func (c *Codec) writePair(left, right, value byte) error {
	if err := c.write(left, value); err != nil {
		return err
	}

	return c.write(right, value)
}

func (c *Codec) audioCall(name string, call func() error) error {
	if err := call(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTransport, name, err)
	}

	return nil
}
