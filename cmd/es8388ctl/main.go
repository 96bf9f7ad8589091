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

// es8388ctl brings an ES8388 codec up over a Linux I2C bus and offers
// interactive mute/gain/volume control.
//
//	es8388ctl up     bring the chip up per configuration, then control it
//	es8388ctl demo   hardware-free dry run: register writes are printed,
//	                 audio plays on the host as a white-noise test signal
//
// Configuration is read from es8388ctl.yaml (working directory or
// ~/.config), ES8388_* environment variables, or the built-in defaults.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
	"github.com/mycophonic/agar/pkg/agar"
	"github.com/spf13/viper"

	"github.com/mycophonic/mycelium-es8388"
	"github.com/mycophonic/mycelium-es8388/i2cbus"
	"github.com/mycophonic/mycelium-es8388/otobus"
)

const demoSeconds = 30

func loadConfig() {
	viper.SetDefault("device", "/dev/i2c-1")
	viper.SetDefault("address", es8388.PrimaryAddress)
	viper.SetDefault("sample-rate", 48000)
	viper.SetDefault("bits", 16)
	viper.SetDefault("dac-gain", -120)  // tenths of a dB
	viper.SetDefault("volume", -90)     // tenths of a dB
	viper.SetDefault("start-muted", false)

	viper.SetConfigName("es8388ctl")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config")

	viper.SetEnvPrefix("ES8388")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			color.Red("config: %v", err)
			os.Exit(1)
		}
	}
}

func codecConfig() es8388.Config {
	config := es8388.DefaultConfig()
	config.SampleRate = viper.GetInt("sample-rate")
	config.BitsPerSample = uint8(viper.GetInt("bits"))
	config.DACGain = viper.GetInt("dac-gain")
	config.OutputVolume = viper.GetInt("volume")
	config.StartMuted = viper.GetBool("start-muted")

	return config
}

// externAudioBus satisfies the audio-bus contract when the serial audio
// path is owned by the platform sound stack rather than this process.
// The codec's stop/configure/start choreography is announced so the
// operator can coordinate the platform side.
type externAudioBus struct{}

func (externAudioBus) Stop() error {
	color.Yellow("audio bus: stop (platform-owned)")

	return nil
}

func (externAudioBus) Configure(config es8388.AudioConfig) error {
	color.Yellow("audio bus: configure %d Hz, %d-bit, mclk x%d (platform-owned)",
		config.SampleRate, config.BitsPerSample, config.MCLKMultiplier)

	return nil
}

func (externAudioBus) Start() error {
	color.Yellow("audio bus: start (platform-owned)")

	return nil
}

// printingControlBus logs every register write instead of touching
// hardware. Used by the demo mode.
type printingControlBus struct{}

func (printingControlBus) WriteRegister(register, value byte) error {
	color.Cyan("write register %2d <- 0x%02X (0b%08b)", register, value, value)

	return nil
}

func runUp() error {
	bus, err := i2cbus.Open(viper.GetString("device"), viper.GetInt("address"))
	if err != nil {
		return err
	}

	defer bus.Close()

	codec, err := es8388.New(bus, externAudioBus{}, codecConfig())
	if err != nil {
		return err
	}

	color.Green("codec ready: %d Hz, %d-bit", codec.Format().SampleRate, codec.Format().BitsPerSample)

	return interact(codec)
}

func runDemo() error {
	config := codecConfig()
	config.BitsPerSample = 16 // host playback limit

	noise := agar.GenerateWhiteNoise(config.SampleRate, 16, 2, demoSeconds)
	audio := otobus.New(bytes.NewReader(noise))

	defer audio.Close()

	codec, err := es8388.New(printingControlBus{}, audio, config)
	if err != nil {
		return err
	}

	color.Green("dry-run bring-up complete; white-noise test signal playing on host")

	return interact(codec)
}

const prompt = "< (m)ute toggle | (+/-) volume | (g/G) DAC gain | (q)uit >"

func interact(codec *es8388.Codec) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}

	defer func() { _ = keyboard.Close() }()

	volume := viper.GetInt("volume")
	gain := viper.GetInt("dac-gain")
	setVolume := func(tenthsDB int) error { return codec.SetOutputVolume(1, tenthsDB) }

	color.Yellow(prompt)

	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("reading key: %w", err)
		}

		if char == 'q' || key == keyboard.KeyEsc {
			return nil
		}

		switch char {
		case 'm':
			if err := codec.SetMute(!codec.Muted()); err != nil {
				return err
			}

			color.Green("muted: %t", codec.Muted())

		case '+', '=':
			volume = adjust(volume+15, volume, setVolume, "volume")
		case '-':
			volume = adjust(volume-15, volume, setVolume, "volume")
		case 'G':
			gain = adjust(gain+5, gain, codec.SetDACGain, "DAC gain")
		case 'g':
			gain = adjust(gain-5, gain, codec.SetDACGain, "DAC gain")
		}
	}
}

// adjust applies a setter and keeps the previous value when the chip
// rejects the new one (range edges).
func adjust(next, current int, set func(int) error, what string) int {
	if err := set(next); err != nil {
		if errors.Is(err, es8388.ErrOutOfRange) {
			color.Red("%s limit reached", what)

			return current
		}

		color.Red("%s: %v", what, err)

		return current
	}

	color.Green("%s: %+.1f dB", what, float64(next)/10)

	return next
}

func main() {
	loadConfig()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	var err error

	switch command {
	case "up":
		err = runUp()
	case "demo":
		err = runDemo()

	default:
		fmt.Fprintf(os.Stderr, "usage: es8388ctl [up|demo]\n")
		os.Exit(2)
	}

	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
}
