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

// Package spibus adapts a Linux SPI character device to the codec's
// control-bus contract. The chip's SPI control port is write-only: each
// register write clocks out the address byte followed by the value
// byte, and nothing is ever read back.
package spibus

import (
	"fmt"

	"golang.org/x/exp/io/spi"

	"github.com/mycophonic/mycelium-es8388"
)

// Bus drives the codec control port over an SPI devfs node.
type Bus struct {
	device *spi.Device
}

var _ es8388.ControlBus = (*Bus)(nil)

// Open opens the given device node (e.g. /dev/spidev0.0), clocked at
// the chip's control-port limit.
func Open(devfs string) (*Bus, error) {
	device, err := spi.Open(&spi.Devfs{
		Dev:      devfs,
		Mode:     spi.Mode0,
		MaxSpeed: es8388.MaxControlClock,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", devfs, err)
	}

	return &Bus{device: device}, nil
}

// WriteRegister clocks out one address+value frame.
func (b *Bus) WriteRegister(register, value byte) error {
	if err := b.device.Tx([]byte{register, value}, nil); err != nil {
		return fmt.Errorf("spi write register %d: %w", register, err)
	}

	return nil
}

// Close releases the underlying device node.
func (b *Bus) Close() error {
	return b.device.Close()
}
