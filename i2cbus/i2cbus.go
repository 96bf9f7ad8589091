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

// Package i2cbus adapts a Linux I2C character device to the codec's
// control-bus contract. One outbound transaction per register write, no
// batching, no caching; the adapter never reads the device.
package i2cbus

import (
	"fmt"

	"golang.org/x/exp/io/i2c"

	"github.com/mycophonic/mycelium-es8388"
)

// Bus drives the codec control port over an I2C devfs node.
type Bus struct {
	device *i2c.Device
}

var _ es8388.ControlBus = (*Bus)(nil)

// Open opens the given device node (e.g. /dev/i2c-1) at the chip
// address, usually es8388.PrimaryAddress. The caller owns the returned
// bus exclusively and closes it when the codec session ends.
func Open(devfs string, addr int) (*Bus, error) {
	device, err := i2c.Open(&i2c.Devfs{Dev: devfs}, addr)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", devfs, err)
	}

	return &Bus{device: device}, nil
}

// WriteRegister writes one complete register byte.
func (b *Bus) WriteRegister(register, value byte) error {
	if err := b.device.WriteReg(register, []byte{value}); err != nil {
		return fmt.Errorf("i2c write register %d: %w", register, err)
	}

	return nil
}

// Close releases the underlying device node.
func (b *Bus) Close() error {
	return b.device.Close()
}
