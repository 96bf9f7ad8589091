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

import "errors"

// Public sentinel errors for consumer error matching. Every operation
// fails at most once, immediately, with one of these; nothing is retried
// internally and the chip is left as of the last successful write.
var (
	// ErrConfig indicates an unusable Codec configuration
	// (missing collaborator, senseless sample rate).
	ErrConfig = errors.New("invalid configuration")

	// ErrOutOfRange indicates a parameter outside its validated domain
	// or step (gain, volume, clock divider, output index).
	ErrOutOfRange = errors.New("parameter out of range")

	// ErrUnsupportedFormat indicates a sample width the chip's serial
	// format register has no code for.
	ErrUnsupportedFormat = errors.New("unsupported sample format")

	// ErrUnimplemented indicates an operation the base flow does not
	// support (chip-as-clock-master bring-up, standalone MCLK ratio
	// changes).
	ErrUnimplemented = errors.New("not implemented")

	// ErrTransport wraps an opaque failure surfaced by the control-bus
	// or audio-bus collaborator. The collaborator's own error remains
	// matchable through the chain.
	ErrTransport = errors.New("transport failure")
)
