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

import "errors"

// Parameter encoding error sentinels.
//
//revive:disable:exported
var (
	ErrGainRange   = errors.New("es8388: channel gain outside -96.0..0.0 dB")
	ErrVolumeRange = errors.New("es8388: output volume outside -45.0..+4.5 dB")
	ErrVolumeStep  = errors.New("es8388: output volume not a multiple of 1.5 dB")
	ErrMixerRange  = errors.New("es8388: mixer routing gain outside -15..+6 dB")
	ErrMixerStep   = errors.New("es8388: mixer routing gain not a multiple of 3 dB")
	ErrSampleWidth = errors.New("es8388: unsupported sample width")
	ErrDivider     = errors.New("es8388: divider value not in the supported set")
)
