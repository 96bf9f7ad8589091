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

// Package otobus implements the codec's audio-bus contract on the
// host's own sound output. It stands in for the platform I2S controller
// during desk bring-up: the stop/configure/start choreography behaves
// exactly as it would against real hardware, while the PCM source plays
// audibly through the operating system.
package otobus

import (
	"errors"
	"fmt"
	"io"

	"github.com/ebitengine/oto/v3"

	"github.com/mycophonic/mycelium-es8388"
)

// Host playback error sentinels.
var (
	// ErrNotConfigured means Start was called before Configure.
	ErrNotConfigured = errors.New("otobus: audio bus not configured")

	// ErrReconfigure means Configure was called again with a different
	// frame format; the host audio context cannot be rebuilt in-process.
	ErrReconfigure = errors.New("otobus: host audio context already configured")

	// ErrHostFormat means the requested frame format has no host
	// playback equivalent (only 16-bit PCM is supported here).
	ErrHostFormat = errors.New("otobus: frame format not playable on host")
)

// Bus plays the supplied PCM source through the host sound device.
type Bus struct {
	source io.Reader
	ctx    *oto.Context
	player *oto.Player
	config es8388.AudioConfig
}

var _ es8388.AudioBus = (*Bus)(nil)

// New returns a host-playback audio bus reading PCM from source. The
// source must match the frame format later passed to Configure:
// interleaved little-endian signed samples.
func New(source io.Reader) *Bus {
	return &Bus{source: source}
}

// Stop pauses playback. Stopping an unconfigured or unstarted bus is a
// no-op, matching an idle I2S controller.
func (b *Bus) Stop() error {
	if b.player != nil {
		b.player.Pause()
	}

	return nil
}

// Configure establishes the host audio context for the given frame
// format. The underlying context is process-wide and cannot be rebuilt,
// so a second Configure succeeds only with the same format.
func (b *Bus) Configure(config es8388.AudioConfig) error {
	if b.ctx != nil {
		if config != b.config {
			return fmt.Errorf("%w: have %+v", ErrReconfigure, b.config)
		}

		return nil
	}

	if config.BitsPerSample != 16 {
		return fmt.Errorf("%w: %d bits per sample", ErrHostFormat, config.BitsPerSample)
	}

	channels := 2
	if config.Slots != es8388.SlotsBoth {
		channels = 1
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   config.SampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("creating host audio context: %w", err)
	}

	<-ready

	b.ctx = ctx
	b.config = config

	return nil
}

// Start begins (or resumes) playback of the PCM source.
func (b *Bus) Start() error {
	if b.ctx == nil {
		return ErrNotConfigured
	}

	if b.player == nil {
		b.player = b.ctx.NewPlayer(b.source)
	}

	b.player.Play()

	return nil
}

// Close stops playback and releases the player.
func (b *Bus) Close() error {
	if b.player == nil {
		return nil
	}

	err := b.player.Close()
	b.player = nil

	if err != nil {
		return fmt.Errorf("closing host audio player: %w", err)
	}

	return nil
}
