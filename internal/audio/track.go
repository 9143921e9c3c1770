// Package audio plays the looping background track.
// Every failure degrades to a silent track; audio never stops a game.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are neither mp3 nor wav.
var ErrUnsupportedFormat = errors.New("audio: unsupported format")

const speakerBuffer = 100 * time.Millisecond

// The speaker is process-wide and can only be initialized once.
var (
	speakerOnce sync.Once
	speakerRate beep.SampleRate
	speakerErr  error
)

func initSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	speakerOnce.Do(func() {
		speakerRate = rate
		speakerErr = speaker.Init(rate, rate.N(speakerBuffer))
	})
	return speakerRate, speakerErr
}

// Track is a background track that loops until stopped.
type Track struct {
	mu      sync.Mutex
	path    string
	volume  float64
	stream  beep.StreamSeekCloser
	format  beep.Format
	ctrl    *beep.Ctrl
	enabled bool
	logger  *log.Logger
}

// Disabled returns a track that ignores every call.
func Disabled() *Track {
	return &Track{logger: log.New(io.Discard)}
}

// Open decodes the file at path. volume is in halvings (0 = unchanged,
// -1 = half as loud). A file that cannot be decoded yields a disabled
// track and a warning; the returned track is always usable.
func Open(path string, volume float64, logger *log.Logger) *Track {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	stream, format, err := decode(path)
	if err != nil {
		logger.Warn("background music disabled", "path", path, "error", err)
		t := Disabled()
		t.logger = logger
		return t
	}

	logger.Debug("track loaded", "path", path, "sample_rate", format.SampleRate, "length", stream.Len())
	return &Track{
		path:    path,
		volume:  volume,
		stream:  stream,
		format:  format,
		enabled: true,
		logger:  logger,
	}
}

// decode picks a decoder by file extension.
func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mp3" && ext != ".wav" {
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("audio: open track: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: decode %s: %w", filepath.Base(path), err)
	}
	return stream, format, nil
}

// Enabled reports whether the track will make any sound.
func (t *Track) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

// Play starts the track from the beginning, looping forever.
func (t *Track) Play() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled {
		return
	}

	if t.ctrl == nil {
		if err := t.attach(); err != nil {
			t.logger.Warn("background music disabled", "error", err)
			t.disable()
		}
		return
	}

	speaker.Lock()
	if err := t.stream.Seek(0); err != nil {
		t.logger.Warn("cannot rewind track", "error", err)
	}
	t.ctrl.Paused = false
	speaker.Unlock()
}

// attach builds the playback chain and hands it to the speaker.
func (t *Track) attach() error {
	rate, err := initSpeaker(t.format.SampleRate)
	if err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	var s beep.Streamer = beep.Loop(-1, t.stream)
	if t.format.SampleRate != rate {
		s = beep.Resample(4, t.format.SampleRate, rate, s)
	}

	t.ctrl = &beep.Ctrl{
		Streamer: &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   t.volume,
		},
	}
	speaker.Play(t.ctrl)
	return nil
}

// Stop pauses the track. A later Play restarts it from the beginning.
func (t *Track) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.ctrl == nil {
		return
	}

	speaker.Lock()
	t.ctrl.Paused = true
	speaker.Unlock()
}

// Close stops the track and releases the file.
func (t *Track) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.ctrl != nil {
		speaker.Lock()
		t.ctrl.Paused = true
		t.ctrl.Streamer = nil
		speaker.Unlock()
		t.ctrl = nil
	}
	return t.disable()
}

func (t *Track) disable() error {
	t.enabled = false
	if t.stream == nil {
		return nil
	}
	err := t.stream.Close()
	t.stream = nil
	if err != nil {
		return fmt.Errorf("audio: close track: %w", err)
	}
	return nil
}
