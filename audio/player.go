// Package audio plays songs through oto.
package audio

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"
	"github.com/sirkon/errors"
	"github.com/sirkon/message"
)

const sampleRate = 44100

const (
	// ErrDeviceUnavailable no audio output could be opened.
	ErrDeviceUnavailable errors.Const = "audio device unavailable"
	// ErrDecode the song file could not be opened or decoded.
	ErrDecode errors.Const = "audio decode failed"
)

// Source is something playable.
type Source struct {
	Path string `yaml:"path"`
}

func (s Source) String() string {
	return s.Path
}

// oto allows one context per process.
var (
	otoCtx      *oto.Context
	otoInitOnce sync.Once
	otoInitErr  error
)

func ensureOtoContext() (*oto.Context, error) {
	otoInitOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   50 * time.Millisecond,
		}
		var readyChan chan struct{}
		otoCtx, readyChan, otoInitErr = oto.NewContext(op)
		if otoInitErr != nil {
			return
		}
		<-readyChan
	})
	return otoCtx, otoInitErr
}

// Player starts songs on the default output device.
type Player struct {
	volume float64
}

// NewPlayer returns a player whose playbacks start at the given volume.
func NewPlayer(volume float64) *Player {
	return &Player{volume: clamp(volume)}
}

// Play decodes an mp3 file and starts it once.
func (p *Player) Play(src Source) (*Playback, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, errors.Wrap(ErrDecode, "open song").Str("path", src.Path).Str("cause", err.Error())
	}

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(ErrDecode, "decode song").Str("path", src.Path).Str("cause", err.Error())
	}

	if err := checkSampleRate(dec.SampleRate()); err != nil {
		_ = f.Close()
		return nil, errors.Wrap(err, "decode song").Str("path", src.Path)
	}

	ctx, err := ensureOtoContext()
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrap(ErrDeviceUnavailable, "init oto").Str("cause", err.Error())
	}

	player := ctx.NewPlayer(dec)
	player.SetVolume(p.volume)
	player.Play()

	return &Playback{player: player, file: f, volume: p.volume}, nil
}

// Playback is one song being played.
type Playback struct {
	player *oto.Player
	file   io.Closer
	volume float64
}

// Stop halts the song and frees its resources. Later calls do nothing.
func (pb *Playback) Stop() {
	if pb.player == nil {
		return
	}
	pb.player.Pause()
	if err := pb.player.Close(); err != nil {
		message.Warningf("close player: %s", err)
	}
	if err := pb.file.Close(); err != nil {
		message.Warningf("close song: %s", err)
	}
	pb.player = nil
}

// SetVolume sets the volume, clamped to [0, 1].
func (pb *Playback) SetVolume(vol float64) {
	pb.volume = clamp(vol)
	if pb.player != nil {
		pb.player.SetVolume(pb.volume)
	}
}

func (pb *Playback) Volume() float64 {
	return pb.volume
}

// checkSampleRate rejects songs oto would play at the wrong pitch. The output
// context is opened once at sampleRate and nothing resamples.
func checkSampleRate(rate int) error {
	if rate != sampleRate {
		return errors.Wrap(ErrDecode, "unsupported sample rate").Int("rate", rate).Int("want", sampleRate)
	}
	return nil
}

func clamp(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
