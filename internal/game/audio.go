package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// SoundKind identifies the procedural sound effects.
type SoundKind int

const (
	SoundPickup SoundKind = iota
	SoundTurn
	SoundGameOver
	SoundBoost
	SoundShield
	SoundMenu
	SoundPause
	SoundLoop
)

// AudioSystem wraps the oto context. All effects are synthesized on
// demand; there are no audio assets.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

var sfxVolume = 0.5

// InitAudio starts the audio backend. Failure is survivable; PlaySound is
// a no-op until initialization succeeds.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound synthesizes and plays one effect asynchronously.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		reader := &soundReader{data: samples}
		player := globalAudio.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// beepSpec describes one synthesized tone.
type beepSpec struct {
	freq     float64
	duration float64
	// freqSlide bends the pitch across the tone (multiplier at the end).
	freqSlide float64
}

func soundSpec(kind SoundKind) beepSpec {
	switch kind {
	case SoundPickup:
		return beepSpec{freq: 800, duration: 0.15, freqSlide: 1.5}
	case SoundTurn:
		return beepSpec{freq: 300, duration: 0.05, freqSlide: 1.0}
	case SoundGameOver:
		return beepSpec{freq: 200, duration: 0.5, freqSlide: 0.5}
	case SoundBoost:
		return beepSpec{freq: 1000, duration: 0.2, freqSlide: 2.0}
	case SoundShield:
		return beepSpec{freq: 600, duration: 0.25, freqSlide: 1.2}
	case SoundMenu:
		return beepSpec{freq: 700, duration: 0.1, freqSlide: 1.0}
	case SoundPause:
		return beepSpec{freq: 400, duration: 0.15, freqSlide: 0.8}
	case SoundLoop:
		return beepSpec{freq: 1200, duration: 0.3, freqSlide: 1.8}
	}
	return beepSpec{}
}

func generateSound(kind SoundKind) []byte {
	spec := soundSpec(kind)
	if spec.duration <= 0 {
		return nil
	}
	frames := int(spec.duration * SampleRate)
	buf := make([]byte, frames*8)
	phase := 0.0
	for i := 0; i < frames; i++ {
		progress := float64(i) / float64(frames)
		freq := spec.freq * (1 + (spec.freqSlide-1)*progress)
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(progress, 0.05, 0.1, 0.7, 0.3)
		putStereoF32(buf, i, math.Sin(phase)*env)
	}
	return buf
}
