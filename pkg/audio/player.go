// Package audio plays alarm sounds through the system output device. The
// named sounds are synthesized tone patterns; the Custom sound plays a
// user-supplied WAV file. Playback loops until stopped.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/borgmon/riseandpi/pkg/models"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// initAudioContext initializes the global audio context once. oto supports a
// single context per process, so the first sound's format wins.
func initAudioContext(format wavFormat) {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// Player is the alarm sound service. It holds at most one active sound;
// starting a new one stops the previous one first.
type Player struct {
	mu         sync.Mutex
	current    *playback
	customPath string
}

// NewPlayer creates a Player with no custom sound configured.
func NewPlayer() *Player {
	return &Player{}
}

// SetCustomSound points the Custom sound at a WAV file on disk.
func (p *Player) SetCustomSound(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.customPath = path
}

// Play starts looping the given sound. The error is informational; callers
// treat playback as best-effort.
func (p *Player) Play(sound models.Sound) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.stop()
		p.current = nil
	}

	format, data, err := p.render(sound)
	if err != nil {
		return err
	}

	initAudioContext(format)
	if !audioCtxReady || globalAudioCtx == nil {
		return errors.New("audio context not ready")
	}

	pb := &playback{stopChan: make(chan struct{})}
	p.current = pb
	go pb.loop(data)
	return nil
}

// Stop stops the active sound, if any.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil {
		p.current.stop()
		p.current = nil
	}
}

func (p *Player) render(sound models.Sound) (wavFormat, []byte, error) {
	if sound != models.SoundCustom {
		return toneFormat, synthesize(sound), nil
	}

	if p.customPath == "" {
		return wavFormat{}, nil, errors.New("no custom sound configured")
	}
	raw, err := os.ReadFile(p.customPath)
	if err != nil {
		return wavFormat{}, nil, fmt.Errorf("read custom sound: %w", err)
	}
	format, data, err := parseWAV(raw)
	if err != nil {
		return wavFormat{}, nil, fmt.Errorf("parse custom sound: %w", err)
	}
	if format.BitDepth != 16 {
		return wavFormat{}, nil, fmt.Errorf("custom sound must be 16-bit PCM, got %d-bit", format.BitDepth)
	}
	return format, data, nil
}

// playback loops one rendered sound until its stop channel closes.
type playback struct {
	stopChan chan struct{}
	stopOnce sync.Once
	player   *oto.Player
}

func (pb *playback) loop(audioData []byte) {
	// Loop the alarm sound until stopped
	for {
		// Create a new player for each loop iteration
		pb.player = globalAudioCtx.NewPlayer(bytes.NewReader(audioData))

		// Play starts playing the sound and returns without waiting
		pb.player.Play()

		// Wait for the sound to finish playing or stop signal
		for pb.player.IsPlaying() {
			select {
			case <-pb.stopChan:
				pb.player.Pause()
				pb.player.Close()
				return
			case <-time.After(10 * time.Millisecond):
				// Continue checking
			}
		}

		// Close the player before creating a new one
		if err := pb.player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}

		// Check if stop was requested between loops
		select {
		case <-pb.stopChan:
			return
		default:
			// Continue looping
		}
	}
}

func (pb *playback) stop() {
	pb.stopOnce.Do(func() {
		close(pb.stopChan)
	})
}
