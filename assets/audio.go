package assets

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/P1NHE4D/SpaceInvadersClient/assets/loader"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles decoding and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded PCM for SFX
	context  *audio.Context
	src      *loader.Loader
}

// NewAudioLoader creates a new audio loader with the given context, reading
// encoded sounds from the shared resource loader
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
		src:      sharedLoader,
	}
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode picks a decoder from the manifest src extension.
func (l *AudioLoader) decode(name string) (decodedStream, error) {
	data, err := l.src.Audio(name)
	if err != nil {
		return nil, err
	}
	r, _ := l.src.Resource(name)
	ext := strings.ToLower(filepath.Ext(r.Src))

	switch ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", name, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", name, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format %q for %s", ext, name)
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this after the resource preload to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfxCache[name]; ok {
		return nil
	}

	stream, err := l.decode(name)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}

	l.sfxCache[name] = decoded
	return nil
}

// LoadSFX returns a new player each time. SFX are cached as decoded bytes
// for instant playback.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[name]))
}

// LoadMusic returns a looping player. Music is not cached.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	stream, err := l.decode(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load music %s: %w", name, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
