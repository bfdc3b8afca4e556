package systems

import (
	"sync"

	"github.com/P1NHE4D/SpaceInvadersClient/assets"
	"github.com/P1NHE4D/SpaceInvadersClient/components"
	cfg "github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/logging"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// soundMixer owns the audio context and the one music track that outlives
// scene changes. Volumes are what the player picked; muted silences both
// without forgetting them.
type soundMixer struct {
	once   sync.Once
	ctx    *audio.Context
	loader *assets.AudioLoader

	music *audio.Player
	track string

	fadeLeft, fadeTotal int

	musicVol, sfxVol float64
	muted            bool
}

var mixer = &soundMixer{
	musicVol: cfg.Audio.DefaultMusicVol,
	sfxVol:   cfg.Audio.DefaultSFXVol,
}

func (m *soundMixer) init() {
	m.once.Do(func() {
		m.ctx = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.ctx)
	})
}

func (m *soundMixer) musicVolume() float64 {
	if m.muted {
		return 0
	}
	return m.musicVol
}

func (m *soundMixer) sfxVolume(id cfg.SoundID) float64 {
	if m.muted {
		return 0
	}
	v := m.sfxVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		v *= mult
	}
	return min(v, 1)
}

func (m *soundMixer) setVolumes(music, sfx float64, muted bool) {
	m.musicVol, m.sfxVol, m.muted = music, sfx, muted
	if m.music != nil && m.fadeLeft == 0 {
		m.music.SetVolume(m.musicVolume())
	}
}

func (m *soundMixer) stopMusic() {
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music, m.track = nil, ""
	m.fadeLeft, m.fadeTotal = 0, 0
}

// stepFade lowers the music along the fade and drops the track once silent
func (m *soundMixer) stepFade() {
	if m.fadeLeft == 0 {
		return
	}
	m.fadeLeft--
	if m.fadeLeft == 0 {
		m.stopMusic()
		return
	}
	if m.music != nil {
		m.music.SetVolume(m.musicVolume() * float64(m.fadeLeft) / float64(m.fadeTotal))
	}
}

func (m *soundMixer) play(id cfg.SoundID) {
	vol := m.sfxVolume(id)
	name, ok := cfg.Sound.SFX[id]
	if !ok || vol <= 0 {
		return
	}
	p, err := m.loader.LoadSFX(name)
	if err != nil {
		// not preloaded yet
		return
	}
	p.SetVolume(vol)
	p.Play()
}

// PreloadAllSFX decodes every sound effect so the first play has no decode lag.
// Must run after the resource preload finished.
func PreloadAllSFX() {
	mixer.init()
	for id, name := range cfg.Sound.SFX {
		if err := mixer.loader.PreloadSFX(name); err != nil {
			logging.Named("audio").Warn("preload sfx failed", zap.Int("sound", int(id)), zap.Error(err))
		}
	}
}

// coalesceSFX keeps the first request of each sound. A wave of explosions
// in one tick plays a single explosion instead of stacking the same sample.
func coalesceSFX(pending []cfg.SoundID) []cfg.SoundID {
	out := pending[:0]
	var seen [cfg.SoundCount]bool
	for _, id := range pending {
		if id <= cfg.SoundNone || id >= cfg.SoundCount || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// UpdateAudio plays the sounds queued this frame and advances a music fade
func UpdateAudio(e *ecs.ECS) {
	mixer.init()
	mixer.stepFade()

	data := GetOrCreateAudio(e)
	for _, id := range coalesceSFX(data.PendingSFX) {
		mixer.play(id)
	}
	data.PendingSFX = data.PendingSFX[:0]
}

// PlayMusic loops the named track. Asking for the track already playing
// cancels a fade in progress.
func PlayMusic(e *ecs.ECS, name string) {
	mixer.init()
	if mixer.track == name && mixer.music != nil {
		if mixer.fadeLeft > 0 {
			mixer.fadeLeft, mixer.fadeTotal = 0, 0
			mixer.music.SetVolume(mixer.musicVolume())
		}
		return
	}

	mixer.stopMusic()
	p, err := mixer.loader.LoadMusic(name)
	if err != nil {
		logging.Named("audio").Warn("music unavailable", zap.String("music", name), zap.Error(err))
		return
	}
	p.SetVolume(mixer.musicVolume())
	p.Play()
	mixer.music, mixer.track = p, name
}

// FadeOutMusic fades the current track out over cfg.Audio.MusicFadeDuration frames
func FadeOutMusic(e *ecs.ECS) {
	if mixer.music == nil || mixer.fadeLeft > 0 {
		return
	}
	mixer.fadeTotal = max(cfg.Audio.MusicFadeDuration, 1)
	mixer.fadeLeft = mixer.fadeTotal
}

func PauseMusic(e *ecs.ECS) {
	if mixer.music != nil {
		mixer.music.Pause()
	}
}

func ResumeMusic(e *ecs.ECS) {
	if mixer.music != nil {
		mixer.music.Play()
	}
}

// PlaySFX queues a sound effect for the next UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	data := GetOrCreateAudio(e)
	data.PendingSFX = append(data.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
