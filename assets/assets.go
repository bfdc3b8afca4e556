// Package assets embeds the game's images, sounds and manifest, and turns
// loaded resources into ebiten images the renderer and the simulation share.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/P1NHE4D/SpaceInvadersClient/assets/loader"
	"github.com/P1NHE4D/SpaceInvadersClient/config"
	"github.com/P1NHE4D/SpaceInvadersClient/core"
	"github.com/hajimehoshi/ebiten/v2"
)

// ManifestPath is the manifest location inside FS
const ManifestPath = "manifest.yaml"

var (
	//go:embed manifest.yaml all:images all:audio
	FS embed.FS

	sharedLoader = loader.New(FS)
	images       = newImageLoader(sharedLoader)
)

// Loader returns the process-wide resource loader backed by FS.
func Loader() *loader.Loader {
	return sharedLoader
}

// Manifest parses the embedded manifest.
func Manifest() (*loader.Manifest, error) {
	return loader.LoadManifest(FS, ManifestPath)
}

// Sprite wraps an ebiten image so the simulation can size entities from it.
type Sprite struct {
	Name  string
	Image *ebiten.Image
}

func (s *Sprite) Width() int  { return s.Image.Bounds().Dx() }
func (s *Sprite) Height() int { return s.Image.Bounds().Dy() }

type imageLoader struct {
	src *loader.Loader

	mu         sync.Mutex
	cache      map[string]*ebiten.Image
	frameCache map[frameKey]*ebiten.Image
}

type frameKey struct {
	name string
	rect image.Rectangle
}

func newImageLoader(src *loader.Loader) *imageLoader {
	return &imageLoader{
		src:        src,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[frameKey]*ebiten.Image),
	}
}

func (l *imageLoader) image(name string) (*ebiten.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	decoded, err := l.src.Image(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(decoded)
	l.cache[name] = img
	return img, nil
}

// frame returns a cached sub-image so each animation frame is only sliced once.
func (l *imageLoader) frame(img *ebiten.Image, name string, src image.Rectangle) *ebiten.Image {
	key := frameKey{name: name, rect: src}
	l.mu.Lock()
	defer l.mu.Unlock()
	if f, ok := l.frameCache[key]; ok {
		return f
	}
	f := img.SubImage(src).(*ebiten.Image)
	l.frameCache[key] = f
	return f
}

// GetImage returns the ebiten image for a loaded manifest entry.
func GetImage(name string) (*ebiten.Image, error) {
	return images.image(name)
}

// GetFrame slices src out of s, reusing earlier slices of the same frame.
func GetFrame(s *Sprite, src image.Rectangle) *ebiten.Image {
	return images.frame(s.Image, s.Name, src)
}

// GetSprite wraps a loaded image as a Sprite.
func GetSprite(name string) (*Sprite, error) {
	img, err := GetImage(name)
	if err != nil {
		return nil, err
	}
	return &Sprite{Name: name, Image: img}, nil
}

// SheetOf describes s as an animation strip using the manifest layout of r.
func SheetOf(r loader.Resource, s core.Sprite) core.SpriteSheet {
	frames := r.Frames
	if frames < 1 {
		frames = 1
	}
	return core.SpriteSheet{Sprite: s, Frames: frames, TicksPerFrame: r.TicksPerFrame}
}

func sheet(name string) (core.SpriteSheet, error) {
	r, ok := sharedLoader.Resource(name)
	if !ok {
		return core.SpriteSheet{}, fmt.Errorf("sprite %s: %w", name, loader.ErrNotLoaded)
	}
	s, err := GetSprite(name)
	if err != nil {
		return core.SpriteSheet{}, err
	}
	return SheetOf(r, s), nil
}

// BuildSpriteSet assembles the sprites the simulation spawns from. All
// missing names are reported together.
func BuildSpriteSet(names config.SpriteNames) (core.SpriteSet, error) {
	var set core.SpriteSet
	var errs []error

	one := func(name string) core.SpriteSheet {
		s, err := sheet(name)
		if err != nil {
			errs = append(errs, err)
		}
		return s
	}

	for _, n := range names.Ships {
		set.Ships = append(set.Ships, one(n))
	}
	for _, n := range names.Aliens {
		set.Aliens = append(set.Aliens, one(n))
	}
	set.PlayerBullet = one(names.PlayerBullet)
	set.EnemyBullet = one(names.EnemyBullet)
	set.Explosion = one(names.Explosion)

	if err := errors.Join(errs...); err != nil {
		return core.SpriteSet{}, err
	}
	return set, nil
}
