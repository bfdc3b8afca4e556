// Package loader fetches and caches the images and sounds named in an asset
// manifest. It knows nothing about the renderer; callers turn the decoded
// images into whatever texture type they draw with.
package loader

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"sync"
)

var (
	ErrNotLoaded   = errors.New("resource not loaded")
	ErrUnknownKind = errors.New("unknown resource kind")
)

// ResourceError is the failure of a single manifest entry.
type ResourceError struct {
	Name string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource %s: %v", e.Name, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// Loader is safe for concurrent use: Preload usually runs on a worker
// goroutine while the game loop polls Progress.
type Loader struct {
	fsys fs.FS

	mu     sync.RWMutex
	images map[string]image.Image
	audio  map[string][]byte
	meta   map[string]Resource
	done   int
	total  int
	ready  bool
}

func New(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		images: make(map[string]image.Image),
		audio:  make(map[string][]byte),
		meta:   make(map[string]Resource),
	}
}

// Preload loads every resource. It keeps going after a failure and returns
// all per-resource errors joined together; the loader only reports Ready when
// every resource loaded.
func (l *Loader) Preload(ctx context.Context, resources []Resource) error {
	l.mu.Lock()
	l.done = 0
	l.total = len(resources)
	l.ready = false
	l.mu.Unlock()

	var errs []error
	for _, r := range resources {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := l.load(r); err != nil {
			errs = append(errs, &ResourceError{Name: r.Name, Err: err})
		}
		l.mu.Lock()
		l.done++
		l.mu.Unlock()
	}

	err := errors.Join(errs...)
	l.mu.Lock()
	l.ready = err == nil
	l.mu.Unlock()
	return err
}

func (l *Loader) load(r Resource) error {
	switch r.Kind {
	case KindImage:
		f, err := l.fsys.Open(r.Src)
		if err != nil {
			return err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", r.Src, err)
		}
		l.mu.Lock()
		l.images[r.Name] = img
		l.meta[r.Name] = r
		l.mu.Unlock()
	case KindAudio:
		data, err := fs.ReadFile(l.fsys, r.Src)
		if err != nil {
			return err
		}
		l.mu.Lock()
		l.audio[r.Name] = data
		l.meta[r.Name] = r
		l.mu.Unlock()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, r.Kind)
	}
	return nil
}

func (l *Loader) Image(name string) (image.Image, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[name]
	if !ok {
		return nil, fmt.Errorf("image %s: %w", name, ErrNotLoaded)
	}
	return img, nil
}

// Audio returns the raw encoded bytes of a sound.
func (l *Loader) Audio(name string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.audio[name]
	if !ok {
		return nil, fmt.Errorf("audio %s: %w", name, ErrNotLoaded)
	}
	return data, nil
}

// Resource returns the manifest entry a loaded resource came from.
func (l *Loader) Resource(name string) (Resource, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	r, ok := l.meta[name]
	return r, ok
}

// Progress returns how many resources of the current preload have been processed.
func (l *Loader) Progress() (done, total int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.done, l.total
}

func (l *Loader) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}
