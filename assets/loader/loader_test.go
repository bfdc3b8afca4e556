package loader

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"images/ship.png":    {Data: pngBytes(t, 40, 30)},
		"images/android.png": {Data: pngBytes(t, 80, 24)},
		"images/broken.png":  {Data: []byte("not a png")},
		"audio/shoot.wav":    {Data: []byte("RIFF....WAVE")},
	}
}

func TestPreloadAndLookup(t *testing.T) {
	l := New(testFS(t))
	err := l.Preload(context.Background(), []Resource{
		{Name: "Ship", Kind: KindImage, Src: "images/ship.png", Frames: 1},
		{Name: "Android", Kind: KindImage, Src: "images/android.png", Frames: 2},
		{Name: "Shoot", Kind: KindAudio, Src: "audio/shoot.wav"},
	})
	if err != nil {
		t.Fatalf("Preload: %v", err)
	}
	if !l.Ready() {
		t.Fatal("loader not ready after a clean preload")
	}

	img, err := l.Image("Android")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 24 {
		t.Errorf("Android is %dx%d, want 80x24", b.Dx(), b.Dy())
	}
	if r, ok := l.Resource("Android"); !ok || r.Frames != 2 {
		t.Errorf("Resource(Android) = %+v, %v", r, ok)
	}

	data, err := l.Audio("Shoot")
	if err != nil || string(data) != "RIFF....WAVE" {
		t.Errorf("Audio = %q, %v", data, err)
	}
	if done, total := l.Progress(); done != 3 || total != 3 {
		t.Errorf("progress = %d/%d, want 3/3", done, total)
	}
}

func TestPreloadReportsEveryFailure(t *testing.T) {
	l := New(testFS(t))
	err := l.Preload(context.Background(), []Resource{
		{Name: "Ship", Kind: KindImage, Src: "images/ship.png"},
		{Name: "Missing", Kind: KindImage, Src: "images/missing.png"},
		{Name: "Broken", Kind: KindImage, Src: "images/broken.png"},
		{Name: "Font", Kind: "font", Src: "fonts/x.ttf"},
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if l.Ready() {
		t.Error("loader ready despite failures")
	}

	failed := map[string]bool{}
	for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
		var re *ResourceError
		if !errors.As(e, &re) {
			t.Fatalf("unexpected error type %T", e)
		}
		failed[re.Name] = true
	}
	for _, name := range []string{"Missing", "Broken", "Font"} {
		if !failed[name] {
			t.Errorf("no error reported for %s", name)
		}
	}
	if failed["Ship"] {
		t.Error("Ship reported as failed")
	}
	if !errors.Is(err, fs.ErrNotExist) || !errors.Is(err, ErrUnknownKind) {
		t.Errorf("joined error lost its causes: %v", err)
	}

	if _, err := l.Image("Ship"); err != nil {
		t.Errorf("Ship should still be available: %v", err)
	}
}

func TestLookupUnknown(t *testing.T) {
	l := New(testFS(t))
	if _, err := l.Image("nope"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Image: %v", err)
	}
	if _, err := l.Audio("nope"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Audio: %v", err)
	}
}

func TestPreloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(testFS(t))
	err := l.Preload(ctx, []Resource{{Name: "Ship", Kind: KindImage, Src: "images/ship.png"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestParseManifest(t *testing.T) {
	raw := []byte(`
resources:
  - name: RedFighter
    kind: image
    src: images/red_fighter.png
  - name: Explosion
    kind: image
    src: images/explosion.png
    frames: 8
    ticks_per_frame: 2
  - name: shoot
    kind: audio
    src: audio/sfx/shoot.wav
`)
	m, err := ParseManifest(raw)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if len(m.Resources) != 3 {
		t.Fatalf("resources = %d, want 3", len(m.Resources))
	}
	if r := m.Resources[0]; r.Frames != 1 || r.Kind != KindImage {
		t.Errorf("RedFighter = %+v, want one frame", r)
	}
	if r := m.Resources[1]; r.Frames != 8 || r.TicksPerFrame != 2 {
		t.Errorf("Explosion = %+v", r)
	}
	if r := m.Resources[2]; r.Kind != KindAudio || r.Frames != 0 {
		t.Errorf("shoot = %+v", r)
	}
}

func TestParseManifestErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bad yaml", "resources: [\n"},
		{"missing name", "resources:\n  - kind: image\n    src: a.png\n"},
		{"duplicate", "resources:\n  - name: a\n    src: a.png\n  - name: a\n    src: b.png\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseManifest([]byte(tt.raw)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
