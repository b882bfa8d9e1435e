// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"context"
	"errors"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"runtime"
	"sync"
	"sync/atomic"

	_ "golang.org/x/image/webp"
	"golang.org/x/sync/semaphore"

	"github.com/gviegas/haunted/linear"
)

const texPrefix = "texture: "

func newTexErr(reason string) error { return errors.New(texPrefix + reason) }

// Texture is a 2D image used by materials.
// Its contents may become available asynchronously
// (see Loader).
type Texture struct {
	name string
	data atomic.Pointer[texData]
	done chan struct{}
	err  error
}

type texData struct {
	img  *image.NRGBA
	mean linear.V4
}

// NewTexture creates a texture from img.
// The returned texture is ready for use.
func NewTexture(img image.Image) (*Texture, error) {
	if img == nil {
		return nil, newTexErr("nil image.Image in call to NewTexture")
	}
	t := &Texture{done: make(chan struct{})}
	if err := t.publish(img); err != nil {
		return nil, err
	}
	close(t.done)
	return t, nil
}

// publish converts img and makes it visible to
// concurrent readers.
func (t *Texture) publish(img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return newTexErr("empty image")
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	t.data.Store(&texData{img: nrgba, mean: meanOf(nrgba)})
	return nil
}

func meanOf(img *image.NRGBA) (m linear.V4) {
	var sum [4]uint64
	b := img.Bounds()
	for y := range b.Dy() {
		row := img.Pix[y*img.Stride : y*img.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			sum[0] += uint64(row[i])
			sum[1] += uint64(row[i+1])
			sum[2] += uint64(row[i+2])
			sum[3] += uint64(row[i+3])
		}
	}
	n := float32(b.Dx()*b.Dy()) * 255
	for i := range m {
		m[i] = float32(sum[i]) / n
	}
	return
}

// Name returns the name used to load t.
func (t *Texture) Name() string { return t.name }

// Ready returns whether the contents of t are
// available.
func (t *Texture) Ready() bool { return t.data.Load() != nil }

// Image returns the contents of t, or nil if they are
// not available yet.
// The caller must not modify the returned image.
func (t *Texture) Image() *image.NRGBA {
	if d := t.data.Load(); d != nil {
		return d.img
	}
	return nil
}

// Err returns the error that caused loading to fail.
// It returns nil while loading is in progress.
func (t *Texture) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Sample returns the color of t at the given texture
// coordinates, with components in the range [0, 1].
// The origin is the bottom-left corner of the image.
// Coordinates outside [0, 1] wrap around.
// If t is not ready, it returns opaque white.
func (t *Texture) Sample(u, v float32) linear.V4 {
	d := t.data.Load()
	if d == nil {
		return linear.V4{1, 1, 1, 1}
	}
	w, h := d.img.Rect.Dx(), d.img.Rect.Dy()
	x := min(int(wrap(u)*float32(w)), w-1)
	y := min(int((1-wrap(v))*float32(h)), h-1)
	i := y*d.img.Stride + x*4
	p := d.img.Pix[i : i+4 : i+4]
	return linear.V4{
		float32(p[0]) / 255,
		float32(p[1]) / 255,
		float32(p[2]) / 255,
		float32(p[3]) / 255,
	}
}

// Mean returns the mean color of t.
// If t is not ready, it returns opaque white.
func (t *Texture) Mean() linear.V4 {
	if d := t.data.Load(); d != nil {
		return d.mean
	}
	return linear.V4{1, 1, 1, 1}
}

// wrap maps x to [0, 1).
func wrap(x float32) float32 {
	x -= float32(int(x))
	if x < 0 {
		x++
	}
	if x >= 1 {
		x = 0
	}
	return x
}

// Loader loads textures from a file system.
// Loading happens in the background: Load returns
// a Texture immediately and its contents become
// available once decoding finishes.
// Supported formats are WebP, PNG and JPEG.
type Loader struct {
	fsys  fs.FS
	log   *log.Logger
	sem   *semaphore.Weighted
	wg    sync.WaitGroup
	mu    sync.Mutex
	cache map[string]*Texture
}

// NewLoader creates a new loader that reads from fsys.
// Failures are reported to logger. If logger is nil,
// log.Default() is used.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		fsys:  fsys,
		log:   logger,
		sem:   semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		cache: make(map[string]*Texture),
	}
}

// Load returns the texture stored in the named file.
// Repeated calls with the same name return the same
// Texture.
// If the file cannot be read or decoded, the error is
// logged and the texture is never made ready.
func (l *Loader) Load(name string) *Texture {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t, ok := l.cache[name]; ok {
		return t
	}
	t := &Texture{name: name, done: make(chan struct{})}
	l.cache[name] = t
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer close(t.done)
		// Acquire only fails if the context is done.
		l.sem.Acquire(context.Background(), 1)
		defer l.sem.Release(1)
		if t.err = l.decode(t); t.err != nil {
			l.log.Print(t.err)
		}
	}()
	return t
}

func (l *Loader) decode(t *Texture) error {
	f, err := l.fsys.Open(t.name)
	if err != nil {
		return newTexErr(err.Error())
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return newTexErr(t.name + ": " + err.Error())
	}
	return t.publish(img)
}

// Len returns the number of distinct textures
// requested from l.
func (l *Loader) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cache)
}

// Wait blocks until every pending load completes.
func (l *Loader) Wait() { l.wg.Wait() }
