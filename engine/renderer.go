// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"cmp"
	"errors"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/gviegas/haunted/linear"
	"github.com/gviegas/haunted/node"
	"github.com/gviegas/haunted/raster"
	"github.com/gviegas/haunted/wsi"
)

func newRendErr(s string) error { return errors.New("renderer: " + s) }

// Info describes the work done by a Renderer.
type Info struct {
	// Number of frames rendered so far.
	Frame int
	// Number of triangles drawn in the last frame.
	Triangles int
	// Number of triangles discarded in the last
	// frame because the per-frame limit was reached.
	Dropped int
	// Number of raster.Target.DrawTriangles calls
	// made in the last frame.
	Calls int
}

// Renderer is a software renderer.
// It transforms and lights the vertices of every Mesh
// in a Scene, sorts the resulting triangles back to
// front and submits them to a raster.Target.
type Renderer struct {
	target raster.Target
	width  int
	height int
	ratio  float64
	clear  color.Color
	info   Info

	ambient linear.V3
	lights  []lightInfo
	verts   []vertex
	tris    []triangle
	batch   []raster.Vertex
	index   []uint16
}

// lightInfo is a Light in world space.
type lightInfo struct {
	typ   int
	color linear.V3
	// Unit vector pointing toward the light.
	// Only used by distant lights.
	dir linear.V3
	pos linear.V3
	rng float32
}

// vertex is a transformed and lit vertex.
type vertex struct {
	clip linear.V4
	x, y float32
	z    float32
	u, v float32
	rgba [4]float32
}

// triangle is a projected triangle ready to
// be submitted.
type triangle struct {
	depth float32
	src   *image.NRGBA
	v     [3]raster.Vertex
}

func (r *Renderer) init(target raster.Target, width, height int) {
	r.target = target
	r.ratio = 1
	r.clear = color.Black
	r.SetSize(width, height)
}

// SetSize sets the size of the rendered image in
// logical pixels.
// Non-positive dimensions are replaced by 1.
func (r *Renderer) SetSize(width, height int) {
	r.width = max(width, 1)
	r.height = max(height, 1)
}

// Size returns the size set by SetSize.
func (r *Renderer) Size() (width, height int) { return r.width, r.height }

// SetPixelRatio sets the ratio of physical to logical
// pixels.
// Invalid ratios are replaced by 1.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = 1
	}
	r.ratio = ratio
}

// PixelRatio returns the ratio set by SetPixelRatio.
func (r *Renderer) PixelRatio() float64 { return r.ratio }

// BufferSize returns the size of the rendered image
// in physical pixels.
func (r *Renderer) BufferSize() (width, height int) {
	width = max(1, int(math.Round(float64(r.width)*r.ratio)))
	height = max(1, int(math.Round(float64(r.height)*r.ratio)))
	return
}

// SetClearColor sets the color used to clear the
// target at the start of every frame.
func (r *Renderer) SetClearColor(c color.Color) { r.clear = c }

// Info returns information about the last frame.
func (r *Renderer) Info() Info { return r.info }

// Render renders s as seen by cam.
// It updates the world transforms of s.
func (r *Renderer) Render(s *Scene, cam *Camera) error {
	if s == nil {
		return newRendErr("nil Scene in call to Render")
	}
	if cam == nil {
		return newRendErr("nil Camera in call to Render")
	}
	s.Update()

	bw, bh := r.BufferSize()
	r.target.Resize(bw, bh)
	if s.Background != nil {
		r.target.Clear(s.Background)
	} else {
		r.target.Clear(r.clear)
	}

	r.gatherLights(s)
	view := cam.View()
	var vp linear.M4
	vp.Mul(cam.Projection(), &view)
	eye := cam.Position()

	r.tris = r.tris[:0]
	r.info.Dropped = 0
	for n := range s.All(node.Nil) {
		if m, ok := s.Get(n).(*Mesh); ok {
			r.project(m, s.World(n), &vp, &eye, float32(bw), float32(bh), cam.Near())
		}
	}
	slices.SortStableFunc(r.tris, func(a, b triangle) int { return cmp.Compare(b.depth, a.depth) })
	r.submit()
	r.info.Frame++
	return nil
}

// gatherLights collects the lights of s in world space.
func (r *Renderer) gatherLights(s *Scene) {
	r.ambient = linear.V3{}
	r.lights = r.lights[:0]
	var n int
	for x := range s.All(node.Nil) {
		l, ok := s.Get(x).(*Light)
		if !ok {
			continue
		}
		if n++; n > cfg.MaxLight {
			break
		}
		cr, cg, cb := decode(l.color[0], l.color[1], l.color[2])
		c := linear.V3{cr, cg, cb}
		c.Scale(l.intensity, &c)
		world := s.World(x)
		switch l.typ {
		case ambientLight:
			r.ambient.Add(&r.ambient, &c)
		case distantLight:
			var rot linear.M3
			rot.Upper(world)
			var d linear.V3
			d.Mul(&rot, &l.dir)
			if d.Len() == 0 {
				continue
			}
			d.Norm(&d)
			d.Scale(-1, &d)
			r.lights = append(r.lights, lightInfo{typ: distantLight, color: c, dir: d})
		case pointLight:
			var p linear.V3
			world.Point(&p, &linear.V3{})
			r.lights = append(r.lights, lightInfo{typ: pointLight, color: c, pos: p, rng: l.rng})
		}
	}
}

// shade computes the light leaving a surface point p
// with unit normal n, in linear RGB.
func (r *Renderer) shade(p, n, eye *linear.V3, base *linear.V3, ao, rough, metal float32) (out linear.V3) {
	var diff linear.V3
	diff.Scale(ao, &r.ambient)

	var view linear.V3
	view.Sub(eye, p)
	if view.Len() > 0 {
		view.Norm(&view)
	}
	ks := (1 - rough) * (1 - rough) * (0.04 + 0.96*metal)
	r4 := rough * rough * rough * rough
	shin := float64(min(2/max(r4, 1e-3)-2, 256))

	var spec linear.V3
	for i := range r.lights {
		l := &r.lights[i]
		ldir := l.dir
		att := float32(1)
		if l.typ == pointLight {
			ldir.Sub(&l.pos, p)
			d := ldir.Len()
			if d == 0 {
				continue
			}
			ldir.Scale(1/d, &ldir)
			if l.rng > 0 {
				f := max(0, 1-d/l.rng)
				att = f * f
			}
		}
		ndl := n.Dot(&ldir)
		if ndl <= 0 || att == 0 {
			continue
		}
		var c linear.V3
		c.Scale(att*ndl, &l.color)
		diff.Add(&diff, &c)
		if ks > 0 && shin > 0 {
			var h linear.V3
			h.Add(&ldir, &view)
			if h.Len() == 0 {
				continue
			}
			h.Norm(&h)
			s := ks * float32(math.Pow(float64(max(0, n.Dot(&h))), shin))
			c.Scale(s, &c)
			spec.Add(&spec, &c)
		}
	}
	for i := range out {
		out[i] = diff[i]*base[i]*(1-metal) + spec[i]
	}
	return
}

// project transforms, lights and projects the triangles
// of m, appending the visible ones to r.tris.
func (r *Renderer) project(m *Mesh, world, vp *linear.M4, eye *linear.V3, bw, bh, near float32) {
	g := m.geom
	p := &m.mat.prop

	var nm linear.M3
	nm.Normal(world)
	var (
		disp  = p.DisplacementMap.ready()
		alpha = p.Transparent && p.AlphaMap.ready()
		ao    = p.AOMap.ready()
		rough = p.RoughnessMap.ready()
		metal = p.MetalnessMap.ready()
		src   = p.Map.Texture
		mu    float32
		mv    float32
	)
	if src != nil {
		mu, mv = p.Map.repeat()
	}
	br, bg, bb := decode(p.Color[0], p.Color[1], p.Color[2])
	base := linear.V3{br, bg, bb}

	r.verts = r.verts[:0]
	for i := range g.pos {
		pos, nrm, uv := g.pos[i], g.norm[i], &g.uv[i]
		if disp {
			d := p.DisplacementMap.sample(uv)[0]*p.DisplacementScale + p.DisplacementBias
			var off linear.V3
			off.Scale(d, &nrm)
			pos.Add(&pos, &off)
		}
		var wp, wn linear.V3
		world.Point(&wp, &pos)
		wn.Mul(&nm, &nrm)
		if wn.Len() > 0 {
			wn.Norm(&wn)
		}
		o := float32(1)
		if ao {
			o = (p.AOMap.sample(uv)[0]-1)*p.AOIntensity + 1
		}
		rgh := p.Roughness
		if rough {
			rgh *= p.RoughnessMap.sample(uv)[1]
		}
		mtl := p.Metalness
		if metal {
			mtl *= p.MetalnessMap.sample(uv)[2]
		}
		lit := r.shade(&wp, &wn, eye, &base, o, rgh, mtl)

		var vx vertex
		vx.clip.Mul(vp, &linear.V4{wp[0], wp[1], wp[2], 1})
		if w := vx.clip[3]; w > 0 {
			vx.x = (vx.clip[0]/w*0.5 + 0.5) * bw
			vx.y = (1 - (vx.clip[1]/w*0.5 + 0.5)) * bh
			vx.z = vx.clip[2] / w
		}
		vx.u = uv[0] * mu
		vx.v = 1 - uv[1]*mv
		vx.rgba[0], vx.rgba[1], vx.rgba[2] = encode(lit[0], lit[1], lit[2])
		vx.rgba[3] = 1
		if p.Transparent {
			vx.rgba[3] = p.Color[3]
			if alpha {
				vx.rgba[3] *= p.AlphaMap.sample(uv)[1]
			}
		}
		r.verts = append(r.verts, vx)
	}

	var img *image.NRGBA
	if src != nil {
		img = src.Image()
	}
	for k := 0; k+2 < len(g.idx); k += 3 {
		a, b, c := &r.verts[g.idx[k]], &r.verts[g.idx[k+1]], &r.verts[g.idx[k+2]]
		if a.clip[3] < near || b.clip[3] < near || c.clip[3] < near {
			continue
		}
		if outside(a, b, c) {
			continue
		}
		cross := (b.x-a.x)*(c.y-a.y) - (c.x-a.x)*(b.y-a.y)
		if cross == 0 || (cross > 0 && !p.DoubleSided) {
			continue
		}
		al := (a.rgba[3] + b.rgba[3] + c.rgba[3]) / 3
		if al <= 0 || al < p.AlphaTest {
			continue
		}
		if len(r.tris) >= cfg.MaxTriangle {
			r.info.Dropped++
			continue
		}
		r.tris = append(r.tris, triangle{
			depth: (a.z + b.z + c.z) / 3,
			src:   img,
			v:     [3]raster.Vertex{a.raster(), b.raster(), c.raster()},
		})
	}
}

func (v *vertex) raster() raster.Vertex {
	return raster.Vertex{
		X: v.x,
		Y: v.y,
		U: v.u,
		V: v.v,
		R: v.rgba[0],
		G: v.rgba[1],
		B: v.rgba[2],
		A: v.rgba[3],
	}
}

// outside returns whether a triangle lies entirely
// outside one of the clip volume's side planes.
func outside(a, b, c *vertex) bool {
	for i := range 2 {
		if a.clip[i] > a.clip[3] && b.clip[i] > b.clip[3] && c.clip[i] > c.clip[3] {
			return true
		}
		if a.clip[i] < -a.clip[3] && b.clip[i] < -b.clip[3] && c.clip[i] < -c.clip[3] {
			return true
		}
	}
	return a.clip[2] > a.clip[3] && b.clip[2] > b.clip[3] && c.clip[2] > c.clip[3]
}

// submit draws r.tris in order, batching consecutive
// triangles that share a source image.
func (r *Renderer) submit() {
	r.info.Triangles = len(r.tris)
	r.info.Calls = 0
	r.batch = r.batch[:0]
	r.index = r.index[:0]
	var src *image.NRGBA
	flush := func() {
		if len(r.batch) == 0 {
			return
		}
		var img image.Image
		if src != nil {
			img = src
		}
		r.target.DrawTriangles(r.batch, r.index, img)
		r.info.Calls++
		r.batch = r.batch[:0]
		r.index = r.index[:0]
	}
	for i := range r.tris {
		t := &r.tris[i]
		if t.src != src || len(r.batch)+3 > MaxVertex {
			flush()
			src = t.src
		}
		n := uint16(len(r.batch))
		r.batch = append(r.batch, t.v[:]...)
		r.index = append(r.index, n, n+1, n+2)
	}
	flush()
}

// Onscreen is a Renderer that targets a wsi.Window.
type Onscreen struct {
	Renderer
	win wsi.Window
}

// NewOnscreen creates a new onscreen renderer.
// The initial size is the window's size.
func NewOnscreen(win wsi.Window) (*Onscreen, error) {
	if win == nil {
		return nil, newRendErr("nil wsi.Window in call to NewOnscreen")
	}
	surf := win.Surface()
	if surf == nil {
		return nil, newRendErr("wsi.Window has no surface")
	}
	r := &Onscreen{win: win}
	r.init(surf, win.Width(), win.Height())
	return r, nil
}

// Window returns the wsi.Window associated with r.
func (r *Onscreen) Window() wsi.Window { return r.win }

// Offscreen is a Renderer that targets an image.
type Offscreen struct {
	Renderer
	rt *raster.Image
}

// NewOffscreen creates a new offscreen renderer.
func NewOffscreen(width, height int) (*Offscreen, error) {
	if width <= 0 || height <= 0 {
		return nil, newRendErr("invalid size in call to NewOffscreen")
	}
	rt := raster.NewImage(width, height)
	r := &Offscreen{rt: rt}
	r.init(rt, width, height)
	return r, nil
}

// Target returns the image into which r renders.
// Its size is r.BufferSize().
func (r *Offscreen) Target() *raster.Image { return r.rt }
