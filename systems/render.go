package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/hopper/components"
	cfg "github.com/automoto/hopper/config"
	"github.com/automoto/hopper/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	whitePixel *ebiten.Image
	polyVerts  []ebiten.Vertex
	polyIdx    []uint16
	lightDir   = mgl64.Vec3{2, 10, 8}.Normalize()
	worldUp    = mgl64.Vec3{0, 1, 0}
)

// viewport projects world positions to screen pixels
type viewport struct {
	eye           mgl64.Vec3
	viewProj      mgl64.Mat4
	width, height float64
}

func newViewport(eye mgl64.Vec3, width, height int) viewport {
	// The camera keeps the orientation it spawned with, looking back along its offset
	view := mgl64.LookAtV(eye, eye.Sub(cfg.Camera.InitialOffset), worldUp)
	proj := mgl64.Perspective(
		mgl64.DegToRad(cfg.Camera.FieldOfView),
		float64(width)/float64(height),
		cfg.Camera.Near, cfg.Camera.Far,
	)
	return viewport{
		eye:      eye,
		viewProj: proj.Mul4(view),
		width:    float64(width),
		height:   float64(height),
	}
}

// project returns screen coordinates; ok is false behind the near plane
func (v viewport) project(p mgl64.Vec3) (x, y float32, ok bool) {
	clip := v.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < cfg.Camera.Near {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return float32((ndc.X() + 1) / 2 * v.width), float32((1 - ndc.Y()) / 2 * v.height), true
}

// screenRadius approximates the on-screen size of a world-space radius at p
func (v viewport) screenRadius(p mgl64.Vec3, r float64) float32 {
	x0, y0, ok0 := v.project(p)
	x1, y1, ok1 := v.project(p.Add(worldUp.Mul(r)))
	if !ok0 || !ok1 {
		return 0
	}
	return float32(math.Hypot(float64(x1-x0), float64(y1-y0)))
}

// prism is a convex solid: a horizontal ring extruded between two local heights
type prism struct {
	transform   *components.TransformData
	ring        [][2]float64 // local x, z; counter-clockwise seen from above
	bottom, top float64
	color       color.RGBA
}

func (p prism) toWorld(local mgl64.Vec3) mgl64.Vec3 {
	scaled := mgl64.Vec3{
		local.X() * p.transform.Scale.X(),
		local.Y() * p.transform.Scale.Y(),
		local.Z() * p.transform.Scale.Z(),
	}
	return p.transform.Position.Add(p.transform.Rotation.Rotate(scaled))
}

func (p prism) draw(screen *ebiten.Image, v viewport) {
	n := len(p.ring)
	bottoms := make([]mgl64.Vec3, n)
	tops := make([]mgl64.Vec3, n)
	for i, pt := range p.ring {
		bottoms[i] = p.toWorld(mgl64.Vec3{pt[0], p.bottom, pt[1]})
		tops[i] = p.toWorld(mgl64.Vec3{pt[0], p.top, pt[1]})
	}
	center := p.toWorld(mgl64.Vec3{0, (p.bottom + p.top) / 2, 0})

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		mid := bottoms[i].Add(bottoms[j]).Add(tops[i]).Add(tops[j]).Mul(0.25)
		normal := mid.Sub(center)
		if normal.Dot(v.eye.Sub(mid)) <= 0 {
			continue
		}
		fillFace(screen, v, []mgl64.Vec3{bottoms[i], bottoms[j], tops[j], tops[i]}, shade(p.color, normal, cfg.Render.SideShade))
	}

	capNormal := p.transform.Rotation.Rotate(worldUp)
	topCenter := p.toWorld(mgl64.Vec3{0, p.top, 0})
	if capNormal.Dot(v.eye.Sub(topCenter)) > 0 {
		fillFace(screen, v, tops, shade(p.color, capNormal, 1))
	} else {
		fillFace(screen, v, bottoms, shade(p.color, capNormal.Mul(-1), cfg.Render.SideShade))
	}
}

// shade darkens faces turned away from the light
func shade(c color.RGBA, normal mgl64.Vec3, base float64) color.RGBA {
	lit := base + (1-base)*math.Max(0, normal.Normalize().Dot(lightDir))
	return color.RGBA{
		R: uint8(float64(c.R) * lit),
		G: uint8(float64(c.G) * lit),
		B: uint8(float64(c.B) * lit),
		A: c.A,
	}
}

// fillFace draws a convex polygon as a triangle fan
func fillFace(screen *ebiten.Image, v viewport, pts []mgl64.Vec3, clr color.RGBA) {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}

	polyVerts = polyVerts[:0]
	polyIdx = polyIdx[:0]
	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	for _, p := range pts {
		x, y, ok := v.project(p)
		if !ok {
			return
		}
		polyVerts = append(polyVerts, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 0, SrcY: 0,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		polyIdx = append(polyIdx, 0, uint16(i), uint16(i+1))
	}

	screen.DrawTriangles(polyVerts, polyIdx, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func squareRing(half float64) [][2]float64 {
	return [][2]float64{{-half, half}, {half, half}, {half, -half}, {-half, -half}}
}

func circleRing(radius float64, sides int) [][2]float64 {
	ring := make([][2]float64, sides)
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		ring[i] = [2]float64{radius * math.Cos(angle), -radius * math.Sin(angle)}
	}
	return ring
}

func platformPrism(entry *donburi.Entry) prism {
	platform := components.Platform.Get(entry)
	ring := squareRing(platform.Shape.HalfExtent())
	if platform.Shape == components.ShapeCylinder {
		ring = circleRing(platform.Shape.HalfExtent(), cfg.Render.CylinderSides)
	}
	return prism{
		transform: components.Transform.Get(entry),
		ring:      ring,
		bottom:    -cfg.Platform.Thickness / 2,
		top:       cfg.Platform.Thickness / 2,
		color:     platform.Color,
	}
}

func playerPrism(entry *donburi.Entry) prism {
	return prism{
		transform: components.Transform.Get(entry),
		ring:      circleRing(cfg.Player.BodyRadius, cfg.Render.CylinderSides),
		bottom:    -cfg.Player.BodyHeight / 2,
		top:       cfg.Player.BodyHeight/2 - cfg.Player.BodyRadius,
		color:     cfg.Player.Color,
	}
}

// cameraViewport builds the projection for the current camera, if there is one
func cameraViewport(e *ecs.ECS, screen *ebiten.Image) (viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return newViewport(camera.Position, screen.Bounds().Dx(), screen.Bounds().Dy()), true
}

// DrawWorld renders platforms, the player and charge sparks back to front
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.GroundColor)

	v, ok := cameraViewport(e, screen)
	if !ok {
		return
	}

	type drawable struct {
		depth float64
		draw  func()
	}
	var drawables []drawable

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := platformPrism(entry)
		drawables = append(drawables, drawable{
			depth: p.transform.Position.Sub(v.eye).Len(),
			draw:  func() { p.draw(screen, v) },
		})
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := playerPrism(entry)
		drawables = append(drawables, drawable{
			// Slightly closer than its own centre so it wins ties with the platform below
			depth: p.transform.Position.Sub(v.eye).Len() - cfg.Player.BodyHeight,
			draw: func() {
				p.draw(screen, v)
				drawHead(screen, v, p)
			},
		})
	})

	sort.Slice(drawables, func(i, j int) bool {
		return drawables[i].depth > drawables[j].depth
	})
	for _, d := range drawables {
		d.draw()
	}

	drawSparks(e, screen, v)
}

func drawHead(screen *ebiten.Image, v viewport, body prism) {
	head := body.toWorld(mgl64.Vec3{0, body.top + cfg.Player.BodyRadius, 0})
	x, y, ok := v.project(head)
	if !ok {
		return
	}
	r := v.screenRadius(head, cfg.Player.BodyRadius*body.transform.Scale.X())
	vector.FillCircle(screen, x, y, r, body.color, true)
}

func drawSparks(e *ecs.ECS, screen *ebiten.Image, v viewport) {
	components.Spark.Each(e.World, func(entry *donburi.Entry) {
		spark := components.Spark.Get(entry)
		x, y, ok := v.project(spark.Position)
		if !ok {
			return
		}
		r := v.screenRadius(spark.Position, cfg.ChargeEffect.Size*float64(spark.Alpha))
		if r < 1 {
			r = 1
		}
		vector.FillCircle(screen, x, y, r, sparkColor(spark.Alpha), true)
	})
}

// sparkColor runs red -> yellow -> white as the spark ages, fading out at the end
func sparkColor(alpha float32) color.NRGBA {
	age := 1 - alpha
	c := color.NRGBA{R: 255, A: uint8(255 * alpha)}
	if age < 0.5 {
		c.G = uint8(255 * age * 2)
	} else {
		c.G = 255
		c.B = uint8(255 * (age - 0.5) * 2)
	}
	return c
}
