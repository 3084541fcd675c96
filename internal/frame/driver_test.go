package frame_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/frame"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/pick"
	"github.com/san-kum/orrery/internal/scene"
)

type callLog struct {
	calls []string
}

func (c *callLog) add(s string) { c.calls = append(c.calls, s) }

type countingControls struct{ log *callLog }

func (c countingControls) Update() bool {
	c.log.add("controls")
	return false
}

type spySpeed struct {
	log   *callLog
	value float64
}

func (s *spySpeed) Speed() float64 {
	s.log.add("speed")
	return s.value
}

type fakeRecorder struct {
	frames, paused, hits, misses int
	fallbacks                    []string
}

func (r *fakeRecorder) FrameStepped(p bool) {
	r.frames++
	if p {
		r.paused++
	}
}

func (r *fakeRecorder) PickResolved(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func (r *fakeRecorder) SpeedFellBack(b string) { r.fallbacks = append(r.fallbacks, b) }

type resizingRenderer struct {
	frames []frame.Frame
	w, h   int
}

func (r *resizingRenderer) Render(_ *scene.Scene, _ *scene.Camera, f frame.Frame) {
	r.frames = append(r.frames, f)
}

func (r *resizingRenderer) Resize(w, h int) { r.w, r.h = w, h }

var _ = Describe("Driver", func() {
	var (
		log      *callLog
		state    *frame.State
		cam      *scene.Camera
		earth    *orbit.Body
		earthM   *scene.Mesh
		speed    *spySpeed
		resolver *pick.Resolver
		rec      *fakeRecorder
		renderer *resizingRenderer
		driver   *frame.Driver
	)

	BeforeEach(func() {
		log = &callLog{}
		state = frame.NewState(frame.Dark)
		cam = scene.NewCamera(35, 16.0/9.0, 0.1, 1000)
		cam.Position = scene.Vec3{X: 50, Y: 30, Z: 100}
		cam.LookAt(scene.Vec3{})

		earthM = scene.NewSphere("Earth", 1, "#2e86ab")
		speed = &spySpeed{log: log, value: 0.012}
		earth = orbit.NewBody("Earth", 15, 0, speed, earthM)
		earth.Sync()
		log.calls = nil

		resolver = pick.NewResolver(pick.Viewport{Width: 1600, Height: 900}, pick.DefaultBias)
		rec = &fakeRecorder{}
		renderer = &resizingRenderer{}
		sc := &scene.Scene{Planets: []*scene.Mesh{earthM}}

		driver = frame.NewDriver(state, sc, []*orbit.Body{earth}, cam, countingControls{log}, resolver,
			frame.RenderFunc(func(s *scene.Scene, c *scene.Camera, f frame.Frame) {
				log.add("render")
				renderer.Render(s, c, f)
			}))
		driver.SetRecorder(rec)
	})

	Context("when running", func() {
		It("advances Earth by one speed increment per tick", func() {
			driver.Step()
			Expect(earth.Angle()).To(BeNumerically("~", 0.012, 1e-12))
			Expect(earthM.Position().X).To(BeNumerically("~", 14.999, 1e-3))
			Expect(earthM.Position().Y).To(BeZero())
			Expect(earthM.Position().Z).To(BeNumerically("~", 0.180, 1e-3))
		})

		It("accumulates n increments over n frames", func() {
			for i := 0; i < 120; i++ {
				driver.Step()
			}
			Expect(earth.Angle()).To(BeNumerically("~", 120*0.012, 1e-9))
			Expect(rec.frames).To(Equal(120))
			Expect(rec.paused).To(BeZero())
		})

		It("orders advance, camera update, then render", func() {
			driver.Step()
			Expect(log.calls).To(Equal([]string{"speed", "controls", "render"}))
		})

		It("numbers frames sequentially", func() {
			a := driver.Step()
			b := driver.Step()
			Expect(b.Seq).To(Equal(a.Seq + 1))
			Expect(driver.Last()).To(Equal(b))
		})
	})

	Context("when paused", func() {
		BeforeEach(func() { state.TogglePause() })

		It("freezes every angle but keeps the loop alive", func() {
			for i := 0; i < 30; i++ {
				f := driver.Step()
				Expect(f.Paused).To(BeTrue())
			}
			Expect(earth.Angle()).To(BeZero())
			Expect(log.calls).NotTo(ContainElement("speed"))
			Expect(log.calls).To(ContainElement("controls"))
			Expect(renderer.frames).To(HaveLen(30))
			Expect(rec.paused).To(Equal(30))
		})

		It("resumes as if never paused after a second toggle", func() {
			driver.Step()
			state.TogglePause()
			Expect(state.Pause).To(Equal(frame.Running))
			driver.Step()
			Expect(earth.Angle()).To(BeNumerically("~", 0.012, 1e-12))
		})
	})

	Context("picking", func() {
		It("selects the body under the pointer using this frame's position", func() {
			next := orbit.Position(15, 0.012)
			ndc := cam.Project(next)
			state.SetPointer(ndc.X, ndc.Y)

			f := driver.Step()
			Expect(f.Selection.Hit).To(BeTrue())
			Expect(f.Selection.Body).To(BeIdenticalTo(earth))
			Expect(f.Selection.Speed).To(Equal("0.012"))
			Expect(rec.hits).To(Equal(1))
		})

		It("reports no selection far from every body", func() {
			state.SetPointer(0.97, -0.97)
			f := driver.Step()
			Expect(f.Selection.Hit).To(BeFalse())
			Expect(f.Selection.Lines()).To(BeEmpty())
			Expect(rec.misses).To(Equal(1))
		})

		It("does not pick before the first pointer event", func() {
			Expect(state.Pointer.Inside).To(BeFalse())
			f := driver.Step()
			Expect(f.Selection.Hit).To(BeFalse())
			Expect(rec.hits + rec.misses).To(BeZero())
		})

		It("skips picking when the pointer is outside the viewport", func() {
			state.SetPointer(0, 0)
			state.ClearPointer()
			f := driver.Step()
			Expect(f.Selection.Hit).To(BeFalse())
			Expect(rec.hits + rec.misses).To(BeZero())
		})

		It("still picks while paused", func() {
			state.TogglePause()
			ndc := cam.Project(earth.Position())
			state.SetPointer(ndc.X, ndc.Y)
			Expect(driver.Step().Selection.Hit).To(BeTrue())
		})
	})

	Context("with a malformed speed", func() {
		It("holds the last valid speed and records the fallback", func() {
			driver.Step()
			speed.value = math.NaN()
			driver.Step()
			Expect(earth.Angle()).To(BeNumerically("~", 0.024, 1e-12))
			Expect(rec.fallbacks).To(Equal([]string{"Earth"}))
		})
	})

	Context("theme", func() {
		It("changes presentation only", func() {
			state.ToggleTheme()
			f := driver.Step()
			Expect(f.Theme).To(Equal(frame.Light))
			Expect(earth.Angle()).To(BeNumerically("~", 0.012, 1e-12))
		})
	})

	Describe("Resize", func() {
		It("passes the viewport through", func() {
			driver.SetRenderer(renderer)
			driver.Resize(800, 400)
			Expect(cam.Aspect).To(Equal(2.0))
			Expect(resolver.Viewport).To(Equal(pick.Viewport{Width: 800, Height: 400}))
			Expect(renderer.w).To(Equal(800))
			Expect(renderer.h).To(Equal(400))
		})

		It("ignores degenerate sizes", func() {
			driver.Resize(0, 10)
			Expect(cam.Aspect).To(Equal(16.0 / 9.0))
		})
	})
})
