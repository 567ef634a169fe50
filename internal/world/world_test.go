package world_test

import (
	"bytes"
	"io"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
	"github.com/Pavel-chemist/floating-objects/internal/world"
)

var (
	red   = canvas.RGB{R: 220, G: 30, B: 30}
	green = canvas.RGB{R: 30, G: 220, B: 30}
	blue  = canvas.RGB{R: 30, G: 30, B: 220}
)

func disk(name string, x, y, vx, vy, r float64, fill canvas.RGB) body.Body {
	return body.New(body.Params{
		Name: name, X: x, Y: y, VX: vx, VY: vy,
		Radius: r, Border: 2, Mass: r * r,
		Fill: fill, BorderColor: fill,
	})
}

func names(bodies []body.Body) []string {
	out := make([]string, len(bodies))
	for i, b := range bodies {
		out[i] = b.Name
	}
	return out
}

var _ = Describe("World", func() {
	var (
		w      *world.World
		logBuf *bytes.Buffer
	)

	BeforeEach(func() {
		logBuf = &bytes.Buffer{}
		w = world.New(100, 100, world.WithLogger(log.New(logBuf, "", 0)), world.WithSeed(7))
	})

	Describe("three resting bodies", func() {
		BeforeEach(func() {
			Expect(w.AddBody(disk("a", 10, 10, 0, 0, 10, red))).To(BeTrue())
			Expect(w.AddBody(disk("b", 50, 50, 0, 0, 10, green))).To(BeTrue())
			Expect(w.AddBody(disk("c", 90, 90, 0, 0, 10, blue))).To(BeTrue())
		})

		It("leaves them in place after a step", func() {
			Expect(w.Step()).To(Equal(0))

			bodies := w.Bodies()
			Expect(bodies).To(HaveLen(3))
			want := [][2]float64{{10, 10}, {50, 50}, {90, 90}}
			for i, b := range bodies {
				Expect(b.X).To(BeNumerically("==", want[i][0]))
				Expect(b.Y).To(BeNumerically("==", want[i][1]))
				Expect(b.VX).To(BeNumerically("==", 0))
				Expect(b.VY).To(BeNumerically("==", 0))
			}
			Expect(w.Tick()).To(Equal(1))
		})

		It("renders three disks over the background", func() {
			w.Step()
			frame := w.Render()

			Expect(frame.Width).To(Equal(100))
			Expect(frame.Height).To(Equal(100))
			Expect(frame.Data).To(HaveLen(3 * 100 * 100))

			at := func(x, y int) canvas.RGB {
				c, ok := frame.At(x, y)
				Expect(ok).To(BeTrue())
				return c
			}
			Expect(at(10, 10)).To(Equal(red))
			Expect(at(50, 50)).To(Equal(green))
			Expect(at(90, 90)).To(Equal(blue))
			Expect(at(90, 10)).To(Equal(canvas.RGB{}))
			Expect(at(30, 70)).To(Equal(canvas.RGB{}))
		})

		It("renders identical frames without mutation in between", func() {
			first := w.Render()
			second := w.Render()
			Expect(second.Data).To(Equal(first.Data))
		})

		It("does not alias the rendered frame", func() {
			frame := w.Render()
			frame.Set(50, 50, canvas.RGB{R: 1, G: 2, B: 3})

			again := w.Render()
			c, _ := again.At(50, 50)
			Expect(c).To(Equal(green))
		})
	})

	Describe("AddBody", func() {
		It("rejects a body placed on top of another", func() {
			Expect(w.AddBody(disk("a", 50, 50, 0, 0, 10, red))).To(BeTrue())
			Expect(w.AddBody(disk("b", 55, 50, 0, 0, 10, green))).To(BeFalse())
			Expect(w.Len()).To(Equal(1))
			Expect(logBuf.String()).To(ContainSubstring("rejected b"))
		})

		It("accepts a body exactly touching another", func() {
			Expect(w.AddBody(disk("a", 30, 50, 0, 0, 10, red))).To(BeTrue())
			Expect(w.AddBody(disk("b", 50, 50, 0, 0, 10, green))).To(BeTrue())
			Expect(w.Len()).To(Equal(2))
		})
	})

	Describe("AddRandomBodyAt", func() {
		It("builds bodies within the configured ranges", func() {
			r := world.DefaultRanges()
			Expect(w.AddRandomBodyAt(50, 50)).To(BeTrue())

			b := w.Bodies()[0]
			Expect(b.X).To(Equal(50.0))
			Expect(b.Y).To(Equal(50.0))
			Expect(b.Radius).To(BeNumerically(">=", r.MinRadius))
			Expect(b.Radius).To(BeNumerically("<", r.MaxRadius))
			Expect(b.Border()).To(BeNumerically("<=", b.Radius))
			Expect(b.Border()).To(BeNumerically(">=", r.MinBorder))
			Expect(b.VX).To(BeNumerically(">=", -r.MaxSpeed))
			Expect(b.VX).To(BeNumerically("<", r.MaxSpeed))
			Expect(b.Mass).To(BeNumerically("~", b.Radius*b.Radius, 1e-9))
		})

		It("is subject to overlap rejection", func() {
			Expect(w.AddRandomBodyAt(50, 50)).To(BeTrue())
			Expect(w.AddRandomBodyAt(50, 50)).To(BeFalse())
			Expect(w.Len()).To(Equal(1))
		})

		It("scatters bodies fully inside the world without overlaps", func() {
			big := world.New(400, 300, world.WithLogger(log.New(io.Discard, "", 0)), world.WithSeed(3))
			placed := big.Scatter(8)
			Expect(placed).To(BeNumerically(">", 0))
			Expect(big.Len()).To(Equal(placed))

			bodies := big.Bodies()
			for i, b := range bodies {
				Expect(b.X - b.Radius).To(BeNumerically(">=", 0))
				Expect(b.X + b.Radius).To(BeNumerically("<=", 400))
				Expect(body.CheckOnTop(b, bodies, i)).To(BeFalse())
			}
		})

		It("is reproducible for a seed", func() {
			other := world.New(100, 100, world.WithLogger(log.New(io.Discard, "", 0)), world.WithSeed(7))
			Expect(other.RandomBody(20, 20)).To(Equal(w.RandomBody(20, 20)))
		})
	})

	Describe("Step", func() {
		It("resolves collisions against the post-move snapshot", func() {
			Expect(w.AddBody(body.New(body.Params{Name: "a", X: 40, Y: 50, VX: 3, Radius: 10, Mass: 1}))).To(BeTrue())
			Expect(w.AddBody(body.New(body.Params{Name: "b", X: 61, Y: 50, VX: -3, Radius: 10, Mass: 1}))).To(BeTrue())

			Expect(w.Step()).To(Equal(1))

			bodies := w.Bodies()
			Expect(bodies[0].X).To(Equal(43.0))
			Expect(bodies[1].X).To(Equal(58.0))
			Expect(bodies[0].VX).To(Equal(-3.0))
			Expect(bodies[1].VX).To(Equal(3.0))
		})
	})

	Describe("selection", func() {
		BeforeEach(func() {
			w.AddBody(disk("a", 20, 20, 0, 0, 10, red))
			w.AddBody(disk("b", 50, 50, 0, 0, 10, green))
			w.AddBody(disk("c", 80, 80, 0, 0, 10, blue))
		})

		It("finds nothing in an empty world", func() {
			empty := world.New(50, 50, world.WithLogger(log.New(io.Discard, "", 0)))
			Expect(empty.SelectBody(10, 10)).To(BeFalse())
			Expect(empty.HasSelection()).To(BeFalse())
		})

		It("raises the hit body to the top", func() {
			Expect(w.SelectBody(21, 19)).To(BeTrue())
			Expect(names(w.Bodies())).To(Equal([]string{"b", "c", "a"}))

			sel, ok := w.Selected()
			Expect(ok).To(BeTrue())
			Expect(sel.Name).To(Equal("a"))
		})

		It("clears the selection on a miss", func() {
			Expect(w.SelectBody(50, 50)).To(BeTrue())
			Expect(w.SelectBody(5, 95)).To(BeFalse())
			Expect(w.HasSelection()).To(BeFalse())
			_, ok := w.Selected()
			Expect(ok).To(BeFalse())
		})

		It("prefers the most recently raised body", func() {
			Expect(w.SelectBody(50, 50)).To(BeTrue())
			Expect(w.DragSelectedTo(22, 20)).To(BeTrue())

			Expect(w.SelectBody(21, 20)).To(BeTrue())
			sel, _ := w.Selected()
			Expect(sel.Name).To(Equal("b"))
		})

		It("throws the dragged body", func() {
			Expect(w.SelectBody(80, 80)).To(BeTrue())
			Expect(w.DragSelectedTo(84, 77)).To(BeTrue())

			sel, _ := w.Selected()
			Expect(sel.X).To(Equal(84.0))
			Expect(sel.Y).To(Equal(77.0))
			Expect(sel.VX).To(Equal(4.0))
			Expect(sel.VY).To(Equal(-3.0))
		})

		It("ignores drags without a selection", func() {
			before := w.Bodies()
			Expect(w.DragSelectedTo(10, 10)).To(BeFalse())
			Expect(w.Bodies()).To(Equal(before))
		})

		It("removes only the selected body", func() {
			Expect(w.SelectBody(50, 50)).To(BeTrue())
			Expect(w.RemoveSelected()).To(BeTrue())
			Expect(names(w.Bodies())).To(Equal([]string{"a", "c"}))
			Expect(w.HasSelection()).To(BeFalse())

			Expect(w.RemoveSelected()).To(BeFalse())
			Expect(w.Len()).To(Equal(2))
		})

		It("drops the selection when a body is added", func() {
			Expect(w.SelectBody(50, 50)).To(BeTrue())
			Expect(w.AddBody(disk("d", 20, 80, 0, 0, 5, red))).To(BeTrue())
			Expect(w.HasSelection()).To(BeFalse())
			Expect(w.RemoveSelected()).To(BeFalse())
			Expect(w.Len()).To(Equal(4))
		})

		It("clears everything", func() {
			w.SelectBody(50, 50)
			w.Clear()
			Expect(w.Len()).To(Equal(0))
			Expect(w.HasSelection()).To(BeFalse())
		})
	})

	Describe("ReplaceBackground", func() {
		It("swaps a same-size buffer", func() {
			w.ReplaceBackground(canvas.Solid(100, 100, canvas.LevelWhite))
			c, _ := w.Render().At(0, 0)
			Expect(c).To(Equal(canvas.RGB{R: 255, G: 255, B: 255}))
		})

		It("panics on a size mismatch", func() {
			Expect(func() {
				w.ReplaceBackground(canvas.Solid(10, 10, canvas.LevelWhite))
			}).To(PanicWith(ContainSubstring("size mismatch")))
		})
	})
})
