package export

import (
	"bytes"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/Pavel-chemist/floating-objects/internal/body"
	"github.com/Pavel-chemist/floating-objects/internal/canvas"
)

func TestSceneToSVG(t *testing.T) {
	bodies := []body.Body{
		body.New(body.Params{X: 10, Y: 20, Radius: 5, Border: 1, Mass: 25,
			Fill: canvas.RGB{R: 255}, BorderColor: canvas.RGB{B: 255}}),
	}

	svg := SceneToSVG(bodies, 64, 48, canvas.RGB{R: 127, G: 127, B: 127})

	for _, want := range []string{
		`width="64" height="48"`,
		`fill="#7f7f7f"`,
		`<circle cx="10.00" cy="20.00" r="5.00" fill="#0000ff"/>`,
		`<circle cx="10.00" cy="20.00" r="4.00" fill="#ff0000"/>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestSceneToSVGSolidBorder(t *testing.T) {
	bodies := []body.Body{body.New(body.Params{Radius: 3, Border: 3, Mass: 9})}
	svg := SceneToSVG(bodies, 10, 10, canvas.RGB{})
	if n := strings.Count(svg, "<circle"); n != 1 {
		t.Errorf("expected 1 circle for an all-border body, got %d", n)
	}
}

func TestWritePNG(t *testing.T) {
	c := canvas.New(8, 4)
	c.Set(3, 2, canvas.RGB{R: 10, G: 20, B: 30})

	var buf bytes.Buffer
	if err := WritePNG(&buf, c); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	r, g, b, _ := img.At(3, 2).RGBA()
	if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("unexpected pixel %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestWriteGIF(t *testing.T) {
	frames := []*canvas.Canvas{canvas.New(8, 8), canvas.New(8, 8), canvas.New(8, 8)}

	var buf bytes.Buffer
	if err := WriteGIF(&buf, frames, 7); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Errorf("expected 3 frames, got %d", len(anim.Image))
	}
	if anim.Delay[0] != 7 {
		t.Errorf("expected delay 7, got %d", anim.Delay[0])
	}

	if err := WriteGIF(&buf, nil, 7); err == nil {
		t.Error("expected error for empty frame list")
	}
}

func TestGIFDelay(t *testing.T) {
	tests := []struct {
		tickMs, every, want int
	}{
		{33, 3, 9},
		{16, 6, 9},
		{5, 1, 1},
	}
	for _, tt := range tests {
		if got := GIFDelay(tt.tickMs, tt.every); got != tt.want {
			t.Errorf("GIFDelay(%d,%d) = %d, want %d", tt.tickMs, tt.every, got, tt.want)
		}
	}
}
