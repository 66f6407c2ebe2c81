package game

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/config"
	"github.com/diegok/pachinko/internal/geom"
)

// recordCanvas counts draw calls by kind
type recordCanvas struct {
	calls map[string]int
	texts []string
	rings []geom.Disc2
}

func newRecordCanvas() *recordCanvas {
	return &recordCanvas{calls: make(map[string]int)}
}

func (c *recordCanvas) FillDisc(geom.Disc2, colorful.Color) {
	c.calls["disc"]++
}

func (c *recordCanvas) FillCapsule(geom.Capsule2, colorful.Color) {
	c.calls["capsule"]++
}

func (c *recordCanvas) FillOBB(geom.OBB2, colorful.Color) {
	c.calls["obb"]++
}

func (c *recordCanvas) FillAABB(geom.AABB2, colorful.Color) {
	c.calls["aabb"]++
}

func (c *recordCanvas) FillTriangle(geom.Triangle2, colorful.Color) {
	c.calls["triangle"]++
}

func (c *recordCanvas) Ring(d geom.Disc2, _ colorful.Color) {
	c.calls["ring"]++
	c.rings = append(c.rings, d)
}

func (c *recordCanvas) Line(_, _ geom.Vec2, _ colorful.Color) {
	c.calls["line"]++
}

func (c *recordCanvas) Arrow(_, _ geom.Vec2, _ colorful.Color) {
	c.calls["arrow"]++
}

func (c *recordCanvas) Point(geom.Vec2, colorful.Color) {
	c.calls["point"]++
}

func (c *recordCanvas) Text(_ int, text string, _ colorful.Color) {
	c.texts = append(c.texts, text)
}

func TestModeID_Cycle(t *testing.T) {
	if got := ModePachinko.Next(); got != ModeNearestPoint {
		t.Errorf("expected Next to wrap to nearest point, got %v", got)
	}
	if got := ModeNearestPoint.Prev(); got != ModePachinko {
		t.Errorf("expected Prev to wrap to pachinko, got %v", got)
	}
	if got := ModeRaycastDiscs.Next(); got != ModeRaycastSegments {
		t.Errorf("expected segments after discs, got %v", got)
	}

	id := ModeRaycastAABB2s
	for i := 0; i < int(modeCount); i++ {
		id = id.Next()
	}
	if id != ModeRaycastAABB2s {
		t.Errorf("expected a full cycle to return to the start, got %v", id)
	}
}

func TestModeFromName(t *testing.T) {
	for i, name := range config.ModeNames {
		id, ok := ModeFromName(name)
		if !ok {
			t.Errorf("expected %q to be known", name)
		}
		if id != ModeID(i) {
			t.Errorf("expected %q to map to %d, got %d", name, i, id)
		}
		if id.String() != name {
			t.Errorf("expected String %q, got %q", name, id.String())
		}
	}

	if _, ok := ModeFromName("pong"); ok {
		t.Error("expected unknown mode to be rejected")
	}
}

func TestNewMode_Names(t *testing.T) {
	tests := []struct {
		id   ModeID
		want string
	}{
		{ModeNearestPoint, "Nearest Point"},
		{ModeRaycastDiscs, "Raycast vs Discs"},
		{ModeRaycastSegments, "Raycast vs Line Segments"},
		{ModeRaycastAABB2s, "Raycast vs AABB2s"},
		{ModePachinko, "Pachinko Machine (2D)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			mode := NewMode(tt.id, testSettings(), NewRand(5), false)
			if mode.Name() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, mode.Name())
			}

			canvas := newRecordCanvas()
			mode.Render(canvas)
			if len(canvas.texts) == 0 {
				t.Error("expected help text")
			}
		})
	}
}

func TestNewMode_OnlyPachinkoSimulates(t *testing.T) {
	for id := ModeNearestPoint; id < modeCount; id++ {
		mode := NewMode(id, testSettings(), NewRand(5), false)
		_, scaled := mode.(TimeScaler)
		_, reports := mode.(ContactReporter)
		want := id == ModePachinko
		if scaled != want || reports != want {
			t.Errorf("%v: expected TimeScaler/ContactReporter %v, got %v/%v", id, want, scaled, reports)
		}
	}
}
