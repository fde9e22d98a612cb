package ribbon

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Dicklesworthstone/ribbon/pkg/model"
)

func testSettings() Settings {
	return Settings{
		Width:                700,
		PracticalZero:        5,
		ExpandFraction:       0.4,
		InitialPreviousRange: 200,
		Anchors:              model.DefaultAnchors(),
	}
}

// newAt builds a ribbon with an explicit state (white-box)
func newAt(center, rng float64) *Ribbon {
	r := New(testSettings())
	r.state = State{Center: center, Range: rng}
	return r
}

func checkInvariants(t *testing.T, r *Ribbon, step string) {
	t.Helper()
	s := r.State()
	w := r.Settings().Width
	if s.Range < 0 || s.Range > w {
		t.Fatalf("%s: range %v outside [0,%v]", step, s.Range, w)
	}
	if s.Center < s.Range/2 || s.Center > w-s.Range/2 {
		t.Fatalf("%s: center %v outside [%v,%v] for range %v", step, s.Center, s.Range/2, w-s.Range/2, s.Range)
	}
}

func TestNew_Defaults(t *testing.T) {
	r := New(testSettings())
	if r.State().Center != 350 {
		t.Errorf("Expected center 350, got %v", r.State().Center)
	}
	if r.State().Range != 0 {
		t.Errorf("Expected contracted ribbon, got range %v", r.State().Range)
	}
	if r.PreviousRange() != 200 {
		t.Errorf("Expected previous range 200, got %v", r.PreviousRange())
	}
	if r.Handle() != model.HandleNone {
		t.Errorf("Expected no handle, got %v", r.Handle())
	}
}

func TestTap(t *testing.T) {
	tests := []struct {
		name     string
		center   float64
		rng      float64
		x        float64
		expected float64
	}{
		{"contracted moves to tap", 350, 0, 120, 120},
		{"contracted clamps at zero", 350, 0, -30, 0},
		{"expanded clamps to min center", 350, 200, 20, 100},
		{"expanded clamps to max center", 350, 200, 690, 600},
		{"expanded inside bounds", 350, 200, 420, 420},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAt(tt.center, tt.rng)
			r.Tap(tt.x)
			if got := r.State().Center; got != tt.expected {
				t.Errorf("Expected center %v, got %v", tt.expected, got)
			}
			checkInvariants(t, r, "tap")
		})
	}
}

func TestDoubleTap_RoundTrip(t *testing.T) {
	s := testSettings()
	s.InitialPreviousRange = 0
	r := New(s)

	r.DoubleTap(350)
	if got := r.State().Range; got != 280 {
		t.Fatalf("Expected first double tap to expand to 280, got %v", got)
	}
	if r.PreviousRange() != 280 {
		t.Fatalf("Expected previous range 280, got %v", r.PreviousRange())
	}

	r.DoubleTap(350)
	if got := r.State().Range; got != 0 {
		t.Fatalf("Expected second double tap to contract, got %v", got)
	}

	r.DoubleTap(350)
	if got := r.State().Range; got != 280 {
		t.Fatalf("Expected third double tap to restore 280, got %v", got)
	}
}

func TestDoubleTap_ClampsWithNewRange(t *testing.T) {
	r := New(testSettings())
	r.DoubleTap(10)
	s := r.State()
	if s.Range != 200 {
		t.Fatalf("Expected restored range 200, got %v", s.Range)
	}
	if s.Center != 100 {
		t.Errorf("Expected center clamped to 100 with the new range, got %v", s.Center)
	}

	r.DoubleTap(10)
	if r.State().Center != 10 {
		t.Errorf("Expected contracted center 10, got %v", r.State().Center)
	}
}

func TestDrag_InsideIsProportional(t *testing.T) {
	r := newAt(350, 200)
	r.BeginDrag(350)
	r.Drag(400)
	if got := r.State().Center; got != 400 {
		t.Fatalf("Expected center 400, got %v", got)
	}
	r.Drag(380)
	if got := r.State().Center; got != 380 {
		t.Fatalf("Expected center 380, got %v", got)
	}
	r.EndDrag()
	if r.Dragging() {
		t.Error("Expected session to be discarded")
	}
}

func TestDrag_InsideKeepsGrabOffset(t *testing.T) {
	r := newAt(350, 200)
	r.BeginDrag(300)
	r.Drag(320)
	if got := r.State().Center; got != 370 {
		t.Fatalf("Expected center 370, got %v", got)
	}
}

func TestDrag_OutsideSnapsToFinger(t *testing.T) {
	r := newAt(350, 200)
	r.BeginDrag(50)
	r.Drag(50)
	if got := r.State().Center; got != 100 {
		t.Fatalf("Expected center clamped to 100, got %v", got)
	}
	r.Drag(500)
	if got := r.State().Center; got != 500 {
		t.Fatalf("Expected center 500, got %v", got)
	}
}

func TestDrag_InsideIsDecidedOnce(t *testing.T) {
	r := newAt(350, 200)
	r.BeginDrag(50)
	r.Drag(300)
	// 300 is now inside the selection, but the drag began outside
	r.Drag(310)
	if got := r.State().Center; got != 310 {
		t.Fatalf("Expected center to follow the finger to 310, got %v", got)
	}
}

func TestDrag_WithoutSessionIsIgnored(t *testing.T) {
	r := newAt(350, 200)
	r.Drag(500)
	if got := r.State().Center; got != 350 {
		t.Errorf("Expected center unchanged, got %v", got)
	}
}

func TestAnchorSnap_Contracted(t *testing.T) {
	r := New(testSettings())
	r.Tap(100)
	r.BeginDrag(100)

	r.Drag(345)
	if got := r.State().Center; got != 350 {
		t.Fatalf("Expected snap to 350, got %v", got)
	}
	if !r.SuppressAnimation() {
		t.Fatal("Expected animation to be suppressed while snapped")
	}

	r.Drag(500)
	if got := r.State().Center; got != 500 {
		t.Fatalf("Expected center 500 after leaving the well, got %v", got)
	}
	if r.SuppressAnimation() {
		t.Fatal("Expected suppression cleared after leaving the well")
	}
}

func TestAnchorSnap_WellBounds(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		snapped bool
	}{
		{"left of well", 340, false},
		{"inside left", 344, true},
		{"exact anchor", 350, true},
		{"inside right", 356, true},
		{"right of well", 360, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(testSettings())
			r.BeginDrag(100)
			r.Drag(tt.x)
			if r.SuppressAnimation() != tt.snapped {
				t.Errorf("Expected snapped=%v at x=%v", tt.snapped, tt.x)
			}
			if tt.snapped && r.State().Center != 350 {
				t.Errorf("Expected center 350, got %v", r.State().Center)
			}
		})
	}
}

func TestAnchorSnap_ExpandedTracksSelection(t *testing.T) {
	r := newAt(200, 200)
	// grab the selection 40 units right of its center
	r.BeginDrag(240)
	r.Drag(393)
	// follow puts the center at 353, which is inside the well
	if got := r.State().Center; got != 350 {
		t.Fatalf("Expected snap to 350, got %v", got)
	}
	if !r.SuppressAnimation() {
		t.Fatal("Expected suppression")
	}
	r.EndDrag()
	if r.SuppressAnimation() {
		t.Error("Expected suppression cleared at drag end")
	}
}

func TestPipeline_SnapRunsAfterFollow(t *testing.T) {
	f := Run(Frame{Width: 700, Center: 100, PointerX: 346},
		Follow(100, false),
		SnapToAnchors(model.DefaultAnchors()),
		ClampCenter,
	)
	if f.Center != 350 || !f.Suppress {
		t.Fatalf("Expected snapped frame, got %+v", f)
	}

	f = Run(Frame{Width: 700, Center: 100, PointerX: 346},
		SnapToAnchors(model.DefaultAnchors()),
		Follow(100, false),
	)
	if f.Center != 346 {
		t.Fatalf("Expected follow to overwrite when ordered last, got %v", f.Center)
	}
}

func TestAdjustRange(t *testing.T) {
	tests := []struct {
		name       string
		center     float64
		rng        float64
		handle     model.Handle
		x          float64
		wantCenter float64
		wantRange  float64
	}{
		{"trailing grows", 350, 200, model.HandleTrailing, 500, 350, 250},
		{"trailing past track pins to max", 350, 200, model.HandleTrailing, 750, 600, 200},
		{"trailing pinned at leading edge", 100, 200, model.HandleTrailing, 250, 125, 250},
		{"leading shrinks", 350, 200, model.HandleLeading, 300, 350, 150},
		{"leading below zero pins to min", 350, 200, model.HandleLeading, -10, 100, 200},
		{"leading pinned at trailing edge", 600, 200, model.HandleLeading, 450, 575, 250},
		{"leading near zero collapses", 350, 200, model.HandleLeading, 446, 350, 0},
		{"trailing near zero collapses", 350, 200, model.HandleTrailing, 254, 350, 0},
		{"no handle does nothing", 350, 200, model.HandleNone, 600, 350, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAt(tt.center, tt.rng)
			r.BeginHandleDrag(tt.handle)
			r.AdjustRange(tt.x)
			s := r.State()
			if s.Center != tt.wantCenter || s.Range != tt.wantRange {
				t.Errorf("Expected center=%v range=%v, got center=%v range=%v",
					tt.wantCenter, tt.wantRange, s.Center, s.Range)
			}
			checkInvariants(t, r, tt.name)
		})
	}
}

func TestAdjustRange_TrailingPinMatchesMaxCenter(t *testing.T) {
	r := newAt(350, 200)
	r.BeginHandleDrag(model.HandleTrailing)
	r.AdjustRange(750)
	g := r.Geometry()
	if r.State().Center != g.MaxCenter() {
		t.Errorf("Expected center at max boundary %v, got %v", g.MaxCenter(), r.State().Center)
	}
}

func TestEndHandleDrag_RemembersPracticalZero(t *testing.T) {
	r := newAt(350, 200)
	r.BeginHandleDrag(model.HandleLeading)
	r.AdjustRange(448)
	if r.State().Range != 0 {
		t.Fatalf("Expected collapse, got %v", r.State().Range)
	}
	r.EndHandleDrag(true)
	if r.PreviousRange() != 5 {
		t.Errorf("Expected previous range 5, got %v", r.PreviousRange())
	}
	if r.Handle() != model.HandleNone {
		t.Errorf("Expected handle cleared, got %v", r.Handle())
	}
}

func TestEndHandleDrag_WithoutDragKeepsPreviousRange(t *testing.T) {
	r := newAt(350, 120)
	r.BeginHandleDrag(model.HandleTrailing)
	r.EndHandleDrag(false)
	if r.PreviousRange() != 200 {
		t.Errorf("Expected previous range untouched, got %v", r.PreviousRange())
	}
}

func TestInvariants_RandomWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r := New(testSettings())
	for i := 0; i < 5000; i++ {
		x := rng.Float64()*900 - 100
		switch rng.Intn(6) {
		case 0:
			r.Tap(x)
		case 1:
			r.DoubleTap(x)
		case 2:
			r.BeginDrag(x)
		case 3:
			r.Drag(x)
		case 4:
			if r.Handle() == model.HandleNone {
				r.BeginHandleDrag(model.Handle(1 + rng.Intn(2)))
			}
			r.AdjustRange(x)
		case 5:
			r.EndDrag()
			r.EndHandleDrag(true)
		}
		checkInvariants(t, r, "random walk")
		if pr := r.PreviousRange(); pr != 0 && pr < 5 {
			t.Fatalf("previous range %v below practical zero", pr)
		}
	}
}

func TestReset(t *testing.T) {
	r := newAt(120, 80)
	r.BeginHandleDrag(model.HandleLeading)
	r.Reset()
	if r.State() != (State{Center: 350}) || r.Handle() != model.HandleNone {
		t.Errorf("Expected mount state, got %+v handle=%v", r.State(), r.Handle())
	}
}

func TestGeometry(t *testing.T) {
	g := Geometry{Width: 700, Center: 350, Range: 200}
	if g.Offset() != 250 || g.TrailingEdge() != 450 {
		t.Errorf("Expected edges 250/450, got %v/%v", g.Offset(), g.TrailingEdge())
	}
	if g.MinCenter() != 100 || g.MaxCenter() != 600 {
		t.Errorf("Expected bounds 100/600, got %v/%v", g.MinCenter(), g.MaxCenter())
	}
	if !g.Inside(300) || g.Inside(250) || g.Inside(450) {
		t.Error("Inside should be strict")
	}
	lo, hi := g.HandleZone(model.HandleLeading, 12)
	if lo != 238 || hi != 250 {
		t.Errorf("Expected leading zone [238,250], got [%v,%v]", lo, hi)
	}
	lo, hi = g.HandleZone(model.HandleTrailing, 12)
	if lo != 450 || hi != 462 {
		t.Errorf("Expected trailing zone [450,462], got [%v,%v]", lo, hi)
	}
	if op := g.HandleOpacity(false, 5); op != 1 {
		t.Errorf("Expected opaque handles, got %v", op)
	}
	contracted := Geometry{Width: 700, Center: 350}
	if op := contracted.HandleOpacity(false, 5); op != 0 {
		t.Errorf("Expected hidden handles, got %v", op)
	}
	if op := contracted.HandleOpacity(true, 5); math.Abs(op-5.0/700) > 1e-12 {
		t.Errorf("Expected faint grabbed handle, got %v", op)
	}
}

func TestGeometry_MirroredHandles(t *testing.T) {
	g := Geometry{Width: 700, Center: 350, Range: 200}
	left, right := g.MirroredHandles(12)
	if left != 456 || right != 244 {
		t.Errorf("Expected mirrored 456/244, got %v/%v", left, right)
	}
	pinned := Geometry{Width: 700, Center: 100, Range: 200}
	left, _ = pinned.MirroredHandles(12)
	if left != 700 {
		t.Errorf("Expected pinned left handle at 700, got %v", left)
	}
}
