package graphics

import (
	"testing"

	"github.com/mattheww/rmicrobit/ledmatrix"
)

var _ ledmatrix.Render = (*GreyscaleImage)(nil)
var _ ledmatrix.Render = (*BitImage)(nil)
var _ ledmatrix.Render = (*ScrollingImages)(nil)

func TestGreyscaleImage(t *testing.T) {
	im := NewGreyscaleImage([Height][Width]uint8{
		{0, 1, 2, 3, 4},
		{5, 6, 7, 8, 9},
		{9, 8, 7, 6, 5},
		{4, 3, 2, 1, 0},
		{0, 0, 9, 0, 0},
	})
	if got := im.BrightnessAt(4, 1); got != 9 {
		t.Errorf("BrightnessAt(4, 1) = %d, want 9", got)
	}
	if got := im.BrightnessAt(2, 4); got != 9 {
		t.Errorf("BrightnessAt(2, 4) = %d, want 9", got)
	}
	if got := im.BrightnessAt(0, 0); got != 0 {
		t.Errorf("BrightnessAt(0, 0) = %d, want 0", got)
	}
}

func TestNewGreyscaleImagePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGreyscaleImage accepted a level above the maximum")
		}
	}()
	NewGreyscaleImage([Height][Width]uint8{{0, 0, 10, 0, 0}})
}

func TestBlankGreyscaleImage(t *testing.T) {
	im := BlankGreyscaleImage()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if got := im.BrightnessAt(x, y); got != 0 {
				t.Fatalf("BrightnessAt(%d, %d) = %d, want 0", x, y, got)
			}
		}
	}
}

func TestBitImage(t *testing.T) {
	im := NewBitImage([Height][Width]uint8{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, ledmatrix.MaxBrightness},
		{1, 0, 0},
		{2, 2, ledmatrix.MaxBrightness},
		{4, 4, ledmatrix.MaxBrightness},
		{3, 4, 0},
	}
	for _, tt := range tests {
		if got := im.BrightnessAt(tt.x, tt.y); got != tt.want {
			t.Errorf("BrightnessAt(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

// column returns the rendered column x of the current animation step.
func column(s *ScrollingImages, x int) [Height]uint8 {
	var col [Height]uint8
	for y := 0; y < Height; y++ {
		col[y] = s.BrightnessAt(x, y)
	}
	return col
}

func isBlank(s *ScrollingImages) bool {
	for x := 0; x < Width; x++ {
		if column(s, x) != ([Height]uint8{}) {
			return false
		}
	}
	return true
}

func TestScrollingSingleImage(t *testing.T) {
	im := NewGreyscaleImage([Height][Width]uint8{
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
		{1, 2, 3, 4, 5},
	})
	var s ScrollingImages
	s.SetImages([]Subimage{&im})

	if !isBlank(&s) {
		t.Error("screen not blank before the first tick")
	}

	s.Tick()
	if got := column(&s, Width-1); got != ([Height]uint8{1, 1, 1, 1, 1}) {
		t.Errorf("after one tick, rightmost column = %v, want the image's left edge", got)
	}
	if got := column(&s, 0); got != ([Height]uint8{}) {
		t.Errorf("after one tick, leftmost column = %v, want blank", got)
	}

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	// Five ticks in, the image fills the screen.
	for x := 0; x < Width; x++ {
		want := [Height]uint8{}
		for y := range want {
			want[y] = uint8(x + 1)
		}
		if got := column(&s, x); got != want {
			t.Errorf("after five ticks, column %d = %v, want %v", x, got, want)
		}
	}

	for i := 0; i < 4; i++ {
		s.Tick()
		if s.IsFinished() {
			t.Fatalf("IsFinished() after %d ticks", 6+i)
		}
	}
	s.Tick()
	if !s.IsFinished() {
		t.Error("IsFinished() = false after the image scrolled off")
	}
	if !isBlank(&s) {
		t.Error("screen not blank after the animation finished")
	}
}

func TestScrollingTickAfterFinishedDoesNothing(t *testing.T) {
	im := BlankBitImage()
	var s ScrollingImages
	s.SetImages([]Subimage{&im})
	for i := 0; i < 20; i++ {
		s.Tick()
	}
	if !s.IsFinished() {
		t.Fatal("animation never finished")
	}
	s.Tick()
	if !s.IsFinished() {
		t.Error("Tick() after completion restarted the animation")
	}
}

func TestScrollingTwoImages(t *testing.T) {
	first := NewBitImage([Height][Width]uint8{{1, 1, 1, 1, 1}})
	second := NewBitImage([Height][Width]uint8{{}, {}, {}, {}, {1, 1, 1, 1, 1}})
	var s ScrollingImages
	s.SetImages([]Subimage{&first, &second})

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	// The second image now fills the screen.
	for x := 0; x < Width; x++ {
		if got := s.BrightnessAt(x, 4); got != ledmatrix.MaxBrightness {
			t.Errorf("BrightnessAt(%d, 4) = %d, want %d", x, got, ledmatrix.MaxBrightness)
		}
		if got := s.BrightnessAt(x, 0); got != 0 {
			t.Errorf("BrightnessAt(%d, 0) = %d, want 0", x, got)
		}
	}

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if s.IsFinished() {
		t.Error("IsFinished() before the second image scrolled off")
	}
	s.Tick()
	if !s.IsFinished() {
		t.Error("IsFinished() = false after both images scrolled off")
	}
}

func TestScrollingReset(t *testing.T) {
	im := NewBitImage([Height][Width]uint8{{1}})
	var s ScrollingImages
	s.SetImages([]Subimage{&im})
	for i := 0; i < 7; i++ {
		s.Tick()
	}
	s.Reset()
	if s.IsFinished() {
		t.Error("IsFinished() = true immediately after Reset")
	}
	if !isBlank(&s) {
		t.Error("screen not blank after Reset")
	}
}

func TestSetImagesResets(t *testing.T) {
	im := NewBitImage([Height][Width]uint8{{1}})
	var s ScrollingImages
	s.SetImages([]Subimage{&im})
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	s.SetImages([]Subimage{&im, &im})
	if s.IsFinished() {
		t.Error("IsFinished() = true after SetImages")
	}
	if !isBlank(&s) {
		t.Error("screen not blank after SetImages")
	}
}
