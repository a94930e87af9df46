package graphics

// Animate is the state of an animation.
type Animate interface {
	// IsFinished says whether the animation has completed.
	IsFinished() bool
	// Reset returns the animation to the beginning.
	Reset()
	// Tick advances to the next step of the animation. If the
	// animation has completed, it does nothing.
	Tick()
}

// ScrollState records the position of a horizontal scrolling
// animation: which image is scrolling on, and how many pixels of it
// are visible so far.
type ScrollState struct {
	// index of the image being scrolled on, or about to be
	index int
	// 0..4
	pixel int
}

// Reset returns the state to the beginning.
func (s *ScrollState) Reset() {
	s.index = 0
	s.pixel = 0
}

// Tick advances the state by one pixel.
func (s *ScrollState) Tick() {
	s.pixel++
	if s.pixel == Width {
		s.pixel = 0
		s.index++
	}
}

// ScrollingImages scrolls a sequence of 5×5 images horizontally, one
// pixel per tick, with a blank leading and trailing screen.
//
// It implements ledmatrix.Render (the current step of the animation)
// and Animate.
type ScrollingImages struct {
	images []Subimage
	state  ScrollState
}

// Subimage is one underlying image of a scrolling sequence.
type Subimage interface {
	BrightnessAt(x, y int) uint8
}

// SetImages specifies the images to be displayed, and resets the
// animation to the beginning.
func (s *ScrollingImages) SetImages(images []Subimage) {
	s.images = images
	s.Reset()
}

// IsFinished implements Animate.
func (s *ScrollingImages) IsFinished() bool {
	return s.state.index > len(s.images)
}

// Reset implements Animate.
func (s *ScrollingImages) Reset() {
	s.state.Reset()
}

// Tick implements Animate.
func (s *ScrollingImages) Tick() {
	if !s.IsFinished() {
		s.state.Tick()
	}
}

// BrightnessAt implements ledmatrix.Render, returning the brightness
// for the current step of the animation.
func (s *ScrollingImages) BrightnessAt(x, y int) uint8 {
	if s.state.index > len(s.images) {
		return 0
	}
	index, sx := s.state.index, x+s.state.pixel
	if sx < Width {
		// still showing the right edge of the previous image
		if index == 0 {
			return 0
		}
		index--
	} else {
		if index == len(s.images) {
			return 0
		}
		sx -= Width
	}
	return s.images[index].BrightnessAt(sx, y)
}
