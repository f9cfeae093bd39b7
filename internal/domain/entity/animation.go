package entity

// Animation cycles through named image sequences.
// One cursor is shared by all sequences, so switching sequence continues counting
// and the shown frame is always the cursor modulo the sequence length.
type Animation struct {
	Sequences map[string][]string
	Cursor    int
	Current   string
	Image     string
}

// NewAnimation creates an animation showing the given still image
func NewAnimation(image string, sequences map[string][]string) Animation {
	return Animation{Sequences: sequences, Image: image}
}

// Play shows the next frame of the named sequence.
// An unknown or empty sequence leaves the current image in place.
func (a *Animation) Play(name string) {
	seq := a.Sequences[name]
	if len(seq) == 0 {
		return
	}
	a.Image = seq[a.Cursor%len(seq)]
	a.Current = name
	a.Cursor++
}

// Len returns the number of frames in the named sequence
func (a *Animation) Len(name string) int {
	return len(a.Sequences[name])
}

// Show replaces the image with a still
func (a *Animation) Show(image string) {
	if image == "" {
		return
	}
	a.Image = image
}

// Rewind restarts the cursor
func (a *Animation) Rewind() {
	a.Cursor = 0
}
