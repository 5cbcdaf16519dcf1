package mapview

// DetailState tracks which marker's detail panel is open. The zero value is
// Closed. Transitions are pure: they return a new state.
type DetailState struct {
	index int
	open  bool
}

// Closed returns the state with no panel open.
func Closed() DetailState {
	return DetailState{}
}

// OpenAt returns the state with panel i open.
func OpenAt(i int) DetailState {
	return DetailState{index: i, open: true}
}

// Index returns the open marker index, if any.
func (s DetailState) Index() (int, bool) {
	return s.index, s.open
}

// IsOpen reports whether panel i is the open one.
func (s DetailState) IsOpen(i int) bool {
	return s.open && s.index == i
}

// Activate toggles panel i. Activating the open panel closes it; activating
// any other marker switches to it.
func (s DetailState) Activate(i int) DetailState {
	if s.IsOpen(i) {
		return Closed()
	}
	return OpenAt(i)
}

func (s DetailState) String() string {
	if !s.open {
		return "Closed"
	}
	return "Open(" + itoa(s.index) + ")"
}

// InRange reports whether i is a valid index for n markers.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

// ClampProgress limits progress to [0, n-1]. With no markers it returns 0.
func ClampProgress(progress, n int) int {
	if n <= 0 || progress < 0 {
		return 0
	}
	if progress > n-1 {
		return n - 1
	}
	return progress
}

// Advance moves progress one step forward, clamped to n-1.
func Advance(progress, n int) int {
	return ClampProgress(progress+1, n)
}

// Retreat moves progress one step back, clamped to 0.
func Retreat(progress, n int) int {
	return ClampProgress(progress-1, n)
}
