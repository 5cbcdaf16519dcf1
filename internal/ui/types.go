package ui

// ViewState represents the screens of the map app
type ViewState int

const (
	ViewLoading ViewState = iota
	ViewMap
	ViewHelp
)

func (s ViewState) String() string {
	switch s {
	case ViewLoading:
		return "loading"
	case ViewMap:
		return "map"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// cellKind classifies a canvas cell for styling
type cellKind int

const (
	cellEmpty cellKind = iota
	cellMountain
	cellTrail
	cellPreview
	cellMarker
	cellReached
	cellOpen
	cellFocused
	cellIndicator
)
