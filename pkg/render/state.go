package render

// Mode is the semantic rendering context that determines a handler's
// formatting choice.
type Mode int

const (
	ModeTop Mode = iota
	ModeHeader
	ModeBody
	ModeBulletList
	ModeBulletListItem
	ModeSection
	ModeNote
	ModeFootnote
)

var modeNames = map[Mode]string{
	ModeTop:            "top",
	ModeHeader:         "header",
	ModeBody:           "body",
	ModeBulletList:     "bullet_list",
	ModeBulletListItem: "bullet_list_item",
	ModeSection:        "section",
	ModeNote:           "note",
	ModeFootnote:       "footnote",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// State is the rendering context threaded through the recursive descent:
// the current mode plus a nesting-depth counter. Depth is only meaningful
// while the mode is list- or section-related and never goes negative.
//
// A handler that needs different context for its children takes a Copy and
// passes that down, so mode and depth changes never leak back to siblings
// processed afterwards by the same caller. In-place mutation is reserved
// for changes that must be visible to later siblings, like the top title
// flipping the document into header mode.
type State struct {
	Mode  Mode
	Depth int
}

// NewState returns the initial traversal state: top mode, depth zero.
func NewState() *State {
	return &State{Mode: ModeTop}
}

// Right increases the nesting depth by one.
func (s *State) Right() {
	s.Depth++
}

// Left decreases the nesting depth by one, floored at zero.
func (s *State) Left() {
	if s.Depth > 0 {
		s.Depth--
	}
}

// Copy returns an independent value snapshot of the state.
func (s *State) Copy() *State {
	c := *s
	return &c
}
