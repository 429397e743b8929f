package state

// DefaultPlaceholder is shown until the first snapshot arrives.
const DefaultPlaceholder = "No Value"

// Label is the single temperature text on screen.
type Label struct {
	text string
}

// NewLabel creates a label showing placeholder, or DefaultPlaceholder when
// placeholder is empty.
func NewLabel(placeholder string) *Label {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Label{text: placeholder}
}

// Set overwrites the label text.
func (l *Label) Set(text string) {
	l.text = text
}

// Text returns the current label text.
func (l *Label) Text() string {
	return l.text
}
