package ui

import (
	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
)

// omniboxState tracks the suggestion list under the address bar.
// selected is -1 while the typed text is the current choice.
type omniboxState struct {
	items    []autocomplete.Suggestion
	selected int
}

func newOmniboxState() *omniboxState {
	return &omniboxState{selected: -1}
}

func (s *omniboxState) set(items []autocomplete.Suggestion) {
	s.items = items
	s.selected = -1
}

func (s *omniboxState) clear() {
	s.set(nil)
}

func (s *omniboxState) visible() bool {
	return len(s.items) > 0
}

// move shifts the selection by delta, wrapping through the typed text.
func (s *omniboxState) move(delta int) int {
	n := len(s.items)
	if n == 0 {
		s.selected = -1
		return s.selected
	}
	// positions 0..n-1 are items, n stands for the typed text
	pos := s.selected
	if pos < 0 {
		pos = n
	}
	pos = ((pos+delta)%(n+1) + n + 1) % (n + 1)
	if pos == n {
		s.selected = -1
	} else {
		s.selected = pos
	}
	return s.selected
}

// choice returns the text to navigate to: the selected suggestion, or typed.
func (s *omniboxState) choice(typed string) string {
	if s.selected >= 0 && s.selected < len(s.items) {
		return s.items[s.selected].URL
	}
	return typed
}
