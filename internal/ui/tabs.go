package ui

import "context"

// tabCloser is the part of the tab manager the close paths use.
type tabCloser interface {
	CloseTab(ctx context.Context, index int) (wasLast bool, err error)
}

// closeTabAt closes the tab at index and reports whether the window goes with it.
// A negative index means the page already left the notebook and is ignored.
func closeTabAt(ctx context.Context, tabs tabCloser, index int) (closeWindow bool, err error) {
	if index < 0 {
		return false, nil
	}
	return tabs.CloseTab(ctx, index)
}
