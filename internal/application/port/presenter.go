package port

// TabPresenter mirrors tab manager state into the toolkit.
// Indexes are positions in the tab strip.
type TabPresenter interface {
	// AddTab inserts the view's widget at index with label.
	AddTab(index int, view WebView, label string)
	// RemoveTab removes the page at index.
	RemoveTab(index int)
	// SelectTab shows the page at index.
	SelectTab(index int)
	// SetTabTitle updates the label of the page at index.
	SetTabTitle(index int, title string)
	// SetAddress replaces the address bar text.
	SetAddress(uri string)
	// ReportError surfaces a recoverable failure to the user.
	ReportError(message string, err error)
}

// NopPresenter ignores every call. Useful before the window exists and in headless runs.
type NopPresenter struct{}

func (NopPresenter) AddTab(int, WebView, string) {}
func (NopPresenter) RemoveTab(int)               {}
func (NopPresenter) SelectTab(int)               {}
func (NopPresenter) SetTabTitle(int, string)     {}
func (NopPresenter) SetAddress(string)           {}
func (NopPresenter) ReportError(string, error)   {}

var _ TabPresenter = NopPresenter{}
