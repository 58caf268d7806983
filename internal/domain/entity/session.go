package entity

import "encoding/json"

// SessionState is the ordered list of open tab URLs captured at the last save.
// It is serialized as a bare JSON array of strings.
type SessionState struct {
	URLs []string
}

// NewSessionState copies urls into a new state.
func NewSessionState(urls []string) SessionState {
	cp := make([]string, len(urls))
	copy(cp, urls)
	return SessionState{URLs: cp}
}

// IsEmpty reports whether no tabs were saved.
func (s SessionState) IsEmpty() bool {
	return len(s.URLs) == 0
}

// MarshalJSON writes the URL list; a nil list is written as [].
func (s SessionState) MarshalJSON() ([]byte, error) {
	if s.URLs == nil {
		return []byte("[]"), nil
	}
	return marshalRaw(s.URLs)
}

// UnmarshalJSON reads a JSON array of strings.
func (s *SessionState) UnmarshalJSON(data []byte) error {
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return err
	}
	s.URLs = urls
	return nil
}
