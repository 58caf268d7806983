package entity

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_AppendTruncatesFromFront(t *testing.T) {
	var h History
	for i := 0; i < DefaultHistoryLimit+37; i++ {
		h = h.Append(fmt.Sprintf("http://site%d.com", i), DefaultHistoryLimit)
		require.LessOrEqual(t, len(h), DefaultHistoryLimit)
	}

	assert.Len(t, h, DefaultHistoryLimit)
	assert.Equal(t, "http://site37.com", h[0].URL)
	assert.Equal(t, fmt.Sprintf("http://site%d.com", DefaultHistoryLimit+36), h.Last())
}

func TestHistory_AppendKeepsDuplicates(t *testing.T) {
	h := NewHistory("http://a.com").Append("http://a.com", 10)
	assert.Equal(t, []string{"http://a.com", "http://a.com"}, h.URLs())
}

func TestHistory_TruncateDoesNotAlias(t *testing.T) {
	h := NewHistory("a", "b", "c")
	kept := h.Truncate(2)
	kept[0].URL = "x"
	assert.Equal(t, "b", h[1].URL)
}

func TestHistory_JSONIsStringArray(t *testing.T) {
	data, err := json.Marshal(NewHistory("http://a.com", "http://b.org"))
	require.NoError(t, err)
	assert.JSONEq(t, `["http://a.com","http://b.org"]`, string(data))

	var back History
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []string{"http://a.com", "http://b.org"}, back.URLs())
}

func TestSessionState_JSON(t *testing.T) {
	data, err := json.Marshal(SessionState{})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	var s SessionState
	require.NoError(t, json.Unmarshal([]byte(`["u1","u2"]`), &s))
	assert.Equal(t, []string{"u1", "u2"}, s.URLs)

	assert.Error(t, json.Unmarshal([]byte(`{"urls":1}`), &s))
}

func TestBookmarks_Remove(t *testing.T) {
	bs := Bookmarks{NewBookmark("A", "http://a"), NewBookmark("", "http://b")}
	assert.Equal(t, "http://b", bs[1].Title)

	out, ok := bs.Remove(0)
	require.True(t, ok)
	assert.Equal(t, []string{"http://b"}, out.URLs())
	assert.Len(t, bs, 2)

	_, ok = bs.Remove(5)
	assert.False(t, ok)
}

func TestTab_DisplayTitle(t *testing.T) {
	tab := NewTab("t1", "")
	assert.Equal(t, "New Tab", tab.DisplayTitle())
	tab.URL = "http://a.com"
	assert.Equal(t, "http://a.com", tab.DisplayTitle())
	tab.Title = "A"
	assert.Equal(t, "A", tab.DisplayTitle())
	assert.Equal(t, "created", tab.State.String())
}
