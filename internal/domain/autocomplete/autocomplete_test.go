package autocomplete

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subjectbrowser/subject/internal/domain/entity"
)

func TestSuggest_UnionFilter(t *testing.T) {
	history := entity.NewHistory("http://a.com", "http://b.org")
	bookmarks := entity.Bookmarks{{Title: "ABC", URL: "http://abc.net"}}

	got := URLs(Suggest(history, bookmarks, "a", DefaultLimit))

	assert.ElementsMatch(t, []string{"http://a.com", "http://abc.net"}, got)
	assert.NotContains(t, got, "http://b.org")
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	history := entity.NewHistory("https://GitHub.com/golang")
	got := URLs(Suggest(history, nil, "github", DefaultLimit))
	assert.Equal(t, []string{"https://GitHub.com/golang"}, got)

	got = URLs(Suggest(history, nil, "GOLANG", DefaultLimit))
	assert.Equal(t, []string{"https://GitHub.com/golang"}, got)
}

func TestSuggest_DedupAcrossSources(t *testing.T) {
	history := entity.NewHistory("http://a.com", "http://a.com", "http://x.com")
	bookmarks := entity.Bookmarks{{Title: "A", URL: "http://a.com"}}

	got := Suggest(history, bookmarks, "", DefaultLimit)
	assert.Equal(t, []string{"http://x.com", "http://a.com"}, URLs(got))
	assert.Equal(t, SourceHistory, got[1].Source)
}

func TestSuggest_MostRecentFirstThenBookmarks(t *testing.T) {
	history := entity.NewHistory("http://old.com", "http://new.com")
	bookmarks := entity.Bookmarks{{URL: "http://bm1.com"}, {URL: "http://bm2.com"}}

	got := URLs(Suggest(history, bookmarks, "http", DefaultLimit))
	assert.Equal(t, []string{"http://new.com", "http://old.com", "http://bm1.com", "http://bm2.com"}, got)
}

func TestSuggest_CappedAtLimit(t *testing.T) {
	var history entity.History
	for i := 0; i < 50; i++ {
		history = append(history, entity.HistoryEntry{URL: fmt.Sprintf("http://site%d.com", i)})
	}

	got := Suggest(history, nil, "site", DefaultLimit)
	assert.Len(t, got, DefaultLimit)
	assert.Equal(t, "http://site49.com", got[0].URL)

	assert.Len(t, Suggest(history, nil, "site", 3), 3)
	assert.Len(t, Suggest(history, nil, "site", 0), DefaultLimit)
}

func TestSuggest_NoMatches(t *testing.T) {
	got := Suggest(entity.NewHistory("http://a.com"), nil, "zzz", DefaultLimit)
	assert.Empty(t, got)
}
