package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subjectbrowser/subject/internal/application/usecase"
	"github.com/subjectbrowser/subject/internal/domain/url"
)

func TestNavigateUseCase_Resolve(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewNavigateUseCase("https://duckduckgo.com/?q=%s", "")

	assert.Equal(t, "https://duckduckgo.com/?q=cats", uc.Resolve(ctx, "cats"))
	assert.Equal(t, "http://example.com", uc.Resolve(ctx, "example.com"))
	assert.Equal(t, "", uc.Resolve(ctx, "  "))
	assert.Equal(t, url.HomePage, uc.HomePage())

	uc.SetSearchEngine("")
	assert.Equal(t, url.DefaultSearchEngine+"cats", uc.Resolve(ctx, "cats"))

	uc.SetHomePage("https://start.example")
	assert.Equal(t, "https://start.example", uc.HomePage())
}

func TestNavigateUseCase_Intercept(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewNavigateUseCase("", "")

	tests := []struct {
		name     string
		uri      string
		expected usecase.Interception
	}{
		{
			name:     "plain web url",
			uri:      "https://example.com",
			expected: usecase.Interception{},
		},
		{
			name: "single slash search",
			uri:  "subject:/search/foo",
			expected: usecase.Interception{
				Rewrite: url.DefaultSearchEngine + "foo", Internal: true, Query: "foo",
			},
		},
		{
			name: "triple slash search",
			uri:  "subject:///search/foo",
			expected: usecase.Interception{
				Rewrite: url.DefaultSearchEngine + "foo", Internal: true, Query: "foo",
			},
		},
		{
			name: "escaped query",
			uri:  "subject://search/hello%20world",
			expected: usecase.Interception{
				Rewrite: url.DefaultSearchEngine + "hello world", Internal: true, Query: "hello world",
			},
		},
		{
			name:     "new tab page",
			uri:      url.HomePage,
			expected: usecase.Interception{Internal: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, uc.Intercept(ctx, tt.uri))
		})
	}
}
