package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, fragment string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	require.NoError(t, err)
	return doc
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()
		out, err := Render("# Hello\r\n\r\nSome *text*   \r\n\r\n- one\n- two\n")
		require.NoError(t, err)
		doc := parse(t, out)
		assert.Equal(t, "Hello", doc.Find("h1").Text())
		assert.Equal(t, "text", doc.Find("p em").Text())
		assert.Equal(t, 2, doc.Find("ul li").Length())
	})

	t.Run("raw html is dropped", func(t *testing.T) {
		t.Parallel()
		out, err := Render("<script>alert(1)</script>\n\nhi <img src=x onerror=alert(1)>")
		require.NoError(t, err)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "onerror")
		assert.Contains(t, out, "hi")
	})

	t.Run("external links open in a new tab", func(t *testing.T) {
		t.Parallel()
		out, err := Render("[example](https://example.com)")
		require.NoError(t, err)
		link := parse(t, out).Find("a")
		require.Equal(t, 1, link.Length())
		assert.Equal(t, "https://example.com", link.AttrOr("href", ""))
		assert.Equal(t, "_blank", link.AttrOr("target", ""))
		assert.Contains(t, link.AttrOr("rel", ""), "noreferrer")
	})

	t.Run("script links are stripped", func(t *testing.T) {
		t.Parallel()
		out, err := Render("[click](javascript:alert(1))")
		require.NoError(t, err)
		assert.NotContains(t, out, "javascript")
	})

	t.Run("images are stripped", func(t *testing.T) {
		t.Parallel()
		out, err := Render("![alt](https://example.com/cat.png)")
		require.NoError(t, err)
		assert.Equal(t, 0, parse(t, out).Find("img").Length())
	})
}

func TestScrubHTML(t *testing.T) {
	t.Parallel()
	scrub := ScrubHTML()

	out, err := scrub([]byte("<p>a</p><p><br> </p><p>b<br><br><br><br>c</p><p><em> </em>d</p>"))
	require.NoError(t, err)
	doc := parse(t, string(out))
	assert.Equal(t, 3, doc.Find("p").Length())
	assert.Equal(t, 2, doc.Find("br").Length())
	assert.Equal(t, 0, doc.Find("em").Length())
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	text, err := PlainText([]byte("<h1>Title</h1><p>one\n  two</p><ul><li>a</li><li>b</li></ul>"))
	require.NoError(t, err)
	assert.Equal(t, "Title one two a b", text)
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		limit int
		want  string
	}{
		{
			name:  "short body unchanged",
			body:  "Just **one** line.",
			limit: 100,
			want:  "Just one line.",
		},
		{
			name:  "cut on word boundary",
			body:  "Hello **world**, this is a long post.",
			limit: 12,
			want:  "Hello world…",
		},
		{
			name:  "cut mid word backs up",
			body:  "Hello world, this is a long post.",
			limit: 9,
			want:  "Hello…",
		},
		{
			name:  "counts characters",
			body:  "Ünïcödé wörds everywhere",
			limit: 13,
			want:  "Ünïcödé wörds…",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := Excerpt(test.body, test.limit)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()

	upper := TransformerFunc(func(in []byte) ([]byte, error) { return []byte(strings.ToUpper(string(in))), nil })
	exclaim := TransformerFunc(func(in []byte) ([]byte, error) { return append(in, '!'), nil })
	fail := TransformerFunc(func([]byte) ([]byte, error) { return nil, assert.AnError })

	out, err := Chain(upper, exclaim)([]byte("hi"))
	require.NoError(t, err)
	assert.Equal(t, "HI!", string(out))

	_, err = Chain(upper, fail, exclaim)([]byte("hi"))
	require.ErrorIs(t, err, assert.AnError)
}
