package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/embedkit"
	"github.com/fwojciec/embedkit/goquery"
	embedhtml "github.com/fwojciec/embedkit/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta property="og:title" content="Hello World">
	<meta name="Description" content="A short page">
	<meta name="twitter:image" value="/card.png">
	<link rel="Canonical" href="https://example.com/Hello">
	<link rel="icon">
	<link href="/style.css">
	<link rel="alternate" type="application/rss+xml" href="/feed.xml">
</head>
<body>
	<p>Body <meta itemprop="position" content="1"></p>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("parses HTML into a document", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(strings.NewReader(page))

		require.NoError(t, err)
		assert.Len(t, doc.ElementsByTagName("meta"), 5)
		assert.Len(t, doc.ElementsByTagName("link"), 4)
	})

	t.Run("parses empty input", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, doc.ElementsByTagName("meta"))
	})
}

func TestDocument_ElementsByTagName(t *testing.T) {
	t.Parallel()

	t.Run("returns elements in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(page)
		require.NoError(t, err)

		links := doc.ElementsByTagName("link")

		require.Len(t, links, 4)
		assert.Equal(t, "Canonical", links[0].Attr("rel"))
		assert.Equal(t, "/feed.xml", links[3].Attr("href"))
	})

	t.Run("includes nested elements in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(page)
		require.NoError(t, err)

		metas := doc.ElementsByTagName("meta")

		require.Len(t, metas, 5)
		assert.Equal(t, "utf-8", metas[0].Attr("charset"))
		assert.Equal(t, "position", metas[4].Attr("itemprop"))
	})

	t.Run("matches tag names case-insensitively", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(page)
		require.NoError(t, err)

		assert.Len(t, doc.ElementsByTagName("LINK"), 4)
	})

	t.Run("returns nil for empty tag name", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocumentFromString(page)
		require.NoError(t, err)

		assert.Nil(t, doc.ElementsByTagName(""))
	})
}

func TestElement_Attr(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromString(`<link rel="icon" href="">`)
	require.NoError(t, err)

	links := doc.ElementsByTagName("link")
	require.Len(t, links, 1)
	link := links[0]

	assert.Equal(t, "icon", link.Attr("rel"))
	assert.True(t, link.HasAttr("href"))
	assert.Empty(t, link.Attr("href"))
	assert.False(t, link.HasAttr("type"))
	assert.Empty(t, link.Attr("type"))

	el, ok := link.(*goquery.Element)
	require.True(t, ok)
	assert.Equal(t, 1, el.Selection().Length())
}

func TestExtract_WithGoqueryDocument(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromString(page)
	require.NoError(t, err)

	t.Run("extracts normalized metas", func(t *testing.T) {
		t.Parallel()

		metas := embedkit.ExtractMetas(doc)

		require.Len(t, metas, 5)
		assert.Empty(t, metas[0].Name)
		assert.Equal(t, "og:title", metas[1].Name)
		assert.Equal(t, "Hello World", metas[1].Value)
		assert.Equal(t, "description", metas[2].Name)
		assert.Equal(t, "twitter:image", metas[3].Name)
		assert.Equal(t, "/card.png", metas[3].Value)
	})

	t.Run("extracts only complete links", func(t *testing.T) {
		t.Parallel()

		links := embedkit.ExtractLinks(doc)

		require.Len(t, links, 2)
		assert.Equal(t, "canonical", links[0].Rel)
		assert.Equal(t, "https://example.com/Hello", links[0].Href)
		assert.Equal(t, "alternate", links[1].Rel)
		assert.Equal(t, "application/rss+xml", links[1].Element.Attr("type"))
	})
}

func TestExtractLinks_RenderedLinkRoundTrip(t *testing.T) {
	t.Parallel()

	rendered := embedhtml.Element("link", embedhtml.Attributes{
		embedhtml.Attr("rel", embedhtml.Text(" Alternate ")),
		embedhtml.Attr("href", embedhtml.Text("/feed.xml?a=1&b=2")),
	})

	doc, err := goquery.NewDocumentFromString("<html><head>" + rendered + "</head></html>")
	require.NoError(t, err)

	links := embedkit.ExtractLinks(doc)

	require.Len(t, links, 1)
	assert.Equal(t, "alternate", links[0].Rel)
	assert.Equal(t, "/feed.xml?a=1&b=2", links[0].Href)
}
