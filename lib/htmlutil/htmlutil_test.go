package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const fixture = `<html><body>
<div class="doc">
	<a href="/docs/classification.pdf">  Race
		Classification </a>
	<a>no href</a>
	<a href="/docs/chart.pdf">2024 Lap Chart</a>
</div>
</body></html>`

func parse(t *testing.T, src string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestGetAnchors(t *testing.T) {
	doc := parse(t, fixture)
	anchors := GetAnchors(context.Background(), doc.Find("a"))

	require.Equal(t, []Anchor{
		{Text: "Race Classification", Href: "/docs/classification.pdf"},
		{Text: "2024 Lap Chart", Href: "/docs/chart.pdf"},
	}, anchors)
}

func TestWalkTextStopsEarly(t *testing.T) {
	doc := parse(t, `<p>one<b>two</b>three</p>`)

	var seen []string
	WalkText(doc.Nodes[0], func(text *html.Node) bool {
		seen = append(seen, text.Data)
		return text.Data != "two"
	})
	require.Equal(t, []string{"one", "two"}, seen)
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "Lap Chart", NormalizeText("\n\t Lap   ​Chart \n"))
}

func TestGetText(t *testing.T) {
	doc := parse(t, `<div><span>Lap</span> <i>Chart</i></div>`)
	require.Equal(t, "Lap Chart", GetText(doc.Find("div").Nodes[0]))
}
