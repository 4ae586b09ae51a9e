package htmlutil

import (
	"context"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("lapchart.lib.htmlutil")

// WalkText calls `fn` for every text node under `node` in document order,
// stopping as soon as `fn` returns false.
func WalkText(node *html.Node, fn func(text *html.Node) bool) bool {
	if node == nil {
		return true
	}
	if node.Type == html.TextNode {
		return fn(node)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !WalkText(child, fn) {
			return false
		}
	}
	return true
}

// GetText concatenates every text node under `node`.
func GetText(node *html.Node) string {
	var sb strings.Builder
	WalkText(node, func(text *html.Node) bool {
		sb.WriteString(text.Data)
		return true
	})
	return sb.String()
}

// NormalizeText drops non printable runes and collapses whitespace to single spaces.
func NormalizeText(s string) string {
	printable := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.Join(strings.Fields(printable), " ")
}

type Anchor struct {
	Text string
	Href string
}

// GetAnchors returns the text and raw href of every element in `sel`,
// elements without an href are skipped.
func GetAnchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	_, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	sel.Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		anchor := Anchor{Text: NormalizeText(a.Text()), Href: href}
		anchors = append(anchors, anchor)

		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("text", anchor.Text),
			attribute.String("href", anchor.Href),
		))
	})
	return anchors
}
