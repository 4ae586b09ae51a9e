package fia

import (
	"context"
	"fmt"
	"lapchart-scraper/lib/htmlutil"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("lapchart.internal.fia")

const lapChartText = "Lap Chart"

var pdfHrefRegex = regexp.MustCompile(`\.pdf$`)

// Matcher is a single strategy for finding the lap chart link on an event
// page. It returns the raw (possibly relative) href.
type Matcher struct {
	Name  string
	Match func(ctx context.Context, doc *goquery.Document) (string, bool)
}

// Matchers is tried in order by FindLapChartLink, the first hit wins.
var Matchers = []Matcher{
	{Name: "anchor-text", Match: matchAnchorText},
	{Name: "text-node-parent", Match: matchTextNodeParent},
	{Name: "title-container", Match: matchTitleContainer},
}

// FindLapChartLink runs every matcher in Matchers against `doc` and returns
// the href of the first one that finds a link.
func FindLapChartLink(ctx context.Context, doc *goquery.Document) (string, bool) {
	for _, m := range Matchers {
		ctx, span := tracer.Start(ctx, "match:"+m.Name)
		href, ok := m.Match(ctx, doc)
		span.SetAttributes(attribute.Bool("found", ok))
		if ok {
			span.SetAttributes(attribute.String("href", href))
		}
		span.End()

		if ok {
			return href, true
		}
	}
	return "", false
}

// PDFAnchors returns every anchor under `sel` whose href ends in ".pdf".
func PDFAnchors(ctx context.Context, sel *goquery.Selection) []htmlutil.Anchor {
	anchors := htmlutil.GetAnchors(ctx, sel.Find("a"))
	out := anchors[:0]
	for _, a := range anchors {
		if pdfHrefRegex.MatchString(a.Href) {
			out = append(out, a)
		}
	}
	return out
}

func firstPDFHref(ctx context.Context, sel *goquery.Selection) (string, bool) {
	anchors := PDFAnchors(ctx, sel)
	if len(anchors) == 0 {
		return "", false
	}
	return anchors[0].Href, true
}

// the link text itself says "Lap Chart"
func matchAnchorText(ctx context.Context, doc *goquery.Document) (string, bool) {
	for _, a := range PDFAnchors(ctx, doc.Selection) {
		if strings.Contains(a.Text, lapChartText) {
			return a.Href, true
		}
	}
	return "", false
}

// a text node says "Lap Chart" and its parent element holds a pdf link
func matchTextNodeParent(ctx context.Context, doc *goquery.Document) (string, bool) {
	var href string
	for _, root := range doc.Nodes {
		htmlutil.WalkText(root, func(text *html.Node) bool {
			if !strings.Contains(text.Data, lapChartText) || text.Parent == nil {
				return true
			}
			found, ok := firstPDFHref(ctx, doc.FindNodes(text.Parent))
			if ok {
				href = found
				return false
			}
			return true
		})
		if href != "" {
			return href, true
		}
	}
	return "", false
}

// a div.title says "Lap Chart" and its parent element holds a pdf link
func matchTitleContainer(ctx context.Context, doc *goquery.Document) (string, bool) {
	var href string
	doc.Find("div.title").EachWithBreak(func(_ int, title *goquery.Selection) bool {
		if !strings.Contains(title.Text(), lapChartText) {
			return true
		}
		found, ok := firstPDFHref(ctx, title.Parent())
		if ok {
			href = found
			return false
		}
		return true
	})
	return href, href != ""
}

// ResolveLink makes `link` absolute against the scheme and host of `pageUrl`.
// Relative links (with or without a leading slash) are always resolved from
// the site root, never from the page's own path.
func ResolveLink(pageUrl, link string) (string, error) {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link, nil
	}

	page, err := url.Parse(pageUrl)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}
	if page.Scheme == "" || page.Host == "" {
		return "", fmt.Errorf("page url %q is not absolute", pageUrl)
	}

	if strings.HasPrefix(link, "//") {
		return page.Scheme + ":" + link, nil
	}
	base := page.Scheme + "://" + page.Host
	if strings.HasPrefix(link, "/") {
		return base + link, nil
	}
	return base + "/" + link, nil
}
