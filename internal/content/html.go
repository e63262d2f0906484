package content

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// SanitizeHTML applies sanitization rules to HTML input, stripping unsupported
// tags and attributes.
func SanitizeHTML() TransformerFunc {
	htmlSanitizer := sanitizer()
	return func(input []byte) ([]byte, error) {
		return htmlSanitizer.SanitizeBytes(input), nil
	}
}

// sanitizer is a modification of [bluemonday.UGCPolicy] for post bodies.
// Differences:
//
//   - Target _blank and noreferrer for links
//   - No figure/image elements (to avoid hot-linking)
//   - No map/area, meter/progress or details elements
func sanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()

	policy.AllowStandardAttributes()

	policy.AllowStandardURLs()
	policy.RequireNoReferrerOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	policy.AllowElements(
		"abbr",
		"b",
		"br",
		"cite",
		"code",
		"dfn",
		"div",
		"em",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"hr",
		"i",
		"mark",
		"p",
		"pre",
		"s",
		"samp",
		"small",
		"strong",
		"sub",
		"sup",
		"u",
		"var",
		"wbr",
	)

	policy.AllowAttrs("cite").
		OnElements(
			"blockquote",
			"q",
		)
	policy.AllowAttrs("cite").
		Matching(bluemonday.Paragraph).
		OnElements(
			"del",
			"ins",
		)

	policy.AllowAttrs("href").
		OnElements("a")

	// goldmark tags fenced code blocks with their language
	policy.AllowAttrs("class").
		Matching(bluemonday.SpaceSeparatedTokens).
		OnElements("code")

	policy.AllowAttrs("datetime").
		Matching(bluemonday.ISO8601).
		OnElements(
			"del",
			"ins",
			"time",
		)

	policy.AllowLists()
	policy.AllowTables()

	return policy
}

// ScrubHTML cleans up markup that renders as noise: empty inline elements,
// blocks holding nothing but line breaks, and long runs of <br>. Should be
// applied after sanitization.
func ScrubHTML() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		body := doc.Find("body")
		if body.Length() == 0 {
			body = doc.Selection
		}
		removeEmptyInlineElements(body)
		removeSpacerBlocks(body)
		collapseExcessiveBRs(body)
		out, err := body.Html()
		if err != nil {
			return nil, fmt.Errorf("failed to render scrubbed HTML: %w", err)
		}
		return []byte(out), nil
	}
}

// PlainText returns the text content of an HTML fragment with whitespace runs
// collapsed to single spaces.
func PlainText(input []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(input))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	// keep block boundaries from gluing words together
	doc.Find("p, br, li, h1, h2, h3, h4, h5, h6, pre, td, th, blockquote").AfterHtml(" ")
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// maxConsecutiveBRs is the maximum number of consecutive <br> elements allowed
// before collapsing occurs.
const maxConsecutiveBRs = 2

var (
	inlineElements = []string{
		"abbr", "b", "cite", "code", "dfn", "em", "i", "mark", "q", "s",
		"samp", "small", "span", "strong", "sub", "sup", "u", "var",
	}
	inlineSelector = strings.Join(inlineElements, ", ")

	blockElements = []string{"blockquote", "div", "p"}
	blockSelector = strings.Join(blockElements, ", ")
)

// removeEmptyInlineElements removes inline elements with no text and no
// element children, such as <em></em>.
func removeEmptyInlineElements(sel *goquery.Selection) {
	// removing an element may leave its parent empty
	for {
		removed := false
		sel.Find(inlineSelector).Each(func(_ int, el *goquery.Selection) {
			if strings.TrimSpace(el.Text()) == "" && el.Children().Length() == 0 {
				el.Remove()
				removed = true
			}
		})
		if !removed {
			break
		}
	}
}

// removeSpacerBlocks removes block elements that hold only <br> elements and
// whitespace, like <p><br></p>.
func removeSpacerBlocks(sel *goquery.Selection) {
	sel.Find(blockSelector).Each(func(_ int, el *goquery.Selection) {
		node := el.Get(0)
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			switch {
			case child.Type == html.TextNode && strings.TrimSpace(child.Data) == "":
			case child.Type == html.ElementNode && child.Data == "br":
			default:
				return
			}
		}
		if el.Find("br").Length() > 0 {
			el.Remove()
		}
	})
}

// collapseExcessiveBRs reduces runs of consecutive <br> elements to
// [maxConsecutiveBRs].
func collapseExcessiveBRs(sel *goquery.Selection) {
	sel.Find("br").Each(func(_ int, br *goquery.Selection) {
		node := br.Get(0)
		if node.Parent == nil {
			return // removed as part of an earlier run
		}
		count := 1
		for sib := node.NextSibling; sib != nil; {
			next := sib.NextSibling
			switch {
			case sib.Type == html.TextNode && strings.TrimSpace(sib.Data) == "":
			case sib.Type == html.ElementNode && sib.Data == "br":
				if count++; count > maxConsecutiveBRs {
					sib.Parent.RemoveChild(sib)
				}
			default:
				return
			}
			sib = next
		}
	})
}
