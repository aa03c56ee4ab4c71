package blogpub

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// transformContent prepares raw HTML for submission as post content.
// It strips <header> elements, inlines local images as data URIs, and, when
// the input is a full HTML document, reduces it to the head's <style>
// elements followed by the inner content of <body>. Fragments pass through
// with only the header/image rewrites applied.
//
// baseDir resolves relative image references; empty means the working
// directory.
func (p *Publisher) transformContent(rawHTML, baseDir string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("header").Remove()
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		p.inlineImage(img, baseDir)
	})

	// The parser always wraps input in html/head/body, so both full
	// documents and fragments serialize the same way: any <style> hoisted
	// into the head (verbatim, in order), then the body's inner content.
	var b strings.Builder
	doc.Find("head style").Each(func(_ int, s *goquery.Selection) {
		markup, err := goquery.OuterHtml(s)
		if err != nil {
			return
		}
		b.WriteString(markup)
	})

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return "", fmt.Errorf("serialize body: %w", err)
	}
	b.WriteString(body)

	return b.String(), nil
}

// inlineImage replaces a local img src with a data URI. External references
// (http/https) and existing data URIs are left untouched, as are references
// to files that do not exist or fail to encode.
func (p *Publisher) inlineImage(img *goquery.Selection, baseDir string) {
	src, ok := img.Attr("src")
	if !ok || src == "" {
		return
	}
	if strings.HasPrefix(src, "http") || strings.HasPrefix(src, "data:") {
		return
	}

	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, src)
	}
	if _, err := os.Stat(path); err != nil {
		return
	}

	if uri := p.encodeImage(path); uri != "" {
		img.SetAttr("src", uri)
	}
}
