// Package templates renders the embed card document. Every view field is
// HTML-escaped by the caller before it reaches this package; components
// write the values verbatim.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Open Graph image dimensions expected by link-unfurling crawlers.
const (
	ogImageWidth  = 1200
	ogImageHeight = 630
)

// CardView holds the pre-escaped values for one embed document.
type CardView struct {
	// AppName is the product display name, used for og:site_name and the
	// preview card attribution line.
	AppName string
	// Title is the card headline.
	Title string
	// Description is the composed description, footer included when the
	// merge policy applied.
	Description string
	// FooterText is the footer content without markdown wrapping.
	FooterText string
	// ImageURL is the card image, empty when absent.
	ImageURL string
	// ImageType is the MIME-type hint for og:image:type.
	ImageType string
	// PageURL is the absolute URL of the current request for og:url.
	PageURL string
	// Locale is the og:locale value in underscore form.
	Locale string
	// ShowFooterBlock renders the footer as a separate visual block
	// instead of relying on the merged description.
	ShowFooterBlock bool
}

// docWriter accumulates the first write error so components can emit a
// document without checking every line.
type docWriter struct {
	w   io.Writer
	err error
}

func (d *docWriter) line(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format+"\n", args...)
}

// Page renders the full embed document for the view.
func Page(view CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := &docWriter{w: w}
		d.line(`<!DOCTYPE html>`)
		d.line(`<html lang="en">`)
		head(d, view)
		body(d, view)
		d.line(`</html>`)
		return d.err
	})
}

func head(d *docWriter, view CardView) {
	d.line(`<head>`)
	d.line(`<meta charset="utf-8">`)
	d.line(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	d.line(`<title>%s</title>`, view.Title)
	d.line(`<meta name="description" content="%s">`, view.Description)
	openGraph(d, view)
	twitterCard(d, view)
	d.line(`<link rel="stylesheet" href="/static/card.css">`)
	d.line(`</head>`)
}

func openGraph(d *docWriter, view CardView) {
	d.line(`<meta property="og:type" content="website">`)
	d.line(`<meta property="og:url" content="%s">`, view.PageURL)
	d.line(`<meta property="og:site_name" content="%s">`, view.AppName)
	d.line(`<meta property="og:title" content="%s">`, view.Title)
	d.line(`<meta property="og:description" content="%s">`, view.Description)
	d.line(`<meta property="og:locale" content="%s">`, view.Locale)
	if view.ImageURL == "" {
		return
	}
	d.line(`<meta property="og:image" content="%s">`, view.ImageURL)
	d.line(`<meta property="og:image:secure_url" content="%s">`, view.ImageURL)
	d.line(`<meta property="og:image:width" content="%d">`, ogImageWidth)
	d.line(`<meta property="og:image:height" content="%d">`, ogImageHeight)
	d.line(`<meta property="og:image:type" content="%s">`, view.ImageType)
	d.line(`<meta property="og:image:alt" content="%s">`, view.Title)
}

func twitterCard(d *docWriter, view CardView) {
	cardKind := "summary"
	if view.ImageURL != "" {
		cardKind = "summary_large_image"
	}
	d.line(`<meta name="twitter:card" content="%s">`, cardKind)
	d.line(`<meta name="twitter:title" content="%s">`, view.Title)
	d.line(`<meta name="twitter:description" content="%s">`, view.Description)
	if view.ImageURL == "" {
		return
	}
	d.line(`<meta name="twitter:image" content="%s">`, view.ImageURL)
	d.line(`<meta name="twitter:image:alt" content="%s">`, view.Title)
}

func body(d *docWriter, view CardView) {
	d.line(`<body>`)
	d.line(`<main class="card">`)
	if view.ImageURL != "" {
		d.line(`<img class="card-image" src="%s" alt="%s">`, view.ImageURL, view.Title)
	}
	d.line(`<div class="card-body">`)
	d.line(`<h1 class="card-title">%s</h1>`, view.Title)
	d.line(`<p class="card-description">%s</p>`, view.Description)
	if view.ShowFooterBlock {
		d.line(`<footer class="card-footer">%s</footer>`, view.FooterText)
	}
	d.line(`<p class="card-meta">%s</p>`, view.AppName)
	d.line(`</div>`)
	d.line(`</main>`)
	d.line(`</body>`)
}
