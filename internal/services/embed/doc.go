// Package embed hosts the public HTTP surface that renders shareable
// preview cards. It turns four query parameters into a self-contained
// HTML document carrying Open Graph and Twitter Card metadata, always
// answering 200 with best-effort sanitized content.
package embed
