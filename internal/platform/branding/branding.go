// Package branding centralizes product naming for user-facing surfaces.
package branding

// AppName is the product display name used in page titles, og:site_name,
// and the default footer of rendered cards.
const AppName = "EmbedCard"
