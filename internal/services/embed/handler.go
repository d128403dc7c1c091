package embed

import (
	"bytes"
	"fmt"
	"html"
	"log"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/embedcard/internal/card"
	"github.com/louisbranch/embedcard/internal/platform/branding"
	"github.com/louisbranch/embedcard/internal/services/embed/templates"
)

const tracerName = "github.com/louisbranch/embedcard/internal/services/embed"

// Cache lifetimes for the two embed variants, in seconds. Crawlers
// re-fetch aggressively, so the canonical variant stays short while the
// legacy variant is considered stable.
const (
	cacheMaxAgeCanonical = 300
	cacheMaxAgeLegacy    = 3600
	cacheStaleWindow     = 86400
)

// cardPolicy selects the composition and caching behavior for a route.
type cardPolicy struct {
	// MergeFooter applies the footer-merge truncation algorithm. When
	// false the footer renders as a separate visual block instead.
	MergeFooter bool
	// CacheMaxAge is the public max-age in seconds.
	CacheMaxAge int
}

type handler struct {
	appName string
}

// NewHandler builds the HTTP handler for the embed server.
func NewHandler(cfg Config) (http.Handler, error) {
	staticFS, err := subStaticFS()
	if err != nil {
		return nil, fmt.Errorf("resolve static assets: %w", err)
	}

	appName := strings.TrimSpace(cfg.AppName)
	if appName == "" {
		appName = branding.AppName
	}
	h := &handler{appName: appName}

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	mux.HandleFunc("/embed", h.handleEmbed)
	mux.HandleFunc("/embed/plain", h.handleEmbedPlain)
	mux.HandleFunc("/healthz", handleHealthz)
	mux.HandleFunc("/", handleRoot)
	return mux, nil
}

// handleEmbed renders the canonical card with the footer merged into the
// description under the character budget.
func (h *handler) handleEmbed(w http.ResponseWriter, r *http.Request) {
	h.renderCard(w, r, cardPolicy{MergeFooter: true, CacheMaxAge: cacheMaxAgeCanonical})
}

// handleEmbedPlain renders the legacy simplified variant: the footer is
// kept out of the description and shown as its own block.
func (h *handler) handleEmbedPlain(w http.ResponseWriter, r *http.Request) {
	h.renderCard(w, r, cardPolicy{MergeFooter: false, CacheMaxAge: cacheMaxAgeLegacy})
}

// renderCard composes and writes the embed document. Invalid fields never
// fail the request; the composer substitutes fallbacks so crawlers always
// receive a 200 with sanitized content.
func (h *handler) renderCard(w http.ResponseWriter, r *http.Request, policy cardPolicy) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "embed.render")
	defer span.End()

	params := card.ParamsFromQuery(r.URL.Query())
	var output card.Output
	if policy.MergeFooter {
		output = card.Compose(params)
	} else {
		output = card.ComposePlain(params)
	}
	span.SetAttributes(
		attribute.Bool("embed.footer_merged", policy.MergeFooter),
		attribute.Bool("embed.has_image", output.ImageURL != ""),
	)

	view := templates.CardView{
		AppName:         html.EscapeString(h.appName),
		Title:           output.Title,
		Description:     output.Description,
		FooterText:      output.FooterText,
		ImageURL:        output.ImageURL,
		ImageType:       output.ImageType,
		PageURL:         html.EscapeString(requestURL(r)),
		Locale:          resolveLocale(r),
		ShowFooterBlock: !policy.MergeFooter && output.FooterText != "",
	}

	var buf bytes.Buffer
	if err := templates.Page(view).Render(ctx, &buf); err != nil {
		log.Printf("render embed page: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "SAMEORIGIN")
	w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", policy.CacheMaxAge, cacheStaleWindow))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// handleRoot sends bare process hits to the canonical embed endpoint,
// preserving any query string so shared root links still unfurl.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	target := card.EmbedPath
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// requestURL rebuilds the absolute URL of the request for og:url, using
// the forwarded proto header when the service sits behind a proxy.
func requestURL(r *http.Request) string {
	scheme := "https"
	if proto := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); proto != "" {
		scheme = proto
	} else if r.TLS == nil {
		scheme = "http"
	}
	host := strings.TrimSpace(r.Host)
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, r.URL.RequestURI())
}
