package card

import (
	"net/url"
	"testing"
)

func TestBuildShareableURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params Params
		want   string
	}{
		{
			name:   "title only",
			params: Params{Title: "X"},
			want:   "/embed?title=X",
		},
		{
			name:   "all fields",
			params: Params{Title: "T", Description: "D", Footer: "F", Image: "https://example.com/a.png"},
			want:   "/embed?title=T&desc=D&footer=F&image=https%3A%2F%2Fexample.com%2Fa.png",
		},
		{
			name:   "skips empty keys",
			params: Params{Description: "D", Image: "https://example.com/a.png"},
			want:   "/embed?desc=D&image=https%3A%2F%2Fexample.com%2Fa.png",
		},
		{
			name:   "escapes reserved characters",
			params: Params{Title: "a b&c"},
			want:   "/embed?title=a+b%26c",
		},
		{
			name:   "empty params",
			params: Params{},
			want:   "/embed",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := BuildShareableURL(tt.params); got != tt.want {
				t.Fatalf("BuildShareableURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParamsFromQuery(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("title", "T")
	values.Set("desc", "D")
	values.Set("footer", "F")
	values.Set("image", "https://example.com/a.png")

	params := ParamsFromQuery(values)
	want := Params{Title: "T", Description: "D", Footer: "F", Image: "https://example.com/a.png"}
	if params != want {
		t.Fatalf("ParamsFromQuery() = %+v, want %+v", params, want)
	}
}

func TestParamsFromQueryDefaults(t *testing.T) {
	t.Parallel()

	params := ParamsFromQuery(url.Values{})
	if params != (Params{}) {
		t.Fatalf("ParamsFromQuery(empty) = %+v, want zero params", params)
	}
}

func TestShareableURLRoundTrip(t *testing.T) {
	t.Parallel()

	original := Params{Title: "Hello world", Description: "**bold** & more", Footer: "via embedcard"}
	shared := BuildShareableURL(original)

	parsed, err := url.Parse(shared)
	if err != nil {
		t.Fatalf("parse shared URL: %v", err)
	}
	if parsed.Path != EmbedPath {
		t.Fatalf("path = %q, want %q", parsed.Path, EmbedPath)
	}
	if got := ParamsFromQuery(parsed.Query()); got != original {
		t.Fatalf("round trip = %+v, want %+v", got, original)
	}
}
