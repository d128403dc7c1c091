package embed

import (
	"embed"
	"io/fs"
)

//go:embed static
var assetsFS embed.FS

func subStaticFS() (fs.FS, error) {
	return fs.Sub(assetsFS, "static")
}
