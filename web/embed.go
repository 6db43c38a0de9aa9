package web

import (
	"embed"
	"io/fs"
)

//go:embed all:public
var files embed.FS

// Public is the asset host root: "images/ahc-products.png" and friends.
func Public() fs.FS {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
