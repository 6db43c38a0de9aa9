package core

import (
	"path"
	"strings"
)

// OutputPathForRoute maps a route to the file a static host serves for it:
// "/" becomes "index.html", "/promo" becomes "promo/index.html".
func OutputPathForRoute(route string) string {
	route = NormalizePath(route)
	name := strings.Trim(path.Clean(route), "/")
	if name == "" || name == "." {
		return "index.html"
	}
	return name + "/index.html"
}
