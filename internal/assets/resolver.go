package assets

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"slices"
	"strings"

	"github.com/3-lines-studio/banner/internal/component"
	"github.com/3-lines-studio/banner/internal/core"
)

const DefaultMaxAge = 3600

var ErrMissingAsset = errors.New("asset not found")

type Handler struct {
	fsys   fs.FS
	maxAge int
}

func NewHandler(fsys fs.FS, maxAge int) http.Handler {
	return &Handler{
		fsys:   fsys,
		maxAge: maxAge,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path := req.URL.Path
	if err := core.ValidateAssetPath(path); err != nil {
		http.NotFound(w, req)
		return
	}

	file, err := h.fsys.Open(core.FSPath(path))
	if err != nil {
		http.NotFound(w, req)
		return
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	if h.maxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.maxAge))
	}

	if rs, ok := file.(io.ReadSeeker); ok {
		http.ServeContent(w, req, info.Name(), info.ModTime(), rs)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(data)
}

// Referenced returns the distinct asset paths the banner points at, in
// render order.
func Referenced(c component.Content) []string {
	paths := make([]string, 0, 3)
	for _, img := range c.Images() {
		if !slices.Contains(paths, img.Src) {
			paths = append(paths, img.Src)
		}
	}
	return paths
}

func Exists(fsys fs.FS, path string) bool {
	if core.ValidateAssetPath(path) != nil {
		return false
	}
	info, err := fs.Stat(fsys, core.FSPath(path))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Check reports every path missing from fsys.
func Check(fsys fs.FS, paths []string) error {
	var missing []string
	for _, p := range paths {
		if !Exists(fsys, p) {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingAsset, strings.Join(missing, ", "))
	}
	return nil
}
