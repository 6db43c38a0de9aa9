package banner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/3-lines-studio/banner/internal/assets"
	"github.com/3-lines-studio/banner/internal/component"
	"github.com/3-lines-studio/banner/internal/core"
)

type ExportResult struct {
	Dir     string
	Files   []string
	Missing []string
}

// Export writes the rendered page and the assets it references to dir.
// Missing assets are reported, not fatal: resolving them is the asset
// host's job.
func (a *App) Export(dir string) (ExportResult, error) {
	result := ExportResult{Dir: dir}

	html, err := a.RenderPage()
	if err != nil {
		return result, fmt.Errorf("failed to render page: %w", err)
	}

	pagePath := core.OutputPathForRoute(a.config.Route)
	if err := writeFile(dir, pagePath, []byte(html)); err != nil {
		return result, err
	}
	result.Files = append(result.Files, pagePath)

	for _, ref := range assets.Referenced(component.Default()) {
		if !assets.Exists(a.assetsFS, ref) {
			result.Missing = append(result.Missing, ref)
			continue
		}

		data, err := fs.ReadFile(a.assetsFS, core.FSPath(ref))
		if err != nil {
			return result, fmt.Errorf("failed to read asset %s: %w", ref, err)
		}

		if err := writeFile(dir, core.FSPath(ref), data); err != nil {
			return result, err
		}
		result.Files = append(result.Files, core.FSPath(ref))
	}

	return result, nil
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
