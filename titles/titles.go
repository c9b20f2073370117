// Package titles discovers installed applications under the emulated
// filesystem. Each title lives at ux0/app/<TITLE_ID> with its metadata in
// sce_sys/param.sfo.
package titles

import (
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/kevinmel2000/Vita3K/sfo"
)

// Title is one installed application.
type Title struct {
	ID    string
	Title string
}

// Scan walks prefPath/ux0/app and returns every title with a readable
// param.sfo, sorted by display title. Directories with missing or broken
// metadata are skipped, not fatal; a half-installed title should not keep
// the selector from showing the rest.
func Scan(prefPath string, log *zap.Logger) []Title {
	if log == nil {
		log = zap.NewNop()
	}

	appDir := filepath.Join(prefPath, "ux0", "app")
	entries, err := os.ReadDir(appDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("cannot read app directory", zap.String("dir", appDir), zap.Error(err))
		}
		return nil
	}

	var out []Title
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}

		id := e.Name()
		sfoPath := filepath.Join(appDir, id, "sce_sys", "param.sfo")
		data, err := os.ReadFile(sfoPath)
		if err != nil {
			log.Debug("title without param.sfo", zap.String("title_id", id), zap.Error(err))
			continue
		}

		f, err := sfo.Parse(data)
		if err != nil {
			log.Warn("broken param.sfo", zap.String("title_id", id), zap.Error(err))
			continue
		}

		name, ok := f.Get("TITLE")
		if !ok {
			name = id
		}
		out = append(out, Title{ID: id, Title: name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}
