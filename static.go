package rawsite

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/copy"
)

// ExportSite copies the generated site to a deployment directory, leaving the
// raw fragments and the template chrome behind.
func (s *Site) ExportSite(dest string) error {
	slog.Info("exporting site", "from", s.conf.Root, "to", dest)

	opts := copy.Options{
		Skip: func(info os.FileInfo, src, dest string) (bool, error) {
			if info.IsDir() {
				return filepath.Base(src) == s.conf.TemplateDir, nil
			}
			if s.isFragment(src) {
				return true, nil
			}
			// Site configuration files are not part of the published site.
			return strings.HasPrefix(filepath.Base(src), "rawsite."), nil
		},
	}
	return copy.Copy(s.conf.Root, dest, opts)
}
