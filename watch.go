package rawsite

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/radovskyb/watcher"
)

const watchInterval = 200 * time.Millisecond

// fragmentFilter matches only fragment sources, so the .html pages a rebuild
// writes into the same tree do not retrigger the watcher.
func (s *Site) fragmentFilter() *regexp.Regexp {
	exts := make([]string, 0, len(s.conf.FragmentExtensions))
	for _, e := range s.conf.FragmentExtensions {
		exts = append(exts, regexp.QuoteMeta(strings.TrimPrefix(e, ".")))
	}
	return regexp.MustCompile(`(?i)\.(` + strings.Join(exts, "|") + `)$`)
}

// WatchAndRebuild blocks, rebuilding the whole site whenever a fragment under
// the content root changes.
func (s *Site) WatchAndRebuild() error {
	w := watcher.New()
	w.SetMaxEvents(1)
	w.AddFilterHook(watcher.RegexFilterHook(s.fragmentFilter(), false))

	go func() {
		for {
			select {
			case event := <-w.Event:
				slog.Info("content changed, rebuilding", "path", event.Path)
				if _, err := s.RebuildAll(); err != nil {
					slog.Error("rebuild failed", "error", err)
				}
			case err := <-w.Error:
				slog.Error("watcher error", "error", err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(s.conf.Root); err != nil {
		return err
	}
	slog.Info("watching for changes", "root", s.conf.Root)
	return w.Start(watchInterval)
}
