package logging

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type logFile struct {
	path    string
	modTime time.Time
}

// rotate keeps the newest keep files named dragselect_*.log in dir and
// removes the rest. Other files are left alone.
func rotate(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var files []logFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || filepath.Ext(name) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed since ReadDir
			continue
		}
		files = append(files, logFile{path: filepath.Join(dir, name), modTime: info.ModTime()})
	}
	if len(files) <= keep {
		return nil
	}

	// newest first; names embed the start time, so they break ties
	sort.Slice(files, func(i, j int) bool {
		if !files[i].modTime.Equal(files[j].modTime) {
			return files[i].modTime.After(files[j].modTime)
		}
		return files[i].path > files[j].path
	})
	var errs []error
	for _, f := range files[keep:] {
		if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
