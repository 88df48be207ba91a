package csslink

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"

	"github.com/alnah/go-csslink/internal/fileutil"
)

// DiscoverHTML returns every *.html file under root, in lexical order per
// directory.
//
// Symlinks are followed, including a symlinked root, and each directory is
// entered at most once so link cycles terminate. Hidden files are not matched
// and hidden directories are not entered, the same way a recursive
// "**/*.html" glob behaves. Entries that cannot be read while walking are
// left out rather than failing the discovery.
func DiscoverHTML(fsys afero.Fs, root string) ([]string, error) {
	info, err := fsys.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	d := &discoverer{fs: fsys}
	d.walk(root, info)
	return d.files, nil
}

// discoverer holds walk state for one DiscoverHTML call.
type discoverer struct {
	fs      afero.Fs
	visited []os.FileInfo
	files   []string
}

// walk collects HTML files in dir and descends into its subdirectories.
func (d *discoverer) walk(dir string, info os.FileInfo) {
	if d.seen(info) {
		return
	}
	d.visited = append(d.visited, info)

	names, err := readDirNames(d.fs, dir)
	if err != nil {
		return
	}

	for _, name := range names {
		if fileutil.IsHidden(name) {
			continue
		}
		path := filepath.Join(dir, name)

		// Stat, not Lstat: symlinks resolve to their target.
		entry, err := d.fs.Stat(path)
		if err != nil {
			continue
		}
		if entry.IsDir() {
			d.walk(path, entry)
			continue
		}
		if fileutil.HasHTMLExtension(name) {
			d.files = append(d.files, path)
		}
	}
}

// seen reports whether info names a directory already walked.
// os.SameFile only matches OS-backed file infos; in-memory filesystems
// have no symlinks, so they cannot form cycles.
func (d *discoverer) seen(info os.FileInfo) bool {
	for _, v := range d.visited {
		if os.SameFile(v, info) {
			return true
		}
	}
	return false
}

func readDirNames(fsys afero.Fs, dir string) ([]string, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := f.Readdirnames(-1)
	_ = f.Close()
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}
