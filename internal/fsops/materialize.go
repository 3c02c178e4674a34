package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"scaffold/internal/safety"
	"scaffold/internal/tree"
)

const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
	DefaultComment              = "// "
)

// Options configures a Materializer. Zero values fall back to the defaults.
type Options struct {
	Fs       afero.Fs
	DirPerm  os.FileMode
	FilePerm os.FileMode
	Comment  string // placeholder prefix written before the file name
	DryRun   bool
	Reporter Reporter
	Logger   *slog.Logger
}

// Stats summarizes a run. Dirs and Reused count the folders below the root,
// the same way tree.Root.Stats does; the root itself is RootExisted.
type Stats struct {
	Dirs        int
	Files       int
	Reused      int
	Overwritten int
	RootExisted bool
}

// Materializer creates the folders and stub files of a tree.
type Materializer struct {
	fs       afero.Fs
	dirPerm  os.FileMode
	filePerm os.FileMode
	comment  string
	dryRun   bool
	reporter Reporter
	log      *slog.Logger
}

// New returns a Materializer for o.
func New(o Options) *Materializer {
	m := &Materializer{
		fs:       o.Fs,
		dirPerm:  o.DirPerm,
		filePerm: o.FilePerm,
		comment:  o.Comment,
		dryRun:   o.DryRun,
		reporter: o.Reporter,
		log:      o.Logger,
	}
	if m.fs == nil {
		m.fs = afero.NewOsFs()
	}
	if m.dirPerm == 0 {
		m.dirPerm = DefaultDirPerm
	}
	if m.filePerm == 0 {
		m.filePerm = DefaultFilePerm
	}
	if m.comment == "" {
		m.comment = DefaultComment
	}
	if m.reporter == nil {
		m.reporter = nopReporter{}
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	return m
}

// Materialize creates root under rootPath on the OS filesystem with default options.
func Materialize(rootPath string, root tree.Root) error {
	_, err := New(Options{}).Materialize(rootPath, root)
	return err
}

// Materialize makes sure rootPath exists, creates the root folder inside it
// and then walks the tree depth-first. Folders that already exist are reused,
// files are always truncated and rewritten. The first error aborts the walk;
// whatever was created before it stays on disk.
func (m *Materializer) Materialize(rootPath string, root tree.Root) (Stats, error) {
	var st Stats
	err := m.materialize(rootPath, root, &st)
	if err != nil {
		m.log.Error("materialize failed", "dest", rootPath, "root", root.Name, "error", err)
	}
	return st, err
}

func (m *Materializer) materialize(rootPath string, root tree.Root, st *Stats) error {
	// 1) Destination directory.
	if _, err := m.ensureDir(rootPath); err != nil {
		return err
	}

	// 2) Root folder.
	path, err := m.join(rootPath, root.Name)
	if err != nil {
		return err
	}
	existed, err := m.ensureDir(path)
	if err != nil {
		return err
	}
	st.RootExisted = existed
	m.report(EventRoot, path, existed)

	// 3) Contents.
	return m.walk(path, root.Children, st)
}

func (m *Materializer) walk(dir string, nodes []tree.Node, st *Stats) error {
	for _, n := range nodes {
		path, err := m.join(dir, n.Name)
		if err != nil {
			return err
		}

		switch n.Kind {
		case tree.KindFolder:
			existed, err := m.ensureDir(path)
			if err != nil {
				return err
			}
			st.dir(existed)
			m.report(EventDir, path, existed)
			if err := m.walk(path, n.Children, st); err != nil {
				return err
			}

		case tree.KindFile:
			existed, err := m.writeFile(path, n.Name)
			if err != nil {
				return err
			}
			st.file(existed)
			m.report(EventFile, path, existed)

		default:
			return opError("create", path, fmt.Errorf("unknown node kind %v", n.Kind))
		}
	}
	return nil
}

// join validates name and joins it onto dir without leaving dir.
func (m *Materializer) join(dir, name string) (string, error) {
	if err := safety.ValidateName(name); err != nil {
		return "", opError("create", filepath.Join(dir, name), err)
	}
	path, err := safety.SafeJoin(dir, name)
	if err != nil {
		return "", opError("create", filepath.Join(dir, name), err)
	}
	return path, nil
}

// ensureDir reports whether path already was a directory, creating it otherwise.
func (m *Materializer) ensureDir(path string) (bool, error) {
	info, err := m.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		m.log.Debug("dir exists", "path", path)
		return true, nil

	case err == nil:
		return false, opError("mkdir", path, fmt.Errorf("%w: a file already exists", ErrConflict))

	case errors.Is(err, fs.ErrNotExist):
		if m.dryRun {
			m.log.Debug("dry-run mkdir", "path", path)
			return false, nil
		}
		if err := m.fs.MkdirAll(path, m.dirPerm); err != nil {
			return false, opError("mkdir", path, err)
		}
		// MkdirAll is subject to the umask.
		if err := m.fs.Chmod(path, m.dirPerm); err != nil {
			return false, opError("chmod", path, err)
		}
		m.log.Debug("dir created", "path", path, "perm", m.dirPerm)
		return false, nil

	default:
		return false, opError("stat", path, err)
	}
}

// writeFile truncates or creates path and writes the placeholder line.
// It reports whether the file existed before.
func (m *Materializer) writeFile(path, name string) (bool, error) {
	existed := false
	info, err := m.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return false, opError("write", path, fmt.Errorf("%w: a folder already exists", ErrConflict))
	case err == nil:
		existed = true
	case !errors.Is(err, fs.ErrNotExist):
		return false, opError("stat", path, err)
	}

	if m.dryRun {
		m.log.Debug("dry-run write", "path", path, "exists", existed)
		return existed, nil
	}

	f, err := m.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, m.filePerm)
	if err != nil {
		return existed, opError("open", path, err)
	}
	if _, err := f.WriteString(m.comment + name + "\n"); err != nil {
		_ = f.Close()
		return existed, opError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return existed, opError("close", path, err)
	}
	if !existed {
		if err := m.fs.Chmod(path, m.filePerm); err != nil {
			return existed, opError("chmod", path, err)
		}
	}
	m.log.Debug("file written", "path", path, "overwritten", existed)
	return existed, nil
}

func (m *Materializer) report(kind EventKind, path string, existed bool) {
	m.reporter.Report(Event{Kind: kind, Path: path, Existed: existed, DryRun: m.dryRun})
}

func (s *Stats) dir(existed bool) {
	s.Dirs++
	if existed {
		s.Reused++
	}
}

func (s *Stats) file(existed bool) {
	s.Files++
	if existed {
		s.Overwritten++
	}
}
