package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"scaffold/internal/config"
	"scaffold/internal/fsops"
	"scaffold/internal/parser"
	"scaffold/internal/progress"
	"scaffold/internal/tree"
)

// FlutterTitle names the built-in layout in banners.
const FlutterTitle = "Flutter"

// Options is everything Run needs. Fs is used both to read the input file and
// to write the tree. Nil Fs, Stdin and Stdout fall back to the OS filesystem
// and the process streams.
type Options struct {
	Config *config.Config
	Logger *slog.Logger
	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
}

// Run loads the tree and then checks, prints or materializes it.
func Run(o Options) error {
	o = withDefaults(o)
	cfg := o.Config

	// 1) Load the tree: built-in layout, stdin or a file.
	root, title, err := loadTree(o)
	if err != nil {
		return err
	}
	o.Logger.Debug("tree loaded", "root", root.Name, "source", source(cfg))

	// 2) Check only.
	if cfg.Check {
		if err := tree.Validate(root); err != nil {
			return fmt.Errorf("check %s: %w", root.Name, err)
		}
		if !cfg.Quiet {
			folders, files := root.Stats()
			fmt.Fprintf(o.Stdout, "%s: %d folders, %d files, all names valid\n", root.Name, folders, files)
		}
		return nil
	}

	// 3) Print only.
	if cfg.Print {
		return tree.Render(o.Stdout, root)
	}

	// 4) Materialize.
	printer := progress.New(o.Stdout, cfg.Quiet)
	printer.Start(title)

	m := fsops.New(fsops.Options{
		Fs:       o.Fs,
		DirPerm:  cfg.DirPerm,
		FilePerm: cfg.FilePerm,
		Comment:  cfg.Comment,
		DryRun:   cfg.DryRun,
		Reporter: printer,
		Logger:   o.Logger,
	})
	st, err := m.Materialize(cfg.OutDir, root)
	if err != nil {
		return err
	}

	printer.Done(title, st, cfg.DryRun)
	o.Logger.Info("scaffold done",
		"root", root.Name,
		"dest", cfg.OutDir,
		"dirs", st.Dirs,
		"files", st.Files,
		"reused", st.Reused,
		"overwritten", st.Overwritten,
		"root_existed", st.RootExisted,
		"dry_run", cfg.DryRun,
	)
	return nil
}

func withDefaults(o Options) Options {
	if o.Config == nil {
		o.Config = config.Defaults()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	return o
}

// loadTree returns the tree and the title used in banners.
func loadTree(o Options) (tree.Root, string, error) {
	cfg := o.Config

	switch {
	case cfg.InPath == "":
		return tree.Flutter(), FlutterTitle, nil

	case cfg.InPath == "-":
		root, err := parse(o.Stdin, cfg.Format == config.FormatYAML)
		if err != nil {
			return tree.Root{}, "", fmt.Errorf("parse stdin: %w", err)
		}
		return root, root.Name, nil

	case cfg.Format == config.FormatAuto:
		root, err := parser.ParseFile(o.Fs, cfg.InPath)
		if err != nil {
			return tree.Root{}, "", fmt.Errorf("parse %s: %w", cfg.InPath, err)
		}
		return root, root.Name, nil

	default:
		f, err := o.Fs.Open(cfg.InPath)
		if err != nil {
			return tree.Root{}, "", fmt.Errorf("open input %q: %w", cfg.InPath, err)
		}
		defer f.Close()

		root, err := parse(f, cfg.Format == config.FormatYAML)
		if err != nil {
			return tree.Root{}, "", fmt.Errorf("parse %s: %w", cfg.InPath, err)
		}
		return root, root.Name, nil
	}
}

func parse(r io.Reader, yaml bool) (tree.Root, error) {
	if yaml {
		return parser.ParseYAML(r)
	}
	return parser.Parse(r)
}

func source(cfg *config.Config) string {
	switch cfg.InPath {
	case "":
		return "built-in"
	case "-":
		return "stdin"
	default:
		return cfg.InPath
	}
}
