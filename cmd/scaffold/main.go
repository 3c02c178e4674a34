package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"scaffold/internal/app"
	"scaffold/internal/config"
	"scaffold/internal/logger"
)

// Override with -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	// Defaults, then SCAFFOLD_* env, then flags.
	cfg := config.Defaults()
	config.ApplyEnvOverrides(cfg)

	in := flag.String("in", cfg.InPath, "Input file with the structure ('-' for stdin, empty for the built-in Flutter layout)")
	out := flag.String("out", cfg.OutDir, "Directory to create the root folder in")
	format := flag.String("format", cfg.Format, "Input format: auto, tree or yaml")
	dry := flag.Bool("dry", false, "Dry run: only show what would be created")
	printTree := flag.Bool("print", false, "Print the structure as a tree and exit")
	check := flag.Bool("check", false, "Validate every name in the structure and exit")
	verbose := flag.Bool("v", false, "Verbose output (debug logs)")
	quiet := flag.Bool("q", false, "Quiet mode (no progress output)")
	dpermStr := flag.String("dperm", fmt.Sprintf("%#o", uint32(cfg.DirPerm)), "Folder permissions (octal, e.g. 0755)")
	fpermStr := flag.String("fperm", fmt.Sprintf("%#o", uint32(cfg.FilePerm)), "File permissions (octal, e.g. 0644)")
	comment := flag.String("comment", cfg.Comment, "Prefix of the placeholder line written to every file")
	logLevel := flag.String("log-level", cfg.Logger.Level, "Log level: debug, info, warn, error")
	logFormat := flag.String("log-format", cfg.Logger.Format, "Log format: text or json")
	logOutput := flag.String("log-output", cfg.Logger.Output, "Log output: stderr, stdout or a file path")

	help := flag.Bool("help", false, "Show help and exit")
	helpShort := flag.Bool("h", false, "Show help and exit (same as -help)")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		name := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stdout, `
%s creates a project skeleton: folders plus one-line stub files.

Usage:
  %s [-in FILE|-] [-out DIR] [-format auto|tree|yaml] [-dry|-print|-check] [-v|-q]

Without flags the built-in Flutter layout is created as ./lib.

Flags:
`, name, name)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stdout, `
Input formats:
  tree  First line is the root (e.g. lib/), then tree(1) lines with
        ├──/└── or |--/`+"`--"+` markers. A trailing / marks a folder.
  yaml  One root key whose value is a list of file names and
        {folder: [...]} mappings.

Examples:
  %[1]s
  %[1]s -out ./app -dry
  %[1]s -in layout.yaml -out ./dst -v
  tree -F lib | %[1]s -in - -out ./copy
`, name)
	}

	flag.Parse()

	if *help || *helpShort {
		flag.Usage()
		return
	}
	if *showVersion {
		fmt.Println(version)
		return
	}

	dperm, err := config.ParsePerm(*dpermStr, cfg.DirPerm)
	if err != nil {
		fail(fmt.Errorf("invalid -dperm: %w", err))
	}
	fperm, err := config.ParsePerm(*fpermStr, cfg.FilePerm)
	if err != nil {
		fail(fmt.Errorf("invalid -fperm: %w", err))
	}

	cfg.InPath = *in
	cfg.OutDir = *out
	cfg.Format = *format
	cfg.DryRun = *dry
	cfg.Print = *printTree
	cfg.Check = *check
	cfg.Quiet = *quiet
	cfg.Verbose = *verbose
	cfg.DirPerm = dperm
	cfg.FilePerm = fperm
	cfg.Comment = *comment
	cfg.Logger.Level = *logLevel
	cfg.Logger.Format = *logFormat
	cfg.Logger.Output = *logOutput
	if cfg.Verbose {
		cfg.Logger.Level = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		fail(err)
	}

	log, closeLog, err := logger.New(cfg.Logger)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	if err := app.Run(app.Options{Config: cfg, Logger: log}); err != nil {
		closeLog()
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
