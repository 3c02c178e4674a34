package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"scaffold/internal/fsops"
)

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Start("Flutter")
	p.Report(fsops.Event{Kind: fsops.EventRoot, Path: "lib"})
	p.Report(fsops.Event{Kind: fsops.EventDir, Path: "lib/controllers"})
	p.Report(fsops.Event{Kind: fsops.EventDir, Path: "lib/data", Existed: true})
	p.Report(fsops.Event{Kind: fsops.EventFile, Path: "lib/main.dart"})
	p.Report(fsops.Event{Kind: fsops.EventFile, Path: "lib/app.dart", Existed: true})
	p.Done("Flutter", fsops.Stats{Dirs: 3, Files: 2}, false)

	want := "🚀 Creating Flutter folder structure...\n" +
		"📂 Root directory: lib\n" +
		"📁 Created folder: lib/controllers\n" +
		"📁 Reused folder: lib/data\n" +
		"📄 Created file: lib/main.dart\n" +
		"📄 Overwrote file: lib/app.dart\n" +
		"\n✅ Flutter structure created successfully! (3 folders, 2 files)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterDryRun(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)

	p.Report(fsops.Event{Kind: fsops.EventRoot, Path: "lib", DryRun: true})
	p.Report(fsops.Event{Kind: fsops.EventDir, Path: "lib/a", DryRun: true})
	p.Report(fsops.Event{Kind: fsops.EventDir, Path: "lib/b", DryRun: true, Existed: true})
	p.Report(fsops.Event{Kind: fsops.EventFile, Path: "lib/c", DryRun: true})
	p.Report(fsops.Event{Kind: fsops.EventFile, Path: "lib/d", DryRun: true, Existed: true})
	p.Done("lib", fsops.Stats{Dirs: 3, Files: 2}, true)

	want := "📂 Would create root directory: lib\n" +
		"📁 Would create folder: lib/a\n" +
		"📁 Would reuse folder: lib/b\n" +
		"📄 Would create file: lib/c\n" +
		"📄 Would overwrite file: lib/d\n" +
		"\n✅ lib structure checked, nothing written. (3 folders, 2 files)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinterQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	p.Start("Flutter")
	p.Report(fsops.Event{Kind: fsops.EventFile, Path: "lib/main.dart"})
	p.Done("Flutter", fsops.Stats{}, false)
	assert.Empty(t, buf.String())
}
