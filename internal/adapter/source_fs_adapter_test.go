package adapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	m "github.com/mrdannyclark82/MillaCore-Fusion/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.py"), "x = 1\n")
		writeTestFile(t, filepath.Join(root, "a.py"), "x = 1\n")

		nestedDir := filepath.Join(root, "nested")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "child.ts")
		writeTestFile(t, child, "const x = 1\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				visited = append(visited, path)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		want := []string{filepath.Join(root, "a.py"), filepath.Join(root, "b.py"), child}
		if len(visited) != len(want) {
			t.Fatalf("Walk() visited %v, want %v", visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Fatalf("Walk() visited[%d] = %s, want %s", i, visited[i], want[i])
			}
		}
	})

	t.Run("skip dir prunes subtree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		skipped := filepath.Join(root, "node_modules")
		mustMkdir(t, skipped)
		writeTestFile(t, filepath.Join(skipped, "lib.js"), "function f() {}\n")

		var visited []string
		err := adapter.Walk(context.Background(), m.Path(root), func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(skipped, "lib.js")) {
			t.Fatalf("Walk() visited a file below a skipped directory")
		}
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := adapter.Walk(ctx, m.Path(t.TempDir()), func(string, fs.DirEntry, error) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Walk() error = %v, want context.Canceled", err)
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "util.py")
	content := "def helper():\r\n    return 1\r\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "main.py")
	writeTestFile(t, path, "print(1)\n")

	info, err := adapter.FileInfo(context.Background(), m.Path(path))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	dirInfo, err := adapter.FileInfo(context.Background(), m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !dirInfo.IsDir() {
		t.Fatalf("FileInfo() reported directory as file")
	}
}

func TestLocalSourceFSAdapter_CreateExclusive(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "helper.py"))

	if err := adapter.CreateExclusive(context.Background(), path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("CreateExclusive() error = %v", err)
	}

	err := adapter.CreateExclusive(context.Background(), path, []byte("second\n"), 0o644)
	if !IsExist(err) {
		t.Fatalf("CreateExclusive() second call error = %v, want exist error", err)
	}

	got, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	if string(got) != "first\n" {
		t.Fatalf("CreateExclusive() overwrote existing file: %q", string(got))
	}
}

func TestLocalSourceFSAdapter_WriteFileAtomic(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := m.Path(filepath.Join(root, "build", "report", "out.json"))

	if err := adapter.WriteFileAtomic(context.Background(), path, []byte("[1]\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	if err := adapter.WriteFileAtomic(context.Background(), path, []byte("[2]\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic() overwrite error = %v", err)
	}

	got, err := os.ReadFile(string(path))
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	if string(got) != "[2]\n" {
		t.Fatalf("WriteFileAtomic() content = %q, want %q", string(got), "[2]\n")
	}

	entries, err := os.ReadDir(filepath.Dir(string(path)))
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("WriteFileAtomic() left temp files behind: %d entries", len(entries))
	}
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	base := m.Path("/tmp/project")
	target := m.Path("/tmp/project/sub/dir/file.py")

	rel, err := adapter.RelPath(base, target)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if string(rel) != filepath.Join("sub", "dir", "file.py") {
		t.Fatalf("RelPath() = %s, want %s", rel, filepath.Join("sub", "dir", "file.py"))
	}

	joined := adapter.JoinPath("/tmp", "project", "sub", "file.py")
	if string(joined) != filepath.Join("/tmp", "project", "sub", "file.py") {
		t.Fatalf("JoinPath() = %s, want %s", joined, filepath.Join("/tmp", "project", "sub", "file.py"))
	}

	abs, err := adapter.AbsPath("relative")
	if err != nil {
		t.Fatalf("AbsPath() error = %v", err)
	}

	if !filepath.IsAbs(string(abs)) {
		t.Fatalf("AbsPath() = %s, want absolute path", abs)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if p == target {
			return true
		}
	}

	return false
}
