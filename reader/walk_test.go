package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates empty files under root, making parent directories.
func writeTree(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(full, nil, 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, []string{
		"sub-02/anat/sub-02_T1w.nii.gz",
		"sub-01/func/sub-01_task-rest_bold.nii.gz",
		"sub-01/anat/sub-01_T1w.nii.gz",
		"participants.tsv",
		".bidsignore",
		".git/config",
	})

	got, err := Walk(root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	// Lexical order, slash-separated, hidden entries skipped.
	want := []string{
		"participants.tsv",
		"sub-01/anat/sub-01_T1w.nii.gz",
		"sub-01/func/sub-01_task-rest_bold.nii.gz",
		"sub-02/anat/sub-02_T1w.nii.gz",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	if _, err := Walk(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Walk() expected error for missing root")
	}
}
