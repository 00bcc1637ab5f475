package table

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tbl := &Table{
		Header: []string{"subject", "run", "2", "path"},
		Rows:   [][]string{{"sub-01", "run-1", "x", "a/b.nii"}},
	}

	tests := []struct {
		name    string
		col     string
		want    int
		wantErr bool
	}{
		{"by name", "run", 1, false},
		{"first column", "subject", 0, false},
		{"name takes precedence over index", "2", 2, false},
		{"one-based index", "4", 3, false},
		{"index one is first column", "1", 0, false},
		{"index zero is invalid", "0", 0, true},
		{"index out of range", "5", 0, true},
		{"unknown name", "session", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Resolve(tt.col)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error, got index %d", tt.col, got)
				}
				if !errors.Is(err, ErrColumnNotFound) {
					t.Errorf("Resolve(%q) error = %v, want ErrColumnNotFound", tt.col, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.col, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %d, want %d", tt.col, got, tt.want)
			}
		})
	}
}

func TestAppend_WidthMismatch(t *testing.T) {
	tbl := New([]string{"a", "b"})

	if err := tbl.Append([]string{"1", "2"}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	err := tbl.Append([]string{"1", "2", "3"})
	if !errors.Is(err, ErrMalformedTable) {
		t.Errorf("Append() error = %v, want ErrMalformedTable", err)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("rejected row was appended, rows = %d", len(tbl.Rows))
	}
}

func TestValidate(t *testing.T) {
	tbl := &Table{
		Header: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}, {"3"}},
	}
	if err := tbl.Validate(); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("Validate() error = %v, want ErrMalformedTable", err)
	}

	tbl.Rows[1] = []string{"3", "4"}
	if err := tbl.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestClone_Independent(t *testing.T) {
	tbl := &Table{
		Header: []string{"a"},
		Rows:   [][]string{{"1"}},
	}
	clone := tbl.Clone()
	clone.Rows[0][0] = "changed"
	clone.Header[0] = "renamed"

	if tbl.Rows[0][0] != "1" {
		t.Errorf("clone shares row storage: %q", tbl.Rows[0][0])
	}
	if tbl.Header[0] != "a" {
		t.Errorf("clone shares header storage: %q", tbl.Header[0])
	}
}
