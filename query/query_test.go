package query

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vegasq/bidscat/table"
)

// testTable builds a small scanned-dataset table used across the package
// tests: three task-rest runs (1, 2, 4), one motor run and one anat scan.
func testTable() *table.Table {
	return &table.Table{
		Header: []string{"subject", "task", "run", "ce", "suffix", "extension", "path"},
		Rows: [][]string{
			{"sub-01", "task-rest", "run-1", table.NA, "bold", "nii.gz", "sub-01/func/sub-01_task-rest_run-1_bold.nii.gz"},
			{"sub-01", "task-rest", "run-2", table.NA, "bold", "nii.gz", "sub-01/func/sub-01_task-rest_run-2_bold.nii.gz"},
			{"sub-01", "task-rest", "run-4", table.NA, "bold", "nii.gz", "sub-01/func/sub-01_task-rest_run-4_bold.nii.gz"},
			{"sub-01", "task-motor", "run-1", table.NA, "bold", "nii.gz", "sub-01/func/sub-01_task-motor_run-1_bold.nii.gz"},
			{"sub-02", table.NA, table.NA, table.NA, "T1w", "nii.gz", "sub-02/anat/sub-02_T1w.nii.gz"},
		},
	}
}

func TestRun_Filters(t *testing.T) {
	// task=rest AND run in 1..3 keeps exactly runs 1 and 2.
	got, err := Run(testTable(), Options{
		Filters: []Filter{
			{Column: "task", Pattern: "rest"},
			{Column: "run", Pattern: "[1-3]"},
		},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(got.Rows) != 2 {
		t.Fatalf("Run() rows = %d, want 2", len(got.Rows))
	}
	if got.Rows[0][2] != "run-1" || got.Rows[1][2] != "run-2" {
		t.Errorf("Run() kept runs %q, %q", got.Rows[0][2], got.Rows[1][2])
	}
}

func TestRun_FilterIsRegex(t *testing.T) {
	got, err := Run(testTable(), Options{
		Filters: []Filter{{Column: "suffix", Pattern: "^(bold|T1w)$"}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got.Rows) != 5 {
		t.Errorf("Run() rows = %d, want 5", len(got.Rows))
	}

	got, err = Run(testTable(), Options{
		Filters: []Filter{{Column: "suffix", Pattern: "^T1w$"}},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got.Rows) != 1 || got.Rows[0][0] != "sub-02" {
		t.Errorf("Run() rows = %v", got.Rows)
	}
}

func TestRun_Projection(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		wantHeader []string
	}{
		{"by name reordered", []string{"path", "subject"}, []string{"path", "subject"}},
		{"by one-based index", []string{"1", "3"}, []string{"subject", "run"}},
		{"mixed", []string{"task", "7"}, []string{"task", "path"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(testTable(), Options{Columns: tt.columns})
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if !reflect.DeepEqual(got.Header, tt.wantHeader) {
				t.Errorf("Run() header = %v, want %v", got.Header, tt.wantHeader)
			}
			if len(got.Rows) != 5 {
				t.Errorf("Run() rows = %d, want 5", len(got.Rows))
			}
			for i, row := range got.Rows {
				if len(row) != len(tt.wantHeader) {
					t.Errorf("row %d width = %d, want %d", i, len(row), len(tt.wantHeader))
				}
			}
		})
	}
}

func TestRun_DropNA(t *testing.T) {
	// Rows with NA task drop; evaluated before projection, so a projected-out
	// column can still drive the drop.
	got, err := Run(testTable(), Options{
		DropNA:  []string{"task"},
		Columns: []string{"subject", "path"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got.Rows) != 4 {
		t.Errorf("Run() rows = %d, want 4", len(got.Rows))
	}
	for _, row := range got.Rows {
		if row[0] == "sub-02" {
			t.Errorf("anat row with NA task survived: %v", row)
		}
	}
}

func TestRun_UnknownColumn(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"filter", Options{Filters: []Filter{{Column: "session", Pattern: "x"}}}},
		{"projection", Options{Columns: []string{"session"}}},
		{"drop-na", Options{DropNA: []string{"session"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(testTable(), tt.opts)
			if !errors.Is(err, table.ErrColumnNotFound) {
				t.Errorf("Run() error = %v, want ErrColumnNotFound", err)
			}
		})
	}
}

func TestRun_InvalidPattern(t *testing.T) {
	_, err := Run(testTable(), Options{
		Filters: []Filter{{Column: "task", Pattern: "("}},
	})
	if err == nil {
		t.Error("Run() expected error for invalid pattern")
	}
}

func TestRun_NoOptions(t *testing.T) {
	in := testTable()
	got, err := Run(in, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(got.Header, in.Header) {
		t.Errorf("Run() header = %v", got.Header)
	}
	if len(got.Rows) != len(in.Rows) {
		t.Errorf("Run() rows = %d, want %d", len(got.Rows), len(in.Rows))
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	in := testTable()
	want := testTable()

	if _, err := Run(in, Options{
		Filters: []Filter{{Column: "task", Pattern: "rest"}},
		Columns: []string{"path"},
	}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(in, want) {
		t.Error("Run() mutated its input table")
	}
}
