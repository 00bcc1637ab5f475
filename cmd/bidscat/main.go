package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vegasq/bidscat/output"
	"github.com/vegasq/bidscat/query"
	"github.com/vegasq/bidscat/reader"
	"github.com/vegasq/bidscat/schema"
	"github.com/vegasq/bidscat/table"
)

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, ",")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

var (
	formatFlag    = flag.String("f", "csv", "Output format: csv, tsv, jsonl, table, parquet")
	columnsFlag   = flag.String("columns", "", "Comma-separated columns (names or 1-based indices) to select, in order")
	dropNAFlag    = flag.String("drop-na", "", "Comma-separated columns; rows with NA in any of them are dropped")
	dropEmptyFlag = flag.Bool("drop-empty", false, "Drop columns that are NA in every row")
	sidecarsFlag  = flag.Bool("sidecars", false, "Attach JSON sidecar paths (adds a json_path column)")
	sortFlag      = flag.String("sort", "", "Comma-separated sort keys, e.g. subject,run:desc")
	reverseFlag   = flag.Bool("reverse", false, "Reverse the sorted row order")
	uniqueFlag    = flag.String("unique", "", "Print the unique non-NA values of one column and exit")
	entitiesFlag  = flag.String("entities", "", "YAML file with custom entity definitions")
	filterFlags   multiFlag
)

func main() {
	flag.Var(&filterFlags, "filter", "Row filter as column=pattern (repeatable, ANDed; pattern is a POSIX ERE)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <dataset-root>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to index a BIDS dataset as a queryable table.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the dataset root.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s /data/ds000117\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f tsv -filter task=rest /data/ds000117\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -columns subject,run,path -sort run /data/ds000117\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -sidecars -filter suffix=bold /data/ds000117\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -unique subject /data/ds000117\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing dataset root argument\n\n")
		flag.Usage()
		os.Exit(1)
	}
	root := flag.Arg(0)

	if err := run(root, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the scan-transform-print pipeline against the dataset root,
// honoring the package-level flags.
func run(root string, stdout io.Writer) error {
	s := schema.Builtin()
	if *entitiesFlag != "" {
		defs, err := schema.LoadEntityFile(*entitiesFlag)
		if err != nil {
			return err
		}
		s, err = s.Merge(defs)
		if err != nil {
			return err
		}
	}

	pat, err := schema.Compile(s, schema.DataTypes(), schema.DefaultSuffixes(), schema.DefaultExtensions())
	if err != nil {
		return err
	}

	paths, err := reader.Walk(root)
	if err != nil {
		return err
	}
	t := reader.BuildTable(paths, pat, s)

	if *sidecarsFlag {
		t, err = query.AttachSidecarPaths(t)
		if err != nil {
			return err
		}
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}
	t, err = query.Run(t, opts)
	if err != nil {
		return err
	}

	if *dropEmptyFlag {
		t = query.DropEmptyColumns(t)
	}

	if *uniqueFlag != "" {
		values, err := query.ExtractColumn(t, *uniqueFlag, true, true)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintln(stdout, v)
		}
		return nil
	}

	if *sortFlag != "" || *reverseFlag {
		t, err = sortTable(t)
		if err != nil {
			return err
		}
	}

	formatter, err := output.New(*formatFlag, stdout)
	if err != nil {
		return err
	}
	return formatter.Format(t)
}

// buildOptions translates the filter/columns/drop-na flags into query
// options.
func buildOptions() (query.Options, error) {
	var opts query.Options
	for _, f := range filterFlags {
		col, pattern, ok := strings.Cut(f, "=")
		if !ok || col == "" {
			return opts, fmt.Errorf("invalid -filter %q, expected column=pattern", f)
		}
		opts.Filters = append(opts.Filters, query.Filter{Column: col, Pattern: pattern})
	}
	opts.Columns = splitList(*columnsFlag)
	opts.DropNA = splitList(*dropNAFlag)
	return opts, nil
}

// sortTable rebuilds the table in iterator order.
func sortTable(t *table.Table) (*table.Table, error) {
	keys, err := parseSortKeys(*sortFlag)
	if err != nil {
		return nil, err
	}
	it, err := query.Open(t, keys, *reverseFlag)
	if err != nil {
		return nil, err
	}

	sorted := table.New(t.Header)
	for {
		rec, ok := it.Next()
		if !ok {
			break
		}
		row := make([]string, len(t.Header))
		for i, name := range t.Header {
			row[i] = rec[name]
		}
		if err := sorted.Append(row); err != nil {
			return nil, err
		}
	}
	return sorted, nil
}

// parseSortKeys parses "col", "col:asc" and "col:desc" entries.
func parseSortKeys(spec string) ([]query.SortKey, error) {
	var keys []query.SortKey
	for _, entry := range splitList(spec) {
		col, dir, hasDir := strings.Cut(entry, ":")
		key := query.SortKey{Column: col}
		if hasDir {
			switch dir {
			case "asc":
			case "desc":
				key.Desc = true
			default:
				return nil, fmt.Errorf("invalid sort direction %q in %q", dir, entry)
			}
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
