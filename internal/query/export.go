package query

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/KaramelBytes/strokelens-cli/internal/dataset"
	"github.com/KaramelBytes/strokelens-cli/internal/logger"
	"github.com/KaramelBytes/strokelens-cli/internal/utils"
)

// ErrUnsupportedShape is returned when a result kind has no export layout.
var ErrUnsupportedShape = errors.New("unsupported result shape")

// notAvailable fills exported cells whose value is missing.
const notAvailable = "N/A"

// ExportOptions controls the exported file format.
type ExportOptions struct {
	// Delimiter separates fields. If 0, ',' is used.
	Delimiter rune
}

func (o ExportOptions) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// Export writes res to dest and reports success. It never panics; failures
// are logged and reported as false.
func Export(res *Result, dest string, opt ExportOptions) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("export failed", "dest", dest, "panic", r)
			ok = false
		}
	}()
	if _, err := Save(res, dest, opt); err != nil {
		logger.Error("export failed", "dest", dest, "err", err)
		return false
	}
	return true
}

// Save writes res to dest atomically and returns the written path. When dest
// is an existing directory the file is named <query>-<run id prefix>.csv.
func Save(res *Result, dest string, opt ExportOptions) (string, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, res, opt.delimiter()); err != nil {
		return "", err
	}
	path := dest
	if utils.IsDir(dest) {
		path = filepath.Join(dest, FileName(res))
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// FileName derives a unique export file name for res.
func FileName(res *Result) string {
	name := res.Query
	if name == "" {
		name = "result"
	}
	id := res.RunID
	if id == "" {
		id = uuid.NewString()
	}
	if len(id) > 8 {
		id = id[:8]
	}
	return name + "-" + id + ".csv"
}

// WriteCSV writes res as delimited text with a header row chosen by kind.
func WriteCSV(w io.Writer, res *Result, delim rune) error {
	if res == nil {
		return fmt.Errorf("%w: nil result", ErrUnsupportedShape)
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim
	sep := string(delim)

	var rows [][]string
	switch res.Kind {
	case KindGroups:
		rows = append(rows, []string{label(res.GroupLabel, "Group"), "Mean", "Mode", "Median"})
		for _, g := range res.Groups {
			rows = append(rows, append([]string{g.Name}, summaryCells(g.Summary, sep)...))
		}
	case KindNested:
		rows = append(rows, []string{label(res.GroupLabel, "Category"), "Group", "Mean", "Mode", "Median"})
		for _, n := range res.Nested {
			for _, g := range n.Groups {
				rows = append(rows, append([]string{n.Name, g.Name}, summaryCells(g.Summary, sep)...))
			}
		}
	case KindFlat:
		rows = append(rows, []string{"Statistic", "Value"})
		for _, e := range res.Entries {
			rows = append(rows, []string{e.Key, exportValue(e, sep)})
		}
	case KindError:
		rows = append(rows, []string{"Statistic", "Value"}, []string{"error", res.Err})
	case KindList:
		rows = append(rows, []string{"Patient_ID"})
		for _, item := range res.Items {
			rows = append(rows, []string{item})
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShape, res.Kind)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func summaryCells(s Summary, sep string) []string {
	return []string{cell(s.Mean), strings.Join(s.ModeStrings(), sep), cell(s.Median)}
}

func exportValue(e Entry, sep string) string {
	if e.IsList {
		return strings.Join(e.List, sep)
	}
	return cell(e.Value)
}

func cell(v dataset.Value) string {
	if v.IsMissing() {
		return notAvailable
	}
	return v.String()
}

func label(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
