package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/KaramelBytes/strokelens-cli/internal/logger"
)

var (
	// ErrNotFound indicates the dataset file does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrInvalidContent is the parent of every content-level load failure.
	ErrInvalidContent = errors.New("invalid dataset")

	ErrEmpty         = fmt.Errorf("%w: file is empty", ErrInvalidContent)
	ErrInvalidHeader = fmt.Errorf("%w: invalid header", ErrInvalidContent)
	ErrNoRecords     = fmt.Errorf("%w: no valid records loaded", ErrInvalidContent)
)

// Options controls how a dataset file is parsed.
type Options struct {
	// Delimiter separates fields. If 0, ',' is used.
	Delimiter rune
	// Schema declares field types. If nil, DefaultSchema is used.
	Schema Schema
	// StrictCategories turns out-of-set category values into missing instead
	// of keeping them with a warning.
	StrictCategories bool
	// MaxWarnings caps how many row warnings are logged individually; 0 logs
	// all of them. Every warning is still recorded on the Store.
	MaxWarnings int
}

// DefaultOptions returns comma-delimited parsing with the stroke schema.
func DefaultOptions() Options {
	return Options{Delimiter: ',', Schema: DefaultSchema(), MaxWarnings: 20}
}

// Load parses the dataset file at path into a Store.
func Load(path string, opt Options) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	s, err := Read(f, opt)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("dataset loaded", "path", path, "records", s.Len(), "warnings", len(s.Warnings))
	return s, nil
}

// Read parses a delimited dataset from r. The first row is the header; the
// first column of every data row is the record key.
func Read(r io.Reader, opt Options) (*Store, error) {
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}
	if opt.Schema == nil {
		opt.Schema = DefaultSchema()
	}
	cr := csv.NewReader(r)
	cr.Comma = opt.Delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidContent, err)
	}
	header = cleanHeader(header)
	ncol := len(header)
	if ncol < 2 {
		return nil, fmt.Errorf("%w: found %d columns, expected at least 2 (ID and one feature)", ErrInvalidHeader, ncol)
	}

	l := &loadLog{max: opt.MaxWarnings}
	s := newStore(header, opt.Schema)
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				l.warn(Warning{Row: perr.StartLine, Message: fmt.Sprintf("unparseable row (%v), skipping", perr.Err)})
				continue
			}
			return nil, fmt.Errorf("read dataset: %w", err)
		}
		row, _ := cr.FieldPos(0)
		if len(rec) != ncol {
			l.warn(Warning{Row: row, Message: fmt.Sprintf("expected %d columns, found %d, skipping row", ncol, len(rec))})
			continue
		}
		values := make(map[string]Value, ncol)
		for i, name := range header {
			values[name] = convert(opt, l, row, opt.Schema.Lookup(name), rec[i])
		}
		s.put(NewRecord(rec[0], values))
	}
	s.Warnings = l.all
	if l.max > 0 && len(l.all) > l.max {
		logger.Warn("additional row warnings suppressed", "logged", l.max, "total", len(l.all))
	}
	if s.Len() == 0 {
		return nil, ErrNoRecords
	}
	return s, nil
}

func convert(opt Options, l *loadLog, row int, f Field, raw string) Value {
	switch f.Type {
	case FieldInteger:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			l.warn(Warning{Row: row, Field: f.Name, Value: raw, Message: "invalid integer, stored as missing"})
			return Missing()
		}
		return Int(n)
	case FieldFloat:
		x, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			l.warn(Warning{Row: row, Field: f.Name, Value: raw, Message: "invalid number, stored as missing"})
			return Missing()
		}
		return Float(x)
	case FieldBinary:
		switch raw {
		case "0":
			return Int(0)
		case "1":
			return Int(1)
		}
		l.warn(Warning{Row: row, Field: f.Name, Value: raw, Message: "expected 0 or 1, stored as missing"})
		return Missing()
	case FieldCategory:
		if f.Allows(raw) {
			return Text(raw)
		}
		if opt.StrictCategories {
			l.warn(Warning{Row: row, Field: f.Name, Value: raw, Message: "unexpected category, stored as missing"})
			return Missing()
		}
		l.warn(Warning{Row: row, Field: f.Name, Value: raw, Message: "unexpected category, kept as is"})
		return Text(raw)
	default:
		return Text(raw)
	}
}

func cleanHeader(h []string) []string {
	out := make([]string, len(h))
	for i, name := range h {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		out[i] = strings.TrimSpace(name)
	}
	return out
}

// loadLog records warnings and logs the first max of them.
type loadLog struct {
	max int
	all []Warning
}

func (l *loadLog) warn(w Warning) {
	l.all = append(l.all, w)
	if l.max > 0 && len(l.all) > l.max {
		return
	}
	if w.Field == "" {
		logger.Warn(w.Message, "row", w.Row)
		return
	}
	logger.Warn(w.Message, "row", w.Row, "field", w.Field, "value", w.Value)
}
