package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "ID,Age,Gender,Hypertension,Heart Disease,Smoking Status,Average Glucose Level,Stroke Occurrence"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return p
}

func TestLoadTypesValues(t *testing.T) {
	p := writeCSV(t, header,
		"p1,67,Male,1,0,Smokes,228.69,1",
		"p2,61,Female,0,1,Never smoked,202.21,0",
	)
	s, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Empty(t, s.Warnings)

	r, ok := s.Get("p1")
	require.True(t, ok)
	assert.Equal(t, Int(67), r.Get(ColAge))
	assert.Equal(t, Text("Male"), r.Get(ColGender))
	assert.Equal(t, Int(1), r.Get(ColHypertension))
	assert.Equal(t, Float(228.69), r.Get(ColGlucose))
	assert.Equal(t, Text("Smokes"), r.Get(ColSmokingStatus))
	assert.Equal(t, "p1", r.ID())

	keys := []string{}
	for _, rec := range s.Records() {
		keys = append(keys, rec.Key)
	}
	assert.Equal(t, []string{"p1", "p2"}, keys)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidContent))
}

func TestLoadFileLevelFailures(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  error
	}{
		{"empty", nil, ErrEmpty},
		{"single column header", []string{"ID", "p1"}, ErrInvalidHeader},
		{"no surviving rows", []string{header, "p1,67"}, ErrNoRecords},
		{"header only", []string{header}, ErrNoRecords},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "data.csv")
			content := ""
			if len(tt.lines) > 0 {
				content = strings.Join(tt.lines, "\n") + "\n"
			}
			require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

			_, err := Load(p, DefaultOptions())
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, ErrInvalidContent))
			assert.False(t, errors.Is(err, ErrNotFound))
		})
	}
}

func TestLoadSkipsMalformedRows(t *testing.T) {
	p := writeCSV(t, header,
		"p1,50,Male,1,0,Smokes,100,1",
		"p2,55,Male,1",
		"p3,60,Female,1,0,Smokes,110,1",
	)
	s, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("p2")
	assert.False(t, ok)
	_, ok = s.Get("p3")
	assert.True(t, ok)

	require.Len(t, s.Warnings, 1)
	assert.Equal(t, 3, s.Warnings[0].Row)
	assert.Contains(t, s.Warnings[0].Message, "expected 8 columns, found 4")
}

func TestLoadInvalidCellsBecomeMissing(t *testing.T) {
	p := writeCSV(t, header,
		"p1,abc,Male,2,0,Smokes,n/a,1",
	)
	s, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	r, _ := s.Get("p1")

	assert.True(t, r.Get(ColAge).IsMissing())
	assert.True(t, r.Get(ColHypertension).IsMissing())
	assert.True(t, r.Get(ColGlucose).IsMissing())
	assert.Equal(t, Int(0), r.Get(ColHeartDisease))
	assert.Equal(t, Int(1), r.Get(ColStrokeOccurrence))
	assert.Equal(t, Text("Smokes"), r.Get(ColSmokingStatus))
	assert.Len(t, s.Warnings, 3)
	for _, w := range s.Warnings {
		assert.Equal(t, 2, w.Row)
	}
}

func TestLoadBinaryRejectsNonLiteral(t *testing.T) {
	for _, raw := range []string{"2", "", "yes", " 1"} {
		s, err := Read(strings.NewReader(header+"\np1,50,Male,"+raw+",0,Smokes,100,1\n"), DefaultOptions())
		require.NoError(t, err)
		r, _ := s.Get("p1")
		assert.True(t, r.Get(ColHypertension).IsMissing(), "raw %q", raw)
	}
}

func TestLoadDuplicateKeysLastWriteWins(t *testing.T) {
	p := writeCSV(t, header,
		"p1,50,Male,1,0,Smokes,100,1",
		"p2,51,Male,1,0,Smokes,100,1",
		"p1,70,Female,0,1,Unknown,90,0",
	)
	s, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	r, _ := s.Get("p1")
	assert.Equal(t, Int(70), r.Get(ColAge))
	assert.Equal(t, Text("Female"), r.Get(ColGender))
	assert.Equal(t, "p1", s.Records()[0].Key)
}

func TestLoadGenderPolicy(t *testing.T) {
	in := header + "\np1,50,Unknown,1,0,Smokes,100,1\n"

	s, err := Read(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	r, _ := s.Get("p1")
	assert.Equal(t, Text("Unknown"), r.Get(ColGender))
	require.Len(t, s.Warnings, 1)
	assert.Equal(t, ColGender, s.Warnings[0].Field)

	opt := DefaultOptions()
	opt.StrictCategories = true
	s, err = Read(strings.NewReader(in), opt)
	require.NoError(t, err)
	r, _ = s.Get("p1")
	assert.True(t, r.Get(ColGender).IsMissing())
}

func TestReadDelimiterAndUnknownColumns(t *testing.T) {
	opt := DefaultOptions()
	opt.Delimiter = ';'
	s, err := Read(strings.NewReader("ID;Age;Notes\np1;40;first visit\n"), opt)
	require.NoError(t, err)
	r, _ := s.Get("p1")
	assert.Equal(t, Int(40), r.Get(ColAge))
	assert.Equal(t, Text("first visit"), r.Get("Notes"))
	assert.True(t, s.HasField("Notes"))
	assert.False(t, s.HasField("BMI"))
}

func TestReadSkipsUnparseableQuoting(t *testing.T) {
	in := "ID,Age\np1,40\np2,4\"1\np3,42\n"
	s, err := Read(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	require.Len(t, s.Warnings, 1)
	assert.Equal(t, 3, s.Warnings[0].Row)
}

func TestReadBlankLinesAndQuotedDelimiters(t *testing.T) {
	in := "ID,Age,Notes\np1,40,ok\n\np2,41,\"late, rescheduled\"\n"
	s, err := Read(strings.NewReader(in), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Empty(t, s.Warnings)
	r, _ := s.Get("p2")
	assert.Equal(t, Text("late, rescheduled"), r.Get("Notes"))
}
