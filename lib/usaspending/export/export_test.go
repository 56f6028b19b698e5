package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"usaspending-client/lib/usaspending"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	page := usaspending.ResultPage{
		Results: []map[string]any{
			{"Award ID": "A-1", "Award Amount": 1200.5, "Recipient Name": "ACME Corp"},
			{"Award ID": "A-2", "Award Amount": float64(800), "Recipient Name": "Initech"},
		},
		PageMetadata: usaspending.PageMetadata{
			Page:  1,
			Total: 2,
		},
	}

	filename := filepath.Join(t.TempDir(), "awards.json")
	written, err := WriteJSON(page, filename)
	require.NoError(t, err)
	require.Equal(t, filename, written)

	buf, err := os.ReadFile(written)
	require.NoError(t, err)

	var readBack usaspending.ResultPage
	err = json.Unmarshal(buf, &readBack)
	require.NoError(t, err)

	if diff := cmp.Diff(page, readBack); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONEmptyResults(t *testing.T) {
	page := usaspending.ResultPage{Results: []map[string]any{}}

	filename := filepath.Join(t.TempDir(), "empty.json")
	written, err := WriteJSON(page, filename)
	require.NoError(t, err)

	buf, err := os.ReadFile(written)
	require.NoError(t, err)

	var readBack usaspending.ResultPage
	err = json.Unmarshal(buf, &readBack)
	require.NoError(t, err)
	require.NotNil(t, readBack.Results)
	require.Len(t, readBack.Results, 0)
}

func TestWriteJSONGeneratedFilename(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	written, err := WriteJSON(map[string]any{"results": []any{}}, "")
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`^usaspending_data_\d{8}_\d{6}\.json$`), written)

	_, err = os.Stat(written)
	require.NoError(t, err)
}

func TestWriteCSVEmptyResults(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteCSV(nil, filepath.Join(dir, "never.csv"))
	require.NoError(t, err)
	require.Empty(t, written)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

// the header comes from the first record alone: fields only later
// records carry are dropped without complaint
func TestWriteCSVHeaderFromFirstRecord(t *testing.T) {
	results := []map[string]any{
		{"A": float64(1), "B": float64(2)},
		{"A": float64(3), "B": float64(4), "C": float64(5)},
	}

	filename := filepath.Join(t.TempDir(), "awards.csv")
	written, err := WriteCSV(results, filename)
	require.NoError(t, err)

	f, err := os.Open(written)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"A", "B"}, rows[0])
	require.Equal(t, []string{"1", "2"}, rows[1])
	require.Equal(t, []string{"3", "4"}, rows[2])
}

func TestWriteCSVColumns(t *testing.T) {
	results := []map[string]any{
		{"Award ID": "A-1", "Recipient Name": "ACME Corp", "Award Amount": 1200.5},
		{"Award ID": "A-2"},
	}
	columns := []string{"Award ID", "Recipient Name", "Award Amount"}

	filename := filepath.Join(t.TempDir(), "awards.csv")
	written, err := WriteCSVColumns(results, columns, filename)
	require.NoError(t, err)

	f, err := os.Open(written)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, columns, rows[0])
	require.Equal(t, []string{"A-1", "ACME Corp", "1200.5"}, rows[1])
	// missing values render empty rather than erroring
	require.Equal(t, []string{"A-2", "", ""}, rows[2])
}
