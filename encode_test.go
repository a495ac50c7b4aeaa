package tearsheet

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadSeries(t *testing.T) {
	in := `date,return
2024-01-02,0.01
2024-01-03,-0.02
2024-01-04,0.03
`
	s, err := ReadSeries(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if v, ok := s.Get(NewDate(2024, 1, 3)); !ok || v != -0.02 {
		t.Errorf("Get(2024-01-03) = %v, %v", v, ok)
	}
}

func TestReadSeriesNoHeader(t *testing.T) {
	in := "2024-01-02,0.01\n2024-01-03,-0.02\n"
	s, err := ReadSeries(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
}

func TestReadSeriesBadRow(t *testing.T) {
	in := "date,return\n2024-01-02,0.01\nnot-a-date,0.02\n"
	_, err := ReadSeries(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected an error for a bad date")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name the line: %v", err)
	}

	in = "2024-01-02,banana\n"
	_, err = ReadSeries(strings.NewReader(in))
	if err == nil {
		t.Fatal("expected an error for a bad return value")
	}
	if !strings.Contains(err.Error(), "banana") {
		t.Errorf("error should quote the value: %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	s := sampleSeries()

	var buf bytes.Buffer
	if err := WriteSeries(&buf, s); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "date,return\n") {
		t.Errorf("missing header: %q", buf.String()[:20])
	}

	back, err := ReadSeries(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(back) {
		t.Error("round trip changed the series")
	}
}

func TestSeriesFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "returns.csv")
	s := sampleSeries()

	if err := WriteSeriesFile(path, s); err != nil {
		t.Fatal(err)
	}
	back, err := ReadSeriesFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Equal(back) {
		t.Error("file round trip changed the series")
	}

	if _, err := ReadSeriesFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
