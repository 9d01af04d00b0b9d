package kspdv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	kitlog "github.com/go-kit/kit/log"
)

// ExportConfig configures the exporting of a delta-V matrix.
type ExportConfig struct {
	Filename  string
	Timestamp bool
	Header    bool // Prepends a commented header
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// NewLogger returns a logfmt logger writing to w, tagged with the subsystem.
func NewLogger(w io.Writer, subsys string) kitlog.Logger {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	return kitlog.With(klog, "subsys", subsys)
}

// WriteMatrixCSV writes the matrix as CSV: one header row of body names, then
// one row per departure body.
func WriteMatrixCSV(w io.Writer, m *DeltaVMatrix) error {
	cw := csv.NewWriter(w)
	n := m.catalog.Len()
	record := make([]string, n+1)
	record[0] = "from/to"
	for j, b := range m.catalog.bodies {
		record[j+1] = b.name
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	for i, b := range m.catalog.bodies {
		record[0] = b.name
		for j := 0; j < n; j++ {
			record[j+1] = strconv.Itoa(m.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportMatrix writes the matrix to a CSV file in the configured output directory
// and returns the path of that file.
// Nothing is left on disk if the export fails.
func ExportMatrix(conf ExportConfig, m *DeltaVMatrix, logger kitlog.Logger) (filename string, err error) {
	if conf.IsUseless() {
		return "", fmt.Errorf("%w: no filename to export to", ErrInvalidConfiguration)
	}
	cfg, err := dvConfig()
	if err != nil {
		return "", err
	}
	dir := cfg.OutputDir()
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("dv-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("dv-%s.csv", conf.Filename)
	}
	filename = filepath.Join(dir, filename)
	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(f.Name())
			filename = ""
		}
	}()
	if conf.Header {
		from, to := m.Orbiting()
		if _, err = fmt.Fprintf(f, `# Creation date (UTC): %s
# Records are the delta-V in m/s from the row body to the column body.
#   Departure: %s
#   Arrival: %s
`, time.Now().UTC(), state(from), state(to)); err != nil {
			return "", err
		}
	}
	if err = WriteMatrixCSV(f, m); err != nil {
		return "", err
	}
	logger.Log("level", "info", "message", "matrix exported", "file", filename, "bodies", m.catalog.Len())
	return filename, nil
}
