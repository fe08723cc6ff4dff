package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/okian/matchtag/internal/domain/model"
)

// ZIP bundles {base}.csv and {base}_LiveTagProFormat.xml with deflate
// compression and returns the archive bytes.
func (e *Exporter) ZIP(base string, events []model.Event) ([]byte, error) {
	csvData, err := e.CSV(events)
	if err != nil {
		return nil, err
	}
	xmlData, err := e.XML(events)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct {
		name string
		data []byte
	}{
		{base + ".csv", csvData},
		{XMLFileName(base), xmlData},
	}
	for _, entry := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     entry.name,
			Method:   zip.Deflate,
			Modified: e.now(),
		})
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", entry.name, err)
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
