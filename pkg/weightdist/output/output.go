// Package output writes transformed tables back to files.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knaka75/weightdist/pkg/weightdist"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// WriteFile writes the table to path, picking the writer by extension. CSV
// output carries no header row; XLSX output leads with the column labels.
// Other extensions are rejected with ErrUnsupportedFormat.
func WriteFile(t *models.Table, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := WriteCSV(t, f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	case ".xlsx":
		return WriteXLSXFile(t, path)
	default:
		return fmt.Errorf("%w: %q", weightdist.ErrUnsupportedFormat, filepath.Ext(path))
	}
}
