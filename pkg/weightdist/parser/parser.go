// Package parser reads tabular input files into the models.Table the
// pipeline operates on.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knaka75/weightdist/pkg/weightdist"
	"github.com/knaka75/weightdist/pkg/weightdist/models"
)

// ReadFile reads the file at path into a table, picking the reader by
// extension. CSV input has no header row; XLSX input contributes the first
// sheet with row 1 as the header. Other extensions are rejected with
// ErrUnsupportedFormat.
func ReadFile(path string) (*models.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadCSV(f)
	case ".xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %q", weightdist.ErrUnsupportedFormat, filepath.Ext(path))
	}
}
