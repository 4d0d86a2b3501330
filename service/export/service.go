// Package export writes scan results to spreadsheet files. Reports are
// written to a temporary file in the destination directory and renamed into
// place, so a failed export never leaves a truncated report behind.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/elC0mpa/az-prune/model"
	"github.com/elC0mpa/az-prune/service/portal"
)

const sheetName = "Orphaned Resources"

// Columns, in order. Keep in sync with rowValues.
var columns = []string{"Name", "Type", "Resource Group", "Location", "Cost", "Portal URL"}

func NewService() *service {
	return &service{}
}

// DefaultFilename returns the default report name for the given day,
// e.g. "azure-orphans-2026-08-24.xlsx".
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("azure-orphans-%s.xlsx", now.Format("2006-01-02"))
}

// DisambiguatePath appends -1, -2, ... before the extension until the path
// no longer exists. Callers that prefer prompting can skip this.
func DisambiguatePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	stem := path[:len(path)-len(ext)]
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d%s", stem, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// ExportExcel implements service.ExportService.
func (s *service) ExportExcel(rows []model.OrphanedResource, tenantID, destinationPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return &ExportError{Path: destinationPath, Err: err}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"0066CC"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
	})
	if err != nil {
		return &ExportError{Path: destinationPath, Err: err}
	}

	for col, header := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return &ExportError{Path: destinationPath, Err: err}
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return &ExportError{Path: destinationPath, Err: err}
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(columns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return &ExportError{Path: destinationPath, Err: err}
	}

	widths := make([]int, len(columns))
	for i, header := range columns {
		widths[i] = len(header)
	}

	for i, row := range rows {
		for col, value := range rowValues(row, tenantID) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return &ExportError{Path: destinationPath, Err: err}
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return &ExportError{Path: destinationPath, Err: err}
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
	}

	for col := range columns {
		name, _ := excelize.ColumnNumberToName(col + 1)
		width := float64(widths[col] + 2)
		if width > 60 {
			width = 60
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return &ExportError{Path: destinationPath, Err: err}
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return &ExportError{Path: destinationPath, Err: err}
	}

	return s.atomicWrite(destinationPath, func(tmp *os.File) error {
		return f.Write(tmp)
	})
}

// ExportCSV implements service.ExportService.
func (s *service) ExportCSV(rows []model.OrphanedResource, tenantID, destinationPath string) error {
	return s.atomicWrite(destinationPath, func(tmp *os.File) error {
		w := csv.NewWriter(tmp)
		if err := w.Write(columns); err != nil {
			return err
		}
		for _, row := range rows {
			if err := w.Write(rowValues(row, tenantID)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	})
}

func rowValues(row model.OrphanedResource, tenantID string) []string {
	portalURL := ""
	if tenantID != "" && row.ID != "" {
		// Inputs are verified non-empty, so the builder cannot fail here.
		portalURL, _ = portal.BuildPortalURL(row.ID, tenantID)
	}
	return []string{
		row.Name,
		row.Category.DisplayName(),
		row.ResourceGroup,
		row.Location,
		row.Cost.Display(),
		portalURL,
	}
}

func (s *service) atomicWrite(destinationPath string, write func(tmp *os.File) error) error {
	dir := filepath.Dir(destinationPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(destinationPath)+".tmp-*")
	if err != nil {
		return &ExportError{Path: destinationPath, Err: fmt.Errorf("destination not writable: %w", err)}
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &ExportError{Path: destinationPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &ExportError{Path: destinationPath, Err: err}
	}
	if err := os.Rename(tmpPath, destinationPath); err != nil {
		os.Remove(tmpPath)
		return &ExportError{Path: destinationPath, Err: err}
	}
	return nil
}
