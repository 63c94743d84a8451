package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// PrintArea returns the print area defined for a sheet as an A1 range
// such as "A1:F42", or "" when the sheet has none.
func PrintArea(f *excelize.File, sheetName string) string {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return areas[0]
		}
	}
	return ""
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []string) {
	var (
		sheetName string
		areas     []string
	)

	// Split by comma for multiple print areas
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if area := normalizeRange(part[idx+1:]); area != "" {
			areas = append(areas, area)
		}
	}
	return sheetName, areas
}

// normalizeRange turns "$A$1:$D$10" into "A1:D10", or "" if malformed.
func normalizeRange(rangeStr string) string {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return ""
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return ""
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return ""
	}

	start, _ := excelize.CoordinatesToCellName(startCol, startRow)
	end, _ := excelize.CoordinatesToCellName(endCol, endRow)
	return start + ":" + end
}
