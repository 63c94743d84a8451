package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	sheet, areas := parsePrintAreaReference("'Lớp 6A'!$A$1:$H$45,'Lớp 6A'!$J$1:$K$45")
	assert.Equal(t, "Lớp 6A", sheet)
	assert.Equal(t, []string{"A1:H45", "J1:K45"}, areas)

	sheet, areas = parsePrintAreaReference("Sheet1!$B$2:$C")
	assert.Equal(t, "Sheet1", sheet)
	assert.Empty(t, areas)

	sheet, areas = parsePrintAreaReference("#REF!")
	assert.Equal(t, "#REF", sheet)
	assert.Empty(t, areas)
}

func TestPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Bảng điểm")
	require.NoError(t, err)
	require.NoError(t, f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "'Bảng điểm'!$A$3:$G$40",
		Scope:    "Bảng điểm",
	}))

	assert.Equal(t, "A3:G40", PrintArea(f, "Bảng điểm"))
	assert.Empty(t, PrintArea(f, "Sheet1"))
}
