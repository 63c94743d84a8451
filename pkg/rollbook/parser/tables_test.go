package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

func TestDetectTable(t *testing.T) {
	params := DefaultTableParams()

	rows := []models.Row{
		models.TextRow("", "", ""),
		models.TextRow("", "STT", "Họ và tên", "Điểm"),
		models.TextRow("", "1", "Nguyễn Văn A", "8"),
		models.TextRow("", "2", "Trần Thị B", "9"),
	}
	assert.Equal(t, "B2:D4", DetectTable(rows, params))
}

func TestDetectTableTooSparse(t *testing.T) {
	params := DefaultTableParams()

	assert.Empty(t, DetectTable(nil, params))
	assert.Empty(t, DetectTable([]models.Row{models.TextRow("a", "b")}, params))

	wide := make(models.Row, 200)
	wide[0] = models.Text("x")
	wide[199] = models.Text("y")
	rows := []models.Row{wide, {}, {models.Number(1)}}
	for i := 0; i < 30; i++ {
		rows = append(rows, models.Row{})
	}
	rows = append(rows, models.TextRow("z"))
	assert.Empty(t, DetectTable(rows, params))
}

func TestFindDataBounds(t *testing.T) {
	rows := []models.Row{
		{},
		{models.Empty(), models.Empty(), models.Number(3)},
		{models.Empty(), models.Text("a")},
	}
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	assert.Equal(t, 1, minRow)
	assert.Equal(t, 2, maxRow)
	assert.Equal(t, 1, minCol)
	assert.Equal(t, 2, maxCol)
	assert.Equal(t, 2, countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol))
}
