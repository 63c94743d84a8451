package comment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

func TestWordLimit(t *testing.T) {
	assert.Equal(t, 12, WordLimit(models.RoleSubject))
	assert.Equal(t, 20, WordLimit(models.RoleHomeroom))
}

func TestSubjectCharacteristics(t *testing.T) {
	tests := map[string]string{
		"Toán":              "tư duy logic",
		"Ngữ văn":           "cảm thụ văn học",
		"Tiếng Anh":         "từ vựng",
		"Ng.ngữ":            "từ vựng",
		"KHTN":              "Vật lý, Hóa học, Sinh học",
		"LS & ĐL":           "mốc thời gian",
		"Lịch sử và Địa lí": "mốc thời gian",
		"Vật lý":            "hiện tượng",
		"Hóa học":           "phương trình",
		"Sinh học":          "bảo vệ môi trường",
		"Tin học":           "lập trình",
		"GDCD":              "pháp luật",
		"C.nghệ":            "kỹ thuật, thiết kế",
		"Thể dục":           "thể lực",
		"Âm nhạc":           "thẩm mỹ",
		"HĐTN&HN":           "hoạt động tập thể",
		"NDGDCĐP":           "đặc trưng của địa phương",
		"Môn học":           "thái độ học tập",
	}
	for subject, want := range tests {
		assert.Contains(t, SubjectCharacteristics(subject), want, subject)
	}
}

func TestSystemPrompt(t *testing.T) {
	subject := SystemPrompt(models.RoleSubject, "Toán")
	assert.Contains(t, subject, "Giáo viên bộ môn dạy môn Toán")
	assert.Contains(t, subject, "TỐI ĐA 12 CHỮ")
	assert.Contains(t, subject, "tư duy logic")

	homeroom := SystemPrompt(models.RoleHomeroom, "Toán")
	assert.Contains(t, homeroom, "Giáo viên chủ nhiệm")
	assert.Contains(t, homeroom, "TỐI ĐA 20 CHỮ")
	assert.NotContains(t, homeroom, "tư duy logic")
}

func TestPayload(t *testing.T) {
	score := 7.0
	absences := 4
	records := []models.Record{
		{ID: "a", Name: "Nguyễn Văn A", Score: &score, AcademicResult: "T"},
		{ID: "b", Name: "Trần Thị B", Rating: "CĐ", Absences: &absences},
		{ID: "c", Name: "Lê Văn C", Comment: "cũ"},
	}

	data, err := Payload(records, models.RoleSubject)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":"a","name":"Nguyễn Văn A","score":7},
		{"id":"b","name":"Trần Thị B","score":"CĐ"},
		{"id":"c","name":"Lê Văn C"}
	]`, string(data))

	data, err = Payload(records, models.RoleHomeroom)
	require.NoError(t, err)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 3)
	assert.Equal(t, "T", items[0]["kqht"])
	assert.NotContains(t, items[0], "score")
	assert.Equal(t, float64(4), items[1]["absences"])
	assert.NotContains(t, items[2], "comment")
}

func TestMediaPrompt(t *testing.T) {
	assert.Contains(t, MediaPrompt(models.RoleHomeroom), "KQHT")
	assert.Contains(t, MediaPrompt(models.RoleSubject), "ĐTB")
}
