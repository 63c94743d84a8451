package comment

import "encoding/json"

// Gemini generateContent request and response types, limited to the fields
// used here.

type generateContentRequest struct {
	Contents          []content          `json:"contents"`
	SystemInstruction *systemInstruction `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig  `json:"generationConfig,omitempty"`
}

type systemInstruction struct {
	Parts []part `json:"parts"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      *float64        `json:"temperature,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateContentResponse struct {
	Candidates     []candidate     `json:"candidates,omitempty"`
	PromptFeedback *promptFeedback `json:"promptFeedback,omitempty"`
}

type candidate struct {
	Content      *content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

type promptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// text concatenates the text parts of the first candidate.
func (r *generateContentResponse) text() string {
	if r == nil || len(r.Candidates) == 0 || r.Candidates[0].Content == nil {
		return ""
	}
	var s string
	for _, p := range r.Candidates[0].Content.Parts {
		s += p.Text
	}
	return s
}

// commentItem is one element of the comment response array.
type commentItem struct {
	ID      string `json:"id"`
	Comment string `json:"comment"`
}

// mediaResponse is the structure requested from the vision model.
type mediaResponse struct {
	SubjectName string        `json:"subjectName,omitempty"`
	Students    []mediaRecord `json:"students"`
}

type mediaRecord struct {
	Name     string   `json:"name"`
	Score    *float64 `json:"score,omitempty"`
	Rating   *string  `json:"rating,omitempty"`
	KQHT     *string  `json:"kqht,omitempty"`
	KQRL     *string  `json:"kqrl,omitempty"`
	Absences *float64 `json:"absences,omitempty"`
}

var commentSchema = json.RawMessage(`{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "id": {"type": "STRING"},
      "comment": {"type": "STRING"}
    },
    "required": ["id", "comment"]
  }
}`)

var mediaSchema = json.RawMessage(`{
  "type": "OBJECT",
  "properties": {
    "subjectName": {"type": "STRING", "nullable": true, "description": "Tên môn học tìm thấy trong ảnh (ví dụ: Tiếng Anh, Toán...)"},
    "students": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "name": {"type": "STRING", "description": "Họ và tên học sinh"},
          "score": {"type": "NUMBER", "nullable": true, "description": "Điểm trung bình (số)"},
          "rating": {"type": "STRING", "nullable": true, "description": "Xếp loại (chữ)"},
          "kqht": {"type": "STRING", "nullable": true, "description": "Kết quả học tập"},
          "kqrl": {"type": "STRING", "nullable": true, "description": "Kết quả rèn luyện"},
          "absences": {"type": "NUMBER", "nullable": true, "description": "Số buổi nghỉ"}
        },
        "required": ["name"]
      }
    }
  },
  "required": ["students"]
}`)
