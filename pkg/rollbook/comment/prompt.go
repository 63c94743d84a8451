package comment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/rollbook-go/pkg/rollbook/models"
)

// DefaultSubject is used when neither the caller nor the sheet names a subject.
const DefaultSubject = "Môn học"

// WordLimit returns the maximum comment length in words for a role.
func WordLimit(role models.Role) int {
	if role == models.RoleHomeroom {
		return 20
	}
	return 12
}

type characteristicRule struct {
	keywords []string
	// all requires every keyword instead of any.
	all  bool
	text string
}

// characteristicRules describe what a comment should focus on per subject.
// Order matters: combined subjects precede their components.
var characteristicRules = []characteristicRule{
	{keywords: []string{"toán"}, text: "Tập trung vào tư duy logic, kỹ năng tính toán, khả năng vận dụng công thức và giải bài tập."},
	{keywords: []string{"văn", "việt"}, text: "Tập trung vào khả năng diễn đạt, dùng từ, cảm thụ văn học, chữ viết và chính tả."},
	{keywords: []string{"ng.ngữ", "ngoại ngữ", "anh"}, text: "Tập trung vào từ vựng, ngữ pháp, kỹ năng nghe-nói-đọc-viết, sự tự tin khi giao tiếp."},
	{keywords: []string{"khtn", "khoa học tự nhiên"}, text: "Tập trung vào kiến thức tổng hợp Vật lý, Hóa học, Sinh học và tư duy khoa học thực nghiệm."},
	{keywords: []string{"ls & đl"}, text: "Tập trung vào kiến thức lịch sử, địa lý, sự kiện, mốc thời gian và kỹ năng đọc bản đồ."},
	{keywords: []string{"lịch sử", "địa"}, all: true, text: "Tập trung vào kiến thức lịch sử, địa lý, sự kiện, mốc thời gian và kỹ năng đọc bản đồ."},
	{keywords: []string{"lý", "vật lí"}, text: "Tập trung vào tư duy vật lý, khả năng giải thích hiện tượng, thực hành thí nghiệm."},
	{keywords: []string{"hóa"}, text: "Tập trung vào kiến thức phương trình, tính chất hóa học, thao tác thí nghiệm."},
	{keywords: []string{"sinh"}, text: "Tập trung vào kiến thức sinh học, thế giới tự nhiên, bảo vệ môi trường."},
	{keywords: []string{"sử"}, text: "Tập trung vào khả năng ghi nhớ sự kiện, tư duy lịch sử, liên hệ thực tế."},
	{keywords: []string{"địa"}, text: "Tập trung vào kỹ năng đọc bản đồ, kiến thức địa lý tự nhiên/kinh tế xã hội."},
	{keywords: []string{"gdcd", "công dân"}, text: "Tập trung vào ý thức đạo đức, ứng xử, hiểu biết pháp luật và kỹ năng sống."},
	{keywords: []string{"tin"}, text: "Tập trung vào thao tác máy tính, tư duy lập trình, soạn thảo văn bản."},
	{keywords: []string{"c.nghệ", "công nghệ"}, text: "Tập trung vào kỹ năng kỹ thuật, thiết kế, áp dụng kiến thức vào đời sống."},
	{keywords: []string{"thể", "gdtc"}, text: "Tập trung vào thể lực, kỹ thuật động tác, tinh thần rèn luyện sức khỏe."},
	{keywords: []string{"nhạc", "mỹ thuật", "nghệ thuật"}, text: "Tập trung vào năng khiếu, khả năng thẩm mỹ, sự sáng tạo và hoàn thành sản phẩm."},
	{keywords: []string{"hđtn", "trải nghiệm", "hướng nghiệp"}, text: "Tập trung vào sự tham gia hoạt động tập thể, kỹ năng giải quyết vấn đề và định hướng tương lai."},
	{keywords: []string{"ndgdcđp", "địa phương"}, text: "Tập trung vào sự hiểu biết về văn hóa, lịch sử, kinh tế đặc trưng của địa phương."},
}

const defaultCharacteristics = "Tập trung vào thái độ học tập, sự chăm chỉ, mức độ hoàn thành nhiệm vụ môn học."

func (r characteristicRule) matches(lower string) bool {
	for _, k := range r.keywords {
		has := strings.Contains(lower, k)
		if r.all && !has {
			return false
		}
		if !r.all && has {
			return true
		}
	}
	return r.all
}

// SubjectCharacteristics returns the focus description for a subject label.
func SubjectCharacteristics(subject string) string {
	lower := strings.ToLower(subject)
	for _, r := range characteristicRules {
		if r.matches(lower) {
			return r.text
		}
	}
	return defaultCharacteristics
}

// SystemPrompt builds the instruction sent with every batch.
func SystemPrompt(role models.Role, subject string) string {
	limit := WordLimit(role)
	var roleInstruction, rules string

	if role == models.RoleHomeroom {
		roleInstruction = "Bạn là Giáo viên chủ nhiệm lớp."
		rules = fmt.Sprintf(`QUY TẮC NHẬN XÉT TỔNG HỢP (Theo Thông tư 22, TỐI ĐA %d CHỮ):
Phân tích sự tương quan giữa KQHT, KQRL và số ngày nghỉ:
1. Nhóm Tốt/Toàn diện: Khen ngợi ngoan ngoãn, gương mẫu, học giỏi.
2. Nhóm Khá: Ghi nhận ý thức phấn đấu, rèn luyện tốt.
3. Nhóm Cần cố gắng: Khuyên cần chú ý cải thiện môn học yếu hoặc thái độ.
4. Nhóm Chuyên cần: Nhắc nhở nếu nghỉ nhiều.
Viết một câu nhận xét tổng quát bao hàm cả học lực và hạnh kiểm.`, limit)
	} else {
		roleInstruction = fmt.Sprintf("Bạn là Giáo viên bộ môn dạy môn %s.", subject)
		rules = fmt.Sprintf(`ĐẶC THÙ BỘ MÔN: %s

QUY TẮC NHẬN XÉT (Kết hợp điểm số và đặc thù môn):
- Cực kỳ ngắn gọn, súc tích (TỐI ĐA %d CHỮ).
- Điểm Giỏi (>= 8.0) hoặc Đạt Tốt: Khen ngợi năng lực đặc thù của môn, xác nhận nắm vững kiến thức.
- Điểm Khá (6.5 - 7.9): Ghi nhận sự cố gắng, nhưng cần cẩn thận hoặc phát huy thêm.
- Điểm Trung bình (5.0 - 6.4) hoặc Đạt: Cần chăm chỉ hơn, chú ý bài giảng.
- Điểm Yếu/Kém (< 5.0) hoặc Chưa đạt (CĐ): Nhắc nhở việc học lại kiến thức cơ bản.`, SubjectCharacteristics(subject), limit)
	}

	return fmt.Sprintf(`%s
Nhiệm vụ: Viết nhận xét ngắn gọn cho học bạ.
Yêu cầu BẮT BUỘC:
- Độ dài: KHÔNG QUÁ %d từ.
- Văn phong sư phạm, động viên, tích cực.
- KHÔNG phán xét nặng nề.
%s`, roleInstruction, limit, rules)
}

type subjectPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score any    `json:"score,omitempty"`
}

type homeroomPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	KQHT     string `json:"kqht,omitempty"`
	KQRL     string `json:"kqrl,omitempty"`
	Absences *int   `json:"absences,omitempty"`
}

// Payload serializes the role-relevant fields of records.
func Payload(records []models.Record, role models.Role) ([]byte, error) {
	if role == models.RoleHomeroom {
		items := make([]homeroomPayload, len(records))
		for i, r := range records {
			items[i] = homeroomPayload{
				ID:       r.ID,
				Name:     r.Name,
				KQHT:     r.AcademicResult,
				KQRL:     r.ConductRating,
				Absences: r.Absences,
			}
		}
		return json.Marshal(items)
	}

	items := make([]subjectPayload, len(records))
	for i, r := range records {
		item := subjectPayload{ID: r.ID, Name: r.Name}
		switch {
		case r.Score != nil:
			item.Score = *r.Score
		case r.Rating != "":
			item.Score = r.Rating
		}
		items[i] = item
	}
	return json.Marshal(items)
}

// MediaPrompt asks a vision model to read a grade table.
func MediaPrompt(role models.Role) string {
	if role == models.RoleHomeroom {
		return `Bạn là trợ lý nhập liệu. Hãy trích xuất bảng tổng kết từ hình ảnh/PDF này.
- Họ tên: Lấy đầy đủ.
- Kết quả học tập (KQHT): Tốt/Khá/Đạt/Chưa đạt (hoặc T/K/Đ/CĐ/TB/Y/Kém).
- Kết quả rèn luyện (KQRL): Tốt/Khá/Đạt/Chưa đạt (hoặc T/K/Đ/CĐ).
- Số ngày nghỉ: Số buổi nghỉ học.`
	}
	return `Bạn là trợ lý nhập liệu. Hãy phân tích hình ảnh/PDF bảng điểm này:
1. TÌM TÊN MÔN HỌC: Đọc kỹ tiêu đề bảng (ví dụ: "MÔN TIẾNG ANH", "Hóa học", "Toán"...).
2. TRÍCH XUẤT DANH SÁCH HỌC SINH:
- Cột họ tên: Lấy đầy đủ họ và tên. Gộp họ và tên nếu tách rời.
- Cột điểm: Tìm cột điểm tổng kết cuối cùng (thường ghi là ĐTB, ĐTBmhk, TBM, hoặc cột điểm số cuối cùng bên phải). Trả về dạng số.
- Cột xếp loại: Tìm cột xếp loại hoặc Đ/CĐ.
- Chỉ lấy các dòng chứa thông tin học sinh. Bỏ qua dòng tiêu đề và footer.`
}
