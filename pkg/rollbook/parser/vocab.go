package parser

import (
	"regexp"
	"strings"
)

// excludedKeywords are header and grading words that never form part of a
// name when a cell equals one of them exactly (compared lowercased).
var excludedKeywords = newWordSet(
	"stt", "đđgtx", "đđgck", "đtbmhk",
	"họ", "tên", "thứ", "ngày", "tháng", "năm", "lớp", "trường",
	"dân", "tộc", "nữ", "nam", "điểm", "trung", "bình", "xếp", "loại",
	"ghi", "chú", "kết", "quả", "học", "kỳ", "môn", "toán", "lý", "hóa",
	"sinh", "sử", "địa", "anh", "gdcd", "công", "nghệ", "tin", "thể",
	"giáo", "viên", "người", "lập", "biểu", "thống", "kê", "đạt", "chưa",
	"tbm", "đtb", "hk1", "hk2", "cn", "tốt", "khá",
	"ubnd", "thcs", "thpt", "tiểu", "phòng", "sở", "đào", "tạo", "cộng", "hòa",
	"xã", "huyện", "tỉnh", "thành", "phố", "độc", "lập", "tự", "do",
	"đđg", "tx", "đgtx", "đđgc", "nhận", "xét", "khối",
	"số", "lượng", "tỉ", "lệ", "tỷ", "phần", "trăm", "tổng",
)

// substringExclusions disqualify a name cell when contained anywhere in it
// (compared lowercased).
var substringExclusions = []string{
	"trường", "phòng", "ủy", "ban", "cộng", "hòa",
	"số lượng", "tỉ lệ", "tỷ lệ", "thống kê",
}

// InstitutionalMarkers identify school and state header lines (compared uppercased).
var InstitutionalMarkers = []string{"TRƯỜNG", "THCS", "THPT", "UBND", "CỘNG HÒA", "ĐỘC LẬP"}

// FooterMarkers identify statistical summary lines (compared uppercased).
var FooterMarkers = []string{"SỐ LƯỢNG", "TỈ LỆ", "TỶ LỆ", "TỔNG CỘNG", "THỐNG KÊ"}

// textLineMarkers are extra lowercase markers that drop a pasted line.
var textLineMarkers = []string{"họ và tên", "người lập", "ngày", "thcs", "ubnd", "số lượng", "tỉ lệ"}

var (
	// abbreviationPattern matches rating codes and column codes (TX1, HK2)
	// that look like short words but are never names.
	abbreviationPattern = regexp.MustCompile(`^(T|K|TB|Y|G|Đ|CĐ|TX\d|HK\d)$`)

	// shortRatingPattern matches the rating abbreviations accepted from pasted text.
	shortRatingPattern = regexp.MustCompile(`(?i)^(T|K|Đ|CĐ|G|TB|Y)$`)

	integerPattern = regexp.MustCompile(`^\d+$`)
	decimalPattern = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)
	digitPattern   = regexp.MustCompile(`\d`)
)

// SubjectRatings are the tokens a subject teacher may record instead of a score.
var SubjectRatings = newWordSet("T", "K", "Đ", "CĐ", "TB", "G", "Y", "ĐẠT", "CHƯA ĐẠT")

// ExtendedRatings are the tokens accepted for KQHT and KQRL columns.
var ExtendedRatings = newWordSet(
	"T", "K", "Đ", "CĐ", "G", "TB", "Y",
	"TỐT", "KHÁ", "ĐẠT", "CHƯA ĐẠT", "GIỎI", "YẾU", "TRUNG BÌNH", "KÉM",
)

// SubjectRule maps a keyword group to a canonical subject label.
type SubjectRule struct {
	Label    string
	Keywords []string
}

// matches reports whether any keyword occurs in the lowercase text.
func (r SubjectRule) matches(lower string) bool {
	for _, k := range r.Keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// SubjectRuleSet is an ordered list of rules; the first match wins.
type SubjectRuleSet []SubjectRule

// Match returns the label of the first rule matching text, or "".
func (rs SubjectRuleSet) Match(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rs {
		if r.matches(lower) {
			return r.Label
		}
	}
	return ""
}

// Labels returns the labels in priority order.
func (rs SubjectRuleSet) Labels() []string {
	labels := make([]string, len(rs))
	for i, r := range rs {
		labels[i] = r.Label
	}
	return labels
}

// Canonical subject labels.
const (
	SubjectMath        = "Toán"
	SubjectLiterature  = "Văn"
	SubjectHistoryGeo  = "LS & ĐL"
	SubjectScience     = "KHTN"
	SubjectInformatics = "Tin học"
	SubjectLanguage    = "Ng.ngữ"
	SubjectCivics      = "GDCD"
	SubjectTechnology  = "C.nghệ"
	SubjectPhysicalEd  = "GDTC"
	SubjectArts        = "Nghệ thuật"
	SubjectLocal       = "NDGDCĐP"
	SubjectExperience  = "HĐTN&HN"
)

// HeaderSubjectRules detect the subject from sheet header text.
var HeaderSubjectRules = SubjectRuleSet{
	{SubjectMath, []string{"toán"}},
	{SubjectLiterature, []string{"văn", "việt", "ngữ"}},
	{SubjectHistoryGeo, []string{"lịch sử", "địa lý", "sử", "địa"}},
	{SubjectScience, []string{"khoa học tự nhiên", "khtn", "lý", "hóa", "sinh", "vật lý", "vật lí", "sinh học", "hóa học"}},
	{SubjectInformatics, []string{"tin", "tin học"}},
	{SubjectLanguage, []string{"anh", "ngoại ngữ", "tiếng anh"}},
	{SubjectCivics, []string{"gdcd", "công dân"}},
	{SubjectTechnology, []string{"công nghệ"}},
	{SubjectPhysicalEd, []string{"thể dục", "gdtc", "thể chất"}},
	{SubjectArts, []string{"nhạc", "mỹ thuật", "âm nhạc", "nghệ thuật"}},
	{SubjectLocal, []string{"địa phương", "ndgdcđp"}},
	{SubjectExperience, []string{"trải nghiệm", "hướng nghiệp", "hđtn"}},
}

// NameSubjectRules normalize a free-form subject name, such as one read by a
// vision model from a table title.
var NameSubjectRules = SubjectRuleSet{
	{SubjectMath, []string{"toán"}},
	{SubjectLiterature, []string{"văn", "việt", "ngữ"}},
	{SubjectHistoryGeo, []string{"ls", "lịch sử", "địa"}},
	{SubjectScience, []string{"khtn", "khoa học tự nhiên", "lý", "hóa", "sinh", "vật"}},
	{SubjectInformatics, []string{"tin"}},
	{SubjectLanguage, []string{"anh", "ngoại ngữ"}},
	{SubjectCivics, []string{"gdcd", "công dân"}},
	{SubjectTechnology, []string{"công nghệ", "c.nghệ"}},
	{SubjectPhysicalEd, []string{"thể", "gdtc"}},
	{SubjectArts, []string{"nhạc", "mỹ thuật", "nghệ thuật"}},
	{SubjectLocal, []string{"địa phương", "ndgdcđp"}},
	{SubjectExperience, []string{"trải nghiệm", "hướng nghiệp", "hđtn"}},
}

// WordSet is a closed set of vocabulary tokens.
type WordSet map[string]struct{}

func newWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports whether w is in the set.
func (s WordSet) Has(w string) bool {
	_, ok := s[w]
	return ok
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
