package refdata

var genders = Table{Name: "genders", Entries: []Entry{
	{Value: "male", Weight: 0.512},
	{Value: "female", Weight: 0.488},
}}

// ageBuckets shapes the default adult age distribution. The assembler clips
// buckets against the configured age range before sampling a birthdate.
var ageBuckets = Table{Name: "age_buckets", Entries: []Entry{
	{Value: "18-25", Weight: 0.22, MinAge: 18, MaxAge: 25},
	{Value: "26-35", Weight: 0.30, MinAge: 26, MaxAge: 35},
	{Value: "36-45", Weight: 0.22, MinAge: 36, MaxAge: 45},
	{Value: "46-55", Weight: 0.16, MinAge: 46, MaxAge: 55},
	{Value: "56-70", Weight: 0.10, MinAge: 56, MaxAge: 70},
}}

var ethnicities = Table{Name: "ethnicities", Entries: []Entry{
	{Value: "汉族", Weight: 0.9111},
	{Value: "壮族", Weight: 0.0139},
	{Value: "回族", Weight: 0.0081},
	{Value: "满族", Weight: 0.0074},
	{Value: "维吾尔族", Weight: 0.0083},
	{Value: "苗族", Weight: 0.0079},
	{Value: "彝族", Weight: 0.0070},
	{Value: "土家族", Weight: 0.0067},
	{Value: "藏族", Weight: 0.0050},
	{Value: "蒙古族", Weight: 0.0045},
	{Value: "侗族", Weight: 0.0025},
	{Value: "布依族", Weight: 0.0025},
	{Value: "瑶族", Weight: 0.0023},
	{Value: "白族", Weight: 0.0015},
	{Value: "朝鲜族", Weight: 0.0013},
}}

var bloodTypes = Table{Name: "blood_types", Entries: []Entry{
	{Value: "O", Weight: 0.41},
	{Value: "A", Weight: 0.28},
	{Value: "B", Weight: 0.24},
	{Value: "AB", Weight: 0.07},
}}

// educations is the attainment ladder. MinAge marks the youngest age at which
// the level can plausibly have been completed.
var educations = Table{Name: "educations", Entries: []Entry{
	{Value: "小学", Weight: 0.05, MinAge: 6},
	{Value: "初中", Weight: 0.15, MinAge: 12},
	{Value: "高中", Weight: 0.16, MinAge: 15},
	{Value: "中专", Weight: 0.12, MinAge: 15},
	{Value: "大专", Weight: 0.20, MinAge: 18},
	{Value: "本科", Weight: 0.24, MinAge: 18},
	{Value: "硕士", Weight: 0.06, MinAge: 22},
	{Value: "博士", Weight: 0.02, MinAge: 26},
}}

// tertiaryEducations enumerates the levels that carry an academic major.
var tertiaryEducations = map[string]bool{
	"大专": true,
	"本科": true,
	"硕士": true,
	"博士": true,
}

// HasMajor reports whether the given education level implies a field of study.
func HasMajor(education string) bool {
	return tertiaryEducations[education]
}

// politicals gates party membership on age: full membership requires 18,
// league membership covers ages 14 through 28.
var politicals = Table{Name: "political_statuses", Entries: []Entry{
	{Value: "群众", Weight: 0.68},
	{Value: "共青团员", Weight: 0.21, MinAge: 14, MaxAge: 28},
	{Value: "中共党员", Weight: 0.10, MinAge: 18},
	{Value: "民主党派", Weight: 0.01, MinAge: 18},
}}

// maritals gates states on the ages where they become plausible.
var maritals = Table{Name: "marital_statuses", Entries: []Entry{
	{Value: "未婚", Weight: 0.35},
	{Value: "已婚", Weight: 0.52, MinAge: 22},
	{Value: "离异", Weight: 0.09, MinAge: 24},
	{Value: "丧偶", Weight: 0.04, MinAge: 35},
}}

var religions = Table{Name: "religions", Entries: []Entry{
	{Value: "无宗教信仰", Weight: 0.881},
	{Value: "佛教", Weight: 0.060},
	{Value: "道教", Weight: 0.020},
	{Value: "基督教", Weight: 0.020},
	{Value: "天主教", Weight: 0.010},
	{Value: "伊斯兰教", Weight: 0.009},
}}

var hobbies = Table{Name: "hobbies", Entries: []Entry{
	{Value: "阅读", Weight: 2}, {Value: "旅行", Weight: 2}, {Value: "摄影", Weight: 2},
	{Value: "音乐", Weight: 2}, {Value: "电影", Weight: 2}, {Value: "健身", Weight: 2},
	{Value: "跑步", Weight: 2}, {Value: "游泳", Weight: 1}, {Value: "篮球", Weight: 1},
	{Value: "足球", Weight: 1}, {Value: "羽毛球", Weight: 1}, {Value: "乒乓球", Weight: 1},
	{Value: "书法", Weight: 1}, {Value: "绘画", Weight: 1}, {Value: "烹饪", Weight: 2},
	{Value: "钓鱼", Weight: 1}, {Value: "登山", Weight: 1}, {Value: "骑行", Weight: 1},
	{Value: "瑜伽", Weight: 1}, {Value: "舞蹈", Weight: 1}, {Value: "唱歌", Weight: 1},
	{Value: "游戏", Weight: 2}, {Value: "园艺", Weight: 1}, {Value: "茶艺", Weight: 1},
	{Value: "象棋", Weight: 1}, {Value: "围棋", Weight: 1},
}}
