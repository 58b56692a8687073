package models

import "strconv"

// FieldOrder fixes the column order for tabular output formats.
var FieldOrder = []string{
	"id", "name", "last_name", "first_name", "gender", "birthdate", "age",
	"national_id", "ethnicity", "blood_type", "height_cm", "weight_kg",
	"phone", "email", "address", "city", "province", "zipcode", "country",
	"company", "job_title", "education", "major", "salary_range",
	"username", "password", "password_hash", "wechat_id", "qq_number",
	"political_status", "marital_status", "religion",
	"bank_card", "bank", "license_plate", "social_credit_code",
	"ip_address", "mac_address", "user_agent", "browser", "os",
	"zodiac_sign", "chinese_zodiac",
	"emergency_contact", "emergency_phone", "hobbies",
}

// FieldLabels maps field names to the Chinese labels shown in table output
// and the web form.
var FieldLabels = map[string]string{
	"id":                 "编号",
	"name":               "姓名",
	"last_name":          "姓",
	"first_name":         "名",
	"gender":             "性别",
	"birthdate":          "出生日期",
	"age":                "年龄",
	"national_id":        "身份证号",
	"ethnicity":          "民族",
	"blood_type":         "血型",
	"height_cm":          "身高(cm)",
	"weight_kg":          "体重(kg)",
	"phone":              "手机号",
	"email":              "邮箱",
	"address":            "地址",
	"city":               "城市",
	"province":           "省份",
	"zipcode":            "邮编",
	"country":            "国家",
	"company":            "公司",
	"job_title":          "职位",
	"education":          "学历",
	"major":              "专业",
	"salary_range":       "月薪范围",
	"username":           "用户名",
	"password":           "密码",
	"password_hash":      "密码哈希",
	"wechat_id":          "微信号",
	"qq_number":          "QQ号",
	"political_status":   "政治面貌",
	"marital_status":     "婚姻状况",
	"religion":           "宗教信仰",
	"bank_card":          "银行卡号",
	"bank":               "开户行",
	"license_plate":      "车牌号",
	"social_credit_code": "统一社会信用代码",
	"ip_address":         "IP地址",
	"mac_address":        "MAC地址",
	"user_agent":         "浏览器标识",
	"browser":            "浏览器",
	"os":                 "操作系统",
	"zodiac_sign":        "星座",
	"chinese_zodiac":     "生肖",
	"emergency_contact":  "紧急联系人",
	"emergency_phone":    "紧急联系电话",
	"hobbies":            "兴趣爱好",
}

// FieldValue returns the record's value for a named field as a display string.
// Unknown names return the empty string.
func (r *IdentityRecord) FieldValue(name string) string {
	switch name {
	case "id":
		return r.ID
	case "name":
		return r.Name
	case "last_name":
		return r.LastName
	case "first_name":
		return r.FirstName
	case "gender":
		return string(r.Gender)
	case "birthdate":
		return r.Birthdate
	case "age":
		return itoa(r.Age)
	case "national_id":
		return r.NationalID
	case "ethnicity":
		return r.Ethnicity
	case "blood_type":
		return r.BloodType
	case "height_cm":
		return itoa(r.HeightCM)
	case "weight_kg":
		return formatFloat(r.WeightKG)
	case "phone":
		return r.Phone
	case "email":
		return r.Email
	case "address":
		return r.Address
	case "city":
		return r.City
	case "province":
		return r.Province
	case "zipcode":
		return r.Zipcode
	case "country":
		return r.Country
	case "company":
		return r.Company
	case "job_title":
		return r.JobTitle
	case "education":
		return r.Education
	case "major":
		return r.Major
	case "salary_range":
		return r.SalaryRange
	case "username":
		return r.Username
	case "password":
		return r.Password
	case "password_hash":
		return r.PasswordHash
	case "wechat_id":
		return r.WechatID
	case "qq_number":
		return r.QQNumber
	case "political_status":
		return r.PoliticalStatus
	case "marital_status":
		return r.MaritalStatus
	case "religion":
		return r.Religion
	case "bank_card":
		return r.BankCard
	case "bank":
		return r.Bank
	case "license_plate":
		return r.LicensePlate
	case "social_credit_code":
		return r.SocialCreditCode
	case "ip_address":
		return r.IPAddress
	case "mac_address":
		return r.MACAddress
	case "user_agent":
		return r.UserAgent
	case "browser":
		return r.Browser
	case "os":
		return r.OS
	case "zodiac_sign":
		return r.ZodiacSign
	case "chinese_zodiac":
		return r.ChineseZodiac
	case "emergency_contact":
		return r.EmergencyContact
	case "emergency_phone":
		return r.EmergencyPhone
	case "hobbies":
		return r.Hobbies
	default:
		return ""
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
