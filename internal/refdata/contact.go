package refdata

// carriers groups phone prefixes by operator with market-share weights.
var carriers = []CarrierBlock{
	{Carrier: "china_mobile", Weight: 0.58, Prefixes: []string{
		"134", "135", "136", "137", "138", "139", "147", "150", "151", "152",
		"157", "158", "159", "178", "182", "183", "184", "187", "188", "198",
	}},
	{Carrier: "china_unicom", Weight: 0.26, Prefixes: []string{
		"130", "131", "132", "145", "155", "156", "166", "175", "176", "185", "186",
	}},
	{Carrier: "china_telecom", Weight: 0.15, Prefixes: []string{
		"133", "149", "153", "173", "177", "180", "181", "189", "199",
	}},
	{Carrier: "virtual", Weight: 0.01, Prefixes: []string{
		"170", "171",
	}},
}

// emailDomains weights mailbox providers by domestic popularity.
var emailDomains = Table{Name: "email_domains", Entries: []Entry{
	{Value: "qq.com", Weight: 0.35},
	{Value: "163.com", Weight: 0.20},
	{Value: "126.com", Weight: 0.10},
	{Value: "sina.com", Weight: 0.06},
	{Value: "outlook.com", Weight: 0.05},
	{Value: "gmail.com", Weight: 0.04},
	{Value: "aliyun.com", Weight: 0.04},
	{Value: "hotmail.com", Weight: 0.03},
	{Value: "foxmail.com", Weight: 0.03},
	{Value: "sohu.com", Weight: 0.03},
	{Value: "139.com", Weight: 0.03},
	{Value: "189.cn", Weight: 0.02},
	{Value: "yeah.net", Weight: 0.01},
	{Value: "wo.cn", Weight: 0.01},
}}

// qqLengths weights how many digits a QQ number carries. Shorter numbers are
// older registrations and correspondingly rare.
var qqLengths = Table{Name: "qq_lengths", Entries: []Entry{
	{Value: "5", Weight: 0.01},
	{Value: "6", Weight: 0.04},
	{Value: "7", Weight: 0.10},
	{Value: "8", Weight: 0.25},
	{Value: "9", Weight: 0.35},
	{Value: "10", Weight: 0.25},
}}

// relationships labels the emergency contact's relation to the record holder.
var relationships = Table{Name: "relationships", Entries: []Entry{
	{Value: "父亲", Weight: 0.22},
	{Value: "母亲", Weight: 0.22},
	{Value: "配偶", Weight: 0.25, MinAge: 22},
	{Value: "兄弟姐妹", Weight: 0.12},
	{Value: "子女", Weight: 0.09, MinAge: 45},
	{Value: "朋友", Weight: 0.10},
}}
