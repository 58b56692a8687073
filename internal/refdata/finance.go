package refdata

// bankBINs lists issuing bank prefixes with the full card length each issues.
// Debit cards run 19 digits, the CMB and CITIC entries model 16-digit cards.
var bankBINs = []BankBIN{
	{BIN: "622202", Bank: "中国工商银行", Length: 19},
	{BIN: "622848", Bank: "中国农业银行", Length: 19},
	{BIN: "621661", Bank: "中国银行", Length: 19},
	{BIN: "621700", Bank: "中国建设银行", Length: 19},
	{BIN: "622262", Bank: "交通银行", Length: 19},
	{BIN: "621799", Bank: "中国邮政储蓄银行", Length: 19},
	{BIN: "622588", Bank: "招商银行", Length: 16},
	{BIN: "622155", Bank: "中信银行", Length: 16},
	{BIN: "622516", Bank: "浦发银行", Length: 16},
	{BIN: "622666", Bank: "中国光大银行", Length: 16},
}

// ouis lists vendor MAC prefixes for the digital identity fields.
var ouis = []OUI{
	{Prefix: "00:E0:FC", Vendor: "Huawei"},
	{Prefix: "48:DB:50", Vendor: "Huawei"},
	{Prefix: "64:09:80", Vendor: "Xiaomi"},
	{Prefix: "F8:A4:5F", Vendor: "Xiaomi"},
	{Prefix: "3C:22:FB", Vendor: "Apple"},
	{Prefix: "A4:83:E7", Vendor: "Apple"},
	{Prefix: "94:65:2D", Vendor: "OnePlus"},
	{Prefix: "00:2A:10", Vendor: "Cisco"},
	{Prefix: "B0:A7:37", Vendor: "Realtek"},
	{Prefix: "00:0C:29", Vendor: "VMware"},
}

// userAgents weights realistic desktop and mobile browser strings. The device
// parser derives the browser and os fields from whichever string is drawn, so
// the three fields cannot disagree.
var userAgents = Table{Name: "user_agents", Entries: []Entry{
	{Value: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", Weight: 0.26},
	{Value: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0", Weight: 0.10},
	{Value: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36", Weight: 0.08},
	{Value: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15", Weight: 0.06},
	{Value: "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0", Weight: 0.05},
	{Value: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1", Weight: 0.16},
	{Value: "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36", Weight: 0.12},
	{Value: "Mozilla/5.0 (Linux; Android 13; SM-G9910) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Mobile Safari/537.36", Weight: 0.10},
	{Value: "Mozilla/5.0 (iPhone; CPU iPhone OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 MicroMessenger/8.0.44 NetType/WIFI", Weight: 0.07},
}}
