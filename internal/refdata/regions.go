package refdata

// provinces lists the administrative-division hierarchy the generator draws
// regions from. Codes follow GB/T 2260; weights approximate population share.
// District codes feed the first six digits of the identity number, so every
// code here must be a real-looking 6-digit division code.
var provinces = []Province{
	{Name: "北京市", Code: "110000", PlateChar: "京", Weight: 0.016, Cities: []City{
		{Name: "北京市", Code: "110100", Zipcode: "100000", Districts: []District{
			{Name: "东城区", Code: "110101", Zipcode: "100010"},
			{Name: "西城区", Code: "110102", Zipcode: "100032"},
			{Name: "朝阳区", Code: "110105", Zipcode: "100020"},
			{Name: "海淀区", Code: "110108", Zipcode: "100089"},
			{Name: "丰台区", Code: "110106", Zipcode: "100071"},
		}},
	}},
	{Name: "天津市", Code: "120000", PlateChar: "津", Weight: 0.010, Cities: []City{
		{Name: "天津市", Code: "120100", Zipcode: "300000", Districts: []District{
			{Name: "和平区", Code: "120101", Zipcode: "300041"},
			{Name: "河西区", Code: "120103", Zipcode: "300202"},
			{Name: "南开区", Code: "120104", Zipcode: "300100"},
		}},
	}},
	{Name: "河北省", Code: "130000", PlateChar: "冀", Weight: 0.053, Cities: []City{
		{Name: "石家庄市", Code: "130100", Zipcode: "050000", Districts: []District{
			{Name: "长安区", Code: "130102", Zipcode: "050011"},
			{Name: "桥西区", Code: "130104", Zipcode: "050051"},
			{Name: "裕华区", Code: "130108", Zipcode: "050031"},
		}},
		{Name: "唐山市", Code: "130200", Zipcode: "063000", Districts: []District{
			{Name: "路南区", Code: "130202", Zipcode: "063017"},
			{Name: "路北区", Code: "130203", Zipcode: "063000"},
		}},
	}},
	{Name: "山西省", Code: "140000", PlateChar: "晋", Weight: 0.025, Cities: []City{
		{Name: "太原市", Code: "140100", Zipcode: "030000", Districts: []District{
			{Name: "小店区", Code: "140105", Zipcode: "030032"},
			{Name: "迎泽区", Code: "140106", Zipcode: "030002"},
		}},
	}},
	{Name: "内蒙古自治区", Code: "150000", PlateChar: "蒙", Weight: 0.017, Cities: []City{
		{Name: "呼和浩特市", Code: "150100", Zipcode: "010000", Districts: []District{
			{Name: "新城区", Code: "150102", Zipcode: "010050"},
			{Name: "赛罕区", Code: "150105", Zipcode: "010020"},
		}},
	}},
	{Name: "辽宁省", Code: "210000", PlateChar: "辽", Weight: 0.030, Cities: []City{
		{Name: "沈阳市", Code: "210100", Zipcode: "110000", Districts: []District{
			{Name: "和平区", Code: "210102", Zipcode: "110001"},
			{Name: "沈河区", Code: "210103", Zipcode: "110011"},
			{Name: "浑南区", Code: "210112", Zipcode: "110179"},
		}},
		{Name: "大连市", Code: "210200", Zipcode: "116000", Districts: []District{
			{Name: "中山区", Code: "210202", Zipcode: "116001"},
			{Name: "沙河口区", Code: "210204", Zipcode: "116021"},
		}},
	}},
	{Name: "吉林省", Code: "220000", PlateChar: "吉", Weight: 0.017, Cities: []City{
		{Name: "长春市", Code: "220100", Zipcode: "130000", Districts: []District{
			{Name: "朝阳区", Code: "220104", Zipcode: "130012"},
			{Name: "南关区", Code: "220102", Zipcode: "130041"},
		}},
	}},
	{Name: "黑龙江省", Code: "230000", PlateChar: "黑", Weight: 0.023, Cities: []City{
		{Name: "哈尔滨市", Code: "230100", Zipcode: "150000", Districts: []District{
			{Name: "道里区", Code: "230102", Zipcode: "150010"},
			{Name: "南岗区", Code: "230103", Zipcode: "150006"},
		}},
	}},
	{Name: "上海市", Code: "310000", PlateChar: "沪", Weight: 0.018, Cities: []City{
		{Name: "上海市", Code: "310100", Zipcode: "200000", Districts: []District{
			{Name: "黄浦区", Code: "310101", Zipcode: "200001"},
			{Name: "徐汇区", Code: "310104", Zipcode: "200030"},
			{Name: "浦东新区", Code: "310115", Zipcode: "200120"},
			{Name: "静安区", Code: "310106", Zipcode: "200040"},
		}},
	}},
	{Name: "江苏省", Code: "320000", PlateChar: "苏", Weight: 0.060, Cities: []City{
		{Name: "南京市", Code: "320100", Zipcode: "210000", Districts: []District{
			{Name: "玄武区", Code: "320102", Zipcode: "210018"},
			{Name: "鼓楼区", Code: "320106", Zipcode: "210009"},
			{Name: "江宁区", Code: "320115", Zipcode: "211100"},
		}},
		{Name: "苏州市", Code: "320500", Zipcode: "215000", Districts: []District{
			{Name: "姑苏区", Code: "320508", Zipcode: "215008"},
			{Name: "吴中区", Code: "320506", Zipcode: "215128"},
		}},
	}},
	{Name: "浙江省", Code: "330000", PlateChar: "浙", Weight: 0.046, Cities: []City{
		{Name: "杭州市", Code: "330100", Zipcode: "310000", Districts: []District{
			{Name: "西湖区", Code: "330106", Zipcode: "310013"},
			{Name: "拱墅区", Code: "330105", Zipcode: "310015"},
			{Name: "滨江区", Code: "330108", Zipcode: "310051"},
		}},
		{Name: "宁波市", Code: "330200", Zipcode: "315000", Districts: []District{
			{Name: "海曙区", Code: "330203", Zipcode: "315000"},
			{Name: "鄞州区", Code: "330212", Zipcode: "315100"},
		}},
	}},
	{Name: "安徽省", Code: "340000", PlateChar: "皖", Weight: 0.043, Cities: []City{
		{Name: "合肥市", Code: "340100", Zipcode: "230000", Districts: []District{
			{Name: "蜀山区", Code: "340104", Zipcode: "230031"},
			{Name: "包河区", Code: "340111", Zipcode: "230051"},
		}},
	}},
	{Name: "福建省", Code: "350000", PlateChar: "闽", Weight: 0.030, Cities: []City{
		{Name: "福州市", Code: "350100", Zipcode: "350000", Districts: []District{
			{Name: "鼓楼区", Code: "350102", Zipcode: "350001"},
			{Name: "台江区", Code: "350103", Zipcode: "350004"},
		}},
		{Name: "厦门市", Code: "350200", Zipcode: "361000", Districts: []District{
			{Name: "思明区", Code: "350203", Zipcode: "361001"},
			{Name: "湖里区", Code: "350206", Zipcode: "361006"},
		}},
	}},
	{Name: "江西省", Code: "360000", PlateChar: "赣", Weight: 0.032, Cities: []City{
		{Name: "南昌市", Code: "360100", Zipcode: "330000", Districts: []District{
			{Name: "东湖区", Code: "360102", Zipcode: "330006"},
			{Name: "红谷滩区", Code: "360113", Zipcode: "330038"},
		}},
	}},
	{Name: "山东省", Code: "370000", PlateChar: "鲁", Weight: 0.072, Cities: []City{
		{Name: "济南市", Code: "370100", Zipcode: "250000", Districts: []District{
			{Name: "历下区", Code: "370102", Zipcode: "250013"},
			{Name: "市中区", Code: "370103", Zipcode: "250001"},
		}},
		{Name: "青岛市", Code: "370200", Zipcode: "266000", Districts: []District{
			{Name: "市南区", Code: "370202", Zipcode: "266001"},
			{Name: "崂山区", Code: "370212", Zipcode: "266100"},
		}},
	}},
	{Name: "河南省", Code: "410000", PlateChar: "豫", Weight: 0.070, Cities: []City{
		{Name: "郑州市", Code: "410100", Zipcode: "450000", Districts: []District{
			{Name: "金水区", Code: "410105", Zipcode: "450003"},
			{Name: "二七区", Code: "410103", Zipcode: "450000"},
			{Name: "中原区", Code: "410102", Zipcode: "450007"},
		}},
		{Name: "洛阳市", Code: "410300", Zipcode: "471000", Districts: []District{
			{Name: "西工区", Code: "410303", Zipcode: "471000"},
			{Name: "洛龙区", Code: "410311", Zipcode: "471023"},
		}},
	}},
	{Name: "湖北省", Code: "420000", PlateChar: "鄂", Weight: 0.041, Cities: []City{
		{Name: "武汉市", Code: "420100", Zipcode: "430000", Districts: []District{
			{Name: "武昌区", Code: "420106", Zipcode: "430060"},
			{Name: "洪山区", Code: "420111", Zipcode: "430070"},
			{Name: "江汉区", Code: "420103", Zipcode: "430021"},
		}},
	}},
	{Name: "湖南省", Code: "430000", PlateChar: "湘", Weight: 0.047, Cities: []City{
		{Name: "长沙市", Code: "430100", Zipcode: "410000", Districts: []District{
			{Name: "岳麓区", Code: "430104", Zipcode: "410013"},
			{Name: "芙蓉区", Code: "430102", Zipcode: "410011"},
		}},
	}},
	{Name: "广东省", Code: "440000", PlateChar: "粤", Weight: 0.089, Cities: []City{
		{Name: "广州市", Code: "440100", Zipcode: "510000", Districts: []District{
			{Name: "天河区", Code: "440106", Zipcode: "510630"},
			{Name: "越秀区", Code: "440104", Zipcode: "510030"},
			{Name: "海珠区", Code: "440105", Zipcode: "510220"},
			{Name: "白云区", Code: "440111", Zipcode: "510080"},
		}},
		{Name: "深圳市", Code: "440300", Zipcode: "518000", Districts: []District{
			{Name: "南山区", Code: "440305", Zipcode: "518052"},
			{Name: "福田区", Code: "440304", Zipcode: "518026"},
			{Name: "宝安区", Code: "440306", Zipcode: "518101"},
			{Name: "龙岗区", Code: "440307", Zipcode: "518116"},
		}},
		{Name: "东莞市", Code: "441900", Zipcode: "523000", Districts: []District{
			{Name: "东莞市", Code: "441900", Zipcode: "523000"},
		}},
	}},
	{Name: "广西壮族自治区", Code: "450000", PlateChar: "桂", Weight: 0.036, Cities: []City{
		{Name: "南宁市", Code: "450100", Zipcode: "530000", Districts: []District{
			{Name: "青秀区", Code: "450103", Zipcode: "530022"},
			{Name: "西乡塘区", Code: "450107", Zipcode: "530001"},
		}},
	}},
	{Name: "海南省", Code: "460000", PlateChar: "琼", Weight: 0.007, Cities: []City{
		{Name: "海口市", Code: "460100", Zipcode: "570000", Districts: []District{
			{Name: "龙华区", Code: "460106", Zipcode: "570105"},
			{Name: "美兰区", Code: "460108", Zipcode: "570203"},
		}},
	}},
	{Name: "重庆市", Code: "500000", PlateChar: "渝", Weight: 0.023, Cities: []City{
		{Name: "重庆市", Code: "500100", Zipcode: "400000", Districts: []District{
			{Name: "渝中区", Code: "500103", Zipcode: "400010"},
			{Name: "江北区", Code: "500105", Zipcode: "400020"},
			{Name: "渝北区", Code: "500112", Zipcode: "401120"},
		}},
	}},
	{Name: "四川省", Code: "510000", PlateChar: "川", Weight: 0.059, Cities: []City{
		{Name: "成都市", Code: "510100", Zipcode: "610000", Districts: []District{
			{Name: "锦江区", Code: "510104", Zipcode: "610011"},
			{Name: "武侯区", Code: "510107", Zipcode: "610041"},
			{Name: "高新区", Code: "510109", Zipcode: "610041"},
		}},
	}},
	{Name: "贵州省", Code: "520000", PlateChar: "贵", Weight: 0.027, Cities: []City{
		{Name: "贵阳市", Code: "520100", Zipcode: "550000", Districts: []District{
			{Name: "云岩区", Code: "520103", Zipcode: "550001"},
			{Name: "南明区", Code: "520102", Zipcode: "550002"},
		}},
	}},
	{Name: "云南省", Code: "530000", PlateChar: "云", Weight: 0.033, Cities: []City{
		{Name: "昆明市", Code: "530100", Zipcode: "650000", Districts: []District{
			{Name: "五华区", Code: "530102", Zipcode: "650021"},
			{Name: "官渡区", Code: "530111", Zipcode: "650200"},
		}},
	}},
	{Name: "陕西省", Code: "610000", PlateChar: "陕", Weight: 0.028, Cities: []City{
		{Name: "西安市", Code: "610100", Zipcode: "710000", Districts: []District{
			{Name: "雁塔区", Code: "610113", Zipcode: "710061"},
			{Name: "碑林区", Code: "610103", Zipcode: "710001"},
			{Name: "未央区", Code: "610112", Zipcode: "710016"},
		}},
	}},
	{Name: "甘肃省", Code: "620000", PlateChar: "甘", Weight: 0.018, Cities: []City{
		{Name: "兰州市", Code: "620100", Zipcode: "730000", Districts: []District{
			{Name: "城关区", Code: "620102", Zipcode: "730030"},
			{Name: "七里河区", Code: "620103", Zipcode: "730050"},
		}},
	}},
	{Name: "新疆维吾尔自治区", Code: "650000", PlateChar: "新", Weight: 0.018, Cities: []City{
		{Name: "乌鲁木齐市", Code: "650100", Zipcode: "830000", Districts: []District{
			{Name: "天山区", Code: "650102", Zipcode: "830002"},
			{Name: "沙依巴克区", Code: "650103", Zipcode: "830000"},
		}},
	}},
}

// streets supplies road names for the street-level address line.
var streets = Table{Name: "streets", Entries: []Entry{
	{Value: "中山路", Weight: 2}, {Value: "人民路", Weight: 2}, {Value: "解放路", Weight: 2},
	{Value: "建设路", Weight: 2}, {Value: "和平路", Weight: 2}, {Value: "新华路", Weight: 2},
	{Value: "文化路", Weight: 1}, {Value: "胜利街", Weight: 1}, {Value: "幸福路", Weight: 1},
	{Value: "朝阳街", Weight: 1}, {Value: "光明路", Weight: 1}, {Value: "青年路", Weight: 1},
	{Value: "花园路", Weight: 1}, {Value: "长江路", Weight: 1}, {Value: "黄河路", Weight: 1},
	{Value: "育才路", Weight: 1}, {Value: "振兴街", Weight: 1}, {Value: "学府路", Weight: 1},
	{Value: "金水路", Weight: 1}, {Value: "世纪大道", Weight: 1},
}}

// communities supplies residential compound names appended after the street.
var communities = Table{Name: "communities", Entries: []Entry{
	{Value: "阳光小区", Weight: 2}, {Value: "翠湖花园", Weight: 1}, {Value: "锦绣家园", Weight: 1},
	{Value: "盛世华庭", Weight: 1}, {Value: "金色家园", Weight: 1}, {Value: "丽景苑", Weight: 1},
	{Value: "万科城", Weight: 1}, {Value: "碧桂园", Weight: 1}, {Value: "恒大名都", Weight: 1},
	{Value: "绿地中心", Weight: 1}, {Value: "中海国际", Weight: 1}, {Value: "保利花园", Weight: 1},
	{Value: "龙湖天街", Weight: 1}, {Value: "华润幸福里", Weight: 1}, {Value: "融创公馆", Weight: 1},
}}
