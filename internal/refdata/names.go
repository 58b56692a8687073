package refdata

// surnames carries the hundred most common family names weighted by their
// approximate share of the 2020 census. The sampler renormalizes, so the
// weights need not sum to one.
var surnames = Table{Name: "surnames", Entries: []Entry{
	{Value: "王", Weight: 0.0721},
	{Value: "李", Weight: 0.0718},
	{Value: "张", Weight: 0.0674},
	{Value: "刘", Weight: 0.0538},
	{Value: "陈", Weight: 0.0453},
	{Value: "杨", Weight: 0.0308},
	{Value: "黄", Weight: 0.0230},
	{Value: "赵", Weight: 0.0229},
	{Value: "吴", Weight: 0.0203},
	{Value: "周", Weight: 0.0201},
	{Value: "徐", Weight: 0.0166},
	{Value: "孙", Weight: 0.0154},
	{Value: "马", Weight: 0.0131},
	{Value: "朱", Weight: 0.0126},
	{Value: "胡", Weight: 0.0124},
	{Value: "郭", Weight: 0.0115},
	{Value: "何", Weight: 0.0106},
	{Value: "林", Weight: 0.0105},
	{Value: "罗", Weight: 0.0086},
	{Value: "高", Weight: 0.0084},
	{Value: "郑", Weight: 0.0078},
	{Value: "梁", Weight: 0.0077},
	{Value: "谢", Weight: 0.0072},
	{Value: "宋", Weight: 0.0068},
	{Value: "唐", Weight: 0.0065},
	{Value: "许", Weight: 0.0064},
	{Value: "韩", Weight: 0.0059},
	{Value: "邓", Weight: 0.0058},
	{Value: "冯", Weight: 0.0055},
	{Value: "曹", Weight: 0.0055},
	{Value: "彭", Weight: 0.0049},
	{Value: "曾", Weight: 0.0048},
	{Value: "肖", Weight: 0.0044},
	{Value: "田", Weight: 0.0042},
	{Value: "董", Weight: 0.0041},
	{Value: "潘", Weight: 0.0041},
	{Value: "袁", Weight: 0.0040},
	{Value: "蔡", Weight: 0.0039},
	{Value: "蒋", Weight: 0.0039},
	{Value: "余", Weight: 0.0038},
	{Value: "于", Weight: 0.0038},
	{Value: "杜", Weight: 0.0037},
	{Value: "叶", Weight: 0.0037},
	{Value: "程", Weight: 0.0036},
	{Value: "魏", Weight: 0.0035},
	{Value: "苏", Weight: 0.0034},
	{Value: "吕", Weight: 0.0033},
	{Value: "丁", Weight: 0.0032},
	{Value: "任", Weight: 0.0032},
	{Value: "卢", Weight: 0.0032},
	{Value: "姚", Weight: 0.0031},
	{Value: "沈", Weight: 0.0030},
	{Value: "钟", Weight: 0.0030},
	{Value: "姜", Weight: 0.0029},
	{Value: "崔", Weight: 0.0028},
	{Value: "谭", Weight: 0.0028},
	{Value: "陆", Weight: 0.0027},
	{Value: "范", Weight: 0.0026},
	{Value: "汪", Weight: 0.0026},
	{Value: "廖", Weight: 0.0025},
	{Value: "石", Weight: 0.0024},
	{Value: "金", Weight: 0.0024},
	{Value: "韦", Weight: 0.0023},
	{Value: "贾", Weight: 0.0023},
	{Value: "夏", Weight: 0.0022},
	{Value: "付", Weight: 0.0022},
	{Value: "方", Weight: 0.0021},
	{Value: "邹", Weight: 0.0021},
	{Value: "熊", Weight: 0.0020},
	{Value: "白", Weight: 0.0020},
	{Value: "孟", Weight: 0.0019},
	{Value: "秦", Weight: 0.0019},
	{Value: "邱", Weight: 0.0019},
	{Value: "侯", Weight: 0.0018},
	{Value: "江", Weight: 0.0018},
	{Value: "尹", Weight: 0.0018},
	{Value: "薛", Weight: 0.0017},
	{Value: "闫", Weight: 0.0017},
	{Value: "段", Weight: 0.0016},
	{Value: "雷", Weight: 0.0016},
	{Value: "龙", Weight: 0.0015},
	{Value: "黎", Weight: 0.0015},
	{Value: "史", Weight: 0.0015},
	{Value: "陶", Weight: 0.0014},
	{Value: "贺", Weight: 0.0014},
	{Value: "顾", Weight: 0.0014},
	{Value: "毛", Weight: 0.0013},
	{Value: "郝", Weight: 0.0013},
	{Value: "龚", Weight: 0.0012},
	{Value: "邵", Weight: 0.0012},
	{Value: "万", Weight: 0.0012},
	{Value: "钱", Weight: 0.0011},
	{Value: "严", Weight: 0.0011},
	{Value: "覃", Weight: 0.0010},
	{Value: "武", Weight: 0.0010},
	{Value: "戴", Weight: 0.0010},
	{Value: "莫", Weight: 0.0009},
	{Value: "孔", Weight: 0.0009},
	{Value: "向", Weight: 0.0009},
	{Value: "汤", Weight: 0.0008},
}}

// givenNameLengths weights how many characters the given name carries.
var givenNameLengths = Table{Name: "given_name_lengths", Entries: []Entry{
	{Value: "1", Weight: 0.30},
	{Value: "2", Weight: 0.65},
	{Value: "3", Weight: 0.05},
}}

var maleGivenChars = Table{Name: "male_given_chars", Entries: []Entry{
	{Value: "伟", Weight: 3}, {Value: "强", Weight: 3}, {Value: "磊", Weight: 3},
	{Value: "军", Weight: 3}, {Value: "洋", Weight: 2}, {Value: "勇", Weight: 2},
	{Value: "杰", Weight: 3}, {Value: "涛", Weight: 2}, {Value: "超", Weight: 2},
	{Value: "明", Weight: 3}, {Value: "刚", Weight: 2}, {Value: "平", Weight: 2},
	{Value: "辉", Weight: 2}, {Value: "鹏", Weight: 2}, {Value: "华", Weight: 2},
	{Value: "飞", Weight: 2}, {Value: "鑫", Weight: 2}, {Value: "波", Weight: 2},
	{Value: "斌", Weight: 2}, {Value: "宇", Weight: 3}, {Value: "浩", Weight: 3},
	{Value: "凯", Weight: 2}, {Value: "瑞", Weight: 2}, {Value: "晨", Weight: 2},
	{Value: "帆", Weight: 1}, {Value: "龙", Weight: 2}, {Value: "健", Weight: 2},
	{Value: "宏", Weight: 2}, {Value: "哲", Weight: 2}, {Value: "坤", Weight: 1},
	{Value: "志", Weight: 2}, {Value: "文", Weight: 2}, {Value: "博", Weight: 2},
	{Value: "天", Weight: 1}, {Value: "子", Weight: 2}, {Value: "嘉", Weight: 2},
	{Value: "俊", Weight: 2}, {Value: "铭", Weight: 2}, {Value: "睿", Weight: 2},
	{Value: "泽", Weight: 2}, {Value: "轩", Weight: 2}, {Value: "航", Weight: 1},
}}

var femaleGivenChars = Table{Name: "female_given_chars", Entries: []Entry{
	{Value: "芳", Weight: 3}, {Value: "娜", Weight: 2}, {Value: "敏", Weight: 3},
	{Value: "静", Weight: 3}, {Value: "丽", Weight: 3}, {Value: "娟", Weight: 2},
	{Value: "艳", Weight: 2}, {Value: "燕", Weight: 2}, {Value: "玲", Weight: 2},
	{Value: "婷", Weight: 2}, {Value: "雪", Weight: 2}, {Value: "倩", Weight: 2},
	{Value: "悦", Weight: 2}, {Value: "琳", Weight: 2}, {Value: "晶", Weight: 1},
	{Value: "欣", Weight: 2}, {Value: "蕾", Weight: 1}, {Value: "璐", Weight: 1},
	{Value: "颖", Weight: 2}, {Value: "琴", Weight: 1}, {Value: "云", Weight: 1},
	{Value: "洁", Weight: 2}, {Value: "梅", Weight: 2}, {Value: "红", Weight: 2},
	{Value: "霞", Weight: 1}, {Value: "萍", Weight: 2}, {Value: "莹", Weight: 2},
	{Value: "月", Weight: 1}, {Value: "彤", Weight: 1}, {Value: "雨", Weight: 2},
	{Value: "思", Weight: 2}, {Value: "佳", Weight: 2}, {Value: "慧", Weight: 2},
	{Value: "诗", Weight: 1}, {Value: "涵", Weight: 2}, {Value: "梦", Weight: 2},
	{Value: "怡", Weight: 2}, {Value: "淑", Weight: 1}, {Value: "文", Weight: 1},
	{Value: "秀", Weight: 1}, {Value: "兰", Weight: 1}, {Value: "桂", Weight: 1},
}}
