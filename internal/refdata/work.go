package refdata

var companyPrefixes = Table{Name: "company_prefixes", Entries: []Entry{
	{Value: "华", Weight: 2}, {Value: "中", Weight: 2}, {Value: "天", Weight: 2},
	{Value: "金", Weight: 2}, {Value: "鑫", Weight: 1}, {Value: "东方", Weight: 1},
	{Value: "正大", Weight: 1}, {Value: "恒", Weight: 1}, {Value: "利", Weight: 1},
	{Value: "晟", Weight: 1}, {Value: "瑞", Weight: 1}, {Value: "宏", Weight: 1},
	{Value: "博", Weight: 1}, {Value: "盛", Weight: 1}, {Value: "凯", Weight: 1},
	{Value: "远大", Weight: 1}, {Value: "新", Weight: 1}, {Value: "联", Weight: 1},
}}

var companySectors = Table{Name: "company_sectors", Entries: []Entry{
	{Value: "科技", Weight: 3}, {Value: "信息", Weight: 2}, {Value: "网络", Weight: 2},
	{Value: "智能", Weight: 2}, {Value: "数码", Weight: 1}, {Value: "电子", Weight: 2},
	{Value: "通信", Weight: 1}, {Value: "软件", Weight: 2}, {Value: "文化", Weight: 1},
	{Value: "传媒", Weight: 1}, {Value: "贸易", Weight: 2}, {Value: "实业", Weight: 2},
	{Value: "建筑", Weight: 1}, {Value: "医药", Weight: 1}, {Value: "物流", Weight: 1},
	{Value: "能源", Weight: 1}, {Value: "环保", Weight: 1}, {Value: "教育", Weight: 1},
	{Value: "食品", Weight: 1}, {Value: "装饰", Weight: 1},
}}

var companySuffixes = Table{Name: "company_suffixes", Entries: []Entry{
	{Value: "有限公司", Weight: 0.70},
	{Value: "股份有限公司", Weight: 0.20},
	{Value: "集团有限公司", Weight: 0.10},
}}

var jobTitles = Table{Name: "job_titles", Entries: []Entry{
	{Value: "软件工程师", Weight: 2}, {Value: "产品经理", Weight: 1}, {Value: "销售经理", Weight: 2},
	{Value: "会计", Weight: 2}, {Value: "教师", Weight: 2}, {Value: "医生", Weight: 1},
	{Value: "护士", Weight: 1}, {Value: "律师", Weight: 1}, {Value: "设计师", Weight: 1},
	{Value: "市场专员", Weight: 2}, {Value: "人力资源专员", Weight: 1}, {Value: "行政助理", Weight: 2},
	{Value: "运营经理", Weight: 1}, {Value: "数据分析师", Weight: 1}, {Value: "建筑师", Weight: 1},
	{Value: "电气工程师", Weight: 1}, {Value: "机械工程师", Weight: 1}, {Value: "厨师", Weight: 1},
	{Value: "司机", Weight: 1}, {Value: "快递员", Weight: 1}, {Value: "客服专员", Weight: 2},
	{Value: "翻译", Weight: 1}, {Value: "记者", Weight: 1}, {Value: "编辑", Weight: 1},
	{Value: "公务员", Weight: 1}, {Value: "银行职员", Weight: 1}, {Value: "药剂师", Weight: 1},
}}

var majors = Table{Name: "majors", Entries: []Entry{
	{Value: "计算机科学与技术", Weight: 2}, {Value: "软件工程", Weight: 2},
	{Value: "电子信息工程", Weight: 1}, {Value: "机械设计制造及其自动化", Weight: 1},
	{Value: "土木工程", Weight: 1}, {Value: "工商管理", Weight: 2},
	{Value: "会计学", Weight: 2}, {Value: "金融学", Weight: 1},
	{Value: "法学", Weight: 1}, {Value: "临床医学", Weight: 1},
	{Value: "护理学", Weight: 1}, {Value: "汉语言文学", Weight: 1},
	{Value: "英语", Weight: 1}, {Value: "市场营销", Weight: 1},
	{Value: "国际经济与贸易", Weight: 1}, {Value: "电气工程及其自动化", Weight: 1},
	{Value: "通信工程", Weight: 1}, {Value: "材料科学与工程", Weight: 1},
	{Value: "化学工程与工艺", Weight: 1}, {Value: "数学与应用数学", Weight: 1},
	{Value: "应用心理学", Weight: 1}, {Value: "新闻学", Weight: 1},
	{Value: "教育学", Weight: 1}, {Value: "艺术设计", Weight: 1},
}}

var salaries = Table{Name: "salary_ranges", Entries: []Entry{
	{Value: "3000-5000", Weight: 0.18},
	{Value: "5000-8000", Weight: 0.28},
	{Value: "8000-12000", Weight: 0.24},
	{Value: "12000-20000", Weight: 0.18},
	{Value: "20000-35000", Weight: 0.09},
	{Value: "35000以上", Weight: 0.03},
}}
