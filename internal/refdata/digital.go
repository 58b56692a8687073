package refdata

// pinyinPrefixes are the romanized surname stems usernames and email local
// parts are built from. Weights follow the surname frequency table loosely;
// the generic service words at the bottom show up in real account dumps too.
var pinyinPrefixes = Table{Name: "pinyin_prefixes", Entries: []Entry{
	{Value: "zhang", Weight: 7}, {Value: "wang", Weight: 7}, {Value: "li", Weight: 7},
	{Value: "liu", Weight: 5}, {Value: "chen", Weight: 5}, {Value: "yang", Weight: 4},
	{Value: "zhao", Weight: 3}, {Value: "huang", Weight: 3}, {Value: "wu", Weight: 3},
	{Value: "zhou", Weight: 3}, {Value: "xu", Weight: 2}, {Value: "sun", Weight: 2},
	{Value: "ma", Weight: 2}, {Value: "hu", Weight: 2}, {Value: "guo", Weight: 2},
	{Value: "lin", Weight: 2}, {Value: "he", Weight: 2}, {Value: "gao", Weight: 2},
	{Value: "liang", Weight: 1}, {Value: "zheng", Weight: 1}, {Value: "luo", Weight: 1},
	{Value: "song", Weight: 1}, {Value: "tang", Weight: 1}, {Value: "han", Weight: 1},
	{Value: "feng", Weight: 1}, {Value: "deng", Weight: 1}, {Value: "cao", Weight: 1},
	{Value: "peng", Weight: 1}, {Value: "xiao", Weight: 1}, {Value: "pan", Weight: 1},
	{Value: "jiang", Weight: 1}, {Value: "cai", Weight: 1}, {Value: "wei", Weight: 1},
	{Value: "user", Weight: 1}, {Value: "vip", Weight: 1}, {Value: "member", Weight: 1},
}}

// wechatAdjectives and wechatConcepts feed the english-word wechat id
// patterns alongside the wxid_ and surname-number forms.
var wechatAdjectives = Table{Name: "wechat_adjectives", Entries: []Entry{
	{Value: "happy", Weight: 1}, {Value: "lucky", Weight: 1}, {Value: "sunny", Weight: 1},
	{Value: "cool", Weight: 1}, {Value: "sweet", Weight: 1}, {Value: "lovely", Weight: 1},
	{Value: "nice", Weight: 1}, {Value: "good", Weight: 1}, {Value: "great", Weight: 1},
	{Value: "super", Weight: 1},
}}

var wechatConcepts = Table{Name: "wechat_concepts", Entries: []Entry{
	{Value: "love", Weight: 1}, {Value: "life", Weight: 1}, {Value: "dream", Weight: 1},
	{Value: "hope", Weight: 1}, {Value: "faith", Weight: 1}, {Value: "peace", Weight: 1},
	{Value: "joy", Weight: 1}, {Value: "smile", Weight: 1},
}}

// ipBlocks holds /16 prefixes allocated to the big consumer ISPs; the
// generator appends two random octets. Weights lean towards the mobile
// carrier blocks the way consumer traffic does.
var ipBlocks = Table{Name: "ip_blocks", Entries: []Entry{
	{Value: "223.104", Weight: 3}, {Value: "117.136", Weight: 3},
	{Value: "183.192", Weight: 2}, {Value: "112.17", Weight: 2},
	{Value: "120.229", Weight: 2}, {Value: "36.102", Weight: 1},
	{Value: "101.68", Weight: 1}, {Value: "218.58", Weight: 1},
	{Value: "124.160", Weight: 1}, {Value: "222.128", Weight: 1},
}}
