package models

import "time"

// zodiacCutoffs maps each month to the day the next sign begins and the two
// signs on either side of that boundary.
var zodiacCutoffs = [13]struct {
	day    int
	before string
	after  string
}{
	{}, // months are 1-indexed
	{20, "摩羯座", "水瓶座"},
	{19, "水瓶座", "双鱼座"},
	{21, "双鱼座", "白羊座"},
	{20, "白羊座", "金牛座"},
	{21, "金牛座", "双子座"},
	{22, "双子座", "巨蟹座"},
	{23, "巨蟹座", "狮子座"},
	{23, "狮子座", "处女座"},
	{23, "处女座", "天秤座"},
	{24, "天秤座", "天蝎座"},
	{23, "天蝎座", "射手座"},
	{22, "射手座", "摩羯座"},
}

// ZodiacSign derives the western zodiac sign from a birthdate. Derived only;
// never sampled.
func ZodiacSign(birth time.Time) string {
	cutoff := zodiacCutoffs[birth.Month()]
	if birth.Day() < cutoff.day {
		return cutoff.before
	}
	return cutoff.after
}

var zodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// ChineseZodiac derives the zodiac animal from the birth year. The cycle is
// anchored so that year 4 CE is 鼠.
func ChineseZodiac(birth time.Time) string {
	idx := (birth.Year() - 4) % 12
	if idx < 0 {
		idx += 12
	}
	return zodiacAnimals[idx]
}

// AgeAt returns completed years between birth and now.
func AgeAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// AgeBucket names the coarse age band used for avatar prompt phrasing.
// Negative ages (unknown) fall back to adult.
func AgeBucket(age int) string {
	switch {
	case age < 0:
		return "adult"
	case age <= 10:
		return "child"
	case age <= 16:
		return "teen"
	case age <= 25:
		return "young_adult"
	case age <= 40:
		return "adult"
	default:
		return "senior"
	}
}
