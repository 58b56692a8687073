package assembler

import (
	"fmt"
	"strconv"
	"strings"

	"shenfen/internal/checksum"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	dErrors "shenfen/pkg/domain-errors"
)

const (
	// Plate alphabets exclude I and O per GA 36-2018.
	plateCityLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	plateBodyChars   = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	newEnergyTypes   = "DF"

	wechatCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	lowerLetters  = "abcdefghijklmnopqrstuvwxyz"
)

func (a *Assembler) givenName(gender models.Gender) (string, error) {
	lengthValue, err := a.smp.PickValue(a.ref.GivenNameLengths)
	if err != nil {
		return "", err
	}
	length, err := strconv.Atoi(lengthValue)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "given name length table holds a non-integer")
	}

	chars := a.ref.MaleGivenChars
	if gender == models.GenderFemale {
		chars = a.ref.FemaleGivenChars
	}

	var b strings.Builder
	for i := 0; i < length; i++ {
		c, err := a.smp.PickValue(chars)
		if err != nil {
			return "", err
		}
		b.WriteString(c)
	}
	return b.String(), nil
}

// codeMatches reports whether a division code agrees with the configured
// region prefix over the digits both specify. Division codes pad with zeros,
// so only the first level digits of the division code are significant.
func codeMatches(divisionCode, constraint string, level int) bool {
	if constraint == "" {
		return true
	}
	if len(constraint) < level {
		level = len(constraint)
	}
	if len(divisionCode) < level {
		return false
	}
	return divisionCode[:level] == constraint[:level]
}

func (a *Assembler) pickProvince() (refdata.Province, error) {
	var eligible []refdata.Province
	for _, p := range a.ref.Provinces {
		if codeMatches(p.Code, a.regionCode, 2) {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return refdata.Province{}, dErrors.New(dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("no province matches region code %q", a.regionCode))
	}

	total := 0.0
	for _, p := range eligible {
		total += p.Weight
	}
	r := a.smp.Float64() * total
	for _, p := range eligible {
		r -= p.Weight
		if r < 0 {
			return p, nil
		}
	}
	return eligible[len(eligible)-1], nil
}

func (a *Assembler) pickDivision() (refdata.Province, refdata.City, refdata.District, error) {
	province, err := a.pickProvince()
	if err != nil {
		return refdata.Province{}, refdata.City{}, refdata.District{}, err
	}

	var cities []refdata.City
	for _, c := range province.Cities {
		if codeMatches(c.Code, a.regionCode, 4) {
			cities = append(cities, c)
		}
	}
	if len(cities) == 0 {
		return refdata.Province{}, refdata.City{}, refdata.District{}, dErrors.New(
			dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("no city in %s matches region code %q", province.Name, a.regionCode))
	}
	city := cities[a.smp.IntBetween(0, len(cities)-1)]

	var districts []refdata.District
	for _, dt := range city.Districts {
		if codeMatches(dt.Code, a.regionCode, 6) {
			districts = append(districts, dt)
		}
	}
	if len(districts) == 0 {
		return refdata.Province{}, refdata.City{}, refdata.District{}, dErrors.New(
			dErrors.CodeNoEligibleCategory,
			fmt.Sprintf("no district in %s matches region code %q", city.Name, a.regionCode))
	}
	district := districts[a.smp.IntBetween(0, len(districts)-1)]

	return province, city, district, nil
}

func (a *Assembler) composeAddress(province refdata.Province, city refdata.City, district refdata.District) (string, error) {
	street, err := a.smp.PickValue(a.ref.Streets)
	if err != nil {
		return "", err
	}

	number := a.smp.IntBetween(1, 999)
	var tail string
	switch {
	case a.smp.Chance(0.3):
		tail = fmt.Sprintf("%d号%d单元%d室",
			number, a.smp.IntBetween(1, 20), a.smp.IntBetween(101, 2500))
	case a.smp.Chance(0.5):
		community, err := a.smp.PickValue(a.ref.Communities)
		if err != nil {
			return "", err
		}
		tail = fmt.Sprintf("%d号%s%d栋%d单元%d室",
			number, community, a.smp.IntBetween(1, 30), a.smp.IntBetween(1, 4), a.smp.IntBetween(101, 2500))
	default:
		tail = fmt.Sprintf("%d号", number)
	}

	// Municipality city names repeat the province name; print it once.
	if province.Name == city.Name {
		return province.Name + district.Name + street + tail, nil
	}
	return province.Name + city.Name + district.Name + street + tail, nil
}

func (a *Assembler) pickCarrier() (refdata.CarrierBlock, error) {
	blocks := a.ref.Carriers
	if len(blocks) == 0 {
		return refdata.CarrierBlock{}, dErrors.New(dErrors.CodeNoEligibleCategory, "carrier table is empty")
	}

	total := 0.0
	for _, b := range blocks {
		total += b.Weight
	}
	r := a.smp.Float64() * total
	for _, b := range blocks {
		r -= b.Weight
		if r < 0 {
			return b, nil
		}
	}
	return blocks[len(blocks)-1], nil
}

func (a *Assembler) phone() (string, error) {
	block, err := a.pickCarrier()
	if err != nil {
		return "", err
	}
	prefix := block.Prefixes[a.smp.IntBetween(0, len(block.Prefixes)-1)]
	return prefix + a.smp.Digits(8), nil
}

func (a *Assembler) independentEmail() (string, error) {
	local, err := a.emailLocal()
	if err != nil {
		return "", err
	}
	domain, err := a.smp.PickValue(a.ref.EmailDomains)
	if err != nil {
		return "", err
	}
	return local + "@" + domain, nil
}

func (a *Assembler) emailLocal() (string, error) {
	variant := a.smp.IntBetween(0, 5)
	if variant >= 4 {
		if variant == 4 {
			return fmt.Sprintf("user%d", a.smp.IntBetween(1000, 9999999)), nil
		}
		return fmt.Sprintf("a%d", a.smp.IntBetween(10000000, 99999999)), nil
	}

	prefix, err := a.smp.PickValue(a.ref.PinyinPrefixes)
	if err != nil {
		return "", err
	}
	switch variant {
	case 0:
		return fmt.Sprintf("%s%d", prefix, a.smp.IntBetween(10, 9999)), nil
	case 1:
		return fmt.Sprintf("%s_%d", prefix, a.smp.IntBetween(10, 999)), nil
	case 2:
		return fmt.Sprintf("%s.%d", prefix, a.smp.IntBetween(100, 999)), nil
	default:
		infixes := []string{"vip", "mail", ""}
		return fmt.Sprintf("%s%s%d", prefix, infixes[a.smp.IntBetween(0, 2)], a.smp.IntBetween(1, 999)), nil
	}
}

func (a *Assembler) companyName() (string, error) {
	prefix, err := a.smp.PickValue(a.ref.Companies.Prefixes)
	if err != nil {
		return "", err
	}
	sector, err := a.smp.PickValue(a.ref.Companies.Sectors)
	if err != nil {
		return "", err
	}
	suffix, err := a.smp.PickValue(a.ref.Companies.Suffixes)
	if err != nil {
		return "", err
	}
	return prefix + sector + suffix, nil
}

func (a *Assembler) username() (string, error) {
	variant := a.smp.IntBetween(0, 4)
	if variant == 4 {
		return fmt.Sprintf("user_%d", a.smp.IntBetween(1000, 999999)), nil
	}

	prefix, err := a.smp.PickValue(a.ref.PinyinPrefixes)
	if err != nil {
		return "", err
	}
	switch variant {
	case 0:
		return fmt.Sprintf("%s%d", prefix, a.smp.IntBetween(10, 9999)), nil
	case 1:
		return fmt.Sprintf("%s_%d", prefix, a.smp.IntBetween(10, 999)), nil
	case 2:
		return fmt.Sprintf("%s.%d", prefix, a.smp.IntBetween(100, 999)), nil
	default:
		suffixes := []string{"vip", "cn", "zh", "88", "2024"}
		return fmt.Sprintf("%s_%s", prefix, suffixes[a.smp.IntBetween(0, len(suffixes)-1)]), nil
	}
}

func (a *Assembler) wechatID() (string, error) {
	switch a.smp.IntBetween(0, 5) {
	case 0:
		var b strings.Builder
		b.WriteString("wxid_")
		for i := 0; i < 12; i++ {
			b.WriteByte(a.smp.Letter(wechatCharset))
		}
		return b.String(), nil
	case 1:
		prefixes := []string{"wx", "we", "wei"}
		return prefixes[a.smp.IntBetween(0, 2)] + a.smp.DigitsNonZeroLead(8), nil
	case 2:
		return string(a.smp.Letter(lowerLetters)) + a.smp.DigitsNonZeroLead(8), nil
	case 3:
		prefix, err := a.smp.PickValue(a.ref.PinyinPrefixes)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%d", prefix, a.smp.IntBetween(1000, 999999)), nil
	case 4:
		adjective, err := a.smp.PickValue(a.ref.WechatAdjectives)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%d", adjective, a.smp.IntBetween(1000, 999999)), nil
	default:
		concept, err := a.smp.PickValue(a.ref.WechatConcepts)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s%d", concept, a.smp.IntBetween(1000, 999999)), nil
	}
}

func (a *Assembler) qqNumber() (string, error) {
	lengthValue, err := a.smp.PickValue(a.ref.QQLengths)
	if err != nil {
		return "", err
	}
	length, err := strconv.Atoi(lengthValue)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "qq length table holds a non-integer")
	}
	return a.smp.DigitsNonZeroLead(length), nil
}

func (a *Assembler) bankCard() (card, bank string, err error) {
	bins := a.ref.BankBINs
	if len(bins) == 0 {
		return "", "", dErrors.New(dErrors.CodeNoEligibleCategory, "bank bin table is empty")
	}

	bin := bins[a.smp.IntBetween(0, len(bins)-1)]
	payload := bin.BIN + a.smp.Digits(bin.Length-len(bin.BIN)-1)
	check, err := checksum.ComputeLuhnChecksum(payload)
	if err != nil {
		return "", "", dErrors.Wrap(err, dErrors.CodeInternal, "bank card payload is malformed")
	}
	return payload + string(check), bin.Bank, nil
}

func (a *Assembler) licensePlate(province refdata.Province) string {
	var b strings.Builder
	b.WriteString(province.PlateChar)
	b.WriteByte(a.smp.Letter(plateCityLetters))
	if a.smp.Chance(a.ref.NewEnergyPlateProb) {
		b.WriteByte(a.smp.Letter(newEnergyTypes))
	}
	for i := 0; i < 5; i++ {
		b.WriteByte(a.smp.Letter(plateBodyChars))
	}
	return b.String()
}

func (a *Assembler) socialCreditCode(divisionCode string) (string, error) {
	var b strings.Builder
	b.WriteString("91")
	b.WriteString(divisionCode)
	for i := 0; i < 9; i++ {
		b.WriteByte(a.smp.Letter(checksum.CreditCodeAlphabet))
	}

	prefix := b.String()
	check, err := checksum.ComputeCreditCodeChecksum(prefix)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "credit code prefix is malformed")
	}
	return prefix + string(check), nil
}

func (a *Assembler) ipAddress() (string, error) {
	block, err := a.smp.PickValue(a.ref.IPBlocks)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s.%d.%d", block, a.smp.IntBetween(0, 255), a.smp.IntBetween(1, 254)), nil
}

func (a *Assembler) macAddress() (string, error) {
	if len(a.ref.OUIs) == 0 {
		return "", dErrors.New(dErrors.CodeNoEligibleCategory, "oui table is empty")
	}
	oui := a.ref.OUIs[a.smp.IntBetween(0, len(a.ref.OUIs)-1)]
	return fmt.Sprintf("%s:%02X:%02X:%02X", oui.Prefix,
		a.smp.IntBetween(0, 255), a.smp.IntBetween(0, 255), a.smp.IntBetween(0, 255)), nil
}
