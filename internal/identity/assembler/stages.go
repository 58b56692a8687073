package assembler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"shenfen/internal/checksum"
	"shenfen/internal/identity/device"
	"shenfen/internal/identity/models"
	"shenfen/internal/refdata"
	"shenfen/internal/sampler"
	dErrors "shenfen/pkg/domain-errors"
	"shenfen/pkg/secrets"
)

func (a *Assembler) runDemographics(d *draft) error {
	if a.gender != "" {
		d.rec.Gender = a.gender
	} else {
		g, err := a.smp.PickValue(a.ref.Genders)
		if err != nil {
			return err
		}
		d.rec.Gender = models.Gender(g)
	}

	age, err := a.sampleAge()
	if err != nil {
		return err
	}
	d.rec.Age = age
	d.birth = a.birthdateFor(age, d.now)
	d.rec.Birthdate = d.birth.Format(models.BirthdateLayout)

	ethnicity, err := a.smp.PickValue(a.ref.Ethnicities)
	if err != nil {
		return err
	}
	d.rec.Ethnicity = ethnicity

	blood, err := a.smp.PickValue(a.ref.BloodTypes)
	if err != nil {
		return err
	}
	if a.smp.Chance(a.ref.RHNegativeProb) {
		blood += "(RH阴性)"
	}
	d.rec.BloodType = blood
	return nil
}

func (a *Assembler) runName(d *draft) error {
	surname, err := a.smp.PickValue(a.ref.Surnames)
	if err != nil {
		return err
	}
	given, err := a.givenName(d.rec.Gender)
	if err != nil {
		return err
	}
	d.rec.LastName = surname
	d.rec.FirstName = given
	d.rec.Name = surname + given
	return nil
}

func (a *Assembler) runRegion(d *draft) error {
	province, city, district, err := a.pickDivision()
	if err != nil {
		return err
	}
	d.province, d.city, d.district = province, city, district

	d.rec.Province = province.Name
	d.rec.City = city.Name
	d.rec.Zipcode = district.Zipcode

	address, err := a.composeAddress(province, city, district)
	if err != nil {
		return err
	}
	d.rec.Address = address
	return nil
}

func (a *Assembler) runPhysique(d *draft) error {
	params := a.ref.MaleHeight
	bmi := a.ref.MaleBMI
	if d.rec.Gender == models.GenderFemale {
		params = a.ref.FemaleHeight
		bmi = a.ref.FemaleBMI
	}

	height := int(math.Round(a.smp.Gauss(params.Mean, params.StdDev, params.Min, params.Max)))
	d.rec.HeightCM = height

	drawn := bmi.Min + a.smp.Float64()*(bmi.Max-bmi.Min)
	meters := float64(height) / 100
	d.rec.WeightKG = math.Round(drawn*meters*meters*10) / 10
	return nil
}

func (a *Assembler) runLifeCategories(d *draft) error {
	allows := sampler.AgeAllows(d.rec.Age)

	education, err := a.smp.PickValue(a.ref.Educations, allows)
	if err != nil {
		return err
	}
	d.rec.Education = education

	if refdata.HasMajor(education) {
		if d.rec.Major, err = a.smp.PickValue(a.ref.Majors); err != nil {
			return err
		}
	}

	if d.rec.PoliticalStatus, err = a.smp.PickValue(a.ref.Politicals, allows); err != nil {
		return err
	}
	if d.rec.MaritalStatus, err = a.smp.PickValue(a.ref.Maritals, allows); err != nil {
		return err
	}
	if d.rec.Religion, err = a.smp.PickValue(a.ref.Religions, allows); err != nil {
		return err
	}
	return nil
}

func (a *Assembler) runNationalID(d *draft) error {
	var seq int
	if d.rec.Gender.SequenceParity() == 1 {
		seq = a.smp.IntBetween(0, 499)*2 + 1
	} else {
		seq = a.smp.IntBetween(1, 499) * 2
	}

	prefix := d.district.Code + d.birth.Format("20060102") + fmt.Sprintf("%03d", seq)
	check, err := checksum.ComputeIDChecksum(prefix)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "national id prefix is malformed")
	}
	d.rec.NationalID = prefix + string(check)
	return nil
}

func (a *Assembler) runContact(d *draft) error {
	phone, err := a.phone()
	if err != nil {
		return err
	}
	d.rec.Phone = phone
	return nil
}

func (a *Assembler) runEmail(d *draft) error {
	email, linked, err := a.smp.Linked(a.ref.PhoneEmailLinkProb,
		func() string { return d.rec.Phone + "@qq.com" },
		a.independentEmail,
	)
	if err != nil {
		return err
	}
	d.rec.Email = email
	d.rec.EmailLinkedToPhone = linked
	return nil
}

func (a *Assembler) runProfessional(d *draft) error {
	company, err := a.companyName()
	if err != nil {
		return err
	}
	d.rec.Company = company

	if d.rec.JobTitle, err = a.smp.PickValue(a.ref.JobTitles); err != nil {
		return err
	}
	if d.rec.SalaryRange, err = a.smp.PickValue(a.ref.Salaries); err != nil {
		return err
	}
	return nil
}

func (a *Assembler) runAccounts(d *draft) error {
	username, err := a.username()
	if err != nil {
		return err
	}
	d.rec.Username = username

	d.rec.Password = secrets.Generate(a.smp.Rand())
	hash, err := secrets.Hash(d.rec.Password)
	if err != nil {
		return err
	}
	d.rec.PasswordHash = hash

	if d.rec.WechatID, err = a.wechatID(); err != nil {
		return err
	}
	if d.rec.QQNumber, err = a.qqNumber(); err != nil {
		return err
	}
	return nil
}

func (a *Assembler) runFinancial(d *draft) error {
	card, bank, err := a.bankCard()
	if err != nil {
		return err
	}
	d.rec.BankCard = card
	d.rec.Bank = bank

	d.rec.LicensePlate = a.licensePlate(d.province)

	code, err := a.socialCreditCode(d.district.Code)
	if err != nil {
		return err
	}
	d.rec.SocialCreditCode = code
	return nil
}

func (a *Assembler) runDigital(d *draft) error {
	ua, err := a.smp.PickValue(a.ref.UserAgents)
	if err != nil {
		return err
	}
	d.rec.UserAgent = ua
	d.rec.Browser, d.rec.OS = device.Classify(ua)

	ip, err := a.ipAddress()
	if err != nil {
		return err
	}
	d.rec.IPAddress = ip

	mac, err := a.macAddress()
	if err != nil {
		return err
	}
	d.rec.MACAddress = mac
	return nil
}

func (a *Assembler) runAstrology(d *draft) error {
	d.rec.ZodiacSign = models.ZodiacSign(d.birth)
	d.rec.ChineseZodiac = models.ChineseZodiac(d.birth)
	return nil
}

func (a *Assembler) runEmergency(d *draft) error {
	relation, err := a.smp.PickValue(a.ref.Relationships, sampler.AgeAllows(d.rec.Age))
	if err != nil {
		return err
	}

	contactGender := d.rec.Gender
	switch relation {
	case "父亲":
		contactGender = models.GenderMale
	case "母亲":
		contactGender = models.GenderFemale
	case "配偶":
		if d.rec.Gender == models.GenderMale {
			contactGender = models.GenderFemale
		} else {
			contactGender = models.GenderMale
		}
	default:
		if a.smp.Chance(0.5) {
			contactGender = models.GenderFemale
		} else {
			contactGender = models.GenderMale
		}
	}

	// Blood relatives share the record's surname, spouses and friends carry
	// their own.
	surname := d.rec.LastName
	if relation == "配偶" || relation == "朋友" {
		if surname, err = a.smp.PickValue(a.ref.Surnames); err != nil {
			return err
		}
	}
	given, err := a.givenName(contactGender)
	if err != nil {
		return err
	}
	d.rec.EmergencyContact = fmt.Sprintf("%s%s (%s)", surname, given, relation)

	phone, err := a.phone()
	if err != nil {
		return err
	}
	d.rec.EmergencyPhone = phone
	return nil
}

func (a *Assembler) runHobbies(d *draft) error {
	count := a.smp.IntBetween(2, 4)
	picked, err := a.smp.SampleDistinct(a.ref.Hobbies, count)
	if err != nil {
		return err
	}
	d.rec.Hobbies = strings.Join(picked, "、")
	return nil
}

// sampleAge draws from the weighted bucket table clipped to the configured
// range, falling back to a uniform draw when the range lies outside every
// bucket (child or very old records).
func (a *Assembler) sampleAge() (int, error) {
	bucket, err := a.smp.Pick(a.ref.AgeBuckets, a.overlapsRange())
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNoEligibleCategory) {
			return a.smp.IntBetween(a.minAge, a.maxAge), nil
		}
		return 0, err
	}

	lo, hi := bucket.MinAge, bucket.MaxAge
	if a.minAge > lo {
		lo = a.minAge
	}
	if a.maxAge < hi {
		hi = a.maxAge
	}
	return a.smp.IntBetween(lo, hi), nil
}

func (a *Assembler) overlapsRange() sampler.Constraint {
	return func(e refdata.Entry) bool {
		return e.MinAge <= a.maxAge && e.MaxAge >= a.minAge
	}
}

// birthdateFor picks a calendar date uniformly among those that make the
// person exactly age years old at now. The window stops one day short of a
// full year so a leap day cannot tip the age over.
func (a *Assembler) birthdateFor(age int, now time.Time) time.Time {
	anniversary := now.AddDate(-age, 0, 0)
	return anniversary.AddDate(0, 0, -a.smp.IntBetween(0, 364))
}
