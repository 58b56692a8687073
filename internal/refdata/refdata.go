// Package refdata supplies the weighted category tables and the
// administrative-division hierarchy the sampler draws from. A Provider is
// built once at process start and is read-only afterward; callers pass it
// into the sampler explicitly so tests can substitute trimmed fixtures.
package refdata

// Entry is one weighted value in a category table.
type Entry struct {
	Value  string
	Weight float64

	// MinAge and MaxAge bound the ages this value may be assigned to.
	// Zero means unbounded on that side.
	MinAge int
	MaxAge int
}

// Table is an immutable weighted category table.
type Table struct {
	Name    string
	Entries []Entry
}

// District is a county-level division with its own 6-digit code.
type District struct {
	Name    string
	Code    string
	Zipcode string
}

// City is a prefecture-level division.
type City struct {
	Name      string
	Code      string
	Zipcode   string
	Districts []District
}

// Province is a top-level division. PlateChar is the single hanzi used as the
// license plate prefix for the province.
type Province struct {
	Name      string
	Code      string
	PlateChar string
	Weight    float64
	Cities    []City
}

// CarrierBlock groups the 3-digit phone prefixes owned by one carrier.
type CarrierBlock struct {
	Carrier  string
	Weight   float64
	Prefixes []string
}

// BankBIN identifies an issuing bank by card prefix and full card length.
type BankBIN struct {
	BIN    string
	Bank   string
	Length int
}

// OUI is a vendor MAC address prefix.
type OUI struct {
	Prefix string
	Vendor string
}

// HeightParams parameterizes the gaussian height draw for one gender.
type HeightParams struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// BMIRange bounds the body-mass-index draw used to derive weight from height.
type BMIRange struct {
	Min float64
	Max float64
}

// Provider bundles every reference table. Construct with Default for the
// built-in tables or build one by hand in tests.
type Provider struct {
	Surnames         Table
	MaleGivenChars   Table
	FemaleGivenChars Table
	GivenNameLengths Table

	Provinces []Province

	Carriers     []CarrierBlock
	EmailDomains Table
	QQLengths    Table

	Ethnicities   Table
	BloodTypes    Table
	Genders       Table
	AgeBuckets    Table
	Educations    Table
	Politicals    Table
	Maritals      Table
	Religions     Table
	Hobbies       Table
	Relationships Table

	Companies CompanyParts
	JobTitles Table
	Majors    Table
	Salaries  Table

	BankBINs    []BankBIN
	OUIs        []OUI
	UserAgents  Table
	Streets     Table
	Communities Table

	PinyinPrefixes   Table
	WechatAdjectives Table
	WechatConcepts   Table
	IPBlocks         Table

	MaleHeight   HeightParams
	FemaleHeight HeightParams
	MaleBMI      BMIRange
	FemaleBMI    BMIRange

	// RHNegativeProb is the probability a blood type carries the rare RH
	// negative annotation.
	RHNegativeProb float64
	// PhoneEmailLinkProb is the probability the email reuses the phone digits
	// as its local part under a qq.com domain.
	PhoneEmailLinkProb float64
	// NewEnergyPlateProb is the probability a license plate uses the 8-char
	// new-energy format.
	NewEnergyPlateProb float64
}

// CompanyParts holds the three tables a synthetic company name is drawn from.
type CompanyParts struct {
	Prefixes Table
	Sectors  Table
	Suffixes Table
}

// Default returns the built-in reference data set.
func Default() *Provider {
	return &Provider{
		Surnames:         surnames,
		MaleGivenChars:   maleGivenChars,
		FemaleGivenChars: femaleGivenChars,
		GivenNameLengths: givenNameLengths,
		Provinces:        provinces,
		Carriers:         carriers,
		EmailDomains:     emailDomains,
		QQLengths:        qqLengths,
		Ethnicities:      ethnicities,
		BloodTypes:       bloodTypes,
		Genders:          genders,
		AgeBuckets:       ageBuckets,
		Educations:       educations,
		Politicals:       politicals,
		Maritals:         maritals,
		Religions:        religions,
		Hobbies:          hobbies,
		Relationships:    relationships,
		Companies:        CompanyParts{Prefixes: companyPrefixes, Sectors: companySectors, Suffixes: companySuffixes},
		JobTitles:        jobTitles,
		Majors:           majors,
		Salaries:         salaries,
		BankBINs:         bankBINs,
		OUIs:             ouis,
		UserAgents:       userAgents,
		Streets:          streets,
		Communities:      communities,
		PinyinPrefixes:   pinyinPrefixes,
		WechatAdjectives: wechatAdjectives,
		WechatConcepts:   wechatConcepts,
		IPBlocks:         ipBlocks,
		MaleHeight:       HeightParams{Mean: 169, StdDev: 6, Min: 155, Max: 195},
		FemaleHeight:     HeightParams{Mean: 158, StdDev: 5, Min: 145, Max: 180},
		MaleBMI:          BMIRange{Min: 19.0, Max: 26.5},
		FemaleBMI:        BMIRange{Min: 18.5, Max: 26.0},
		RHNegativeProb:   0.005,
		PhoneEmailLinkProb: 0.35,
		NewEnergyPlateProb: 0.15,
	}
}

