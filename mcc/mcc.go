// Package mcc maps mobile country codes (MCC), the numeric country
// identifiers used by mobile networks, to ISO 3166-1 alpha-2 country codes.
package mcc

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Environment variable read by FromEnv.
const EnvVar = "SUPPORT_MCC"

const (
	Unknown  = 0   // Unknown network
	Test     = 1   // Test network
	Internal = 999 // Internal use
	AB       = 289 // Abkhazia
	AF       = 412 // Afghanistan
	AL       = 276 // Albania
	DZ       = 603 // Algeria
	AS       = 544 // American Samoa (United States of America)
	AD       = 213 // Andorra
	AO       = 631 // Angola
	AI       = 365 // Anguilla (United Kingdom)
	AG       = 344 // Antigua and Barbuda
	AR       = 722 // Argentina
	AM       = 283 // Armenia
	AW       = 363 // Aruba
	AU       = 505 // Australia
	AT       = 232 // Austria
	AZ       = 400 // Azerbaijan
	BS       = 364 // Bahamas
	BH       = 426 // Bahrain
	BD       = 470 // Bangladesh
	BB       = 342 // Barbados
	BY       = 257 // Belarus
	BE       = 206 // Belgium
	BZ       = 702 // Belize
	BJ       = 616 // Benin
	BM       = 350 // Bermuda
	BT       = 402 // Bhutan
	BO       = 736 // Bolivia
	BQ       = 362 // Bonaire, Sint Eustatius, Saba and Curaçao
	BA       = 218 // Bosnia and Herzegovina
	BW       = 652 // Botswana
	BR       = 724 // Brazil
	IO       = 995 // British Indian Ocean Territory (United Kingdom)
	VG       = 348 // British Virgin Islands (United Kingdom)
	BN       = 528 // Brunei
	BG       = 284 // Bulgaria
	BF       = 613 // Burkina Faso
	BI       = 642 // Burundi
	KH       = 456 // Cambodia
	CM       = 624 // Cameroon
	CA       = 302 // Canada
	CV       = 625 // Cape Verde
	KY       = 346 // Cayman Islands (United Kingdom)
	CF       = 623 // Central African Republic
	TD       = 622 // Chad
	CL       = 730 // Chile
	CN       = 460 // China
	CN2      = 461 // China
	CO       = 732 // Colombia
	KM       = 654 // Comoros
	CG       = 629 // Congo
	CK       = 548 // Cook Islands (Pacific Ocean)
	CR       = 712 // Costa Rica
	HR       = 219 // Croatia
	CU       = 368 // Cuba
	CY       = 280 // Cyprus
	CZ       = 230 // Czech Republic
	CD       = 630 // Democratic Republic of the Congo
	DK       = 238 // Denmark (Kingdom of Denmark)
	DJ       = 638 // Djibouti
	DM       = 366 // Dominica
	DO       = 370 // Dominican Republic
	TL       = 514 // East Timor
	EC       = 740 // Ecuador
	EG       = 602 // Egypt
	SV       = 706 // El Salvador
	GQ       = 627 // Equatorial Guinea
	ER       = 657 // Eritrea
	EE       = 248 // Estonia
	ET       = 636 // Ethiopia
	FK       = 750 // Falkland Islands (United Kingdom)
	FO       = 288 // Faroe Islands (Kingdom of Denmark)
	FJ       = 542 // Fiji
	FI       = 244 // Finland
	FR       = 208 // France
	GF       = 742 // French Guiana (France)
	RE       = 647 // French Indian Ocean Territories (France)
	PF       = 547 // French Polynesia (France)
	GA       = 628 // Gabon
)

type country struct {
	iso  string
	name string
}

var countries = map[int]country{
	AB:  {"AB", "Abkhazia"},
	AF:  {"AF", "Afghanistan"},
	AL:  {"AL", "Albania"},
	DZ:  {"DZ", "Algeria"},
	AS:  {"AS", "American Samoa (United States of America)"},
	AD:  {"AD", "Andorra"},
	AO:  {"AO", "Angola"},
	AI:  {"AI", "Anguilla (United Kingdom)"},
	AG:  {"AG", "Antigua and Barbuda"},
	AR:  {"AR", "Argentina"},
	AM:  {"AM", "Armenia"},
	AW:  {"AW", "Aruba"},
	AU:  {"AU", "Australia"},
	AT:  {"AT", "Austria"},
	AZ:  {"AZ", "Azerbaijan"},
	BS:  {"BS", "Bahamas"},
	BH:  {"BH", "Bahrain"},
	BD:  {"BD", "Bangladesh"},
	BB:  {"BB", "Barbados"},
	BY:  {"BY", "Belarus"},
	BE:  {"BE", "Belgium"},
	BZ:  {"BZ", "Belize"},
	BJ:  {"BJ", "Benin"},
	BM:  {"BM", "Bermuda"},
	BT:  {"BT", "Bhutan"},
	BO:  {"BO", "Bolivia"},
	BQ:  {"BQ", "Bonaire, Sint Eustatius, Saba and Curaçao"},
	BA:  {"BA", "Bosnia and Herzegovina"},
	BW:  {"BW", "Botswana"},
	BR:  {"BR", "Brazil"},
	IO:  {"IO", "British Indian Ocean Territory (United Kingdom)"},
	VG:  {"VG", "British Virgin Islands (United Kingdom)"},
	BN:  {"BN", "Brunei"},
	BG:  {"BG", "Bulgaria"},
	BF:  {"BF", "Burkina Faso"},
	BI:  {"BI", "Burundi"},
	KH:  {"KH", "Cambodia"},
	CM:  {"CM", "Cameroon"},
	CA:  {"CA", "Canada"},
	CV:  {"CV", "Cape Verde"},
	KY:  {"KY", "Cayman Islands (United Kingdom)"},
	CF:  {"CF", "Central African Republic"},
	TD:  {"TD", "Chad"},
	CL:  {"CL", "Chile"},
	CN:  {"CN", "China"},
	CN2: {"CN", "China"},
	CO:  {"CO", "Colombia"},
	KM:  {"KM", "Comoros"},
	CG:  {"CG", "Congo"},
	CK:  {"CK", "Cook Islands (Pacific Ocean)"},
	CR:  {"CR", "Costa Rica"},
	HR:  {"HR", "Croatia"},
	CU:  {"CU", "Cuba"},
	CY:  {"CY", "Cyprus"},
	CZ:  {"CZ", "Czech Republic"},
	CD:  {"CD", "Democratic Republic of the Congo"},
	DK:  {"DK", "Denmark (Kingdom of Denmark)"},
	DJ:  {"DJ", "Djibouti"},
	DM:  {"DM", "Dominica"},
	DO:  {"DO", "Dominican Republic"},
	TL:  {"TL", "East Timor"},
	EC:  {"EC", "Ecuador"},
	EG:  {"EG", "Egypt"},
	SV:  {"SV", "El Salvador"},
	GQ:  {"GQ", "Equatorial Guinea"},
	ER:  {"ER", "Eritrea"},
	EE:  {"EE", "Estonia"},
	ET:  {"ET", "Ethiopia"},
	FK:  {"FK", "Falkland Islands (United Kingdom)"},
	FO:  {"FO", "Faroe Islands (Kingdom of Denmark)"},
	FJ:  {"FJ", "Fiji"},
	FI:  {"FI", "Finland"},
	FR:  {"FR", "France"},
	GF:  {"GF", "French Guiana (France)"},
	RE:  {"RE", "French Indian Ocean Territories (France)"},
	PF:  {"PF", "French Polynesia (France)"},
	GA:  {"GA", "Gabon"},
}

// ISO 3166-1 alpha-2 code of the country using mcc. Reserved codes (Unknown,
// Test and Internal) and codes missing from the table report false.
func ISO3166(mcc int) (string, bool) {
	c, ok := countries[mcc]
	return c.iso, ok
}

// English name of the country or territory using mcc.
func Country(mcc int) (string, bool) {
	c, ok := countries[mcc]
	return c.name, ok
}

// MCC configured for this process through SUPPORT_MCC. An unset variable is
// Unknown.
func FromEnv() (int, error) {
	raw := strings.TrimSpace(os.Getenv(EnvVar))
	if raw == "" {
		return Unknown, nil
	}
	mcc, err := strconv.Atoi(raw)
	if err != nil {
		return Unknown, errors.Wrapf(err, "%s", EnvVar)
	}
	return mcc, nil
}
