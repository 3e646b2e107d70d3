package constants

// Fixed domain lists for the EOI portal. These mirror the published
// recruitment material and must stay in step with the frontend copies.

var LagosLGAs = []string{
	"Agege",
	"Ajeromi-Ifelodun",
	"Alimosho",
	"Amuwo-Odofin",
	"Apapa",
	"Badagry",
	"Epe",
	"Eti-Osa",
	"Ibeju-Lekki",
	"Ifako-Ijaiye",
	"Ikeja",
	"Ikorodu",
	"Kosofe",
	"Lagos Island",
	"Lagos Mainland",
	"Mushin",
	"Ojo",
	"Oshodi-Isolo",
	"Shomolu",
	"Surulere",
}

// MilitaryBranch pairs the stored value with its display label.
type MilitaryBranch struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var MilitaryBranches = []MilitaryBranch{
	{Value: "army", Label: "Nigerian Army"},
	{Value: "navy", Label: "Nigerian Navy"},
	{Value: "airforce", Label: "Nigerian Air Force"},
	{Value: "defence_intelligence", Label: "Defence Intelligence Agency"},
	{Value: "cyber", Label: "Cyber Defence"},
	{Value: "support", Label: "Support Roles"},
}

var SkillOptions = []string{
	"IT/Computer Science",
	"Cybersecurity",
	"Mechanical Engineering",
	"Electrical Engineering",
	"Medical/Healthcare",
	"Logistics",
	"Communications",
	"Intelligence Analysis",
	"Languages",
	"Aviation",
	"Maritime",
	"Administration",
}

var Qualifications = []string{
	"WAEC/NECO",
	"GCE",
	"Trade Test",
	"OND",
	"HND",
	"BSc/BA",
	"MSc/MA",
	"Professional Certification",
}

// Application status enum.
const (
	StatusNew         = "NEW"
	StatusReviewing   = "REVIEWING"
	StatusShortlisted = "SHORTLISTED"
	StatusContacted   = "CONTACTED"
	StatusRejected    = "REJECTED"
)

var ApplicationStatuses = []string{
	StatusNew,
	StatusReviewing,
	StatusShortlisted,
	StatusContacted,
	StatusRejected,
}

// Gender enum.
var Genders = []string{"MALE", "FEMALE", "OTHER"}

// PhonePattern is the single canonical Nigerian mobile pattern enforced at
// the trust boundary: optional +234 or leading 0, subscriber number
// starting 7/8/9, ten digits after the prefix.
const PhonePattern = `^(\+234|0)[789]\d{9}$`

// EmailPattern is the local@domain.tld shape check applied when email is present.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// ReferencePrefix namespaces every generated reference ID.
const ReferencePrefix = "LAGOS"

// Accepted age band for applicants, derived from dateOfBirth at submission time.
const (
	MinApplicantAge = 18
	MaxApplicantAge = 35
)

// Admission list types.
const (
	ListTypeMain          = "MAIN"
	ListTypeSupplementary = "SUPPLEMENTARY"
)

// ValidStatus reports whether s is one of the five application statuses.
func ValidStatus(s string) bool {
	return contains(ApplicationStatuses, s)
}

// ValidGender reports whether g is one of the enumerated genders.
func ValidGender(g string) bool {
	return contains(Genders, g)
}

// ValidQualification reports whether q is on the fixed qualification list.
func ValidQualification(q string) bool {
	return contains(Qualifications, q)
}

// ValidLGA reports whether lga is one of the 20 Lagos LGAs.
func ValidLGA(lga string) bool {
	return contains(LagosLGAs, lga)
}

// ValidBranch reports whether v is a known branch value.
func ValidBranch(v string) bool {
	for _, b := range MilitaryBranches {
		if b.Value == v {
			return true
		}
	}
	return false
}

// ValidSkill reports whether v is on the fixed skill list.
func ValidSkill(v string) bool {
	return contains(SkillOptions, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
