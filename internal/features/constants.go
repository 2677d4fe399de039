package features

// DegenerateBrandDistance is reported when no brand comparison is possible.
const DegenerateBrandDistance = 999

// Domain reputation levels
const (
	ReputationUntrusted = 0.0
	ReputationNeutral   = 0.5
	ReputationTrusted   = 1.0
)

// minDomainLength is the shortest domain that can earn a neutral reputation.
const minDomainLength = 3

// TrustedDomains are payment providers whose handles are matched by substring.
var TrustedDomains = []string{
	"paytm", "phonepe", "googlepay", "gpay", "amazonpay",
	"ybl", "okaxis", "oksbi", "okhdfcbank", "okicici",
	"ibl", "axl", "fbl", "airtel", "jio", "bhim",
}

// PhishingKeywords show up in usernames that impersonate support or rewards.
var PhishingKeywords = []string{
	"refund", "support", "verify", "urgent", "prize", "winner",
	"claim", "reward", "bonus", "cashback", "offer", "customer",
	"service", "help", "official", "team", "admin", "security",
}

// LegitimateBrands are compared against usernames to catch typosquatting.
var LegitimateBrands = []string{
	"zomato", "swiggy", "uber", "ola", "flipkart", "amazon",
	"myntra", "bigbasket", "dunzo", "grofers", "meesho",
	"bookmyshow", "makemytrip", "oyo", "airbnb", "paytm",
	"phonepe", "googlepay", "gpay",
}

// placeholderDomains never earn a neutral reputation.
var placeholderDomains = map[string]struct{}{
	"unknown": {},
	"temp":    {},
	"test":    {},
	"fake":    {},
}
