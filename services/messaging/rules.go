package messaging

import (
	"regexp"

	"carelink/models"
)

// Action decides what a matched rule does to the message.
type Action int

const (
	// ActionBlock suppresses the whole message and stops rule evaluation.
	ActionBlock Action = iota
	// ActionRedact rewrites the matched text and continues evaluating.
	ActionRedact
)

// Rule is one named pattern check. Rules are evaluated in declaration order;
// SenderRole restricts a rule to one speaking direction, empty means both.
type Rule struct {
	Name        string
	Action      Action
	Pattern     *regexp.Regexp
	BlockReason string // block rules
	Warning     string // redact rules
	SenderRole  string
}

const redactedPlaceholder = "[redacted]"

// blockedContent replaces the entire message when a block rule matches.
const blockedContent = "This message was blocked because it may contain sensitive personal or financial information."

// hardRules fail closed: one match suppresses the message entirely and no
// further rule is consulted.
var hardRules = []Rule{
	{
		Name:        "ssn",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`(?i)\b\d{3}[- ]?\d{2}[- ]?\d{4}\b|\bSSN\b|\bsocial security\b`),
		BlockReason: "Social Security numbers may not be shared or requested",
	},
	{
		Name:        "credit-card",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`\b(?:\d{4}[- ]?){3}\d{3,4}\b`),
		BlockReason: "card numbers may not be shared or requested",
	},
	{
		Name:        "bank-account",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`(?i)\b(bank account|routing number|account number|wire transfer)\b`),
		BlockReason: "bank account details may not be shared or requested",
	},
	{
		Name:        "credentials",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`(?i)\b(password|passcode|pin (?:number|code)|security code)\b`),
		BlockReason: "security credentials may not be shared or requested",
	},
	{
		Name:        "estate",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`(?i)\b(inheritance|beneficiar(?:y|ies)|estate planning|power of attorney|life insurance polic(?:y|ies))\b`),
		BlockReason: "estate and inheritance topics may not be discussed here",
	},
	{
		Name:        "off-platform-meeting",
		Action:      ActionBlock,
		Pattern:     regexp.MustCompile(`(?i)(off[- ]platform|outside the (?:app|platform)|meet (?:me )?(?:privately|off the books)|pay (?:me|you) (?:directly |in )?cash)`),
		BlockReason: "meetings and payments must be arranged through the platform",
	},
}

// softRules rewrite risky phrasing but let the rest of the message through.
// Each matched category appends one warning.
var softRules = []Rule{
	{
		Name:    "email-address",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		Warning: "email addresses are removed to keep communication on the platform",
	},
	{
		Name:    "phone-number",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}\b`),
		Warning: "phone numbers are removed to keep communication on the platform",
	},
	{
		Name:    "phone-solicitation",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(call me|text me|your (?:phone|cell|mobile) number|phone number|whatsapp|telegram)\b`),
		Warning: "requests for phone contact are removed",
	},
	{
		Name:    "street-address",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b\d+ [A-Za-z0-9 .]+ (street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|place|pl|way)\b\.?`),
		Warning: "street addresses are removed until a visit is underway",
	},
	{
		Name:    "location-solicitation",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(where (?:do|does) (?:you|she|he|they) live|your (?:home )?address|which (?:building|apartment) (?:do you|is it))\b`),
		Warning: "requests for home location are removed",
	},
	{
		Name:    "drivers-license",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(driver'?s? licen[cs]e(?: number)?)\b|\b[A-Z]\d{7,8}\b`),
		Warning: "driver's license details are removed",
	},
	{
		Name:    "dob-request",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(date of birth|birth ?date|when were you born)\b`),
		Warning: "requests for date of birth are removed",
	},
	{
		Name:    "financial-probing",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(your (?:income|salary|savings|pension|finances)|how much money|financial situation)\b`),
		Warning: "questions about finances are removed",
	},
	{
		Name:    "living-situation",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(live alone|who (?:do you |does she |does he )?live with|home alone|anyone else (?:at|in) (?:the|your) (?:house|home|apartment))\b`),
		Warning: "questions about living situation are removed",
	},
	{
		Name:    "family-probing",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(next of kin|do your (?:children|kids|family) (?:visit|live|check)|any family nearby|closest relative)\b`),
		Warning: "questions about family and next of kin are removed",
	},
	{
		Name:       "age-fishing",
		Action:     ActionRedact,
		Pattern:    regexp.MustCompile(`(?i)\b(how old are you|what'?s your (?:exact )?age|your exact age)\b`),
		Warning:    "questions about age are removed",
		SenderRole: models.RoleCaregiver,
	},
	{
		Name:    "photo-request",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(send (?:me )?(?:a |your )?(?:photo|picture|pic|selfie)s?|your (?:photo|picture))\b`),
		Warning: "photo requests are removed",
	},
	{
		Name:    "contact-solicitation",
		Action:  ActionRedact,
		Pattern: regexp.MustCompile(`(?i)\b(contact (?:me|you) directly|reach (?:me|you) (?:directly|outside the app)|deal with (?:me|you) directly|my personal (?:email|number))\b`),
		Warning: "requests for direct contact are removed",
	},
}
