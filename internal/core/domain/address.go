package domain

import (
	"regexp"
	"strings"
)

// ClassifierPatterns holds the address-shape tables used to map a
// destination string to a Network. The sidechain base58 ranges overlap with
// other base58 formats in the wild, so the tables are data, not hard-coded
// literals; substitute validated patterns when targeting another sidechain.
type ClassifierPatterns struct {
	// InvoicePrefix is matched case-insensitively at the start of the string.
	InvoicePrefix string
	OnChain       []*regexp.Regexp
	Sidechain     []*regexp.Regexp
}

// DefaultClassifierPatterns covers mainnet Bitcoin and Liquid shapes.
func DefaultClassifierPatterns() ClassifierPatterns {
	return ClassifierPatterns{
		InvoicePrefix: "ln",
		OnChain: []*regexp.Regexp{
			regexp.MustCompile(`^1[1-9A-HJ-NP-Za-km-z]{25,34}$`),  // legacy P2PKH
			regexp.MustCompile(`^3[1-9A-HJ-NP-Za-km-z]{25,34}$`),  // P2SH
			regexp.MustCompile(`^(?i)bc1[02-9ac-hj-np-z]{8,87}$`), // bech32
		},
		Sidechain: []*regexp.Regexp{
			regexp.MustCompile(`^(?i)lq1[02-9ac-hj-np-z]{8,100}$`), // blech32
			regexp.MustCompile(`^[GHQ][1-9A-HJ-NP-Za-km-z]{25,34}$`),
			regexp.MustCompile(`^V[JT][1-9A-HJ-NP-Za-km-z]{60,99}$`), // confidential
		},
	}
}

// AddressClassifier maps destination strings to settlement networks.
// Pure and total: every input yields a tag, NetworkUnknown included.
type AddressClassifier struct {
	patterns ClassifierPatterns
}

// NewAddressClassifier builds a classifier over the given pattern tables.
func NewAddressClassifier(patterns ClassifierPatterns) *AddressClassifier {
	return &AddressClassifier{patterns: patterns}
}

// NewDefaultClassifier builds a classifier over DefaultClassifierPatterns.
func NewDefaultClassifier() *AddressClassifier {
	return NewAddressClassifier(DefaultClassifierPatterns())
}

// Classify applies the ordered rules; first match wins. Invoice prefixes
// and domain-like aliases are checked before address shapes because the
// charsets overlap.
func (c *AddressClassifier) Classify(destination string) Network {
	dest := strings.TrimSpace(destination)
	if dest == "" {
		return NetworkUnknown
	}

	if strings.HasPrefix(strings.ToLower(dest), strings.ToLower(c.patterns.InvoicePrefix)) {
		return NetworkLightning
	}

	if IsLightningAlias(dest) {
		return NetworkLightning
	}

	for _, re := range c.patterns.OnChain {
		if re.MatchString(dest) {
			return NetworkBitcoin
		}
	}

	for _, re := range c.patterns.Sidechain {
		if re.MatchString(dest) {
			return NetworkLiquid
		}
	}

	return NetworkUnknown
}

// IsLightningAlias reports whether s looks like user@domain.tld, the
// human-readable payment alias form.
func IsLightningAlias(s string) bool {
	if strings.Count(s, "@") != 1 {
		return false
	}
	user, host, _ := strings.Cut(s, "@")
	return user != "" && strings.Contains(host, ".")
}
