package analytics

import (
	"strings"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// CategoryRule collapses raw free-text sub-categories into one canonical
// label. A rule matches when every keyword appears in the input,
// case-insensitively. Rules are evaluated in order; the first match wins.
type CategoryRule struct {
	Keywords []string
	Label    string
}

// CategoryConfig carries the per-service rule tables and highlighted-category
// lists. It is immutable once handed to a Normalizer, so tests can build
// isolated configurations per service key.
type CategoryConfig struct {
	Rules       map[domain.ServiceKey][]CategoryRule
	Highlighted map[domain.ServiceKey][]string
}

// Normalizer canonicalizes free-text categories per service key.
type Normalizer struct {
	cfg CategoryConfig
}

// NewNormalizer builds a Normalizer from the given configuration.
func NewNormalizer(cfg CategoryConfig) *Normalizer {
	return &Normalizer{cfg: cfg}
}

// Normalize maps a raw sub-category to its canonical label for the given
// service. Unmatched inputs, and inputs for unknown service keys, pass
// through trimmed but otherwise verbatim; unrecognized categories are never
// silently discarded.
func (n *Normalizer) Normalize(service domain.ServiceKey, raw string) string {
	trimmed := strings.TrimSpace(raw)
	rules, ok := n.cfg.Rules[service]
	if !ok || trimmed == "" {
		return trimmed
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range rules {
		if rule.matches(lower) {
			return rule.Label
		}
	}
	return trimmed
}

// Highlighted returns the category labels emphasized in trend views for the
// given service.
func (n *Normalizer) Highlighted(service domain.ServiceKey) []string {
	return n.cfg.Highlighted[service]
}

func (r CategoryRule) matches(lower string) bool {
	if len(r.Keywords) == 0 {
		return false
	}
	for _, kw := range r.Keywords {
		if !strings.Contains(lower, kw) {
			return false
		}
	}
	return true
}

// DefaultCategoryConfig returns the built-in rule tables for the five known
// service keys.
func DefaultCategoryConfig() CategoryConfig {
	return CategoryConfig{
		Rules: map[domain.ServiceKey][]CategoryRule{
			domain.ServiceFlexcube: {
				{Keywords: []string{"core", "bank", "error"}, Label: "Core Banking Error"},
				{Keywords: []string{"eod"}, Label: "EOD Processing"},
				{Keywords: []string{"end of day"}, Label: "EOD Processing"},
				{Keywords: []string{"batch", "fail"}, Label: "Batch Failure"},
				{Keywords: []string{"account", "open"}, Label: "Account Opening"},
				{Keywords: []string{"gl", "posting"}, Label: "GL Posting"},
				{Keywords: []string{"login"}, Label: "Access Issue"},
				{Keywords: []string{"access"}, Label: "Access Issue"},
				{Keywords: []string{"slow"}, Label: "Performance"},
				{Keywords: []string{"performance"}, Label: "Performance"},
			},
			domain.ServiceCards: {
				{Keywords: []string{"atm"}, Label: "ATM Issue"},
				{Keywords: []string{"pos"}, Label: "POS Terminal"},
				{Keywords: []string{"card", "block"}, Label: "Card Blocking"},
				{Keywords: []string{"card", "activat"}, Label: "Card Activation"},
				{Keywords: []string{"dispute"}, Label: "Transaction Dispute"},
				{Keywords: []string{"chargeback"}, Label: "Transaction Dispute"},
				{Keywords: []string{"pin"}, Label: "PIN Management"},
				{Keywords: []string{"decline"}, Label: "Declined Transaction"},
			},
			domain.ServiceIBPS: {
				{Keywords: []string{"transfer", "fail"}, Label: "Transfer Failure"},
				{Keywords: []string{"swift"}, Label: "SWIFT Messaging"},
				{Keywords: []string{"rtgs"}, Label: "RTGS Settlement"},
				{Keywords: []string{"duplicate"}, Label: "Duplicate Payment"},
				{Keywords: []string{"reversal"}, Label: "Payment Reversal"},
				{Keywords: []string{"pending"}, Label: "Pending Settlement"},
				{Keywords: []string{"timeout"}, Label: "Gateway Timeout"},
			},
			domain.ServiceMFS: {
				{Keywords: []string{"ussd"}, Label: "USSD Access"},
				{Keywords: []string{"wallet"}, Label: "Wallet Operations"},
				{Keywords: []string{"pin", "reset"}, Label: "PIN Reset"},
				{Keywords: []string{"airtime"}, Label: "Airtime Purchase"},
				{Keywords: []string{"registration"}, Label: "Customer Registration"},
				{Keywords: []string{"otp"}, Label: "OTP Delivery"},
				{Keywords: []string{"agent"}, Label: "Agent Operations"},
			},
			domain.ServiceSmartTeller: {
				{Keywords: []string{"cash", "deposit"}, Label: "Cash Deposit"},
				{Keywords: []string{"cash", "withdraw"}, Label: "Cash Withdrawal"},
				{Keywords: []string{"receipt"}, Label: "Receipt Printing"},
				{Keywords: []string{"printer"}, Label: "Receipt Printing"},
				{Keywords: []string{"kiosk"}, Label: "Kiosk Hardware"},
				{Keywords: []string{"screen"}, Label: "Kiosk Hardware"},
				{Keywords: []string{"cheque"}, Label: "Cheque Deposit"},
				{Keywords: []string{"session"}, Label: "Session Timeout"},
			},
		},
		Highlighted: map[domain.ServiceKey][]string{
			domain.ServiceFlexcube:    {"Core Banking Error", "EOD Processing", "Batch Failure"},
			domain.ServiceCards:       {"ATM Issue", "Transaction Dispute"},
			domain.ServiceIBPS:        {"Transfer Failure", "SWIFT Messaging"},
			domain.ServiceMFS:         {"Wallet Operations", "USSD Access"},
			domain.ServiceSmartTeller: {"Cash Deposit", "Kiosk Hardware"},
		},
	}
}
