package analytics

import (
	"testing"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func TestNormalizeDefaultRules(t *testing.T) {
	n := NewNormalizer(DefaultCategoryConfig())

	tests := []struct {
		service domain.ServiceKey
		input   string
		want    string
	}{
		{domain.ServiceFlexcube, "Core banking ERROR on posting", "Core Banking Error"},
		{domain.ServiceFlexcube, "EOD job stuck", "EOD Processing"},
		{domain.ServiceFlexcube, "cannot login to branch module", "Access Issue"},
		{domain.ServiceCards, "ATM swallowed card", "ATM Issue"},
		{domain.ServiceCards, "chargeback from merchant", "Transaction Dispute"},
		{domain.ServiceIBPS, "SWIFT MT103 rejected", "SWIFT Messaging"},
		{domain.ServiceMFS, "USSD menu not loading", "USSD Access"},
		{domain.ServiceSmartTeller, "cash deposit stuck at kiosk", "Cash Deposit"},
	}
	for _, tc := range tests {
		if got := n.Normalize(tc.service, tc.input); got != tc.want {
			t.Errorf("Normalize(%s, %q) = %q, want %q", tc.service, tc.input, got, tc.want)
		}
	}
}

func TestNormalizeRuleOrderWins(t *testing.T) {
	n := NewNormalizer(CategoryConfig{
		Rules: map[domain.ServiceKey][]CategoryRule{
			domain.ServiceCards: {
				{Keywords: []string{"card", "block"}, Label: "Card Blocking"},
				{Keywords: []string{"card"}, Label: "Generic Card"},
			},
		},
	})

	if got := n.Normalize(domain.ServiceCards, "card blocked overseas"); got != "Card Blocking" {
		t.Fatalf("got %q, want the earlier, more specific rule", got)
	}
	if got := n.Normalize(domain.ServiceCards, "card expired"); got != "Generic Card" {
		t.Fatalf("got %q, want fallthrough to later rule", got)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	n := NewNormalizer(DefaultCategoryConfig())

	if got := n.Normalize(domain.ServiceFlexcube, "  Unmapped weirdness  "); got != "Unmapped weirdness" {
		t.Errorf("unmatched input = %q, want trimmed pass-through", got)
	}
	if got := n.Normalize(domain.ServiceKey("unknown"), "anything"); got != "anything" {
		t.Errorf("unknown service = %q, want pass-through", got)
	}
	if got := n.Normalize(domain.ServiceFlexcube, "   "); got != "" {
		t.Errorf("blank input = %q, want empty", got)
	}
}

func TestHighlighted(t *testing.T) {
	n := NewNormalizer(DefaultCategoryConfig())

	got := n.Highlighted(domain.ServiceFlexcube)
	if len(got) == 0 {
		t.Fatal("no highlighted categories for flexcube")
	}
	if got[0] != "Core Banking Error" {
		t.Errorf("first highlighted = %q", got[0])
	}
	if n.Highlighted(domain.ServiceKey("unknown")) != nil {
		t.Error("unknown service should have no highlighted categories")
	}
}
