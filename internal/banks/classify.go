package banks

import (
	"strings"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Counterparties that mark an outbound transfer as an investment:
// mutual funds, brokerages, gold and clearing corporations.
var investmentMarkers = []string{
	"mutual fund",
	"mutualfund",
	"sip ",
	"zerodha",
	"groww",
	"upstox",
	"kuvera",
	"smallcase",
	"angel one",
	"5paisa",
	"etmoney",
	"paytm money",
	"indian clearing",
	"clearing corp",
	"securities",
	"broking",
	"brokerage",
	"digital gold",
	"safegold",
	"mmtc-pamp",
	"bse limited",
	"nse clearing",
	"amc ",
	"asset management",
	"nippon india",
	"icclbse",
}

// Counterparties that mark an outbound transfer as the user's own
// credit-card bill, i.e. a TRANSFER rather than an EXPENSE.
var cardBillMarkers = []string{
	"credit card payment",
	"creditcard payment",
	"card bill",
	"cc payment",
	"crd bill",
	"cred.club",
	"cred club",
	"towards your credit card",
	"card ending payment",
	"bbps",
}

// refineDebit resolves the semantic kind of an outbound transaction from
// counterparty semantics and the instrument: investments and own-card
// bill payments are carved out first, then card debits split by card
// class, and everything else is a plain expense. The first applicable
// rule wins so an ambiguous body never silently flips classification.
func refineDebit(merchant, body string, card, creditCard bool) domain.Type {
	probe := strings.ToLower(merchant + " " + body)

	for _, m := range investmentMarkers {
		if strings.Contains(probe, m) {
			return domain.TypeInvestment
		}
	}
	for _, m := range cardBillMarkers {
		if strings.Contains(probe, m) {
			return domain.TypeTransfer
		}
	}
	if card && creditCard {
		return domain.TypeCredit
	}
	return domain.TypeExpense
}
