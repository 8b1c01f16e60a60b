package intent

import (
	"strings"
	"unicode"
)

const (
	Balance  = "BALANCE"
	Transfer = "TRANSFER"
	Card     = "CARD"
	Crypto   = "CRYPTO"
	Help     = "HELP"
)

type rule struct {
	name     string
	keywords []string
	reply    string
}

// Rules are checked in order; the first rule with a matching keyword wins.
var rules = []rule{
	{
		name:     Balance,
		keywords: []string{"balance", "solde", "how much money"},
		reply:    "You can see the balance of each account under Accounts, or ask me for your balance at any time.",
	},
	{
		name:     Transfer,
		keywords: []string{"transfer", "virement", "send money", "wire"},
		reply:    "To make a transfer, open Payments, choose the source account and enter the destination IBAN and amount. Transfers are checked for fraud before they are executed.",
	},
	{
		name:     Card,
		keywords: []string{"card", "carte", "cvv"},
		reply:    "You can hold up to 3 virtual cards, one per currency. From Cards you can create, block, unblock or delete a card and see its transactions.",
	},
	{
		name:     Crypto,
		keywords: []string{"crypto", "bitcoin", "btc", "ethereum", "eth"},
		reply:    "Crypto prices refresh every few seconds. From Crypto you can buy or sell BTC and ETH with the balance of your account.",
	},
	{
		name:     Help,
		keywords: []string{"help", "aide", "hello", "hi", "bonjour"},
		reply:    "I can help with balances, transfers, virtual cards, crypto and recurring payments. What would you like to do?",
	},
}

// Match is a detected intent and its canned reply.
type Match struct {
	Name  string
	Reply string
}

// Detect returns the first intent whose keyword appears in msg as whole words.
func Detect(msg string) (Match, bool) {
	text := " " + normalize(msg) + " "
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, " "+kw+" ") {
				return Match{Name: r.name, Reply: r.reply}, true
			}
		}
	}
	return Match{}, false
}

// normalize lowercases msg and collapses punctuation and spacing to single spaces.
func normalize(msg string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, msg)
	return strings.Join(strings.Fields(mapped), " ")
}
