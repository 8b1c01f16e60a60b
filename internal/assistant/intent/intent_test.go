package intent_test

import (
	"testing"

	"github.com/jeffleon2/ebanking/internal/assistant/intent"
	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		msg  string
		want string
		ok   bool
	}{
		{"What's my BALANCE?", intent.Balance, true},
		{"Quel est mon solde", intent.Balance, true},
		{"I want to send  money to my sister", intent.Transfer, true},
		{"block my card please", intent.Card, true},
		{"price of Bitcoin today", intent.Crypto, true},
		{"help!", intent.Help, true},
		{"this is history", "", false},
		{"explain compound interest", "", false},
	}
	for _, tt := range tests {
		m, ok := intent.Detect(tt.msg)
		assert.Equal(t, tt.ok, ok, tt.msg)
		assert.Equal(t, tt.want, m.Name, tt.msg)
		if ok {
			assert.NotEmpty(t, m.Reply)
		}
	}
}
