package models_test

import (
	"regexp"
	"testing"

	"github.com/jeffleon2/ebanking/internal/wallet/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewWalletRef(t *testing.T) {
	ref := models.NewWalletRef()

	assert.Regexp(t, regexp.MustCompile(`^WLT-[0-9A-F]{8}$`), ref)
	assert.NotEqual(t, ref, models.NewWalletRef())
}

func TestWallet_CanSpend(t *testing.T) {
	w := models.Wallet{BudgetLimit: decimal.NewFromInt(100), Spent: decimal.NewFromInt(60)}

	assert.True(t, w.CanSpend(decimal.NewFromInt(40)))
	assert.False(t, w.CanSpend(decimal.NewFromFloat(40.01)))
	assert.True(t, w.Remaining().Equal(decimal.NewFromInt(40)))
}
