package database

import (
	"github.com/jeffleon2/ebanking/internal/account/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DemoAccounts are created for local runs only.
var DemoAccounts = []models.Account{
	{ExternalRef: "ACC-DEMO-ALICE-MAD", UserID: "user_1", Currency: "MAD", Balance: decimal.NewFromInt(10000)},
	{ExternalRef: "ACC-DEMO-ALICE-EUR", UserID: "user_1", Currency: "EUR", Balance: decimal.NewFromInt(1500)},
	{ExternalRef: "ACC-DEMO-BOB-MAD", UserID: "user_2", Currency: "MAD", Balance: decimal.NewFromInt(5000)},
	{ExternalRef: "ACC-DEMO-CAROL-USD", UserID: "user_3", Currency: "USD", Balance: decimal.NewFromInt(2000)},
}

// SeedAccounts creates the demo accounts that do not exist yet.
func SeedAccounts(db *gorm.DB) error {
	for _, acc := range DemoAccounts {
		acc := acc
		if err := db.Where(models.Account{ExternalRef: acc.ExternalRef}).FirstOrCreate(&acc).Error; err != nil {
			return err
		}
	}
	logrus.WithField("count", len(DemoAccounts)).Info("demo accounts seeded")
	return nil
}
