// Package settlement holds the in-process stand-in for the legacy core
// banking adapter, used when no adapter URL is configured.
package settlement

import (
	"context"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jeffleon2/ebanking/internal/client"
	"github.com/sirupsen/logrus"
)

type Simulator struct {
	FailureRate float64
	roll        func() float64
}

func NewSimulator(failureRate float64) *Simulator {
	return &Simulator{FailureRate: failureRate, roll: rand.Float64}
}

// Settle succeeds unless the roll falls under FailureRate, so the
// compensation path runs in development too.
func (s *Simulator) Settle(ctx context.Context, p client.LegacyPayment) (*client.LegacyResult, error) {
	log := logrus.WithFields(logrus.Fields{
		"payment_id": p.TransactionID,
		"amount":     p.Amount.String(),
		"currency":   p.Currency,
	})

	if s.roll() < s.FailureRate {
		log.Warn("simulated legacy settlement failed")
		return &client.LegacyResult{
			TransactionID: p.TransactionID,
			Success:       false,
			Message:       "simulated legacy failure",
		}, nil
	}

	ref := "LEG-" + strings.ToUpper(uuid.New().String()[:8])
	log.WithField("legacy_reference", ref).Info("simulated legacy settlement succeeded")
	return &client.LegacyResult{
		TransactionID:   p.TransactionID,
		Success:         true,
		Message:         "settled",
		LegacyReference: ref,
	}, nil
}
