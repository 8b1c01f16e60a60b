package metrics

import "github.com/prometheus/client_golang/prometheus"

var amountBuckets = prometheus.ExponentialBuckets(1, 4, 10)

// Metrics holds the collectors fed from the event stream.
type Metrics struct {
	PaymentsTotal        *prometheus.CounterVec
	PaymentAmounts       *prometheus.HistogramVec
	PaymentTransitions   *prometheus.CounterVec
	FraudChecksTotal     *prometheus.CounterVec
	FraudScores          prometheus.Histogram
	AccountResponses     *prometheus.CounterVec
	WalletExpensesTotal  *prometheus.CounterVec
	WalletExpenseAmounts *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PaymentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total number of payments created",
			},
			[]string{"type"},
		),
		PaymentAmounts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payment_amounts",
				Help:    "Distribution of payment amounts",
				Buckets: amountBuckets,
			},
			[]string{"currency"},
		),
		PaymentTransitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_status_transitions_total",
				Help: "Payment status changes by target status",
			},
			[]string{"from", "to"},
		),
		FraudChecksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fraud_checks_total",
				Help: "Total number of fraud checks",
			},
			[]string{"status"},
		),
		FraudScores: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fraud_scores",
				Help:    "Distribution of fraud risk scores",
				Buckets: prometheus.LinearBuckets(0, 10, 11),
			},
		),
		AccountResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_funds_checks_total",
				Help: "Funds verification answers by status",
			},
			[]string{"status"},
		),
		WalletExpensesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_expenses_total",
				Help: "Total number of wallet expenses",
			},
			[]string{"category"},
		),
		WalletExpenseAmounts: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wallet_expense_amounts",
				Help:    "Distribution of wallet expense amounts",
				Buckets: amountBuckets,
			},
			[]string{"category"},
		),
	}
	reg.MustRegister(
		m.PaymentsTotal,
		m.PaymentAmounts,
		m.PaymentTransitions,
		m.FraudChecksTotal,
		m.FraudScores,
		m.AccountResponses,
		m.WalletExpensesTotal,
		m.WalletExpenseAmounts,
	)
	return m
}
