package events

const (
	TopicPaymentsCreated       = "payments.created"
	TopicPaymentsChecked       = "payments.checked"
	TopicPaymentStatusChanged  = "payments.status.changed"
	TopicAccountFundsVerified  = "accounts.funds.verified"
	TopicAccountDebitRequested = "accounts.debit.requested"
	TopicAccountDebitCompleted = "accounts.debit.completed"
	TopicAccountCreditRequest  = "accounts.credit.requested"
	TopicAuditEvents           = "audit.events"
	TopicCustomerKYCUpdated    = "customers.kyc.updated"
	TopicWalletExpenseCreated  = "wallet.expenses.created"
	TopicRecurringExecuted     = "recurring.executed"

	StatusApproved = "APPROVED"
	StatusDeclined = "DECLINED"
	StatusReview   = "REVIEW"
)

// DLQTopic returns the dead letter topic owned by a service.
func DLQTopic(service string) string {
	return service + ".dlq"
}
