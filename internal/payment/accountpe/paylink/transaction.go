package paylink

import (
	"github.com/google/uuid"
)

const transactionIDPrefix = "txn_"

// NewTransactionID returns "txn_" followed by a random (version 4) UUID.
func NewTransactionID() string {
	return transactionIDPrefix + uuid.NewString()
}
