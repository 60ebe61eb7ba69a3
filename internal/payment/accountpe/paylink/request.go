package paylink

import (
	"github.com/go-playground/validator"
)

const (
	DefaultCallbackURL = "https://merchant.example.com/webhook/payment_status"
)

var validate = validator.New()

type TransactionRequest struct {
	CountryCode       string  `json:"country_code" validate:"required,len=2,alpha"`
	Name              string  `json:"name" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Mobile            string  `json:"mobile" validate:"required,numeric"`
	Amount            float64 `json:"amount" validate:"gt=0"`
	Currency          string  `json:"currency" validate:"required,len=3,alpha"`
	TransactionID     string  `json:"transaction_id" validate:"required"`
	Description       string  `json:"description"`
	PassDigitalCharge bool    `json:"pass_digital_charge"`
	CallbackURL       string  `json:"callback_url" validate:"required,url"`
}

func (r TransactionRequest) Validate() error {
	return validate.Struct(r)
}

// DemoTransaction is the fixed single-order scenario used by GET /payments/link.
func DemoTransaction(transactionID string) TransactionRequest {
	return TransactionRequest{
		CountryCode:       "CM",
		Name:              "Rahul Sharma",
		Email:             "rahul@example.com",
		Mobile:            "919876543210",
		Amount:            149.5,
		Currency:          "XAF",
		TransactionID:     transactionID,
		Description:       "Payment for order #1234",
		PassDigitalCharge: true,
		CallbackURL:       DefaultCallbackURL,
	}
}
