package accountpe

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

const (
	// ProdHostUrl Production Details
	ProdHostUrl = "https://api.accountpe.com"

	// AuthEndPoint exchanges merchant credentials for a bearer token
	AuthEndPoint = "/api/payin/admin/auth"

	// CreatePaymentLinksEndPoint End point for hosted payment links
	CreatePaymentLinksEndPoint = "/api/payin/create_payment_links"
)

var validate = validator.New()

// Credentials are the merchant login for the admin auth endpoint.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c Credentials) Validate() error {
	return validate.Struct(c)
}

// String keeps the password out of logs and %v output.
func (c Credentials) String() string {
	return fmt.Sprintf("{email:%s password:[redacted]}", c.Email)
}

// Endpoint joins base with path, tolerating a trailing slash on base.
func Endpoint(base, path string) string {
	if base == "" {
		base = ProdHostUrl
	}
	return strings.TrimSuffix(base, "/") + path
}
