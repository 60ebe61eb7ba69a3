package accountpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEndpoint(t *testing.T) {
	require.Equal(t, "https://api.accountpe.com/api/payin/admin/auth", Endpoint("", AuthEndPoint))
	require.Equal(t, "https://api.accountpe.com/api/payin/create_payment_links", Endpoint(ProdHostUrl, CreatePaymentLinksEndPoint))
	require.Equal(t, "http://127.0.0.1:8080/api/payin/admin/auth", Endpoint("http://127.0.0.1:8080/", AuthEndPoint))
}

func TestCredentials(t *testing.T) {
	require.NoError(t, Credentials{Email: "merchant@example.com", Password: "pw"}.Validate())
	require.Error(t, Credentials{Email: "merchant@example.com"}.Validate())
	require.Error(t, Credentials{Password: "pw"}.Validate())

	require.Equal(t, "{email:merchant@example.com password:[redacted]}", Credentials{Email: "merchant@example.com", Password: "pw"}.String())
}
