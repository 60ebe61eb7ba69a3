package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"paylink/internal/handlers"
	"paylink/internal/payment/accountpe/paylink"
	"paylink/internal/payment/checkout"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/require"
)

type stubCheckout struct {
	outcome checkout.Outcome
	err     error
	got     []paylink.TransactionRequest
}

func (s *stubCheckout) Run(ctx context.Context, order paylink.TransactionRequest) (checkout.Outcome, error) {
	s.got = append(s.got, order)
	return s.outcome, s.err
}

func newRouter(runner handlers.CheckoutRunner) chi.Router {
	h := handlers.NewPaymentHandler(runner, "https://shop.example.com/hooks/accountpe")
	r := chi.NewRouter()
	r.Get("/payments/link", h.GetPaymentLink)
	r.Post("/payments/link", h.CreatePaymentLink)
	return r
}

func TestGetPaymentLink(t *testing.T) {
	t.Run("redirect", func(t *testing.T) {
		stub := &stubCheckout{outcome: checkout.Outcome{State: checkout.Done, RedirectURL: "https://pay.example/abc"}}

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/link", nil))

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "https://pay.example/abc", w.Header().Get("Location"))
		require.Empty(t, w.Body.String())

		require.Len(t, stub.got, 1)
		require.Equal(t, "Rahul Sharma", stub.got[0].Name)
		require.Equal(t, "https://shop.example.com/hooks/accountpe", stub.got[0].CallbackURL)
	})

	t.Run("raw response", func(t *testing.T) {
		stub := &stubCheckout{outcome: checkout.Outcome{State: checkout.Done, Response: []byte(`{"data":{}}`)}}

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/link", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("Location"))
		require.Equal(t, `{"data":{}}`, w.Body.String())
	})

	t.Run("gateway failure", func(t *testing.T) {
		stub := &stubCheckout{
			outcome: checkout.Outcome{State: checkout.Failed},
			err:     &checkout.Failure{Kind: checkout.AuthenticationFailure, Err: errors.New("unexpected status 401 Unauthorized")},
		}

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/link", nil))

		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Contains(t, w.Body.String(), "401 Unauthorized")
	})
}

func TestCreatePaymentLink(t *testing.T) {
	t.Run("payer from body", func(t *testing.T) {
		stub := &stubCheckout{outcome: checkout.Outcome{State: checkout.Done, RedirectURL: "https://pay.example/xyz"}}
		body := `{"country_code":"CM","name":"Awa Ngono","email":"awa@example.com","mobile":"237670000000",
			"amount":5000,"currency":"XAF","description":"Order #77","pass_digital_charge":false}`

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payments/link", bytes.NewBufferString(body)))

		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "https://pay.example/xyz", w.Header().Get("Location"))

		require.Len(t, stub.got, 1)
		require.Equal(t, "Awa Ngono", stub.got[0].Name)
		require.Equal(t, 5000.0, stub.got[0].Amount)
		require.Equal(t, "https://shop.example.com/hooks/accountpe", stub.got[0].CallbackURL)
	})

	t.Run("malformed body", func(t *testing.T) {
		stub := &stubCheckout{}

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payments/link", bytes.NewBufferString(`{`)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Empty(t, stub.got)
	})

	t.Run("invalid order", func(t *testing.T) {
		stub := &stubCheckout{
			outcome: checkout.Outcome{State: checkout.Failed},
			err:     &checkout.Failure{Kind: checkout.InvalidRequest, Err: errors.New("email is required")},
		}

		w := httptest.NewRecorder()
		newRouter(stub).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/payments/link", bytes.NewBufferString(`{}`)))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "email is required")
	})
}
