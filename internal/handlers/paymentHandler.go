package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"paylink/internal/metrics"
	"paylink/internal/payment/accountpe/paylink"
	"paylink/internal/payment/checkout"
	httpUtil "paylink/internal/utility/http"
)

type CheckoutRunner interface {
	Run(ctx context.Context, order paylink.TransactionRequest) (checkout.Outcome, error)
}

type PaymentHandler struct {
	checkout    CheckoutRunner
	callbackURL string
}

func NewPaymentHandler(runner CheckoutRunner, callbackURL string) *PaymentHandler {
	return &PaymentHandler{
		checkout:    runner,
		callbackURL: callbackURL,
	}
}

// GetPaymentLink runs the checkout for the fixed demo order.
func (h *PaymentHandler) GetPaymentLink(w http.ResponseWriter, r *http.Request) {
	order := paylink.DemoTransaction("")
	if h.callbackURL != "" {
		order.CallbackURL = h.callbackURL
	}

	outcome, err := h.checkout.Run(r.Context(), order)
	respondOutcome(w, outcome, err)
}

// CreatePaymentLink runs the checkout for the payer and order in the body.
// Any transaction_id in the body is ignored.
func (h *PaymentHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	var order paylink.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		httpUtil.RespondError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if order.CallbackURL == "" {
		order.CallbackURL = h.callbackURL
	}

	outcome, err := h.checkout.Run(r.Context(), order)
	respondOutcome(w, outcome, err)
}

func respondOutcome(w http.ResponseWriter, outcome checkout.Outcome, err error) {
	if err != nil {
		var failure *checkout.Failure
		if errors.As(err, &failure) {
			metrics.CheckoutOutcomes.WithLabelValues(outcome.State.String(), failure.Kind.String()).Inc()
			if failure.Kind == checkout.InvalidRequest {
				httpUtil.RespondError(w, http.StatusBadRequest, failure.Err.Error(), err)
				return
			}
		}
		httpUtil.RespondError(w, http.StatusBadGateway, err.Error(), err)
		return
	}

	if outcome.Redirect() {
		metrics.CheckoutOutcomes.WithLabelValues(outcome.State.String(), "redirect").Inc()
		w.Header().Set("Location", outcome.RedirectURL)
		w.WriteHeader(http.StatusFound)
		return
	}

	metrics.CheckoutOutcomes.WithLabelValues(outcome.State.String(), "missing_payment_link").Inc()
	httpUtil.RespondRaw(w, http.StatusOK, outcome.Response)
}
