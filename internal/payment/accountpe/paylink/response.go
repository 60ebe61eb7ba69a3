package paylink

import (
	"encoding/json"
	"errors"
)

// Response is the gateway answer. Raw is kept exactly as received so it can
// be handed back to the caller when there is nothing to redirect to.
type Response struct {
	Raw         json.RawMessage
	paymentLink string
}

// PaymentLink is data.payment_link, or "" when the response has none.
func (r Response) PaymentLink() string {
	return r.paymentLink
}

// ParseResponse keeps body as Raw and picks out data.payment_link if present.
func ParseResponse(body []byte) (Response, error) {
	if !json.Valid(body) {
		return Response{}, errors.New("response is not valid JSON")
	}

	resp := Response{Raw: json.RawMessage(body)}

	// Any other shape of data just means there is no link to follow.
	var envelope struct {
		Data struct {
			PaymentLink string `json:"payment_link"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		resp.paymentLink = envelope.Data.PaymentLink
	}

	return resp, nil
}
