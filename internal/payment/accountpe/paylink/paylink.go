package paylink

import (
	"context"
	"errors"
	"fmt"

	"paylink/internal/payment/accountpe"
	httpClient "paylink/internal/utility/http"
)

// ErrLinkCreation means the gateway did not hand back a usable response.
var ErrLinkCreation = errors.New("accountpe: payment link creation failed")

type Creator struct {
	client  *httpClient.Client
	baseURL string
}

func NewCreator(client *httpClient.Client, baseURL string) *Creator {
	return &Creator{
		client:  client,
		baseURL: baseURL,
	}
}

func (c *Creator) CreateLink(ctx context.Context, payload TransactionRequest, token string) (Response, error) {
	response, err := c.client.PostJSON(ctx, accountpe.Endpoint(c.baseURL, accountpe.CreatePaymentLinksEndPoint), payload,
		httpClient.WithBearerToken(token),
		httpClient.WithHeader("Accept", "application/json"),
		httpClient.WithHeader("Content-Type", "application/json"))
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrLinkCreation, err)
	}

	linkResp, err := ParseResponse(response)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrLinkCreation, err)
	}

	return linkResp, nil
}
