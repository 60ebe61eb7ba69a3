package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"paylink/internal/payment/accountpe/paylink"
)

type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type LinkCreator interface {
	CreateLink(ctx context.Context, payload paylink.TransactionRequest, token string) (paylink.Response, error)
}

type State int

const (
	Authenticating State = iota
	CreatingLink
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case CreatingLink:
		return "creating_link"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type FailureKind int

const (
	InvalidRequest FailureKind = iota + 1
	AuthenticationFailure
	LinkCreationFailure
)

func (k FailureKind) String() string {
	switch k {
	case InvalidRequest:
		return "invalid_request"
	case AuthenticationFailure:
		return "authentication_failure"
	case LinkCreationFailure:
		return "link_creation_failure"
	default:
		return fmt.Sprintf("failure(%d)", int(k))
	}
}

// Failure is the error returned by Run. Err is the raw cause.
type Failure struct {
	Kind FailureKind
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Outcome is where a run ended. A Done outcome either carries a RedirectURL
// or, when the gateway returned no payment link, the raw Response.
type Outcome struct {
	State         State
	TransactionID string
	RedirectURL   string
	Response      json.RawMessage
}

func (o Outcome) Redirect() bool {
	return o.State == Done && o.RedirectURL != ""
}

type Checkout struct {
	tokens           TokenProvider
	links            LinkCreator
	newTransactionID func() string
}

func NewCheckout(tokens TokenProvider, links LinkCreator) *Checkout {
	return &Checkout{
		tokens:           tokens,
		links:            links,
		newTransactionID: paylink.NewTransactionID,
	}
}

// Run authenticates, then asks for a payment link for order. order's
// TransactionID is always replaced with a freshly generated one.
func (c *Checkout) Run(ctx context.Context, order paylink.TransactionRequest) (Outcome, error) {
	order.TransactionID = c.newTransactionID()
	outcome := Outcome{State: Authenticating, TransactionID: order.TransactionID}

	if err := order.Validate(); err != nil {
		return c.fail(outcome, InvalidRequest, err)
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return c.fail(outcome, AuthenticationFailure, err)
	}

	outcome.State = CreatingLink
	response, err := c.links.CreateLink(ctx, order, token)
	if err != nil {
		return c.fail(outcome, LinkCreationFailure, err)
	}

	outcome.State = Done
	if link := response.PaymentLink(); link != "" {
		outcome.RedirectURL = link
		return outcome, nil
	}

	outcome.Response = response.Raw
	return outcome, nil
}

func (c *Checkout) fail(outcome Outcome, kind FailureKind, err error) (Outcome, error) {
	outcome.State = Failed
	return outcome, &Failure{Kind: kind, Err: err}
}
