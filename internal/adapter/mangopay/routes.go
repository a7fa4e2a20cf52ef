package mangopay

import (
	"fmt"
	"net/http"
	"strings"

	"mangopay-sync/internal/core/resource"
)

// route is the HTTP method and client-relative path for one call.
type route struct {
	method string
	path   string
}

// createRoute maps a resource to the endpoint that creates it.
func createRoute(res resource.Resource) (route, error) {
	post := func(format string, args ...any) (route, error) {
		return route{method: http.MethodPost, path: fmt.Sprintf(format, args...)}, nil
	}

	switch r := res.(type) {
	case resource.NaturalUser:
		return post("users/natural")
	case resource.LegalUser:
		return post("users/legal")
	case resource.Document:
		return post("users/%s/kyc/documents", r.UserID)
	case resource.Page:
		return post("users/%s/kyc/documents/%s/pages", r.UserID, r.DocumentID)
	case resource.BankAccount:
		return post("users/%s/bankaccounts/%s", r.UserID, strings.ToLower(r.Type))
	case resource.Wallet:
		return post("wallets")
	case resource.DirectPayIn:
		return post("payins/card/direct")
	case resource.BankWirePayIn:
		return post("payins/bankwire/direct")
	case resource.BankWirePayOut:
		return post("payouts/bankwire")
	case resource.Transfer:
		return post("transfers")
	case resource.PayInRefund:
		return post("payins/%s/refunds", r.PayInID)
	case resource.CardRegistration:
		return post("cardregistrations")
	}
	return route{}, fmt.Errorf("mangopay: create not supported for %T", res)
}

// updateRoute maps a resource carrying its remote id to its PUT endpoint.
func updateRoute(res resource.Resource) (route, error) {
	put := func(id, format string, args ...any) (route, error) {
		if id == "" {
			return route{}, fmt.Errorf("mangopay: update %s without id", res.Kind())
		}
		return route{method: http.MethodPut, path: fmt.Sprintf(format, args...)}, nil
	}

	switch r := res.(type) {
	case resource.NaturalUser:
		return put(r.ID, "users/natural/%s", r.ID)
	case resource.LegalUser:
		return put(r.ID, "users/legal/%s", r.ID)
	case resource.Document:
		return put(r.ID, "users/%s/kyc/documents/%s", r.UserID, r.ID)
	case resource.CardRegistration:
		return put(r.ID, "cardregistrations/%s", r.ID)
	}
	return route{}, fmt.Errorf("mangopay: update not supported for %T", res)
}

// fetchRoute maps a kind and remote id to its GET endpoint.
func fetchRoute(kind resource.Kind, id string) (route, error) {
	if id == "" {
		return route{}, fmt.Errorf("mangopay: fetch %s without id", kind)
	}
	get := func(collection string) (route, error) {
		return route{method: http.MethodGet, path: collection + "/" + id}, nil
	}

	switch kind {
	case resource.KindNaturalUser, resource.KindLegalUser:
		return get("users")
	case resource.KindDocument:
		return get("kyc/documents")
	case resource.KindWallet:
		return get("wallets")
	case resource.KindPayIn, resource.KindCardDirectPayIn, resource.KindBankWirePayIn:
		return get("payins")
	case resource.KindBankWirePayOut:
		return get("payouts")
	case resource.KindTransfer:
		return get("transfers")
	case resource.KindPayInRefund:
		return get("refunds")
	case resource.KindCardRegistration:
		return get("cardregistrations")
	case resource.KindCard:
		return get("cards")
	}
	return route{}, fmt.Errorf("mangopay: fetch not supported for %s", kind)
}
