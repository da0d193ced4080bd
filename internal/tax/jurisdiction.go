package tax

import (
	"github.com/sivanandz/luminila-ERP-sub002/internal/domain"
	"github.com/sivanandz/luminila-ERP-sub002/internal/states"
)

// ResolutionSource names which buyer-side signal decided the jurisdiction.
type ResolutionSource string

const (
	SourcePlaceOfSupply ResolutionSource = "place_of_supply"
	SourceBuyerState    ResolutionSource = "buyer_state"
	SourceSellerState   ResolutionSource = "seller_state"
)

// Resolution is the outcome of jurisdiction resolution for one document.
type Resolution struct {
	BuyerCode  string           `json:"buyer_code"`
	Source     ResolutionSource `json:"source"`
	InterState bool             `json:"inter_state"`
}

// ResolveJurisdiction decides whether a transaction is inter-state.
//
// Precedence is a fixed, documented policy: an explicit place-of-supply code
// wins over the buyer's registered state, which wins over falling back to the
// seller's own state (no buyer signal at all means intra-state). Supplying
// both a buyer state and a conflicting place of supply is legal; place of
// supply governs the tax treatment.
func ResolveJurisdiction(sellerCode, buyerCode, placeOfSupply string) (Resolution, error) {
	if !states.IsValidCode(sellerCode) {
		return Resolution{}, domain.NewValidationError("seller_state", "unknown state code %q", sellerCode)
	}

	res := Resolution{BuyerCode: sellerCode, Source: SourceSellerState}
	switch {
	case placeOfSupply != "":
		res = Resolution{BuyerCode: placeOfSupply, Source: SourcePlaceOfSupply}
	case buyerCode != "":
		res = Resolution{BuyerCode: buyerCode, Source: SourceBuyerState}
	}

	if !states.IsValidCode(res.BuyerCode) {
		return Resolution{}, domain.NewValidationError(string(res.Source), "unknown state code %q", res.BuyerCode)
	}

	res.InterState = res.BuyerCode != sellerCode
	return res, nil
}
