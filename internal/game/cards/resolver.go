package cards

import (
	"github.com/google/uuid"

	"github.com/sunandbean/cashflow-server-go/internal/game/finance"
)

// PurchaseResult is the outcome of buying a deal card.
type PurchaseResult struct {
	Statement finance.Statement
	Cost      int
	OK        bool
	Reason    string
}

// BuyDeal applies a deal purchase to a statement given the buyer's cash.
// Stock purchases deduct shares*costPerShare and merge into any existing
// position with the same symbol (shares accumulate against the new lot's
// price and dividend). Property and business purchases deduct the down
// payment and add a cash-flow-bearing asset. Insufficient cash rejects the
// purchase and leaves the statement untouched.
func BuyDeal(s finance.Statement, cash int, card Card, shares int) PurchaseResult {
	switch card.Kind {
	case DealStock:
		if shares <= 0 {
			return PurchaseResult{Statement: s, OK: false, Reason: "share count must be positive"}
		}
		cost := shares * card.CostPerShare
		if cost > cash {
			return PurchaseResult{Statement: s, OK: false, Reason: "insufficient cash"}
		}
		next := finance.CloneStatement(s)
		merged := false
		for i, a := range next.Assets {
			if a.Kind == finance.AssetStock && a.Symbol == card.Symbol {
				a.Shares += shares
				a.CostPerShare = card.CostPerShare
				a.DividendPerShare = card.DividendPerShare
				next.Assets[i] = a
				merged = true
				break
			}
		}
		if !merged {
			next.Assets = append(next.Assets, finance.Asset{
				ID:               uuid.New().String(),
				Kind:             finance.AssetStock,
				Name:             card.Title,
				Symbol:           card.Symbol,
				Shares:           shares,
				CostPerShare:     card.CostPerShare,
				DividendPerShare: card.DividendPerShare,
			})
		}
		return PurchaseResult{Statement: next, Cost: cost, OK: true}

	case DealRealEstate, DealBusiness:
		if card.DownPayment > cash {
			return PurchaseResult{Statement: s, OK: false, Reason: "insufficient cash"}
		}
		kind := finance.AssetRealEstate
		if card.Kind == DealBusiness {
			kind = finance.AssetBusiness
		}
		next := finance.CloneStatement(s)
		next.Assets = append(next.Assets, finance.Asset{
			ID:           uuid.New().String(),
			Kind:         kind,
			Name:         card.Title,
			PropertyType: card.PropertyType,
			DownPayment:  card.DownPayment,
			Cost:         card.Cost,
			CashFlow:     card.CashFlow,
		})
		return PurchaseResult{Statement: next, Cost: card.DownPayment, OK: true}
	}

	return PurchaseResult{Statement: s, OK: false, Reason: "card is not purchasable"}
}

// SaleResult is the outcome of selling an asset under a market card.
type SaleResult struct {
	Statement finance.Statement
	Proceeds  int
	OK        bool
	Reason    string
}

// SellAsset sells the asset with the given id under the active market card.
// Stock sales require a matching stock-price card and sell the given number
// of shares at the new price. Property sales require a matching property
// offer; proceeds are the offer minus the outstanding mortgage and the asset
// leaves the statement.
func SellAsset(s finance.Statement, card Card, assetID string, shares int) SaleResult {
	idx := -1
	for i, a := range s.Assets {
		if a.ID == assetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return SaleResult{Statement: s, OK: false, Reason: "asset not found"}
	}
	asset := s.Assets[idx]

	switch card.Effect {
	case MarketStockPrice:
		if asset.Kind != finance.AssetStock || asset.Symbol != card.Symbol {
			return SaleResult{Statement: s, OK: false, Reason: "asset does not match the market card"}
		}
		if shares <= 0 || shares > asset.Shares {
			return SaleResult{Statement: s, OK: false, Reason: "invalid share count"}
		}
		next := finance.CloneStatement(s)
		asset.Shares -= shares
		if asset.Shares == 0 {
			next.Assets = append(next.Assets[:idx], next.Assets[idx+1:]...)
		} else {
			next.Assets[idx] = asset
		}
		return SaleResult{Statement: next, Proceeds: shares * card.NewPrice, OK: true}

	case MarketPropertyOffer:
		if asset.Kind == finance.AssetStock || asset.PropertyType != card.PropertyType {
			return SaleResult{Statement: s, OK: false, Reason: "asset does not match the market card"}
		}
		offer := card.FlatOffer
		if card.Multiplier > 0 {
			offer = asset.Cost * card.Multiplier / 100
		}
		next := finance.CloneStatement(s)
		next.Assets = append(next.Assets[:idx], next.Assets[idx+1:]...)
		return SaleResult{Statement: next, Proceeds: offer - asset.Cost, OK: true}
	}

	return SaleResult{Statement: s, OK: false, Reason: "market card does not enable selling"}
}

// ApplySplit applies a stock split to a statement in one pass. A num:den
// split multiplies shares by num/den (rounding down) while cost and dividend
// per share scale by den/num, so a 1:2 reverse split halves a position. A
// position reduced to zero shares is removed. Statements holding no matching
// symbol come back unchanged.
func ApplySplit(s finance.Statement, symbol string, num, den int) finance.Statement {
	if num <= 0 || den <= 0 {
		return s
	}
	next := finance.CloneStatement(s)
	kept := next.Assets[:0]
	for _, a := range next.Assets {
		if a.Kind == finance.AssetStock && a.Symbol == symbol {
			a.Shares = a.Shares * num / den
			a.CostPerShare = a.CostPerShare * den / num
			a.DividendPerShare = a.DividendPerShare * den / num
			if a.Shares == 0 {
				continue
			}
		}
		kept = append(kept, a)
	}
	next.Assets = kept
	return next
}

// HoldsProperty reports whether the statement holds any non-stock asset of
// the given property type.
func HoldsProperty(s finance.Statement, propertyType string) bool {
	for _, a := range s.Assets {
		if a.Kind != finance.AssetStock && a.PropertyType == propertyType {
			return true
		}
	}
	return false
}

// HoldsSymbol reports whether the statement holds shares of symbol.
func HoldsSymbol(s finance.Statement, symbol string) bool {
	for _, a := range s.Assets {
		if a.Kind == finance.AssetStock && a.Symbol == symbol && a.Shares > 0 {
			return true
		}
	}
	return false
}

// DoodadCost computes the cost of a doodad card against a statement at
// resolution time. Percentage doodads floor to whole currency units.
func DoodadCost(card Card, s finance.Statement) int {
	if card.PercentOfIncome > 0 {
		return finance.TotalIncome(s) * card.PercentOfIncome / 100
	}
	return card.Amount
}
