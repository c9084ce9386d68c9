package cards

// Built-in card catalogues. Amounts are whole currency units.

// SmallDeals returns the small-deal catalogue: cheap stocks, starter
// properties and the occasional stock split.
func SmallDeals() []Card {
	return []Card{
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "OK4U Drug Co.", Text: "Share price 5. Yields no dividend.", Symbol: "OK4U", CostPerShare: 5},
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "OK4U Drug Co.", Text: "Share price 20. Yields no dividend.", Symbol: "OK4U", CostPerShare: 20},
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "MYT4U Electronics", Text: "Share price 10. Yields no dividend.", Symbol: "MYT4U", CostPerShare: 10},
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "MYT4U Electronics", Text: "Share price 30. Yields no dividend.", Symbol: "MYT4U", CostPerShare: 30},
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "ON2U Entertainment", Text: "Share price 15, dividend 1 per share.", Symbol: "ON2U", CostPerShare: 15, DividendPerShare: 1},
		{Deck: DeckSmallDeal, Kind: DealStock, Title: "GRO4US Mutual Fund", Text: "Share price 25, dividend 1 per share.", Symbol: "GRO4US", CostPerShare: 25, DividendPerShare: 1},
		{Deck: DeckSmallDeal, Kind: DealStockSplit, Title: "OK4U Splits 2:1", Text: "All holders double their shares; price and dividend halve.", Symbol: "OK4U", SplitNum: 2, SplitDen: 1},
		{Deck: DeckSmallDeal, Kind: DealStockSplit, Title: "MYT4U Splits 2:1", Text: "All holders double their shares; price and dividend halve.", Symbol: "MYT4U", SplitNum: 2, SplitDen: 1},
		{Deck: DeckSmallDeal, Kind: DealRealEstate, Title: "Condo For Sale", Text: "2Br/1Ba condo, bank foreclosure.", PropertyType: "condo", DownPayment: 5000, Cost: 40000, CashFlow: 140},
		{Deck: DeckSmallDeal, Kind: DealRealEstate, Title: "House For Sale", Text: "3Br/2Ba house, owner must move.", PropertyType: "house", DownPayment: 4000, Cost: 50000, CashFlow: 160},
		{Deck: DeckSmallDeal, Kind: DealRealEstate, Title: "House For Sale", Text: "3Br/2Ba house, estate sale.", PropertyType: "house", DownPayment: 6000, Cost: 55000, CashFlow: 200},
		{Deck: DeckSmallDeal, Kind: DealBusiness, Title: "Start a Company Part Time", Text: "Mail-order business run from home.", DownPayment: 3000, Cost: 3000, CashFlow: 250},
		{Deck: DeckSmallDeal, Kind: DealBusiness, Title: "Widget Vending Route", Text: "Four machines in local malls.", DownPayment: 2000, Cost: 2000, CashFlow: 150},
	}
}

// BigDeals returns the big-deal catalogue: multi-unit properties and
// established businesses.
func BigDeals() []Card {
	return []Card{
		{Deck: DeckBigDeal, Kind: DealRealEstate, Title: "Duplex For Sale", Text: "Solid duplex in a commuter suburb.", PropertyType: "duplex", DownPayment: 12000, Cost: 60000, CashFlow: 400},
		{Deck: DeckBigDeal, Kind: DealRealEstate, Title: "4-plex For Sale", Text: "Fully rented 4-plex.", PropertyType: "4-plex", DownPayment: 16000, Cost: 80000, CashFlow: 600},
		{Deck: DeckBigDeal, Kind: DealRealEstate, Title: "8-unit Apartment", Text: "8 units, manager in place.", PropertyType: "apartment", DownPayment: 40000, Cost: 200000, CashFlow: 1700},
		{Deck: DeckBigDeal, Kind: DealRealEstate, Title: "12-unit Apartment", Text: "12 units near the university.", PropertyType: "apartment", DownPayment: 60000, Cost: 300000, CashFlow: 2400},
		{Deck: DeckBigDeal, Kind: DealBusiness, Title: "Car Wash For Sale", Text: "Automated car wash with land.", DownPayment: 25000, Cost: 125000, CashFlow: 1500},
		{Deck: DeckBigDeal, Kind: DealBusiness, Title: "Limited Partnership", Text: "Franchise restaurant partnership.", DownPayment: 30000, Cost: 120000, CashFlow: 1800},
		{Deck: DeckBigDeal, Kind: DealBusiness, Title: "Bed & Breakfast", Text: "Runs itself with hired manager.", DownPayment: 20000, Cost: 100000, CashFlow: 1000},
	}
}

// Markets returns the market catalogue.
func Markets() []Card {
	return []Card{
		{Deck: DeckMarket, Effect: MarketStockPrice, Title: "OK4U Hits 40", Text: "Holders may sell OK4U at 40 per share.", Symbol: "OK4U", NewPrice: 40},
		{Deck: DeckMarket, Effect: MarketStockPrice, Title: "MYT4U Hits 50", Text: "Holders may sell MYT4U at 50 per share.", Symbol: "MYT4U", NewPrice: 50},
		{Deck: DeckMarket, Effect: MarketStockPrice, Title: "ON2U Slides to 5", Text: "Holders may sell ON2U at 5 per share.", Symbol: "ON2U", NewPrice: 5},
		{Deck: DeckMarket, Effect: MarketPropertyOffer, Title: "House Buyer", Text: "Buyer offers 65,000 for any 3Br/2Ba house.", PropertyType: "house", FlatOffer: 65000},
		{Deck: DeckMarket, Effect: MarketPropertyOffer, Title: "Condo Buyer", Text: "Buyer pays original cost plus 15,000 for any condo.", PropertyType: "condo", FlatOffer: 55000},
		{Deck: DeckMarket, Effect: MarketPropertyOffer, Title: "Apartment Investor", Text: "Investor pays 1.4x original cost for apartment houses.", PropertyType: "apartment", Multiplier: 140},
		{Deck: DeckMarket, Effect: MarketPropertyOffer, Title: "Duplex Buyer", Text: "Buyer pays 1.2x original cost for any duplex.", PropertyType: "duplex", Multiplier: 120},
		{Deck: DeckMarket, Effect: MarketDamage, Title: "Tenant Damages Unit", Text: "Every house owner pays 1,000 in repairs.", PropertyType: "house", Amount: 1000},
		{Deck: DeckMarket, Effect: MarketDamage, Title: "Roof Leaks", Text: "Every condo owner pays 500 in repairs.", PropertyType: "condo", Amount: 500},
		{Deck: DeckMarket, Effect: MarketExpenseAll, Title: "Interest Rates Rise", Text: "Every player pays 700.", Amount: 700},
	}
}

// Doodads returns the doodad catalogue of forced expenses.
func Doodads() []Card {
	return []Card{
		{Deck: DeckDoodad, Title: "New Flat-Screen TV", Amount: 800},
		{Deck: DeckDoodad, Title: "Boat Repairs", Amount: 1100},
		{Deck: DeckDoodad, Title: "Root Canal", Amount: 600},
		{Deck: DeckDoodad, Title: "Family Vacation", Amount: 3000},
		{Deck: DeckDoodad, Title: "Coffee With Friends", Amount: 20},
		{Deck: DeckDoodad, Title: "New Golf Clubs", Amount: 900},
		{Deck: DeckDoodad, Title: "Car Breakdown", Amount: 1400},
		{Deck: DeckDoodad, Title: "Shopping Spree", Text: "Pay 10% of your total income.", PercentOfIncome: 10},
		{Deck: DeckDoodad, Title: "Holiday Gifts", Text: "Pay 5% of your total income.", PercentOfIncome: 5},
	}
}
