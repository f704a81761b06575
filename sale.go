package immo

// saleOutcome prices a hypothetical sale: fees are a percentage of the sale
// price, and the seller's net proceeds (the "net vendeur") are the price
// minus fees minus the outstanding loan balance.
func saleOutcome(price, remaining Money, feeRate Percent) (fees, netProceeds Money) {
	fees = feeRate.Of(price)
	return fees, price.Sub(fees).Sub(remaining)
}
