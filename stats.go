package mojang

// MetricKey identifies one of the sales metrics tracked by the statistics
// endpoint.
type MetricKey string

const (
	MinecraftItemsSold            MetricKey = "item_sold_minecraft"
	MinecraftPrepaidCardsRedeemed MetricKey = "prepaid_card_redeemed_minecraft"
	CobaltItemsSold               MetricKey = "item_sold_cobalt"
	CobaltPrepaidCardsRedeemed    MetricKey = "prepaid_card_redeemed_cobalt"
	ScrollsItemsSold              MetricKey = "item_sold_scrolls"
	DungeonsItemsSold             MetricKey = "item_sold_dungeons"
)

// MinecraftMetrics is the combined total of Minecraft items sold and prepaid
// cards redeemed.
func MinecraftMetrics() []MetricKey {
	return []MetricKey{MinecraftItemsSold, MinecraftPrepaidCardsRedeemed}
}

// CobaltMetrics is the combined total of Cobalt items sold and prepaid cards
// redeemed.
func CobaltMetrics() []MetricKey {
	return []MetricKey{CobaltItemsSold, CobaltPrepaidCardsRedeemed}
}

func ScrollsMetrics() []MetricKey {
	return []MetricKey{ScrollsItemsSold}
}

func DungeonsMetrics() []MetricKey {
	return []MetricKey{DungeonsItemsSold}
}

func AllMetrics() []MetricKey {
	return []MetricKey{
		MinecraftItemsSold,
		MinecraftPrepaidCardsRedeemed,
		CobaltItemsSold,
		CobaltPrepaidCardsRedeemed,
		ScrollsItemsSold,
		DungeonsItemsSold,
	}
}

type SalesStats struct {
	Total                  uint64  `json:"total"`
	Last24h                uint64  `json:"last24h"`
	SaleVelocityPerSeconds float64 `json:"saleVelocityPerSeconds"`
}
