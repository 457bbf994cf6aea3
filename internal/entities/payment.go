package entities

// Payment is embedded in Order. PaymentDT is epoch seconds.
type Payment struct {
	Transaction  string `json:"transaction"`
	RequestID    string `json:"request_id"`
	Currency     string `json:"currency"`
	Provider     string `json:"provider"`
	Amount       uint32 `json:"amount"`
	PaymentDT    uint32 `json:"payment_dt"`
	Bank         string `json:"bank"`
	DeliveryCost uint32 `json:"delivery_cost"`
	GoodsTotal   uint32 `json:"goods_total"`
	CustomFee    uint32 `json:"custom_fee"`
}
