package entities

// Item is an element of Order.Items.
type Item struct {
	ChrtID      uint32 `json:"chrt_id"`
	TrackNumber string `json:"track_number"`
	Price       uint32 `json:"price"`
	RID         string `json:"rid"`
	Name        string `json:"name"`
	Sale        uint32 `json:"sale"`
	Size        string `json:"size"`
	TotalPrice  uint32 `json:"total_price"`
	NmID        uint32 `json:"nm_id"`
	Brand       string `json:"brand"`
	Status      uint32 `json:"status"`
}
