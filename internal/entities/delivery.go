package entities

// Delivery is embedded in Order.
type Delivery struct {
	Name    string `json:"name" validate:"min=1"`
	Phone   string `json:"phone"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email" validate:"email"`
}
