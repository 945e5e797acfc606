package entities

// PaymentMethod is one of the static payment options shown at checkout.
// Payment itself happens outside this system.
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// RestaurantInfo identifies the restaurant and its hand-off contact.
type RestaurantInfo struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	LogoURL   string `json:"logo_url,omitempty"`
	Address   string `json:"address,omitempty"`
	WhatsApp  string `json:"whatsapp"`
	IfoodLink string `json:"ifood_link,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}
