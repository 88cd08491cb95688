package models

// MenuItem represents one dish on a restaurant's menu.
type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// Restaurant represents one restaurant and its menu. The catalog is
// provisioned out-of-band and read-only at runtime.
type Restaurant struct {
	ID    int        `json:"restaurant_id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
