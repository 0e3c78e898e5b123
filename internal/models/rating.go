package models

// Rating is a single score left for a product. Ratings are append-only.
type Rating struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
}
