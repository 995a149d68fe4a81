package dto

// CreateRatingDTO for creating or updating a rating
type CreateRatingDTO struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

// RatingAggregateResponse is returned after a rating upsert: the caller's own
// value plus the freshly recomputed store aggregate.
type RatingAggregateResponse struct {
	StoreID      uint    `json:"storeId"`
	UserRating   int     `json:"userRating"`
	AvgRating    float64 `json:"avgRating"`
	RatingsCount int64   `json:"ratingsCount"`
}
