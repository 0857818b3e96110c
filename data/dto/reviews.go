package dto

// CreateReviewRequestBody defines a request body for AddReview service.
type CreateReviewRequestBody struct {
	Rating int8   `json:"rating"`
	Review string `json:"review"`
}

// UpdateReviewRequestBody defines a request body for UpdateReview service.
// The fields are pointers so that partial updates can be told apart from
// explicit zero values.
type UpdateReviewRequestBody struct {
	Rating *int8   `json:"rating"`
	Review *string `json:"review"`
}
