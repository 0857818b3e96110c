package dto

// CreateBookRequestBody defines a request body for CreateBook service.
type CreateBookRequestBody struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}
