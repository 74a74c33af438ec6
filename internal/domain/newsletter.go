package domain

// Announcement is what the newsletter sends for a new post
type Announcement struct {
	Title   string `json:"title" validate:"required"`
	Excerpt string `json:"excerpt" validate:"required"`
	URL     string `json:"url" validate:"required"`
}

// DispatchResult is the outcome of one email
type DispatchResult struct {
	Email   string `json:"email"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// NewsletterReport summarizes a send
type NewsletterReport struct {
	Message string            `json:"message"`
	Sent    int               `json:"sent"`
	Total   int               `json:"total"`
	Results []*DispatchResult `json:"results"`
}
