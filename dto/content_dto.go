package dto

type CreateReviewDTO struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	UserName  string `json:"userName"`
	UserPhoto string `json:"userPhoto"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Message   string `json:"message" binding:"required"`
}

type CreateBlogDTO struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content" binding:"required"`
	ImageURL    string `json:"imageUrl"`
}

type CreateSubscriptionDTO struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

type CreateAgentApplicationDTO struct {
	UserEmail  string `json:"userEmail" binding:"required,email"`
	UserName   string `json:"userName"`
	Experience string `json:"experience"`
	Specialty  string `json:"specialty"`
}
