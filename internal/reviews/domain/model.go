package domain

// Review is a client testimonial. Rating is persisted exactly as
// given; the admin UI clamps it to 1-5 but the API does not.
type Review struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Role        string `json:"role" bson:"role"`
	Content     string `json:"content" bson:"content"`
	AvatarColor string `json:"avatarColor" bson:"avatarColor"`
	Rating      int    `json:"rating" bson:"rating"`
	Price       string `json:"price" bson:"price"`
	Project     string `json:"project" bson:"project"`
}
