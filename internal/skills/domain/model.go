package domain

// Skill is a skill-card shown on the public site: a titled group with
// an icon tag and an ordered list of individual skills.
type Skill struct {
	ID     string   `json:"id" bson:"id"`
	Title  string   `json:"title" bson:"title"`
	Desc   string   `json:"desc" bson:"desc"`
	Icon   string   `json:"icon" bson:"icon"`
	Skills []string `json:"skills" bson:"skills"`
}
