package domain

// Item is a single portfolio entry inside one of the four categories.
type Item struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
	Desc  string `json:"desc" bson:"desc"`
	Image string `json:"image" bson:"image"`
}

// Data is the full portfolio document: four named categories, each an
// ordered list. Order is display order and must be preserved exactly
// as last written.
type Data struct {
	Environments []Item `json:"environments" bson:"environments"`
	Structures   []Item `json:"structures" bson:"structures"`
	Interiors    []Item `json:"interiors" bson:"interiors"`
	Models       []Item `json:"models" bson:"models"`
}

// Categories lists the valid category names in display order.
func Categories() []string {
	return []string{"environments", "structures", "interiors", "models"}
}

// Defaults returns an empty portfolio with all four categories present.
func Defaults() Data {
	return Data{
		Environments: []Item{},
		Structures:   []Item{},
		Interiors:    []Item{},
		Models:       []Item{},
	}
}

// Category returns the items of the named category, or false for an
// unknown name.
func (d *Data) Category(name string) ([]Item, bool) {
	switch name {
	case "environments":
		return d.Environments, true
	case "structures":
		return d.Structures, true
	case "interiors":
		return d.Interiors, true
	case "models":
		return d.Models, true
	}
	return nil, false
}

// SetCategory replaces the named category wholesale. Returns false for
// an unknown name.
func (d *Data) SetCategory(name string, items []Item) bool {
	switch name {
	case "environments":
		d.Environments = items
	case "structures":
		d.Structures = items
	case "interiors":
		d.Interiors = items
	case "models":
		d.Models = items
	default:
		return false
	}
	return true
}

// Normalize replaces nil category slices with empty ones so the
// document always serializes with all four arrays present.
func (d *Data) Normalize() {
	if d.Environments == nil {
		d.Environments = []Item{}
	}
	if d.Structures == nil {
		d.Structures = []Item{}
	}
	if d.Interiors == nil {
		d.Interiors = []Item{}
	}
	if d.Models == nil {
		d.Models = []Item{}
	}
}
