package dto

// Link is a HAL link object.
type Link struct {
	Href string `json:"href"`
}

// Links holds the links of a resource. Only self is used.
type Links struct {
	Self Link `json:"self"`
}

// SelfLink builds the _links object pointing at href.
func SelfLink(href string) *Links {
	return &Links{Self: Link{Href: href}}
}

// Collection is a HAL collection: the items under _embedded.<name> and a
// self link.
type Collection struct {
	Embedded map[string]any `json:"_embedded"`
	Links    Links          `json:"_links"`
}

// NewCollection wraps items under name.
func NewCollection(name string, items any, self string) Collection {
	return Collection{
		Embedded: map[string]any{name: items},
		Links:    Links{Self: Link{Href: self}},
	}
}
