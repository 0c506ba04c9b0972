package models

type WebResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// LinkDto is a hypermedia link attached to a resource
type LinkDto struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// LinkedCollection wraps a shaped collection with its own links
type LinkedCollection[T any] struct {
	Value []T       `json:"value"`
	Links []LinkDto `json:"links"`
}
