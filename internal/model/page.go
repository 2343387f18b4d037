package model

// PageInfo carries the pagination block of an API response.
// Only the first page is ever requested; the block is kept for diagnostics.
type PageInfo struct {
	Count int    `json:"count"`
	Pages int    `json:"pages"`
	Next  string `json:"next"`
	Prev  string `json:"prev"`
}

// CharacterPage is the response envelope of the character endpoint.
// Results is nil when the field is absent from the body.
type CharacterPage struct {
	Info    PageInfo    `json:"info"`
	Results []Character `json:"results"`
}
