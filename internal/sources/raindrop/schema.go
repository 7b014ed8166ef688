package raindrop

// Raindrop is a bookmark as returned by the Raindrop REST API.
type Raindrop struct {
	ID           int64         `json:"_id"`
	Link         string        `json:"link"`
	Title        string        `json:"title"`
	Excerpt      string        `json:"excerpt"`
	Note         string        `json:"note"`
	Type         string        `json:"type"`
	Cover        string        `json:"cover"`
	Tags         []string      `json:"tags"`
	Important    bool          `json:"important"`
	Removed      bool          `json:"removed"`
	Created      string        `json:"created"`
	LastUpdate   string        `json:"lastUpdate"`
	Domain       string        `json:"domain"`
	CollectionID int64         `json:"collectionId"`
	Collection   CollectionRef `json:"collection"`
}

// CollectionRef is the embedded reference to the parent collection.
type CollectionRef struct {
	Ref string `json:"$ref"`
	ID  int64  `json:"$id"`
	OID int64  `json:"oid"`
}

// Collection is a bookmark collection as returned by the API.
type Collection struct {
	ID          int64  `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Public      bool   `json:"public"`
	Count       int    `json:"count"`
	Sort        int    `json:"sort"`
	LastAction  string `json:"lastAction"`
	Created     string `json:"created"`
	LastUpdate  string `json:"lastUpdate"`
}

// RaindropsResponse is one page of GET /raindrops/{collectionId}.
type RaindropsResponse struct {
	Items []Raindrop `json:"items"`
	Count int        `json:"count"`
}

// CollectionsResponse is the body of GET /collections.
type CollectionsResponse struct {
	Items  []Collection `json:"items"`
	Result bool         `json:"result"`
}
