package reddit

type Listing struct {
	Data ListingData `json:"data"`
}

type ListingData struct {
	Children []Child `json:"children"`
}

type Child struct {
	Data Post `json:"data"`
}

type Post struct {
	Title    string `json:"title"`
	SelfText string `json:"selftext"`

	Subreddit string `json:"subreddit"`
	Permalink string `json:"permalink"`

	Score int `json:"score"`
}
