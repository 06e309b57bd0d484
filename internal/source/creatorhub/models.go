package creatorhub

// apiResponse is the paginated content listing returned by the
// CreatorHub API.
type apiResponse struct {
	Items      []apiItem `json:"items"`
	NextCursor string    `json:"nextCursor"`
}

type apiItem struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	MediaURL     string   `json:"mediaUrl"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	Duration     int      `json:"duration"`
	PublishedAt  string   `json:"publishedAt"`
	LastModified int64    `json:"lastModified"` // epoch millis
	Stats        apiStats `json:"stats"`
}

type apiStats struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// metaResponse is the channel metadata endpoint payload.
type metaResponse struct {
	ID         string `json:"id"`
	TotalItems int64  `json:"totalItems"`
}
