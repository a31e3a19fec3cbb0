package models

import "time"

// Item is one placed and clipped image inside a collage. Slice order is the
// composition order and is persisted as submitted.
type Item struct {
	Width       float64     `json:"width" bson:"width"`
	Height      float64     `json:"height" bson:"height"`
	X           float64     `json:"x" bson:"x"`
	Y           float64     `json:"y" bson:"y"`
	Clip        [][]float64 `json:"clip" bson:"clip"`
	Angle       float64     `json:"angle" bson:"angle"`
	ChildWidth  float64     `json:"childWidth" bson:"childWidth"`
	ChildHeight float64     `json:"childHeight" bson:"childHeight"`
	ChildX      float64     `json:"childX" bson:"childX"`
	ChildY      float64     `json:"childY" bson:"childY"`
	URL         string      `json:"url" bson:"url"`
}

type Collage struct {
	ID        string    `json:"id" bson:"-"`
	Title     string    `json:"title" bson:"title"`
	Author    string    `json:"author" bson:"author"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Thumbnail *string   `json:"thumbnail" bson:"thumbnail"`
	Items     []Item    `json:"items" bson:"items"`
}

// Summary is the list projection of a Collage.
type Summary struct {
	ID        string  `json:"id"`
	Thumbnail *string `json:"thumbnail"`
	Author    string  `json:"author"`
	Title     string  `json:"title"`
}
