package dto

import "github.com/dimitrije/collage-api/internal/models"

type SaveCollageRequest struct {
	Title  *string    `json:"title"`
	Author *string    `json:"author"`
	Items  []SaveItem `json:"items" validate:"required,min=1,dive"`
}

// SaveItem uses pointers so that a missing number can be told apart from zero.
type SaveItem struct {
	Width       *float64     `json:"width" validate:"required"`
	Height      *float64     `json:"height" validate:"required"`
	X           *float64     `json:"x" validate:"required"`
	Y           *float64     `json:"y" validate:"required"`
	Clip        [][]*float64 `json:"clip" validate:"required,dive,len=2,dive,required"`
	Angle       *float64     `json:"angle" validate:"required"`
	ChildWidth  *float64     `json:"childWidth" validate:"required"`
	ChildHeight *float64     `json:"childHeight" validate:"required"`
	ChildX      *float64     `json:"childX" validate:"required"`
	ChildY      *float64     `json:"childY" validate:"required"`
	URL         *string      `json:"url" validate:"required,min=1"`
	State       *string      `json:"state,omitempty"`
}

type SaveResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
	ID     string `json:"id,omitempty"`
}

type ListResponse struct {
	Count   int64            `json:"count"`
	HasPrev bool             `json:"hasPrev"`
	HasNext bool             `json:"hasNext"`
	Posts   []models.Summary `json:"posts"`
}

type CheckResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type ValidationErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
}
