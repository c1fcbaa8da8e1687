package dto

import "github.com/jeongjingoo/tech/internal/models"

type EventRequest struct {
	ID          string `json:"_id"`
	Title       string `json:"title" validate:"required"`
	Start       string `json:"start" validate:"required"`
	End         string `json:"end"`
	Description string `json:"description"`
}

func (r EventRequest) ToModel() models.Event {
	return models.Event{
		Title:       r.Title,
		Start:       r.Start,
		End:         r.End,
		Description: r.Description,
	}
}
