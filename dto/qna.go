package dto

import "github.com/jeongjingoo/tech/internal/models"

type PostRequest struct {
	ID      string `json:"_id"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Writer  string `json:"writer" validate:"required"`
}

func (r PostRequest) ToModel() models.Post {
	return models.Post{Title: r.Title, Content: r.Content, Writer: r.Writer}
}

type ReplyRequest struct {
	QnaID   string `json:"qnaId" validate:"required"`
	Content string `json:"content" validate:"required"`
	Writer  string `json:"writer" validate:"required"`
}
