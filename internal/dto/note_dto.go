package dto

type CreateNoteRequest struct {
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	BackgroundColor string `json:"background_color"`
}

type UpdateNoteRequest struct {
	Id              string
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	BackgroundColor string `json:"background_color"`
}

type NoteResponse struct {
	Id              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	Category        string `json:"category"`
	BackgroundColor string `json:"background_color"`
	CreatedAt       int64  `json:"created_at"`
	UpdatedAt       int64  `json:"updated_at"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
