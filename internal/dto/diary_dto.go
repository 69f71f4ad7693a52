package dto

type CreateDiaryRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    int64  `json:"date" validate:"required"`
}

type UpdateDiaryRequest struct {
	Id      string
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    int64  `json:"date"`
}

type DiaryResponse struct {
	Id        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Mood      string `json:"mood"`
	MoodColor string `json:"mood_color"`
	Date      int64  `json:"date"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
