package entity

type User struct {
	Id           string
	Email        string
	DisplayName  string
	AvatarName   string
	PasswordHash string
	CreatedAt    int64
	UpdatedAt    int64
}
