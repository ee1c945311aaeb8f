package domain

type User struct {
	ID           uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"size:150;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	IsAdmin      bool   `json:"is_admin" gorm:"not null;default:false"`
}

func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleUser
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)
