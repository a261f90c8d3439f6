package model

import "time"

// Comment 评论既支持登录用户，也支持匿名访客（通过 author_name/author_email 标识）。
// 用户被删除后 user_id 置空，评论本身保留
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	ImageID     string    `json:"image_id" gorm:"not null;index;size:64"`
	Image       Image     `json:"-" gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;"`
	UserID      *uint     `json:"user_id" gorm:"index"`
	User        *User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL;"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentWithAuthor 评论列表的读模型，登录用户评论带出用户名与邮箱
type CommentWithAuthor struct {
	Comment
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// CommentWithImage 用户个人评论列表的读模型，带出所评图片的摘要
type CommentWithImage struct {
	Comment
	ImageTitle string `json:"image_title"`
	ImageThumb string `json:"image_thumb"`
}
