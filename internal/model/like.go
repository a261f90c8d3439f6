package model

import "time"

// Like 点赞去重由 (image_id, user_id, ip_address) 唯一索引保证，
// 并发插入竞争交给数据库约束裁决
type Like struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	ImageID   string    `json:"image_id" gorm:"not null;uniqueIndex:idx_like_dedupe;size:64"`
	Image     Image     `json:"-" gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;"`
	UserID    *uint     `json:"user_id" gorm:"uniqueIndex:idx_like_dedupe"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:SET NULL;"`
	IPAddress string    `json:"ip_address" gorm:"uniqueIndex:idx_like_dedupe;size:45"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
