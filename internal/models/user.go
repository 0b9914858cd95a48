package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModulePermission is read/write access to one module.
type ModulePermission struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
}

// PermissionMap maps module id -> access.
type PermissionMap map[string]ModulePermission

// User is a staff account. Permissions is the moduleId -> {read, write}
// mapping handed to the session; AssignedLGUID, when set, pins the user to a
// single tenant and overrides manual tenant selection.
type User struct {
	UserID        uuid.UUID                         `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Fullname      string                            `gorm:"column:fullname;not null" json:"fullname"`
	Email         string                            `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PasswordHash  string                            `gorm:"column:password_hash;not null" json:"-"`
	Role          string                            `gorm:"column:role;not null;default:Pending" json:"role"`
	Permissions   datatypes.JSONType[PermissionMap] `gorm:"column:permissions" json:"permissions"`
	AssignedLGUID *uuid.UUID                        `gorm:"column:assigned_lgu_id;type:uuid" json:"assigned_lgu_id"`
	CreatedAt     time.Time                         `json:"createdAt"`
	UpdatedAt     time.Time                         `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt                    `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "Users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
