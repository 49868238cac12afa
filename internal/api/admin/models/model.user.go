// Package models - các model thuộc domain admin (user, role, permission, đơn vị tổ chức).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng nội bộ của hệ thống.
// RoleIDs chứa danh sách vai trò được gán trực tiếp cho người dùng.
type User struct {
	ID               primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	UserName         string               `json:"userName" bson:"userName" validate:"required" index:"unique"`
	Name             string               `json:"name" bson:"name" validate:"required"`
	Surname          string               `json:"surname" bson:"surname"`
	EmailAddress     string               `json:"emailAddress,omitempty" bson:"emailAddress,omitempty" index:"unique,sparse"`
	IsEmailConfirmed bool                 `json:"isEmailConfirmed" bson:"isEmailConfirmed"`
	PhoneNumber      string               `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
	ProfilePictureID string               `json:"profilePictureId,omitempty" bson:"profilePictureId,omitempty"`
	IsActive         bool                 `json:"isActive" bson:"isActive" default:"true"`
	RoleIDs          []primitive.ObjectID `json:"roleIds" bson:"roleIds"`
	IsSystem         bool                 `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt        int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64                `json:"updatedAt" bson:"updatedAt"`
}
