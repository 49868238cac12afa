// Package models - Permission thuộc domain admin.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission một quyền trong danh mục quyền cố định của hệ thống.
// ParentName tham chiếu tới quyền cha theo name, tạo thành cây quyền.
type Permission struct {
	ID                 primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name               string             `json:"name" bson:"name" validate:"required" index:"unique"`
	DisplayName        string             `json:"displayName" bson:"displayName"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	ParentName         string             `json:"parentName,omitempty" bson:"parentName,omitempty"`
	IsGrantedByDefault bool               `json:"isGrantedByDefault" bson:"isGrantedByDefault"`
	IsSystem           bool               `json:"-" bson:"isSystem" index:"single:1"`
	CreatedAt          int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt          int64              `json:"updatedAt" bson:"updatedAt"`
}
