// Package models - Role thuộc domain admin.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role vai trò trong hệ thống.
// GrantedPermissionNames chứa tên các quyền được cấp cho vai trò (tham chiếu theo name trong danh mục permission).
// OrganisationUnitIDs chứa các đơn vị tổ chức mà vai trò được gắn vào.
type Role struct {
	_Relationships         struct{}            `relationship:"collection:users,field:roleIds,message:Không thể xóa role vì có %d user đang sử dụng role này. Vui lòng gỡ role khỏi các user trước."`
	ID                     primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Name                   string              `json:"name" bson:"name" validate:"required" index:"unique"`
	DisplayName            string              `json:"displayName" bson:"displayName"`
	Description            string              `json:"description,omitempty" bson:"description,omitempty"`
	Code                   string              `json:"code,omitempty" bson:"code,omitempty"`
	IsDefault              bool                `json:"isDefault" bson:"isDefault"`
	IsStatic               bool                `json:"isStatic" bson:"isStatic"`
	IsActive               bool                `json:"isActive" bson:"isActive" default:"true"`
	GrantedPermissionNames []string            `json:"grantedPermissionNames" bson:"grantedPermissionNames"`
	OrganisationUnitIDs    []primitive.ObjectID `json:"organisationUnitIds" bson:"organisationUnitIds"`
	IsSystem               bool                `json:"-" bson:"isSystem" index:"single:1"`
	CreationTime           int64               `json:"creationTime" bson:"creationTime"`
	CreatedAt              int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt              int64               `json:"updatedAt" bson:"updatedAt"`
}

// AdministratorRoleName là role hệ thống không được phép xóa.
const AdministratorRoleName = "Administrator"
