// Package models - OrganisationUnit thuộc domain admin.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganisationUnit đơn vị tổ chức dùng để gắn nhãn cho các vai trò.
// ParentID trỏ tới đơn vị cha (rỗng nếu là gốc).
// MemberCount được lưu trực tiếp, RoleCount được tính động khi truy vấn.
type OrganisationUnit struct {
	_Relationships struct{}            `relationship:"collection:roles,field:organisationUnitIds,message:Không thể xóa đơn vị tổ chức vì có %d role đang được gắn vào đơn vị này. Vui lòng gỡ các role trước."`
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	ParentID       *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Code           string              `json:"code,omitempty" bson:"code,omitempty" index:"unique,sparse"`
	DisplayName    string              `json:"displayName" bson:"displayName" validate:"required"`
	MemberCount    int64               `json:"memberCount" bson:"memberCount"`
	IsSystem       bool                `json:"-" bson:"isSystem" index:"single:1"`
	CreationTime   int64               `json:"creationTime" bson:"creationTime"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}
