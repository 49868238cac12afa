// Package models - các model thuộc domain crm.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact thông tin liên hệ của khách hàng.
type Contact struct {
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}

// Address địa chỉ của khách hàng. Label phân loại (home, office, other).
type Address struct {
	Label        string `json:"label,omitempty" bson:"label,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty" bson:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty" bson:"addressLine2,omitempty"`
	City         string `json:"city,omitempty" bson:"city,omitempty"`
	State        string `json:"state,omitempty" bson:"state,omitempty"`
	Postcode     string `json:"postcode,omitempty" bson:"postcode,omitempty"`
	Country      string `json:"country,omitempty" bson:"country,omitempty"`
	IsDefault    bool   `json:"isDefault" bson:"isDefault"`
}

// Customer khách hàng của phòng tranh.
type Customer struct {
	_Relationships  struct{}           `relationship:"collection:orders,field:customerId,message:Không thể xóa khách hàng vì có %d đơn hàng đang tham chiếu. Vui lòng xử lý các đơn hàng trước."`
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Contact         Contact            `json:"contact" bson:"contact"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Addresses       []Address          `json:"addresses" bson:"addresses"`
	ShippingAddress *Address           `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	BillingAddress  *Address           `json:"billingAddress,omitempty" bson:"billingAddress,omitempty"`
	IsActive        bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
