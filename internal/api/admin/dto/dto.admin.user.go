// Package admindto - các DTO thuộc domain admin.
package admindto

// UserCreateInput dùng cho tạo người dùng.
type UserCreateInput struct {
	UserName         string   `json:"userName" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Surname          string   `json:"surname,omitempty"`
	EmailAddress     string   `json:"emailAddress,omitempty" validate:"omitempty,email"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	ProfilePictureID string   `json:"profilePictureId,omitempty"`
	RoleIDs          []string `json:"roleIds,omitempty" transform:"str_objectid_array,optional"`
}

// UserUpdateInput dùng cho cập nhật người dùng.
type UserUpdateInput struct {
	UserName         string   `json:"userName,omitempty"`
	Name             string   `json:"name,omitempty"`
	Surname          string   `json:"surname,omitempty"`
	EmailAddress     string   `json:"emailAddress,omitempty" validate:"omitempty,email"`
	PhoneNumber      string   `json:"phoneNumber,omitempty"`
	ProfilePictureID string   `json:"profilePictureId,omitempty"`
	RoleIDs          []string `json:"roleIds,omitempty" transform:"str_objectid_array,optional"`
}
