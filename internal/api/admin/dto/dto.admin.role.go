package admindto

// RoleCreateInput dùng cho tạo vai trò.
// Name có thể bỏ trống, khi đó DisplayName được dùng làm Name.
type RoleCreateInput struct {
	Name                   string   `json:"name,omitempty"`
	DisplayName            string   `json:"displayName" validate:"required"`
	Description            string   `json:"description,omitempty"`
	Code                   string   `json:"code,omitempty"`
	IsDefault              bool     `json:"isDefault,omitempty"`
	GrantedPermissionNames []string `json:"grantedPermissionNames,omitempty"`
	OrganisationUnitIDs    []string `json:"organisationUnitIds,omitempty" transform:"str_objectid_array,optional"`
}

// RoleUpdateInput dùng cho cập nhật vai trò.
type RoleUpdateInput struct {
	Name                   string   `json:"name,omitempty"`
	DisplayName            string   `json:"displayName,omitempty"`
	Description            string   `json:"description,omitempty"`
	Code                   string   `json:"code,omitempty"`
	GrantedPermissionNames []string `json:"grantedPermissionNames,omitempty"`
	OrganisationUnitIDs    []string `json:"organisationUnitIds,omitempty" transform:"str_objectid_array,optional"`
}
