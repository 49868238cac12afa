package admindto

// PermissionCreateInput dùng cho tạo quyền (chỉ dùng nội bộ khi seed danh mục).
type PermissionCreateInput struct {
	Name               string `json:"name" validate:"required"`
	DisplayName        string `json:"displayName,omitempty"`
	Description        string `json:"description,omitempty"`
	ParentName         string `json:"parentName,omitempty"`
	IsGrantedByDefault bool   `json:"isGrantedByDefault,omitempty"`
}

// PermissionUpdateInput dùng cho cập nhật quyền.
type PermissionUpdateInput struct {
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
}
