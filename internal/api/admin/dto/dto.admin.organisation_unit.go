package admindto

// OrganisationUnitCreateInput dùng cho tạo đơn vị tổ chức.
type OrganisationUnitCreateInput struct {
	ParentID    string `json:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Code        string `json:"code,omitempty"`
	DisplayName string `json:"displayName" validate:"required"`
}

// OrganisationUnitUpdateInput dùng cho cập nhật đơn vị tổ chức.
type OrganisationUnitUpdateInput struct {
	ParentID    string `json:"parentId,omitempty" transform:"str_objectid_ptr,optional"`
	Code        string `json:"code,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// OrganisationUnitSearchInput đầu vào tìm kiếm đơn vị tổ chức có phân trang.
// Sort nhận "newest" hoặc "oldest", mặc định newest.
type OrganisationUnitSearchInput struct {
	SearchText string `json:"searchText,omitempty"`
	Page       int64  `json:"page,omitempty"`
	PageSize   int64  `json:"pageSize,omitempty"`
	Sort       string `json:"sort,omitempty" validate:"omitempty,oneof=newest oldest"`
}

// OrganisationUnitOut kết quả trả về kèm số role đang gắn vào đơn vị.
type OrganisationUnitOut struct {
	ID           string `json:"id"`
	ParentID     string `json:"parentId,omitempty"`
	Code         string `json:"code,omitempty"`
	DisplayName  string `json:"displayName"`
	MemberCount  int64  `json:"memberCount"`
	RoleCount    int64  `json:"roleCount"`
	CreationTime int64  `json:"creationTime"`
}

// AddRolesToOrganisationUnitInput gắn một danh sách role vào đơn vị tổ chức.
type AddRolesToOrganisationUnitInput struct {
	RoleIDs            []string `json:"roleIds" validate:"required,min=1"`
	OrganisationUnitID string   `json:"organizationUnitId" validate:"required"`
}

// RemoveRoleFromOrganisationUnitInput gỡ một role khỏi đơn vị tổ chức.
type RemoveRoleFromOrganisationUnitInput struct {
	RoleID             string `json:"roleId" validate:"required"`
	OrganisationUnitID string `json:"organizationUnitId" validate:"required"`
}

// OrganisationUnitRoleSearchInput tìm role theo trạng thái đã gắn/chưa gắn vào đơn vị.
// IsAssigned: true = chỉ role đã gắn, false = chỉ role chưa gắn, nil = tất cả.
type OrganisationUnitRoleSearchInput struct {
	SearchText string `json:"searchText,omitempty"`
	IsAssigned *bool  `json:"isAssigned,omitempty"`
	Page       int64  `json:"page,omitempty"`
	PageSize   int64  `json:"pageSize,omitempty"`
}
