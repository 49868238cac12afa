package adminsvc

import (
	"context"
	"fmt"

	admindto "artshow_crm/internal/api/admin/dto"
	models "artshow_crm/internal/api/admin/models"
	basemodels "artshow_crm/internal/api/base/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"
	"artshow_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrganisationUnitService quản lý đơn vị tổ chức và việc gắn role vào đơn vị.
type OrganisationUnitService struct {
	*basesvc.BaseServiceMongoImpl[models.OrganisationUnit]
	roleService *basesvc.BaseServiceMongoImpl[models.Role]
}

// NewOrganisationUnitService tạo mới OrganisationUnitService
func NewOrganisationUnitService() (*OrganisationUnitService, error) {
	orgUnitCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.OrganisationUnits)
	if !exist {
		return nil, fmt.Errorf("failed to get organisation_units collection: %v", common.ErrNotFound)
	}
	roleCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Roles)
	if !exist {
		return nil, fmt.Errorf("failed to get roles collection: %v", common.ErrNotFound)
	}

	return &OrganisationUnitService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.OrganisationUnit](orgUnitCollection),
		roleService:          basesvc.NewBaseServiceMongo[models.Role](roleCollection),
	}, nil
}

// SearchWithPagination tìm đơn vị tổ chức theo searchText (displayName, code),
// sort newest/oldest, kèm roleCount tính từ collection roles.
func (s *OrganisationUnitService) SearchWithPagination(ctx context.Context, input *admindto.OrganisationUnitSearchInput) (*basemodels.PaginateResult[admindto.OrganisationUnitOut], error) {
	filter := bson.M{}
	if input.SearchText != "" {
		regex := bson.M{"$regex": input.SearchText, "$options": "i"}
		filter["$or"] = []bson.M{
			{"displayName": regex},
			{"code": regex},
		}
	}

	sortOrder := -1 // newest
	if input.Sort == "oldest" {
		sortOrder = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: sortOrder}})

	result, err := s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, input.Page, input.PageSize, opts)
	if err != nil {
		return nil, err
	}

	items := make([]admindto.OrganisationUnitOut, 0, len(result.Items))
	for _, unit := range result.Items {
		roleCount, err := basesvc.GetRelationshipCount(ctx, unit.ID, global.MongoDB_ColNames.Roles, "organisationUnitIds")
		if err != nil {
			return nil, err
		}
		out := admindto.OrganisationUnitOut{
			ID:           utility.ObjectID2String(unit.ID),
			Code:         unit.Code,
			DisplayName:  unit.DisplayName,
			MemberCount:  unit.MemberCount,
			RoleCount:    roleCount,
			CreationTime: unit.CreationTime,
		}
		if unit.ParentID != nil {
			out.ParentID = utility.ObjectID2String(*unit.ParentID)
		}
		items = append(items, out)
	}

	return &basemodels.PaginateResult[admindto.OrganisationUnitOut]{
		Page:      result.Page,
		Limit:     result.Limit,
		ItemCount: result.ItemCount,
		Items:     items,
		Total:     result.Total,
		TotalPage: result.TotalPage,
	}, nil
}

// AddRoles gắn một danh sách role vào đơn vị tổ chức qua $addToSet.
// Idempotent: gắn lại một cặp đã tồn tại không tạo bản ghi trùng.
// Trả về lỗi 404 nếu đơn vị hoặc bất kỳ role nào không tồn tại.
func (s *OrganisationUnitService) AddRoles(ctx context.Context, orgUnitID primitive.ObjectID, roleIDs []primitive.ObjectID) error {
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, orgUnitID); err != nil {
		return err
	}

	// Kiểm tra toàn bộ role tồn tại trước khi ghi để tránh gắn dở dang
	for _, roleID := range roleIDs {
		exists, err := s.roleService.DocumentExists(ctx, bson.M{"_id": roleID})
		if err != nil {
			return err
		}
		if !exists {
			return common.NewError(
				common.ErrCodeBusinessOperation,
				fmt.Sprintf("Không tìm thấy role với id %s", utility.ObjectID2String(roleID)),
				common.StatusNotFound,
				nil,
			)
		}
	}

	for _, roleID := range roleIDs {
		if _, err := s.roleService.UpdateById(ctx, roleID, roleTagUpdate(orgUnitID)); err != nil {
			return err
		}
	}
	return nil
}

// roleTagUpdate gắn đơn vị tổ chức vào role qua $addToSet:
// gắn lại một cặp đã tồn tại không tạo phần tử trùng trong mảng.
func roleTagUpdate(orgUnitID primitive.ObjectID) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"organisationUnitIds": orgUnitID,
		},
	}
}

// roleUntagUpdate gỡ đơn vị tổ chức khỏi role qua $pull:
// gỡ một cặp chưa từng gắn là no-op.
func roleUntagUpdate(orgUnitID primitive.ObjectID) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Pull: map[string]interface{}{
			"organisationUnitIds": orgUnitID,
		},
	}
}

// RemoveRole gỡ một role khỏi đơn vị tổ chức qua $pull.
// Gỡ một cặp chưa từng gắn là no-op thành công.
func (s *OrganisationUnitService) RemoveRole(ctx context.Context, orgUnitID primitive.ObjectID, roleID primitive.ObjectID) error {
	if _, err := s.roleService.FindOneById(ctx, roleID); err != nil {
		return err
	}

	_, err := s.roleService.UpdateById(ctx, roleID, roleUntagUpdate(orgUnitID))
	return err
}

// SearchRoles tìm role theo trạng thái gắn với đơn vị tổ chức.
// IsAssigned true = role đã gắn, false = role chưa gắn, nil = tất cả.
func (s *OrganisationUnitService) SearchRoles(ctx context.Context, orgUnitID primitive.ObjectID, input *admindto.OrganisationUnitRoleSearchInput) (*basemodels.PaginateResult[models.Role], error) {
	if _, err := s.BaseServiceMongoImpl.FindOneById(ctx, orgUnitID); err != nil {
		return nil, err
	}

	filter := bson.M{}
	if input.SearchText != "" {
		regex := bson.M{"$regex": input.SearchText, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"displayName": regex},
		}
	}
	if input.IsAssigned != nil {
		if *input.IsAssigned {
			filter["organisationUnitIds"] = orgUnitID
		} else {
			filter["organisationUnitIds"] = bson.M{"$ne": orgUnitID}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "creationTime", Value: -1}})
	return s.roleService.FindWithPagination(ctx, filter, input.Page, input.PageSize, opts)
}
