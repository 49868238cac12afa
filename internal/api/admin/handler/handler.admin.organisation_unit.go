package adminhdl

import (
	"fmt"

	admindto "artshow_crm/internal/api/admin/dto"
	models "artshow_crm/internal/api/admin/models"
	adminsvc "artshow_crm/internal/api/admin/service"
	basehdl "artshow_crm/internal/api/base/handler"
	"artshow_crm/internal/common"
	"artshow_crm/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganisationUnitHandler xử lý các route liên quan đến đơn vị tổ chức
// và việc gắn/gỡ role vào đơn vị.
type OrganisationUnitHandler struct {
	*basehdl.BaseHandler[models.OrganisationUnit, admindto.OrganisationUnitCreateInput, admindto.OrganisationUnitUpdateInput]
	OrganisationUnitService *adminsvc.OrganisationUnitService
}

// NewOrganisationUnitHandler tạo instance mới của OrganisationUnitHandler
func NewOrganisationUnitHandler() (*OrganisationUnitHandler, error) {
	orgUnitService, err := adminsvc.NewOrganisationUnitService()
	if err != nil {
		return nil, fmt.Errorf("failed to create organisation unit service: %v", err)
	}
	return &OrganisationUnitHandler{
		BaseHandler:             basehdl.NewBaseHandler[models.OrganisationUnit, admindto.OrganisationUnitCreateInput, admindto.OrganisationUnitUpdateInput](orgUnitService),
		OrganisationUnitService: orgUnitService,
	}, nil
}

// HandleSearch tìm đơn vị tổ chức có phân trang, kèm roleCount.
func (h *OrganisationUnitHandler) HandleSearch(c fiber.Ctx) error {
	var input admindto.OrganisationUnitSearchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	result, err := h.OrganisationUnitService.SearchWithPagination(basehdl.ContextWithUserID(c), &input)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAddRoles gắn một danh sách role vào đơn vị tổ chức.
func (h *OrganisationUnitHandler) HandleAddRoles(c fiber.Ctx) error {
	var input admindto.AddRolesToOrganisationUnitInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	orgUnitID, err := primitive.ObjectIDFromHex(input.OrganisationUnitID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn vị tổ chức không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	roleIDs := make([]primitive.ObjectID, 0, len(input.RoleIDs))
	for _, raw := range input.RoleIDs {
		roleID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID role không hợp lệ: %s", raw), common.StatusBadRequest, err))
			return nil
		}
		roleIDs = append(roleIDs, roleID)
	}

	err = h.OrganisationUnitService.AddRoles(basehdl.ContextWithUserID(c), orgUnitID, roleIDs)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleRemoveRole gỡ một role khỏi đơn vị tổ chức.
func (h *OrganisationUnitHandler) HandleRemoveRole(c fiber.Ctx) error {
	var input admindto.RemoveRoleFromOrganisationUnitInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	orgUnitID, err := primitive.ObjectIDFromHex(input.OrganisationUnitID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn vị tổ chức không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	roleID, err := primitive.ObjectIDFromHex(input.RoleID)
	if err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID role không hợp lệ", common.StatusBadRequest, err))
		return nil
	}

	err = h.OrganisationUnitService.RemoveRole(basehdl.ContextWithUserID(c), orgUnitID, roleID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleSearchRoles tìm role theo trạng thái gắn với đơn vị tổ chức (isAssigned).
func (h *OrganisationUnitHandler) HandleSearchRoles(c fiber.Ctx) error {
	orgUnitID := utility.String2ObjectID(c.Params("id"))
	if orgUnitID.IsZero() {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID đơn vị tổ chức không hợp lệ", common.StatusBadRequest, nil))
		return nil
	}

	var input admindto.OrganisationUnitRoleSearchInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.OrganisationUnitService.SearchRoles(basehdl.ContextWithUserID(c), orgUnitID, &input)
	h.HandleResponse(c, result, err)
	return nil
}
