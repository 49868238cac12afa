// Package crmsvc - các service thuộc domain crm.
package crmsvc

import (
	"context"
	"fmt"

	crmdto "artshow_crm/internal/api/crm/dto"
	models "artshow_crm/internal/api/crm/models"
	basemodels "artshow_crm/internal/api/base/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomerService là cấu trúc chứa các phương thức liên quan đến khách hàng
type CustomerService struct {
	*basesvc.BaseServiceMongoImpl[models.Customer]
}

// NewCustomerService tạo mới CustomerService
func NewCustomerService() (*CustomerService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Customers)
	if !exist {
		return nil, fmt.Errorf("failed to get customers collection: %v", common.ErrNotFound)
	}
	return &CustomerService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Customer](collection),
	}, nil
}

// FindActive trả về danh sách khách hàng đang active.
func (s *CustomerService) FindActive(ctx context.Context) ([]models.Customer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"isActive": true}, opts)
}

// SearchWithPagination tìm khách hàng theo searchText (name, email, phone)
// và trạng thái active, sort newest/oldest.
func (s *CustomerService) SearchWithPagination(ctx context.Context, input *crmdto.CustomerSearchInput) (*basemodels.PaginateResult[models.Customer], error) {
	filter := bson.M{}
	if input.SearchText != "" {
		regex := bson.M{"$regex": input.SearchText, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"contact.email": regex},
			{"contact.phone": regex},
		}
	}
	switch input.Status {
	case "active":
		filter["isActive"] = true
	case "inactive":
		filter["isActive"] = false
	}

	sortOrder := -1 // newest
	if input.Sort == "oldest" {
		sortOrder = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: sortOrder}})

	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, input.Page, input.PageSize, opts)
}
