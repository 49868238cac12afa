// Package catalogsvc - các service thuộc domain catalog.
package catalogsvc

import (
	"context"
	"fmt"
	"time"

	basemodels "artshow_crm/internal/api/base/models"
	basesvc "artshow_crm/internal/api/base/service"
	catalogdto "artshow_crm/internal/api/catalog/dto"
	models "artshow_crm/internal/api/catalog/models"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"
	"artshow_crm/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](collection),
	}, nil
}

// InsertOne tạo sản phẩm mới, sinh code dạng PRD-YYYYMMDD-xxxxx
// và tính tổng tồn kho từ kệ và kho.
func (s *ProductService) InsertOne(ctx context.Context, product models.Product) (models.Product, error) {
	if product.Code == "" {
		product.Code = utility.GenerateBusinessCode(utility.CodePrefixProduct, time.Now())
	}
	product.Inventory.Quantity = product.Inventory.QuantityInShelf + product.Inventory.QuantityInWarehouse
	return s.BaseServiceMongoImpl.InsertOne(ctx, product)
}

// SearchWithPagination tìm sản phẩm theo searchText trên name, code, tags,
// categories; sort newest/oldest theo createdAt.
func (s *ProductService) SearchWithPagination(ctx context.Context, input *catalogdto.ProductSearchInput) (*basemodels.PaginateResult[models.Product], error) {
	filter := bson.M{}
	if input.SearchText != "" {
		regex := bson.M{"$regex": input.SearchText, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"code": regex},
			{"tags": regex},
			{"categories": regex},
		}
	}

	sortOrder := -1 // newest
	if input.Sort == "oldest" {
		sortOrder = 1
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: sortOrder}})

	return s.BaseServiceMongoImpl.FindWithPagination(ctx, filter, input.Page, input.PageSize, opts)
}
