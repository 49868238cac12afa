package global

import (
	"artshow_crm/config"
	"artshow_crm/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CRM_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CRM_CollectionName struct {
	Users             string // Tên collection cho người dùng
	Permissions       string // Tên collection cho danh mục quyền
	Roles             string // Tên collection cho vai trò
	OrganisationUnits string // Tên collection cho đơn vị tổ chức
	Customers         string // Tên collection cho khách hàng
	Products          string // Tên collection cho sản phẩm
	Orders            string // Tên collection cho đơn hàng
	Invoices          string // Tên collection cho hóa đơn
}

// Các biến toàn cục
var Validate *validator.Validate                                                   // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                  // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CRM_CollectionName = *new(MongoDB_CRM_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
