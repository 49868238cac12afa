// Package database - Index bổ sung cho CRM (unique, compound) không thể định nghĩa qua model tags.
package database

import (
	"context"
	"strings"

	"artshow_crm/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateCrmIndexes tạo các index cho các collection CRM.
// Gọi một lần khi khởi động server, sau khi đã đăng ký collections.
func CreateCrmIndexes(ctx context.Context, db *mongo.Database) error {
	// orders: orderCode unique sparse — chặn trùng mã đơn hàng khi 2 request sinh cùng mã
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderCode", Value: 1}},
		Options: options.Index().SetName("order_code_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (customerId, createdAt) — danh sách đơn hàng theo khách, sort mới nhất
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "customerId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_customer_created").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: invoiceId sparse — đối soát hóa đơn và truy vấn đơn theo hóa đơn
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "invoiceId", Value: 1}},
		Options: options.Index().SetName("order_invoice").SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: orderIds multikey — tra ngược đơn hàng thuộc hóa đơn
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderIds", Value: 1}},
		Options: options.Index().SetName("invoice_orders"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: code unique sparse
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("product_code_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// roles: organisationUnitIds multikey — tìm vai trò theo đơn vị tổ chức
	roles := db.Collection(global.MongoDB_ColNames.Roles)
	if _, err := roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "organisationUnitIds", Value: 1}},
		Options: options.Index().SetName("role_org_units"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// roles: name unique
	if _, err := roles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("role_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// organisation_units: code unique sparse
	orgUnits := db.Collection(global.MongoDB_ColNames.OrganisationUnits)
	if _, err := orgUnits.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetName("org_unit_code_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// users: userName unique, emailAddress unique sparse
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userName", Value: 1}},
		Options: options.Index().SetName("user_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "emailAddress", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// permissions: name unique
	permissions := db.Collection(global.MongoDB_ColNames.Permissions)
	if _, err := permissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("permission_name_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
