package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artshow_crm/internal/common"
	"artshow_crm/internal/global"
)

// RelationshipCheck dinh nghia mot quan he can kiem tra truoc khi xoa record
type RelationshipCheck struct {
	CollectionName string // Ten collection can kiem tra
	FieldName      string // Ten field chua reference (vi du: "customerId", "roleIds")
	ErrorMessage   string // Thong bao loi neu quan he ton tai
	Optional       bool   // Neu true, bo qua loi khi collection khong ton tai
}

// CheckRelationshipExists kiem tra xem co record nao dang tham chieu toi recordID khong.
// Tra ve loi neu tim thay tham chieu (khong cho phep xoa).
func CheckRelationshipExists(ctx context.Context, recordID primitive.ObjectID, checks []RelationshipCheck) error {
	for _, check := range checks {
		collection, ok := global.RegistryCollections.Get(check.CollectionName)
		if !ok || collection == nil {
			if check.Optional {
				continue
			}
			return common.NewError(
				common.ErrCodeDatabaseConnection,
				fmt.Sprintf("Khong tim thay collection %s de kiem tra quan he", check.CollectionName),
				common.StatusInternalServerError,
				nil,
			)
		}

		// Filter hoat dong cho ca field don (customerId: id) va field array (roleIds chua id)
		filter := bson.M{check.FieldName: recordID}
		count, err := collection.CountDocuments(ctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}

		if count > 0 {
			message := check.ErrorMessage
			if message == "" {
				message = fmt.Sprintf("Khong the xoa vi co %d ban ghi trong %s dang tham chieu", count, check.CollectionName)
			}
			return common.NewError(
				common.ErrCodeBusinessState,
				message,
				common.StatusConflict,
				nil,
			)
		}
	}
	return nil
}

// CheckRelationshipExistsWithFilter giong CheckRelationshipExists nhung cho phep them dieu kien loc.
// Dung khi chi mot tap con cua cac ban ghi tham chieu chan viec xoa (vi du chi don hang chua gan invoice).
func CheckRelationshipExistsWithFilter(ctx context.Context, recordID primitive.ObjectID, check RelationshipCheck, extraFilter bson.M) error {
	collection, ok := global.RegistryCollections.Get(check.CollectionName)
	if !ok || collection == nil {
		if check.Optional {
			return nil
		}
		return common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Khong tim thay collection %s de kiem tra quan he", check.CollectionName),
			common.StatusInternalServerError,
			nil,
		)
	}

	filter := bson.M{check.FieldName: recordID}
	for k, v := range extraFilter {
		filter[k] = v
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return common.ConvertMongoError(err)
	}

	if count > 0 {
		message := check.ErrorMessage
		if message == "" {
			message = fmt.Sprintf("Khong the xoa vi co %d ban ghi trong %s dang tham chieu", count, check.CollectionName)
		}
		return common.NewError(
			common.ErrCodeBusinessState,
			message,
			common.StatusConflict,
			nil,
		)
	}
	return nil
}

// GetRelationshipCount dem so ban ghi trong collectionName dang tham chieu toi recordID qua fieldName.
// Dung cho cac endpoint thong ke (vi du roleCount cua organisation unit).
func GetRelationshipCount(ctx context.Context, recordID primitive.ObjectID, collectionName, fieldName string) (int64, error) {
	collection, ok := global.RegistryCollections.Get(collectionName)
	if !ok || collection == nil {
		return 0, common.NewError(
			common.ErrCodeDatabaseConnection,
			fmt.Sprintf("Khong tim thay collection %s", collectionName),
			common.StatusInternalServerError,
			nil,
		)
	}

	count, err := collection.CountDocuments(ctx, bson.M{fieldName: recordID})
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// ValidateBeforeDeleteRole kiem tra role co dang duoc user nao su dung khong truoc khi xoa
func ValidateBeforeDeleteRole(ctx context.Context, roleID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Users,
			FieldName:      "roleIds",
			ErrorMessage:   "Khong the xoa vai tro vi dang duoc gan cho nguoi dung",
		},
	}
	return CheckRelationshipExists(ctx, roleID, checks)
}

// ValidateBeforeDeleteOrganisationUnit kiem tra don vi co dang duoc role nao gan tag khong truoc khi xoa
func ValidateBeforeDeleteOrganisationUnit(ctx context.Context, unitID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Roles,
			FieldName:      "organisationUnitIds",
			ErrorMessage:   "Khong the xoa don vi vi dang duoc gan cho vai tro",
		},
	}
	return CheckRelationshipExists(ctx, unitID, checks)
}

// ValidateBeforeDeleteCustomer kiem tra khach hang co don hang nao khong truoc khi xoa
func ValidateBeforeDeleteCustomer(ctx context.Context, customerID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Orders,
			FieldName:      "customerId",
			ErrorMessage:   "Khong the xoa khach hang vi dang co don hang tham chieu",
		},
	}
	return CheckRelationshipExists(ctx, customerID, checks)
}

// ValidateBeforeDeleteProduct kiem tra san pham co nam trong don hang nao khong truoc khi xoa
func ValidateBeforeDeleteProduct(ctx context.Context, productID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Orders,
			FieldName:      "items.productId",
			ErrorMessage:   "Khong the xoa san pham vi dang nam trong don hang",
		},
	}
	return CheckRelationshipExists(ctx, productID, checks)
}

// ValidateBeforeDeleteInvoice kiem tra hoa don co don hang nao dang lien ket khong truoc khi xoa
func ValidateBeforeDeleteInvoice(ctx context.Context, invoiceID primitive.ObjectID) error {
	checks := []RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Orders,
			FieldName:      "invoiceId",
			ErrorMessage:   "Khong the xoa hoa don vi dang lien ket voi don hang",
		},
	}
	return CheckRelationshipExists(ctx, invoiceID, checks)
}
