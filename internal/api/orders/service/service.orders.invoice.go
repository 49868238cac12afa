package orderssvc

import (
	"context"
	"fmt"

	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InvoiceService là cấu trúc chứa các phương thức liên quan đến hóa đơn
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
}

// NewInvoiceService tạo mới InvoiceService
func NewInvoiceService() (*InvoiceService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Invoices)
	if !exist {
		return nil, fmt.Errorf("failed to get invoices collection: %v", common.ErrNotFound)
	}
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](collection),
	}, nil
}

// CreateForOrder tạo hóa đơn mới bao phủ đúng một đơn hàng.
// balanceAmount = totalAmount - advancePaid, tính bằng decimal.
func (s *InvoiceService) CreateForOrder(ctx context.Context, order *models.Order, input *ordersdto.InvoiceInput) (*models.Invoice, error) {
	invoice := buildInvoiceForOrder(order, input)

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, invoice)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// buildInvoiceForOrder dựng model hóa đơn bao phủ đúng một đơn hàng.
// balanceAmount = totalAmount - advancePaid, tính bằng decimal.
func buildInvoiceForOrder(order *models.Order, input *ordersdto.InvoiceInput) models.Invoice {
	total := decimal.NewFromFloat(order.TotalAmount)
	advance := decimal.NewFromFloat(input.AdvancePaid)

	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentStatusPending
	}

	return models.Invoice{
		OrderIDs:      []primitive.ObjectID{order.ID},
		BillDate:      input.BillDate,
		BillFrom:      input.BillFrom,
		BillTo:        input.BillTo,
		PaymentMode:   input.PaymentMode,
		PaymentStatus: paymentStatus,
		TotalAmount:   roundMoney(total),
		AdvancePaid:   roundMoney(advance),
		BalanceAmount: roundMoney(total.Sub(advance)),
	}
}

// linkOrderUpdate dựng update document gắn đơn hàng vào hóa đơn:
// $addToSet orderIds (không trùng lặp) và $inc delta trên
// totalAmount/advancePaid/balanceAmount.
func linkOrderUpdate(order *models.Order, advancePaid float64) *basesvc.UpdateData {
	total := decimal.NewFromFloat(order.TotalAmount)
	advance := decimal.NewFromFloat(advancePaid)

	return &basesvc.UpdateData{
		AddToSet: map[string]interface{}{
			"orderIds": order.ID,
		},
		Inc: map[string]interface{}{
			"totalAmount":   roundMoney(total),
			"advancePaid":   roundMoney(advance),
			"balanceAmount": roundMoney(total.Sub(advance)),
		},
	}
}

// LinkOrder gắn một đơn hàng vào hóa đơn có sẵn bằng một lệnh
// FindOneAndUpdate duy nhất: $addToSet orderIds (không trùng lặp) và
// $inc nguyên tử trên totalAmount/advancePaid/balanceAmount. Hai request
// đồng thời trên cùng hóa đơn không làm mất cập nhật của nhau.
// Trả về ErrInvoiceNotFound nếu hóa đơn không tồn tại.
func (s *InvoiceService) LinkOrder(ctx context.Context, invoiceID primitive.ObjectID, order *models.Order, advancePaid float64) (*models.Invoice, error) {
	updateData := linkOrderUpdate(order, advancePaid)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated, err := s.BaseServiceMongoImpl.FindOneAndUpdate(ctx, bson.M{"_id": invoiceID}, updateData, opts)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrInvoiceNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// FindLatestForOrder trả về hóa đơn mới nhất bao phủ một đơn hàng, nil nếu chưa có.
func (s *InvoiceService) FindLatestForOrder(ctx context.Context, orderID primitive.ObjectID) (*models.Invoice, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	invoice, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"orderIds": orderID}, opts)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}
