package orderssvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ordersdto "artshow_crm/internal/api/orders/dto"
	models "artshow_crm/internal/api/orders/models"
	basemodels "artshow_crm/internal/api/base/models"
	basesvc "artshow_crm/internal/api/base/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/global"
	"artshow_crm/internal/utility"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService điều phối workflow đặt hàng: tính toán tài chính, ghi đơn hàng,
// tạo hoặc gắn hóa đơn, và lắp response.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	invoiceService *InvoiceService
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	invoiceService, err := NewInvoiceService()
	if err != nil {
		return nil, err
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](collection),
		invoiceService:       invoiceService,
	}, nil
}

// InvoiceService trả về service hóa đơn dùng chung với OrderService.
func (s *OrderService) InvoiceService() *InvoiceService {
	return s.invoiceService
}

// buildOrderFromInput chuyển payload thành model Order, parse các ObjectID.
// ID sai định dạng trả lỗi 400.
func buildOrderFromInput(input *ordersdto.OrderInput) (*models.Order, error) {
	order := &models.Order{
		OrderCode:            input.OrderCode,
		CustomerName:         input.CustomerName,
		Items:                make([]models.OrderItem, 0, len(input.Items)),
		DiscountAmount:       input.DiscountAmount,
		MiscCharges:          input.MiscCharges,
		OrderStatus:          input.OrderStatus,
		HandledBy:            input.HandledBy,
		LikelyDateOfDelivery: input.LikelyDateOfDelivery,
		Note:                 input.Note,
	}
	if order.OrderStatus == "" {
		order.OrderStatus = models.OrderStatusPending
	}
	if order.MiscCharges == nil {
		order.MiscCharges = []models.MiscCharge{}
	}

	if input.CustomerID != "" {
		customerID, err := primitive.ObjectIDFromHex(input.CustomerID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "ID khách hàng không hợp lệ", common.StatusBadRequest, err)
		}
		order.CustomerID = customerID
	}
	if input.InvoiceID != "" {
		invoiceID, err := primitive.ObjectIDFromHex(input.InvoiceID)
		if err != nil {
			return nil, common.NewError(common.ErrCodeValidationFormat, "ID hóa đơn không hợp lệ", common.StatusBadRequest, err)
		}
		order.InvoiceID = &invoiceID
	}

	for i, itemInput := range input.Items {
		item := models.OrderItem{
			ProductType:        itemInput.ProductType,
			Name:               itemInput.Name,
			Description:        itemInput.Description,
			Quantity:           itemInput.Quantity,
			UnitPrice:          itemInput.UnitPrice,
			DiscountedQuantity: itemInput.DiscountedQuantity,
			DiscountAmount:     itemInput.DiscountAmount,
			CancelledQty:       itemInput.CancelledQty,
			TaxSnapshot:        itemInput.TaxSnapshot,
			CustomizedDetails:  itemInput.CustomizedDetails,
		}
		if item.TaxSnapshot == nil {
			item.TaxSnapshot = []models.TaxRuleSnapshot{}
		}
		if itemInput.ProductID != "" {
			productID, err := primitive.ObjectIDFromHex(itemInput.ProductID)
			if err != nil {
				return nil, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Dòng hàng %d: ID sản phẩm không hợp lệ", i), common.StatusBadRequest, err)
			}
			item.ProductID = productID
		}
		order.Items = append(order.Items, item)
	}

	return order, nil
}

// persistOrder ghi đơn hàng với mã ORD-YYYYMMDD-xxxxx duy nhất.
// Kiểm tra trùng trước khi ghi và thử lại có giới hạn; unique index trên
// orderCode chặn nốt trường hợp hai request sinh cùng mã cùng lúc.
func (s *OrderService) persistOrder(ctx context.Context, order *models.Order) error {
	maxRetries := 5
	if global.MongoDB_ServerConfig != nil && global.MongoDB_ServerConfig.OrderCodeMaxRetries > 0 {
		maxRetries = global.MongoDB_ServerConfig.OrderCodeMaxRetries
	}

	for attempt := 0; attempt < maxRetries; attempt++ {
		if order.OrderCode == "" || attempt > 0 {
			order.OrderCode = utility.GenerateBusinessCode(utility.CodePrefixOrder, time.Now())
		}

		exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{"orderCode": order.OrderCode})
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		created, err := s.BaseServiceMongoImpl.InsertOne(ctx, *order)
		if err != nil {
			if errors.Is(err, common.ErrMongoDuplicate) || errors.Is(err, common.ErrDuplicate) {
				continue
			}
			return err
		}
		if created.ID.IsZero() {
			return common.NewError(common.ErrCodeDatabaseQuery, "Ghi đơn hàng không trả về ID", common.StatusInternalServerError, nil)
		}
		*order = created
		return nil
	}

	return common.ErrOrderCodeExhausted
}

// placeOrderSteps thực hiện phần ghi của workflow đặt hàng:
// ghi đơn hàng rồi tạo/gắn hóa đơn tùy payload. Chạy được cả trong
// session context (transaction) lẫn context thường (tuần tự).
func (s *OrderService) placeOrderSteps(ctx context.Context, order *models.Order, invoiceInput *ordersdto.InvoiceInput) (*ordersdto.OrderWithInvoiceOutput, error) {
	if err := s.persistOrder(ctx, order); err != nil {
		return nil, err
	}

	var invoice *models.Invoice
	switch {
	case invoiceInput != nil && invoiceInput.GenerateInvoice:
		created, err := s.invoiceService.CreateForOrder(ctx, order, invoiceInput)
		if err != nil {
			return nil, err
		}
		invoice = created

		updateData := &basesvc.UpdateData{
			Set: map[string]interface{}{"invoiceId": invoice.ID},
		}
		updated, err := s.BaseServiceMongoImpl.UpdateById(ctx, order.ID, updateData)
		if err != nil {
			return nil, err
		}
		*order = updated

	case order.InvoiceID != nil:
		var advancePaid float64
		if invoiceInput != nil {
			advancePaid = invoiceInput.AdvancePaid
		}
		linked, err := s.invoiceService.LinkOrder(ctx, *order.InvoiceID, order, advancePaid)
		if err != nil {
			return nil, err
		}
		invoice = linked
	}

	return &ordersdto.OrderWithInvoiceOutput{Order: *order, Invoice: invoice}, nil
}

// isTransactionUnsupported nhận diện lỗi deployment không hỗ trợ transaction
// (standalone MongoDB, không phải replica set). Lỗi từ placeOrderSteps đã qua
// common.ConvertMongoError nên phải errors.As/Unwrap xuyên chuỗi lỗi để tìm
// mongo.CommandError gốc, không so trực tiếp trên lỗi ngoài cùng.
func isTransactionUnsupported(err error) bool {
	if err == nil {
		return false
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 20 {
		return true
	}
	for e := err; e != nil; e = errors.Unwrap(e) {
		if strings.Contains(e.Error(), "Transaction numbers are only allowed") {
			return true
		}
	}
	return false
}

// PlaceOrder là orchestrator của workflow đặt hàng:
// Received -> Calculated -> OrderPersisted -> {InvoiceCreated | InvoiceLinked | NoInvoice} -> ResponseAssembled.
// Khi deployment hỗ trợ session, toàn bộ phần ghi chạy trong một transaction
// đa document để đơn hàng không bao giờ mồ côi hóa đơn; khi không hỗ trợ,
// fallback về ghi tuần tự và worker đối soát xử lý phần còn lại.
func (s *OrderService) PlaceOrder(ctx context.Context, input *ordersdto.PlaceOrderInput) (*ordersdto.OrderWithInvoiceOutput, error) {
	order, err := buildOrderFromInput(&input.Order)
	if err != nil {
		return nil, err
	}
	if err := CalculateOrderTotals(order); err != nil {
		return nil, err
	}

	session, err := global.MongoDB_Session.StartSession()
	if err != nil {
		logrus.WithError(err).Warn("PlaceOrder: không mở được session, fallback ghi tuần tự")
		return s.placeOrderSteps(ctx, order, input.Invoice)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return s.placeOrderSteps(sc, order, input.Invoice)
	})
	if err != nil {
		if isTransactionUnsupported(err) {
			logrus.WithError(err).Warn("PlaceOrder: deployment không hỗ trợ transaction, fallback ghi tuần tự")
			return s.placeOrderSteps(ctx, order, input.Invoice)
		}
		return nil, err
	}

	output, ok := result.(*ordersdto.OrderWithInvoiceOutput)
	if !ok {
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, nil)
	}
	return output, nil
}

// GetOrderWithInvoice trả về đơn hàng kèm hóa đơn liên kết (nil nếu chưa có).
func (s *OrderService) GetOrderWithInvoice(ctx context.Context, orderID primitive.ObjectID) (*ordersdto.OrderWithInvoiceOutput, error) {
	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, orderID)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.ErrOrderNotFound
		}
		return nil, err
	}

	var invoice *models.Invoice
	if order.InvoiceID != nil {
		found, err := s.invoiceService.FindOneById(ctx, *order.InvoiceID)
		if err == nil {
			invoice = &found
		} else if err != common.ErrNotFound {
			return nil, err
		}
	} else {
		found, err := s.invoiceService.FindLatestForOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		invoice = found
	}

	return &ordersdto.OrderWithInvoiceOutput{Order: order, Invoice: invoice}, nil
}

// toSummary dựng một dòng tóm tắt từ đơn hàng và trạng thái thanh toán.
func toSummary(order *models.Order, paymentStatus string) ordersdto.OrderSummaryOutput {
	return ordersdto.OrderSummaryOutput{
		ID:            utility.ObjectID2String(order.ID),
		OrderCode:     order.OrderCode,
		CustomerName:  order.CustomerName,
		CreatedAt:     order.CreatedAt,
		ItemCount:     len(order.Items),
		PaymentStatus: paymentStatus,
		Total:         order.TotalAmount,
		OrderStatus:   order.OrderStatus,
	}
}

// paymentStatusForOrder lấy trạng thái thanh toán từ hóa đơn mới nhất
// bao phủ đơn hàng, mặc định pending khi chưa có hóa đơn.
func (s *OrderService) paymentStatusForOrder(ctx context.Context, orderID primitive.ObjectID) (string, error) {
	invoice, err := s.invoiceService.FindLatestForOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if invoice == nil || invoice.PaymentStatus == "" {
		return models.PaymentStatusPending, nil
	}
	return invoice.PaymentStatus, nil
}

// ListSummaries trả về tóm tắt tất cả đơn hàng, mới nhất trước.
func (s *OrderService) ListSummaries(ctx context.Context) ([]ordersdto.OrderSummaryOutput, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	orders, err := s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]ordersdto.OrderSummaryOutput, 0, len(orders))
	for i := range orders {
		paymentStatus, err := s.paymentStatusForOrder(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, toSummary(&orders[i], paymentStatus))
	}
	return summaries, nil
}

// SearchSummaries tìm đơn hàng theo customerName/orderCode (partial match)
// có phân trang, sort newest/oldest.
func (s *OrderService) SearchSummaries(ctx context.Context, input *ordersdto.OrderSearchInput) (*basemodels.PaginateResult[ordersdto.OrderSummaryOutput], error) {
	filter := bson.M{}
	if input.CustomerName != "" {
		filter["customerName"] = bson.M{"$regex": input.CustomerName, "$options": "i"}
	}
	if input.OrderCode != "" {
		filter["orderCode"] = bson.M{"$regex": input.OrderCode, "$options": "i"}
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

	items := make([]ordersdto.OrderSummaryOutput, 0, len(result.Items))
	for i := range result.Items {
		paymentStatus, err := s.paymentStatusForOrder(ctx, result.Items[i].ID)
		if err != nil {
			return nil, err
		}
		items = append(items, toSummary(&result.Items[i], paymentStatus))
	}

	return &basemodels.PaginateResult[ordersdto.OrderSummaryOutput]{
		Page:      result.Page,
		Limit:     result.Limit,
		ItemCount: result.ItemCount,
		Items:     items,
		Total:     result.Total,
		TotalPage: result.TotalPage,
	}, nil
}
