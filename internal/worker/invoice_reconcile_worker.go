// Package worker - InvoiceReconcileWorker đối soát liên kết đơn hàng ↔ hóa đơn
// theo chu kỳ. Bắt các đơn hàng mồ côi sinh ra khi workflow đặt hàng chạy
// ở chế độ ghi tuần tự (deployment không hỗ trợ transaction) và bị gián đoạn
// giữa bước ghi đơn hàng và bước ghi hóa đơn.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "artshow_crm/internal/api/base/service"
	orderssvc "artshow_crm/internal/api/orders/service"
	"artshow_crm/internal/common"
	"artshow_crm/internal/logger"
	"artshow_crm/internal/utility"
)

// InvoiceReconcileWorker worker đối soát hóa đơn định kỳ.
//
// Mỗi lần chạy duyệt các đơn hàng có invoiceId:
//   - Hóa đơn không tồn tại → gỡ invoiceId khỏi đơn hàng (tham chiếu chết).
//   - Hóa đơn tồn tại nhưng orderIds thiếu đơn hàng → $addToSet bổ sung.
type InvoiceReconcileWorker struct {
	orderService *orderssvc.OrderService
	interval     time.Duration // Khoảng thời gian giữa các lần chạy (vd: 5 phút)
}

// NewInvoiceReconcileWorker tạo worker mới.
func NewInvoiceReconcileWorker(interval time.Duration) (*InvoiceReconcileWorker, error) {
	orderService, err := orderssvc.NewOrderService()
	if err != nil {
		return nil, err
	}
	if interval < time.Minute {
		interval = 5 * time.Minute
	}
	return &InvoiceReconcileWorker{
		orderService: orderService,
		interval:     interval,
	}, nil
}

// Start chạy worker trong vòng lặp.
func (w *InvoiceReconcileWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("[INVOICE_RECONCILE] Starting Invoice Reconcile Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("[INVOICE_RECONCILE] Invoice Reconcile Worker stopped")
			return
		case <-ticker.C:
			w.runPass(ctx, log)
		}
	}
}

// runPass chạy một đợt đối soát trên tất cả đơn hàng có invoiceId.
func (w *InvoiceReconcileWorker) runPass(ctx context.Context, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(map[string]interface{}{
				"panic": r,
			}).Error("[INVOICE_RECONCILE] Panic khi đối soát, sẽ tiếp tục lần chạy tiếp theo")
		}
	}()

	orders, err := w.orderService.Find(ctx, bson.M{"invoiceId": bson.M{"$ne": nil}}, nil)
	if err != nil {
		log.WithError(err).Error("[INVOICE_RECONCILE] Lỗi truy vấn đơn hàng có invoiceId")
		return
	}

	repaired := 0
	detached := 0
	invoiceService := w.orderService.InvoiceService()

	for i := range orders {
		order := &orders[i]
		if order.InvoiceID == nil {
			continue
		}

		invoice, err := invoiceService.FindOneById(ctx, *order.InvoiceID)
		if err == common.ErrNotFound {
			// Tham chiếu chết: hóa đơn đã không còn, gỡ invoiceId
			updateData := &basesvc.UpdateData{
				Unset: map[string]interface{}{"invoiceId": ""},
			}
			if _, err := w.orderService.UpdateById(ctx, order.ID, updateData); err != nil {
				log.WithError(err).WithField("order_id", order.ID.Hex()).Error("[INVOICE_RECONCILE] Lỗi gỡ invoiceId chết")
				continue
			}
			log.WithFields(map[string]interface{}{
				"order_id":   order.ID.Hex(),
				"invoice_id": order.InvoiceID.Hex(),
			}).Warn("[INVOICE_RECONCILE] Đơn hàng tham chiếu hóa đơn không tồn tại, đã gỡ liên kết")
			detached++
			continue
		}
		if err != nil {
			log.WithError(err).WithField("order_id", order.ID.Hex()).Error("[INVOICE_RECONCILE] Lỗi đọc hóa đơn")
			continue
		}

		if utility.Contains(invoice.OrderIDs, order.ID) {
			continue
		}

		// Hóa đơn thiếu tham chiếu ngược tới đơn hàng, bổ sung bằng $addToSet
		updateData := &basesvc.UpdateData{
			AddToSet: map[string]interface{}{"orderIds": order.ID},
		}
		if _, err := invoiceService.UpdateById(ctx, invoice.ID, updateData); err != nil {
			log.WithError(err).WithField("invoice_id", invoice.ID.Hex()).Error("[INVOICE_RECONCILE] Lỗi bổ sung orderId vào hóa đơn")
			continue
		}
		log.WithFields(map[string]interface{}{
			"order_id":   order.ID.Hex(),
			"invoice_id": invoice.ID.Hex(),
		}).Info("[INVOICE_RECONCILE] Đã bổ sung đơn hàng vào orderIds của hóa đơn")
		repaired++
	}

	if repaired > 0 || detached > 0 {
		log.WithFields(map[string]interface{}{
			"checked":  len(orders),
			"repaired": repaired,
			"detached": detached,
		}).Info("[INVOICE_RECONCILE] Hoàn tất một đợt đối soát")
	}
}

