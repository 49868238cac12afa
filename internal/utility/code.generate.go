package utility

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Tiền tố mã nghiệp vụ cho các loại tài liệu
const (
	CodePrefixOrder   = "ORD" // Mã đơn hàng
	CodePrefixProduct = "PRD" // Mã sản phẩm
)

// GenerateBusinessCode sinh mã nghiệp vụ dạng <prefix>-<YYYYMMDD>-<5 chữ số ngẫu nhiên>
// Ví dụ: ORD-20260831-04217
// Mã sinh ra không đảm bảo duy nhất tuyệt đối, caller phải kiểm tra trùng trong DB
func GenerateBusinessCode(prefix string, now time.Time) string {
	datePart := now.Format("20060102")
	return fmt.Sprintf("%s-%s-%05d", prefix, datePart, randomInt(100000))
}

// randomInt trả về số ngẫu nhiên trong [0, max) dùng crypto/rand
func randomInt(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		// Fallback khi nguồn random hệ thống lỗi
		return time.Now().UnixNano() % max
	}
	return n.Int64()
}
