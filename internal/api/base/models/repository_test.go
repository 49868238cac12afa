// Package models - Test dựng kết quả đếm cho endpoint count.
package models

import "testing"

func TestNewCountResult(t *testing.T) {
	cases := []struct {
		name       string
		totalCount int64
		limit      int64
		wantLimit  int64
		wantPages  int64
	}{
		{"rỗng", 0, 10, 10, 0},
		{"chia hết", 30, 10, 10, 3},
		{"làm tròn lên", 25, 10, 10, 3},
		{"một trang", 5, 10, 10, 1},
		{"limit không hợp lệ dùng mặc định", 7, 0, 10, 1},
		{"limit nhỏ", 5, 2, 2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewCountResult(tc.totalCount, tc.limit)
			if got.TotalCount != tc.totalCount {
				t.Errorf("totalCount = %d, muốn %d", got.TotalCount, tc.totalCount)
			}
			if got.Limit != tc.wantLimit {
				t.Errorf("limit = %d, muốn %d", got.Limit, tc.wantLimit)
			}
			if got.TotalPage != tc.wantPages {
				t.Errorf("totalPage = %d, muốn %d", got.TotalPage, tc.wantPages)
			}
		})
	}
}
