package registry

import "testing"

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("orders", 1)
	if err != nil {
		t.Fatalf("Register trả lỗi: %v", err)
	}
	if !isNew {
		t.Error("đăng ký lần đầu phải trả isNew=true")
	}

	v, exists := r.Get("orders")
	if !exists || v != 1 {
		t.Errorf("Get(orders) = (%v, %v), muốn (1, true)", v, exists)
	}

	// Ghi đè item cũ
	isNew, err = r.Register("orders", 2)
	if err != nil {
		t.Fatalf("Register trả lỗi: %v", err)
	}
	if isNew {
		t.Error("ghi đè phải trả isNew=false")
	}
	v, _ = r.Get("orders")
	if v != 2 {
		t.Errorf("sau ghi đè Get(orders) = %v, muốn 2", v)
	}
}

func TestRegistry_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("đăng ký với name rỗng phải trả lỗi")
	}
}

func TestRegistry_GetMissing(t *testing.T) {
	r := NewRegistry[string]()
	if _, exists := r.Get("missing"); exists {
		t.Error("Get với key không tồn tại phải trả exists=false")
	}
}
