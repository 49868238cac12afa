package utility

import (
	"regexp"
	"testing"
	"time"
)

func TestGenerateBusinessCode_Format(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 30, 0, 0, time.UTC)
	re := regexp.MustCompile(`^ORD-20260831-\d{5}$`)
	for i := 0; i < 20; i++ {
		code := GenerateBusinessCode(CodePrefixOrder, now)
		if !re.MatchString(code) {
			t.Fatalf("mã %q không đúng định dạng ORD-YYYYMMDD-xxxxx", code)
		}
	}
}

func TestGenerateBusinessCode_ProductPrefix(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	code := GenerateBusinessCode(CodePrefixProduct, now)
	re := regexp.MustCompile(`^PRD-20260102-\d{5}$`)
	if !re.MatchString(code) {
		t.Fatalf("mã %q không đúng định dạng PRD-YYYYMMDD-xxxxx", code)
	}
}
