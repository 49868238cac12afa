// Package common - Test chuyển đổi lỗi MongoDB: convert phải giữ được lỗi gốc
// để tầng trên còn nhận diện qua errors.Is/errors.As.
package common

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestConvertMongoError_PreservesCause(t *testing.T) {
	original := mongo.CommandError{Code: 20, Message: "Transaction numbers are only allowed on a replica set member or mongos"}

	converted := ConvertMongoError(original)

	if !errors.Is(converted, ErrMongoSystem) {
		t.Errorf("errors.Is(converted, ErrMongoSystem) = false, muốn true, nhận được %v", converted)
	}
	var cmdErr mongo.CommandError
	if !errors.As(converted, &cmdErr) {
		t.Fatalf("errors.As không truy ra được mongo.CommandError gốc từ %v", converted)
	}
	if cmdErr.Code != 20 {
		t.Errorf("code lỗi gốc = %d, muốn 20", cmdErr.Code)
	}
}

func TestConvertMongoError_DuplicateKey(t *testing.T) {
	original := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}

	converted := ConvertMongoError(original)

	if !errors.Is(converted, ErrMongoDuplicate) {
		t.Errorf("errors.Is(converted, ErrMongoDuplicate) = false, muốn true, nhận được %v", converted)
	}
}

func TestConvertMongoError_PassthroughAppError(t *testing.T) {
	if got := ConvertMongoError(ErrOrderNotFound); got != ErrOrderNotFound {
		t.Errorf("lỗi đã chuẩn hóa phải được trả nguyên trạng, nhận được %v", got)
	}
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("nil phải trả về nil, nhận được %v", got)
	}
}
