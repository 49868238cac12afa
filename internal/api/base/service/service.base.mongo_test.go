// Package basesvc - Test UpdateData marshal thành update document đúng
// operator MongoDB.
package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestUpdateData_MarshalOperators(t *testing.T) {
	data := &UpdateData{
		Set:      map[string]interface{}{"name": "A"},
		AddToSet: map[string]interface{}{"orderIds": "x"},
		Inc:      map[string]interface{}{"totalAmount": 100.5},
	}

	raw, err := bson.Marshal(data)
	if err != nil {
		t.Fatalf("bson.Marshal trả lỗi: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal trả lỗi: %v", err)
	}

	if _, ok := doc["$set"]; !ok {
		t.Error("update doc thiếu $set")
	}
	if _, ok := doc["$addToSet"]; !ok {
		t.Error("update doc thiếu $addToSet")
	}
	inc, ok := doc["$inc"].(bson.M)
	if !ok {
		t.Fatal("update doc thiếu $inc")
	}
	if inc["totalAmount"] != 100.5 {
		t.Errorf("$inc.totalAmount = %v, muốn 100.5", inc["totalAmount"])
	}

	// Các operator không dùng phải bị omit
	for _, op := range []string{"$unset", "$push", "$pull", "$setOnInsert"} {
		if _, ok := doc[op]; ok {
			t.Errorf("update doc không được chứa %s khi không dùng", op)
		}
	}
}

func TestUpdateData_EmptyMarshal(t *testing.T) {
	raw, err := bson.Marshal(&UpdateData{})
	if err != nil {
		t.Fatalf("bson.Marshal trả lỗi: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal trả lỗi: %v", err)
	}
	if len(doc) != 0 {
		t.Errorf("UpdateData rỗng phải marshal thành doc rỗng, nhận %v", doc)
	}
}
