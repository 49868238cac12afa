package utility

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID = %s, muốn %s", got.Hex(), id.Hex())
	}
	if got := String2ObjectID("not-hex"); !got.IsZero() {
		t.Errorf("hex sai định dạng phải trả NilObjectID, nhận %s", got.Hex())
	}
	if got := String2ObjectID(""); !got.IsZero() {
		t.Errorf("chuỗi rỗng phải trả NilObjectID, nhận %s", got.Hex())
	}
}

func TestStringArray2ObjectIDArray(t *testing.T) {
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()
	got := StringArray2ObjectIDArray([]string{id1.Hex(), "bad", id2.Hex()})
	// Phần tử sai định dạng trở thành NilObjectID, thứ tự giữ nguyên
	if len(got) != 3 || got[0] != id1 || !got[1].IsZero() || got[2] != id2 {
		t.Errorf("kết quả = %v, muốn [%s Nil %s]", got, id1.Hex(), id2.Hex())
	}
}

func TestContains(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	if !Contains(ids, ids[1]) {
		t.Error("Contains phải tìm thấy phần tử có trong slice")
	}
	if Contains(ids, primitive.NewObjectID()) {
		t.Error("Contains không được tìm thấy phần tử không có trong slice")
	}
}
