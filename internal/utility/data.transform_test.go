package utility

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseTransformTag(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	if err != nil {
		t.Fatalf("ParseTransformTag trả lỗi: %v", err)
	}
	if config.Type != "str_objectid" {
		t.Errorf("type = %q, muốn str_objectid", config.Type)
	}
	if !config.Optional {
		t.Error("optional phải là true")
	}

	config, err = ParseTransformTag("str_objectid_array,map=RoleIDs,optional")
	if err != nil {
		t.Fatalf("ParseTransformTag trả lỗi: %v", err)
	}
	if config.Type != "str_objectid_array" {
		t.Errorf("type = %q, muốn str_objectid_array", config.Type)
	}
	if config.MapTo != "RoleIDs" {
		t.Errorf("mapTo = %q, muốn RoleIDs", config.MapTo)
	}
}

func TestTransformToObjectIDArray(t *testing.T) {
	id1 := primitive.NewObjectID()
	id2 := primitive.NewObjectID()

	got, err := transformToObjectIDArray([]string{id1.Hex(), "", id2.Hex()})
	if err != nil {
		t.Fatalf("transformToObjectIDArray trả lỗi: %v", err)
	}
	// Chuỗi rỗng bị bỏ qua, thứ tự giữ nguyên
	want := []primitive.ObjectID{id1, id2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("kết quả = %v, muốn %v", got, want)
	}

	if _, err := transformToObjectIDArray([]string{"not-hex"}); err == nil {
		t.Error("hex sai định dạng phải trả lỗi")
	}

	got, err = transformToObjectIDArray(nil)
	if err != nil {
		t.Fatalf("transformToObjectIDArray(nil) trả lỗi: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("nil input phải trả slice rỗng, nhận %v", got)
	}
}

func TestTransformFieldValue_OptionalEmpty(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,optional")
	if err != nil {
		t.Fatalf("ParseTransformTag trả lỗi: %v", err)
	}
	got, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{}))
	if err != nil {
		t.Fatalf("TransformFieldValue trả lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("optional với giá trị rỗng phải trả nil, nhận %v", got)
	}
}

func TestTransformFieldValue_RequiredEmpty(t *testing.T) {
	config, err := ParseTransformTag("str_objectid,required")
	if err != nil {
		t.Fatalf("ParseTransformTag trả lỗi: %v", err)
	}
	if _, err := TransformFieldValue("", config, reflect.TypeOf(primitive.ObjectID{})); err == nil {
		t.Error("required với giá trị rỗng phải trả lỗi")
	}
}

func TestTransformToObjectIDPtr(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := transformToObjectIDPtr(id.Hex())
	if err != nil {
		t.Fatalf("transformToObjectIDPtr trả lỗi: %v", err)
	}
	if got == nil || *got != id {
		t.Errorf("kết quả = %v, muốn %s", got, id.Hex())
	}

	got, err = transformToObjectIDPtr("")
	if err != nil {
		t.Fatalf("transformToObjectIDPtr(\"\") trả lỗi: %v", err)
	}
	if got != nil {
		t.Errorf("chuỗi rỗng phải trả nil, nhận %v", got)
	}
}
