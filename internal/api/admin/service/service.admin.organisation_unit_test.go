// Package adminsvc - Test update document gắn/gỡ role vào đơn vị tổ chức.
package adminsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRoleTagUpdate(t *testing.T) {
	orgUnitID := primitive.NewObjectID()

	updateData := roleTagUpdate(orgUnitID)

	if updateData.AddToSet["organisationUnitIds"] != orgUnitID {
		t.Errorf("$addToSet.organisationUnitIds = %v, muốn %s", updateData.AddToSet["organisationUnitIds"], orgUnitID.Hex())
	}
	if updateData.Pull != nil || updateData.Set != nil || updateData.Unset != nil || updateData.Inc != nil {
		t.Error("update gắn role chỉ được chứa $addToSet")
	}

	// $addToSet là nguồn idempotence: gắn lại cùng một cặp sinh ra
	// đúng cùng một update document, MongoDB không thêm phần tử trùng.
	raw, err := bson.Marshal(updateData)
	if err != nil {
		t.Fatalf("bson.Marshal lỗi: %v", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal lỗi: %v", err)
	}
	if _, ok := doc["$addToSet"]; !ok {
		t.Error("update document thiếu operator $addToSet")
	}
	if _, ok := doc["$push"]; ok {
		t.Error("update document không được dùng $push cho việc gắn role")
	}
}

func TestRoleUntagUpdate(t *testing.T) {
	orgUnitID := primitive.NewObjectID()

	updateData := roleUntagUpdate(orgUnitID)

	if updateData.Pull["organisationUnitIds"] != orgUnitID {
		t.Errorf("$pull.organisationUnitIds = %v, muốn %s", updateData.Pull["organisationUnitIds"], orgUnitID.Hex())
	}
	if updateData.AddToSet != nil || updateData.Set != nil || updateData.Unset != nil {
		t.Error("update gỡ role chỉ được chứa $pull")
	}
}
