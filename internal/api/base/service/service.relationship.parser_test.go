package basesvc

import (
	"reflect"
	"testing"

	adminmodels "artshow_crm/internal/api/admin/models"
)

func TestParseRelationshipTag_FromStruct(t *testing.T) {
	type sample struct {
		_Relationships struct{} `relationship:"collection:orders,field:customerId,message:Không thể xóa vì còn %d đơn hàng tham chiếu"`
		Name           string
	}
	rels := ParseRelationshipTag(reflect.TypeOf(sample{}))
	if len(rels) != 1 {
		t.Fatalf("số quan hệ = %d, muốn 1", len(rels))
	}
	if rels[0].CollectionName != "orders" {
		t.Errorf("collection = %q, muốn orders", rels[0].CollectionName)
	}
	if rels[0].FieldName != "customerId" {
		t.Errorf("field = %q, muốn customerId", rels[0].FieldName)
	}
	if rels[0].ErrorMessage == "" {
		t.Error("errorMessage không được rỗng")
	}
}

func TestParseRelationshipTag_MultipleAndDefaults(t *testing.T) {
	type sample struct {
		_Relationships struct{} `relationship:"collection:a,field:x|collection:b,field:y"`
	}
	rels := ParseRelationshipTag(reflect.TypeOf(sample{}))
	if len(rels) != 2 {
		t.Fatalf("số quan hệ = %d, muốn 2", len(rels))
	}
	// Message mặc định khi tag không khai báo
	if rels[0].ErrorMessage == "" || rels[1].ErrorMessage == "" {
		t.Error("quan hệ thiếu message phải nhận message mặc định")
	}
}

func TestParseRelationshipTag_NoTag(t *testing.T) {
	type sample struct{ Name string }
	if rels := ParseRelationshipTag(reflect.TypeOf(sample{})); len(rels) != 0 {
		t.Errorf("struct không có tag phải trả 0 quan hệ, nhận %d", len(rels))
	}
}

func TestParseRelationshipTag_DomainModels(t *testing.T) {
	// Role bị chặn xóa khi còn user tham chiếu qua roleIds
	rels := ParseRelationshipTag(reflect.TypeOf(adminmodels.Role{}))
	if len(rels) == 0 {
		t.Fatal("Role phải khai báo quan hệ với users")
	}
	if rels[0].CollectionName != "users" || rels[0].FieldName != "roleIds" {
		t.Errorf("quan hệ của Role = %+v, muốn collection users, field roleIds", rels[0])
	}

	// OrganisationUnit bị chặn xóa khi còn role gắn tag
	rels = ParseRelationshipTag(reflect.TypeOf(adminmodels.OrganisationUnit{}))
	if len(rels) == 0 {
		t.Fatal("OrganisationUnit phải khai báo quan hệ với roles")
	}
	if rels[0].CollectionName != "roles" || rels[0].FieldName != "organisationUnitIds" {
		t.Errorf("quan hệ của OrganisationUnit = %+v, muốn collection roles, field organisationUnitIds", rels[0])
	}
}
