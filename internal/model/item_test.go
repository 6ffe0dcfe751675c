package model

import "testing"

func TestUpdateItemRequest_IsEmpty(t *testing.T) {
	if !(UpdateItemRequest{}).IsEmpty() {
		t.Error("zero request should be empty")
	}

	purchased := true
	req := UpdateItemRequest{Purchased: &purchased}
	if req.IsEmpty() {
		t.Error("request with purchased set should not be empty")
	}

	name := "Milk"
	req = UpdateItemRequest{Name: &name}
	if req.IsEmpty() {
		t.Error("request with name set should not be empty")
	}
}
