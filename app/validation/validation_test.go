package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/mattmosz/APP-TESO/app/models"
)

func TestCheckStudent(t *testing.T) {
	if err := Check(&models.Student{FullName: "Ana Pérez"}); err != nil {
		t.Errorf("valid student rejected: %v", err)
	}

	err := Check(&models.Student{})
	if err == nil {
		t.Fatal("expected error for empty full_name")
	}
	if !strings.Contains(err.Error(), "fullname is required") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestCheckActivity(t *testing.T) {
	a := &models.Activity{
		Name:          "Excursión",
		Date:          time.Now(),
		RequiresFee:   true,
		FeePerStudent: 50,
	}
	if err := Check(a); err != nil {
		t.Errorf("valid activity rejected: %v", err)
	}

	a.FeePerStudent = -1
	if err := Check(a); err == nil {
		t.Error("expected error for negative fee")
	}
}

func TestCheckPayment(t *testing.T) {
	p := &models.Payment{
		StudentID:  "3f0d8f0a-16a1-4f3e-9f2e-0b9d13d3a111",
		ActivityID: "3f0d8f0a-16a1-4f3e-9f2e-0b9d13d3a222",
		Amount:     25,
	}
	if err := Check(p); err != nil {
		t.Errorf("valid payment rejected: %v", err)
	}

	p.StudentID = "not-a-uuid"
	err := Check(p)
	if err == nil {
		t.Fatal("expected error for malformed student id")
	}
	if !strings.Contains(err.Error(), "must be a valid id") {
		t.Errorf("unexpected message: %v", err)
	}

	p.StudentID = "3f0d8f0a-16a1-4f3e-9f2e-0b9d13d3a111"
	p.Amount = -5
	if err := Check(p); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestCheckAttachment(t *testing.T) {
	att := &models.Attachment{
		Filename:   "recibo.pdf",
		Mimetype:   "application/pdf",
		Base64Data: "aG9sYQ==",
	}
	if err := Check(att); err != nil {
		t.Errorf("valid attachment rejected: %v", err)
	}

	att.Base64Data = "!!! not base64 !!!"
	if err := Check(att); err == nil {
		t.Error("expected error for malformed base64 payload")
	}
}

func TestCheckCollectsAllFailures(t *testing.T) {
	err := Check(&models.Expense{Amount: -1})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name is required") || !strings.Contains(msg, "amount must be at least 0") {
		t.Errorf("expected both failures in message, got: %v", msg)
	}
}
