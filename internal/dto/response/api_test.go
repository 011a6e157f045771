package response

import (
	"testing"
	"time"
)

func TestNewSuccess(t *testing.T) {
	data := map[string]string{"key": "value"}
	message := "Operation successful"

	resp := NewSuccess(data, message)

	if !resp.Success {
		t.Error("NewSuccess should set Success to true")
	}
	if resp.Message != message {
		t.Errorf("NewSuccess Message = %v, want %v", resp.Message, message)
	}
	if resp.Data == nil {
		t.Error("NewSuccess should set Data")
	}
	if resp.Timestamp.IsZero() {
		t.Error("NewSuccess should set Timestamp")
	}
}

func TestNewSuccessWithData(t *testing.T) {
	data := []int{1, 2, 3}

	resp := NewSuccessWithData(data)

	if !resp.Success {
		t.Error("NewSuccessWithData should set Success to true")
	}
	if resp.Message != "" {
		t.Errorf("NewSuccessWithData Message = %v, want empty", resp.Message)
	}
	if len(resp.Data) != 3 {
		t.Errorf("NewSuccessWithData Data length = %v, want 3", len(resp.Data))
	}
	if resp.Timestamp.IsZero() {
		t.Error("NewSuccessWithData should set Timestamp")
	}
}

func TestNewError(t *testing.T) {
	message := "An error occurred"

	resp := NewError[any](message)

	if resp.Success {
		t.Error("NewError should set Success to false")
	}
	if resp.Message != message {
		t.Errorf("NewError Message = %v, want %v", resp.Message, message)
	}
	if resp.Timestamp.IsZero() {
		t.Error("NewError should set Timestamp")
	}
}

func TestNewErrorWithDetails(t *testing.T) {
	message := "Validation failed"
	errors := map[string]string{
		"email": "invalid format",
		"name":  "required",
	}

	resp := NewErrorWithDetails[any](message, errors)

	if resp.Success {
		t.Error("NewErrorWithDetails should set Success to false")
	}
	if resp.Message != message {
		t.Errorf("NewErrorWithDetails Message = %v, want %v", resp.Message, message)
	}
	if resp.Errors == nil {
		t.Error("NewErrorWithDetails should set Errors")
	}
	if resp.Timestamp.IsZero() {
		t.Error("NewErrorWithDetails should set Timestamp")
	}
}

func TestApiResponse_GenericTypes(t *testing.T) {
	// Test with string data
	strResp := NewSuccess("hello", "string data")
	if strResp.Data != "hello" {
		t.Errorf("String data = %v, want hello", strResp.Data)
	}

	// Test with int data
	intResp := NewSuccess(42, "int data")
	if intResp.Data != 42 {
		t.Errorf("Int data = %v, want 42", intResp.Data)
	}

	// Test with struct data
	type User struct {
		ID   int
		Name string
	}
	user := User{ID: 1, Name: "Test"}
	structResp := NewSuccess(user, "struct data")
	if structResp.Data.ID != 1 {
		t.Errorf("Struct data ID = %v, want 1", structResp.Data.ID)
	}

	// Test with slice data
	sliceResp := NewSuccess([]string{"a", "b", "c"}, "slice data")
	if len(sliceResp.Data) != 3 {
		t.Errorf("Slice data length = %v, want 3", len(sliceResp.Data))
	}
}

func TestNewAppError(t *testing.T) {
	resp := NewAppError[any]("document was modified by someone else", "VERSION_CONFLICT")

	if resp.Success {
		t.Error("NewAppError should set Success to false")
	}
	codes, ok := resp.Errors.(map[string]string)
	if !ok || codes["code"] != "VERSION_CONFLICT" {
		t.Errorf("NewAppError Errors = %v, want code VERSION_CONFLICT", resp.Errors)
	}
}

func TestNewListResponse(t *testing.T) {
	resp := NewListResponse([]string{"a", "b"})
	if resp.Total != 2 {
		t.Errorf("Total = %v, want 2", resp.Total)
	}

	empty := NewListResponse[int](nil)
	if empty.Items == nil {
		t.Error("NewListResponse should never return nil items")
	}
	if empty.Total != 0 {
		t.Errorf("Total = %v, want 0", empty.Total)
	}
}

func TestApiResponse_Timestamp(t *testing.T) {
	before := time.Now()
	resp := NewSuccess("test", "message")
	after := time.Now()

	if resp.Timestamp.Before(before) || resp.Timestamp.After(after) {
		t.Errorf("Timestamp = %v, should be between %v and %v", resp.Timestamp, before, after)
	}
}

func TestApiResponse_Struct(t *testing.T) {
	resp := ApiResponse[string]{
		Success:   true,
		Message:   "test message",
		Data:      "test data",
		Errors:    nil,
		Timestamp: time.Now(),
	}

	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.Message != "test message" {
		t.Errorf("Message = %v, want test message", resp.Message)
	}
	if resp.Data != "test data" {
		t.Errorf("Data = %v, want test data", resp.Data)
	}
}

func BenchmarkNewSuccess(b *testing.B) {
	data := map[string]string{"key": "value"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewSuccess(data, "success")
	}
}

func BenchmarkNewError(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewError[any]("error message")
	}
}
