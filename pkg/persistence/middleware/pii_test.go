package middleware_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aretw0/folio/pkg/persistence/middleware"
)

func TestPIIMiddleware_Masking(t *testing.T) {
	underlyingStore := NewMockStore()
	secureStore := middleware.NewPIIMiddleware([]string{"(?i)ssn", "password"})(underlyingStore)

	ctx := context.Background()
	blob := []byte(`{"documents":[{
		"id":"doc-1",
		"commonFieldData":{"subject":"Revocation","recipientName":"Bank"},
		"templateFieldData":{"declarantName":"Jane Doe","principalSSN":"999-99-9999","amount":12500.50}
	}],"user_password":"secret123"}`)
	original := append([]byte(nil), blob...)

	if err := secureStore.Put(ctx, "folioDocuments", blob); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if string(blob) != string(original) {
		t.Error("Middleware modified the caller's buffer")
	}

	stored, err := underlyingStore.Get(ctx, "folioDocuments")
	if err != nil {
		t.Fatalf("Underlying get failed: %v", err)
	}

	var doc struct {
		Documents []struct {
			Fields map[string]json.RawMessage `json:"templateFieldData"`
		} `json:"documents"`
		Password string `json:"user_password"`
	}
	if err := json.Unmarshal(stored, &doc); err != nil {
		t.Fatalf("Stored blob is not JSON: %v", err)
	}

	fields := doc.Documents[0].Fields
	if string(fields["principalSSN"]) != `"***"` {
		t.Errorf("Nested SSN should be masked, got: %s", fields["principalSSN"])
	}
	if string(fields["declarantName"]) != `"Jane Doe"` {
		t.Errorf("Name shouldn't be masked, got: %s", fields["declarantName"])
	}
	if string(fields["amount"]) != `12500.50` {
		t.Errorf("Numbers must keep their literal form, got: %s", fields["amount"])
	}
	if doc.Password != "***" {
		t.Errorf("Password should be masked, got: %v", doc.Password)
	}
}

func TestPIIMiddleware_PassThrough(t *testing.T) {
	underlyingStore := NewMockStore()
	secureStore := middleware.NewPIIMiddleware([]string{"ssn"})(underlyingStore)
	ctx := context.Background()

	for _, blob := range []string{`not json`, `{"safe":"value","b":1}`} {
		if err := secureStore.Put(ctx, "k", []byte(blob)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		stored, _ := underlyingStore.Get(ctx, "k")
		if string(stored) != blob {
			t.Errorf("Expected %s unchanged, got %s", blob, stored)
		}
	}
}

func TestChain_MaskThenEncrypt(t *testing.T) {
	underlyingStore := NewMockStore()
	store := middleware.Chain(underlyingStore,
		middleware.NewPIIMiddleware([]string{"(?i)ssn"}),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)}),
	)
	ctx := context.Background()

	if err := store.Put(ctx, "k", []byte(`{"principalSSN":"999-99-9999"}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"principalSSN":"***"}` {
		t.Errorf("Expected masked then decrypted blob, got %s", got)
	}
}

func TestPIIMiddleware_KeepsKeyOrder(t *testing.T) {
	underlyingStore := NewMockStore()
	secureStore := middleware.NewPIIMiddleware([]string{"(?i)ssn$"})(underlyingStore)
	ctx := context.Background()

	blob := `{"documents":[{"templateFieldData":{"zeta":"z","principalSSN":{"raw":"999"},"alpha":1e3,"notes":["<b>",true,null]}}]}`
	if err := secureStore.Put(ctx, "k", []byte(blob)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	stored, _ := underlyingStore.Get(ctx, "k")
	want := `{"documents":[{"templateFieldData":{"zeta":"z","principalSSN":"***","alpha":1e3,"notes":["<b>",true,null]}}]}`
	if string(stored) != want {
		t.Errorf("Expected %s, got %s", want, stored)
	}
}
