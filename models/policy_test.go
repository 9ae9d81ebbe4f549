package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPolicyJSONRoundTripKeepsExtraFieldsTopLevel(t *testing.T) {
	in := []byte(`{"policyTitle":"Term Life","basePremium":50,"termLengthYears":20,"smoker":false}`)

	var p Policy
	if err := json.Unmarshal(in, &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if p.PolicyTitle != "Term Life" || p.BasePremium != 50 {
		t.Errorf("named fields = %+v", p)
	}
	if p.Extra["termLengthYears"] != 20.0 || p.Extra["smoker"] != false {
		t.Errorf("Extra = %v, want unknown fields captured", p.Extra)
	}
	if _, ok := p.Extra["policyTitle"]; ok {
		t.Errorf("named field leaked into Extra: %v", p.Extra)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(out, &body); err != nil {
		t.Fatalf("decode marshaled policy: %v", err)
	}
	if body["termLengthYears"] != 20.0 {
		t.Errorf("termLengthYears = %v, want 20 at top level", body["termLengthYears"])
	}
	if _, nested := body["extra"]; nested {
		t.Errorf("extra fields nested: %s", out)
	}
	if _, ok := body["id"]; ok {
		t.Errorf("zero id serialized: %s", out)
	}
}

func TestPolicyMarshalNamedFieldsWinOverExtras(t *testing.T) {
	p := Policy{
		PolicyTitle: "Term Life",
		Extra:       map[string]any{"policyTitle": "Shadow"},
	}
	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(out, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["policyTitle"] != "Term Life" {
		t.Errorf("policyTitle = %v, want named field", body["policyTitle"])
	}
}

func TestPolicyRefResolve(t *testing.T) {
	id := bson.NewObjectID()
	ref := PolicyRef(id.Hex())

	resolved, err := ref.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if resolved != id {
		t.Errorf("Resolve() = %v, want %v", resolved, id)
	}
}

func TestPolicyRefResolveRejectsMalformedHex(t *testing.T) {
	for _, raw := range []string{"", "xyz", "0123"} {
		if _, err := PolicyRef(raw).Resolve(); err == nil {
			t.Errorf("Resolve(%q) succeeded, want error", raw)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleAgent, RoleCustomer} {
		if !ValidRole(r) {
			t.Errorf("ValidRole(%q) = false", r)
		}
	}
	for _, r := range []Role{"", "superuser", "Admin"} {
		if ValidRole(r) {
			t.Errorf("ValidRole(%q) = true", r)
		}
	}
}
