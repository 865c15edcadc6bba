package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserJSONNeverExposesPassword(t *testing.T) {
	user := User{ID: 1, Username: "ana", Role: "alumno", HashedPassword: "$2a$11$secret"}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := string(data)
	if strings.Contains(out, "password") || strings.Contains(out, "secret") {
		t.Errorf("serialized user leaks password material: %s", out)
	}
}
