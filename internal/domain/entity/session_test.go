package entity

import "testing"

func TestNewSession_MergesRole(t *testing.T) {
	payload := map[string]any{"_id": "u1", "name": "A", "userType": "admin"}

	s := NewSession(payload, RoleStudent)

	want := map[string]any{"_id": "u1", "name": "A", "userType": "student"}
	if len(s) != len(want) {
		t.Fatalf("NewSession() = %v, want %v", s, want)
	}
	for k, v := range want {
		if s[k] != v {
			t.Errorf("field %s = %v, want %v", k, s[k], v)
		}
	}
	if payload["userType"] != "admin" {
		t.Error("NewSession() mutated the payload")
	}
}

func TestSession_ID(t *testing.T) {
	tests := []struct {
		name string
		s    Session
		want string
		auth bool
	}{
		{name: "nil", s: nil, want: "", auth: false},
		{name: "missing", s: Session{"name": "A"}, want: "", auth: false},
		{name: "empty", s: Session{"_id": ""}, want: "", auth: false},
		{name: "null", s: Session{"_id": nil}, want: "", auth: false},
		{name: "zero", s: Session{"_id": 0.0}, want: "", auth: false},
		{name: "false", s: Session{"_id": false}, want: "", auth: false},
		{name: "numeric", s: Session{"_id": 42.0}, want: "42", auth: true},
		{name: "int", s: Session{"_id": 7}, want: "7", auth: true},
		{name: "object", s: Session{"_id": map[string]any{"$oid": "abc"}}, want: "map[$oid:abc]", auth: true},
		{name: "present", s: Session{"_id": "u1"}, want: "u1", auth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.ID(); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
			if got := tt.s.IsAuthenticated(); got != tt.auth {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.auth)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in     string
		want   Role
		wantOK bool
	}{
		{in: "staff", want: RoleStaff, wantOK: true},
		{in: " Student ", want: RoleStudent, wantOK: true},
		{in: "", want: RoleNone, wantOK: false},
		{in: "admin", want: Role("admin"), wantOK: false},
	}

	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
