package entity

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"
)

// Session field names shared with the portal backend
const (
	FieldID       = "_id"
	FieldUserType = "userType"
)

// Role is the portal user type; it selects the login endpoint.
type Role string

const (
	RoleNone    Role = ""
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
)

// Roles lists the selectable roles in display order
var Roles = []Role{RoleStaff, RoleStudent}

// Valid reports whether r is staff or student
func (r Role) Valid() bool {
	return r == RoleStaff || r == RoleStudent
}

// Title returns the label shown in the role selector
func (r Role) Title() string {
	switch r {
	case RoleStaff:
		return "Staff"
	case RoleStudent:
		return "Student"
	default:
		return ""
	}
}

// ParseRole parses a case-insensitive role name. ok is false for anything
// other than staff or student.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	return r, r.Valid()
}

// Session is the authenticated identity returned by the backend plus the
// userType tag. Its identity fields are not constrained here.
type Session map[string]any

// NewSession merges the login payload with the role tag. The role always
// overrides a userType sent by the backend.
func NewSession(payload map[string]any, role Role) Session {
	s := make(Session, len(payload)+1)
	maps.Copy(s, payload)
	s[FieldUserType] = string(role)
	return s
}

// ID returns the identity marker as text. Missing, null, false, zero and
// empty values count as no marker and return "".
func (s Session) ID() string {
	switch id := s[FieldID].(type) {
	case nil:
		return ""
	case string:
		return id
	case bool:
		if !id {
			return ""
		}
		return strconv.FormatBool(id)
	case float64:
		if id == 0 || math.IsNaN(id) {
			return ""
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		if id == 0 {
			return ""
		}
		return strconv.Itoa(id)
	default:
		return fmt.Sprint(id)
	}
}

// UserType returns the stored role tag
func (s Session) UserType() Role {
	r, _ := s[FieldUserType].(string)
	return Role(r)
}

// IsAuthenticated reports whether the session carries an identity marker
func (s Session) IsAuthenticated() bool {
	return s.ID() != ""
}

// Clone returns a shallow copy so holders never share one map
func (s Session) Clone() Session {
	if s == nil {
		return nil
	}
	return maps.Clone(s)
}
