package models

import (
	"fmt"
	"strings"
)

// Role selects how trailing columns are interpreted.
type Role string

const (
	// RoleSubject is the subject-teacher mode (GVBM): one score or rating per student.
	RoleSubject Role = "GVBM"
	// RoleHomeroom is the homeroom-teacher mode (GVCN): KQHT, KQRL and absences.
	RoleHomeroom Role = "GVCN"
)

// ParseRole parses a role name. It accepts the short codes and the English names.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "subject", "gvbm":
		return RoleSubject, nil
	case "homeroom", "gvcn":
		return RoleHomeroom, nil
	default:
		return "", fmt.Errorf("invalid role: %s (must be subject or homeroom)", s)
	}
}

func (r Role) String() string { return string(r) }
