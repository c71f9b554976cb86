package models

import (
	"errors"
	"strings"
)

// EducationLevel is the closed set of education levels a profile can declare.
type EducationLevel string

// Supported education levels
const (
	EducationSecondary EducationLevel = "secondary"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
	EducationOther     EducationLevel = "other"
)

// DefaultEducationLevel is assigned when a profile does not declare one.
const DefaultEducationLevel = EducationBachelor

// ErrUnknownEducationLevel is returned by ParseEducationLevel for values outside the enum.
var ErrUnknownEducationLevel = errors.New("unknown education level")

// EducationLevels lists every level in display order.
func EducationLevels() []EducationLevel {
	return []EducationLevel{EducationSecondary, EducationBachelor, EducationMaster, EducationDoctorate, EducationOther}
}

// ParseEducationLevel matches s case-insensitively against the enum.
func ParseEducationLevel(s string) (EducationLevel, error) {
	switch EducationLevel(strings.ToLower(strings.TrimSpace(s))) {
	case EducationSecondary:
		return EducationSecondary, nil
	case EducationBachelor:
		return EducationBachelor, nil
	case EducationMaster:
		return EducationMaster, nil
	case EducationDoctorate:
		return EducationDoctorate, nil
	case EducationOther:
		return EducationOther, nil
	default:
		return "", ErrUnknownEducationLevel
	}
}

// Label returns a human readable name.
func (e EducationLevel) Label() string {
	switch e {
	case EducationSecondary:
		return "Secondary school"
	case EducationBachelor:
		return "Bachelor's degree"
	case EducationMaster:
		return "Master's degree"
	case EducationDoctorate:
		return "Doctorate"
	case EducationOther:
		return "Other"
	default:
		return string(e)
	}
}
