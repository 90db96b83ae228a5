package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors returned by repositories instead of raw gorm errors.
// Missing entities surface as ErrNotFound; unique-constraint violations
// from the store surface as ErrDuplicate.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
