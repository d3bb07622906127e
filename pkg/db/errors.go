package db

import (
	"errors"

	"gorm.io/gorm"
)

// IsNotFound reports whether the error is GORM's empty-result sentinel. The
// catalog read paths treat this as a miss, never as a failure.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
