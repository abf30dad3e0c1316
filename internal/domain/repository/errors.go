package repository

import "errors"

// ErrNotFound yozuv topilmadi
var ErrNotFound = errors.New("not found")
