package analyses

import "errors"

var ErrNotFound = errors.New("analysis not found")
