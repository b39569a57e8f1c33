package optimizations

import "errors"

var ErrNotFound = errors.New("optimization not found")
