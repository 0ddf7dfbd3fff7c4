package analysis

import "errors"

var ErrNoData = errors.New("analysis: not enough data")
