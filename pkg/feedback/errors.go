package feedback

import "errors"

// ErrFieldNotFound is logged when focus is requested for a field without inputs.
var ErrFieldNotFound = errors.New("feedback: field does not exist")
