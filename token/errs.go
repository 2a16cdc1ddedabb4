package token

import "errors"

var ErrXMLName = errors.New("invalid xml name")
