package moneyfmt

import "errors"

// ErrUnknownLocale indicates a currency registration against a language
// code the registry has no entry for.
var ErrUnknownLocale = errors.New("moneyfmt: unknown locale")
