package moneyfmt

import "github.com/cloudfoundry-attic/jibber_jabber"

// detectLanguage asks the host environment for its preferred language.
// An undetermined environment maps to the empty string rather than an
// error, so construction proceeds with the fallback language.
func detectLanguage() (string, error) {
	lang, err := jibber_jabber.DetectLanguage()
	if err != nil {
		return "", nil
	}
	return lang, nil
}
