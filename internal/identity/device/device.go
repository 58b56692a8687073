// Package device turns user-agent strings into the browser and os names
// stored on records and printed in request logs.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// Classify splits a user-agent string into browser and os display names.
// Either side degrades to "Unknown" when the string does not parse.
func Classify(userAgentString string) (browser, os string) {
	if userAgentString == "" {
		return "Unknown", "Unknown"
	}

	ua := useragent.New(userAgentString)
	browser, _ = ua.Browser()
	browser = strings.TrimSpace(browser)
	if browser == "" {
		browser = "Unknown"
	}

	os = strings.TrimSpace(ua.OS())
	if os == "" {
		os = "Unknown"
	}
	return browser, os
}

// Describe renders "Browser on OS" for request logs. Mobile devices report
// their platform when the parser exposes one.
func Describe(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)
	browser, _ := ua.Browser()
	if browser == "" {
		browser = "Unknown Browser"
	}

	if ua.Mobile() {
		if platform := ua.Platform(); platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	os := ua.OS()
	if os == "" {
		os = "Unknown OS"
	}
	return strings.TrimSpace(browser + " on " + os)
}
