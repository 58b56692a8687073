package device

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

const (
	chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	firefoxUA       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0"
)

// DeviceSuite tests the user-agent classification behind the browser and os
// record fields.
//
// Justification: every record carries a browser/os pair derived from the
// sampled user agent, so a parser regression would corrupt whole batches.
type DeviceSuite struct {
	suite.Suite
}

func TestDeviceSuite(t *testing.T) {
	suite.Run(t, new(DeviceSuite))
}

func (s *DeviceSuite) TestClassifyKnownBrowsers() {
	browser, os := Classify(chromeWindowsUA)
	s.Equal("Chrome", browser)
	s.Contains(os, "Windows")

	browser, _ = Classify(firefoxUA)
	s.Equal("Firefox", browser)
}

func (s *DeviceSuite) TestClassifyDegradesToUnknown() {
	browser, os := Classify("")
	s.Equal("Unknown", browser)
	s.Equal("Unknown", os)

	browser, os = Classify("definitely-not-a-user-agent")
	s.NotEmpty(browser)
	s.NotEmpty(os)
}

func (s *DeviceSuite) TestDescribe() {
	s.Equal("Unknown Device", Describe(""))
	s.Contains(Describe(chromeWindowsUA), "Chrome on ")
}
