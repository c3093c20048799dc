package infrastructure

import "strings"

// FormatYTDLPError turns yt-dlp's stderr into a display string. Known failure
// conditions get a remediation block appended; anything else passes through
// unchanged. Conditions are checked in a fixed priority order and the first
// match wins.
func FormatYTDLPError(stderr string) string {
	switch {
	case strings.Contains(stderr, "Sign in to confirm you're not a bot"):
		return stderr + "\n\nSuggested fixes:\n" +
			"1. Make sure Chrome is signed in to YouTube\n" +
			"2. Try a different video link\n" +
			"3. Adjust the anti-detection options in advanced settings\n" +
			"4. If the problem persists, wait a while and retry"

	case strings.Contains(stderr, "429") || strings.Contains(stderr, "Too Many Requests"):
		return stderr + "\n\nSuggested fixes:\n" +
			"1. Increase the request interval in advanced settings\n" +
			"2. Wait a few minutes and retry\n" +
			"3. Try connecting through a proxy"

	case strings.Contains(stderr, "cookies") || strings.Contains(stderr, "login"):
		return stderr + "\n\nSuggested fixes:\n" +
			"1. Make sure the browser is logged in to the relevant account\n" +
			"2. Check the browser's cookie permissions\n" +
			"3. Try exporting a cookie file manually"

	case strings.Contains(stderr, "Impersonate target") && strings.Contains(stderr, "not available"):
		return stderr + "\n\nSuggested fixes:\n" +
			"1. Run: python3 -m pip install curl_cffi\n" +
			"2. Or reinstall: python3 -m pip install --upgrade 'yt-dlp[curl-cffi]'\n" +
			"3. See the project documentation for details"

	case strings.Contains(stderr, "ERROR: [youtube]"):
		return stderr + "\n\nSuggested fixes:\n" +
			"1. Check that the video link is correct\n" +
			"2. Refresh the page and copy the link again\n" +
			"3. The video may be region-locked or deleted"

	default:
		return stderr
	}
}
