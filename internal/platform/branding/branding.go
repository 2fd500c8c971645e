// Package branding holds product naming shared by every surface.
package branding

import "strings"

// AppName is the product name shown in titles and chrome.
const AppName = "Tablekit"

// PageTitle appends the product name to title unless it already ends with it.
func PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == AppName {
		return AppName
	}
	if strings.HasSuffix(title, "| "+AppName) {
		return title
	}
	title = strings.TrimSuffix(title, " - "+AppName)
	return title + " | " + AppName
}
