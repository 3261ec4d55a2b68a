// Package html extracts indexable fields from crawled HTML pages.
// It pulls the title, the visible body text, and the anchor text of links,
// dropping scripts, styles and other non-rendered content.
package html
