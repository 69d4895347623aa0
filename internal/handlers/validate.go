package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for request fields.
const (
	maxUsernameLen     = 100
	maxPasswordLen     = 200
	maxCategoryNameLen = 100
	maxTitleLen        = 300
	maxTagsLen         = 500
	maxContentLen      = 100_000
)

// validateLogin checks login inputs and returns the first error found.
func validateLogin(username, password string) string {
	if username == "" || password == "" {
		return "username and password are required"
	}
	if utf8.RuneCountInString(username) > maxUsernameLen {
		return "username is too long (max 100 characters)"
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return "password is too long (max 200 characters)"
	}
	return ""
}

// validateCategoryName checks a trimmed category name.
func validateCategoryName(name string) string {
	if name == "" {
		return "category name is required"
	}
	if utf8.RuneCountInString(name) > maxCategoryNameLen {
		return "category name is too long (max 100 characters)"
	}
	return ""
}

// validateWriting checks the fields shared by drafts and posts:
// trimmed title and content plus optional tags.
func validateWriting(title string, tags *string, content string) string {
	if title == "" {
		return "title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "title is too long (max 300 characters)"
	}
	if tags != nil && utf8.RuneCountInString(*tags) > maxTagsLen {
		return "tags are too long (max 500 characters)"
	}
	if content == "" {
		return "content is required"
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "content is too long (max 100,000 characters)"
	}
	return ""
}

// normalizeTags trims the optional tags field, collapsing an empty or
// whitespace-only value to null.
func normalizeTags(tags *string) *string {
	if tags == nil {
		return nil
	}
	t := strings.TrimSpace(*tags)
	if t == "" {
		return nil
	}
	return &t
}
