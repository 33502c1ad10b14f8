package model

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Contact form length limits.
const (
	MinNameLength    = 2
	MinMessageLength = 10
)

// InquiryCategory is one selectable topic on the contact form.
type InquiryCategory struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var inquiryCategories = []InquiryCategory{
	{Value: "general", Label: "General Inquiry"},
	{Value: "maintenance", Label: "Maintenance Request"},
	{Value: "noise", Label: "Noise Complaint"},
	{Value: "bylaws", Label: "By-law Query"},
	{Value: "financial", Label: "Financial Question"},
	{Value: "other", Label: "Other"},
}

// InquiryCategories returns the fixed category list in display order.
// The returned slice is a copy.
func InquiryCategories() []InquiryCategory {
	out := make([]InquiryCategory, len(inquiryCategories))
	copy(out, inquiryCategories)
	return out
}

// IsInquiryCategory reports whether value names a known category.
func IsInquiryCategory(value string) bool {
	for _, c := range inquiryCategories {
		if c.Value == value {
			return true
		}
	}
	return false
}

// ContactSubmission is the JSON body of POST /api/contact.
// It is validated and logged, never stored.
type ContactSubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	UnitNumber  string `json:"unitNumber"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	CopyToEmail bool   `json:"copyToEmail,omitempty"`
}

// Validate checks every field independently and returns a *ValidationError
// listing all failures, or nil. Lengths are counted on the raw values.
func (s *ContactSubmission) Validate() error {
	var ve ValidationError

	if utf8.RuneCountInString(s.Name) < MinNameLength {
		ve.Add("name", "Name must be at least 2 characters.")
	}
	if !isEmail(s.Email) {
		ve.Add("email", "Please enter a valid email address.")
	}
	if s.UnitNumber == "" {
		ve.Add("unitNumber", "Please enter your unit number.")
	}
	switch {
	case s.Category == "":
		ve.Add("category", "Please select a category.")
	case !IsInquiryCategory(s.Category):
		ve.Add("category", "Please select a valid category.")
	}
	if utf8.RuneCountInString(s.Message) < MinMessageLength {
		ve.Add("message", "Message must be at least 10 characters.")
	}

	return ve.OrNil()
}

// isEmail accepts a bare addr-spec only ("a@b.example"), rejecting display
// names and angle-bracket forms that net/mail would otherwise parse.
func isEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}
