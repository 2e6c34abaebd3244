package models

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ContactTypeSocial marks contact methods that open in a new tab
const ContactTypeSocial = "social"

// ContactMethod represents one way of reaching the site owner
type ContactMethod struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	IconName string `json:"icon,omitempty"`
	URL      string `json:"url"`
}

// Icon is an entry of the closed icon vocabulary
type Icon struct {
	Key   string
	Class string
	Color string
}

// icons maps the backend's icon keys to Font Awesome classes
var icons = map[string]Icon{
	"fa-phone":     {Key: "fa-phone", Class: "fa-solid fa-phone", Color: "text-green-500"},
	"fa-envelope":  {Key: "fa-envelope", Class: "fa-solid fa-envelope", Color: "text-blue-500"},
	"fa-twitter":   {Key: "fa-twitter", Class: "fa-brands fa-twitter", Color: "text-blue-400"},
	"fa-facebook":  {Key: "fa-facebook", Class: "fa-brands fa-facebook", Color: "text-blue-600"},
	"fa-instagram": {Key: "fa-instagram", Class: "fa-brands fa-instagram", Color: "text-pink-500"},
	"fa-whatsapp":  {Key: "fa-whatsapp", Class: "fa-brands fa-whatsapp", Color: "text-green-500"},
	"fa-telegram":  {Key: "fa-telegram", Class: "fa-brands fa-telegram", Color: "text-blue-500"},
	"fa-linkedin":  {Key: "fa-linkedin", Class: "fa-brands fa-linkedin", Color: "text-blue-700"},
	"fa-github":    {Key: "fa-github", Class: "fa-brands fa-github", Color: "text-gray-800"},
	"fa-youtube":   {Key: "fa-youtube", Class: "fa-brands fa-youtube", Color: "text-red-600"},
	"fa-discord":   {Key: "fa-discord", Class: "fa-brands fa-discord", Color: "text-purple-600"},
	"fa-tiktok":    {Key: "fa-tiktok", Class: "fa-brands fa-tiktok", Color: "text-black"},
	"fa-snapchat":  {Key: "fa-snapchat", Class: "fa-brands fa-snapchat", Color: "text-yellow-400"},
	"fa-pinterest": {Key: "fa-pinterest", Class: "fa-brands fa-pinterest", Color: "text-red-700"},
	"fa-skype":     {Key: "fa-skype", Class: "fa-brands fa-skype", Color: "text-blue-400"},
	"fa-reddit":    {Key: "fa-reddit", Class: "fa-brands fa-reddit", Color: "text-orange-600"},
}

// LookupIcon returns the icon registered under key
func LookupIcon(key string) (Icon, bool) {
	icon, ok := icons[key]
	return icon, ok
}

// ItemID returns the contact method identifier
func (c ContactMethod) ItemID() int { return c.ID }

// Kind returns KindContact
func (c ContactMethod) Kind() Kind { return KindContact }

// ItemTitle returns the contact method title
func (c ContactMethod) ItemTitle() string { return c.Title }

// ItemDescription is empty; contact methods carry no long-form text
func (c ContactMethod) ItemDescription() string { return "" }

// CategoryID always reports uncategorized
func (c ContactMethod) CategoryID() (int, bool) { return 0, false }

// Icon returns the icon for this method. Nil when the key is absent or not
// part of the vocabulary.
func (c ContactMethod) Icon() *Icon {
	icon, ok := LookupIcon(c.IconName)
	if !ok {
		return nil
	}
	return &icon
}

// IsSocial reports whether the link should open in a new tab
func (c ContactMethod) IsSocial() bool {
	return c.Type == ContactTypeSocial
}

// TypeLabel upper-cases the first letter of the type and leaves the rest
// as is ("other" -> "Other", "social media" -> "Social media")
func (c ContactMethod) TypeLabel() string {
	r, size := utf8.DecodeRuneInString(c.Type)
	if r == utf8.RuneError {
		return c.Type
	}
	// Casers are stateful, so one per call.
	return cases.Upper(language.Und).String(string(r)) + c.Type[size:]
}
