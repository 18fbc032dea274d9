package models

import (
	"fmt"
	"strings"

	"apod-wallpaper/utils"
)

// Caption is the text block burned into the published image
type Caption struct {
	Title string
	Date  string
	Lines []string // explanation, already wrapped
}

// NewCaption builds the caption for a record, wrapping the explanation
// to maxWords words per line
func NewCaption(apod *APOD, maxWords int) Caption {
	return Caption{
		Title: apod.Title,
		Date:  apod.Date,
		Lines: utils.WrapWords(apod.Explanation, maxWords),
	}
}

// Text returns the header block followed by the wrapped explanation
func (c Caption) Text() string {
	return fmt.Sprintf("Title: %s\nAPOD: %s\nExplanation:\n%s", c.Title, c.Date, strings.Join(c.Lines, "\n"))
}
