package blogservice

import (
	"regexp"

	"github.com/draftwerk/studiohub/internal/common"
)

var SlugRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 3, 150), "title", "must be between 3 and 150 characters long")
}

func validateSlug(v *common.Validator, slug string) {
	v.Check(slug != "", "slug", "must be provided")
	v.Check(SlugRX.MatchString(slug), "slug", "must be a lowercase hyphenated slug")
}

func validateContent(v *common.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
}

func validateAuthor(v *common.Validator, authorID int) {
	v.Check(authorID > 0, "author_id", "must be selected")
	if authorID > 0 {
		_, ok := AuthorByID(authorID)
		v.Check(ok, "author_id", "is not on the author roster")
	}
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
