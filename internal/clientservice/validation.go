package clientservice

import (
	"regexp"

	"github.com/draftwerk/studiohub/internal/common"
)

var UsernameRX = regexp.MustCompile("^[a-zA-Z0-9_.-]+$")

func validateUsername(v *common.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(v.CheckStringLength(username, 3, 50), "username", "must be between 3 and 50 characters long")
	v.Check(UsernameRX.MatchString(username), "username", "must only contain letters, numbers, dots, hyphens, and underscores")
}

func validatePassword(v *common.Validator, password string) {
	v.Check(password != "", "password", "must be provided")
	v.Check(v.CheckStringLength(password, 8, 72), "password", "must be between 8 and 72 characters long")
}

func validateRole(v *common.Validator, role string) {
	v.Check(role != "", "role", "must be provided")
	v.Check(role == "client" || role == "partner", "role", "must be either client or partner")
}
