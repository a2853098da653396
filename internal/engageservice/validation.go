package engageservice

import (
	"regexp"

	"github.com/draftwerk/studiohub/internal/common"
)

var EmailRX = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateName(v *common.Validator, name string) {
	v.Check(name != "", "name", "must be provided")
	v.Check(v.CheckStringLength(name, 2, 100), "name", "must be between 2 and 100 characters long")
}

func validateEmail(v *common.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(EmailRX.MatchString(email), "email", "must be a valid email address")
}

func validateMessage(v *common.Validator, message string) {
	v.Check(message != "", "message", "must be provided")
	v.Check(len(message) <= 5000, "message", "must not be longer than 5000 characters")
}

func validateStars(v *common.Validator, stars int) {
	v.Check(v.CheckIntRange(stars, 1, 5), "stars", "must be between 1 and 5")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
