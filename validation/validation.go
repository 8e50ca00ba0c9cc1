// Package validation holds the payload checks that run before any mutation
// is attempted. Every function is a pure mapping from payload to
// (valid, message); the one store-dependent check, email uniqueness, is
// injected as a lookup so the package itself never touches persistence.
package validation

import "regexp"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// EmailFormat reports whether the address is shaped like local@domain.tld.
func EmailFormat(email string) bool {
	return emailRegex.MatchString(email)
}

// User validates a user-creation payload. emailTaken must perform a fresh
// lookup; it is advisory only, the store's unique constraint is the actual
// guarantee under concurrent creates.
func User(username, email *string, emailTaken func(string) bool) (bool, string) {
	if email == nil || !EmailFormat(*email) {
		return false, "Invalid or missing email format"
	}
	if emailTaken(*email) {
		return false, "Email already in use"
	}
	if username == nil || *username == "" {
		return false, "Username is required"
	}
	return true, ""
}

// Project validates a project-creation payload.
func Project(title, description, image *string, userID *uint) (bool, string) {
	if title == nil || description == nil || image == nil || userID == nil {
		return false, "Project must have a title and description"
	}
	if len(*title) < 5 {
		return false, "Project title must be at least 5 characters long"
	}
	if len(*description) < 10 {
		return false, "Project description must be at least 10 characters long"
	}
	if *image == "" {
		return false, "Project must have an image"
	}
	if *userID == 0 {
		return false, "Invalid user id"
	}
	return true, ""
}

// Skill validates a skill-creation payload.
func Skill(name, details *string) (bool, string) {
	if name == nil || *name == "" || details == nil || *details == "" {
		return false, "Skill must have a name and details"
	}
	return true, ""
}
