package validation

import "inkwell/internal/models"

// Per-resource rule sets. Message text is part of the API contract and is
// kept stable.

// PostFields returns the rule list for creating or updating a post.
func PostFields(title, text, privacy string) []Field {
	return []Field{
		{
			Name:  "title",
			Value: title,
			Checks: []Check{
				Required("Title must not be empty."),
				MaxLen(50, "Title must not be greater than 50 characters."),
			},
		},
		{
			Name:  "text",
			Value: text,
			Checks: []Check{
				Required("Body must not be empty."),
				MaxLen(5000, "Body must not be greater than 5000 characters."),
			},
		},
		{
			Name:  "privacy",
			Value: privacy,
			Checks: []Check{
				OneOf([]string{
					string(models.PrivacyPrivate),
					string(models.PrivacyPublic),
				}, "Invalid value"),
			},
		},
	}
}

// CommentFields returns the rule list for creating or updating a comment.
func CommentFields(text string) []Field {
	return []Field{
		{
			Name:  "text",
			Value: text,
			Checks: []Check{
				Required("Comment must not be empty."),
				MaxLen(2500, "Comment must not be greater than 2500 characters."),
			},
		},
	}
}

// UserFields returns the rule list for registering or updating a user.
// Uniqueness of username/email is checked separately by the service and
// folded into the same failure list.
func UserFields(firstName, lastName, username, email, password, passwordConfirmation string) []Field {
	return []Field{
		{
			Name:  "first_name",
			Value: firstName,
			Checks: []Check{
				MinLen(2, "First Name must not be less than 2 characters."),
				MaxLen(25, "First Name must not be greater than 25 characters."),
			},
		},
		{
			Name:  "last_name",
			Value: lastName,
			Checks: []Check{
				MinLen(2, "Last Name must not be less than 2 characters."),
				MaxLen(25, "Last Name must not be greater than 25 characters."),
			},
		},
		{
			Name:  "username",
			Value: username,
			Checks: []Check{
				MinLen(2, "Username must not be less than 2 characters."),
				MaxLen(25, "Username must not be greater than 25 characters."),
			},
		},
		{
			Name:  "email",
			Value: email,
			Checks: []Check{
				Email("Email does not match."),
			},
		},
		{
			Name:   "password",
			Value:  password,
			NoTrim: true,
			Checks: []Check{
				StrongPassword("Password is not strong enough."),
			},
		},
		{
			Name:   "password_confirmation",
			Value:  passwordConfirmation,
			NoTrim: true,
			Checks: []Check{
				Equals(password, "Password does not match."),
			},
		},
	}
}

// LoginFields returns the rule list for the login request.
func LoginFields(username, password string) []Field {
	return []Field{
		{
			Name:   "username",
			Value:  username,
			Checks: []Check{Required("Invalid value")},
		},
		{
			Name:   "password",
			Value:  password,
			Checks: []Check{Required("Invalid value")},
		},
	}
}
