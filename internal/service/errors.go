package service

import "errors"

var (
	ErrMissingCredentials = errors.New("missing username or password")
	ErrWrongPassword      = errors.New("wrong password")

	ErrInvalidRecipeData = errors.New("invalid recipe data")
)
