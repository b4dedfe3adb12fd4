package validation

import "strings"

// SignUpInput is the body of a sign-up request.
type SignUpInput struct {
	Name     *string `json:"name" validate:"required,min=1,max=100"`
	Email    *string `json:"email" validate:"required,email,max=254"`
	Password *string `json:"password" validate:"required,min=8,max=72"`
}

// SignInInput is the body of a sign-in request.
type SignInInput struct {
	Email    *string `json:"email" validate:"required,min=1"`
	Password *string `json:"password" validate:"required,min=1"`
}

// Credentials are validated sign-up or sign-in fields.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// SignUp decodes and validates a sign-up body.
func SignUp(body []byte) (*Credentials, error) {
	var in SignUpInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	in.Name = trimmed(in.Name)
	in.Email = trimmed(in.Email)
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	return &Credentials{
		Name:     *in.Name,
		Email:    strings.ToLower(*in.Email),
		Password: *in.Password,
	}, nil
}

// SignIn decodes and validates a sign-in body.
func SignIn(body []byte) (*Credentials, error) {
	var in SignInInput
	errs, err := decode(body, &in)
	if err != nil {
		return nil, err
	}
	in.Email = trimmed(in.Email)
	if err := check(&in, errs); err != nil {
		return nil, err
	}
	return &Credentials{
		Email:    strings.ToLower(*in.Email),
		Password: *in.Password,
	}, nil
}
