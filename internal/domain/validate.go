package domain

import "strings"

func (in ArticleInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return Invalid("title is required")
	}
	return nil
}

func (in PageInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return Invalid("title is required")
	}
	return nil
}

func (in MemberInput) Validate() error {
	switch {
	case strings.TrimSpace(in.Email) == "":
		return Invalid("email is required")
	case strings.TrimSpace(in.FullName) == "":
		return Invalid("fullName is required")
	case !in.ShirtSize.Valid():
		return Invalid("shirtSize %q is not one of %v", in.ShirtSize, ShirtSizes())
	}
	return nil
}

func (p MemberPatch) Validate() error {
	if p.ShirtSize != nil && !p.ShirtSize.Valid() {
		return Invalid("shirtSize %q is not one of %v", *p.ShirtSize, ShirtSizes())
	}
	return nil
}

func (in MerchantInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return Invalid("name is required")
	}
	return nil
}

func (in CategoryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return Invalid("name is required")
	}
	return nil
}
