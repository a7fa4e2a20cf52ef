package domain

// AuthProfile evaluates authentication levels for one user variant.
// Documents passed in must all belong to the user.
type AuthProfile interface {
	IsLegal() bool
	IsNatural() bool
	RequiredDocumentTypes() []DocumentType
	HasLightAuthentication() bool
	HasRegularAuthentication(docs []Document) bool
}

// Profile returns the evaluator matching the user's kind. A user whose
// variant payload is missing is evaluated with empty details.
func (u *User) Profile() AuthProfile {
	if u.IsLegal() {
		details := u.Legal
		if details == nil {
			details = &LegalDetails{}
		}
		return legalProfile{user: u, details: details}
	}
	details := u.Natural
	if details == nil {
		details = &NaturalDetails{}
	}
	return naturalProfile{user: u, details: details}
}

type naturalProfile struct {
	user    *User
	details *NaturalDetails
}

func (p naturalProfile) IsLegal() bool   { return false }
func (p naturalProfile) IsNatural() bool { return true }

func (p naturalProfile) RequiredDocumentTypes() []DocumentType {
	return []DocumentType{DocumentIdentityProof}
}

func (p naturalProfile) HasLightAuthentication() bool {
	u := p.user
	return u.DisplayName() != "" &&
		u.CountryOfResidence != "" &&
		u.Nationality != "" &&
		u.Birthday != nil
}

func (p naturalProfile) HasRegularAuthentication(docs []Document) bool {
	return present(p.user.Address) &&
		present(p.details.Occupation) &&
		present(p.details.IncomeRange) &&
		p.HasLightAuthentication() &&
		RequiredDocumentsValidated(p, docs)
}

type legalProfile struct {
	user    *User
	details *LegalDetails
}

func (p legalProfile) IsLegal() bool   { return true }
func (p legalProfile) IsNatural() bool { return false }

// RequiredDocumentTypes depends on the legal person type: businesses add
// a shareholder declaration, organizations add articles of association,
// sole traders add nothing.
func (p legalProfile) RequiredDocumentTypes() []DocumentType {
	types := []DocumentType{DocumentIdentityProof, DocumentRegistrationProof}
	switch p.details.LegalPersonType {
	case LegalPersonBusiness:
		types = append(types, DocumentShareholderDeclaration)
	case LegalPersonOrganization:
		types = append(types, DocumentArticlesOfAssociation)
	}
	return types
}

func (p legalProfile) HasLightAuthentication() bool {
	u := p.user
	d := p.details
	return d.LegalPersonType != "" &&
		d.BusinessName != "" &&
		d.BusinessEmail != "" &&
		present(u.FirstName) &&
		present(u.LastName) &&
		u.CountryOfResidence != "" &&
		u.Nationality != "" &&
		u.Birthday != nil
}

func (p legalProfile) HasRegularAuthentication(docs []Document) bool {
	return present(p.user.Address) &&
		present(p.details.HeadquartersAddress) &&
		present(p.user.Email) &&
		p.HasLightAuthentication() &&
		RequiredDocumentsValidated(p, docs)
}

// RequiredDocumentsValidated reports whether every required type has at
// least one VALIDATED document.
func RequiredDocumentsValidated(p AuthProfile, docs []Document) bool {
	for _, t := range p.RequiredDocumentTypes() {
		if !anyDocument(docs, t, func(d *Document) bool { return d.HasStatus(DocumentValidated) }) {
			return false
		}
	}
	return true
}

// DocumentTypesToReupload returns the required types the user has to
// upload again: at least one document of the type was REFUSED, none is
// VALIDATED or VALIDATION_ASKED, and none is still pending (nil status).
// The result follows DocumentTypes order.
func DocumentTypesToReupload(p AuthProfile, docs []Document) []DocumentType {
	required := make(map[DocumentType]bool)
	for _, t := range p.RequiredDocumentTypes() {
		required[t] = true
	}

	result := []DocumentType{}
	for _, t := range DocumentTypes {
		if !required[t] {
			continue
		}
		refused := anyDocument(docs, t, func(d *Document) bool { return d.HasStatus(DocumentRefused) })
		inReview := anyDocument(docs, t, func(d *Document) bool {
			return d.HasStatus(DocumentValidated) || d.HasStatus(DocumentValidationAsked)
		})
		pending := anyDocument(docs, t, (*Document).IsPending)
		if refused && !inReview && !pending {
			result = append(result, t)
		}
	}
	return result
}

func anyDocument(docs []Document, t DocumentType, match func(*Document) bool) bool {
	for i := range docs {
		if docs[i].Type == t && match(&docs[i]) {
			return true
		}
	}
	return false
}
