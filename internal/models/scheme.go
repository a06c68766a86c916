package models

// Scheme is one government welfare scheme from the dataset. Optional scalar
// fields are pointers: a field that is present but empty still renders.
type Scheme struct {
	ID                string   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Category          *string  `json:"category,omitempty" yaml:"category,omitempty"`
	Description       string   `json:"description" yaml:"description"`
	Eligibility       []string `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
	Benefits          *string  `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	DocumentsRequired []string `json:"documents_required,omitempty" yaml:"documents_required,omitempty"`
	HowToApply        []string `json:"how_to_apply,omitempty" yaml:"how_to_apply,omitempty"`
	OfficialWebsite   *string  `json:"official_website,omitempty" yaml:"official_website,omitempty"`
	Helpline          *string  `json:"helpline,omitempty" yaml:"helpline,omitempty"`
}

// Website returns the official website or "" when the scheme has none.
func (s *Scheme) Website() string {
	if s.OfficialWebsite == nil {
		return ""
	}
	return *s.OfficialWebsite
}

// CategoryName returns the category or "" when the scheme has none.
func (s *Scheme) CategoryName() string {
	if s.Category == nil {
		return ""
	}
	return *s.Category
}
