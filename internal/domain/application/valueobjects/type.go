package valueobjects

import "fmt"

// ApplicationType distinguishes the four assistance request kinds, each
// with its own form payload schema.
type ApplicationType string

const (
	TypeFinancial   ApplicationType = "Financial"
	TypeMedical     ApplicationType = "Medical"
	TypeEducational ApplicationType = "Educational"
	TypeOther       ApplicationType = "Other"
)

var validApplicationTypes = map[ApplicationType]bool{
	TypeFinancial:   true,
	TypeMedical:     true,
	TypeEducational: true,
	TypeOther:       true,
}

func (t ApplicationType) String() string {
	return string(t)
}

func (t ApplicationType) IsValid() bool {
	return validApplicationTypes[t]
}

func NewApplicationType(s string) (ApplicationType, error) {
	t := ApplicationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid application type: %s", s)
	}
	return t, nil
}
