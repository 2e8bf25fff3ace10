package beneficiary

import "fmt"

// Status classifies a beneficiary for eligibility purposes. It is set by
// staff out of band; beneficiaries cannot change their own status.
type Status string

const (
	StatusMartyrFamily   Status = "Martyr Family"
	StatusWounded        Status = "Wounded"
	StatusPrisonerFamily Status = "Prisoner Family"
	StatusOther          Status = "Other"
)

var validStatuses = map[Status]bool{
	StatusMartyrFamily:   true,
	StatusWounded:        true,
	StatusPrisonerFamily: true,
	StatusOther:          true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid beneficiary status: %s", s)
	}
	return status, nil
}
