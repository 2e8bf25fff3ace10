package messaging

// ParticipantKind tells which side of a conversation a resolved sender
// belongs to.
type ParticipantKind string

const (
	ParticipantBeneficiary ParticipantKind = "beneficiary"
	ParticipantCaseWorker  ParticipantKind = "caseworker"
	ParticipantUnknown     ParticipantKind = "unknown"
)

// ParticipantRef is a resolved conversation participant. ProfileID is the
// beneficiary or case worker row the external ID mapped to; it is zero for
// unknown participants. Name falls back to "Unknown User" when the lookup
// matches neither side.
type ParticipantRef struct {
	Kind           ParticipantKind
	ProfileID      uint
	ExternalUserID string
	Name           string
}

// IsKnown reports whether the participant resolved to a profile row.
func (r ParticipantRef) IsKnown() bool {
	return r.Kind == ParticipantBeneficiary || r.Kind == ParticipantCaseWorker
}
