package usecases

import (
	"context"

	"sanad/internal/domain/beneficiary"
	"sanad/internal/domain/caseworker"
	"sanad/internal/domain/messaging"
	"sanad/internal/shared/errors"
)

// ParticipantResolver maps external user IDs to conversation participants
// by probing beneficiaries first and case workers second. Unknown IDs
// resolve to a placeholder rather than an error so old messages from
// removed accounts still render.
type ParticipantResolver struct {
	beneficiaryRepo beneficiary.Repository
	caseWorkerRepo  caseworker.Repository
}

func NewParticipantResolver(
	beneficiaryRepo beneficiary.Repository,
	caseWorkerRepo caseworker.Repository,
) *ParticipantResolver {
	return &ParticipantResolver{
		beneficiaryRepo: beneficiaryRepo,
		caseWorkerRepo:  caseWorkerRepo,
	}
}

func (r *ParticipantResolver) Resolve(ctx context.Context, externalUserID string) (messaging.ParticipantRef, error) {
	b, err := r.beneficiaryRepo.FindByExternalUserID(ctx, externalUserID)
	if err == nil {
		return messaging.ParticipantRef{
			Kind:           messaging.ParticipantBeneficiary,
			ProfileID:      b.ID(),
			ExternalUserID: externalUserID,
			Name:           b.DisplayName(),
		}, nil
	}
	if !errors.IsNotFoundError(err) {
		return messaging.ParticipantRef{}, err
	}

	w, err := r.caseWorkerRepo.FindByExternalUserID(ctx, externalUserID)
	if err == nil {
		return messaging.ParticipantRef{
			Kind:           messaging.ParticipantCaseWorker,
			ProfileID:      w.ID(),
			ExternalUserID: externalUserID,
			Name:           w.DisplayName(),
		}, nil
	}
	if !errors.IsNotFoundError(err) {
		return messaging.ParticipantRef{}, err
	}

	return messaging.ParticipantRef{
		Kind:           messaging.ParticipantUnknown,
		ExternalUserID: externalUserID,
		Name:           "Unknown User",
	}, nil
}

// ResolveByID looks up a participant when the side of the conversation is
// already known, used to annotate the counterpart of a conversation. A
// missing row resolves to a placeholder so conversations with removed
// accounts still render.
func (r *ParticipantResolver) ResolveByID(ctx context.Context, kind messaging.ParticipantKind, profileID uint) (messaging.ParticipantRef, error) {
	switch kind {
	case messaging.ParticipantBeneficiary:
		b, err := r.beneficiaryRepo.FindByID(ctx, profileID)
		if err == nil {
			return messaging.ParticipantRef{
				Kind:           kind,
				ProfileID:      b.ID(),
				ExternalUserID: b.ExternalUserID(),
				Name:           b.DisplayName(),
			}, nil
		}
		if !errors.IsNotFoundError(err) {
			return messaging.ParticipantRef{}, err
		}
	case messaging.ParticipantCaseWorker:
		w, err := r.caseWorkerRepo.FindByID(ctx, profileID)
		if err == nil {
			return messaging.ParticipantRef{
				Kind:           kind,
				ProfileID:      w.ID(),
				ExternalUserID: w.ExternalUserID(),
				Name:           w.DisplayName(),
			}, nil
		}
		if !errors.IsNotFoundError(err) {
			return messaging.ParticipantRef{}, err
		}
	}

	return messaging.ParticipantRef{
		Kind:      messaging.ParticipantUnknown,
		ProfileID: profileID,
		Name:      "Unknown User",
	}, nil
}
