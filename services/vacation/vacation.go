package vacation

import (
	"context"
	"strings"
	"time"

	"salonflow/models"
	"salonflow/services/scheduling"
	"salonflow/utils"

	"go.uber.org/zap"
)

// Request validates and stores a vacation. Staff-initiated requests start
// pending; admin-initiated ones are approved immediately. The range may not
// overlap any other pending or approved vacation of the same staff member.
func (s *DefaultVacationService) Request(ctx context.Context, req models.VacationRequest, requestedByAdmin bool) (*models.Vacation, error) {
	if _, err := s.Staff.GetByID(ctx, req.StaffID); err != nil {
		return nil, scheduling.NewNotFound("staff member %s not found", req.StaffID)
	}

	cand := scheduling.VacationCandidate{
		StaffID:   req.StaffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.Engine.ValidateVacation(ctx, cand); err != nil {
		return nil, err
	}

	v := models.Vacation{
		StaffID:   req.StaffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    models.VacationPending,
	}
	if requestedByAdmin {
		v.Status = models.VacationApproved
	}
	return s.Repo.Create(ctx, v)
}

// Get returns a vacation by id.
func (s *DefaultVacationService) Get(ctx context.Context, id string) (*models.Vacation, error) {
	v, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, scheduling.NewNotFound("vacation %s not found", id)
	}
	return v, nil
}

// Approve moves a pending vacation to approved and reports, without touching
// them, the live appointments that now fall inside the range.
func (s *DefaultVacationService) Approve(ctx context.Context, id, approverID string) (*models.VacationDecision, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != models.VacationPending {
		return nil, scheduling.NewInvalidState("vacation %s is %s, only pending requests can be approved", id, v.Status)
	}

	updated := *v
	updated.Status = models.VacationApproved
	updated.ApprovedBy = approverID
	saved, err := s.Repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.Engine.ConflictingAppointments(ctx, saved.StaffID, saved.StartDate, saved.EndDate)
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, *saved)
	return &models.VacationDecision{
		Vacation:                *saved,
		ConflictingAppointments: conflicts,
	}, nil
}

// Reject moves a pending vacation to rejected.
func (s *DefaultVacationService) Reject(ctx context.Context, id, approverID, reason string) (*models.Vacation, error) {
	v, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if v.Status != models.VacationPending {
		return nil, scheduling.NewInvalidState("vacation %s is %s, only pending requests can be rejected", id, v.Status)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, scheduling.NewValidation("a rejection reason is required")
	}

	updated := *v
	updated.Status = models.VacationRejected
	updated.ApprovedBy = approverID
	updated.RejectionReason = reason
	saved, err := s.Repo.Update(ctx, updated)
	if err != nil {
		return nil, err
	}
	s.notifyDecision(ctx, *saved)
	return saved, nil
}

// Withdraw deletes a vacation. Only the owning staff member or an admin may
// withdraw one. Pending requests can always be withdrawn; approved ones only
// before they start.
func (s *DefaultVacationService) Withdraw(ctx context.Context, id, callerStaffID string, isAdmin bool) error {
	v, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && v.StaffID != callerStaffID {
		return scheduling.NewUnauthorized("vacation %s belongs to another staff member", id)
	}
	today := time.Now().Format(models.DateLayout)
	switch {
	case v.Status == models.VacationPending:
	case v.Status == models.VacationApproved && !v.Started(today):
	default:
		return scheduling.NewInvalidState("vacation %s can no longer be withdrawn", id)
	}
	return s.Repo.Delete(ctx, id)
}

// ListByStaff returns all vacations of a staff member.
func (s *DefaultVacationService) ListByStaff(ctx context.Context, staffID string) ([]models.Vacation, error) {
	return s.Repo.ListByStaff(ctx, staffID)
}

func (s *DefaultVacationService) notifyDecision(ctx context.Context, v models.Vacation) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendVacationDecision(ctx, v); err != nil {
		utils.GetLogger().Warn("vacation decision notification failed",
			zap.String("vacationId", v.ID), zap.Error(err))
	}
}
