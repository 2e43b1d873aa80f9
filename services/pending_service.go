package services

import (
	"context"

	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/types"
)

type PendingService struct {
	deps Deps
}

func NewPendingService(deps Deps) *PendingService {
	return &PendingService{deps: deps}
}

// List returns the verification queue, filtered and sorted per query.
func (s *PendingService) List(query dto.TicketListQuery) ([]models.Ticket, int64, error) {
	filter := repoFilterFromQuery(query)
	filter.Statuses = PendingStatuses
	if filter.SortBy == "" {
		filter.SortBy = "deadline"
	}
	return s.deps.Repos.Ticket.List(filter)
}

// Reassign moves a batch of tickets to one handler. The batch never
// fails as a whole: each ticket lands in a per-outcome group and the
// caller reports the groups separately.
func (s *PendingService) Reassign(ctx context.Context, claims *types.Claims, input dto.ReassignDTO) (*dto.ReassignResponse, error) {
	handler, err := s.deps.Repos.User.GetByID(input.HandlerID)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]string{}
	for _, ticketID := range input.TicketIDs {
		outcome := s.reassignOne(ctx, claims, handler, ticketID)
		grouped[outcome] = append(grouped[outcome], ticketID)
	}

	resp := &dto.ReassignResponse{
		Handler: dto.HandlerDTO{FirstName: handler.FirstName, LastName: handler.LastName},
	}
	for _, outcome := range []string{dto.ReassignSuccess, dto.ReassignForbidden, dto.ReassignClosed, dto.ReassignNonAssignable} {
		ids := grouped[outcome]
		if len(ids) == 0 {
			continue
		}
		result := dto.ReassignResult{TicketIDs: ids}
		if outcome != dto.ReassignSuccess {
			result.Error = outcome
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (s *PendingService) reassignOne(ctx context.Context, claims *types.Claims, handler *models.User, ticketID string) string {
	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return dto.ReassignNonAssignable
	}

	switch {
	case ticket.Status == models.TicketClosed:
		return dto.ReassignClosed
	case ticket.Status == models.TicketInactive:
		return dto.ReassignNonAssignable
	case !handler.Active:
		return dto.ReassignNonAssignable
	case !canReassign(claims, ticket):
		return dto.ReassignForbidden
	}

	changes := map[string]interface{}{"reassigned": true}
	switch handler.Role {
	case models.RoleAgent:
		changes["agent_id"] = handler.ID
	case models.RoleLanguageExpert:
		changes["language_expert_id"] = handler.ID
	default:
		return dto.ReassignNonAssignable
	}

	if err := s.deps.Repos.Ticket.UpdateFields(ticketID, changes); err != nil {
		return dto.ReassignNonAssignable
	}

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTicketReassigned, map[string]interface{}{
		"ticketId":  ticketID,
		"handlerId": handler.ID,
		"byUserId":  claims.UserID,
	})
	return dto.ReassignSuccess
}

// canReassign allows managers and admins everywhere and the currently
// assigned handler on their own ticket.
func canReassign(claims *types.Claims, ticket *models.Ticket) bool {
	switch claims.Role {
	case models.RoleAdmin, models.RoleTSSCManager:
		return true
	}
	if ticket.AgentID != nil && *ticket.AgentID == claims.UserID {
		return true
	}
	if ticket.LanguageExpertID != nil && *ticket.LanguageExpertID == claims.UserID {
		return true
	}
	return false
}

// Abandon releases tickets back to the pool without closing them.
// Tickets with pending replies stay in the verification queue; the
// rest return to OPEN.
func (s *PendingService) Abandon(ctx context.Context, claims *types.Claims, input dto.AbandonDTO) (*dto.ReassignResponse, error) {
	grouped := map[string][]string{}
	for _, ticketID := range input.TicketIDs {
		outcome := s.abandonOne(ctx, claims, ticketID)
		grouped[outcome] = append(grouped[outcome], ticketID)
	}

	resp := &dto.ReassignResponse{}
	for _, outcome := range []string{dto.ReassignSuccess, dto.ReassignForbidden, dto.ReassignClosed, dto.ReassignNonAssignable} {
		ids := grouped[outcome]
		if len(ids) == 0 {
			continue
		}
		result := dto.ReassignResult{TicketIDs: ids}
		if outcome != dto.ReassignSuccess {
			result.Error = outcome
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

func (s *PendingService) abandonOne(ctx context.Context, claims *types.Claims, ticketID string) string {
	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return dto.ReassignNonAssignable
	}
	if ticket.Status == models.TicketClosed {
		return dto.ReassignClosed
	}
	if !canReassign(claims, ticket) {
		return dto.ReassignForbidden
	}

	status := models.TicketOpen
	if ticket.HasPendingVerification() {
		status = models.TicketVerificationPending
	}
	changes := map[string]interface{}{
		"agent_id":           nil,
		"language_expert_id": nil,
		"status":             status,
	}
	if err := s.deps.Repos.Ticket.UpdateFields(ticketID, changes); err != nil {
		return dto.ReassignNonAssignable
	}

	s.deps.Hub.NotifyAbandoned(ticketID)
	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTicketAbandoned, map[string]interface{}{
		"ticketId": ticketID,
		"byUserId": claims.UserID,
	})
	return dto.ReassignSuccess
}

// Handlers lists the active users a ticket batch could be reassigned
// to for the given role.
func (s *PendingService) Handlers(role models.UserRole) ([]models.User, error) {
	if role != models.RoleAgent && role != models.RoleLanguageExpert {
		return nil, errs.ErrForbidden
	}
	return s.deps.Repos.User.ListByRole(role)
}
