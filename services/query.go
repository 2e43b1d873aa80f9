package services

import (
	"github.com/translationdesk/platform-go/config"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/repositories"
)

// PendingStatuses are the ticket statuses shown in the verification
// queue.
var PendingStatuses = []models.TicketStatus{
	models.TicketVerificationPending,
	models.TicketVerificationInProgress,
}

func repositoriesPendingFilter() repositories.TicketFilter {
	return repositories.TicketFilter{Statuses: PendingStatuses, Limit: 1}
}

func repoFilterFromQuery(q dto.TicketListQuery) repositories.TicketFilter {
	filter := repositories.TicketFilter{
		ProjectID:           q.ProjectID,
		ClientID:            q.ClientID,
		OriginalLanguage:    q.Language,
		TargetLanguage:      q.TargetLanguage,
		AgentID:             q.AgentID,
		LanguageExpertID:    q.LanguageExpertID,
		Search:              q.Search,
		SLAState:            q.SLAState,
		NearDeadlineDefault: config.SLA.Default.NearDeadlineMinutes,
		SortBy:              q.SortBy,
		Limit:               q.Limit,
		Offset:              q.Offset,
	}
	if q.Status != "" {
		filter.Statuses = []models.TicketStatus{models.TicketStatus(q.Status)}
	}
	return filter
}
