package v1

import (
	"github.com/shenikar/crisis_awareness_system/internal/models"
	"github.com/shenikar/crisis_awareness_system/internal/service"
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа.
// recent - множество идентификаторов недавно поступивших инцидентов.
func ModelToIncidentResponse(model *models.Incident, recent map[string]bool) IncidentResponse {
	return IncidentResponse{
		ID:           model.ID,
		TS:           model.TS,
		Type:         model.Type,
		Severity:     string(model.SeverityLevel()),
		Title:        model.Title(),
		Summary:      model.Summary,
		Location:     model.Location,
		Recent:       model.ID != "" && recent[model.ID],
		Acknowledged: model.Acknowledged,
		AssignedTo:   model.AssignedTo,
		Escalated:    model.Escalated,
		Resolved:     model.Resolved,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident, recentIDs []string) []IncidentResponse {
	recent := recentSet(recentIDs)
	responses := make([]IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model, recent)
	}
	return responses
}

// AgenciesToResponses преобразует службы в DTO с подписями
func AgenciesToResponses(agencies []models.Agency) []AgencyResponse {
	responses := make([]AgencyResponse, len(agencies))
	for i, agency := range agencies {
		responses[i] = AgencyResponse{
			Agency: string(agency),
			Label:  agency.Label(),
		}
	}
	return responses
}

// DetailToResponse преобразует деталь инцидента в DTO
func DetailToResponse(detail *service.IncidentDetail, recentIDs []string) IncidentDetailResponse {
	return IncidentDetailResponse{
		Incident: ModelToIncidentResponse(detail.Incident, recentSet(recentIDs)),
		Agencies: AgenciesToResponses(detail.Agencies),
		Trace:    detail.Trace,
	}
}

// AnalyticsToResponse преобразует агрегаты в DTO
func AnalyticsToResponse(a *service.Analytics) AnalyticsResponse {
	resp := AnalyticsResponse{
		Total:      a.Total,
		BySeverity: make(map[string]int, len(a.BySeverity)),
		ByType:     a.ByType,
		ByAgency:   make(map[string]int, len(a.ByAgency)),
		Located:    a.Located,
	}
	for severity, count := range a.BySeverity {
		resp.BySeverity[string(severity)] = count
	}
	for agency, count := range a.ByAgency {
		resp.ByAgency[string(agency)] = count
	}
	return resp
}

// QueuesToResponses преобразует очереди служб в DTO
func QueuesToResponses(queues []service.AgencyQueue, recentIDs []string) []AgencyQueueResponse {
	recent := recentSet(recentIDs)
	responses := make([]AgencyQueueResponse, len(queues))
	for i, queue := range queues {
		incidents := make([]IncidentResponse, len(queue.Incidents))
		for j, inc := range queue.Incidents {
			incidents[j] = ModelToIncidentResponse(inc, recent)
		}
		responses[i] = AgencyQueueResponse{
			Agency:    string(queue.Agency),
			Label:     queue.Label,
			Incidents: incidents,
		}
	}
	return responses
}

// MapPointsToResponses преобразует точки карты в DTO
func MapPointsToResponses(points []service.MapPoint, recentIDs []string) []MapPointResponse {
	recent := recentSet(recentIDs)
	responses := make([]MapPointResponse, len(points))
	for i, point := range points {
		responses[i] = MapPointResponse{
			Incident: ModelToIncidentResponse(point.Incident, recent),
			Agencies: AgenciesToResponses(point.Agencies),
		}
	}
	return responses
}

func recentSet(recentIDs []string) map[string]bool {
	recent := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}
	return recent
}
