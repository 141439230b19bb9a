package v1

import "github.com/urbanaccess/report-api/internal/models"

func toUserResponse(user *models.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserResponses(users []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(users))
	for i, user := range users {
		responses[i] = toUserResponse(user)
	}
	return responses
}

func toLocationResponse(location *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:          location.ID,
		Name:        location.Name,
		Address:     location.Address,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		Type:        location.Type,
		Description: location.Description,
		AdminID:     location.AdminID,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}

func toLocationResponses(locations []*models.Location) []*LocationResponse {
	responses := make([]*LocationResponse, len(locations))
	for i, location := range locations {
		responses[i] = toLocationResponse(location)
	}
	return responses
}

func toCategoryResponse(category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Type:        string(category.Type),
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toCategoryResponses(categories []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = toCategoryResponse(category)
	}
	return responses
}

func toCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		Author:    toUserResponse(comment.Author),
		CreatedAt: comment.CreatedAt,
	}
}

func toStatusHistoryResponse(entry models.StatusHistoryEntry) StatusHistoryResponse {
	return StatusHistoryResponse{
		ID:        entry.ID,
		Status:    string(entry.Status),
		Comment:   entry.Comment,
		User:      toUserResponse(entry.User),
		CreatedAt: entry.CreatedAt,
	}
}

func toReportAggregateResponse(aggregate *models.ReportAggregate) *ReportAggregateResponse {
	history := make([]StatusHistoryResponse, len(aggregate.History))
	for i, entry := range aggregate.History {
		history[i] = toStatusHistoryResponse(entry)
	}

	comments := make([]CommentResponse, len(aggregate.Comments))
	for i := range aggregate.Comments {
		comments[i] = *toCommentResponse(&aggregate.Comments[i])
	}

	return &ReportAggregateResponse{
		ID:            aggregate.ID,
		Title:         aggregate.Title,
		Description:   aggregate.Report.Description,
		Status:        string(aggregate.Status),
		ImageURL:      aggregate.ImageURL,
		Author:        *toUserResponse(&aggregate.Author),
		Location:      *toLocationResponse(&aggregate.Location),
		Category:      *toCategoryResponse(&aggregate.Category),
		StatusHistory: history,
		Comments:      comments,
		CreatedAt:     aggregate.CreatedAt,
		UpdatedAt:     aggregate.UpdatedAt,
	}
}

func toReportSummaryResponse(summary *models.ReportSummary) *ReportSummaryResponse {
	return &ReportSummaryResponse{
		ID:          summary.ID,
		Title:       summary.Title,
		Description: summary.Report.Description,
		Status:      string(summary.Status),
		ImageURL:    summary.ImageURL,
		Author:      *toUserResponse(&summary.Author),
		Location:    *toLocationResponse(&summary.Location),
		Category:    *toCategoryResponse(&summary.Category),
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
	}
}

func toReportSummaryResponses(summaries []*models.ReportSummary) []*ReportSummaryResponse {
	responses := make([]*ReportSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = toReportSummaryResponse(summary)
	}
	return responses
}

func toPageMetaResponse(meta models.PageMeta) PageMetaResponse {
	return PageMetaResponse{
		Total:      meta.Total,
		Page:       meta.Page,
		Limit:      meta.Limit,
		TotalPages: meta.TotalPages,
	}
}

func toStatisticsResponse(stats *models.Statistics) *StatisticsResponse {
	byStatus := make(map[string]int, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	byCategory := make([]CategoryCountResponse, len(stats.ByCategory))
	for i, count := range stats.ByCategory {
		byCategory[i] = CategoryCountResponse{
			ID:    count.ID,
			Name:  count.Name,
			Count: count.Count,
		}
	}

	return &StatisticsResponse{
		Total:          stats.Total,
		ByStatus:       byStatus,
		ByCategory:     byCategory,
		ResolutionRate: stats.ResolutionRate,
	}
}
