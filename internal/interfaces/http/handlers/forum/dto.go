package forum

import (
	"time"

	"sanad/internal/application/forum/usecases"
)

type CreateTopicRequest struct {
	Title   string `json:"title" validate:"required,min=5,max=255"`
	Content string `json:"content" validate:"required,min=10"`
}

func (r CreateTopicRequest) ToCommand(externalUserID string) usecases.CreateTopicCommand {
	return usecases.CreateTopicCommand{
		ExternalUserID: externalUserID,
		Title:          r.Title,
		Content:        r.Content,
	}
}

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

type ModerateRequest struct {
	Status string `json:"status" validate:"required"`
}

type TopicResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	CreatorName    string    `json:"creatorName"`
	Status         string    `json:"status"`
	PostCount      int       `json:"postCount"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PostResponse struct {
	ID          uint      `json:"id"`
	CreatorName string    `json:"creatorName"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TopicDetailResponse struct {
	TopicResponse
	Posts []PostResponse `json:"posts"`
}

func toTopicResponses(result *usecases.ListTopicsResult) []TopicResponse {
	responses := make([]TopicResponse, 0, len(result.Topics))
	for _, t := range result.Topics {
		responses = append(responses, TopicResponse{
			ID:             t.TopicID,
			Title:          t.Title,
			CreatorName:    t.CreatorName,
			Status:         t.Status,
			PostCount:      t.PostCount,
			LastActivityAt: t.LastActivityAt,
			CreatedAt:      t.CreatedAt,
		})
	}
	return responses
}

func toTopicDetailResponse(result *usecases.GetTopicDetailResult) TopicDetailResponse {
	posts := make([]PostResponse, 0, len(result.Posts))
	for _, p := range result.Posts {
		posts = append(posts, PostResponse{
			ID:          p.PostID,
			CreatorName: p.CreatorName,
			Content:     p.Content,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}

	return TopicDetailResponse{
		TopicResponse: TopicResponse{
			ID:             result.TopicID,
			Title:          result.Title,
			CreatorName:    result.CreatorName,
			Status:         result.Status,
			PostCount:      result.PostCount,
			LastActivityAt: result.LastActivityAt,
			CreatedAt:      result.CreatedAt,
		},
		Posts: posts,
	}
}
