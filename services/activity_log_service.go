package services

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/repository"
)

// ActivityLogService writes user activity entries. Failures are logged and
// never surface to the request.
type ActivityLogService struct {
	repo repository.ActivityLogRepository
	log  *logger.Logger
}

func NewActivityLogService(repo repository.ActivityLogRepository, log *logger.Logger) *ActivityLogService {
	return &ActivityLogService{repo: repo, log: log.With("service", "ActivityLog")}
}

// LogActivityRequest contains the parameters for logging an activity
type LogActivityRequest struct {
	UserID       uuid.UUID
	UserEmail    string
	Action       string // ActionLaunchCampaign, ActionUpdateStore, ...
	ResourceType string // ResourceTypeCampaign, ResourceTypeStore, ...
	ResourceID   string
	StatusCode   int
	Status       string // StatusSuccess or StatusFailed
	ErrorMessage string
	Context      *gin.Context // For IP and User-Agent extraction
}

func (s *ActivityLogService) LogActivity(ctx context.Context, req LogActivityRequest) {
	if req.UserID == uuid.Nil {
		s.log.Warn("activity log skipped: missing user", "action", req.Action)
		return
	}
	if req.Status == "" {
		req.Status = models.StatusSuccess
	}

	entry := models.ActivityLog{
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		StatusCode:   req.StatusCode,
		Status:       req.Status,
		ErrorMessage: req.ErrorMessage,
	}
	if c := req.Context; c != nil {
		entry.IPAddress = extractClientIP(c)
		entry.UserAgent = c.GetHeader("User-Agent")
		entry.Method = c.Request.Method
		entry.Path = c.Request.URL.Path
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		s.log.Error("failed to create activity log", "action", req.Action, "error", err)
		return
	}
	s.log.Debug("activity logged",
		"action", req.Action,
		"resource_type", req.ResourceType,
		"resource_id", req.ResourceID,
		"status", req.Status,
	)
}

func (s *ActivityLogService) ListForUser(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.ActivityLog, int64, error) {
	return s.repo.ListByUser(ctx, userID, page, limit)
}

// extractClientIP checks X-Forwarded-For, X-Real-IP, then RemoteAddr
func extractClientIP(c *gin.Context) string {
	if forwardedFor := c.GetHeader("X-Forwarded-For"); forwardedFor != "" {
		return forwardedFor
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.RemoteIP()
}
